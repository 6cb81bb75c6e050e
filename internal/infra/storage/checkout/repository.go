package checkout

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/m04kA/SMC-VenueBooking/internal/domain"
	"github.com/m04kA/SMC-VenueBooking/pkg/dbmetrics"
	"github.com/m04kA/SMC-VenueBooking/pkg/psqlbuilder"
)

const tableName = "checkout_attempts"

var columns = []string{
	"id",
	"draft_id",
	"draft_revision",
	"facility_id",
	"category",
	"booking_date",
	"time_slots",
	"persons",
	"discount_code",
	"order_id",
	"amount",
	"currency",
	"status",
	"failure_reason",
	"created_at",
	"updated_at",
}

// Repository репозиторий попыток оформления заказа
type Repository struct {
	db       DBExecutor
	location *time.Location
}

// NewRepository создает новый экземпляр репозитория
func NewRepository(db DBExecutor, location *time.Location) *Repository {
	return &Repository{db: db, location: location}
}

// Create сохраняет новую попытку оформления
func (r *Repository) Create(ctx context.Context, attempt *domain.CheckoutAttempt) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert(tableName).
		Columns(columns...).
		Values(
			attempt.ID.String(),
			attempt.DraftID.String(),
			attempt.DraftRevision,
			attempt.FacilityID,
			string(attempt.Category),
			attempt.Date.Format(domain.DateFormat),
			pq.Array(attempt.TimeSlots),
			attempt.Persons,
			nullString(attempt.DiscountCode),
			nullString(attempt.OrderID),
			attempt.Amount,
			attempt.Currency,
			string(attempt.Status),
			attempt.FailureReason,
			attempt.CreatedAt,
			attempt.UpdatedAt,
		).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	return nil
}

// GetByOrderID получает попытку по ID заказа платежного шлюза
func (r *Repository) GetByOrderID(ctx context.Context, orderID string) (*domain.CheckoutAttempt, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	builder := psqlbuilder.Select(columns...).
		From(tableName).
		Where(squirrel.Eq{"order_id": orderID})
	if dbmetrics.IsInTransaction(ctx) {
		builder = builder.Suffix("FOR UPDATE")
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByOrderID - build select query: %v", ErrBuildQuery, err)
	}

	attempt, err := r.scan(executor.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrAttemptNotFound
		}
		return nil, fmt.Errorf("%w: GetByOrderID: %v", ErrScanRow, err)
	}

	return attempt, nil
}

// GetPendingByDraftID получает последнюю незавершенную попытку черновика
func (r *Repository) GetPendingByDraftID(ctx context.Context, draftID uuid.UUID) (*domain.CheckoutAttempt, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	builder := psqlbuilder.Select(columns...).
		From(tableName).
		Where(squirrel.Eq{
			"draft_id": draftID.String(),
			"status":   string(domain.CheckoutPending),
		}).
		OrderBy("created_at DESC").
		Limit(1)
	if dbmetrics.IsInTransaction(ctx) {
		builder = builder.Suffix("FOR UPDATE")
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetPendingByDraftID - build select query: %v", ErrBuildQuery, err)
	}

	attempt, err := r.scan(executor.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrAttemptNotFound
		}
		return nil, fmt.Errorf("%w: GetPendingByDraftID: %v", ErrScanRow, err)
	}

	return attempt, nil
}

// SetOrder сохраняет данные созданного заказа
func (r *Repository) SetOrder(ctx context.Context, id uuid.UUID, orderID string, amount int64, currency string) error {
	builder := psqlbuilder.Update(tableName).
		SetMap(map[string]interface{}{
			"order_id":   orderID,
			"amount":     amount,
			"currency":   currency,
			"updated_at": time.Now(),
		}).
		Where(squirrel.Eq{"id": id.String()})

	rowsAffected, err := r.exec(ctx, "SetOrder", builder)
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return ErrAttemptNotFound
	}
	return nil
}

// UpdateStatus переводит попытку из статуса from в статус to.
// Если попытка уже не в статусе from, возвращает ErrStatusChanged.
func (r *Repository) UpdateStatus(ctx context.Context, id uuid.UUID, from, to domain.CheckoutStatus, reason *string) error {
	rowsAffected, err := r.exec(ctx, "UpdateStatus", statusUpdate(id, from, to, reason, time.Now()))
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return ErrStatusChanged
	}
	return nil
}

func statusUpdate(id uuid.UUID, from, to domain.CheckoutStatus, reason *string, now time.Time) squirrel.UpdateBuilder {
	return psqlbuilder.Update(tableName).
		SetMap(map[string]interface{}{
			"status":         string(to),
			"failure_reason": reason,
			"updated_at":     now,
		}).
		Where(squirrel.Eq{"id": id.String(), "status": string(from)})
}

func (r *Repository) exec(ctx context.Context, op string, builder squirrel.UpdateBuilder) (int64, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := builder.ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: %s - build update query: %v", ErrBuildQuery, op, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("%w: %s - execute update: %v", ErrExecQuery, op, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%w: %s - get rows affected: %v", ErrExecQuery, op, err)
	}

	return rowsAffected, nil
}

func (r *Repository) scan(row *sql.Row) (*domain.CheckoutAttempt, error) {
	var (
		a             domain.CheckoutAttempt
		category      string
		status        string
		date          time.Time
		slots         pq.StringArray
		discountCode  sql.NullString
		orderID       sql.NullString
		failureReason sql.NullString
		createdAt     sql.NullTime
		updatedAt     sql.NullTime
	)

	err := row.Scan(
		&a.ID,
		&a.DraftID,
		&a.DraftRevision,
		&a.FacilityID,
		&category,
		&date,
		&slots,
		&a.Persons,
		&discountCode,
		&orderID,
		&a.Amount,
		&a.Currency,
		&status,
		&failureReason,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	a.Category = domain.Category(category)
	a.Status = domain.CheckoutStatus(status)
	a.Date = domain.DateIn(date, r.location)
	a.TimeSlots = []string(slots)
	a.DiscountCode = discountCode.String
	a.OrderID = orderID.String
	a.CreatedAt = createdAt.Time
	a.UpdatedAt = updatedAt.Time
	if failureReason.Valid {
		reason := failureReason.String
		a.FailureReason = &reason
	}

	return &a, nil
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
