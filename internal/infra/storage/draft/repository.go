package draft

import (
	"context"
	"database/sql"
	"encoding/json"
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

const tableName = "booking_drafts"

var columns = []string{
	"id",
	"facility_id",
	"category",
	"booking_date",
	"slots",
	"persons",
	"discount",
	"state",
	"revision",
	"created_at",
	"updated_at",
}

// Repository репозиторий черновиков бронирования
type Repository struct {
	db       DBExecutor
	location *time.Location
}

// NewRepository создает новый экземпляр репозитория черновиков.
// Даты черновиков возвращаются в часовом поясе площадки
func NewRepository(db DBExecutor, location *time.Location) *Repository {
	return &Repository{db: db, location: location}
}

// discountRecord JSON-представление примененной скидки
type discountRecord struct {
	Code           string `json:"code"`
	DiscountAmount int64  `json:"discountAmount"`
	FinalAmount    int64  `json:"finalAmount"`
	OrderAmount    int64  `json:"orderAmount"`
	Message        string `json:"message,omitempty"`
	Fingerprint    string `json:"fingerprint"`
}

// Create сохраняет новый черновик
func (r *Repository) Create(ctx context.Context, draft *domain.Draft) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	values, err := toRow(draft)
	if err != nil {
		return fmt.Errorf("%w: Create - encode draft: %v", ErrBuildQuery, err)
	}

	query, args, err := psqlbuilder.Insert(tableName).
		Columns(columns...).
		Values(values...).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	return nil
}

// GetByID получает черновик по ID.
// Внутри транзакции строка блокируется (FOR UPDATE)
func (r *Repository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Draft, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	builder := psqlbuilder.Select(columns...).
		From(tableName).
		Where(squirrel.Eq{"id": id.String()})
	if dbmetrics.IsInTransaction(ctx) {
		builder = builder.Suffix("FOR UPDATE")
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	draft, err := r.scan(executor.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrDraftNotFound
		}
		return nil, fmt.Errorf("%w: GetByID: %v", ErrScanRow, err)
	}

	return draft, nil
}

// Update сохраняет черновик, если его ревизия в БД равна expectedRevision
func (r *Repository) Update(ctx context.Context, draft *domain.Draft, expectedRevision int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	values, err := toRow(draft)
	if err != nil {
		return fmt.Errorf("%w: Update - encode draft: %v", ErrBuildQuery, err)
	}

	// id и created_at не меняются
	setMap := make(map[string]interface{}, len(columns))
	for i, col := range columns {
		if col == "id" || col == "created_at" {
			continue
		}
		setMap[col] = values[i]
	}

	query, args, err := psqlbuilder.Update(tableName).
		SetMap(setMap).
		Where(squirrel.Eq{"id": draft.ID.String(), "revision": expectedRevision}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Update - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Update - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		exists, err := r.exists(ctx, draft.ID)
		if err != nil {
			return err
		}
		if !exists {
			return ErrDraftNotFound
		}
		return ErrDraftConflict
	}

	return nil
}

// Delete удаляет черновик
func (r *Repository) Delete(ctx context.Context, id uuid.UUID) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete(tableName).
		Where(squirrel.Eq{"id": id.String()}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrDraftNotFound
	}

	return nil
}

func (r *Repository) exists(ctx context.Context, id uuid.UUID) (bool, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("1").
		From(tableName).
		Where(squirrel.Eq{"id": id.String()}).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("%w: exists - build select query: %v", ErrBuildQuery, err)
	}

	var one int
	err = executor.QueryRowContext(ctx, query, args...).Scan(&one)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("%w: exists: %v", ErrExecQuery, err)
	}
	return true, nil
}

// toRow возвращает значения колонок в порядке columns
func toRow(d *domain.Draft) ([]interface{}, error) {
	var date interface{}
	if d.Date != nil {
		// Передаём строкой, чтобы часовой пояс сессии БД не сдвинул день
		date = d.Date.Format(domain.DateFormat)
	}

	var discount interface{}
	if d.Discount != nil {
		raw, err := json.Marshal(discountRecord{
			Code:           d.Discount.Code,
			DiscountAmount: d.Discount.DiscountAmount,
			FinalAmount:    d.Discount.FinalAmount,
			OrderAmount:    d.Discount.OrderAmount,
			Message:        d.Discount.Message,
			Fingerprint:    d.Discount.Fingerprint,
		})
		if err != nil {
			return nil, err
		}
		discount = string(raw)
	}

	return []interface{}{
		d.ID.String(),
		d.FacilityID,
		string(d.Category),
		date,
		pq.Array(domain.SlotLabels(d.Slots)),
		d.Persons,
		discount,
		string(d.State),
		d.Revision,
		d.CreatedAt,
		d.UpdatedAt,
	}, nil
}

func (r *Repository) scan(row *sql.Row) (*domain.Draft, error) {
	var (
		d         domain.Draft
		category  string
		state     string
		date      sql.NullTime
		labels    pq.StringArray
		discount  []byte
		createdAt sql.NullTime
		updatedAt sql.NullTime
	)

	err := row.Scan(
		&d.ID,
		&d.FacilityID,
		&category,
		&date,
		&labels,
		&d.Persons,
		&discount,
		&state,
		&d.Revision,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	d.Category = domain.Category(category)
	d.State = domain.DraftState(state)
	d.CreatedAt = createdAt.Time
	d.UpdatedAt = updatedAt.Time

	if date.Valid {
		day := domain.DateIn(date.Time, r.location)
		d.Date = &day
	}

	if len(labels) > 0 {
		d.Slots, err = domain.ParseTimeSlots(labels)
		if err != nil {
			return nil, err
		}
	}

	if len(discount) > 0 {
		var rec discountRecord
		if err := json.Unmarshal(discount, &rec); err != nil {
			return nil, err
		}
		d.Discount = &domain.DiscountResult{
			Code:           rec.Code,
			DiscountAmount: rec.DiscountAmount,
			FinalAmount:    rec.FinalAmount,
			OrderAmount:    rec.OrderAmount,
			Message:        rec.Message,
			Fingerprint:    rec.Fingerprint,
		}
	}

	return &d, nil
}
