package drafts

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-VenueBooking/internal/domain"
	draftRepo "github.com/m04kA/SMC-VenueBooking/internal/infra/storage/draft"
	"github.com/m04kA/SMC-VenueBooking/internal/service/drafts/models"
	facilitiesService "github.com/m04kA/SMC-VenueBooking/internal/service/facilities"
	"github.com/m04kA/SMC-VenueBooking/internal/service/pricing"
	"github.com/m04kA/SMC-VenueBooking/internal/service/slots"
)

// Service сервис черновиков бронирования (состояние формы на сессию)
type Service struct {
	draftRepo     DraftRepository
	catalog       FacilityCatalog
	bookingClient BookingAPIClient
	engine        *slots.Engine
	calculator    *pricing.Calculator
	location      *time.Location
	timeProvider  TimeProvider
	logger        Logger
}

// NewService создает новый экземпляр сервиса черновиков
func NewService(
	draftRepo DraftRepository,
	catalog FacilityCatalog,
	bookingClient BookingAPIClient,
	engine *slots.Engine,
	calculator *pricing.Calculator,
	location *time.Location,
	logger Logger,
) *Service {
	return &Service{
		draftRepo:     draftRepo,
		catalog:       catalog,
		bookingClient: bookingClient,
		engine:        engine,
		calculator:    calculator,
		location:      location,
		timeProvider:  &RealTimeProvider{},
		logger:        logger,
	}
}

// Open открывает новый черновик для площадки
func (s *Service) Open(ctx context.Context, facilityID string) (*models.DraftResponse, error) {
	s.logger.Info("Open: opening draft for facility=%s", facilityID)

	facility, err := s.getFacility(ctx, facilityID)
	if err != nil {
		return nil, err
	}

	draft := domain.NewDraft(
		uuid.New(),
		*facility,
		s.engine.Rules().InitialPersons(facility.Category),
		s.now(),
	)

	if err := s.draftRepo.Create(ctx, &draft); err != nil {
		s.logger.Error("Open: repository error: %v", err)
		return nil, fmt.Errorf("%w: Open - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Open: draft id=%s opened for facility=%s", draft.ID, facilityID)
	return s.respond(ctx, facility, draft)
}

// Get возвращает текущее состояние черновика
func (s *Service) Get(ctx context.Context, id uuid.UUID) (*models.DraftResponse, error) {
	draft, facility, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.respond(ctx, facility, *draft)
}

// Update применяет к черновику одно действие формы
func (s *Service) Update(ctx context.Context, req *models.UpdateDraftRequest) (*models.DraftResponse, error) {
	s.logger.Info("Update: draft id=%s action=%s", req.DraftID, req.Action)

	draft, facility, err := s.load(ctx, req.DraftID)
	if err != nil {
		return nil, err
	}

	var next domain.Draft
	switch req.Action {
	case models.ActionSelectDate:
		next, err = s.selectDate(*draft, req.Date)
	case models.ActionToggleSlot:
		next, err = s.toggleSlot(ctx, facility, *draft, req.Slot)
	case models.ActionSetPersons:
		next, err = s.setPersons(ctx, facility, *draft, req.Persons)
	default:
		err = fmt.Errorf("%w: unknown action %q", ErrInvalidInput, req.Action)
	}
	if err != nil {
		s.logger.Warn("Update: draft id=%s action=%s rejected: %v", req.DraftID, req.Action, err)
		return nil, err
	}

	next.UpdatedAt = s.now()
	if err := s.save(ctx, &next, draft.Revision); err != nil {
		return nil, err
	}

	return s.respond(ctx, facility, next)
}

// Close удаляет черновик. Ответ на уже отправленный запрос оформления будет проигнорирован
func (s *Service) Close(ctx context.Context, id uuid.UUID) error {
	s.logger.Info("Close: closing draft id=%s", id)

	if err := s.draftRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, draftRepo.ErrDraftNotFound) {
			s.logger.Warn("Close: draft id=%s not found", id)
			return ErrDraftNotFound
		}
		s.logger.Error("Close: repository error for draft id=%s: %v", id, err)
		return fmt.Errorf("%w: Close - repository error: %v", ErrInternal, err)
	}

	return nil
}

func (s *Service) selectDate(draft domain.Draft, raw *string) (domain.Draft, error) {
	if raw == nil {
		return draft, fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	date, err := domain.ParseDate(*raw, s.location)
	if err != nil {
		return draft, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	next, err := draft.SelectDate(date, s.now())
	if err != nil {
		return draft, mapDomainError(err)
	}
	return next, nil
}

func (s *Service) toggleSlot(ctx context.Context, facility *domain.Facility, draft domain.Draft, raw *string) (domain.Draft, error) {
	if raw == nil {
		return draft, fmt.Errorf("%w: slot is required", ErrInvalidInput)
	}

	slot, err := domain.ParseTimeSlot(*raw)
	if err != nil {
		return draft, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	if !s.engine.IsOffered(facility.Category, slot) {
		return draft, fmt.Errorf("%w: slot %s is not offered", ErrInvalidInput, slot)
	}

	selecting := !draft.HasSlot(slot)

	next, err := draft.ToggleSlot(slot)
	if err != nil {
		return draft, mapDomainError(err)
	}
	if !selecting {
		return next, nil
	}

	// Проверяем актуальную доступность выбираемого слота
	view, err := s.evaluate(ctx, facility, *next.Date)
	if err != nil {
		return draft, err
	}
	sv, _ := view.Find(slot)
	if sv == nil || !sv.Bookable {
		reason := ""
		if sv != nil {
			reason = sv.Reason
		}
		if reason == domain.ReasonFull {
			return draft, fmt.Errorf("%w: %s is full", ErrCapacityExceeded, slot)
		}
		return draft, fmt.Errorf("%w: %s (%s)", ErrSlotNotAvailable, slot, reason)
	}

	// Счетчик людей бассейна не может превышать остаток вместимости блока
	limits := s.engine.PersonLimits(*facility, sv)
	if next.Persons > limits.Max {
		s.logger.Info("Update: draft id=%s persons reduced %d -> %d by remaining capacity",
			draft.ID, next.Persons, limits.Max)
		next.Persons = limits.Max
	}

	return next, nil
}

func (s *Service) setPersons(ctx context.Context, facility *domain.Facility, draft domain.Draft, persons *int) (domain.Draft, error) {
	if persons == nil {
		return draft, fmt.Errorf("%w: persons is required", ErrInvalidInput)
	}

	limits, err := s.personLimits(ctx, facility, draft)
	if err != nil {
		return draft, err
	}

	next, err := draft.SetPersons(*persons, limits)
	if err != nil {
		static := s.engine.Rules().PersonLimitsFor(facility.Category)
		if errors.Is(err, domain.ErrPersonsOutOfRange) && static.Contains(*persons) {
			return draft, fmt.Errorf("%w: at most %d persons can be added", ErrCapacityExceeded, limits.Max)
		}
		return draft, mapDomainError(err)
	}
	return next, nil
}

// personLimits возвращает границы счетчика людей; для бассейна учитывается заполненность выбранного блока
func (s *Service) personLimits(ctx context.Context, facility *domain.Facility, draft domain.Draft) (domain.PersonLimits, error) {
	if facility.Category != domain.CategoryPool || draft.Date == nil || len(draft.Slots) == 0 {
		return s.engine.PersonLimits(*facility, nil), nil
	}

	view, err := s.evaluate(ctx, facility, *draft.Date)
	if err != nil {
		return domain.PersonLimits{}, err
	}
	sv, _ := view.Find(draft.Slots[0])
	return s.engine.PersonLimits(*facility, sv), nil
}

func (s *Service) evaluate(ctx context.Context, facility *domain.Facility, date time.Time) (*slots.DayView, error) {
	bookings, err := s.bookingClient.GetBookingsByDate(ctx, date)
	if err != nil {
		s.logger.Error("evaluate: failed to get bookings for date=%s: %v", date.Format(domain.DateFormat), err)
		return nil, fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
	}

	view, err := s.engine.EvaluateDay(*facility, date, bookings, s.now())
	if err != nil {
		return nil, fmt.Errorf("%w: evaluate slots: %v", ErrInternal, err)
	}
	return view, nil
}

func (s *Service) load(ctx context.Context, id uuid.UUID) (*domain.Draft, *domain.Facility, error) {
	draft, err := s.draftRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, draftRepo.ErrDraftNotFound) {
			s.logger.Warn("load: draft id=%s not found", id)
			return nil, nil, ErrDraftNotFound
		}
		s.logger.Error("load: repository error for draft id=%s: %v", id, err)
		return nil, nil, fmt.Errorf("%w: load - repository error: %v", ErrInternal, err)
	}

	facility, err := s.getFacility(ctx, draft.FacilityID)
	if err != nil {
		return nil, nil, err
	}

	return draft, facility, nil
}

func (s *Service) save(ctx context.Context, draft *domain.Draft, expectedRevision int64) error {
	if err := s.draftRepo.Update(ctx, draft, expectedRevision); err != nil {
		switch {
		case errors.Is(err, draftRepo.ErrDraftConflict):
			s.logger.Warn("save: draft id=%s revision=%d conflict", draft.ID, expectedRevision)
			return ErrDraftConflict
		case errors.Is(err, draftRepo.ErrDraftNotFound):
			return ErrDraftNotFound
		}
		s.logger.Error("save: repository error for draft id=%s: %v", draft.ID, err)
		return fmt.Errorf("%w: save - repository error: %v", ErrInternal, err)
	}
	return nil
}

func (s *Service) getFacility(ctx context.Context, id string) (*domain.Facility, error) {
	facility, err := s.catalog.GetFacility(ctx, id)
	if err != nil {
		if errors.Is(err, facilitiesService.ErrFacilityNotFound) {
			return nil, ErrFacilityNotFound
		}
		return nil, fmt.Errorf("%w: failed to get facility: %v", ErrInternal, err)
	}
	return facility, nil
}

// respond собирает ответ: стоимость и границы счетчика.
// Если API бронирований недоступно, для бассейна отдаются статические границы.
func (s *Service) respond(ctx context.Context, facility *domain.Facility, draft domain.Draft) (*models.DraftResponse, error) {
	quote, err := s.calculator.QuoteDraft(*facility, draft)
	if err != nil {
		s.logger.Error("respond: failed to price draft id=%s: %v", draft.ID, err)
		return nil, fmt.Errorf("%w: pricing: %v", ErrInternal, err)
	}

	limits, err := s.personLimits(ctx, facility, draft)
	if err != nil {
		s.logger.Warn("respond: using static person limits for draft id=%s: %v", draft.ID, err)
		limits = s.engine.PersonLimits(*facility, nil)
	}

	var paired *domain.TimeSlot
	if facility.Category == domain.CategoryCombo && len(draft.Slots) == 1 {
		p := s.engine.PairedPoolSlot(draft.Slots[0])
		paired = &p
	}

	return models.FromDomainDraft(draft, quote, limits, paired), nil
}

func (s *Service) now() time.Time {
	return s.timeProvider.Now().In(s.location)
}

func mapDomainError(err error) error {
	if errors.Is(err, domain.ErrDraftLocked) || errors.Is(err, domain.ErrSubmissionInFlight) {
		return ErrDraftLocked
	}
	return fmt.Errorf("%w: %v", ErrInvalidInput, err)
}
