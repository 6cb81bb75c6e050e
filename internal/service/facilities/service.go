package facilities

import (
	"context"

	"github.com/m04kA/SMC-VenueBooking/internal/domain"
	"github.com/m04kA/SMC-VenueBooking/internal/service/facilities/models"
)

// Service каталог площадок. Данные неизменяемые и загружаются из конфигурации
type Service struct {
	facilities []domain.Facility
	byID       map[string]domain.Facility
	rules      domain.VenueRules
	logger     Logger
}

// NewService создает новый экземпляр каталога
func NewService(facilities []domain.Facility, rules domain.VenueRules, logger Logger) *Service {
	byID := make(map[string]domain.Facility, len(facilities))
	list := make([]domain.Facility, len(facilities))
	copy(list, facilities)

	for _, f := range list {
		byID[f.ID] = f
	}

	return &Service{
		facilities: list,
		byID:       byID,
		rules:      rules,
		logger:     logger,
	}
}

// List возвращает все площадки в порядке конфигурации
func (s *Service) List(ctx context.Context) ([]*models.FacilityResponse, error) {
	result := make([]*models.FacilityResponse, 0, len(s.facilities))
	for _, f := range s.facilities {
		result = append(result, models.FromDomainFacility(f, s.rules))
	}

	s.logger.Info("List: returned %d facilities", len(result))
	return result, nil
}

// GetByID возвращает площадку для API
func (s *Service) GetByID(ctx context.Context, id string) (*models.FacilityResponse, error) {
	f, err := s.GetFacility(ctx, id)
	if err != nil {
		return nil, err
	}
	return models.FromDomainFacility(*f, s.rules), nil
}

// GetFacility возвращает доменную площадку
func (s *Service) GetFacility(ctx context.Context, id string) (*domain.Facility, error) {
	f, ok := s.byID[id]
	if !ok {
		s.logger.Warn("GetFacility: facility id=%s not found", id)
		return nil, ErrFacilityNotFound
	}
	return &f, nil
}
