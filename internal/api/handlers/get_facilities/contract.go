package get_facilities

import (
	"context"

	"github.com/m04kA/SMC-VenueBooking/internal/service/facilities/models"
)

type FacilityService interface {
	List(ctx context.Context) ([]*models.FacilityResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Error(format string, v ...interface{})
}
