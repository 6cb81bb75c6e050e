package get_facility

import (
	"context"

	"github.com/m04kA/SMC-VenueBooking/internal/service/facilities/models"
)

type FacilityService interface {
	GetByID(ctx context.Context, id string) (*models.FacilityResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
