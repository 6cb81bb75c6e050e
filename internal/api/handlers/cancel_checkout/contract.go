package cancel_checkout

import (
	"context"

	cancelCheckout "github.com/m04kA/SMC-VenueBooking/internal/usecase/cancel_checkout"
)

type CancelCheckoutUseCase interface {
	Execute(ctx context.Context, req *cancelCheckout.Request) (*cancelCheckout.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
