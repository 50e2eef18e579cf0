package cancel_booking

import (
	"context"

	"github.com/m04kA/SMC-RoomBooking/internal/domain"
)

type BookingService interface {
	Cancel(ctx context.Context, bookingID int64, requester domain.Requester) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
