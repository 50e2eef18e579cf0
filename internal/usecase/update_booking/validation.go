package update_booking

import (
	"fmt"
	"strings"

	"github.com/m04kA/SMC-RoomBooking/internal/domain"
)

func validateRequest(req *Request) error {
	if req == nil {
		return fmt.Errorf("%w: request is nil", ErrInvalidInput)
	}

	if req.BookingID <= 0 {
		return fmt.Errorf("%w: bookingID must be positive", ErrInvalidInput)
	}

	req.Requester = domain.NewRequester(req.Requester.Name, req.Requester.Org)
	if !req.Requester.IsValid() {
		return fmt.Errorf("%w: requester name and org must be at least %d characters",
			ErrInvalidInput, domain.MinRequesterFieldLength)
	}

	req.Purpose = strings.TrimSpace(req.Purpose)
	if len([]rune(req.Purpose)) > domain.MaxPurposeLength {
		return fmt.Errorf("%w: purpose must be at most %d characters", ErrInvalidInput, domain.MaxPurposeLength)
	}

	return nil
}

// checkEditable бронирование подтверждено и принадлежит пользователю
func checkEditable(booking *domain.Booking, requester domain.Requester) error {
	if !booking.IsActive() {
		return ErrBookingNotFound
	}
	if !booking.IsOwnedBy(requester) {
		return ErrNotOwner
	}
	return nil
}
