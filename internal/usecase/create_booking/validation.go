package create_booking

import (
	"fmt"
	"strings"

	"github.com/m04kA/SMC-RoomBooking/internal/domain"
)

// validateRequest валидирует входные данные, не относящиеся к правилам слота
func validateRequest(req *Request) error {
	if req == nil {
		return fmt.Errorf("%w: request is nil", ErrInvalidInput)
	}

	if req.RoomID <= 0 {
		return fmt.Errorf("%w: roomID must be positive", ErrInvalidInput)
	}

	req.Requester = domain.NewRequester(req.Requester.Name, req.Requester.Org)
	if !req.Requester.IsValid() {
		return fmt.Errorf("%w: requester name and org must be at least %d characters",
			ErrInvalidInput, domain.MinRequesterFieldLength)
	}

	if len([]rune(req.Requester.Name)) > domain.MaxRequesterFieldLength ||
		len([]rune(req.Requester.Org)) > domain.MaxRequesterFieldLength {
		return fmt.Errorf("%w: requester name and org must be at most %d characters",
			ErrInvalidInput, domain.MaxRequesterFieldLength)
	}

	req.Purpose = strings.TrimSpace(req.Purpose)
	if len([]rune(req.Purpose)) > domain.MaxPurposeLength {
		return fmt.Errorf("%w: purpose must be at most %d characters", ErrInvalidInput, domain.MaxPurposeLength)
	}

	return nil
}
