package get_room_availability

import "fmt"

func validateRequest(req *Request) error {
	if req == nil {
		return fmt.Errorf("%w: request is nil", ErrInvalidInput)
	}

	if req.RoomID <= 0 {
		return fmt.Errorf("%w: roomID must be positive", ErrInvalidInput)
	}

	if req.Date == "" {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if req.StepMinutes < 0 || req.StepMinutes > 60 {
		return fmt.Errorf("%w: step must be in [1, 60] minutes", ErrInvalidInput)
	}

	return nil
}
