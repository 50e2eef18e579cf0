package get_rooms_status

import (
	"context"
	"time"

	getRoomStatus "github.com/m04kA/SMC-RoomBooking/internal/usecase/get_room_status"
)

type GetRoomStatusUseCase interface {
	ExecuteAll(ctx context.Context, at time.Time) ([]*getRoomStatus.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
