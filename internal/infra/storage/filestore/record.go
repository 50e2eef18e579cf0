package filestore

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-RoomBooking/internal/domain"
	"github.com/m04kA/SMC-RoomBooking/pkg/ptr"
	"github.com/m04kA/SMC-RoomBooking/pkg/types"
)

// legacyTimestampLayout формат created_at в старых файлах (без зоны)
const legacyTimestampLayout = "2006-01-02T15:04:05.999999"

// record формат бронирования в bookings.json
type record struct {
	ID          int64  `json:"id"`
	RoomID      int64  `json:"room_id"`
	RoomName    string `json:"room_name"`
	Date        string `json:"date"`
	StartTime   string `json:"start_time"`
	EndTime     string `json:"end_time"`
	UserName    string `json:"user_name"`
	UserCompany string `json:"user_company"`
	Purpose     string `json:"purpose"`
	Status      string `json:"status"`
	CreatedAt   string `json:"created_at"`
	UpdatedAt   string `json:"updated_at,omitempty"`
	CancelledAt string `json:"cancelled_at,omitempty"`
}

func fromDomain(b *domain.Booking) record {
	r := record{
		ID:          b.ID,
		RoomID:      b.RoomID,
		RoomName:    b.RoomName,
		Date:        b.Date.Format(domain.DateFormat),
		StartTime:   b.StartTime.String(),
		EndTime:     b.EndTime.String(),
		UserName:    b.RequesterName,
		UserCompany: b.RequesterOrg,
		Purpose:     b.Purpose,
		Status:      string(b.Status),
		CreatedAt:   formatTimestamp(b.CreatedAt),
		UpdatedAt:   formatTimestamp(b.UpdatedAt),
	}
	if b.CancelledAt != nil {
		r.CancelledAt = formatTimestamp(*b.CancelledAt)
	}
	return r
}

func (r record) toDomain() (*domain.Booking, error) {
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, fmt.Errorf("%w: id=%d date %q", ErrCorruptRecord, r.ID, r.Date)
	}

	start, err := types.NewTimeStringFromString(r.StartTime)
	if err != nil {
		return nil, fmt.Errorf("%w: id=%d start_time %q", ErrCorruptRecord, r.ID, r.StartTime)
	}

	end, err := types.NewTimeStringFromString(r.EndTime)
	if err != nil {
		return nil, fmt.Errorf("%w: id=%d end_time %q", ErrCorruptRecord, r.ID, r.EndTime)
	}

	status := domain.BookingStatus(r.Status)
	if status == "" {
		status = domain.StatusConfirmed
	}

	b := &domain.Booking{
		ID:            r.ID,
		RoomID:        r.RoomID,
		RoomName:      r.RoomName,
		Date:          date,
		StartTime:     start,
		EndTime:       end,
		RequesterName: r.UserName,
		RequesterOrg:  r.UserCompany,
		Purpose:       r.Purpose,
		Status:        status,
		CreatedAt:     parseTimestamp(r.CreatedAt),
		UpdatedAt:     parseTimestamp(r.UpdatedAt),
	}

	if r.CancelledAt != "" {
		b.CancelledAt = ptr.Ptr(parseTimestamp(r.CancelledAt))
	}

	return b, nil
}

func formatTimestamp(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(time.RFC3339Nano)
}

func parseTimestamp(s string) time.Time {
	if s == "" {
		return time.Time{}
	}
	if t, err := time.Parse(time.RFC3339Nano, s); err == nil {
		return t
	}
	if t, err := time.Parse(legacyTimestampLayout, s); err == nil {
		return t
	}
	return time.Time{}
}
