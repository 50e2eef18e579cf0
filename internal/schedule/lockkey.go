package schedule

import (
	"fmt"
	"sort"
	"time"

	"github.com/m04kA/SMC-RoomBooking/internal/domain"
)

// LockKey ключ критической секции "комната + дата"
func LockKey(roomID int64, date time.Time) string {
	return fmt.Sprintf("room:%d:%s", roomID, date.Format(domain.DateFormat))
}

// LockKeys уникальные ключи в фиксированном порядке, чтобы два переноса не ждали друг друга
func LockKeys(keys ...string) []string {
	seen := make(map[string]struct{}, len(keys))
	out := make([]string, 0, len(keys))
	for _, k := range keys {
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
