package lock

import "errors"

// ErrLockFailed возвращается, если Redis недоступен
var ErrLockFailed = errors.New("lock: failed to acquire")
