package storage

import "errors"

// errStorageUnavailable simulates quota/availability failures in tests.
var errStorageUnavailable = errors.New("storage unavailable")

// ErrStorageUnavailable reports whether err came from an unavailable
// backend rather than corrupt data.
func ErrStorageUnavailable(err error) bool {
	return errors.Is(err, errStorageUnavailable)
}
