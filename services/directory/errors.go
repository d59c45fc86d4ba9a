package directory

import "errors"

// ErrDirectoryUnavailable is returned when every list attempt failed.
var ErrDirectoryUnavailable = errors.New("user directory unavailable")
