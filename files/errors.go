package files

import "errors"

// ErrInvalidName is returned for file names that would resolve outside the root.
var ErrInvalidName = errors.New("invalid file name")
