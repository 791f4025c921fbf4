package headers

import "errors"

// ErrMalformedHeader is returned when a header line does not contain exactly one ": " separator.
var ErrMalformedHeader = errors.New("malformed header line")
