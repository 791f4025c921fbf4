package request

import "errors"

var ErrEmptyRequest = errors.New("empty request")
var ErrProtocolMismatch = errors.New("protocol doesn't match HTTP/1.1")
var ErrMalformedRequestLine = errors.New("malformed request line")
var ErrUnsupportedMethod = errors.New("unsupported method")

// Returned by route handlers when the request lacks something they need.
var ErrMissingHeader = errors.New("missing required header")
var ErrMissingBody = errors.New("missing request body")
