package server

import "errors"

var ErrEmptyRead = errors.New("connection closed before sending a request")
var ErrInvalidEncoding = errors.New("request is not valid UTF-8")
