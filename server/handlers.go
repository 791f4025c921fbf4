package server

import (
	"github.com/shravanasati/minihttp/request"
	"github.com/shravanasati/minihttp/response"
)

// Represents a request handler function. Takes a request and returns a response,
// or an error for the connection handler to act on.
type Handler func(*request.Request) (*response.Response, error)
