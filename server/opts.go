package server

import (
	"log"
	"runtime/debug"
	"time"
)

const (
	DefaultAddress        = "127.0.0.1:4221"
	DefaultReadBufferSize = 4096
)

type ServerOpts struct {
	// The address for the server to listen on. Defaults to 127.0.0.1:4221.
	Address string

	// Size of the buffer a request is read into. The request must arrive in a
	// single read of at most this many bytes. Defaults to 4096.
	ReadBufferSize int

	// Optional read deadline per connection. Zero means a stalled peer holds its
	// connection open indefinitely.
	ReadTimeout time.Duration

	// Recovery is called with the return value of recover() when a handler panics.
	// The connection is closed afterwards without a response.
	Recovery func(any)
}

var defaultRecovery = func(r any) {
	log.Println("recovered from panic:", r)
	debug.PrintStack()
}

func (o ServerOpts) withDefaults() ServerOpts {
	if o.Address == "" {
		o.Address = DefaultAddress
	}
	if o.ReadBufferSize <= 0 {
		o.ReadBufferSize = DefaultReadBufferSize
	}
	if o.Recovery == nil {
		o.Recovery = defaultRecovery
	}
	return o
}
