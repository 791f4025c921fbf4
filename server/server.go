package server

import (
	"errors"
	"log"
	"net"
	"sync/atomic"
	"syscall"
	"time"
	"unicode/utf8"

	"github.com/shravanasati/minihttp/request"
	"github.com/shravanasati/minihttp/response"
)

const (
	minAcceptDelay = 5 * time.Millisecond
	maxAcceptDelay = time.Second
)

type Server struct {
	opts     ServerOpts
	listener net.Listener
	closed   atomic.Bool
	handler  Handler
}

// Shutdown the server. Connections already accepted run to completion.
func (s *Server) Close() error {
	s.closed.Store(true)
	return s.listener.Close()
}

// Addr returns the address the server is listening on.
func (s *Server) Addr() net.Addr {
	return s.listener.Addr()
}

// temporaryAcceptError reports whether Accept may succeed if retried.
func temporaryAcceptError(err error) bool {
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return true
	}
	return errors.Is(err, syscall.EMFILE) ||
		errors.Is(err, syscall.ENFILE) ||
		errors.Is(err, syscall.ECONNABORTED)
}

func (s *Server) listen() {
	var delay time.Duration
	for {
		conn, err := s.listener.Accept()
		if err != nil {
			if s.closed.Load() || errors.Is(err, net.ErrClosed) {
				return
			}
			switch {
			case !temporaryAcceptError(err):
				delay = maxAcceptDelay
			case delay == 0:
				delay = minAcceptDelay
			default:
				delay = min(2*delay, maxAcceptDelay)
			}
			log.Printf("unable to accept connection: %v; retrying in %v\n", err, delay)
			time.Sleep(delay)
			continue
		}
		delay = 0

		if s.opts.ReadTimeout != 0 {
			if err := conn.SetReadDeadline(time.Now().Add(s.opts.ReadTimeout)); err != nil {
				log.Printf("dropping connection from %s: unable to set read deadline: %v\n", conn.RemoteAddr(), err)
				conn.Close()
				continue
			}
		}
		go s.handle(conn)
	}
}

// readRequest reads the request in a single read call.
func (s *Server) readRequest(conn net.Conn) (*request.Request, error) {
	buf := make([]byte, s.opts.ReadBufferSize)
	n, err := conn.Read(buf)
	if n == 0 {
		if err == nil {
			err = ErrEmptyRead
		}
		return nil, err
	}

	data := buf[:n]
	if !utf8.Valid(data) {
		return nil, ErrInvalidEncoding
	}
	return request.Parse(string(data))
}

// errorResponse maps a handler error to the response sent for it.
// A nil response means the connection is dropped without one.
func errorResponse(err error) *response.Response {
	switch {
	case errors.Is(err, request.ErrMissingHeader), errors.Is(err, request.ErrMissingBody):
		return response.NewStatusResponse(response.StatusBadRequest)
	default:
		return nil
	}
}

func (s *Server) handle(conn net.Conn) {
	// defers are stacked

	defer func() {
		if err := conn.Close(); err != nil {
			log.Println("unable to close connection", err)
		}
	}()

	defer func() {
		if r := recover(); r != nil {
			s.opts.Recovery(r)
		}
	}()

	req, err := s.readRequest(conn)
	if err != nil {
		// nothing is written back for a request that could not be read or parsed
		log.Printf("dropping connection from %s: %v\n", conn.RemoteAddr(), err)
		return
	}

	resp, err := s.handler(req)
	if err != nil {
		resp = errorResponse(err)
		if resp == nil {
			log.Printf("%s %s failed, dropping connection: %v\n", req.Verb, req.Path, err)
			return
		}
	}

	if _, err := conn.Write(resp.Bytes()); err != nil {
		log.Println("unable to write response to connection:", err)
	}
}

func newServer(opts ServerOpts, handler Handler) *Server {
	return &Server{
		opts:    opts.withDefaults(),
		handler: handler,
	}
}

// Starts the HTTP server with the given options and handler.
// It returns once the listener is bound; connections are accepted in the background.
func Serve(opts ServerOpts, handler Handler) (*Server, error) {
	s := newServer(opts, handler)

	listener, err := net.Listen("tcp", s.opts.Address)
	if err != nil {
		return nil, err
	}
	s.serveListener(listener)
	return s, nil
}

// serveListener accepts connections from l in the background until the server is closed.
func (s *Server) serveListener(l net.Listener) {
	s.listener = l
	go s.listen()
}
