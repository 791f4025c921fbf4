package response

import (
	"fmt"
	"io"

	"github.com/shravanasati/minihttp/headers"
)

type writerState int

const (
	writingStatusLine writerState = iota
	writingHeaders
	writingBody
	finished
)

var writerStateNames = [...]string{"status line", "headers", "body", "finished"}

func (s writerState) String() string {
	return writerStateNames[s]
}

// ResponseWriter writes a response in order: status line, headers, body.
// Writing a part out of order returns [ErrInvalidWriterState].
type ResponseWriter struct {
	conn  io.Writer
	state writerState
}

func NewResponseWriter(conn io.Writer) *ResponseWriter {
	return &ResponseWriter{conn: conn, state: writingStatusLine}
}

func (rw *ResponseWriter) WriteStatusLine(statusCode StatusCode) error {
	if rw.state != writingStatusLine {
		return fmt.Errorf("%w: status line written in %s state", ErrInvalidWriterState, rw.state)
	}
	_, err := fmt.Fprintf(rw.conn, "HTTP/1.1 %d %s\r\n", statusCode, GetStatusReason(statusCode))
	if err != nil {
		return err
	}

	rw.state++
	return nil
}

// WriteHeaders writes every header line followed by the blank line.
func (rw *ResponseWriter) WriteHeaders(h *headers.Headers) error {
	if rw.state != writingHeaders {
		return fmt.Errorf("%w: headers written in %s state", ErrInvalidWriterState, rw.state)
	}
	for k, v := range h.All() {
		if _, err := fmt.Fprintf(rw.conn, "%s%s%s\r\n", k, headers.Separator, v); err != nil {
			return err
		}
	}
	if _, err := io.WriteString(rw.conn, "\r\n"); err != nil {
		return err
	}
	rw.state++
	return nil
}

func (rw *ResponseWriter) WriteBody(b []byte) error {
	if rw.state != writingBody {
		return fmt.Errorf("%w: body written in %s state", ErrInvalidWriterState, rw.state)
	}
	if _, err := rw.conn.Write(b); err != nil {
		return err
	}
	rw.state++
	return nil
}
