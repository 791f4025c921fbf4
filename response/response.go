package response

import (
	"bytes"
	"fmt"
	"io"
	"strconv"

	"github.com/shravanasati/minihttp/headers"
)

// Response struct for fluent method chaining.
// Headers are serialised in the order they were added; none are added implicitly.
type Response struct {
	StatusCode StatusCode
	Headers    *headers.Headers
	Body       []byte
}

// NewBaseResponse creates a 200 response with no headers and no body.
func NewBaseResponse() *Response {
	return &Response{
		Headers:    headers.NewHeaders(),
		StatusCode: StatusOK,
	}
}

// NewStatusResponse creates a response whose plain body is the status line
// text, e.g. "404 Not Found". No headers are set.
func NewStatusResponse(code StatusCode) *Response {
	return NewBaseResponse().
		WithStatusCode(code).
		WithBodyString(fmt.Sprintf("%d %s", code, GetStatusReason(code)))
}

func newSizedResponse(contentType string, body []byte) *Response {
	return NewBaseResponse().
		WithHeader("Content-Type", contentType).
		WithHeader("Content-Length", strconv.Itoa(len(body))).
		WithBody(body)
}

// NewTextResponse creates a text/plain response. Content-Length is the byte length of body.
func NewTextResponse(body string) *Response {
	return newSizedResponse("text/plain", []byte(body))
}

// NewOctetResponse creates an application/octet-stream response carrying raw file contents.
func NewOctetResponse(data []byte) *Response {
	return newSizedResponse("application/octet-stream", data)
}

func (r *Response) GetStatusCode() StatusCode {
	return r.StatusCode
}

func (r *Response) GetHeaders() *headers.Headers {
	return r.Headers
}

func (r *Response) WithStatusCode(code StatusCode) *Response {
	r.StatusCode = code
	return r
}

func (r *Response) WithHeader(key, value string) *Response {
	r.Headers.Set(key, value)
	return r
}

func (r *Response) WithBody(body []byte) *Response {
	r.Body = body
	return r
}

func (r *Response) WithBodyString(body string) *Response {
	r.Body = []byte(body)
	return r
}

// Write serialises the response to w.
func (r *Response) Write(w io.Writer) error {
	rw := NewResponseWriter(w)
	err := rw.WriteStatusLine(r.StatusCode)
	if err != nil {
		return err
	}

	err = rw.WriteHeaders(r.Headers)
	if err != nil {
		return err
	}

	if len(r.Body) > 0 {
		return rw.WriteBody(r.Body)
	}
	return nil
}

// Bytes returns the serialised response.
func (r *Response) Bytes() []byte {
	var b bytes.Buffer
	// writes to a bytes.Buffer cannot fail
	_ = r.Write(&b)
	return b.Bytes()
}
