package request

import (
	"fmt"
	"strings"

	"github.com/shravanasati/minihttp/headers"
)

const protocolSuffix = "HTTP/1.1"

var registeredNurse = "\r\n"

// Request is a parsed HTTP request. It is not modified after parsing.
type Request struct {
	Path    string
	Verb    Verb
	Headers *headers.Headers
	// Body is nil when the request carried no body line.
	Body *string
}

func parseRequestLine(line string) (Verb, string, error) {
	stripped, ok := strings.CutSuffix(line, protocolSuffix)
	if !ok {
		return "", "", ErrProtocolMismatch
	}

	method, path, found := strings.Cut(strings.TrimSpace(stripped), " ")
	if !found || method == "" || path == "" {
		return "", "", fmt.Errorf("%w: %q", ErrMalformedRequestLine, line)
	}

	verb, err := ParseVerb(method)
	if err != nil {
		return "", "", err
	}
	return verb, path, nil
}

func splitLines(raw string) []string {
	lines := []string{}
	for line := range strings.SplitSeq(raw, registeredNurse) {
		if line == "" {
			// blank lines, including the header/body separator, carry nothing
			continue
		}
		lines = append(lines, line)
	}
	return lines
}

// Parse turns the raw text of a request into a [Request].
//
// Empty lines are dropped, so the blank line between headers and body
// is not used to find the body. Instead, the last line after the request
// line is the body when it does not contain ": ". A body that does contain
// ": " is read as a header. Lines containing a colon are header
// candidates; candidates without the ": " separator are dropped.
func Parse(raw string) (*Request, error) {
	lines := splitLines(raw)
	if len(lines) == 0 {
		return nil, ErrEmptyRequest
	}

	verb, path, err := parseRequestLine(lines[0])
	if err != nil {
		return nil, err
	}

	rest := lines[1:]
	var body *string
	if n := len(rest); n > 0 && !strings.Contains(rest[n-1], headers.Separator) {
		last := rest[n-1]
		body = &last
		rest = rest[:n-1]
	}

	hs := headers.NewHeaders()
	for _, line := range rest {
		if !strings.Contains(line, ":") {
			continue
		}
		// malformed candidates are skipped rather than failing the request
		_ = hs.ParseFieldLine(line)
	}

	return &Request{
		Path:    path,
		Verb:    verb,
		Headers: hs,
		Body:    body,
	}, nil
}

// RequireHeader returns the value of a header that must be present.
func (r *Request) RequireHeader(name string) (string, error) {
	v, ok := r.Headers.Lookup(name)
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrMissingHeader, name)
	}
	return v, nil
}

// RequireBody returns the body of a request that must carry one.
func (r *Request) RequireBody() (string, error) {
	if r.Body == nil {
		return "", ErrMissingBody
	}
	return *r.Body, nil
}
