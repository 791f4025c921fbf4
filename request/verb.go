package request

import "fmt"

// Verb is an HTTP method supported by the server.
type Verb string

const (
	GET  Verb = "GET"
	POST Verb = "POST"
)

var supportedVerbs = map[string]Verb{
	string(GET):  GET,
	string(POST): POST,
}

// ParseVerb parses a method token. The match is exact and case-sensitive.
func ParseVerb(token string) (Verb, error) {
	v, ok := supportedVerbs[token]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnsupportedMethod, token)
	}
	return v, nil
}

// String returns the canonical method name.
func (v Verb) String() string {
	return string(v)
}
