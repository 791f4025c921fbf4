package headers

import (
	"iter"
	"strings"
)

// Separator splits a header line into name and value.
const Separator = ": "

// Headers represents a collection of HTTP headers.
// Names are case-sensitive as received. Setting an existing name overwrites
// its value but keeps its first position, so serialisation order is the
// order in which names were first seen.
type Headers struct {
	keys   []string
	values map[string]string
}

// Set sets the value of a header, replacing any previous value.
func (h *Headers) Set(key, value string) {
	if _, ok := h.values[key]; !ok {
		h.keys = append(h.keys, key)
	}
	h.values[key] = value
}

// Get returns the value of a header, or an empty string if it is not present.
func (h *Headers) Get(key string) string {
	return h.values[key]
}

// Lookup returns the value of a header and whether it was present.
func (h *Headers) Lookup(key string) (string, bool) {
	v, ok := h.values[key]
	return v, ok
}

// Remove removes a header.
func (h *Headers) Remove(key string) {
	if _, ok := h.values[key]; !ok {
		return
	}
	delete(h.values, key)
	for i, k := range h.keys {
		if k == key {
			h.keys = append(h.keys[:i], h.keys[i+1:]...)
			break
		}
	}
}

// All returns an iterator over all headers in insertion order.
func (h *Headers) All() iter.Seq2[string, string] {
	return func(yield func(string, string) bool) {
		for _, k := range h.keys {
			if !yield(k, h.values[k]) {
				return
			}
		}
	}
}

// ParseFieldLine parses a single `Name: value` line and sets it.
// The line must contain exactly one ": ". The name may be empty.
func (h *Headers) ParseFieldLine(line string) error {
	if strings.Count(line, Separator) != 1 {
		return ErrMalformedHeader
	}

	key, value, _ := strings.Cut(line, Separator)
	h.Set(key, value)
	return nil
}

// Size returns the number of headers.
func (h *Headers) Size() int {
	return len(h.keys)
}

// NewHeaders creates a new Headers object.
func NewHeaders() *Headers {
	return &Headers{
		values: map[string]string{},
	}
}
