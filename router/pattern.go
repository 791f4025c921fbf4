// used by the router to match on paths

package router

import "strings"

// pattern is a compiled route path. It is either an exact path, or a
// literal prefix followed by a named wildcard, eg. /echo/*text.
type pattern struct {
	raw          string
	prefix       string
	wildcardName string
	wildcard     bool
}

func compilePattern(path string) pattern {
	i := strings.LastIndexByte(path, '*')
	if i == -1 || strings.Contains(path[i:], "/") {
		return pattern{raw: path, prefix: path}
	}
	return pattern{
		raw:          path,
		prefix:       path[:i],
		wildcardName: path[i+1:],
		wildcard:     true,
	}
}

// match reports whether path matches the pattern. The wildcard captures
// everything after the prefix, verbatim and possibly empty.
func (p pattern) match(path string) (Params, bool) {
	if !p.wildcard {
		if path != p.prefix {
			return nil, false
		}
		return Params{}, true
	}

	rest, ok := strings.CutPrefix(path, p.prefix)
	if !ok {
		return nil, false
	}
	return Params{p.wildcardName: rest}, true
}

func (p pattern) String() string {
	return p.raw
}
