package router

import (
	"fmt"
	"net/http"
	"net/url"
	"slices"
	"strings"

	"github.com/dmitrymomot/mailpreview/core/handler"
)

// methodAny marks handlers registered for every method.
const methodAny = "*"

var supportedMethods = map[string]struct{}{
	http.MethodGet:     {},
	http.MethodHead:    {},
	http.MethodPost:    {},
	http.MethodPut:     {},
	http.MethodPatch:   {},
	http.MethodDelete:  {},
	http.MethodConnect: {},
	http.MethodOptions: {},
	http.MethodTrace:   {},
}

type segmentKind uint8

// Ordered by matching priority, lowest first.
const (
	segWildcard segmentKind = iota
	segParam
	segStatic
)

type segment struct {
	kind  segmentKind
	value string // literal text for static segments, key for params
}

// route is one registered pattern with its per-method handlers.
// A mounted sub-router is stored as a methodAny handler with mount set.
type route[C handler.Context] struct {
	pattern  string
	segments []segment
	handlers map[string]handler.HandlerFunc[C]
	mount    string
	sub      Routes
}

// table is an ordered list of routes; registration order breaks ties.
type table[C handler.Context] struct {
	routes []*route[C]
}

// parsePattern splits a pattern like /users/{id}/* into segments.
func parsePattern(pattern string) ([]segment, error) {
	if pattern == "" || pattern[0] != '/' {
		return nil, fmt.Errorf("%w: '%s'", ErrInvalidPattern, pattern)
	}

	parts := strings.Split(pattern[1:], "/")
	segs := make([]segment, 0, len(parts))
	seen := make(map[string]struct{})
	for i, part := range parts {
		switch {
		case part == "*":
			if i != len(parts)-1 {
				return nil, fmt.Errorf("%w: '%s'", ErrWildcardPosition, pattern)
			}
			segs = append(segs, segment{kind: segWildcard})
		case strings.HasPrefix(part, "{") && strings.HasSuffix(part, "}") && len(part) > 2:
			key := part[1 : len(part)-1]
			if strings.ContainsAny(key, "{}/") {
				return nil, fmt.Errorf("%w: '%s'", ErrParamDelimiter, pattern)
			}
			if _, dup := seen[key]; dup {
				return nil, fmt.Errorf("%w: '%s' in '%s'", ErrDuplicateParam, key, pattern)
			}
			seen[key] = struct{}{}
			segs = append(segs, segment{kind: segParam, value: key})
		case strings.ContainsAny(part, "{}"):
			return nil, fmt.Errorf("%w: '%s'", ErrParamDelimiter, pattern)
		default:
			segs = append(segs, segment{kind: segStatic, value: part})
		}
	}
	return segs, nil
}

// insert adds h for method under pattern, reusing an existing route for the same pattern.
func (t *table[C]) insert(method, pattern string, h handler.HandlerFunc[C]) *route[C] {
	for _, rt := range t.routes {
		if rt.pattern == pattern {
			rt.handlers[method] = h
			return rt
		}
	}

	segs, err := parsePattern(pattern)
	if err != nil {
		panic(err)
	}
	rt := &route[C]{
		pattern:  pattern,
		segments: segs,
		handlers: map[string]handler.HandlerFunc[C]{method: h},
	}
	t.routes = append(t.routes, rt)
	return rt
}

// find returns the most specific route matching path that accepts method.
// When the path matches but no route accepts the method, allowed lists the
// methods that would have matched.
func (t *table[C]) find(method, path string) (rt *route[C], h handler.HandlerFunc[C], params map[string]string, allowed []string) {
	parts := strings.Split(strings.TrimPrefix(path, "/"), "/")

	for _, candidate := range t.routes {
		p, ok := candidate.match(parts)
		if !ok {
			continue
		}

		fn := candidate.handlers[method]
		if fn == nil {
			fn = candidate.handlers[methodAny]
		}
		if fn == nil {
			for m := range candidate.handlers {
				if !slices.Contains(allowed, m) {
					allowed = append(allowed, m)
				}
			}
			continue
		}

		if rt == nil || candidate.beats(rt) {
			rt, h, params = candidate, fn, p
		}
	}

	if rt != nil {
		allowed = nil
	}
	slices.Sort(allowed)
	return rt, h, params, allowed
}

// match reports whether parts satisfy the route and returns the captured params.
// Param values are unescaped; the wildcard remainder is stored under "*".
func (rt *route[C]) match(parts []string) (map[string]string, bool) {
	var params map[string]string
	for i, seg := range rt.segments {
		if seg.kind == segWildcard {
			if i > len(parts) {
				return nil, false
			}
			if params == nil {
				params = make(map[string]string, 1)
			}
			params["*"] = strings.Join(parts[i:], "/")
			return params, true
		}
		if i >= len(parts) {
			return nil, false
		}
		switch seg.kind {
		case segStatic:
			if parts[i] != seg.value {
				return nil, false
			}
		case segParam:
			if parts[i] == "" {
				return nil, false
			}
			if params == nil {
				params = make(map[string]string, len(rt.segments))
			}
			params[seg.value] = unescape(parts[i])
		}
	}
	return params, len(parts) == len(rt.segments)
}

// beats reports whether rt is more specific than other: at the first
// differing segment static wins over param, param over wildcard;
// with an equal prefix the shorter pattern wins.
func (rt *route[C]) beats(other *route[C]) bool {
	n := min(len(rt.segments), len(other.segments))
	for i := range n {
		a, b := rt.segments[i].kind, other.segments[i].kind
		if a != b {
			return a > b
		}
	}
	return len(rt.segments) < len(other.segments)
}

func unescape(s string) string {
	if v, err := url.PathUnescape(s); err == nil {
		return v
	}
	return s
}

// routes lists registered routes, expanding mounted sub-routers once under their prefix.
func (t *table[C]) list() []Route {
	var out []Route
	for _, rt := range t.routes {
		if rt.sub != nil {
			if !strings.HasSuffix(rt.pattern, "/*") {
				continue
			}
			for _, sr := range rt.sub.Routes() {
				out = append(out, Route{Method: sr.Method, Pattern: joinPath(rt.mount, sr.Pattern)})
			}
			continue
		}

		methods := make([]string, 0, len(rt.handlers))
		for m := range rt.handlers {
			methods = append(methods, m)
		}
		slices.Sort(methods)
		for _, m := range methods {
			out = append(out, Route{Method: m, Pattern: rt.pattern})
		}
	}
	return out
}

func joinPath(prefix, p string) string {
	prefix = strings.TrimSuffix(prefix, "/")
	if p == "/" {
		return prefix + "/"
	}
	return prefix + p
}
