package routes

import "strings"

// Route is a single catalog entry. Origin and Destination are always lowercase.
type Route struct {
	Origin      string
	Destination string
	Number      int

	// members read from disk beyond the three known ones, written back on save
	extra map[string]any
}

// New builds a route with its endpoints normalized to lowercase.
func New(origin, destination string, number int) Route {
	return Route{
		Origin:      Normalize(origin),
		Destination: Normalize(destination),
		Number:      number,
	}
}

// WithExtra returns a copy of r carrying additional members. A nil or empty map clears them.
func (r Route) WithExtra(extra map[string]any) Route {
	if len(extra) == 0 {
		r.extra = nil
		return r
	}
	r.extra = extra
	return r
}

// Extra returns the members of r that are not origin, destination or number.
func (r Route) Extra() map[string]any {
	return r.extra
}

// Equal reports whether r and o have the same origin, destination and number.
func (r Route) Equal(o Route) bool {
	return r.Origin == o.Origin && r.Destination == o.Destination && r.Number == o.Number
}

// Normalize is the case folding applied to every endpoint name.
func Normalize(point string) string {
	return strings.ToLower(point)
}
