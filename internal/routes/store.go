package routes

import (
	"cmp"
	"slices"
	"sort"

	"github.com/InternatManhole/route-catalog/internal/console"
	"github.com/InternatManhole/route-catalog/internal/logging"
	"github.com/samber/lo"
)

// Add inserts a route built from the given fields into rs, keeping rs ordered by number.
// An identical route already in rs leaves it unchanged and prints a notice to sink.
func Add(sink *console.Sink, rs []Route, origin, destination string, number int) []Route {
	route := New(origin, destination, number)
	if lo.ContainsBy(rs, route.Equal) {
		sink.Notice("Route is already in the list.")
		return rs
	}

	// upper bound: equal numbers keep their insertion order
	i := sort.Search(len(rs), func(i int) bool {
		return rs[i].Number > route.Number
	})
	logging.GetLogger().EvenMoreVerbose("Inserting route %s -> %s (%d) at position %d", route.Origin, route.Destination, route.Number, i)
	return slices.Insert(rs, i, route)
}

// Select returns the routes starting or ending at point, in their original order.
func Select(rs []Route, point string) []Route {
	point = Normalize(point)
	return lo.Filter(rs, func(r Route, _ int) bool {
		return r.Origin == point || r.Destination == point
	})
}

// IsSorted reports whether rs is non-decreasing by number.
func IsSorted(rs []Route) bool {
	return slices.IsSortedFunc(rs, func(a, b Route) int {
		return cmp.Compare(a.Number, b.Number)
	})
}
