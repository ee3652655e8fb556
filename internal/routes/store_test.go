package routes

import (
	"bytes"
	"os"
	"slices"
	"testing"

	"github.com/InternatManhole/route-catalog/internal/console"
	"github.com/InternatManhole/route-catalog/internal/logging"
)

func TestMain(m *testing.M) {
	logging.SetNewLoggerWithLevel(logging.EvenMoreVerbose)
	os.Exit(m.Run())
}

func numbers(rs []Route) []int {
	ns := make([]int, len(rs))
	for i, r := range rs {
		ns[i] = r.Number
	}
	return ns
}

func TestAdd_keepsOrder(t *testing.T) {
	tests := []struct {
		name  string
		input []int
		want  []int
	}{
		{name: "ascending", input: []int{1, 2, 3}, want: []int{1, 2, 3}},
		{name: "descending", input: []int{9, 5, 1}, want: []int{1, 5, 9}},
		{name: "mixed with repeats", input: []int{15, 7, 15, 3, 7, 100, 0}, want: []int{0, 3, 7, 7, 15, 15, 100}},
		{name: "negative numbers", input: []int{2, -4, 0}, want: []int{-4, 0, 2}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sink := console.NewSink(new(bytes.Buffer))
			var rs []Route
			for i, n := range tt.input {
				// distinct endpoints so repeated numbers are not duplicates
				rs = Add(sink, rs, "a", string(rune('a'+i)), n)
				if !IsSorted(rs) {
					t.Fatalf("Add() broke ordering after %d inserts: %v", i+1, numbers(rs))
				}
			}
			if got := numbers(rs); !slices.Equal(got, tt.want) {
				t.Errorf("Add() numbers = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestAdd_equalNumbersGoLast(t *testing.T) {
	sink := console.NewSink(new(bytes.Buffer))
	var rs []Route
	rs = Add(sink, rs, "a", "b", 5)
	rs = Add(sink, rs, "c", "d", 5)
	rs = Add(sink, rs, "e", "f", 1)
	rs = Add(sink, rs, "g", "h", 5)

	want := []Route{New("e", "f", 1), New("a", "b", 5), New("c", "d", 5), New("g", "h", 5)}
	if !slices.EqualFunc(rs, want, Route.Equal) {
		t.Errorf("Add() = %v, want %v", rs, want)
	}
}

func TestAdd_duplicate(t *testing.T) {
	out := new(bytes.Buffer)
	sink := console.NewSink(out)

	rs := Add(sink, nil, "Moscow", "Kazan", 15)
	rs = Add(sink, rs, "Kazan", "Ufa", 7)
	before := slices.Clone(rs)

	rs = Add(sink, rs, "MOSCOW", "kazan", 15)
	if !slices.EqualFunc(rs, before, Route.Equal) {
		t.Errorf("Add() of a duplicate changed the routes: %v, want %v", rs, before)
	}
	if got, want := out.String(), "Route is already in the list.\n"; got != want {
		t.Errorf("Add() notice = %q, want %q", got, want)
	}

	// same number alone is not a duplicate
	rs = Add(sink, rs, "Moscow", "Tver", 15)
	if len(rs) != 3 {
		t.Errorf("Add() with a shared number only: len = %d, want 3", len(rs))
	}
}

func TestAdd_lowercases(t *testing.T) {
	rs := Add(console.NewSink(new(bytes.Buffer)), nil, "Санкт-Петербург", "MOSCOW", 1)
	if rs[0].Origin != "санкт-петербург" || rs[0].Destination != "moscow" {
		t.Errorf("Add() stored %q -> %q, want lowercase", rs[0].Origin, rs[0].Destination)
	}
}

func TestSelect(t *testing.T) {
	rs := []Route{
		New("kazan", "ufa", 7),
		New("moscow", "kazan", 15),
		New("moscow", "tver", 20),
		New("kazanka", "perm", 21),
	}
	tests := []struct {
		name  string
		point string
		want  []Route
	}{
		{
			name:  "origin and destination matches keep order",
			point: "kazan",
			want:  []Route{rs[0], rs[1]},
		},
		{
			name:  "point is normalized",
			point: "Moscow",
			want:  []Route{rs[1], rs[2]},
		},
		{
			name:  "destination only",
			point: "ufa",
			want:  []Route{rs[0]},
		},
		{
			name:  "no substring matches",
			point: "kaz",
			want:  []Route{},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Select(rs, tt.point)
			if got == nil {
				t.Fatal("Select() returned nil, want a non-nil slice")
			}
			if !slices.EqualFunc(got, tt.want, Route.Equal) {
				t.Errorf("Select() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSelect_afterAdd(t *testing.T) {
	rs := Add(console.NewSink(new(bytes.Buffer)), nil, "Moscow", "Kazan", 15)
	for _, point := range []string{"moscow", "Moscow", "MOSCOW"} {
		if got := Select(rs, point); len(got) != 1 {
			t.Errorf("Select(%q) returned %d routes, want 1", point, len(got))
		}
	}
}

func TestRoute_WithExtra(t *testing.T) {
	r := New("a", "b", 1).WithExtra(map[string]any{"operator": "x"})
	if r.Extra()["operator"] != "x" {
		t.Errorf("Extra() = %v, want operator x", r.Extra())
	}
	if !r.Equal(New("a", "b", 1)) {
		t.Errorf("Equal() must ignore extra members")
	}
	if r.WithExtra(map[string]any{}).Extra() != nil {
		t.Errorf("WithExtra(empty) should clear extra members")
	}
}
