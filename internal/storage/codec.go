package storage

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"maps"
	"math"
	"slices"

	"github.com/InternatManhole/route-catalog/internal/console"
	"github.com/InternatManhole/route-catalog/internal/logging"
	"github.com/InternatManhole/route-catalog/internal/routes"
	"github.com/goccy/go-json"
)

var (
	ErrMalformedJSON = errors.New("data is not valid JSON")
	ErrNumberRange   = errors.New("route number does not fit in an integer")
)

const indent = "    "

// record is the on-disk layout of a route, in member order.
type record struct {
	Origin      string `json:"origin"`
	Destination string `json:"destination"`
	Number      int    `json:"number"`
}

// Decode reads a routes document from r.
//
// A document that is not JSON is an error wrapping ErrMalformedJSON. A JSON document
// that does not match the schema, or whose route numbers do not fit in an int, is
// reported to sink and yields an empty, non-nil slice with no error.
func Decode(r io.Reader, sink *console.Sink) ([]routes.Route, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read: %w", err)
	}

	var doc any
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, errors.Join(ErrMalformedJSON, err)
	}

	if err := Validate(doc); err != nil {
		logging.GetLogger().Verbose("Schema violation at %s", ValidationLocation(err))
		sink.Failure("Validation error: %s", ValidationMessage(err))
		return []routes.Route{}, nil
	}

	// decode again keeping number literals, so large numbers are not rounded
	var exact []any
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	if err := dec.Decode(&exact); err != nil {
		return nil, errors.Join(ErrMalformedJSON, err)
	}

	rs := make([]routes.Route, 0, len(exact))
	for i, item := range exact {
		r, err := fromObject(item.(map[string]any))
		if err != nil {
			logging.GetLogger().Verbose("Schema violation at /%d/%s", i, numberKey)
			sink.Failure("Validation error: %s", err)
			return []routes.Route{}, nil
		}
		rs = append(rs, r)
	}
	sink.Success("JSON is valid against the schema.")
	return rs, nil
}

// fromObject converts a schema-valid object. Values are kept as decoded.
func fromObject(obj map[string]any) (routes.Route, error) {
	number, err := routeNumber(obj[numberKey].(json.Number))
	if err != nil {
		return routes.Route{}, err
	}
	r := routes.Route{
		Origin:      obj[originKey].(string),
		Destination: obj[destinationKey].(string),
		Number:      number,
	}
	var extra map[string]any
	for k, v := range obj {
		if k == originKey || k == destinationKey || k == numberKey {
			continue
		}
		if extra == nil {
			extra = make(map[string]any)
		}
		extra[k] = v
	}
	return r.WithExtra(extra), nil
}

// routeNumber converts an integer literal such as 15, 15.0 or 1.5e1 without rounding.
func routeNumber(n json.Number) (int, error) {
	v, err := n.Int64()
	if err != nil {
		f, ferr := n.Float64()
		if ferr != nil || f != math.Trunc(f) || f < -(1<<63) || f >= 1<<63 {
			return 0, fmt.Errorf("%w: %s", ErrNumberRange, n)
		}
		v = int64(f)
	}
	if int64(int(v)) != v {
		return 0, fmt.Errorf("%w: %s", ErrNumberRange, n)
	}
	return int(v), nil
}

// Encode writes rs to w as an indented JSON array. Text is written as UTF-8 without escaping.
// Each object holds origin, destination and number first, then any extra members in key order.
func Encode(w io.Writer, rs []routes.Route) error {
	compact := new(bytes.Buffer)
	compact.WriteByte('[')
	for i, r := range rs {
		if i > 0 {
			compact.WriteByte(',')
		}
		if err := appendRoute(compact, r); err != nil {
			return fmt.Errorf("encode route %d: %w", i, err)
		}
	}
	compact.WriteByte(']')

	out := new(bytes.Buffer)
	if err := json.Indent(out, compact.Bytes(), "", indent); err != nil {
		return err
	}
	out.WriteByte('\n')
	_, err := w.Write(rawLineSeparators(out.Bytes()))
	return err
}

// marshal encodes v without HTML escaping.
func marshal(v any) ([]byte, error) {
	return json.MarshalWithOption(v, json.DisableHTMLEscape())
}

// rawLineSeparators turns the \u2028 and \u2029 escapes of encoded strings back
// into the characters themselves. Every backslash in encoded JSON starts a
// two-byte escape, so escaped backslashes are skipped as pairs.
func rawLineSeparators(b []byte) []byte {
	out := make([]byte, 0, len(b))
	for i := 0; i < len(b); i++ {
		if b[i] != '\\' || i+1 >= len(b) {
			out = append(out, b[i])
			continue
		}
		if i+5 < len(b) && b[i+1] == 'u' && b[i+2] == '2' && b[i+3] == '0' && b[i+4] == '2' && (b[i+5] == '8' || b[i+5] == '9') {
			if b[i+5] == '8' {
				out = append(out, "\u2028"...)
			} else {
				out = append(out, "\u2029"...)
			}
			i += 5
			continue
		}
		out = append(out, b[i], b[i+1])
		i++
	}
	return out
}

// appendRoute writes the known members first, then the extra ones in key order.
func appendRoute(buf *bytes.Buffer, r routes.Route) error {
	b, err := marshal(record{
		Origin:      r.Origin,
		Destination: r.Destination,
		Number:      r.Number,
	})
	if err != nil {
		return err
	}
	extra := r.Extra()
	if len(extra) == 0 {
		buf.Write(b)
		return nil
	}

	buf.Write(b[:len(b)-1])
	for _, k := range slices.Sorted(maps.Keys(extra)) {
		kb, err := marshal(k)
		if err != nil {
			return err
		}
		vb, err := marshal(extra[k])
		if err != nil {
			return fmt.Errorf("member %q: %w", k, err)
		}
		buf.WriteByte(',')
		buf.Write(kb)
		buf.WriteByte(':')
		buf.Write(vb)
	}
	buf.WriteByte('}')
	return nil
}
