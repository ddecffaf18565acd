package index

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var (
	// ErrInvalidIndexToken is returned for a segment matching no index form.
	ErrInvalidIndexToken = errors.New("invalid index token")
	// ErrInvalidSliceFormat is returned for a malformed start:stop:step
	// segment.
	ErrInvalidSliceFormat = errors.New("invalid slice format")
)

// SegmentError reports the segment that failed to parse.
type SegmentError struct {
	Err      error  // ErrInvalidIndexToken or ErrInvalidSliceFormat
	Segment  string // trimmed segment text
	Position int    // zero-based segment number
	Msg      string
}

func (e *SegmentError) Error() string {
	msg := fmt.Sprintf("%v in segment %d: %q", e.Err, e.Position, e.Segment)
	if e.Msg != "" {
		msg += ": " + e.Msg
	}

	return msg
}

func (e *SegmentError) Unwrap() error { return e.Err }

// Parse converts a comma separated index expression into descriptors, one
// per segment. Blank input selects the first element, [Single(0)].
func Parse(text string) ([]Descriptor, error) {
	if strings.TrimSpace(text) == "" {
		return []Descriptor{Single(0)}, nil
	}

	segments := strings.Split(text, ",")
	out := make([]Descriptor, 0, len(segments))

	for i, seg := range segments {
		d, err := parseSegment(strings.TrimSpace(seg))
		if err != nil {
			err.Position = i
			return nil, err
		}

		out = append(out, d)
	}

	return out, nil
}

// MustParse is like Parse but panics on error.
func MustParse(text string) []Descriptor {
	ds, err := Parse(text)
	if err != nil {
		panic(err)
	}

	return ds
}

func parseSegment(seg string) (Descriptor, *SegmentError) {
	if i, err := strconv.Atoi(seg); err == nil {
		return Single(i), nil
	}

	switch {
	case seg == ":":
		return Wildcard(), nil
	case seg == "...":
		return Ellipsis(), nil
	case seg == "None":
		return None(), nil
	case strings.EqualFold(seg, "true"):
		return Bool(true), nil
	case strings.EqualFold(seg, "false"):
		return Bool(false), nil
	case strings.Contains(seg, ":"):
		return parseSlice(seg)
	default:
		return Descriptor{}, &SegmentError{Err: ErrInvalidIndexToken, Segment: seg}
	}
}

func parseSlice(seg string) (Descriptor, *SegmentError) {
	parts := strings.Split(seg, ":")
	if len(parts) > 3 {
		return Descriptor{}, &SegmentError{
			Err:     ErrInvalidSliceFormat,
			Segment: seg,
			Msg:     fmt.Sprintf("%d parts, at most 3 allowed", len(parts)),
		}
	}

	var bounds [3]Bound

	for i, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}

		v, err := strconv.Atoi(part)
		if err != nil {
			return Descriptor{}, &SegmentError{
				Err:     ErrInvalidSliceFormat,
				Segment: seg,
				Msg:     fmt.Sprintf("bound %q is not an integer", part),
			}
		}

		bounds[i] = At(v)
	}

	if bounds[2].Set && bounds[2].Value == 0 {
		return Descriptor{}, &SegmentError{Err: ErrInvalidSliceFormat, Segment: seg, Msg: "step cannot be zero"}
	}

	return Slice(bounds[0], bounds[1], bounds[2]), nil
}
