package domain

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// KeySeparator joins path segments into a document key. It is reserved:
// only the final (artifact) segment may contain it.
const KeySeparator = "_"

// DateLayout is the canonical rendering of date segments.
const DateLayout = "2006-01-02"

// Path is an ordered tuple of segments locating one artifact, e.g.
// (date, loop, episode, artifact). Segments may be strings, ints or dates.
type Path []any

// NewPath builds a Path from segments.
func NewPath(segments ...any) Path {
	return Path(segments)
}

// EncodeKey joins segments with KeySeparator. Every segment but the last must
// be free of the separator so that the prefix can always be split back out;
// with a fixed arity per collection this makes distinct paths map to
// distinct keys.
func EncodeKey(segments ...any) (string, error) {
	if len(segments) == 0 {
		return "", fmt.Errorf("%w: no segments", ErrPathArity)
	}

	parts := make([]string, len(segments))
	for i, seg := range segments {
		s, err := renderSegment(seg)
		if err != nil {
			return "", fmt.Errorf("segment %d: %w", i, err)
		}
		if s == "" {
			return "", fmt.Errorf("segment %d: %w", i, ErrEmptySegment)
		}
		if i < len(segments)-1 && strings.Contains(s, KeySeparator) {
			return "", fmt.Errorf("segment %d %q: %w", i, s, ErrSeparatorInSegment)
		}
		parts[i] = s
	}

	return strings.Join(parts, KeySeparator), nil
}

// DecodeKey splits a key back into its canonical string segments using the
// collection's arity.
func DecodeKey(c Collection, key string) ([]string, error) {
	if !c.IsValid() {
		return nil, fmt.Errorf("%w: %q", ErrUnknownCollection, string(c))
	}
	parts := strings.SplitN(key, KeySeparator, c.Arity())
	if len(parts) != c.Arity() {
		return nil, fmt.Errorf("%w: key %q has %d segments, %s expects %d",
			ErrPathArity, key, len(parts), c, c.Arity())
	}
	for i, p := range parts {
		if p == "" {
			return nil, fmt.Errorf("segment %d: %w", i, ErrEmptySegment)
		}
	}
	return parts, nil
}

func renderSegment(seg any) (string, error) {
	switch v := seg.(type) {
	case string:
		return v, nil
	case int:
		return strconv.Itoa(v), nil
	case int64:
		return strconv.FormatInt(v, 10), nil
	case time.Time:
		return v.Format(DateLayout), nil
	case fmt.Stringer:
		return v.String(), nil
	default:
		return "", fmt.Errorf("%w: %T", ErrUnsupportedSegment, seg)
	}
}
