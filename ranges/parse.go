package ranges

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/amp-labs/amp-guard/compare"
	"github.com/amp-labs/amp-guard/errors"
)

// Parse reads a range written in interval notation: "[a, b]", "[a, b)",
// "(a, b]" or "(a, b)". Spaces around the boundaries are ignored. Each
// boundary is converted with parse and the result is ordered by cmp.
//
// The boundary check of NewFunc applies, so "[5, 1]" fails with
// errors.ErrInvalidRangeBoundary. Malformed notation fails with errors.ErrArgument.
func Parse[T any](value string, parse func(string) (T, error), cmp compare.Func[T]) (Range[T], error) {
	text := strings.TrimSpace(value)
	if len(text) < 2 { //nolint:mnd
		return Range[T]{}, fmt.Errorf("%w: %q is not in interval notation", errors.ErrArgument, value)
	}

	var isFromInclusive, isToInclusive bool

	switch text[0] {
	case '[':
		isFromInclusive = true
	case '(':
		isFromInclusive = false
	default:
		return Range[T]{}, fmt.Errorf("%w: %q must start with '[' or '('", errors.ErrArgument, value)
	}

	switch text[len(text)-1] {
	case ']':
		isToInclusive = true
	case ')':
		isToInclusive = false
	default:
		return Range[T]{}, fmt.Errorf("%w: %q must end with ']' or ')'", errors.ErrArgument, value)
	}

	parts := strings.Split(text[1:len(text)-1], ",")
	if len(parts) != 2 { //nolint:mnd
		return Range[T]{}, fmt.Errorf("%w: %q must contain exactly two boundaries", errors.ErrArgument, value)
	}

	from, err := parse(strings.TrimSpace(parts[0]))
	if err != nil {
		return Range[T]{}, fmt.Errorf("%w: invalid lower boundary in %q: %w", errors.ErrArgument, value, err)
	}

	to, err := parse(strings.TrimSpace(parts[1]))
	if err != nil {
		return Range[T]{}, fmt.Errorf("%w: invalid upper boundary in %q: %w", errors.ErrArgument, value, err)
	}

	return NewFunc(from, to, isFromInclusive, isToInclusive, cmp)
}

// ParseInt parses an integer range such as "[0, 10)".
func ParseInt(value string) (Range[int], error) {
	return Parse(value, strconv.Atoi, compare.Natural[int]())
}

// ParseFloat parses a float64 range such as "(0.5, 1.5]".
func ParseFloat(value string) (Range[float64], error) {
	return Parse(value, func(s string) (float64, error) {
		return strconv.ParseFloat(s, 64)
	}, compare.Natural[float64]())
}
