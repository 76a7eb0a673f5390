package clamp

import (
	"cmp"
	"fmt"
	"slices"

	"golang.org/x/exp/constraints"

	"github.com/sirkon/clamp/domain"
	"github.com/sirkon/clamp/internal/intmath"
)

// Span is an inclusive [Lower, Upper] range of valid values.
type Span[T constraints.Integer] struct {
	Lower T
	Upper T
}

func (s Span[T]) String() string {
	if s.Lower == s.Upper {
		return fmt.Sprintf("%d", s.Lower)
	}
	return fmt.Sprintf("%d..=%d", s.Lower, s.Upper)
}

// Limits describe the set of values a bounded integer may hold and the
// behavior of its arithmetic.
type Limits[T constraints.Integer] struct {
	lower    T
	upper    T
	spans    []Span[T]
	behavior Behavior[T]

	def        T
	hasDefault bool
}

// NewLimits returns contiguous [lower, upper] limits. A nil behavior
// means [Panicking].
func NewLimits[T constraints.Integer](lower, upper T, behavior Behavior[T]) (*Limits[T], error) {
	return LimitsFromSpans(behavior, Span[T]{Lower: lower, Upper: upper})
}

// LimitsFromSpans returns limits made of several spans. Spans may go in any
// order, overlapping and adjacent spans are merged.
func LimitsFromSpans[T constraints.Integer](behavior Behavior[T], spans ...Span[T]) (*Limits[T], error) {
	if len(spans) == 0 {
		return nil, fmt.Errorf("%w: no spans given", ErrInvalidLimits)
	}
	if behavior == nil {
		behavior = Panicking[T]{}
	}

	sorted := slices.Clone(spans)
	for _, s := range sorted {
		if s.Lower > s.Upper {
			return nil, &InvertedLimitsError[T]{Lower: s.Lower, Upper: s.Upper}
		}
	}
	slices.SortFunc(sorted, func(a, b Span[T]) int {
		return cmp.Compare(a.Lower, b.Lower)
	})

	merged := sorted[:1]
	for _, s := range sorted[1:] {
		last := &merged[len(merged)-1]
		if last.Upper == intmath.MaxOf[T]() || s.Lower <= last.Upper+1 {
			last.Upper = max(last.Upper, s.Upper)
			continue
		}
		merged = append(merged, s)
	}

	return &Limits[T]{
		lower:    merged[0].Lower,
		upper:    merged[len(merged)-1].Upper,
		spans:    merged,
		behavior: behavior,
	}, nil
}

// LimitsFromDomain converts spans of a validated partition member into limits.
// The kind of spans must match T.
func LimitsFromDomain[T constraints.Integer](behavior Behavior[T], spans []domain.Span) (*Limits[T], error) {
	kind := domain.KindOf[T]()

	res := make([]Span[T], 0, len(spans))
	for _, s := range spans {
		if s.Kind() != kind {
			return nil, &domain.KindMismatchError{Want: kind, Got: s.Kind()}
		}

		lower, _ := domain.As[T](s.Start)
		upper, _ := domain.As[T](s.End)
		res = append(res, Span[T]{Lower: lower, Upper: upper})
	}

	return LimitsFromSpans(behavior, res...)
}

// MustLimits unwraps the result of a limits constructor, panicking on errors.
func MustLimits[T constraints.Integer](l *Limits[T], err error) *Limits[T] {
	if err != nil {
		panic(err)
	}
	return l
}

// WithDefault returns a copy of limits with the default value set.
func (l *Limits[T]) WithDefault(v T) (*Limits[T], error) {
	if _, err := l.Validate(v); err != nil {
		return nil, &DefaultError[T]{Value: v, Err: err}
	}

	res := *l
	res.def = v
	res.hasDefault = true
	return &res, nil
}

// Lower returns the smallest valid value.
func (l *Limits[T]) Lower() T {
	return l.lower
}

// Upper returns the largest valid value.
func (l *Limits[T]) Upper() T {
	return l.upper
}

// Spans returns ordered disjoint spans of valid values.
func (l *Limits[T]) Spans() []Span[T] {
	return slices.Clone(l.spans)
}

// Contiguous reports whether every value of [Lower, Upper] is valid.
func (l *Limits[T]) Contiguous() bool {
	return len(l.spans) == 1
}

// Behavior returns the arithmetic behavior.
func (l *Limits[T]) Behavior() Behavior[T] {
	return l.behavior
}

// Default returns the default value if there is one.
func (l *Limits[T]) Default() (T, bool) {
	return l.def, l.hasDefault
}

// Validate checks v against the limits.
func (l *Limits[T]) Validate(v T) (T, error) {
	if v < l.lower {
		return 0, &TooSmallError[T]{Value: v, Min: l.lower}
	}
	if v > l.upper {
		return 0, &TooLargeError[T]{Value: v, Max: l.upper}
	}
	if l.Contiguous() {
		return v, nil
	}

	i, found := slices.BinarySearchFunc(l.spans, v, func(s Span[T], v T) int {
		switch {
		case s.Upper < v:
			return -1
		case s.Lower > v:
			return 1
		default:
			return 0
		}
	})
	if found {
		return v, nil
	}

	return 0, &OutOfBoundsError[T]{
		Value: v,
		Left:  l.spans[i-1].Upper,
		Right: l.spans[i].Lower,
	}
}

// settle handles a result of an operation landing in a gap of multi-range
// limits. Results of contiguous limits are already within them.
func (l *Limits[T]) settle(op Op, left, right, res T) T {
	if l.Contiguous() {
		return res
	}

	_, err := l.Validate(res)
	if err == nil {
		return res
	}

	gap, ok := err.(*OutOfBoundsError[T])
	if ok {
		if v, snapped := l.behavior.Snap(res, gap.Left, gap.Right); snapped {
			return v
		}
	}

	panic(&ArithmeticError[T]{
		Op:     op,
		Left:   left,
		Right:  right,
		Result: res,
		Err:    err,
	})
}

func (l *Limits[T]) String() string {
	var buf []byte
	for i, s := range l.spans {
		if i > 0 {
			buf = append(buf, ", "...)
		}
		buf = append(buf, s.String()...)
	}
	return string(buf)
}
