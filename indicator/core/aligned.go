package core

// Aligned is a derived series attributed to the tail of the input it was
// computed from. Values[0] belongs to input index Start, and the last value
// always belongs to the last input element. Positions before Start carry no
// derived value.
type Aligned[T any] struct {
	Values []T
	Start  int
}

// Align builds the tail-aligned view of values over an input of length n.
func Align[T any](n int, values []T) Aligned[T] {
	start := n - len(values)
	if start < 0 {
		start = 0
	}
	return Aligned[T]{Values: values, Start: start}
}

// Len returns the length of the input the series is aligned to.
func (a Aligned[T]) Len() int {
	return a.Start + len(a.Values)
}

// Empty reports whether no position received a derived value.
func (a Aligned[T]) Empty() bool {
	return len(a.Values) == 0
}

// At returns the derived value for input position i.
func (a Aligned[T]) At(i int) (T, bool) {
	var zero T
	if i < a.Start || i >= a.Len() {
		return zero, false
	}
	return a.Values[i-a.Start], true
}

// Last returns the derived value of the last input position.
func (a Aligned[T]) Last() (T, bool) {
	var zero T
	if len(a.Values) == 0 {
		return zero, false
	}
	return a.Values[len(a.Values)-1], true
}

// Dense expands the series to the full input length, filling the uncovered
// head with fill.
func (a Aligned[T]) Dense(fill T) []T {
	out := make([]T, a.Len())
	for i := 0; i < a.Start; i++ {
		out[i] = fill
	}
	copy(out[a.Start:], a.Values)
	return out
}

// MapAligned applies fn to every value and keeps the alignment.
func MapAligned[T, R any](a Aligned[T], fn func(T) R) Aligned[R] {
	out := make([]R, len(a.Values))
	for i, v := range a.Values {
		out[i] = fn(v)
	}
	return Aligned[R]{Values: out, Start: a.Start}
}
