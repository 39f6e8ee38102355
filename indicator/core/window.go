package core

// Window moves a window of the given size along series and applies reduce to
// each chunk, producing len(series)-size+1 values in order. A size below 1 or
// above the series length yields no output.
//
// The chunks alias series: reduce must neither keep nor modify them.
func Window[T, R any](series []T, size int, reduce func([]T) R) []R {
	if size < 1 || size > len(series) {
		return nil
	}
	out := make([]R, 0, len(series)-size+1)
	for end := size; end <= len(series); end++ {
		out = append(out, reduce(series[end-size:end]))
	}
	return out
}

// WindowCount returns the number of windows of size over n elements.
func WindowCount(n, size int) int {
	if size < 1 || size > n {
		return 0
	}
	return n - size + 1
}
