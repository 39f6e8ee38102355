package momentum

import (
	"errors"
	"math"
)

func approxEqual(a, b float64) bool {
	const eps = 1e-6
	return math.Abs(a-b) <= eps
}

func errorsIs(err, target error) bool {
	return errors.Is(err, target)
}
