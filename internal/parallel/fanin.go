package parallel

import apperrors "github.com/agbru/mandelarea/internal/errors"

// Number is the set of partial-result types SumExactly can fold.
type Number interface {
	~int | ~int64 | ~float64
}

// SumExactly drains results and folds them by addition. The channel must be
// closed by the caller once every producer has finished; draining before
// that point can observe a partial set. If the number of values received
// differs from want, SumExactly returns a FanInError and no total.
func SumExactly[T Number](results <-chan T, want int) (T, error) {
	var total T
	received := 0
	for v := range results {
		total += v
		received++
	}
	if received != want {
		return 0, apperrors.FanInError{Expected: want, Received: received}
	}
	return total, nil
}
