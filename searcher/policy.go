package searcher

import "math"

type uct struct {
	numerator float64
}

// newUCT precomputes c*sqrt(ln(N)) for a parent visited N times.
func newUCT(c float64, N float64) *uct {
	if N == 0 {
		panic("N cannot be 0")
	}
	return &uct{numerator: c * math.Sqrt(math.Log(N))}
}

func (u uct) evaluate(q float64, n float64) float64 {
	if n == 0 {
		panic("n cannot be 0")
	}
	// UCT = q + c*sqrt(ln(N)/n)
	return q + u.numerator/math.Sqrt(n)
}
