package fu

import "math"

/*
Minnan returns minimal value of a and b ignoring NaN arguments
*/
func Minnan(a, b float64) float64 {
	if math.IsNaN(a) || b < a {
		return b
	}
	return a
}

/*
Maxnan returns maximal value of a and b ignoring NaN arguments
*/
func Maxnan(a, b float64) float64 {
	if math.IsNaN(a) || b > a {
		return b
	}
	return a
}

func Flatnr(a [][]float64) []float64 {
	n := 0
	for _, x := range a {
		n += len(x)
	}
	r := make([]float64, n)
	i := 0
	for _, x := range a {
		copy(r[i:i+len(x)], x)
		i += len(x)
	}
	return r
}
