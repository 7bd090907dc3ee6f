package geo

import "math"

func EuclideanDistance(x1, y1, x2, y2 float64) float64 {
	if x1 == x2 {
		return math.Abs(y1 - y2)
	} else if y1 == y2 {
		return math.Abs(x1 - x2)
	} else {
		return math.Sqrt((x1-x2)*(x1-x2) + (y1-y2)*(y1-y2))
	}
}

// TruncateDecimals truncates floats to keep up to 3 digits after decimal, to avoid issues with floats on different machines.
// Since we're not launching rockets, 3 decimals is enough precision for what we're doing
func TruncateDecimals(v float64) float64 {
	return float64(int(v*1000)) / 1000
}

// Clamp bounds v to [lo, hi]. hi wins when lo > hi.
func Clamp(v, lo, hi float64) float64 {
	return math.Min(hi, math.Max(lo, v))
}
