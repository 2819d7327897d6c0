package analytics

import "math"

// roundHalfUp rounds half toward positive infinity, so -2.5 becomes -2.
func roundHalfUp(x float64) float64 {
	return math.Floor(x + 0.5)
}

func round1(x float64) float64 {
	return roundHalfUp(x*10) / 10
}

func round2(x float64) float64 {
	return roundHalfUp(x*100) / 100
}

// percent returns round(part/total*100), or 0 for a non positive total.
func percent(part, total int) int {
	if total <= 0 {
		return 0
	}
	return int(roundHalfUp(float64(part) / float64(total) * 100))
}
