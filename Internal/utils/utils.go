package utils

import "time"

func Abs(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}

// Clamp bounds x to [min, max]
func Clamp(x, min, max float64) float64 {
	if x < min {
		return min
	}
	if x > max {
		return max
	}
	return x
}

func Average(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	total := 0.0
	for _, v := range values {
		total += v
	}
	return total / float64(len(values))
}

// CheckMarketStatus reports the KRX session for the given time.
// Regular session is 09:00-15:30 KST, weekdays only.
func CheckMarketStatus(now time.Time) (string, bool) {
	kst, err := time.LoadLocation("Asia/Seoul")
	if err != nil {
		return "UNKNOWN", false
	}
	local := now.In(kst)

	if local.Weekday() == time.Saturday || local.Weekday() == time.Sunday {
		return "CLOSED (weekend)", false
	}

	minutes := local.Hour()*60 + local.Minute()
	open := 9 * 60
	close := 15*60 + 30

	if minutes < open {
		return "PRE-MARKET", false
	}
	if minutes >= close {
		return "CLOSED", false
	}
	return "OPEN", true
}
