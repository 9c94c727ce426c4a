package booking

import "math"

// TotalPrice is hourlyRate * durationHours rounded to cents.
func TotalPrice(hourlyRate, durationHours float64) float64 {
	return math.Round(hourlyRate*durationHours*100) / 100
}
