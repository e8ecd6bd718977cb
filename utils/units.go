package utils

import "time"

// Storage units are meters and kilograms; conversion happens on the way out.

var heightFactors = map[string]float64{
	"m":  1,
	"cm": 100,
	"in": 39.3701,
}

var weightFactors = map[string]float64{
	"kg":  1,
	"lbs": 2.20462,
}

func HeightFactor(unit string) (float64, bool) {
	f, ok := heightFactors[unit]
	return f, ok
}

func WeightFactor(unit string) (float64, bool) {
	f, ok := weightFactors[unit]
	return f, ok
}

// ApplyUTCOffset shifts a stored UTC instant by a whole number of hours.
// The offset is a raw integer in [-12, 14], not a named timezone; no DST
// logic applies.
func ApplyUTCOffset(t time.Time, hours int) time.Time {
	return t.Add(time.Duration(hours) * time.Hour)
}
