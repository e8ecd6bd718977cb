package utils

import (
	"strconv"

	"github.com/ycz425/VertTracker-API/models"
)

// Validation helpers for the API endpoints. Each returns a single
// human-readable message, or "" when the input is acceptable. Body fields
// come in as decoded JSON values (any) so that wrong-type inputs get the
// same message as out-of-range ones.

func ValidateRegister(username, password, tipToe any) string {
	if s, ok := username.(string); !ok || len(s) < 1 || len(s) > 20 {
		return "username must be a string from 1 to 20 characters long"
	}
	if s, ok := password.(string); !ok || len(s) < 10 || len(s) > 80 {
		return "password must be a string from 10 to 80 characters long"
	}
	if f, ok := tipToe.(float64); !ok || f <= 0 {
		return "tip-toe must be a positive floating point value"
	}
	return ""
}

func ValidateRecordJump(variant, hangTime, bodyWeight, note any) string {
	if v, ok := variant.(string); !ok || (v != models.VariantMax && v != models.VariantCMJ) {
		return "variant must be either 'MAX' (maximum approach jump) or 'CMJ' (counter movement jump)"
	}
	if f, ok := hangTime.(float64); !ok || f <= 0 {
		return "hang-time must be a positive floating point value"
	}
	if f, ok := bodyWeight.(float64); !ok || f <= 0 {
		return "body-weight must be a positive floating point value"
	}
	if note != nil {
		if _, ok := note.(string); !ok {
			return "note must be a string"
		}
	}
	return ""
}

// ValidateQueryParams checks the shared query-string parameters of the
// listing, plot and summary endpoints. variant, aggregation and timespan
// use "" for absent; the rest carry their documented defaults.
func ValidateQueryParams(variant, aggregation, heightUnit, weightUnit, utcOffset, orderBy, timespan string) string {
	if aggregation != "" && aggregation != "max" && aggregation != "avg" {
		return "aggregation must be either 'max' or 'avg'"
	}
	if aggregation == "avg" && variant == "" {
		return "variant must be specified when aggregation is 'avg'"
	}
	if variant != "" && variant != models.VariantMax && variant != models.VariantCMJ {
		return "variant must be either 'MAX' (maximum approach jump) or 'CMJ' (counter movement jump)"
	}
	if orderBy != "date" && orderBy != "weight" && orderBy != "height" {
		return "order-by must be either 'date', 'weight', or 'height'"
	}
	if _, ok := HeightFactor(heightUnit); !ok {
		return "height-unit must be either 'm', 'cm', or 'in'"
	}
	if _, ok := WeightFactor(weightUnit); !ok {
		return "weight-unit must be either 'kg' or 'lbs'"
	}
	if off, err := strconv.Atoi(utcOffset); err != nil || off < -12 || off > 14 {
		return "utc-offset must be an integer from -12 to 14"
	}
	if timespan != "" {
		if n, err := strconv.Atoi(timespan); err != nil || n <= 0 {
			return "years must be a positive integer"
		}
	}
	return ""
}
