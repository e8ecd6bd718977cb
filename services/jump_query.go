package services

import (
	"sort"
	"time"

	"github.com/ycz425/VertTracker-API/models"
)

// Aggregation selects how same-day records collapse into one sample.
type Aggregation int

const (
	AggNone Aggregation = iota
	AggMax
	AggAvg
)

// ParseAggregation maps the query-string token ("" for absent) to its
// Aggregation. Tokens are validated upstream.
func ParseAggregation(token string) Aggregation {
	switch token {
	case "max":
		return AggMax
	case "avg":
		return AggAvg
	default:
		return AggNone
	}
}

// Ordering keys for query results.
const (
	OrderDate   = "date"
	OrderWeight = "weight"
	OrderHeight = "height"
)

// JumpQuery is an immutable specification of a view over one user's jump
// records: an owner scope, an optional variant filter, an optional per-day
// aggregation and a single ordering key. It is built once per request and
// executed once against storage.
type JumpQuery struct {
	UserID  uint
	Variant string // "" = both variants
	Agg     Aggregation
	OrderBy string
}

// JumpSample is one row of a query result. Under aggregation it stands for
// a whole calendar day.
type JumpSample struct {
	Timestamp time.Time
	Height    float64
	Variant   string
	Weight    *float64
	Note      *string
}

func dayKey(t time.Time) string {
	return t.UTC().Format("2006-01-02")
}

// aggregate collapses records into samples. Records must be sorted by
// timestamp ascending; grouping is by the record's own UTC calendar day,
// untouched by any caller utc-offset.
//
// Representative rows: for AggMax the sample is the row holding the day's
// maximum height (earliest such row on ties); for AggAvg the day's earliest
// row, with its height replaced by the day's arithmetic mean. AggAvg is only
// meaningful after a single-variant filter, which validation guarantees.
func aggregate(records []models.JumpRecord, agg Aggregation) []JumpSample {
	if agg == AggNone {
		samples := make([]JumpSample, 0, len(records))
		for _, r := range records {
			samples = append(samples, JumpSample{
				Timestamp: r.Timestamp,
				Height:    r.Height,
				Variant:   r.Variant,
				Weight:    r.Weight,
				Note:      r.Note,
			})
		}
		return samples
	}

	var samples []JumpSample
	index := make(map[string]int) // day key → position in samples
	counts := make(map[string]int)
	sums := make(map[string]float64)

	for _, r := range records {
		key := dayKey(r.Timestamp)
		i, seen := index[key]
		if !seen {
			index[key] = len(samples)
			samples = append(samples, JumpSample{
				Timestamp: r.Timestamp,
				Height:    r.Height,
				Variant:   r.Variant,
				Weight:    r.Weight,
				Note:      r.Note,
			})
		} else if agg == AggMax && r.Height > samples[i].Height {
			samples[i] = JumpSample{
				Timestamp: r.Timestamp,
				Height:    r.Height,
				Variant:   r.Variant,
				Weight:    r.Weight,
				Note:      r.Note,
			}
		}
		if agg == AggAvg {
			counts[key]++
			sums[key] += r.Height
		}
	}

	if agg == AggAvg {
		for key, i := range index {
			samples[i].Height = sums[key] / float64(counts[key])
		}
	}
	return samples
}

// orderSamples sorts ascending by the requested key. The sort is stable, so
// ties keep their incoming (timestamp-ascending) order. A nil weight sorts
// as zero.
func orderSamples(samples []JumpSample, orderBy string) {
	switch orderBy {
	case OrderHeight:
		sort.SliceStable(samples, func(i, j int) bool {
			return samples[i].Height < samples[j].Height
		})
	case OrderWeight:
		sort.SliceStable(samples, func(i, j int) bool {
			return weightOrZero(samples[i]) < weightOrZero(samples[j])
		})
	default: // OrderDate
		sort.SliceStable(samples, func(i, j int) bool {
			return samples[i].Timestamp.Before(samples[j].Timestamp)
		})
	}
}

func weightOrZero(s JumpSample) float64 {
	if s.Weight == nil {
		return 0
	}
	return *s.Weight
}
