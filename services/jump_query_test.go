package services

import (
	"testing"
	"time"

	"github.com/ycz425/VertTracker-API/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ts(day string, hour int) time.Time {
	d, err := time.Parse("2006-01-02", day)
	if err != nil {
		panic(err)
	}
	return d.Add(time.Duration(hour) * time.Hour)
}

func rec(t time.Time, height float64, variant string, weight float64, note string) models.JumpRecord {
	return models.JumpRecord{
		Timestamp: t,
		Height:    height,
		Variant:   variant,
		Weight:    &weight,
		Note:      &note,
	}
}

func TestParseAggregation(t *testing.T) {
	assert.Equal(t, AggMax, ParseAggregation("max"))
	assert.Equal(t, AggAvg, ParseAggregation("avg"))
	assert.Equal(t, AggNone, ParseAggregation(""))
}

func TestAggregateNonePassesRowsThrough(t *testing.T) {
	records := []models.JumpRecord{
		rec(ts("2025-01-01", 9), 1.2, models.VariantMax, 70, "a"),
		rec(ts("2025-01-01", 10), 1.5, models.VariantCMJ, 71, "b"),
	}

	samples := aggregate(records, AggNone)
	require.Len(t, samples, 2)
	assert.Equal(t, 1.2, samples[0].Height)
	assert.Equal(t, "b", *samples[1].Note)
}

func TestAggregateMaxCollapsesDays(t *testing.T) {
	// Three jumps on one day, one on the next.
	records := []models.JumpRecord{
		rec(ts("2025-01-01", 9), 1.2, models.VariantMax, 70, "warmup"),
		rec(ts("2025-01-01", 10), 1.5, models.VariantMax, 70, "best"),
		rec(ts("2025-01-01", 11), 1.1, models.VariantMax, 70, "tired"),
		rec(ts("2025-01-02", 9), 1.3, models.VariantMax, 71, "next day"),
	}

	samples := aggregate(records, AggMax)
	require.Len(t, samples, 2)

	assert.Equal(t, 1.5, samples[0].Height)
	// non-aggregated columns come from the row holding the max
	assert.Equal(t, "best", *samples[0].Note)
	assert.Equal(t, ts("2025-01-01", 10), samples[0].Timestamp)

	assert.Equal(t, 1.3, samples[1].Height)
}

func TestAggregateMaxTieKeepsEarliestRow(t *testing.T) {
	records := []models.JumpRecord{
		rec(ts("2025-01-01", 9), 1.5, models.VariantMax, 70, "first"),
		rec(ts("2025-01-01", 15), 1.5, models.VariantMax, 70, "second"),
	}

	samples := aggregate(records, AggMax)
	require.Len(t, samples, 1)
	assert.Equal(t, "first", *samples[0].Note)
	assert.Equal(t, ts("2025-01-01", 9), samples[0].Timestamp)
}

func TestAggregateAvgMeansPerDay(t *testing.T) {
	records := []models.JumpRecord{
		rec(ts("2025-01-01", 9), 1.2, models.VariantCMJ, 70, "a"),
		rec(ts("2025-01-01", 10), 1.5, models.VariantCMJ, 70, "b"),
		rec(ts("2025-01-01", 11), 1.1, models.VariantCMJ, 70, "c"),
		rec(ts("2025-01-03", 9), 2.0, models.VariantCMJ, 70, "d"),
	}

	samples := aggregate(records, AggAvg)
	require.Len(t, samples, 2)

	assert.InDelta(t, (1.2+1.5+1.1)/3, samples[0].Height, 1e-12)
	// representative row is the day's earliest
	assert.Equal(t, "a", *samples[0].Note)
	assert.Equal(t, ts("2025-01-01", 9), samples[0].Timestamp)

	assert.InDelta(t, 2.0, samples[1].Height, 1e-12)
}

func TestOrderSamples(t *testing.T) {
	w := func(v float64) *float64 { return &v }
	samples := []JumpSample{
		{Timestamp: ts("2025-01-03", 0), Height: 1.1, Weight: w(75)},
		{Timestamp: ts("2025-01-01", 0), Height: 1.5, Weight: nil},
		{Timestamp: ts("2025-01-02", 0), Height: 1.3, Weight: w(70)},
	}

	byDate := append([]JumpSample(nil), samples...)
	orderSamples(byDate, OrderDate)
	for i := 1; i < len(byDate); i++ {
		assert.False(t, byDate[i].Timestamp.Before(byDate[i-1].Timestamp))
	}

	byHeight := append([]JumpSample(nil), samples...)
	orderSamples(byHeight, OrderHeight)
	for i := 1; i < len(byHeight); i++ {
		assert.LessOrEqual(t, byHeight[i-1].Height, byHeight[i].Height)
	}

	byWeight := append([]JumpSample(nil), samples...)
	orderSamples(byWeight, OrderWeight)
	// nil weight sorts as zero, so it comes first
	assert.Nil(t, byWeight[0].Weight)
	assert.Equal(t, 70.0, *byWeight[1].Weight)
	assert.Equal(t, 75.0, *byWeight[2].Weight)
}
