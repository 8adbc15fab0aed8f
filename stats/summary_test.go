package stats

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSummarize_Example(t *testing.T) {
	s := Summarize(NewHistogram([]uint8{5, 5, 10}))

	assert.Equal(t, 3, s.Runs)
	assert.Equal(t, 0, s.Excluded)
	assert.InDelta(t, 20.0/3.0, s.Mean, 1e-9)
	assert.InDelta(t, 2.886751345948129, s.StdDev, 1e-9)
	assert.Equal(t, 5.0, s.Median)
	assert.Equal(t, 5, s.Min)
	assert.Equal(t, 10, s.Max)
	assert.Equal(t, 5, s.Mode)
}

func TestSummarize_Empty(t *testing.T) {
	s := Summarize(NewHistogram(nil))
	assert.Equal(t, Summary{}, s)
}

func TestSummarize_SingleRun(t *testing.T) {
	s := Summarize(NewHistogram([]uint8{42}))

	assert.Equal(t, 1, s.Runs)
	assert.Equal(t, 42.0, s.Mean)
	assert.Equal(t, 0.0, s.StdDev)
	assert.Equal(t, 42.0, s.Median)
	assert.Equal(t, 42, s.Min)
	assert.Equal(t, 42, s.Max)
	assert.Equal(t, 42, s.Mode)
}

func TestSummarize_IgnoresExcluded(t *testing.T) {
	s := Summarize(NewHistogram([]uint8{75, 75, 75}))
	assert.Equal(t, Summary{Runs: 3, Excluded: 3}, s)

	s = Summarize(NewHistogram([]uint8{10, 20, 75}))
	assert.Equal(t, 3, s.Runs)
	assert.Equal(t, 1, s.Excluded)
	assert.InDelta(t, 15.0, s.Mean, 1e-9)
	assert.Equal(t, 20, s.Max)
}
