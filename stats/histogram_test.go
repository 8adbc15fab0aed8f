package stats

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHistogram_Example(t *testing.T) {
	h := NewHistogram([]uint8{5, 5, 10})

	assert.Equal(t, uint64(2), h.Count(5))
	assert.Equal(t, uint64(1), h.Count(10))
	for v := 0; v < NumBins; v++ {
		if v == 5 || v == 10 {
			continue
		}
		assert.Equal(t, uint64(0), h.Count(v), "bin %d", v)
	}
	assert.Equal(t, uint64(3), h.Total())
	assert.Equal(t, 3, h.Records())
	assert.Equal(t, 0, h.Excluded())
}

func TestHistogram_Empty(t *testing.T) {
	h := NewHistogram(nil)

	assert.Equal(t, [NumBins]uint64{}, h.Counts())
	assert.Equal(t, uint64(0), h.Total())
	assert.Equal(t, 0, h.Records())
}

func TestHistogram_SumMatchesRecords(t *testing.T) {
	rg := rand.New(rand.NewSource(42))
	counts := make([]uint8, 10_000)
	for i := range counts {
		counts[i] = uint8(rg.Intn(NumBins))
	}

	h := NewHistogram(counts)
	assert.Equal(t, uint64(len(counts)), h.Total())
	assert.Equal(t, 0, h.Excluded())

	var want [NumBins]uint64
	for _, c := range counts {
		want[c]++
	}
	assert.Equal(t, want, h.Counts())
}

func TestHistogram_ExcludesUpperBoundary(t *testing.T) {
	h := NewHistogram([]uint8{0, 74, 75, 75, 200})

	assert.Equal(t, uint64(1), h.Count(0))
	assert.Equal(t, uint64(1), h.Count(74))
	assert.Equal(t, uint64(0), h.Count(75))
	assert.Equal(t, uint64(2), h.Total())
	assert.Equal(t, 5, h.Records())
	assert.Equal(t, 3, h.Excluded())
}

func TestHistogram_CountOutOfRange(t *testing.T) {
	h := NewHistogram([]uint8{1})
	assert.Equal(t, uint64(0), h.Count(-1))
	assert.Equal(t, uint64(0), h.Count(NumBins))
}

func TestHistogram_H1D(t *testing.T) {
	h := NewHistogram([]uint8{1, 2, 2})
	h1d := h.H1D()
	require.NotNil(t, h1d)
	assert.Equal(t, NumBins, h1d.Len())
	assert.Equal(t, 0.0, h1d.XMin())
	assert.Equal(t, float64(NumBins), h1d.XMax())
}
