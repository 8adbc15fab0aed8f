// Copyright 2025 Sonic Labs
// This file is part of Aida Testing Infrastructure for Sonic
//
// Aida is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Aida is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with Aida. If not, see <http://www.gnu.org/licenses/>.

// Package stats aggregates the per-run counts of a bingo simulation.
package stats

import (
	"go-hep.org/x/hep/hbook"
)

// NumBins is the number of unit-width bins covering the count range [0, NumBins).
const NumBins = 75

// Histogram is the frequency of every count value. A count of NumBins or more
// falls outside all bins and is only accounted for by Excluded.
type Histogram struct {
	h1d     *hbook.H1D
	counts  [NumBins]uint64
	records int
}

// NewHistogram bins counts into NumBins unit-width bins.
func NewHistogram(counts []uint8) *Histogram {
	h1d := hbook.NewH1D(NumBins, 0, NumBins)
	for _, c := range counts {
		h1d.Fill(float64(c), 1)
	}
	h := &Histogram{h1d: h1d, records: len(counts)}
	for i := range h1d.Binning.Bins {
		h.counts[i] = uint64(h1d.Binning.Bins[i].Entries())
	}
	return h
}

// Count returns the number of runs with count v.
func (h *Histogram) Count(v int) uint64 {
	if v < 0 || v >= NumBins {
		return 0
	}
	return h.counts[v]
}

// Counts returns a copy of all bins.
func (h *Histogram) Counts() [NumBins]uint64 {
	return h.counts
}

// Total is the sum over all bins.
func (h *Histogram) Total() uint64 {
	var total uint64
	for _, c := range h.counts {
		total += c
	}
	return total
}

// Records is the number of counts the histogram was built from.
func (h *Histogram) Records() int {
	return h.records
}

// Excluded is the number of counts outside of every bin.
func (h *Histogram) Excluded() int {
	return h.records - int(h.Total())
}

// H1D exposes the underlying histogram for plotting.
func (h *Histogram) H1D() *hbook.H1D {
	return h.h1d
}
