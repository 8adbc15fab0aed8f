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

package stats

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Summary describes the distribution of the binned counts.
type Summary struct {
	Runs     int
	Excluded int
	Mean     float64
	StdDev   float64
	Median   float64
	Min      int
	Max      int
	Mode     int
}

// Summarize computes summary statistics of the binned counts. Excluded counts
// do not contribute. An empty histogram yields a zero Summary apart from Runs
// and Excluded.
func Summarize(h *Histogram) Summary {
	s := Summary{Runs: h.Records(), Excluded: h.Excluded()}
	if h.Total() == 0 {
		return s
	}

	values := make([]float64, NumBins)
	weights := make([]float64, NumBins)
	s.Min = -1
	for v, c := range h.Counts() {
		values[v] = float64(v)
		weights[v] = float64(c)
		if c == 0 {
			continue
		}
		if s.Min < 0 {
			s.Min = v
		}
		s.Max = v
	}

	s.Mean = stat.Mean(values, weights)
	if floats.Sum(weights) > 1 {
		s.StdDev = stat.StdDev(values, weights)
	}
	s.Median = stat.Quantile(0.5, stat.Empirical, values, weights)
	s.Mode = floats.MaxIdx(weights)
	return s
}
