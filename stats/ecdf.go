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
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/simplify"
)

// NumECDFPoints sets the number of points in the empirical cumulative distribution function.
const NumECDFPoints = 50

// CountECDF computes the empirical cumulative distribution function (eCDF)
// of the binned counts as a piecewise linear function from (0,0) to (1,1),
// where x is the normalized count value. The full eCDF is reduced to at most
// NumECDFPoints points with the Visvalingam-Whyatt algorithm. See:
// https://en.wikipedia.org/wiki/Visvalingam-Whyatt_algorithm
func CountECDF(h *Histogram) [][2]float64 {
	total := h.Total()
	if total == 0 {
		return nil
	}

	ls := orb.LineString{{0.0, 0.0}}
	sumP := 0.0
	// correction term for Kahan's sum
	cP := 0.0
	counts := h.Counts()
	for v := 0; v < NumBins-1; v++ {
		f := float64(counts[v]) / float64(total)
		yP := f - cP
		tP := sumP + yP
		cP = (tP - sumP) - yP
		sumP = tP
		ls = append(ls, orb.Point{float64(v+1) / NumBins, sumP})
	}
	ls = append(ls, orb.Point{1.0, 1.0})

	simplified := simplify.VisvalingamKeep(NumECDFPoints).Simplify(ls).(orb.LineString)
	ecdf := make([][2]float64, len(simplified))
	for i := range simplified {
		ecdf[i] = [2]float64(simplified[i])
	}
	return ecdf
}
