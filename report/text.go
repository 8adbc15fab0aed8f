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

// Package report renders the artifacts of an analysis run.
package report

import (
	"bytes"
	"fmt"
	"io"

	"github.com/0xsoniclabs/bingo/stats"
)

// WriteCountText writes one line per bin, "%2d: %d", in bin order.
func WriteCountText(w io.Writer, h *stats.Histogram) error {
	for v := 0; v < stats.NumBins; v++ {
		if _, err := fmt.Fprintf(w, "%2d: %d\n", v, h.Count(v)); err != nil {
			return err
		}
	}
	return nil
}

// CountText returns the content WriteCountText would write.
func CountText(h *stats.Histogram) []byte {
	var buf bytes.Buffer
	// writing to a bytes.Buffer never fails
	_ = WriteCountText(&buf, h)
	return buf.Bytes()
}
