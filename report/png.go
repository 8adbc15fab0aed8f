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

package report

import (
	"bytes"
	"image/color"

	"github.com/0xsoniclabs/bingo/stats"
	"github.com/cockroachdb/errors"
	"go-hep.org/x/hep/hplot"
	"gonum.org/v1/plot/vg"
)

const (
	plotWidth  = 20 * vg.Centimeter
	plotHeight = 12 * vg.Centimeter
)

// RenderPNG plots the histogram with one unit-width bar per bin and returns it PNG encoded.
func RenderPNG(h *stats.Histogram) ([]byte, error) {
	p := hplot.New()
	p.Title.Text = "Bingo"
	p.X.Label.Text = "count"
	p.Y.Label.Text = "runs"
	p.X.Min = 0
	p.X.Max = stats.NumBins

	hh := hplot.NewH1D(h.H1D())
	hh.Color = color.NRGBA{R: 31, G: 119, B: 180, A: 255}
	hh.FillColor = color.NRGBA{R: 31, G: 119, B: 180, A: 160}
	p.Add(hh, hplot.NewGrid())

	wt, err := p.WriterTo(plotWidth, plotHeight, "png")
	if err != nil {
		return nil, errors.Wrap(err, "cannot create histogram plot")
	}
	var buf bytes.Buffer
	if _, err := wt.WriteTo(&buf); err != nil {
		return nil, errors.Wrap(err, "cannot encode histogram plot")
	}
	return buf.Bytes(), nil
}
