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
	"io"
	"strconv"

	"github.com/0xsoniclabs/bingo/stats"
	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/go-echarts/go-echarts/v2/types"
)

const pageTitle = "Bingo: Count Statistics"

func toolbox() charts.GlobalOpts {
	return charts.WithToolboxOpts(opts.Toolbox{
		Show: true,
		Feature: &opts.ToolBoxFeature{
			SaveAsImage: &opts.ToolBoxFeatureSaveAsImage{
				Show:  true,
				Title: "Save",
			},
			DataZoom: &opts.ToolBoxFeatureDataZoom{
				Show: true,
			},
		},
	})
}

// convertHistogramData produces one bar per bin.
func convertHistogramData(h *stats.Histogram) ([]string, []opts.BarData) {
	labels := make([]string, 0, stats.NumBins)
	items := make([]opts.BarData, 0, stats.NumBins)
	for v := 0; v < stats.NumBins; v++ {
		labels = append(labels, strconv.Itoa(v))
		items = append(items, opts.BarData{Value: h.Count(v)})
	}
	return labels, items
}

// convertECDFData converts eCDF points to chart points.
func convertECDFData(data [][2]float64) []opts.LineData {
	items := []opts.LineData{}
	for _, pair := range data {
		items = append(items, opts.LineData{Value: pair})
	}
	return items
}

func newHistogramChart(h *stats.Histogram) *charts.Bar {
	bar := charts.NewBar()
	bar.SetGlobalOptions(charts.WithInitializationOpts(opts.Initialization{
		Theme:     types.ThemeChalk,
		PageTitle: pageTitle,
	}),
		toolbox(),
		charts.WithLegendOpts(opts.Legend{Show: true}),
		charts.WithTitleOpts(opts.Title{
			Title: "Count Histogram",
		}))
	labels, items := convertHistogramData(h)
	bar.SetXAxis(labels).AddSeries("Runs", items)
	return bar
}

func newECDFChart(ecdf [][2]float64) *charts.Line {
	line := charts.NewLine()
	line.SetGlobalOptions(charts.WithInitializationOpts(opts.Initialization{
		Theme: types.ThemeChalk,
	}),
		toolbox(),
		charts.WithLegendOpts(opts.Legend{Show: true}),
		charts.WithTitleOpts(opts.Title{
			Title:    "Count Distribution",
			Subtitle: "eCDF of the normalized count",
		}))
	line.AddSeries("eCDF", convertECDFData(ecdf))
	return line
}

// RenderHTML writes an interactive page with the histogram and its eCDF.
func RenderHTML(w io.Writer, h *stats.Histogram, ecdf [][2]float64) error {
	page := components.NewPage()
	page.PageTitle = pageTitle
	page.AddCharts(newHistogramChart(h), newECDFChart(ecdf))
	return page.Render(w)
}

// HTML returns the page RenderHTML would write.
func HTML(h *stats.Histogram, ecdf [][2]float64) ([]byte, error) {
	var buf bytes.Buffer
	if err := RenderHTML(&buf, h, ecdf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
