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
	"fmt"

	"github.com/0xsoniclabs/bingo/board"
	"github.com/0xsoniclabs/bingo/stats"
	"github.com/jedib0t/go-pretty/v6/table"
)

// BoardTable renders a board with the band of every row in front of it.
func BoardTable(b board.Board) string {
	t := table.NewWriter()
	t.SetStyle(table.StyleLight)
	header := table.Row{"band"}
	for c := 1; c <= board.Size; c++ {
		header = append(header, c)
	}
	t.AppendHeader(header)
	for r := 0; r < board.Size; r++ {
		lo, hi := board.Band(r)
		row := table.Row{fmt.Sprintf("%d-%d", lo, hi)}
		for _, v := range b[r] {
			row = append(row, v)
		}
		t.AppendRow(row)
	}
	return t.Render()
}

// SummaryTable renders summary statistics as a two column table.
func SummaryTable(s stats.Summary) string {
	t := table.NewWriter()
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"statistic", "value"})
	t.AppendRows([]table.Row{
		{"runs", s.Runs},
		{"excluded", s.Excluded},
		{"mean", fmt.Sprintf("%.3f", s.Mean)},
		{"std dev", fmt.Sprintf("%.3f", s.StdDev)},
		{"median", fmt.Sprintf("%.0f", s.Median)},
		{"min", s.Min},
		{"max", s.Max},
		{"mode", s.Mode},
	})
	return t.Render()
}
