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

// Package analysis runs the complete evaluation of a simulation result directory.
package analysis

import (
	"io"
	"path/filepath"
	"strconv"
	"time"

	"github.com/0xsoniclabs/bingo/board"
	"github.com/0xsoniclabs/bingo/config"
	"github.com/0xsoniclabs/bingo/logger"
	"github.com/0xsoniclabs/bingo/report"
	"github.com/0xsoniclabs/bingo/result"
	"github.com/0xsoniclabs/bingo/stats"
	"github.com/0xsoniclabs/bingo/utils"
	"github.com/cockroachdb/errors"
)

// output artifacts, overwritten on every run
const (
	HistogramImageFile = "histogram.png"
	CountTextFile      = "count.txt"
	HistogramPageFile  = "histogram.html"
)

// Outcome is what a successful Run produced.
type Outcome struct {
	Histogram *stats.Histogram
	Summary   stats.Summary
	Boards    []board.Board // nil if board decoding was skipped
	Written   []string      // paths of the written artifacts
}

// Run reads the result directory of cfg, aggregates the counts and writes the
// artifacts back into the same directory. Debug output goes to stdout.
// Nothing is written unless every artifact could be rendered.
func Run(cfg *config.Config, log logger.Logger, stdout io.Writer) (_ *Outcome, err error) {
	start := time.Now()
	dir := cfg.ResultDir
	if err := result.CheckDir(dir); err != nil {
		return nil, err
	}

	withBoards := !cfg.SkipBoards && result.HasBoards(dir)
	switch {
	case cfg.SkipBoards:
		log.Notice("board decoding skipped on request")
	case !withBoards:
		log.Noticef("board decoding skipped, no %s in %s", result.BoardsFile, dir)
	}

	res, err := result.Load(dir, withBoards)
	if err != nil {
		return nil, err
	}
	log.Debugf("read %d counts and %d boards from %s", len(res.Counts), len(res.Boards), dir)

	hist := stats.NewHistogram(res.Counts)
	if excluded := hist.Excluded(); excluded > 0 {
		log.Warningf("%d runs have a count of %d or more and are not binned", excluded, stats.NumBins)
	}
	summary := stats.Summarize(hist)

	image, err := report.RenderPNG(hist)
	if err != nil {
		return nil, err
	}
	text := report.CountText(hist)
	var page []byte
	if cfg.HtmlReport {
		page, err = report.HTML(hist, stats.CountECDF(hist))
		if err != nil {
			return nil, errors.Wrap(err, "cannot render histogram page")
		}
	}

	console := utils.NewPrinters()
	if len(res.Counts) > 0 {
		console.AddPrinterToWriter(stdout, func() string {
			return strconv.Itoa(int(res.Counts[0]))
		})
	}
	if len(res.Boards) > 0 {
		console.AddPrinterToWriter(stdout, func() string {
			return report.BoardTable(res.Boards[0])
		})
	}
	if cfg.Summary {
		console.AddPrinterToWriter(stdout, func() string {
			return report.SummaryTable(summary)
		})
	}

	outcome := &Outcome{Histogram: hist, Summary: summary, Boards: res.Boards}
	files := utils.NewPrinters()
	addFile := func(name string, data []byte) {
		path := filepath.Join(dir, name)
		files.AddPrinterToFile(path, func() []byte { return data })
		outcome.Written = append(outcome.Written, path)
	}
	addFile(HistogramImageFile, image)
	addFile(CountTextFile, text)
	if cfg.HtmlReport {
		addFile(HistogramPageFile, page)
	}
	defer func() {
		err = errors.CombineErrors(err, console.Close())
		err = errors.CombineErrors(err, files.Close())
	}()

	if err := console.Print(); err != nil {
		return nil, errors.Wrap(err, "cannot print to console")
	}
	if err := files.Print(); err != nil {
		return nil, err
	}

	log.Infof("binned %d of %d runs; mean %.3f, std dev %.3f", hist.Total(), summary.Runs, summary.Mean, summary.StdDev)
	hours, minutes, seconds := logger.ParseTime(time.Since(start))
	log.Noticef("wrote %d files to %s in %vh %vm %vs", len(outcome.Written), dir, hours, minutes, seconds)
	return outcome, nil
}
