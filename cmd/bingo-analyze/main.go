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

package main

import (
	"fmt"
	"os"

	"github.com/0xsoniclabs/bingo/logger"
	"github.com/0xsoniclabs/bingo/utils"
	"github.com/urfave/cli/v2"
)

var AnalyzeApp = cli.App{
	Name:      "Bingo Analyzer",
	HelpName:  "bingo-analyze",
	Usage:     "aggregate the counts and boards of a bingo simulation result",
	Copyright: "(c) 2025 Sonic Labs",
	Flags: []cli.Flag{
		&utils.ResultDirFlag,
		&utils.SkipBoardsFlag,
		&utils.HtmlReportFlag,
		&utils.SummaryFlag,
		&logger.LogLevelFlag,
	},
	Action: analyzeAction,
	Description: `
The bingo-analyze command reads counts.bin and, if present, boards.bin from the
result directory and writes histogram.png and count.txt next to them.`,
}

// main implements the bingo result analyzer
func main() {
	if err := AnalyzeApp.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
