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

package utils

import "github.com/urfave/cli/v2"

// command line flags of the analyzer
var (
	ResultDirFlag = cli.PathFlag{
		Name:    "result_dir",
		Aliases: []string{"d"},
		Usage:   "directory path to the simulation result",
		Value:   "results",
	}
	SkipBoardsFlag = cli.BoolFlag{
		Name:  "skip-boards",
		Usage: "do not decode boards even if a board file is present",
	}
	HtmlReportFlag = cli.BoolFlag{
		Name:  "html",
		Usage: "additionally write an interactive histogram page",
	}
	SummaryFlag = cli.BoolFlag{
		Name:  "summary",
		Usage: "print summary statistics of the counts",
	}
)
