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

package config

import (
	"strings"

	"github.com/0xsoniclabs/bingo/logger"
	"github.com/0xsoniclabs/bingo/utils"
	"github.com/cockroachdb/errors"
	"github.com/urfave/cli/v2"
)

// Config holds everything a single analysis run needs to know.
type Config struct {
	AppName string

	ResultDir  string // directory holding the simulation result
	LogLevel   string // level of the logging of the app action
	SkipBoards bool   // ignore the board file even if present
	HtmlReport bool   // additionally write the interactive histogram page
	Summary    bool   // print summary statistics to stdout
}

// NewConfig creates and validates a Config from the flags of the cli context.
func NewConfig(ctx *cli.Context) (*Config, error) {
	cfg := createConfigFromFlags(ctx)
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// NewDefaultConfig returns a Config with the default value of every flag pointing at dir.
func NewDefaultConfig(dir string) *Config {
	return &Config{
		AppName:    "bingo-analyze",
		ResultDir:  dir,
		LogLevel:   logger.LogLevelFlag.Value,
		SkipBoards: utils.SkipBoardsFlag.Value,
		HtmlReport: utils.HtmlReportFlag.Value,
		Summary:    utils.SummaryFlag.Value,
	}
}

// createConfigFromFlags returns Config instance with user specified values or the default ones
func createConfigFromFlags(ctx *cli.Context) *Config {
	cfg := &Config{
		ResultDir:  getFlagValue(ctx, utils.ResultDirFlag).(string),
		LogLevel:   getFlagValue(ctx, logger.LogLevelFlag).(string),
		SkipBoards: getFlagValue(ctx, utils.SkipBoardsFlag).(bool),
		HtmlReport: getFlagValue(ctx, utils.HtmlReportFlag).(bool),
		Summary:    getFlagValue(ctx, utils.SummaryFlag).(bool),
	}
	if ctx.App != nil {
		cfg.AppName = ctx.App.HelpName
	}
	return cfg
}

func (cfg *Config) validate() error {
	if strings.TrimSpace(cfg.ResultDir) == "" {
		return errors.New("result directory must not be empty")
	}
	return nil
}

// definedFlags returns the flags of the running command, or those of the app
// when the action is attached to the app itself.
func definedFlags(ctx *cli.Context) []cli.Flag {
	if ctx.Command != nil && len(ctx.Command.Flags) > 0 {
		return ctx.Command.Flags
	}
	if ctx.App != nil {
		return ctx.App.Flags
	}
	return nil
}

// getFlagValue returns value specified by user if flag is present in cli context, otherwise return default flag value
func getFlagValue(ctx *cli.Context, flag interface{}) interface{} {
	for _, defined := range definedFlags(ctx) {
		switch f := flag.(type) {
		case cli.StringFlag:
			if defined.Names()[0] == f.Name {
				return ctx.String(f.Name)
			}
		case cli.PathFlag:
			if defined.Names()[0] == f.Name {
				return ctx.Path(f.Name)
			}
		case cli.BoolFlag:
			if defined.Names()[0] == f.Name {
				return ctx.Bool(f.Name)
			}
		}
	}

	// If flag not found, return the default value of the flag
	switch f := flag.(type) {
	case cli.StringFlag:
		return f.Value
	case cli.PathFlag:
		return f.Value
	case cli.BoolFlag:
		return f.Value
	}

	return nil
}
