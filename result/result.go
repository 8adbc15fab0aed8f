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

// Package result reads the files an external bingo simulation leaves in its
// result directory.
package result

import (
	"io"
	"os"
	"path/filepath"

	"github.com/0xsoniclabs/bingo/board"
	"github.com/cockroachdb/errors"
	"github.com/klauspost/compress/gzip"
)

const (
	// CountsFile holds one byte per simulation run.
	CountsFile = "counts.bin"
	// BoardsFile holds board.Stride packed bytes per simulation run.
	BoardsFile = "boards.bin"

	gzipSuffix = ".gz"
)

// ErrInvalidResultDirectory is returned when the result directory is missing or is not a directory.
var ErrInvalidResultDirectory = errors.New("invalid result directory")

// Result is the in-memory content of a result directory.
type Result struct {
	Counts []uint8
	Boards []board.Board // nil when boards were not decoded
}

// Load checks dir and reads the counts and, if requested, the decoded boards.
func Load(dir string, withBoards bool) (*Result, error) {
	if err := CheckDir(dir); err != nil {
		return nil, err
	}
	counts, err := ReadCounts(dir)
	if err != nil {
		return nil, err
	}
	res := &Result{Counts: counts}
	if withBoards {
		res.Boards, err = ReadBoards(dir)
		if err != nil {
			return nil, err
		}
	}
	return res, nil
}

// CheckDir returns ErrInvalidResultDirectory unless dir exists and is a directory.
func CheckDir(dir string) error {
	stat, err := os.Stat(dir)
	if err != nil {
		return errors.Wrapf(ErrInvalidResultDirectory, "%s does not exist", dir)
	}
	if !stat.IsDir() {
		return errors.Wrapf(ErrInvalidResultDirectory, "%s is not a directory", dir)
	}
	return nil
}

// ReadCounts returns the count of every simulation run in file order.
func ReadCounts(dir string) ([]uint8, error) {
	return readFile(dir, CountsFile)
}

// ReadBoards reads and decodes the board of every simulation run in file order.
func ReadBoards(dir string) ([]board.Board, error) {
	data, err := readFile(dir, BoardsFile)
	if err != nil {
		return nil, err
	}
	boards, err := board.Decode(data)
	if err != nil {
		return nil, errors.Wrapf(err, "cannot decode %s", filepath.Join(dir, BoardsFile))
	}
	return boards, nil
}

// HasBoards reports whether dir contains a board file, plain or compressed.
func HasBoards(dir string) bool {
	_, _, err := locate(dir, BoardsFile)
	return err == nil
}

// locate finds name in dir, falling back to its gzip-compressed sibling.
func locate(dir, name string) (path string, compressed bool, err error) {
	path = filepath.Join(dir, name)
	stat, err := os.Stat(path)
	if err == nil && !stat.IsDir() {
		return path, false, nil
	}
	gzPath := path + gzipSuffix
	if stat, gzErr := os.Stat(gzPath); gzErr == nil && !stat.IsDir() {
		return gzPath, true, nil
	}
	if err == nil {
		err = errors.Newf("%s is a directory", path)
	}
	return "", false, errors.Wrapf(err, "cannot find %s", name)
}

func readFile(dir, name string) ([]byte, error) {
	path, compressed, err := locate(dir, name)
	if err != nil {
		return nil, err
	}
	if !compressed {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, errors.Wrapf(err, "cannot read %s", path)
		}
		return data, nil
	}
	return readGzip(path)
}

func readGzip(path string) (data []byte, err error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "cannot open %s", path)
	}
	defer func() {
		err = errors.CombineErrors(err, file.Close())
	}()
	reader, err := gzip.NewReader(file)
	if err != nil {
		return nil, errors.Wrapf(err, "could not create gzip reader for %s", path)
	}
	defer func() {
		err = errors.CombineErrors(err, reader.Close())
	}()
	data, err = io.ReadAll(reader)
	if err != nil {
		return nil, errors.Wrapf(err, "cannot decompress %s", path)
	}
	return data, nil
}
