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

// Package board decodes the packed nibble format in which the simulator
// stores bingo boards.
package board

import (
	"github.com/cockroachdb/errors"
)

const (
	// Size is the number of rows and columns of a board.
	Size = 5
	// Cells is the number of usable cells of a board.
	Cells = Size * Size
	// Stride is the number of bytes a single board occupies in the board file.
	Stride = 13
	// BandWidth is the width of the numeric range assigned to each row.
	BandWidth = 15
	// MaxValue is the exclusive upper bound of any cell value.
	MaxValue = Size * BandWidth

	slots = 2 * Stride
)

// ErrMalformedStride is returned when the board data is not a whole number of boards.
var ErrMalformedStride = errors.New("malformed board stride")

// Board is a decoded 5x5 bingo board. Row r holds values of the band [r*15, r*15+15).
type Board [Size][Size]uint8

// Decode unpacks board data into boards in file order. Every Stride bytes
// carry one board as 26 nibbles (high nibble first); the last nibble is
// padding and the remaining 25 are stored in reverse cell order.
func Decode(data []byte) ([]Board, error) {
	if len(data)%Stride != 0 {
		return nil, errors.Wrapf(ErrMalformedStride, "board data of %d bytes is not a multiple of %d bytes per board", len(data), Stride)
	}
	boards := make([]Board, len(data)/Stride)
	for i := range boards {
		boards[i] = decodeBoard(data[i*Stride : (i+1)*Stride])
	}
	return boards, nil
}

// unpack splits every byte into its high and low nibble, keeping byte order.
func unpack(packed []byte) [slots]uint8 {
	var nibbles [slots]uint8
	for i, b := range packed {
		nibbles[2*i] = b >> 4
		nibbles[2*i+1] = b & 0x0F
	}
	return nibbles
}

func decodeBoard(packed []byte) Board {
	nibbles := unpack(packed)
	var b Board
	for i := 0; i < Cells; i++ {
		r, c := i/Size, i%Size
		b[r][c] = nibbles[Cells-1-i] + uint8(r*BandWidth)
	}
	return b
}

// Band returns the inclusive value range of row r.
func Band(r int) (lo, hi uint8) {
	lo = uint8(r * BandWidth)
	return lo, lo + BandWidth - 1
}

// Valid reports whether every cell lies in the band of its row.
func (b Board) Valid() bool {
	for r, row := range b {
		lo, hi := Band(r)
		for _, v := range row {
			if v < lo || v > hi {
				return false
			}
		}
	}
	return true
}

// Row returns a copy of row r as a slice.
func (b Board) Row(r int) []uint8 {
	row := b[r]
	return row[:]
}
