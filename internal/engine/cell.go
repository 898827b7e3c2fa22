// cell.go
// Copyright (C) 2018 Vilhjálmur Þorsteinsson
// This file implements Cell and the premium-square taxonomy. Each
// cell carries a CrossMask bitset per axis, constraining which letters
// may legally occupy it given the perpendicular word already fixed
// through it.

/*

This program is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

This program is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with this program.  If not, see <http://www.gnu.org/licenses/>.

*/

package engine

// PremiumType enumerates the kinds of premium squares found on a
// standard 15x15 Scrabble board.
type PremiumType int

const (
	// Normal carries no multiplier.
	Normal PremiumType = iota
	// DoubleLetter doubles the point value of the single tile placed
	// on this cell.
	DoubleLetter
	// TripleLetter triples the point value of the single tile placed
	// on this cell.
	TripleLetter
	// DoubleWord doubles the total value of any word passing through
	// this cell, including the center star square.
	DoubleWord
	// TripleWord triples the total value of any word passing through
	// this cell.
	TripleWord
)

// Axis identifies one of the two directions a word can run.
type Axis int

const (
	// Horizontal runs left to right, i.e. along increasing column.
	Horizontal Axis = iota
	// Vertical runs top to bottom, i.e. along increasing row.
	Vertical
)

// Other returns the axis perpendicular to a.
func (a Axis) Other() Axis {
	if a == Horizontal {
		return Vertical
	}
	return Horizontal
}

// Cell is a single square of the board.
type Cell struct {
	Row, Col int
	Premium  PremiumType
	// Tile is the tile occupying this cell, or nil if empty.
	Tile *Tile
	// crossMask[axis] is the set of letters that may legally be placed
	// here when a word is being formed along the given axis; it is
	// derived from the perpendicular word that would be formed. A cell
	// with no perpendicular neighbors has FullMask on both axes.
	crossMask [2]CrossMask
}

// NewCell returns an empty Cell at (row, col) with the given premium
// type and unconstrained cross masks.
func NewCell(row, col int, premium PremiumType) *Cell {
	return &Cell{
		Row:       row,
		Col:       col,
		Premium:   premium,
		crossMask: [2]CrossMask{FullMask, FullMask},
	}
}

// IsEmpty reports whether the cell holds no tile.
func (c *Cell) IsEmpty() bool {
	return c.Tile == nil
}

// Letter returns the letter currently occupying the cell (the tile's
// Meaning if it is a played blank, otherwise its Letter), or 0 if the
// cell is empty.
func (c *Cell) Letter() Letter {
	if c.Tile == nil {
		return 0
	}
	if c.Tile.Meaning != 0 {
		return c.Tile.Meaning
	}
	return c.Tile.Letter
}

// CrossMask returns the cell's cross mask for the given axis: the set
// of letters that may legally be placed here by a word running along
// that axis, given whatever perpendicular word already passes through
// it.
func (c *Cell) CrossMask(axis Axis) CrossMask {
	return c.crossMask[axis]
}

// SetCrossMask sets the cell's cross mask for the given axis. Called
// by Board.recomputeCrosses after every committed placement.
func (c *Cell) SetCrossMask(axis Axis, mask CrossMask) {
	c.crossMask[axis] = mask
}

// Allows reports whether letter l may legally be placed in this cell
// when forming a word along axis.
func (c *Cell) Allows(axis Axis, l Letter) bool {
	return c.crossMask[axis].Allows(l)
}

// LetterMultiplier returns the multiplier applied to a single tile's
// point value when placed on this cell.
func (c *Cell) LetterMultiplier() int {
	switch c.Premium {
	case DoubleLetter:
		return 2
	case TripleLetter:
		return 3
	default:
		return 1
	}
}

// WordMultiplier returns the multiplier applied to an entire word's
// point value when it passes through this cell.
func (c *Cell) WordMultiplier() int {
	switch c.Premium {
	case DoubleWord:
		return 2
	case TripleWord:
		return 3
	default:
		return 1
	}
}
