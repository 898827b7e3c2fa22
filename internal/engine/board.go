// board.go
// Copyright (C) 2018 Vilhjálmur Þorsteinsson
// This file implements Board: the 15x15 grid, its fixed premium
// layout, prefix/postfix readers, the legality predicate, scored
// placement (commit and sandbox), and cross-mask maintenance. An LRU
// cache memoizes the dictionary lookups performed while recomputing
// cross masks.

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

import (
	"strings"
	"sync"

	"github.com/hashicorp/golang-lru/simplelru"
)

// BoardSize is the number of rows and columns of a standard board.
const BoardSize = 15

// Center is the row and column of the center star square, which the
// first placement of a game must cover.
const Center = BoardSize / 2

// IllegalScore is the sentinel returned by Place for an illegal
// placement. It is negative, so a caller can always distinguish it
// from any real score, which is non-negative.
const IllegalScore = -1

// BingoBonus is added to a placement's score when it consumes every
// tile on the player's rack.
const BingoBonus = 50

// Board is the 15x15 grid of Cells, together with the premium layout
// and the shared Trie used for word validation and cross-mask
// computation.
type Board struct {
	cells   [BoardSize][BoardSize]*Cell
	trie    *Trie
	empty   bool
	crosses crossCache
}

// NewBoard returns a Board laid out with the standard premium squares
// and backed by trie for word lookups. The board starts empty.
func NewBoard(trie *Trie) *Board {
	b := &Board{trie: trie, empty: true}
	for row := 0; row < BoardSize; row++ {
		for col := 0; col < BoardSize; col++ {
			b.cells[row][col] = NewCell(row, col, premiumAt(row, col))
		}
	}
	b.crosses.init(2048)
	return b
}

// IsEmpty reports whether no tile has yet been placed on the board.
func (b *Board) IsEmpty() bool {
	return b.empty
}

// Cell returns the cell at (row, col), or nil if out of bounds.
func (b *Board) Cell(row, col int) *Cell {
	if row < 0 || row >= BoardSize || col < 0 || col >= BoardSize {
		return nil
	}
	return b.cells[row][col]
}

// step returns the (row, col) one position further along axis from
// (row, col), in the forward direction (increasing row for Vertical,
// increasing col for Horizontal). This is the resolution of the
// design note about the DOWN-stepping ambiguity: stepping is always
// (row+1, col) for Vertical and (row, col+1) for Horizontal, giving
// symmetric treatment to both axes.
func step(row, col int, axis Axis, delta int) (int, int) {
	if axis == Horizontal {
		return row, col + delta
	}
	return row + delta, col
}

// Prefix returns the contiguous run of letters immediately before
// (row, col) along axis, reading outward until an empty cell or the
// edge of the board is reached. The returned string is in reading
// order (left-to-right or top-to-bottom), i.e. the letter closest to
// (row, col) is last.
func (b *Board) Prefix(row, col int, axis Axis) string {
	var letters []rune
	r, c := step(row, col, axis, -1)
	for {
		cell := b.Cell(r, c)
		if cell == nil || cell.IsEmpty() {
			break
		}
		letters = append(letters, rune(cell.Letter()))
		r, c = step(r, c, axis, -1)
	}
	// letters was accumulated outward from (row, col); reverse it so
	// that it reads in normal left-to-right / top-to-bottom order.
	for i, j := 0, len(letters)-1; i < j; i, j = i+1, j-1 {
		letters[i], letters[j] = letters[j], letters[i]
	}
	return string(letters)
}

// Postfix returns the contiguous run of letters immediately after
// (row, col) along axis, symmetric to Prefix.
func (b *Board) Postfix(row, col int, axis Axis) string {
	var letters []rune
	r, c := step(row, col, axis, 1)
	for {
		cell := b.Cell(r, c)
		if cell == nil || cell.IsEmpty() {
			break
		}
		letters = append(letters, rune(cell.Letter()))
		r, c = step(r, c, axis, 1)
	}
	return string(letters)
}

// recomputeCrosses recomputes every empty cell's cross masks across
// the entire board. A full recompute after every commit is cheap
// (at most 26 trie lookups per axis of each empty cell, and none on a
// cache hit) and avoids the stale-mask hazards
// of an incremental neighbor-only update.
func (b *Board) recomputeCrosses() {
	for row := 0; row < BoardSize; row++ {
		for col := 0; col < BoardSize; col++ {
			cell := b.cells[row][col]
			if !cell.IsEmpty() {
				continue
			}
			for _, axis := range [2]Axis{Horizontal, Vertical} {
				b.recomputeCellCross(cell, axis)
			}
		}
	}
}

// recomputeCellCross implements Cell.recompute_crosses for a single
// axis: if there is no perpendicular contact (both prefix and postfix
// empty), the existing mask is preserved; otherwise the mask is
// replaced, even if it ends up empty.
func (b *Board) recomputeCellCross(cell *Cell, axis Axis) {
	perp := axis.Other()
	pre := b.Prefix(cell.Row, cell.Col, perp)
	post := b.Postfix(cell.Row, cell.Col, perp)
	if pre == "" && post == "" {
		return
	}
	key := crossKey(perp, pre, post)
	mask := b.crosses.lookup(key, func() CrossMask {
		return b.computeCrossMask(pre, post)
	})
	cell.SetCrossMask(axis, mask)
}

// computeCrossMask enumerates the letters L for which pre+L+post is a
// dictionary word.
func (b *Board) computeCrossMask(pre, post string) CrossMask {
	var mask CrossMask
	for l := Letter('A'); l <= 'Z'; l++ {
		word := pre + string(rune(l)) + post
		if b.trie.Contains(word) {
			mask |= letterBit(l)
		}
	}
	return mask
}

func crossKey(axis Axis, pre, post string) string {
	var sb strings.Builder
	if axis == Horizontal {
		sb.WriteByte('H')
	} else {
		sb.WriteByte('V')
	}
	sb.WriteByte('|')
	sb.WriteString(pre)
	sb.WriteByte('|')
	sb.WriteString(post)
	return sb.String()
}

// touchesExistingPlay reports whether the given set of placement
// cells is adjacent to (or passes through) a pre-existing tile, which
// is condition 2 of the legality predicate once the board is no
// longer empty.
func (b *Board) touchesExistingPlay(cells []placementCell) bool {
	for _, pc := range cells {
		if !pc.fresh {
			return true
		}
		for _, d := range [4][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}} {
			if neighbor := b.Cell(pc.row+d[0], pc.col+d[1]); neighbor != nil && !neighbor.IsEmpty() {
				return true
			}
		}
	}
	return false
}

// placementCell is one letter of a candidate placement, resolved
// against the current board contents.
type placementCell struct {
	row, col int
	letter   Letter
	fresh    bool // true if this cell is currently empty
}

// resolveCells walks word starting at (row, col) along axis and
// returns the board coordinates and emptiness of each letter
// position, or ok=false if the word runs off the edge of the board.
func (b *Board) resolveCells(word string, row, col int, axis Axis) (cells []placementCell, ok bool) {
	r, c := row, col
	for _, ch := range word {
		cell := b.Cell(r, c)
		if cell == nil {
			return nil, false
		}
		cells = append(cells, placementCell{row: r, col: c, letter: Letter(upperRune(ch)), fresh: cell.IsEmpty()})
		r, c = step(r, c, axis, 1)
	}
	return cells, true
}

// Place evaluates (and, unless sandbox is true, commits) a placement
// of word at (row, col) along axis, consuming tiles from rack. It
// returns IllegalScore if the placement is not legal. On a successful
// commit, rack and board are mutated; on a successful sandbox
// evaluation, neither is touched and the returned score equals what a
// subsequent commit with identical arguments would score.
func (b *Board) Place(word string, row, col int, axis Axis, rack *Rack, sandbox bool) int {
	word = strings.ToUpper(word)
	cells, ok := b.resolveCells(word, row, col, axis)
	if !ok {
		return IllegalScore
	}
	if !b.trie.Contains(word) {
		return IllegalScore
	}
	if b.empty {
		coversCenter := false
		for _, pc := range cells {
			if pc.row == Center && pc.col == Center {
				coversCenter = true
				break
			}
		}
		if !coversCenter {
			return IllegalScore
		}
	} else if !b.touchesExistingPlay(cells) {
		return IllegalScore
	}

	// Walk the placement, consuming rack tiles for fresh cells and
	// validating cross masks, using a scratch rack so an illegal
	// placement never mutates the caller's rack even under sandbox.
	scratch := rack
	if sandbox {
		scratch = rack.Clone()
	}
	type consumed struct {
		letter    Letter
		tile      *Tile
		usedBlank bool
	}
	var used []consumed
	restore := func() {
		for i := len(used) - 1; i >= 0; i-- {
			scratch.Restore(used[i].tile)
		}
	}

	wordScore := 0
	wordMul := 1
	crossTotal := 0
	freshCount := 0

	for _, pc := range cells {
		cell := b.Cell(pc.row, pc.col)
		if !pc.fresh {
			// Already-occupied cell: must match exactly, contributes
			// its stored face value with no multiplier.
			if cell.Letter() != pc.letter {
				restore()
				return IllegalScore
			}
			wordScore += cell.Tile.Points
			continue
		}
		if !cell.Allows(axis, pc.letter) {
			restore()
			return IllegalScore
		}
		tile, usedBlank := scratch.RemovePreferring(pc.letter)
		if tile == nil {
			restore()
			return IllegalScore
		}
		used = append(used, consumed{letter: pc.letter, tile: tile, usedBlank: usedBlank})

		points := Points[pc.letter]
		if usedBlank {
			points = 0
		}
		letterMul := cell.LetterMultiplier()
		wordScore += points * letterMul
		wordMul *= cell.WordMultiplier()
		freshCount++

		perp := axis.Other()
		pre := b.Prefix(pc.row, pc.col, perp)
		post := b.Postfix(pc.row, pc.col, perp)
		crossSum := sumPoints(pre) + sumPoints(post)
		if crossSum > 0 {
			crossMul := cell.WordMultiplier()
			crossTotal += crossMul * (crossSum + letterMul*points)
		}
	}

	// A placement must lay down at least one new tile; retracing a
	// word already on the board is not a move.
	if freshCount == 0 {
		return IllegalScore
	}

	score := crossTotal + wordMul*wordScore
	if freshCount == RackSize {
		score += BingoBonus
	}

	if sandbox {
		// The scratch rack is a clone and is simply discarded; the
		// caller's rack and the board remain untouched throughout.
		return score
	}

	// Commit: fill freshly placed cells with their scored tiles.
	ui := 0
	for _, pc := range cells {
		if !pc.fresh {
			continue
		}
		c := used[ui]
		ui++
		points := Points[pc.letter]
		if c.usedBlank {
			points = 0
		}
		tile := c.tile
		tile.Points = points
		if c.usedBlank {
			tile.Meaning = pc.letter
		}
		b.Cell(pc.row, pc.col).Tile = tile
	}
	b.empty = false
	b.recomputeCrosses()
	return score
}

func sumPoints(s string) int {
	total := 0
	for _, r := range s {
		total += Points[Letter(r)]
	}
	return total
}

// premiumAt returns the fixed premium type of the standard 15x15
// board at (row, col).
func premiumAt(row, col int) PremiumType {
	key := [2]int{row, col}
	if tripleWordSquares[key] {
		return TripleWord
	}
	if doubleWordSquares[key] {
		return DoubleWord
	}
	if tripleLetterSquares[key] {
		return TripleLetter
	}
	if doubleLetterSquares[key] {
		return DoubleLetter
	}
	return Normal
}

var tripleWordSquares = coordSet(
	0, 0, 0, 7, 0, 14,
	7, 0, 7, 14,
	14, 0, 14, 7, 14, 14,
)

var doubleWordSquares = reflected(
	1, 1, 2, 2, 3, 3, 4, 4,
)

var tripleLetterSquares = coordSet(
	1, 5, 1, 9,
	5, 1, 5, 5, 5, 9, 5, 13,
	9, 1, 9, 5, 9, 9, 9, 13,
	13, 5, 13, 9,
)

var doubleLetterSquares = coordSet(
	0, 3, 0, 11,
	2, 6, 2, 8,
	3, 0, 3, 7, 3, 14,
	6, 2, 6, 6, 6, 8, 6, 12,
	7, 3, 7, 11,
	8, 2, 8, 6, 8, 8, 8, 12,
	11, 0, 11, 7, 11, 14,
	12, 6, 12, 8,
	14, 3, 14, 11,
)

// coordSet builds a set of (row, col) pairs from a flat list of
// row, col, row, col, ... literals.
func coordSet(coords ...int) map[[2]int]bool {
	set := make(map[[2]int]bool, len(coords)/2)
	for i := 0; i < len(coords); i += 2 {
		set[[2]int{coords[i], coords[i+1]}] = true
	}
	// The center square (7,7) is both a DW square per the standard
	// layout and the required first-move anchor; it is listed
	// explicitly among the DW reflections below, not here.
	return set
}

// reflected builds the mirror images of the given (row, col) pairs
// across the horizontal, vertical and diagonal symmetries of the
// board, plus the center square. For a point on the main diagonal,
// such as the (k, k) DW points, the eight images collapse to four
// distinct squares.
func reflected(coords ...int) map[[2]int]bool {
	set := make(map[[2]int]bool)
	last := BoardSize - 1
	for i := 0; i < len(coords); i += 2 {
		r, c := coords[i], coords[i+1]
		for _, p := range [][2]int{
			{r, c}, {r, last - c},
			{last - r, c}, {last - r, last - c},
			{c, r}, {c, last - r},
			{last - c, r}, {last - c, last - r},
		} {
			set[p] = true
		}
	}
	set[[2]int{Center, Center}] = true
	return set
}

// crossCache memoizes the "which letters fit pre+?+post" computation,
// keyed by axis and the surrounding letters.
type crossCache struct {
	mux sync.Mutex
	lru *simplelru.LRU
}

func (cc *crossCache) init(size int) {
	cc.lru, _ = simplelru.NewLRU(size, nil)
}

func (cc *crossCache) lookup(key string, fetch func() CrossMask) CrossMask {
	cc.mux.Lock()
	defer cc.mux.Unlock()
	if v, ok := cc.lru.Get(key); ok {
		return v.(CrossMask)
	}
	mask := fetch()
	cc.lru.Add(key, mask)
	return mask
}
