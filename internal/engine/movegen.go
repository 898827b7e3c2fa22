// movegen.go
// Copyright (C) 2018 Vilhjálmur Þorsteinsson
// This file implements the move generator: the anchor-driven,
// mutually recursive left-part / extend-right enumeration described
// by Appel & Jacobson, "The World's Fastest Scrabble Program"
// (http://www.cs.cmu.edu/afs/cs/academic/class/15451-s06/www/lectures/scrabble.pdf),
// walking the in-memory Trie with plain recursion and push/pop over
// the rack. The 30 axes (15 rows, 15 columns) are scanned
// sequentially; a single move generation completes in well under the
// time a human turn takes.

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

// Candidate is one placement the move generator has found to be
// reachable from the current rack and consistent with the dictionary
// and the board's cross masks. It has not yet been scored or checked
// against the full legality predicate (first-move center rule,
// contact with existing play); Board.Place is authoritative for that.
type Candidate struct {
	Word string
	Row  int
	Col  int
	Axis Axis
}

// MoveGenerator enumerates candidate placements for a rack against a
// board. It holds no state of its own between calls to Generate.
type MoveGenerator struct {
	board *Board
	trie  *Trie
}

// NewMoveGenerator returns a MoveGenerator bound to board, sharing its
// Trie for word lookups.
func NewMoveGenerator(board *Board) *MoveGenerator {
	return &MoveGenerator{board: board, trie: board.trie}
}

// Generate returns every candidate placement reachable from rack,
// deduplicated by (word, row, col, axis). Candidates are not
// filtered for score; Generate does no scoring at all.
func (g *MoveGenerator) Generate(rack *Rack) []Candidate {
	seen := make(map[Candidate]bool)
	var out []Candidate
	emit := func(c Candidate) {
		if !seen[c] {
			seen[c] = true
			out = append(out, c)
		}
	}

	for _, axis := range [2]Axis{Horizontal, Vertical} {
		numLines := BoardSize
		for line := 0; line < numLines; line++ {
			g.generateLine(axis, line, rack, emit)
		}
	}
	return out
}

// cellOnLine returns the board cell at position pos along the given
// line of the given axis: for Horizontal, line is the row and pos is
// the column; for Vertical, line is the column and pos is the row.
func (g *MoveGenerator) cellOnLine(axis Axis, line, pos int) *Cell {
	if axis == Horizontal {
		return g.board.Cell(line, pos)
	}
	return g.board.Cell(pos, line)
}

// isAnchor reports whether the board cell is empty and 4-adjacent to
// an occupied cell, or is the center square on an empty board.
func (g *MoveGenerator) isAnchor(cell *Cell) bool {
	if cell == nil || !cell.IsEmpty() {
		return false
	}
	if g.board.IsEmpty() {
		return cell.Row == Center && cell.Col == Center
	}
	for _, d := range [4][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}} {
		if n := g.board.Cell(cell.Row+d[0], cell.Col+d[1]); n != nil && !n.IsEmpty() {
			return true
		}
	}
	return false
}

// generateLine scans one row or column for anchors and drives
// left_part / extend_right from each one, emitting any candidates
// found via emit.
func (g *MoveGenerator) generateLine(axis Axis, line int, rack *Rack, emit func(Candidate)) {
	lastAnchor := -1
	for pos := 0; pos < BoardSize; pos++ {
		cell := g.cellOnLine(axis, line, pos)
		if !g.isAnchor(cell) {
			continue
		}

		preCell := g.cellOnLine(axis, line, pos-1)
		if preCell != nil && !preCell.IsEmpty() {
			// The cell immediately before the anchor is already
			// occupied: the left extension is fixed by the on-board
			// prefix. Seed the trie by walking that prefix and call
			// extend_right once, skipping left_part entirely.
			prefix := g.board.Prefix(cell.Row, cell.Col, axis)
			node := g.trie.Root()
			ok := true
			for _, r := range prefix {
				node = g.trie.Child(node, Letter(upperRune(r)))
				if node == nil {
					ok = false
					break
				}
			}
			if ok {
				g.extendRight(axis, line, pos, pos, prefix, node, rack, emit)
			}
			lastAnchor = pos
			continue
		}

		// Count consecutive empty cells immediately before the anchor,
		// bounded by the previous anchor encountered on this line.
		limit := 0
		left := pos - 1
		for left >= 0 && left > lastAnchor {
			c := g.cellOnLine(axis, line, left)
			if c == nil || !c.IsEmpty() {
				break
			}
			limit++
			left--
		}
		g.leftPart(axis, line, pos, "", g.trie.Root(), limit, rack, emit)
		lastAnchor = pos
	}
}

// leftPart implements the LeftPart step of Appel & Jacobson: it first
// tries completing the word starting exactly at the anchor (an empty
// left part), then recursively extends the left part by one rack
// letter at a time, up to limit letters, trying every dictionary edge
// the rack can supply.
func (g *MoveGenerator) leftPart(axis Axis, line, anchor int, partial string, node *Node, limit int, rack *Rack, emit func(Candidate)) {
	g.extendRight(axis, line, anchor, anchor, partial, node, rack, emit)
	if limit <= 0 {
		return
	}
	for letter := Letter('A'); letter <= 'Z'; letter++ {
		child := g.trie.Child(node, letter)
		if child == nil || !rack.HasAny(letter) {
			continue
		}
		tile, _ := rack.RemovePreferring(letter)
		g.leftPart(axis, line, anchor, partial+string(rune(letter)), child, limit-1, rack, emit)
		rack.Restore(tile)
	}
}

// extendRight implements the ExtendRight step: walking forward from
// pos along the line, matching the trie against board tiles already
// present, and trying rack tiles (respecting each cell's cross mask)
// where the board is empty. It records a candidate whenever the
// partial formed so far is a complete dictionary word that ends on or
// after the anchor, guaranteeing the placement covers the anchor
// square.
func (g *MoveGenerator) extendRight(axis Axis, line, anchor, pos int, partial string, node *Node, rack *Rack, emit func(Candidate)) {
	if node == nil {
		return
	}
	cell := g.cellOnLine(axis, line, pos)
	if cell == nil {
		if g.trie.Terminal(node) && pos > anchor {
			g.emitCandidate(axis, line, anchor, pos, partial, emit)
		}
		return
	}
	if !cell.IsEmpty() {
		letter := cell.Letter()
		child := g.trie.Child(node, letter)
		if child == nil {
			return
		}
		g.extendRight(axis, line, anchor, pos+1, partial+string(rune(letter)), child, rack, emit)
		return
	}

	if g.trie.Terminal(node) && pos > anchor {
		g.emitCandidate(axis, line, anchor, pos, partial, emit)
	}
	for letter := Letter('A'); letter <= 'Z'; letter++ {
		child := g.trie.Child(node, letter)
		if child == nil {
			continue
		}
		if !cell.Allows(axis, letter) || !rack.HasAny(letter) {
			continue
		}
		tile, _ := rack.RemovePreferring(letter)
		g.extendRight(axis, line, anchor, pos+1, partial+string(rune(letter)), child, rack, emit)
		rack.Restore(tile)
	}
}

// emitCandidate translates an (axis, line, end-position, word) find
// into board coordinates and emits it.
func (g *MoveGenerator) emitCandidate(axis Axis, line, anchor, pos int, word string, emit func(Candidate)) {
	start := pos - len([]rune(word))
	var row, col int
	if axis == Horizontal {
		row, col = line, start
	} else {
		row, col = start, line
	}
	emit(Candidate{Word: word, Row: row, Col: col, Axis: axis})
}
