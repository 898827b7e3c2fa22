// render.go
// Copyright (C) 2018 Vilhjálmur Þorsteinsson
// This file renders the board, racks and scores to a terminal, with
// ANSI highlighting for tiles and premium squares and horizontal
// centering based on the detected terminal width. The plain
// (uncolored) form is always available for piped output and tests.

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

package ui

import (
	"fmt"
	"os"
	"strings"

	"golang.org/x/term"

	"github.com/ajschoenb2/scrabble/internal/engine"
	"github.com/ajschoenb2/scrabble/internal/game"
)

// SGR sequences used for highlighting. Tiles are bright cyan,
// premium squares bright yellow.
const (
	sgrTile    = "\x1b[1;36m"
	sgrPremium = "\x1b[1;33m"
	sgrReset   = "\x1b[0m"
)

// Renderer formats game state for a terminal. With NoColor set it
// emits plain text only, which is also the form the tests consume.
type Renderer struct {
	NoColor bool
	// width is the terminal column count used for centering.
	width int
}

// NewRenderer returns a Renderer sized to the current terminal. When
// stdout is not a terminal (piped output, tests), the width falls
// back to 80 columns.
func NewRenderer(noColor bool) *Renderer {
	width := 80
	if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 0 {
		width = w
	}
	return &Renderer{NoColor: noColor, width: width}
}

// premiumGlyph maps an empty cell's premium type to its board glyph.
func premiumGlyph(p engine.PremiumType) (glyph string, colored bool) {
	switch p {
	case engine.TripleWord:
		return "*", true
	case engine.DoubleWord:
		return "+", true
	case engine.TripleLetter:
		return "\"", true
	case engine.DoubleLetter:
		return "'", true
	default:
		return ".", false
	}
}

// Board renders the 15x15 grid with 0-based row and column headers,
// matching the coordinate system of the move grammar (X = column,
// Y = row).
func (r *Renderer) Board(b *engine.Board) string {
	var sb strings.Builder
	sb.WriteString("    ")
	for col := 0; col < engine.BoardSize; col++ {
		sb.WriteString(fmt.Sprintf("%2d ", col))
	}
	sb.WriteString("\n")
	for row := 0; row < engine.BoardSize; row++ {
		sb.WriteString(fmt.Sprintf("%2d  ", row))
		for col := 0; col < engine.BoardSize; col++ {
			cell := b.Cell(row, col)
			if !cell.IsEmpty() {
				letter := string(rune(cell.Letter()))
				if r.NoColor {
					sb.WriteString(" " + letter + " ")
				} else {
					sb.WriteString(" " + sgrTile + letter + sgrReset + " ")
				}
				continue
			}
			glyph, colored := premiumGlyph(cell.Premium)
			if colored && !r.NoColor {
				sb.WriteString(" " + sgrPremium + glyph + sgrReset + " ")
			} else {
				sb.WriteString(" " + glyph + " ")
			}
		}
		sb.WriteString("\n")
	}
	return sb.String()
}

// Rack renders a rack's tiles, with a blank shown as '?'.
func (r *Renderer) Rack(rack *engine.Rack) string {
	plain := strings.TrimRight(rack.String(), " ")
	if r.NoColor {
		return plain
	}
	return sgrTile + plain + sgrReset
}

// Game renders the full between-turns display: the difficulty
// banner, scores, bag count, board and the human player's rack,
// each line centered to the terminal width.
func (r *Renderer) Game(c *game.Controller) string {
	var sb strings.Builder
	sb.WriteString(r.center(fmt.Sprintf("-- Scrabble [%v] --", c.Difficulty)))
	sb.WriteString(r.center(fmt.Sprintf("%s %d : %d %s   (bag: %d)",
		c.Names[game.Human], c.Scores[game.Human],
		c.Scores[game.Computer], c.Names[game.Computer],
		c.Bag.Size())))
	sb.WriteString("\n")
	for _, line := range strings.Split(strings.TrimRight(r.Board(c.Board), "\n"), "\n") {
		sb.WriteString(r.center(line))
	}
	sb.WriteString("\n")
	sb.WriteString(r.center(fmt.Sprintf("Rack: %s", r.Rack(c.Racks[game.Human]))))
	return sb.String()
}

// center pads line on the left so that it appears horizontally
// centered in the terminal, ignoring ANSI escape sequences when
// measuring its visible width.
func (r *Renderer) center(line string) string {
	pad := (r.width - visibleLen(line)) / 2
	if pad < 0 {
		pad = 0
	}
	return strings.Repeat(" ", pad) + line + "\n"
}

// visibleLen counts the printable runes of a string, skipping over
// ANSI SGR escape sequences.
func visibleLen(s string) int {
	n := 0
	inEscape := false
	for _, r := range s {
		if inEscape {
			if r == 'm' {
				inEscape = false
			}
			continue
		}
		if r == '\x1b' {
			inEscape = true
			continue
		}
		n++
	}
	return n
}
