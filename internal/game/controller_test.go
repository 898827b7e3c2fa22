// controller_test.go
// Copyright (C) 2018 Vilhjálmur Þorsteinsson

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

package game

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ajschoenb2/scrabble/internal/engine"
)

// pairTrie returns a dictionary containing every two-letter
// combination, so that any dealt rack can open with its first two
// tiles and the computer always has moves available.
func pairTrie() *engine.Trie {
	trie := engine.NewTrie()
	for a := 'A'; a <= 'Z'; a++ {
		for b := 'A'; b <= 'Z'; b++ {
			trie.Insert(string(a) + string(b))
		}
	}
	return trie
}

// openingWord builds a playable two-letter word from the first tiles
// of a rack, substituting 'A' for a blank.
func openingWord(rack *engine.Rack) string {
	letters := rack.AsLetters()
	word := make([]rune, 2)
	for i := 0; i < 2; i++ {
		if letters[i] == engine.Blank {
			word[i] = 'A'
		} else {
			word[i] = rune(letters[i])
		}
	}
	return string(word)
}

// tileCount counts every tile in play: bag, both racks and the board.
func tileCount(c *Controller) int {
	n := c.Bag.Size() + c.Racks[Human].Size() + c.Racks[Computer].Size()
	for row := 0; row < engine.BoardSize; row++ {
		for col := 0; col < engine.BoardSize; col++ {
			if !c.Board.Cell(row, col).IsEmpty() {
				n++
			}
		}
	}
	return n
}

func TestNewDealsBothRacks(t *testing.T) {
	c := NewSeeded(pairTrie(), Impossible, "Alice", zerolog.Nop(), 1)
	assert.Equal(t, engine.RackSize, c.Racks[Human].Size())
	assert.Equal(t, engine.RackSize, c.Racks[Computer].Size())
	assert.Equal(t, engine.TotalTileCount-2*engine.RackSize, c.Bag.Size())
	assert.Equal(t, Human, c.PlayerToMove())
	assert.Equal(t, [2]int{0, 0}, c.Scores)
	assert.False(t, c.IsOver())
	assert.Equal(t, engine.TotalTileCount, tileCount(c))
}

func TestScorelessTurnsEndTheGame(t *testing.T) {
	c := NewSeeded(pairTrie(), Impossible, "Alice", zerolog.Nop(), 2)
	for i := 0; i < maxConsecutiveScoreless; i++ {
		require.False(t, c.IsOver())
		_, err := c.ApplyHuman(Command{Kind: CommandPass})
		require.NoError(t, err)
	}
	assert.True(t, c.IsOver())
	assert.Len(t, c.Transcript(), maxConsecutiveScoreless)
}

func TestApplyWordScoresAndRefills(t *testing.T) {
	c := NewSeeded(pairTrie(), Impossible, "Alice", zerolog.Nop(), 3)
	word := openingWord(c.Racks[Human])
	score, err := c.ApplyHuman(Command{
		Kind: CommandWord, Word: word,
		Row: engine.Center, Col: engine.Center, Axis: engine.Horizontal,
	})
	require.NoError(t, err)
	assert.Greater(t, score, 0)
	assert.Equal(t, score, c.Scores[Human])
	assert.Equal(t, engine.RackSize, c.Racks[Human].Size())
	assert.Equal(t, Computer, c.PlayerToMove())
	assert.Equal(t, engine.TotalTileCount, tileCount(c))
	require.Len(t, c.Transcript(), 1)
	assert.Contains(t, c.Transcript()[0], word)
}

func TestIllegalWordLeavesStateUntouched(t *testing.T) {
	c := NewSeeded(pairTrie(), Impossible, "Alice", zerolog.Nop(), 4)
	word := openingWord(c.Racks[Human])
	// Off-center first move
	_, err := c.ApplyHuman(Command{
		Kind: CommandWord, Word: word, Row: 0, Col: 0, Axis: engine.Horizontal,
	})
	require.Error(t, err)
	assert.Equal(t, Human, c.PlayerToMove())
	assert.Equal(t, 0, c.Scores[Human])
	assert.Equal(t, engine.RackSize, c.Racks[Human].Size())
	assert.True(t, c.Board.IsEmpty())
	// Unknown command kind
	_, err = c.ApplyHuman(Command{Kind: CommandKind(99)})
	require.Error(t, err)
}

func TestExchange(t *testing.T) {
	c := NewSeeded(pairTrie(), Impossible, "Alice", zerolog.Nop(), 5)
	letters := c.Racks[Human].AsLetters()
	ex := ""
	for _, l := range letters[:3] {
		if l == engine.Blank {
			ex += "?"
		} else {
			ex += string(rune(l))
		}
	}
	bagBefore := c.Bag.Size()
	_, err := c.ApplyHuman(Command{Kind: CommandExchange, Letters: ex})
	require.NoError(t, err)
	assert.Equal(t, engine.RackSize, c.Racks[Human].Size())
	assert.Equal(t, bagBefore, c.Bag.Size())
	assert.Equal(t, engine.TotalTileCount, tileCount(c))
	assert.Equal(t, Computer, c.PlayerToMove())

	// Asking for tiles the rack does not hold fails atomically; no
	// rack can hold three blanks, the set only has two
	rackBefore := c.Racks[Computer].Size()
	_, err = c.apply(Computer, Command{Kind: CommandExchange, Letters: "???"})
	require.Error(t, err)
	assert.Equal(t, rackBefore, c.Racks[Computer].Size())
	assert.Equal(t, engine.TotalTileCount, tileCount(c))
}

func TestPlayComputerCommitsBestSampledMove(t *testing.T) {
	c := NewSeeded(pairTrie(), Impossible, "Alice", zerolog.Nop(), 6)
	_, err := c.ApplyHuman(Command{Kind: CommandPass})
	require.NoError(t, err)
	require.Equal(t, Computer, c.PlayerToMove())

	cand, score, err := c.PlayComputer()
	require.NoError(t, err)
	// With every two-letter word legal, the computer always finds a
	// scoring opening move
	assert.NotEmpty(t, cand.Word)
	assert.Greater(t, score, 0)
	assert.Equal(t, score, c.Scores[Computer])
	assert.Equal(t, engine.RackSize, c.Racks[Computer].Size())
	assert.False(t, c.Board.IsEmpty())
	assert.Equal(t, Human, c.PlayerToMove())
	assert.Equal(t, engine.TotalTileCount, tileCount(c))
}

func TestFinishAppliesLeftoverPenalty(t *testing.T) {
	c := NewSeeded(pairTrie(), Impossible, "Alice", zerolog.Nop(), 7)
	c.Scores[Human] = 100
	c.Scores[Computer] = 80

	humanLeft := rackValue(c.Racks[Human])
	computerLeft := rackValue(c.Racks[Computer])
	scores, result := c.Finish()
	assert.Equal(t, 100-humanLeft+computerLeft, scores[Human])
	assert.Equal(t, 80-computerLeft+humanLeft, scores[Computer])
	if scores[Human] > scores[Computer] {
		assert.Contains(t, result, "Alice wins")
	} else if scores[Computer] > scores[Human] {
		assert.Contains(t, result, "Computer wins")
	} else {
		assert.Contains(t, result, "Tie")
	}
}

func TestRackValueIgnoresBlanks(t *testing.T) {
	rack := engine.NewRack()
	rack.Add(&engine.Tile{Letter: engine.Blank})
	rack.Add(&engine.Tile{Letter: 'Q', Points: 10})
	rack.Add(&engine.Tile{Letter: 'E', Points: 1})
	assert.Equal(t, 11, rackValue(rack))
}
