// controller.go
// Copyright (C) 2018 Vilhjálmur Þorsteinsson
// This file implements the game controller: the turn loop state,
// rack/score bookkeeping, difficulty-parameterized computer move
// selection, and end-of-game accounting.

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
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/ajschoenb2/scrabble/internal/engine"
)

// Human and Computer identify the two seats at the table. The human
// always moves first.
const (
	Human    = 0
	Computer = 1
)

// maxConsecutiveScoreless is the number of consecutive scoreless
// turns (PASS or EXCHANGE, by either player) after which the game
// ends even if the bag still has tiles in it, matching standard
// tournament Scrabble practice: 3 scoreless turns per player.
const maxConsecutiveScoreless = 6

// CommandKind identifies which of the three CLI commands a parsed
// line represents.
type CommandKind int

const (
	// CommandWord places a word on the board.
	CommandWord CommandKind = iota
	// CommandPass skips the current turn.
	CommandPass
	// CommandExchange trades rack tiles for fresh ones from the bag.
	CommandExchange
)

// Command is a fully parsed human move. Parsing the raw CLI grammar
// into a Command is the job of the interactive prompt; the Controller
// only ever consumes Commands.
type Command struct {
	Kind CommandKind
	Word string
	Row  int
	Col  int
	Axis engine.Axis
	// Letters holds the tiles to exchange, for CommandExchange. '?'
	// denotes a blank.
	Letters string
}

// Controller owns the Board, Bag, racks, and scores for a single game
// and drives the turn loop described in section 4.6.
type Controller struct {
	Board      *engine.Board
	Bag        *engine.TileBag
	Racks      [2]*engine.Rack
	Scores     [2]int
	Names      [2]string
	Difficulty Difficulty

	moveGen *engine.MoveGenerator
	rng     *rand.Rand
	log     zerolog.Logger

	transcript           []string
	turnIndex            int
	consecutiveScoreless int
}

// New returns a Controller for a fresh game: an empty board built
// from trie, a freshly shuffled bag, and both racks filled to
// capacity.
func New(trie *engine.Trie, difficulty Difficulty, humanName string, logger zerolog.Logger) *Controller {
	return NewSeeded(trie, difficulty, humanName, logger, time.Now().UnixNano())
}

// NewSeeded is like New, but derives both the bag shuffle and the
// candidate sampling from seed, so that tests requiring a
// deterministic game can inject one.
func NewSeeded(trie *engine.Trie, difficulty Difficulty, humanName string, logger zerolog.Logger, seed int64) *Controller {
	board := engine.NewBoard(trie)
	c := &Controller{
		Board:      board,
		Bag:        engine.NewSeededTileBag(seed),
		Names:      [2]string{humanName, "Computer"},
		Difficulty: difficulty,
		moveGen:    engine.NewMoveGenerator(board),
		rng:        rand.New(rand.NewSource(seed)),
		log:        logger,
	}
	c.Racks[Human] = engine.NewRack()
	c.Racks[Computer] = engine.NewRack()
	c.Bag.Draw(c.Racks[Human], engine.RackSize)
	c.Bag.Draw(c.Racks[Computer], engine.RackSize)
	return c
}

// PlayerToMove returns Human or Computer depending on whose turn it
// is, by parity of the move count.
func (c *Controller) PlayerToMove() int {
	return c.turnIndex % 2
}

// IsOver reports whether the game has reached its end condition: the
// bag and at least one rack are empty, or too many consecutive
// scoreless turns have passed.
func (c *Controller) IsOver() bool {
	if c.Bag.IsEmpty() && (c.Racks[Human].IsEmpty() || c.Racks[Computer].IsEmpty()) {
		return true
	}
	return c.consecutiveScoreless >= maxConsecutiveScoreless
}

// ApplyHuman validates and applies a parsed human command. On a
// successful word placement or exchange, it returns the score gained
// (0 for pass and exchange) and advances the turn. On an illegal
// command, it returns an error and the game state is unchanged so the
// caller can re-prompt.
func (c *Controller) ApplyHuman(cmd Command) (int, error) {
	return c.apply(Human, cmd)
}

func (c *Controller) apply(player int, cmd Command) (int, error) {
	rack := c.Racks[player]
	switch cmd.Kind {
	case CommandPass:
		c.recordTranscript(player, "PASS", 0)
		c.consecutiveScoreless++
		c.turnIndex++
		return 0, nil

	case CommandExchange:
		if !c.Bag.ExchangeAllowed() {
			return 0, fmt.Errorf("exchange not allowed: fewer than %d tiles left in bag", engine.RackSize)
		}
		tiles, err := c.takeExchangeTiles(rack, cmd.Letters)
		if err != nil {
			return 0, err
		}
		for _, t := range tiles {
			c.Bag.Return(t)
		}
		c.Bag.Shuffle()
		c.Bag.Draw(rack, len(tiles))
		c.recordTranscript(player, "EXCHANGE "+cmd.Letters, 0)
		c.consecutiveScoreless++
		c.turnIndex++
		return 0, nil

	case CommandWord:
		score := c.Board.Place(cmd.Word, cmd.Row, cmd.Col, cmd.Axis, rack, false)
		if score == engine.IllegalScore {
			return 0, fmt.Errorf("illegal placement: %q at (%d,%d)", cmd.Word, cmd.Row, cmd.Col)
		}
		c.Scores[player] += score
		c.Bag.Draw(rack, engine.RackSize-rack.Size())
		c.recordTranscript(player, cmd.Word, score)
		if score > 0 {
			c.consecutiveScoreless = 0
		} else {
			c.consecutiveScoreless++
		}
		c.turnIndex++
		return score, nil

	default:
		return 0, fmt.Errorf("unrecognized command")
	}
}

// takeExchangeTiles removes the tiles named by letters (uppercase
// letters, '?' for a blank) from rack, restoring anything already
// removed if a later letter turns out not to be available.
func (c *Controller) takeExchangeTiles(rack *engine.Rack, letters string) ([]*engine.Tile, error) {
	if letters == "" || len(letters) > engine.RackSize {
		return nil, fmt.Errorf("exchange must name 1-%d tiles", engine.RackSize)
	}
	var taken []*engine.Tile
	for _, r := range strings.ToUpper(letters) {
		l := engine.Letter(r)
		if r == '?' {
			l = engine.Blank
		}
		tile := rack.Remove(l)
		if tile == nil {
			for _, t := range taken {
				rack.Restore(t)
			}
			return nil, fmt.Errorf("rack does not contain tile %q", string(r))
		}
		taken = append(taken, tile)
	}
	return taken, nil
}

// PlayComputer runs the move generator for the computer player,
// samples a difficulty-sized fraction of the candidates uniformly
// without replacement, scores each in sandbox mode, and commits the
// highest-scoring one it found. If no candidate scores positively and
// an exchange is allowed, it exchanges its whole rack instead of
// passing (best tile move, else exchange, else pass).
func (c *Controller) PlayComputer() (engine.Candidate, int, error) {
	rack := c.Racks[Computer]
	candidates := c.moveGen.Generate(rack)
	c.log.Debug().Int("candidates", len(candidates)).Msg("computer move generation")

	k := c.Difficulty.SampleSize(len(candidates))
	sampleIdx := Sample(c.rng, len(candidates), k)

	best := -1
	bestScore := engine.IllegalScore
	var bestCandidate engine.Candidate
	for _, idx := range sampleIdx {
		cand := candidates[idx]
		score := c.Board.Place(cand.Word, cand.Row, cand.Col, cand.Axis, rack, true)
		if score > bestScore {
			bestScore = score
			best = idx
			bestCandidate = cand
		}
	}
	c.log.Debug().Int("sampled", k).Int("bestScore", bestScore).Msg("computer move sampling")

	if best < 0 || bestScore <= 0 {
		if c.Bag.ExchangeAllowed() && !rack.IsEmpty() {
			letters := rack.AsLetters()
			var sb strings.Builder
			for _, l := range letters {
				if l == engine.Blank {
					sb.WriteByte('?')
				} else {
					sb.WriteRune(rune(l))
				}
			}
			_, err := c.apply(Computer, Command{Kind: CommandExchange, Letters: sb.String()})
			return engine.Candidate{}, 0, err
		}
		_, err := c.apply(Computer, Command{Kind: CommandPass})
		return engine.Candidate{}, 0, err
	}

	score := c.Board.Place(bestCandidate.Word, bestCandidate.Row, bestCandidate.Col, bestCandidate.Axis, rack, false)
	c.Scores[Computer] += score
	c.Bag.Draw(rack, engine.RackSize-rack.Size())
	c.recordTranscript(Computer, bestCandidate.Word, score)
	if score > 0 {
		c.consecutiveScoreless = 0
	} else {
		c.consecutiveScoreless++
	}
	c.turnIndex++
	return bestCandidate, score, nil
}

// recordTranscript appends a human-readable entry to the in-memory
// move transcript. The transcript is never persisted.
func (c *Controller) recordTranscript(player int, description string, score int) {
	c.transcript = append(c.transcript,
		fmt.Sprintf("%2d: (%s) %s %d", len(c.transcript)+1, c.Names[player], description, score))
}

// Transcript returns the full move-by-move history of the game so
// far, one line per move.
func (c *Controller) Transcript() []string {
	return c.transcript
}

// Finish applies the end-of-game rack adjustment: each player's
// unplayed rack value is subtracted from their own score and added to
// the opponent's, then returns the final scores and a human-readable
// result line.
func (c *Controller) Finish() (scores [2]int, result string) {
	humanRackValue := rackValue(c.Racks[Human])
	computerRackValue := rackValue(c.Racks[Computer])
	c.Scores[Human] += computerRackValue - humanRackValue
	c.Scores[Computer] += humanRackValue - computerRackValue

	switch {
	case c.Scores[Human] > c.Scores[Computer]:
		result = fmt.Sprintf("%s wins, %d to %d", c.Names[Human], c.Scores[Human], c.Scores[Computer])
	case c.Scores[Computer] > c.Scores[Human]:
		result = fmt.Sprintf("%s wins, %d to %d", c.Names[Computer], c.Scores[Computer], c.Scores[Human])
	default:
		result = fmt.Sprintf("Tie game, %d to %d", c.Scores[Human], c.Scores[Computer])
	}
	return c.Scores, result
}

// rackValue sums the non-blank point values of a rack's tiles, used
// for the end-of-game leftover penalty; a blank-derived tile always
// contributes 0 regardless of what it impersonates.
func rackValue(rack *engine.Rack) int {
	total := 0
	for _, letter := range rack.AsLetters() {
		if letter == engine.Blank {
			continue
		}
		total += engine.Points[letter]
	}
	return total
}
