// prompt.go
// Copyright (C) 2018 Vilhjálmur Þorsteinsson
// This file implements the interactive move prompt and the move
// grammar parser. Reading is done through a readline instance with
// line editing and history; parsing the grammar into a game.Command
// is pure and separately testable.

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
	"path/filepath"
	"strconv"
	"strings"

	"github.com/chzyer/readline"

	"github.com/ajschoenb2/scrabble/internal/engine"
	"github.com/ajschoenb2/scrabble/internal/game"
)

// Prompt wraps a readline instance configured for the move grammar.
type Prompt struct {
	rl *readline.Instance
}

// NewPrompt returns a Prompt reading from the controlling terminal,
// with history kept in the OS temp directory across sessions.
func NewPrompt() (*Prompt, error) {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          "move> ",
		HistoryFile:     filepath.Join(os.TempDir(), "scrabble_history"),
		InterruptPrompt: "^C",
		EOFPrompt:       "quit",
	})
	if err != nil {
		return nil, err
	}
	return &Prompt{rl: rl}, nil
}

// ReadLine reads one raw input line. It returns an error (io.EOF or
// readline.ErrInterrupt) when the user ends the session with ^D or
// ^C; the caller treats that as quitting the game.
func (p *Prompt) ReadLine() (string, error) {
	return p.rl.Readline()
}

// Close releases the underlying terminal handle.
func (p *Prompt) Close() error {
	return p.rl.Close()
}

// ParseCommand parses one line of the move grammar:
//
//	WORD X Y DIR    place WORD at column X, row Y, DIR in {A, D}
//	PASS            skip the turn
//	EXCHANGE LTRS   trade the named rack tiles ('?' for a blank)
//
// Coordinates are 0-based. The input is case-insensitive. A parse
// failure returns an error for the caller to re-prompt on; no game
// state is consulted here, so a parsed Command may still be rejected
// as an illegal move by the controller.
func ParseCommand(line string) (game.Command, error) {
	fields := strings.Fields(strings.ToUpper(strings.TrimSpace(line)))
	switch {
	case len(fields) == 0:
		return game.Command{}, fmt.Errorf("empty input")

	case fields[0] == "PASS":
		if len(fields) != 1 {
			return game.Command{}, fmt.Errorf("PASS takes no arguments")
		}
		return game.Command{Kind: game.CommandPass}, nil

	case fields[0] == "EXCHANGE":
		if len(fields) != 2 {
			return game.Command{}, fmt.Errorf("usage: EXCHANGE <letters>")
		}
		letters := fields[1]
		if len(letters) < 1 || len(letters) > engine.RackSize {
			return game.Command{}, fmt.Errorf("exchange 1-%d tiles", engine.RackSize)
		}
		for _, r := range letters {
			if !engine.IsUpperLetter(r) && r != '?' {
				return game.Command{}, fmt.Errorf("bad tile %q in exchange", string(r))
			}
		}
		return game.Command{Kind: game.CommandExchange, Letters: letters}, nil

	case len(fields) == 4:
		word := fields[0]
		for _, r := range word {
			if !engine.IsUpperLetter(r) {
				return game.Command{}, fmt.Errorf("bad letter %q in word", string(r))
			}
		}
		col, err := strconv.Atoi(fields[1])
		if err != nil {
			return game.Command{}, fmt.Errorf("bad column %q", fields[1])
		}
		row, err := strconv.Atoi(fields[2])
		if err != nil {
			return game.Command{}, fmt.Errorf("bad row %q", fields[2])
		}
		if col < 0 || col >= engine.BoardSize || row < 0 || row >= engine.BoardSize {
			return game.Command{}, fmt.Errorf("coordinates must be 0-%d", engine.BoardSize-1)
		}
		var axis engine.Axis
		switch fields[3] {
		case "A":
			axis = engine.Horizontal
		case "D":
			axis = engine.Vertical
		default:
			return game.Command{}, fmt.Errorf("direction must be A or D")
		}
		return game.Command{Kind: game.CommandWord, Word: word, Row: row, Col: col, Axis: axis}, nil

	default:
		return game.Command{}, fmt.Errorf("expected WORD X Y DIR, PASS or EXCHANGE <letters>")
	}
}
