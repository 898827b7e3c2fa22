// main.go
// Copyright (C) 2018 Vilhjálmur Þorsteinsson
// Interactive Scrabble against a computer opponent. Wires the
// dictionary loader, game controller, terminal renderer and move
// prompt together and drives the turn loop.

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

package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/rs/zerolog"

	"github.com/ajschoenb2/scrabble/internal/config"
	"github.com/ajschoenb2/scrabble/internal/dictionary"
	"github.com/ajschoenb2/scrabble/internal/game"
	"github.com/ajschoenb2/scrabble/internal/ui"
)

func main() {
	os.Exit(run())
}

func run() int {
	cfg := config.Load()
	dictPath := flag.String("dict", cfg.DictPath, "Path of the word list file")
	diffName := flag.String("difficulty", cfg.Difficulty, "Computer difficulty (easy, hard, impossible)")
	name := flag.String("name", "Player", "Human player's display name")
	noColor := flag.Bool("no-color", cfg.NoColor, "Disable ANSI colors")
	verbose := flag.Bool("v", cfg.Verbose, "Enable debug logging")
	flag.Parse()

	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		With().Timestamp().Logger().Level(zerolog.InfoLevel)
	if *verbose {
		logger = logger.Level(zerolog.DebugLevel)
	}

	difficulty, err := game.ParseDifficulty(*diffName)
	if err != nil {
		logger.Warn().Err(err).Msg("falling back to HARD")
	}

	trie, err := dictionary.Load(*dictPath, logger)
	if err != nil {
		logger.Error().Err(err).Msg("cannot load dictionary")
		return 1
	}

	prompt, err := ui.NewPrompt()
	if err != nil {
		logger.Error().Err(err).Msg("cannot open terminal prompt")
		return 1
	}
	defer prompt.Close()
	renderer := ui.NewRenderer(*noColor)

	ctrl := game.New(trie, difficulty, *name, logger)

	for !ctrl.IsOver() {
		if ctrl.PlayerToMove() == game.Human {
			fmt.Println(renderer.Game(ctrl))
			if !humanTurn(ctrl, prompt) {
				// The user quit with ^C or ^D; settle the game as it
				// stands.
				break
			}
		} else {
			cand, score, err := ctrl.PlayComputer()
			if err != nil {
				logger.Error().Err(err).Msg("computer move failed")
				return 1
			}
			if cand.Word == "" {
				fmt.Println("Computer plays no word this turn.")
			} else {
				fmt.Printf("Computer plays %s at (%d,%d) for %d points.\n",
					cand.Word, cand.Col, cand.Row, score)
			}
		}
	}

	_, result := ctrl.Finish()
	fmt.Println()
	for _, line := range ctrl.Transcript() {
		fmt.Println(line)
	}
	fmt.Println(result)
	return 0
}

// humanTurn prompts until a well-formed, legal move has been applied.
// It returns false if the user ended the session instead of moving.
func humanTurn(ctrl *game.Controller, prompt *ui.Prompt) bool {
	for {
		line, err := prompt.ReadLine()
		if err != nil {
			return false
		}
		cmd, err := ui.ParseCommand(line)
		if err != nil {
			fmt.Printf("? %v\n", err)
			continue
		}
		score, err := ctrl.ApplyHuman(cmd)
		if err != nil {
			fmt.Printf("? %v\n", err)
			continue
		}
		if cmd.Kind == game.CommandWord {
			fmt.Printf("You score %d points.\n", score)
		}
		return true
	}
}
