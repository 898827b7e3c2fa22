// load.go
// Copyright (C) 2018 Vilhjálmur Þorsteinsson
// This file loads the word list from a plain text file, one word per
// line, into the engine's Trie. Lines that are blank or contain
// non-letter characters are skipped defensively; the skip count is
// logged so a corrupt dictionary file is visible at startup.

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

package dictionary

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"

	"github.com/ajschoenb2/scrabble/internal/engine"
)

// Load reads the word list at path into a freshly built Trie. A
// failure to open or read the file is fatal to the caller (the game
// cannot run without a dictionary) and is reported as an error;
// malformed lines within the file are merely skipped.
func Load(path string, logger zerolog.Logger) (*engine.Trie, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening dictionary %s: %w", path, err)
	}
	defer f.Close()
	trie, skipped, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("reading dictionary %s: %w", path, err)
	}
	logger.Info().
		Str("path", path).
		Int("words", trie.Size()).
		Int("skipped", skipped).
		Msg("dictionary loaded")
	return trie, nil
}

// Read builds a Trie from an already opened word list stream. It
// returns the number of lines skipped as malformed, so that Load can
// report them.
func Read(r io.Reader) (*engine.Trie, int, error) {
	trie := engine.NewTrie()
	skipped := 0
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		word := strings.TrimSpace(scanner.Text())
		if word == "" {
			continue
		}
		if !wellFormed(word) {
			skipped++
			continue
		}
		trie.Insert(word)
	}
	if err := scanner.Err(); err != nil {
		return nil, skipped, err
	}
	return trie, skipped, nil
}

// wellFormed reports whether a line consists purely of English
// letters, in either case.
func wellFormed(word string) bool {
	for _, r := range word {
		if (r < 'A' || r > 'Z') && (r < 'a' || r > 'z') {
			return false
		}
	}
	return true
}
