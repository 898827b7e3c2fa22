// difficulty.go
// Copyright (C) 2018 Vilhjálmur Þorsteinsson
// This file implements the difficulty policy used by the computer
// player's move selection: a sampling fraction over the generated
// candidates, parameterized by difficulty level.

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
	"math"
	"math/rand"
	"strings"
)

// Difficulty selects how large a fraction of the generated candidate
// moves the computer player actually scores before committing the
// best one it sampled. A small fraction makes the computer play
// weaker, more human-like moves by sometimes missing its best option
// entirely; IMPOSSIBLE always scores every candidate.
type Difficulty int

const (
	// Easy samples a quarter of the candidates.
	Easy Difficulty = iota
	// Hard samples half of the candidates.
	Hard
	// Impossible scores every candidate and always plays the best
	// move the generator found; it does not perform leave evaluation,
	// endgame lookahead, or opponent modeling.
	Impossible
)

// fraction returns the sampling fraction for a difficulty level.
func (d Difficulty) fraction() float64 {
	switch d {
	case Easy:
		return 0.25
	case Hard:
		return 0.5
	case Impossible:
		return 1.0
	default:
		return 1.0
	}
}

// String renders the difficulty's display name, used in the turn
// banner.
func (d Difficulty) String() string {
	switch d {
	case Easy:
		return "EASY"
	case Hard:
		return "HARD"
	case Impossible:
		return "IMPOSSIBLE"
	default:
		return "UNKNOWN"
	}
}

// ParseDifficulty converts a case-insensitive name (as read from a
// flag or from SCRABBLE_DIFFICULTY) into a Difficulty. It defaults to
// Hard on an unrecognized value.
func ParseDifficulty(name string) (Difficulty, error) {
	switch strings.ToUpper(name) {
	case "EASY":
		return Easy, nil
	case "HARD":
		return Hard, nil
	case "IMPOSSIBLE":
		return Impossible, nil
	default:
		return Hard, fmt.Errorf("unrecognized difficulty %q", name)
	}
}

// SampleSize returns k = ceil(n * f), the number of candidates to
// draw from a pool of n without replacement at this difficulty.
func (d Difficulty) SampleSize(n int) int {
	if n <= 0 {
		return 0
	}
	k := int(math.Ceil(float64(n) * d.fraction()))
	if k > n {
		k = n
	}
	return k
}

// Sample draws k indices in [0, n) uniformly without replacement
// using rng, by shuffling all n indices and keeping the first k.
func Sample(rng *rand.Rand, n, k int) []int {
	if k >= n {
		idx := make([]int, n)
		for i := range idx {
			idx[i] = i
		}
		return idx
	}
	pool := make([]int, n)
	for i := range pool {
		pool[i] = i
	}
	rng.Shuffle(n, func(i, j int) { pool[i], pool[j] = pool[j], pool[i] })
	return pool[:k]
}
