// bag.go
// Copyright (C) 2018 Vilhjálmur Þorsteinsson
// This file implements TileBag: the canonical 100-tile English
// distribution, shuffled once at construction and drawn from the
// front, a FIFO over a pre-shuffled sequence.

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
	"math/rand"
	"time"
)

// englishCounts is the canonical English Scrabble tile distribution,
// 100 tiles including 2 blanks.
var englishCounts = map[Letter]int{
	'A': 9, 'B': 2, 'C': 2, 'D': 4, 'E': 12,
	'F': 2, 'G': 3, 'H': 2, 'I': 9, 'J': 1,
	'K': 1, 'L': 4, 'M': 2, 'N': 6, 'O': 8,
	'P': 2, 'Q': 1, 'R': 6, 'S': 4, 'T': 6,
	'U': 4, 'V': 2, 'W': 2, 'X': 1, 'Y': 2,
	'Z': 1, Blank: 2,
}

// TotalTileCount is the number of tiles in a freshly initialized bag.
const TotalTileCount = 100

// TileBag is an ordered, pre-shuffled sequence of tiles. Draws remove
// tiles from the front, as if dealing from the top of a shuffled deck.
type TileBag struct {
	tiles []*Tile
	rng   *rand.Rand
}

// NewTileBag returns a TileBag initialized to the canonical English
// distribution and shuffled uniformly at random using a seed derived
// from the system clock.
func NewTileBag() *TileBag {
	return NewSeededTileBag(time.Now().UnixNano())
}

// NewSeededTileBag returns a TileBag shuffled with the given seed.
// Tests that require determinism construct the bag this way instead
// of relying on NewTileBag's clock-derived seed.
func NewSeededTileBag(seed int64) *TileBag {
	tiles := make([]*Tile, 0, TotalTileCount)
	// Lay the tiles out in a fixed order (A..Z, then blanks) before
	// shuffling, so that the same seed always yields the same bag.
	letters := make([]Letter, 0, NumLetters+1)
	for l := Letter('A'); l <= 'Z'; l++ {
		letters = append(letters, l)
	}
	letters = append(letters, Blank)
	for _, letter := range letters {
		count := englishCounts[letter]
		points := Points[letter]
		for i := 0; i < count; i++ {
			tiles = append(tiles, &Tile{Letter: letter, Points: points})
		}
	}
	bag := &TileBag{tiles: tiles, rng: rand.New(rand.NewSource(seed))}
	bag.rng.Shuffle(len(bag.tiles), func(i, j int) {
		bag.tiles[i], bag.tiles[j] = bag.tiles[j], bag.tiles[i]
	})
	return bag
}

// Size returns the number of tiles remaining in the bag.
func (b *TileBag) Size() int {
	return len(b.tiles)
}

// IsEmpty reports whether the bag has no tiles left.
func (b *TileBag) IsEmpty() bool {
	return len(b.tiles) == 0
}

// Draw removes up to min(n, Size()) tiles from the front of the bag
// and adds them to rack. It returns the number of tiles actually
// drawn, which may be less than n (or zero) if the bag or the rack's
// remaining room is exhausted first.
func (b *TileBag) Draw(rack *Rack, n int) int {
	drawn := 0
	for drawn < n && len(b.tiles) > 0 && !rack.IsFull() {
		tile := b.tiles[0]
		b.tiles = b.tiles[1:]
		rack.Add(tile)
		drawn++
	}
	return drawn
}

// Return puts a previously drawn tile back into the bag, used by the
// EXCHANGE move: exchanged tiles go back and the bag is reshuffled
// before the replacements are drawn, so an exchanged tile may be
// drawn again as one of its own replacements.
func (b *TileBag) Return(tile *Tile) {
	tile.Meaning = 0
	b.tiles = append(b.tiles, tile)
}

// Shuffle re-randomizes the remaining tiles in the bag. Called after
// an exchange move returns tiles to the bag.
func (b *TileBag) Shuffle() {
	b.rng.Shuffle(len(b.tiles), func(i, j int) {
		b.tiles[i], b.tiles[j] = b.tiles[j], b.tiles[i]
	})
}

// ExchangeAllowed reports whether there are at least RackSize tiles
// left in the bag, the standard tournament condition for permitting a
// tile exchange instead of requiring a pass.
func (b *TileBag) ExchangeAllowed() bool {
	return b.Size() >= RackSize
}
