// letter.go
// Copyright (C) 2018 Vilhjálmur Þorsteinsson
// This file implements the Letter type and the standard English
// point table, along with bitmask helpers used throughout cross-check
// computation.

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

// Letter is one of the 26 uppercase English letters, or Blank.
type Letter rune

// Blank represents a blank tile, which carries no intrinsic letter
// identity and may impersonate any letter when placed.
const Blank Letter = '?'

// NumLetters is the size of the English alphabet used by this engine.
const NumLetters = 26

// Points maps each letter to its nominal Scrabble point value.
// Blank is not present; a blank always scores zero.
var Points = map[Letter]int{
	'A': 1, 'B': 3, 'C': 3, 'D': 2, 'E': 1,
	'F': 4, 'G': 2, 'H': 4, 'I': 1, 'J': 8,
	'K': 5, 'L': 1, 'M': 3, 'N': 1, 'O': 1,
	'P': 3, 'Q': 10, 'R': 1, 'S': 1, 'T': 1,
	'U': 1, 'V': 4, 'W': 4, 'X': 8, 'Y': 4,
	'Z': 10,
}

// bitIndex returns the 0..25 bit position of a letter, or -1 if the
// letter is not one of A..Z (e.g. it is Blank).
func bitIndex(l Letter) int {
	if l < 'A' || l > 'Z' {
		return -1
	}
	return int(l - 'A')
}

// CrossMask is a 26-bit set over A..Z, one bit per letter.
type CrossMask uint32

// FullMask has every letter bit set; it is the default, unconstrained
// cross mask for a cell with no perpendicular contact.
const FullMask CrossMask = (1 << NumLetters) - 1

// letterBit returns the CrossMask bit corresponding to a single letter.
func letterBit(l Letter) CrossMask {
	idx := bitIndex(l)
	if idx < 0 {
		return 0
	}
	return 1 << uint(idx)
}

// Allows reports whether the mask permits the given letter.
func (m CrossMask) Allows(l Letter) bool {
	return m&letterBit(l) != 0
}

// IsUpperLetter reports whether r is one of the 26 uppercase letters.
func IsUpperLetter(r rune) bool {
	return r >= 'A' && r <= 'Z'
}
