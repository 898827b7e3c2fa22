// movegen_test.go
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

package engine

import (
	"testing"
)

// assertAllLegal sandbox-scores every candidate and fails on any that
// the board rejects: the generator must only emit placements that
// survive the full legality predicate.
func assertAllLegal(t *testing.T, board *Board, rack *Rack, candidates []Candidate) {
	t.Helper()
	for _, cand := range candidates {
		score := board.Place(cand.Word, cand.Row, cand.Col, cand.Axis, rack.Clone(), true)
		if score == IllegalScore {
			t.Errorf("Generator emitted illegal candidate %v at (%v,%v) axis %v",
				cand.Word, cand.Row, cand.Col, cand.Axis)
		}
	}
}

func TestGenerateFirstMove(t *testing.T) {
	trie := newTestTrie("CAT", "AT", "TA", "ACT")
	board := NewBoard(trie)
	rack := rackWith('C', 'A', 'T')
	gen := NewMoveGenerator(board)

	candidates := gen.Generate(rack)
	if len(candidates) == 0 {
		t.Fatalf("Expected candidates on the opening rack")
	}
	assertAllLegal(t, board, rack, candidates)

	words := make(map[string]bool)
	for _, cand := range candidates {
		words[cand.Word] = true
	}
	for _, w := range []string{"CAT", "AT", "TA", "ACT"} {
		if !words[w] {
			t.Errorf("Expected %v among the opening candidates", w)
		}
	}
	// The generator itself leaves the rack alone
	if rack.Size() != 3 {
		t.Errorf("Generate must restore the rack, size is %v", rack.Size())
	}
}

func TestGenerateDeduplicates(t *testing.T) {
	trie := newTestTrie("CAT")
	board := NewBoard(trie)
	gen := NewMoveGenerator(board)

	candidates := gen.Generate(rackWith('C', 'A', 'T'))
	seen := make(map[Candidate]int)
	for _, cand := range candidates {
		seen[cand]++
		if seen[cand] > 1 {
			t.Errorf("Candidate %v emitted more than once", cand)
		}
	}
}

func TestGenerateExtendsOnBoardWord(t *testing.T) {
	trie := newTestTrie("CAT", "CATS", "AS")
	board := NewBoard(trie)
	if score := board.Place("CAT", Center, Center, Horizontal, rackWith('C', 'A', 'T'), false); score < 0 {
		t.Fatalf("CAT through the center should be legal")
	}
	rack := rackWith('S')
	gen := NewMoveGenerator(board)
	candidates := gen.Generate(rack)
	assertAllLegal(t, board, rack, candidates)

	expectCandidate(t, candidates, Candidate{Word: "CATS", Row: 7, Col: 7, Axis: Horizontal})
	expectCandidate(t, candidates, Candidate{Word: "AS", Row: 7, Col: 8, Axis: Vertical})
}

func TestGenerateUsesBlank(t *testing.T) {
	trie := newTestTrie("AT")
	board := NewBoard(trie)
	rack := rackWith(Blank, 'T')
	gen := NewMoveGenerator(board)

	candidates := gen.Generate(rack)
	assertAllLegal(t, board, rack, candidates)
	expectWord(t, candidates, "AT")
	if rack.Size() != 2 || !rack.Has(Blank) {
		t.Errorf("Generate must restore the blank to the rack")
	}
}

func TestGenerateHonorsCrossMasks(t *testing.T) {
	// With QI on the board and a dictionary in which nothing extends
	// "I", no candidate may place a tile directly below the I.
	trie := newTestTrie("QI", "QIS")
	board := NewBoard(trie)
	if score := board.Place("QI", Center, Center, Horizontal, rackWith('Q', 'I'), false); score < 0 {
		t.Fatalf("QI through the center should be legal")
	}
	rack := rackWith('Q', 'I', 'S')
	gen := NewMoveGenerator(board)
	candidates := gen.Generate(rack)
	assertAllLegal(t, board, rack, candidates)
	expectCandidate(t, candidates, Candidate{Word: "QIS", Row: 7, Col: 7, Axis: Horizontal})
}

func TestGenerateEmptyWhenNothingFits(t *testing.T) {
	trie := newTestTrie("CAT")
	board := NewBoard(trie)
	gen := NewMoveGenerator(board)
	// No vowels, no blank: the generator silently emits nothing
	candidates := gen.Generate(rackWith('X', 'Q', 'Z'))
	if len(candidates) != 0 {
		t.Errorf("Expected no candidates, got %v", candidates)
	}
}

func expectCandidate(t *testing.T, candidates []Candidate, want Candidate) {
	t.Helper()
	for _, cand := range candidates {
		if cand == want {
			return
		}
	}
	t.Errorf("Expected candidate %v, not found in %v", want, candidates)
}

func expectWord(t *testing.T, candidates []Candidate, word string) {
	t.Helper()
	for _, cand := range candidates {
		if cand.Word == word {
			return
		}
	}
	t.Errorf("Expected a candidate for word %v, not found", word)
}
