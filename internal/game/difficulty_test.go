// difficulty_test.go
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
	"math/rand"
	"testing"
)

func TestSampleSize(t *testing.T) {
	cases := []struct {
		difficulty Difficulty
		n, k       int
	}{
		{Easy, 10, 3},
		{Easy, 1, 1},
		{Easy, 0, 0},
		{Hard, 10, 5},
		{Hard, 7, 4},
		{Impossible, 10, 10},
		{Impossible, 1, 1},
	}
	for _, c := range cases {
		if got := c.difficulty.SampleSize(c.n); got != c.k {
			t.Errorf("%v.SampleSize(%v): expected %v, got %v", c.difficulty, c.n, c.k, got)
		}
	}
}

func TestSampleWithoutReplacement(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	idx := Sample(rng, 20, 8)
	if len(idx) != 8 {
		t.Fatalf("Expected 8 indices, got %v", len(idx))
	}
	seen := make(map[int]bool)
	for _, i := range idx {
		if i < 0 || i >= 20 {
			t.Errorf("Index %v out of range", i)
		}
		if seen[i] {
			t.Errorf("Index %v drawn twice", i)
		}
		seen[i] = true
	}
	// k >= n returns every index
	all := Sample(rng, 5, 10)
	if len(all) != 5 {
		t.Errorf("Expected all 5 indices, got %v", len(all))
	}
}

func TestParseDifficulty(t *testing.T) {
	for name, want := range map[string]Difficulty{
		"easy": Easy, "EASY": Easy,
		"hard": Hard, "HARD": Hard,
		"impossible": Impossible, "IMPOSSIBLE": Impossible,
	} {
		got, err := ParseDifficulty(name)
		if err != nil || got != want {
			t.Errorf("ParseDifficulty(%q): expected %v, got %v (err %v)", name, want, got, err)
		}
	}
	if _, err := ParseDifficulty("nightmare"); err == nil {
		t.Errorf("Expected an error for an unknown difficulty name")
	}
}
