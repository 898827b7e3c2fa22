// prompt_test.go
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

package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ajschoenb2/scrabble/internal/engine"
	"github.com/ajschoenb2/scrabble/internal/game"
)

func TestParseCommandWord(t *testing.T) {
	cmd, err := ParseCommand("CAT 7 7 A")
	require.NoError(t, err)
	assert.Equal(t, game.CommandWord, cmd.Kind)
	assert.Equal(t, "CAT", cmd.Word)
	assert.Equal(t, 7, cmd.Col)
	assert.Equal(t, 7, cmd.Row)
	assert.Equal(t, engine.Horizontal, cmd.Axis)

	// Lowercase input, down direction, X is the column
	cmd, err = ParseCommand("  zebra 3 12 d ")
	require.NoError(t, err)
	assert.Equal(t, "ZEBRA", cmd.Word)
	assert.Equal(t, 3, cmd.Col)
	assert.Equal(t, 12, cmd.Row)
	assert.Equal(t, engine.Vertical, cmd.Axis)
}

func TestParseCommandPass(t *testing.T) {
	cmd, err := ParseCommand("pass")
	require.NoError(t, err)
	assert.Equal(t, game.CommandPass, cmd.Kind)

	_, err = ParseCommand("PASS now")
	assert.Error(t, err)
}

func TestParseCommandExchange(t *testing.T) {
	cmd, err := ParseCommand("exchange ab?")
	require.NoError(t, err)
	assert.Equal(t, game.CommandExchange, cmd.Kind)
	assert.Equal(t, "AB?", cmd.Letters)

	for _, line := range []string{
		"EXCHANGE",
		"EXCHANGE ABCDEFGH",
		"EXCHANGE A1",
		"EXCHANGE A B",
	} {
		_, err := ParseCommand(line)
		assert.Error(t, err, "line %q should not parse", line)
	}
}

func TestParseCommandRejectsMalformedInput(t *testing.T) {
	for _, line := range []string{
		"",
		"   ",
		"CAT",
		"CAT 7 7",
		"CAT 7 7 A extra",
		"CAT x 7 A",
		"CAT 7 y A",
		"CAT 15 7 A",
		"CAT 7 -1 A",
		"CAT 7 7 Q",
		"C4T 7 7 A",
	} {
		_, err := ParseCommand(line)
		assert.Error(t, err, "line %q should not parse", line)
	}
}
