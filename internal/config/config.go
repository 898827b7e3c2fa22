// config.go
// Copyright (C) 2018 Vilhjálmur Þorsteinsson
// This file implements .env-backed startup configuration. An optional
// .env file in the working directory is loaded via godotenv before
// the environment is consulted; an absent .env is not an error.
// Command-line flags, handled in cmd/scrabble, override whatever is
// found here.

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

package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds the startup settings that may be supplied through the
// environment (or a .env file) rather than flags.
type Config struct {
	// DictPath is the path of the word list file.
	DictPath string
	// Difficulty is the computer opponent's difficulty name
	// (EASY, HARD or IMPOSSIBLE).
	Difficulty string
	// NoColor disables ANSI color output.
	NoColor bool
	// Verbose enables debug-level logging.
	Verbose bool
}

// Load returns the configuration assembled from defaults, a .env file
// if one exists, and the process environment, in increasing order of
// precedence.
func Load() Config {
	// A missing .env file is the normal case, not an error.
	_ = godotenv.Load()
	cfg := Config{
		DictPath:   "dict.txt",
		Difficulty: "HARD",
	}
	if v := os.Getenv("SCRABBLE_DICT_PATH"); v != "" {
		cfg.DictPath = v
	}
	if v := os.Getenv("SCRABBLE_DIFFICULTY"); v != "" {
		cfg.Difficulty = v
	}
	if v := os.Getenv("SCRABBLE_NO_COLOR"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.NoColor = b
		} else {
			cfg.NoColor = true
		}
	}
	if v := os.Getenv("SCRABBLE_VERBOSE"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.Verbose = b
		}
	}
	return cfg
}
