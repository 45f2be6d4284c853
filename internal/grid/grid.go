// internal/grid/grid.go
//
// Derives the board from (history, current guess).
// The board is never stored: every render recomputes it, so it cannot drift
// from the GuessState it mirrors.

package grid

import (
	"strings"

	"github.com/robalobadob/wurdle/internal/game"
)

// Blank marks an empty cell.
const Blank rune = 0

// Cell is one rendered board position.
type Cell struct {
	Char   rune // Blank when empty
	Filled bool // Char != Blank
}

// Grid is a fully derived Rows x Cols board.
type Grid [game.Rows][game.Cols]Cell

// Pos addresses a cell.
type Pos struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// CellChar returns the character shown at (row, col).
// Rows before len(history) show committed guesses, row len(history) shows the
// in-progress guess, and every later row is blank. Out-of-range positions are
// blank.
func CellChar(row, col int, history []string, current string) rune {
	switch {
	case row < 0 || col < 0:
		return Blank
	case row < len(history):
		return runeAt(history[row], col)
	case row == len(history):
		return runeAt(current, col)
	default:
		return Blank
	}
}

// Derive computes every cell of the board.
func Derive(history []string, current string) Grid {
	var g Grid
	for r := 0; r < game.Rows; r++ {
		for c := 0; c < game.Cols; c++ {
			ch := CellChar(r, c, history, current)
			g[r][c] = Cell{Char: ch, Filled: ch != Blank}
		}
	}
	return g
}

// FromSnapshot derives the board for a game snapshot.
func FromSnapshot(s game.Snapshot) Grid {
	return Derive(s.History, s.Current)
}

// Transitions lists cells whose blank-ness differs between two consecutive
// renders, row-major. These drive the fill animation.
func Transitions(prev, next Grid) []Pos {
	var out []Pos
	for r := 0; r < game.Rows; r++ {
		for c := 0; c < game.Cols; c++ {
			if prev[r][c].Filled != next[r][c].Filled {
				out = append(out, Pos{Row: r, Col: c})
			}
		}
	}
	return out
}

// String renders the board as text, one row per line, '_' for blanks.
func (g Grid) String() string {
	var b strings.Builder
	for r := 0; r < game.Rows; r++ {
		if r > 0 {
			b.WriteByte('\n')
		}
		for c := 0; c < game.Cols; c++ {
			if ch := g[r][c].Char; ch != Blank {
				b.WriteRune(ch)
			} else {
				b.WriteByte('_')
			}
		}
	}
	return b.String()
}

// runeAt returns the col-th rune of s, or Blank past the end.
func runeAt(s string, col int) rune {
	i := 0
	for _, r := range s {
		if i == col {
			return r
		}
		i++
	}
	return Blank
}
