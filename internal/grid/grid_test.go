package grid

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/robalobadob/wurdle/internal/game"
)

func TestCellChar(t *testing.T) {
	history := []string{"HELLO", "WORLD"}
	current := "ABC"

	tests := []struct {
		row, col int
		want     rune
	}{
		{0, 0, 'H'},
		{1, 4, 'D'},
		{2, 0, 'A'},
		{2, 2, 'C'},
		{2, 4, Blank},
		{3, 0, Blank},
		{5, 4, Blank},
	}
	for _, tt := range tests {
		require.Equal(t, tt.want, CellChar(tt.row, tt.col, history, current), "cell (%d,%d)", tt.row, tt.col)
	}
}

func TestCellChar_ShortHistoryEntryIsBlank(t *testing.T) {
	require.Equal(t, Blank, CellChar(0, 4, []string{"AB"}, ""))
	require.Equal(t, 'B', CellChar(0, 1, []string{"AB"}, ""))
}

func TestCellChar_NegativePositionIsBlank(t *testing.T) {
	history := []string{"HELLO"}
	require.Equal(t, Blank, CellChar(-1, 0, history, "AB"))
	require.Equal(t, Blank, CellChar(0, -1, history, "AB"))
	require.Equal(t, Blank, CellChar(-1, -1, nil, ""))
}

func TestCellChar_MultibyteRunes(t *testing.T) {
	require.Equal(t, 'Ö', CellChar(0, 1, nil, "aÖb"))
	require.Equal(t, 'b', CellChar(0, 2, nil, "aÖb"))
}

func TestDerive(t *testing.T) {
	g := Derive([]string{"HELLO", "WORLD"}, "ABC")
	require.Equal(t, "HELLO\nWORLD\nABC__\n_____\n_____\n_____", g.String())
	require.True(t, g[0][0].Filled)
	require.False(t, g[2][3].Filled)
}

func TestDerive_EmptyBoard(t *testing.T) {
	g := Derive(nil, "")
	for r := range g {
		for c := range g[r] {
			require.Equal(t, Cell{}, g[r][c])
		}
	}
}

func TestFromSnapshot(t *testing.T) {
	s := game.New()
	s.SetCurrentGuess("HELLO")
	s.CommitIfComplete()
	s.SetCurrentGuess("W")

	g := FromSnapshot(s.Snapshot())
	require.Equal(t, 'W', g[1][0].Char)
	require.Equal(t, 'O', g[0][4].Char)
}

func TestTransitions(t *testing.T) {
	prev := Derive(nil, "AB")
	next := Derive(nil, "ABC")
	require.Equal(t, []Pos{{Row: 0, Col: 2}}, Transitions(prev, next))

	// deleting a letter flips the cell back
	require.Equal(t, []Pos{{Row: 0, Col: 2}}, Transitions(next, prev))

	// a commit leaves the letters where they were
	committed := Derive([]string{"ABCDE"}, "")
	require.Empty(t, Transitions(Derive(nil, "ABCDE"), committed))

	require.Empty(t, Transitions(prev, prev))
}
