package game

import (
	"strings"
	"testing"
	"unicode"
	"unicode/utf8"

	"github.com/stretchr/testify/require"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{"empty", "", ""},
		{"partial", "HI", "HI"},
		{"exact", "HELLO", "HELLO"},
		{"truncates trailing", "ABCDEFG", "ABCDE"},
		{"filters anywhere", "A1B2C", "ABC"},
		{"truncate before filter", "AB1CDEF", "ABCD"},
		{"whitespace dropped", " a b ", "ab"},
		{"casing kept", "HeLlO", "HeLlO"},
		{"only symbols", "12!?.", ""},
		{"multibyte letters", "ÉCOLEX", "ÉCOLE"},
		{"decomposed accent composes", "e\u0301cole", "\u00e9cole"},
		{"decomposed accent past cut", "abcde\u0301", "abcd\u00e9"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, Normalize(tt.raw))
		})
	}
}

func TestNormalize_LongInputReadsOnlyPrefix(t *testing.T) {
	raw := strings.Repeat("A", 1<<20)
	require.Equal(t, "AAAAA", Normalize(raw))

	allocs := testing.AllocsPerRun(10, func() { _ = Normalize(raw) })
	require.LessOrEqual(t, allocs, 4.0)
}

func TestNormalize_Idempotent(t *testing.T) {
	for _, raw := range []string{"", "ABCDEFG", "A1B2C", "a-b-c-d-e-f", "e\u0301cole", "  hello world", "ÅÄÖ123xyz"} {
		once := Normalize(raw)
		require.Equal(t, once, Normalize(once), "normalize(%q)", raw)
	}
}

func TestSetCurrentGuess_Invariants(t *testing.T) {
	g := New()
	for _, raw := range []string{"a", "ab3", "abc!!d", "abcdefghij", "9999999", "x y z", "HELLO!"} {
		g.SetCurrentGuess(raw)
		cur := g.CurrentGuess()
		require.LessOrEqual(t, utf8.RuneCountInString(cur), Cols)
		for _, r := range cur {
			require.True(t, unicode.IsLetter(r), "rune %q in %q", r, cur)
		}
	}
}

func TestSetCurrentGuess_Policies(t *testing.T) {
	g := New()
	g.SetCurrentGuess("ABCDEFG")
	require.Equal(t, "ABCDE", g.CurrentGuess())

	g.SetCurrentGuess("A1B2C")
	require.Equal(t, "ABC", g.CurrentGuess())
}

func TestCommitIfComplete_Commits(t *testing.T) {
	g := New()
	g.SetCurrentGuess("HELLO")

	require.True(t, g.CommitIfComplete())
	require.Equal(t, []string{"HELLO"}, g.History())
	require.Equal(t, "", g.CurrentGuess())
}

func TestCommitIfComplete_IgnoresIncomplete(t *testing.T) {
	g := New()
	g.SetCurrentGuess("HI")

	require.False(t, g.CommitIfComplete())
	require.False(t, g.CommitIfComplete())
	require.Empty(t, g.History())
	require.Equal(t, "HI", g.CurrentGuess())
}

func TestCommitIfComplete_EmptyIsNoop(t *testing.T) {
	g := New()
	require.False(t, g.CommitIfComplete())
	require.Empty(t, g.History())
}

func TestCommitIfComplete_KeepsOrderAndCasing(t *testing.T) {
	g := New()
	for _, w := range []string{"hello", "WORLD", "MiXeD"} {
		g.SetCurrentGuess(w)
		require.True(t, g.CommitIfComplete())
	}
	require.Equal(t, []string{"hello", "WORLD", "MiXeD"}, g.History())
}

func TestHistory_ReturnsCopy(t *testing.T) {
	g := New()
	g.SetCurrentGuess("HELLO")
	g.CommitIfComplete()

	h := g.History()
	h[0] = "XXXXX"
	require.Equal(t, []string{"HELLO"}, g.History())
}

func TestSubscribe_PublishesOnChange(t *testing.T) {
	g := New()
	var got []Snapshot
	unsub := g.Subscribe(func(s Snapshot) { got = append(got, s) })

	g.SetCurrentGuess("HEL")
	g.SetCurrentGuess("HEL1") // normalizes to the same value, no publish
	g.SetCurrentGuess("HELLO")
	g.CommitIfComplete()
	g.CommitIfComplete() // no-op, no publish

	require.Len(t, got, 3)
	require.Equal(t, Snapshot{Current: "HEL", History: []string{}}, got[0])
	require.Equal(t, Snapshot{Current: "", History: []string{"HELLO"}}, got[2])

	unsub()
	g.SetCurrentGuess("A")
	require.Len(t, got, 3)
}
