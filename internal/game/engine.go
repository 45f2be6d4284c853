// internal/game/engine.go
//
// Guess validation & commit state machine.
// Responsibilities:
//   - Normalize raw input: drop trailing runes beyond Cols, then drop non-letters.
//   - Commit a complete guess into the append-only history.
//   - Publish a Snapshot to subscribers after every change.
//
// Notes:
//   - Every operation here is total. Bad input is normalized away, never rejected.
//   - Input is NFC-composed before counting, so "é" typed as e + U+0301 fills
//     one cell, same as the precomposed letter.
//   - Only the first Cols runes of raw are ever read.

package game

import (
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
)

// New constructs an empty GuessState.
func New() *GuessState {
	return &GuessState{
		history:   []string{},
		observers: make(map[int]func(Snapshot)),
	}
}

// Normalize truncates raw to Cols runes from the end, then strips every rune
// that is not a letter. Truncation happens first: "AB1CDEF" keeps "ABCD".
// Runes are counted after NFC composition. Input past the first Cols runes
// is never decoded, so the cost does not grow with len(raw).
func Normalize(raw string) string {
	kept := make([]rune, 0, Cols)
	n := 0
	var it norm.Iter
	it.InitString(norm.NFC, raw)
	for n < Cols && !it.Done() {
		seg := it.Next()
		for len(seg) > 0 && n < Cols {
			r, size := utf8.DecodeRune(seg)
			seg = seg[size:]
			n++
			if unicode.IsLetter(r) {
				kept = append(kept, r)
			}
		}
	}
	return string(kept)
}

// CurrentGuess returns the normalized in-progress guess.
func (g *GuessState) CurrentGuess() string { return g.current }

// History returns a copy of the committed guesses, oldest first.
func (g *GuessState) History() []string {
	out := make([]string, len(g.history))
	copy(out, g.history)
	return out
}

// Snapshot copies the current state.
func (g *GuessState) Snapshot() Snapshot {
	return Snapshot{Current: g.current, History: g.History()}
}

// SetCurrentGuess replaces the input buffer with Normalize(raw).
func (g *GuessState) SetCurrentGuess(raw string) {
	next := Normalize(raw)
	if next == g.current {
		return
	}
	g.current = next
	g.publish()
}

// CommitIfComplete appends the current guess to history and clears it when it
// has exactly Cols letters. Partial guesses are left untouched.
// Reports whether a commit happened.
func (g *GuessState) CommitIfComplete() bool {
	if !complete(g.current) {
		return false
	}
	g.history = append(g.history, g.current)
	g.current = ""
	g.publish()
	return true
}

// Subscribe registers fn to receive a Snapshot after each state change.
// fn runs synchronously inside the mutation and must not block or mutate g.
// The returned func removes the subscription.
func (g *GuessState) Subscribe(fn func(Snapshot)) (unsubscribe func()) {
	id := g.nextObs
	g.nextObs++
	g.observers[id] = fn
	return func() { delete(g.observers, id) }
}

func (g *GuessState) publish() {
	if len(g.observers) == 0 {
		return
	}
	snap := g.Snapshot()
	for _, fn := range g.observers {
		fn(snap)
	}
}

// complete reports whether s holds exactly Cols runes.
func complete(s string) bool {
	n := 0
	for range s {
		n++
	}
	return n == Cols
}
