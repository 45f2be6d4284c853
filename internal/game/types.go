// internal/game/types.go
//
// Core type definitions for a Wurdle guess session.
// Defines:
//   - Rows/Cols: fixed board dimensions.
//   - GuessState: the in-progress guess plus the committed history.
//   - Snapshot: an immutable copy of GuessState handed to observers.

package game

const (
	// Rows is the maximum number of guesses shown on the board.
	Rows = 6
	// Cols is the word length; a guess commits once it has this many letters.
	Cols = 5
)

// GuessState holds the state of a single guess session.
// It is not safe for concurrent use; see Session for a guarded wrapper.
type GuessState struct {
	current   string                 // in-progress guess, always normalized
	history   []string               // committed guesses, oldest first
	observers map[int]func(Snapshot) // keyed by subscription id
	nextObs   int
}

// Snapshot is a point-in-time copy of a GuessState.
type Snapshot struct {
	Current string   `json:"current"` // in-progress guess (0..Cols letters)
	History []string `json:"history"` // committed guesses, each exactly Cols letters
}
