package game

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewSession_HasID(t *testing.T) {
	a, b := NewSession(), NewSession()
	require.Len(t, a.ID, 16)
	require.NotEqual(t, a.ID, b.ID)
	require.False(t, a.LastActive().IsZero())
}

func TestSession_CommitFlow(t *testing.T) {
	s := NewSession()

	snap := s.SetCurrentGuess("wor1ld")
	require.Equal(t, "world", snap.Current)

	snap, ok := s.CommitIfComplete()
	require.True(t, ok)
	require.Equal(t, Snapshot{Current: "", History: []string{"world"}}, snap)
}

func TestSession_ConcurrentEdits(t *testing.T) {
	s := NewSession()
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			s.SetCurrentGuess("HELLO")
			s.CommitIfComplete()
			_ = s.Snapshot()
		}()
	}
	wg.Wait()

	snap := s.Snapshot()
	require.NotEmpty(t, snap.History)
	for _, h := range snap.History {
		require.Equal(t, "HELLO", h)
	}
}

func TestSession_Subscribe(t *testing.T) {
	s := NewSession()
	var n int
	unsub := s.Subscribe(func(Snapshot) { n++ })
	s.SetCurrentGuess("AB")
	unsub()
	s.SetCurrentGuess("ABC")
	require.Equal(t, 1, n)
}
