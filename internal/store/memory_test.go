package store

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/robalobadob/wurdle/internal/game"
)

func TestMemory_SaveGetDelete(t *testing.T) {
	ctx := context.Background()
	st := NewMemoryStore()
	s := game.NewSession()

	require.NoError(t, st.Save(ctx, s))
	got, err := st.Get(ctx, s.ID)
	require.NoError(t, err)
	require.Same(t, s, got)

	require.NoError(t, st.Delete(ctx, s.ID))
	_, err = st.Get(ctx, s.ID)
	require.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, st.Delete(ctx, "missing"))
}

func TestMemory_Sweep(t *testing.T) {
	ctx := context.Background()
	st := NewMemoryStore()
	old, fresh := game.NewSession(), game.NewSession()
	require.NoError(t, st.Save(ctx, old))

	cutoff := time.Now().Add(time.Millisecond)
	time.Sleep(5 * time.Millisecond)
	require.NoError(t, st.Save(ctx, fresh))
	fresh.SetCurrentGuess("A")

	n, err := st.Sweep(ctx, cutoff)
	require.NoError(t, err)
	require.Equal(t, 1, n)

	_, err = st.Get(ctx, old.ID)
	require.ErrorIs(t, err, ErrNotFound)
	_, err = st.Get(ctx, fresh.ID)
	require.NoError(t, err)
}

func TestRunJanitor_StopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	st := NewMemoryStore()
	require.NoError(t, st.Save(ctx, game.NewSession()))

	done := make(chan struct{})
	go func() {
		RunJanitor(ctx, st, time.Nanosecond, time.Millisecond)
		close(done)
	}()

	require.Eventually(t, func() bool {
		return storeLen(st) == 0
	}, time.Second, 5*time.Millisecond)

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("janitor did not stop")
	}
}

func storeLen(st Store) int {
	m := st.(*memory)
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.sessions)
}
