// internal/store/janitor.go
//
// Background sweep of idle sessions.
// Runs on a ticker until its context is cancelled.

package store

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"
)

// RunJanitor sweeps sessions idle longer than ttl every interval until ctx
// is cancelled.
func RunJanitor(ctx context.Context, st Store, ttl, interval time.Duration) {
	t := time.NewTicker(interval)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case now := <-t.C:
			n, err := st.Sweep(ctx, now.Add(-ttl))
			if err != nil {
				log.Warn().Err(err).Msg("sweep sessions")
				continue
			}
			if n > 0 {
				log.Debug().Int("swept", n).Msg("expired idle sessions")
			}
		}
	}
}
