// internal/httpserver/stream.go
//
// GET /session/ws streams the session view over a WebSocket.
// One view is sent on connect and one after every state change, carrying the
// cells whose blank-ness flipped since the previous frame.

package httpserver

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"time"

	"github.com/coder/websocket"
	"github.com/rs/zerolog/hlog"

	"github.com/robalobadob/wurdle/internal/game"
	"github.com/robalobadob/wurdle/internal/grid"
)

const streamWriteTimeout = 5 * time.Second

func (s *Server) handleStream(w http.ResponseWriter, r *http.Request) {
	sess, err := currentSession(r)
	if err != nil {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}
	logger := hlog.FromRequest(r).With().Str("sessionId", sess.ID).Logger()

	conn, err := websocket.Accept(w, r, &websocket.AcceptOptions{
		OriginPatterns: s.originPatterns(),
	})
	if err != nil {
		logger.Warn().Err(err).Msg("accept websocket")
		return
	}
	defer conn.CloseNow()

	// Keep only the newest pending snapshot; the subscriber runs under the
	// session lock and must never block.
	updates := make(chan game.Snapshot, 1)
	unsub := sess.Subscribe(func(snap game.Snapshot) {
		select {
		case updates <- snap:
		default:
			select {
			case <-updates:
			default:
			}
			select {
			case updates <- snap:
			default:
			}
		}
	})
	defer unsub()

	ctx := conn.CloseRead(r.Context())

	snap := sess.Snapshot()
	prev := grid.FromSnapshot(snap)
	if err := writeFrame(ctx, conn, newView(sess.ID, snap, prev)); err != nil {
		logger.Debug().Err(err).Msg("write initial frame")
		return
	}
	logger.Info().Msg("stream opened")

	for {
		select {
		case <-ctx.Done():
			logger.Info().Msg("stream closed")
			conn.Close(websocket.StatusNormalClosure, "")
			return
		case snap := <-updates:
			next := grid.FromSnapshot(snap)
			v := newView(sess.ID, snap, next)
			v.Changed = grid.Transitions(prev, next)
			prev = next
			if err := writeFrame(ctx, conn, v); err != nil {
				logger.Debug().Err(err).Msg("write frame")
				return
			}
		}
	}
}

func writeFrame(ctx context.Context, conn *websocket.Conn, v sessionView) error {
	b, err := json.Marshal(v)
	if err != nil {
		return err
	}
	ctx, cancel := context.WithTimeout(ctx, streamWriteTimeout)
	defer cancel()
	return conn.Write(ctx, websocket.MessageText, b)
}

// originPatterns allows the configured client origin's host.
func (s *Server) originPatterns() []string {
	u, err := url.Parse(s.cfg.ClientOrigin)
	if err != nil || u.Host == "" {
		return nil
	}
	return []string{u.Host}
}
