// internal/httpserver/routes_session.go
//
// Session endpoints.
//   POST /session         create a session, returns its token
//   GET  /session         current view
//   PUT  /session/guess   replace the input buffer ({"raw": "..."})
//   POST /session/commit  commit the guess if it is complete
//
// Guess bodies are capped at maxGuessBody bytes (413 beyond that).
// Input is never rejected for its content: it is normalized by the game
// package. Only a malformed JSON body is a client error.

package httpserver

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/rs/zerolog/hlog"

	"github.com/robalobadob/wurdle/internal/game"
	"github.com/robalobadob/wurdle/internal/grid"
)

// cellView is one board cell on the wire. Char is "" for a blank cell.
type cellView struct {
	Char   string `json:"char"`
	Filled bool   `json:"filled"`
}

// sessionView is the JSON shape of a session, shared by REST and WebSocket.
type sessionView struct {
	SessionID string       `json:"sessionId"`
	Current   string       `json:"current"`
	History   []string     `json:"history"`
	Grid      [][]cellView `json:"grid"`
	Committed *bool        `json:"committed,omitempty"`
	Changed   []grid.Pos   `json:"changed,omitempty"`
}

func newView(id string, snap game.Snapshot, g grid.Grid) sessionView {
	rows := make([][]cellView, len(g))
	for r := range g {
		rows[r] = make([]cellView, len(g[r]))
		for c, cell := range g[r] {
			cv := cellView{Filled: cell.Filled}
			if cell.Char != grid.Blank {
				cv.Char = string(cell.Char)
			}
			rows[r][c] = cv
		}
	}
	return sessionView{
		SessionID: id,
		Current:   snap.Current,
		History:   snap.History,
		Grid:      rows,
	}
}

type newSessionRes struct {
	SessionID string `json:"sessionId"`
	Token     string `json:"token"`
}

// handleNewSession creates a session, stores it, and issues its token.
func (s *Server) handleNewSession(w http.ResponseWriter, r *http.Request) {
	sess := game.NewSession()
	if err := s.store.Save(r.Context(), sess); err != nil {
		hlog.FromRequest(r).Error().Err(err).Msg("save session")
		writeError(w, http.StatusInternalServerError, "save_failed")
		return
	}
	tok, exp, err := s.signSession(sess.ID)
	if err != nil {
		hlog.FromRequest(r).Error().Err(err).Msg("sign session")
		writeError(w, http.StatusInternalServerError, "sign_failed")
		return
	}
	s.setSessionCookie(w, tok, exp)
	hlog.FromRequest(r).Info().Str("sessionId", sess.ID).Msg("session created")
	writeJSON(w, http.StatusCreated, newSessionRes{SessionID: sess.ID, Token: tok})
}

func (s *Server) handleGetSession(w http.ResponseWriter, r *http.Request) {
	sess, err := currentSession(r)
	if err != nil {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}
	snap := sess.Snapshot()
	writeJSON(w, http.StatusOK, newView(sess.ID, snap, grid.FromSnapshot(snap)))
}

// maxGuessBody caps PUT /session/guess bodies. A guess is five letters; the
// slack covers JSON framing and pasted text.
const maxGuessBody = 4 << 10

type setGuessReq struct {
	Raw string `json:"raw"`
}

func (s *Server) handleSetGuess(w http.ResponseWriter, r *http.Request) {
	sess, err := currentSession(r)
	if err != nil {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}
	var req setGuessReq
	r.Body = http.MaxBytesReader(w, r.Body, maxGuessBody)
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		var tooBig *http.MaxBytesError
		if errors.As(err, &tooBig) {
			writeError(w, http.StatusRequestEntityTooLarge, "body_too_large")
			return
		}
		writeError(w, http.StatusBadRequest, "bad_json")
		return
	}
	snap := sess.SetCurrentGuess(req.Raw)
	writeJSON(w, http.StatusOK, newView(sess.ID, snap, grid.FromSnapshot(snap)))
}

func (s *Server) handleCommit(w http.ResponseWriter, r *http.Request) {
	sess, err := currentSession(r)
	if err != nil {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}
	snap, committed := sess.CommitIfComplete()
	if committed {
		hlog.FromRequest(r).Debug().
			Str("sessionId", sess.ID).
			Int("guesses", len(snap.History)).
			Msg("guess committed")
	}
	v := newView(sess.ID, snap, grid.FromSnapshot(snap))
	v.Committed = &committed
	writeJSON(w, http.StatusOK, v)
}
