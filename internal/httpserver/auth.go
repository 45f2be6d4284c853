// internal/httpserver/auth.go
//
// Session tokens.
// A session is addressed by an HS256 JWT carrying the session ID in the
// "sid" claim. Clients present it as a Bearer token or via the session cookie.
// Tokens slide: once less than half of SESSION_TTL remains, the next request
// gets a fresh token in the cookie and the X-Session-Token header, so an
// active player keeps access as long as the store keeps the session.

package httpserver

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog/hlog"

	"github.com/robalobadob/wurdle/internal/game"
	"github.com/robalobadob/wurdle/internal/store"
)

type ctxSessionKey struct{}

var errNoSession = errors.New("no session in context")

// refreshHeader carries a re-issued token to Bearer clients.
const refreshHeader = "X-Session-Token"


// signSession issues a token for sid valid for the configured session TTL.
func (s *Server) signSession(sid string) (string, time.Time, error) {
	now := time.Now()
	exp := now.Add(s.cfg.SessionTTL)
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sid": sid,
		"exp": exp.Unix(),
		"iat": now.Unix(),
	})
	ss, err := token.SignedString([]byte(s.cfg.JWTSecret))
	return ss, exp, err
}

// parseSession validates tok and returns its session ID and expiry.
func (s *Server) parseSession(tok string) (string, time.Time, error) {
	claims := jwt.MapClaims{}
	t, err := jwt.ParseWithClaims(tok, claims, func(t *jwt.Token) (interface{}, error) {
		return []byte(s.cfg.JWTSecret), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithExpirationRequired())
	if err != nil {
		return "", time.Time{}, err
	}
	if !t.Valid {
		return "", time.Time{}, errors.New("invalid token")
	}
	sid, _ := claims["sid"].(string)
	if sid == "" {
		return "", time.Time{}, errors.New("token has no sid")
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return "", time.Time{}, errors.New("token has no exp")
	}
	return sid, exp.Time, nil
}

// refreshSession re-issues the token when less than half its lifetime is left.
func (s *Server) refreshSession(w http.ResponseWriter, r *http.Request, sid string, exp time.Time) {
	if time.Until(exp) > s.cfg.SessionTTL/2 {
		return
	}
	tok, newExp, err := s.signSession(sid)
	if err != nil {
		hlog.FromRequest(r).Warn().Err(err).Str("sessionId", sid).Msg("refresh session token")
		return
	}
	s.setSessionCookie(w, tok, newExp)
	w.Header().Set(refreshHeader, tok)
}

// setSessionCookie stores the token in an HttpOnly cookie.
func (s *Server) setSessionCookie(w http.ResponseWriter, token string, exp time.Time) {
	sameSite := http.SameSiteLaxMode
	if s.cfg.Production {
		sameSite = http.SameSiteNoneMode
	}
	http.SetCookie(w, &http.Cookie{
		Name:     s.cfg.CookieName,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		Secure:   s.cfg.Production,
		SameSite: sameSite,
		Expires:  exp,
	})
}

// bearerOrCookie extracts a token from the Authorization header or cookie.
func (s *Server) bearerOrCookie(r *http.Request) string {
	if a := r.Header.Get("Authorization"); strings.HasPrefix(strings.ToLower(a), "bearer ") {
		return strings.TrimSpace(a[7:])
	}
	if c, err := r.Cookie(s.cfg.CookieName); err == nil {
		return c.Value
	}
	return ""
}

// requireSession resolves the request's token to a live session and places
// it in the request context. Missing or bad tokens get 401; swept sessions 404.
func (s *Server) requireSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		tok := s.bearerOrCookie(r)
		if tok == "" {
			writeError(w, http.StatusUnauthorized, "unauthorized")
			return
		}
		sid, exp, err := s.parseSession(tok)
		if err != nil {
			hlog.FromRequest(r).Debug().Err(err).Msg("reject session token")
			writeError(w, http.StatusUnauthorized, "invalid_token")
			return
		}
		sess, err := s.store.Get(r.Context(), sid)
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusNotFound, "session_not_found")
			return
		}
		if err != nil {
			hlog.FromRequest(r).Error().Err(err).Str("sessionId", sid).Msg("load session")
			writeError(w, http.StatusInternalServerError, "load_failed")
			return
		}
		s.refreshSession(w, r, sid, exp)
		ctx := context.WithValue(r.Context(), ctxSessionKey{}, sess)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// currentSession returns the session placed by requireSession.
func currentSession(r *http.Request) (*game.Session, error) {
	sess, _ := r.Context().Value(ctxSessionKey{}).(*game.Session)
	if sess == nil {
		return nil, errNoSession
	}
	return sess, nil
}
