package adapthttp

import (
	"net/http"
	"time"
)

type sessionResponse struct {
	Token     string    `json:"token,omitempty"`
	SessionID string    `json:"session_id"`
	UserID    int64     `json:"user_id"`
	Role      string    `json:"role"`
	ExpiresAt time.Time `json:"expires_at"`
}

func (s *Server) handleStartSession(w http.ResponseWriter, r *http.Request) {
	p, err := parsePayload(w, r)
	if err != nil {
		respondError(w, r, err)
		return
	}
	token, session, err := s.svc.Sessions.Start(r.Context(), p)
	if err != nil {
		respondError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, sessionResponse{
		Token:     token,
		SessionID: session.ID,
		UserID:    session.UserID,
		Role:      session.Role,
		ExpiresAt: session.ExpiresAt,
	})
}

// handleGetSession describes the caller's session. Without enforced
// sessions the bearer token is validated here instead.
func (s *Server) handleGetSession(w http.ResponseWriter, r *http.Request) {
	session := sessionFrom(r.Context())
	if session == nil {
		token := bearerToken(r)
		if token == "" {
			writeError(w, http.StatusUnauthorized, errMissingToken)
			return
		}
		var err error
		if session, err = s.svc.Sessions.Validate(r.Context(), token); err != nil {
			respondError(w, r, err)
			return
		}
	}
	writeJSON(w, http.StatusOK, sessionResponse{
		SessionID: session.ID,
		UserID:    session.UserID,
		Role:      session.Role,
		ExpiresAt: session.ExpiresAt,
	})
}

func (s *Server) handleEndSession(w http.ResponseWriter, r *http.Request) {
	token := bearerToken(r)
	if token == "" {
		writeError(w, http.StatusUnauthorized, errMissingToken)
		return
	}
	if err := s.svc.Sessions.End(r.Context(), token); err != nil {
		respondError(w, r, err)
		return
	}
	writeMessage(w, http.StatusOK, "Session ended")
}
