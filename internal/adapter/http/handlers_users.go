package adapthttp

import (
	"net/http"

	"fittrack/internal/domain"
)

func (s *Server) handleListUsers(w http.ResponseWriter, r *http.Request) {
	active, err := boolQuery(r, "active")
	if err != nil {
		respondError(w, r, err)
		return
	}
	users, err := s.svc.Users.List(r.Context(), domain.UserFilter{Active: active})
	if err != nil {
		respondError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, users)
}

func (s *Server) handleGetUser(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondError(w, r, err)
		return
	}
	u, err := s.svc.Users.Get(r.Context(), id)
	if err != nil {
		respondError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, u)
}

func (s *Server) handleCreateUser(w http.ResponseWriter, r *http.Request) {
	p, err := parsePayload(w, r)
	if err != nil {
		respondError(w, r, err)
		return
	}
	id, err := s.svc.Users.Create(r.Context(), p)
	if err != nil {
		respondError(w, r, err)
		return
	}
	writeCreated(w, "User created successfully", "user_id", id)
}

func (s *Server) handleUpdateUser(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondError(w, r, err)
		return
	}
	p, err := parsePayload(w, r)
	if err != nil {
		respondError(w, r, err)
		return
	}
	if err := s.svc.Users.Update(r.Context(), id, p); err != nil {
		respondError(w, r, err)
		return
	}
	writeMessage(w, http.StatusOK, "User updated successfully")
}

// handleDeleteUser deactivates the user; the row stays readable.
func (s *Server) handleDeleteUser(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondError(w, r, err)
		return
	}
	if err := s.svc.Users.Deactivate(r.Context(), id, actorID(r.Context())); err != nil {
		respondError(w, r, err)
		return
	}
	writeMessage(w, http.StatusOK, "User deactivated successfully")
}
