package adapthttp

import (
	"net/http"
)

func (s *Server) handleListCoaches(w http.ResponseWriter, r *http.Request) {
	coaches, err := s.svc.Coaches.List(r.Context())
	if err != nil {
		respondError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, coaches)
}

func (s *Server) handleGetCoach(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondError(w, r, err)
		return
	}
	c, err := s.svc.Coaches.Get(r.Context(), id)
	if err != nil {
		respondError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, c)
}

func (s *Server) handleCreateCoach(w http.ResponseWriter, r *http.Request) {
	p, err := parsePayload(w, r)
	if err != nil {
		respondError(w, r, err)
		return
	}
	id, err := s.svc.Coaches.Create(r.Context(), p)
	if err != nil {
		respondError(w, r, err)
		return
	}
	writeCreated(w, "Coach created successfully", "coach_id", id)
}

func (s *Server) handleReplaceCoach(w http.ResponseWriter, r *http.Request) {
	s.updateCoach(w, r, true)
}

func (s *Server) handlePatchCoach(w http.ResponseWriter, r *http.Request) {
	s.updateCoach(w, r, false)
}

func (s *Server) updateCoach(w http.ResponseWriter, r *http.Request, replace bool) {
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
	if err := s.svc.Coaches.Update(r.Context(), id, p, replace); err != nil {
		respondError(w, r, err)
		return
	}
	writeMessage(w, http.StatusOK, "Coach updated successfully")
}

func (s *Server) handleDeleteCoach(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondError(w, r, err)
		return
	}
	if err := s.svc.Coaches.Delete(r.Context(), id); err != nil {
		respondError(w, r, err)
		return
	}
	writeMessage(w, http.StatusOK, "Coach deleted successfully")
}

func (s *Server) handleListDietitians(w http.ResponseWriter, r *http.Request) {
	list, err := s.svc.Dietitians.List(r.Context())
	if err != nil {
		respondError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, list)
}

func (s *Server) handleGetDietitian(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondError(w, r, err)
		return
	}
	d, err := s.svc.Dietitians.Get(r.Context(), id)
	if err != nil {
		respondError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, d)
}

func (s *Server) handleCreateDietitian(w http.ResponseWriter, r *http.Request) {
	p, err := parsePayload(w, r)
	if err != nil {
		respondError(w, r, err)
		return
	}
	id, err := s.svc.Dietitians.Create(r.Context(), p)
	if err != nil {
		respondError(w, r, err)
		return
	}
	writeCreated(w, "Dietitian created successfully", "dietitian_id", id)
}

func (s *Server) handleReplaceDietitian(w http.ResponseWriter, r *http.Request) {
	s.updateDietitian(w, r, true)
}

func (s *Server) handlePatchDietitian(w http.ResponseWriter, r *http.Request) {
	s.updateDietitian(w, r, false)
}

func (s *Server) updateDietitian(w http.ResponseWriter, r *http.Request, replace bool) {
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
	if err := s.svc.Dietitians.Update(r.Context(), id, p, replace); err != nil {
		respondError(w, r, err)
		return
	}
	writeMessage(w, http.StatusOK, "Dietitian updated successfully")
}

func (s *Server) handleDeleteDietitian(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondError(w, r, err)
		return
	}
	if err := s.svc.Dietitians.Delete(r.Context(), id); err != nil {
		respondError(w, r, err)
		return
	}
	writeMessage(w, http.StatusOK, "Dietitian deleted successfully")
}
