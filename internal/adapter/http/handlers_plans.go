package adapthttp

import "net/http"

func (s *Server) handleListPlans(w http.ResponseWriter, r *http.Request) {
	plans, err := s.svc.Plans.List(r.Context())
	if err != nil {
		respondError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, plans)
}

func (s *Server) handleCreatePlan(w http.ResponseWriter, r *http.Request) {
	p, err := parsePayload(w, r)
	if err != nil {
		respondError(w, r, err)
		return
	}
	id, err := s.svc.Plans.Create(r.Context(), p)
	if err != nil {
		respondError(w, r, err)
		return
	}
	writeCreated(w, "Plan created successfully", "plan_id", id)
}

func (s *Server) handleListPlanExercises(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondError(w, r, err)
		return
	}
	list, err := s.svc.Plans.Exercises(r.Context(), id)
	if err != nil {
		respondError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, list)
}

func (s *Server) handleAddPlanExercise(w http.ResponseWriter, r *http.Request) {
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
	if err := s.svc.Plans.AddExercise(r.Context(), id, p); err != nil {
		respondError(w, r, err)
		return
	}
	writeMessage(w, http.StatusCreated, "Exercise added to plan successfully")
}

func (s *Server) handleUpdatePlanExercise(w http.ResponseWriter, r *http.Request) {
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
	if err := s.svc.Plans.UpdateExercise(r.Context(), id, p); err != nil {
		respondError(w, r, err)
		return
	}
	writeMessage(w, http.StatusOK, "Plan exercise updated successfully")
}

func (s *Server) handleListExercises(w http.ResponseWriter, r *http.Request) {
	list, err := s.svc.Plans.Library(r.Context())
	if err != nil {
		respondError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, list)
}

func (s *Server) handleCreateExercise(w http.ResponseWriter, r *http.Request) {
	p, err := parsePayload(w, r)
	if err != nil {
		respondError(w, r, err)
		return
	}
	id, err := s.svc.Plans.CreateExercise(r.Context(), p)
	if err != nil {
		respondError(w, r, err)
		return
	}
	writeCreated(w, "Exercise created successfully", "exercise_id", id)
}
