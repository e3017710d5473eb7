package adapthttp

import (
	"net/http"
	"strings"

	"fittrack/internal/domain"
)

func (s *Server) handleListWorkouts(w http.ResponseWriter, r *http.Request) {
	userID, err := int64Query(r, "user_id")
	if err != nil {
		respondError(w, r, err)
		return
	}
	start, end, err := dateRange(r)
	if err != nil {
		respondError(w, r, err)
		return
	}
	list, err := s.svc.Workouts.List(r.Context(), domain.WorkoutFilter{
		UserID:      userID,
		StartDate:   start,
		EndDate:     end,
		WorkoutType: strings.TrimSpace(r.URL.Query().Get("workout_type")),
	})
	if err != nil {
		respondError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, list)
}

func (s *Server) handleGetWorkout(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondError(w, r, err)
		return
	}
	wo, err := s.svc.Workouts.Get(r.Context(), id)
	if err != nil {
		respondError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, wo)
}

func (s *Server) handleCreateWorkout(w http.ResponseWriter, r *http.Request) {
	p, err := parsePayload(w, r)
	if err != nil {
		respondError(w, r, err)
		return
	}
	id, err := s.svc.Workouts.Create(r.Context(), p)
	if err != nil {
		respondError(w, r, err)
		return
	}
	writeCreated(w, "Workout created successfully", "workout_id", id)
}

func (s *Server) handleUpdateWorkout(w http.ResponseWriter, r *http.Request) {
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
	if err := s.svc.Workouts.Update(r.Context(), id, p); err != nil {
		respondError(w, r, err)
		return
	}
	writeMessage(w, http.StatusOK, "Workout updated successfully")
}

func (s *Server) handleDeleteWorkout(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondError(w, r, err)
		return
	}
	if err := s.svc.Workouts.Delete(r.Context(), id); err != nil {
		respondError(w, r, err)
		return
	}
	writeMessage(w, http.StatusOK, "Workout deleted successfully")
}

func (s *Server) handleListWeight(w http.ResponseWriter, r *http.Request) {
	userID, err := int64Query(r, "user_id")
	if err != nil {
		respondError(w, r, err)
		return
	}
	start, end, err := dateRange(r)
	if err != nil {
		respondError(w, r, err)
		return
	}
	list, err := s.svc.Workouts.WeightHistory(r.Context(), domain.WeightFilter{UserID: userID, StartDate: start, EndDate: end})
	if err != nil {
		respondError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, list)
}

func (s *Server) handleRecordWeight(w http.ResponseWriter, r *http.Request) {
	p, err := parsePayload(w, r)
	if err != nil {
		respondError(w, r, err)
		return
	}
	id, err := s.svc.Workouts.RecordWeight(r.Context(), p)
	if err != nil {
		respondError(w, r, err)
		return
	}
	writeCreated(w, "Weight recorded successfully", "metric_id", id)
}
