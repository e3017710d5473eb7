package adapthttp

import (
	"errors"
	"net/http"
	"strings"

	"fittrack/internal/domain"
)

func (s *Server) handleListGoals(w http.ResponseWriter, r *http.Request) {
	userID, err := int64Query(r, "user_id")
	if err != nil {
		respondError(w, r, err)
		return
	}
	goals, err := s.svc.Clients.Goals(r.Context(), domain.GoalFilter{UserID: userID})
	if err != nil {
		respondError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, goals)
}

func (s *Server) handleGetGoal(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondError(w, r, err)
		return
	}
	g, err := s.svc.Clients.Goal(r.Context(), id)
	if err != nil {
		respondError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, g)
}

func (s *Server) handleCreateGoal(w http.ResponseWriter, r *http.Request) {
	p, err := parsePayload(w, r)
	if err != nil {
		respondError(w, r, err)
		return
	}
	id, err := s.svc.Clients.CreateGoal(r.Context(), p)
	if err != nil {
		respondError(w, r, err)
		return
	}
	writeCreated(w, "Goal created successfully", "goal_id", id)
}

func (s *Server) handleUpdateGoal(w http.ResponseWriter, r *http.Request) {
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
	if err := s.svc.Clients.UpdateGoal(r.Context(), id, p); err != nil {
		respondError(w, r, err)
		return
	}
	writeMessage(w, http.StatusOK, "Goal updated successfully")
}

func (s *Server) handleDeleteGoal(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondError(w, r, err)
		return
	}
	if err := s.svc.Clients.DeleteGoal(r.Context(), id); err != nil {
		respondError(w, r, err)
		return
	}
	writeMessage(w, http.StatusOK, "Goal deleted successfully")
}

var errUnknownView = errors.New("not found")

// handleClientView serves /clients/{id}/workouts, /meals and /nutrition.
func (s *Server) handleClientView(w http.ResponseWriter, r *http.Request) {
	view := r.PathValue("view")
	switch view {
	case "workouts", "meals", "nutrition":
	default:
		writeError(w, http.StatusNotFound, errUnknownView)
		return
	}

	id, err := pathID(r)
	if err != nil {
		respondError(w, r, err)
		return
	}

	var data any
	switch view {
	case "workouts":
		data, err = s.svc.Clients.Workouts(r.Context(), id)
	case "meals":
		data, err = s.svc.Clients.Meals(r.Context(), id)
	case "nutrition":
		start, end, rerr := dateRange(r)
		if rerr != nil {
			respondError(w, r, rerr)
			return
		}
		data, err = s.svc.Clients.Nutrition(r.Context(), id, domain.MealFilter{
			StartDate: start,
			EndDate:   end,
			MealType:  strings.TrimSpace(r.URL.Query().Get("meal_type")),
		})
	}
	if err != nil {
		respondError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, data)
}

func (s *Server) handleCoachNotifications(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondError(w, r, err)
		return
	}
	list, err := s.svc.Coaches.MissedWorkouts(r.Context(), id)
	if err != nil {
		respondError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, list)
}
