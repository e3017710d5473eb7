package adapthttp

import (
	"net/http"
	"strings"

	"fittrack/internal/domain"
)

func (s *Server) handleListMeals(w http.ResponseWriter, r *http.Request) {
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
	meals, err := s.svc.Meals.List(r.Context(), domain.MealFilter{
		UserID:    userID,
		StartDate: start,
		EndDate:   end,
		MealType:  strings.TrimSpace(r.URL.Query().Get("meal_type")),
	})
	if err != nil {
		respondError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, meals)
}

func (s *Server) handleGetMeal(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondError(w, r, err)
		return
	}
	m, err := s.svc.Meals.Get(r.Context(), id)
	if err != nil {
		respondError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, m)
}

func (s *Server) handleCreateMeal(w http.ResponseWriter, r *http.Request) {
	p, err := parsePayload(w, r)
	if err != nil {
		respondError(w, r, err)
		return
	}
	id, err := s.svc.Meals.Create(r.Context(), p)
	if err != nil {
		respondError(w, r, err)
		return
	}
	writeCreated(w, "Meal created successfully", "meal_id", id)
}

func (s *Server) handleUpdateMeal(w http.ResponseWriter, r *http.Request) {
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
	if err := s.svc.Meals.Update(r.Context(), id, p); err != nil {
		respondError(w, r, err)
		return
	}
	writeMessage(w, http.StatusOK, "Meal updated successfully")
}

func (s *Server) handleDeleteMeal(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondError(w, r, err)
		return
	}
	if err := s.svc.Meals.Delete(r.Context(), id); err != nil {
		respondError(w, r, err)
		return
	}
	writeMessage(w, http.StatusOK, "Meal deleted successfully")
}

func (s *Server) handleListMealComments(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondError(w, r, err)
		return
	}
	comments, err := s.svc.Meals.Comments(r.Context(), id)
	if err != nil {
		respondError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, comments)
}

func (s *Server) handleCreateMealComment(w http.ResponseWriter, r *http.Request) {
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
	commentID, err := s.svc.Meals.AddComment(r.Context(), id, p)
	if err != nil {
		respondError(w, r, err)
		return
	}
	writeCreated(w, "Comment added successfully", "comment_id", commentID)
}
