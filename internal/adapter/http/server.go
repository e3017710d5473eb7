// Package adapthttp implements the HTTP adapter for the application.
package adapthttp

import (
	"context"
	"net/http"

	"fittrack/internal/app"

	"github.com/rs/cors"
)

// Services bundles the application services the routes dispatch to.
type Services struct {
	Users      *app.UserService
	Admin      *app.AdminService
	Coaches    *app.CoachService
	Dietitians *app.DietitianService
	Clients    *app.ClientService
	Meals      *app.MealService
	Workouts   *app.WorkoutService
	Plans      *app.PlanService
	Sessions   *app.SessionService
}

// Pinger reports backend readiness.
type Pinger interface {
	PingContext(ctx context.Context) error
}

// Options configures the HTTP surface.
type Options struct {
	// WebDir serves the dashboard under /dashboard/ when set.
	WebDir string
	// RequireSession enforces bearer sessions on every non-public route.
	RequireSession bool
	// AllowedOrigins lists CORS origins; empty allows none.
	AllowedOrigins []string
	// Ready backs /readyz; nil always reports ready.
	Ready Pinger
}

// Server is the driving HTTP adapter that routes requests to application
// services.
type Server struct {
	svc  Services
	opts Options
}

// New creates a Server wired to the given application services.
func New(svc Services, opts Options) *Server {
	return &Server{svc: svc, opts: opts}
}

// Handler returns the root http.Handler for the application.
func (s *Server) Handler() http.Handler {
	api := http.NewServeMux()

	api.HandleFunc("GET /users", s.handleListUsers)
	api.HandleFunc("POST /users", s.handleCreateUser)
	api.HandleFunc("GET /users/{id}", s.handleGetUser)
	api.HandleFunc("PUT /users/{id}", s.handleUpdateUser)
	api.HandleFunc("PATCH /users/{id}", s.handleUpdateUser)
	api.HandleFunc("DELETE /users/{id}", s.handleDeleteUser)

	api.HandleFunc("GET /admin/users", s.handleAdminListUsers)
	api.HandleFunc("POST /admin/users", s.handleCreateUser)
	api.HandleFunc("PUT /admin/users", s.handleAdminAssignRole)
	api.HandleFunc("DELETE /admin/users", s.handleAdminDeactivateUser)
	api.HandleFunc("DELETE /admin/users/{id}", s.handleDeleteUser)
	api.HandleFunc("GET /admin/roles", s.handleAdminRoles)
	api.HandleFunc("GET /admin/audit", s.handleAdminAudit)
	api.HandleFunc("GET /admin/audit-log", s.handleAdminAudit)
	api.HandleFunc("GET /admin/alerts", s.handleAdminAlerts)
	api.HandleFunc("GET /admin/backups", s.handleAdminBackups)
	api.HandleFunc("POST /admin/backups", s.handleAdminRequestBackup)
	api.HandleFunc("GET /admin/system/metrics", s.handleAdminSystemMetrics)

	api.HandleFunc("GET /coaches", s.handleListCoaches)
	api.HandleFunc("POST /coaches", s.handleCreateCoach)
	api.HandleFunc("GET /coaches/{id}", s.handleGetCoach)
	api.HandleFunc("PUT /coaches/{id}", s.handleReplaceCoach)
	api.HandleFunc("PATCH /coaches/{id}", s.handlePatchCoach)
	api.HandleFunc("DELETE /coaches/{id}", s.handleDeleteCoach)

	// /dieticians is the spelling older dashboard pages use.
	for _, base := range []string{"/dietitians", "/dieticians"} {
		api.HandleFunc("GET "+base, s.handleListDietitians)
		api.HandleFunc("POST "+base, s.handleCreateDietitian)
		api.HandleFunc("GET "+base+"/{id}", s.handleGetDietitian)
		api.HandleFunc("PUT "+base+"/{id}", s.handleReplaceDietitian)
		api.HandleFunc("PATCH "+base+"/{id}", s.handlePatchDietitian)
		api.HandleFunc("DELETE "+base+"/{id}", s.handleDeleteDietitian)
	}

	api.HandleFunc("GET /clients/goals", s.handleListGoals)
	api.HandleFunc("POST /clients/goals", s.handleCreateGoal)
	api.HandleFunc("GET /clients/goals/{id}", s.handleGetGoal)
	api.HandleFunc("PUT /clients/goals/{id}", s.handleUpdateGoal)
	api.HandleFunc("DELETE /clients/goals/{id}", s.handleDeleteGoal)
	api.HandleFunc("GET /clients/{id}/{view}", s.handleClientView)
	api.HandleFunc("GET /clients/coaches/{id}/notifications", s.handleCoachNotifications)

	api.HandleFunc("GET /meals", s.handleListMeals)
	api.HandleFunc("POST /meals", s.handleCreateMeal)
	api.HandleFunc("GET /meals/{id}", s.handleGetMeal)
	api.HandleFunc("PUT /meals/{id}", s.handleUpdateMeal)
	api.HandleFunc("DELETE /meals/{id}", s.handleDeleteMeal)
	api.HandleFunc("GET /meals/{id}/comments", s.handleListMealComments)
	api.HandleFunc("POST /meals/{id}/comments", s.handleCreateMealComment)

	api.HandleFunc("GET /workouts", s.handleListWorkouts)
	api.HandleFunc("POST /workouts", s.handleCreateWorkout)
	api.HandleFunc("GET /workouts/{id}", s.handleGetWorkout)
	api.HandleFunc("PUT /workouts/{id}", s.handleUpdateWorkout)
	api.HandleFunc("DELETE /workouts/{id}", s.handleDeleteWorkout)
	api.HandleFunc("GET /workouts/metrics/weight", s.handleListWeight)
	api.HandleFunc("POST /workouts/metrics/weight", s.handleRecordWeight)

	api.HandleFunc("GET /plans", s.handleListPlans)
	api.HandleFunc("POST /plans", s.handleCreatePlan)
	api.HandleFunc("GET /plans/{id}/exercises", s.handleListPlanExercises)
	api.HandleFunc("POST /plans/{id}/exercises", s.handleAddPlanExercise)
	api.HandleFunc("PUT /plans/{id}/exercises", s.handleUpdatePlanExercise)
	api.HandleFunc("GET /plans/exercises", s.handleListExercises)
	api.HandleFunc("POST /plans/exercises", s.handleCreateExercise)

	api.HandleFunc("GET /auth/session", s.handleGetSession)
	api.HandleFunc("DELETE /auth/session", s.handleEndSession)

	root := http.NewServeMux()
	root.HandleFunc("GET /health", s.handleHealth)
	root.HandleFunc("GET /livez", s.handleLive)
	root.HandleFunc("GET /readyz", s.handleReady)
	root.HandleFunc("POST /auth/session", s.handleStartSession)
	if s.opts.WebDir != "" {
		root.Handle("GET /dashboard/", http.StripPrefix("/dashboard", dashboardFromDisk(s.opts.WebDir)))
	}
	root.Handle("/", s.sessionMiddleware(api))

	h := withRequestID(s.loggingMiddleware(root))
	// rs/cors reads an empty origin list as "*"; no origins means no CORS.
	if len(s.opts.AllowedOrigins) > 0 {
		h = cors.New(cors.Options{
			AllowedOrigins: s.opts.AllowedOrigins,
			AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete, http.MethodOptions},
			AllowedHeaders: []string{"Authorization", "Content-Type", requestIDHeader},
			ExposedHeaders: []string{requestIDHeader},
		}).Handler(h)
	}
	return withNoCache(h)
}
