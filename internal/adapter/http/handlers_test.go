package adapthttp_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	adapthttp "fittrack/internal/adapter/http"
	"fittrack/internal/adapter/memory"
	"fittrack/internal/app"
	"fittrack/internal/domain"

	"golang.org/x/crypto/bcrypt"
)

// ---------------------------------------------------------------------------
// Mock repositories (function-fields pattern)
// ---------------------------------------------------------------------------

type mockUserRepo struct {
	domain.UserRepository
	getFn func(ctx context.Context, id int64) (*domain.User, error)
}

func (m *mockUserRepo) Get(ctx context.Context, id int64) (*domain.User, error) {
	if m.getFn != nil {
		return m.getFn(ctx, id)
	}
	return &domain.User{ID: id, FirstName: "Ada", IsActive: true}, nil
}

type mockMealRepo struct {
	domain.MealRepository
	getFn    func(ctx context.Context, id int64) (*domain.Meal, error)
	createFn func(ctx context.Context, fields []domain.Assignment) (int64, error)
	updateFn func(ctx context.Context, id int64, fields []domain.Assignment) error
	listFn   func(ctx context.Context, f domain.MealFilter) ([]domain.Meal, error)
}

func (m *mockMealRepo) Get(ctx context.Context, id int64) (*domain.Meal, error) {
	if m.getFn != nil {
		return m.getFn(ctx, id)
	}
	return &domain.Meal{ID: id, UserID: 1, MealName: "Oats", Calories: 350}, nil
}

func (m *mockMealRepo) Create(ctx context.Context, fields []domain.Assignment) (int64, error) {
	if m.createFn != nil {
		return m.createFn(ctx, fields)
	}
	return 7, nil
}

func (m *mockMealRepo) Update(ctx context.Context, id int64, fields []domain.Assignment) error {
	if m.updateFn != nil {
		return m.updateFn(ctx, id, fields)
	}
	return nil
}

func (m *mockMealRepo) List(ctx context.Context, f domain.MealFilter) ([]domain.Meal, error) {
	if m.listFn != nil {
		return m.listFn(ctx, f)
	}
	return []domain.Meal{}, nil
}

type mockCoachRepo struct {
	domain.CoachRepository
	getFn func(ctx context.Context, id int64) (*domain.Coach, error)
}

func (m *mockCoachRepo) Get(ctx context.Context, id int64) (*domain.Coach, error) {
	if m.getFn != nil {
		return m.getFn(ctx, id)
	}
	return &domain.Coach{ID: id, UserID: 2}, nil
}

func (m *mockCoachRepo) Delete(ctx context.Context, id int64) error {
	return nil
}

type mockDietitianRepo struct {
	domain.DietitianRepository
}

func (m *mockDietitianRepo) List(ctx context.Context) ([]domain.Dietitian, error) {
	return []domain.Dietitian{{ID: 1, UserID: 3}}, nil
}

type mockGoalRepo struct {
	domain.GoalRepository
	listFn func(ctx context.Context, f domain.GoalFilter) ([]domain.Goal, error)
}

func (m *mockGoalRepo) List(ctx context.Context, f domain.GoalFilter) ([]domain.Goal, error) {
	if m.listFn != nil {
		return m.listFn(ctx, f)
	}
	return []domain.Goal{}, nil
}

type stubPinger struct{ err error }

func (p stubPinger) PingContext(context.Context) error { return p.err }

// ---------------------------------------------------------------------------
// Test-server helper
// ---------------------------------------------------------------------------

type fixture struct {
	users    *mockUserRepo
	meals    *mockMealRepo
	coaches  *mockCoachRepo
	goals    *mockGoalRepo
	sessions *app.SessionService
	opts     adapthttp.Options
}

func newFixture() *fixture {
	users := &mockUserRepo{}
	return &fixture{
		users:    users,
		meals:    &mockMealRepo{},
		coaches:  &mockCoachRepo{},
		goals:    &mockGoalRepo{},
		sessions: app.NewSessionService(memory.NewSessionRepo(), users, time.Hour, bcrypt.MinCost),
	}
}

func (f *fixture) server(t *testing.T) *httptest.Server {
	t.Helper()

	userSvc := app.NewUserService(f.users)
	svc := adapthttp.Services{
		Users:      userSvc,
		Admin:      app.NewAdminService(userSvc, nil),
		Coaches:    app.NewCoachService(f.coaches),
		Dietitians: app.NewDietitianService(&mockDietitianRepo{}),
		Clients:    app.NewClientService(f.goals, f.meals, nil),
		Meals:      app.NewMealService(f.meals),
		Workouts:   app.NewWorkoutService(nil),
		Plans:      app.NewPlanService(nil),
		Sessions:   f.sessions,
	}
	return httptest.NewServer(adapthttp.New(svc, f.opts).Handler())
}

func do(t *testing.T, method, url, token string, body any) *http.Response {
	t.Helper()
	var rdr *bytes.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			t.Fatal(err)
		}
		rdr = bytes.NewReader(b)
	} else {
		rdr = bytes.NewReader(nil)
	}
	req, err := http.NewRequest(method, url, rdr)
	if err != nil {
		t.Fatal(err)
	}
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	return resp
}

func decodeBody(t *testing.T, resp *http.Response) map[string]any {
	t.Helper()
	var m map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&m); err != nil {
		t.Fatalf("failed to decode response body: %v", err)
	}
	return m
}

// ---------------------------------------------------------------------------
// Tests
// ---------------------------------------------------------------------------

func TestHealthEndpoint(t *testing.T) {
	ts := newFixture().server(t)
	defer ts.Close()

	resp := do(t, http.MethodGet, ts.URL+"/health", "", nil)
	defer resp.Body.Close() //nolint:errcheck

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	if body := decodeBody(t, resp); body["ok"] != true {
		t.Fatalf("expected ok=true, got %v", body["ok"])
	}
	if resp.Header.Get("X-Request-ID") == "" {
		t.Fatal("missing X-Request-ID header")
	}
}

func TestReadyzDegraded(t *testing.T) {
	f := newFixture()
	f.opts.Ready = stubPinger{err: errors.New("connection refused")}
	ts := f.server(t)
	defer ts.Close()

	resp := do(t, http.MethodGet, ts.URL+"/readyz", "", nil)
	defer resp.Body.Close() //nolint:errcheck

	if resp.StatusCode != http.StatusServiceUnavailable {
		t.Fatalf("expected 503, got %d", resp.StatusCode)
	}
	if body := decodeBody(t, resp); body["status"] != "degraded" {
		t.Fatalf("expected degraded, got %v", body["status"])
	}
}

func TestCreateMeal(t *testing.T) {
	f := newFixture()
	var got []domain.Assignment
	f.meals.createFn = func(_ context.Context, fields []domain.Assignment) (int64, error) {
		got = fields
		return 12, nil
	}
	ts := f.server(t)
	defer ts.Close()

	resp := do(t, http.MethodPost, ts.URL+"/meals", "", map[string]any{
		"user_id": 1, "Meal_Name": "Oats", "calories": 350, "Meal_Date": "2024-03-01",
	})
	defer resp.Body.Close() //nolint:errcheck

	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("expected 201, got %d", resp.StatusCode)
	}
	body := decodeBody(t, resp)
	if body["meal_id"] != float64(12) {
		t.Fatalf("expected meal_id 12, got %v", body["meal_id"])
	}
	if len(got) != 4 || got[0].Column != "user_id" || got[1].Column != "meal_name" {
		t.Fatalf("unexpected assignments: %+v", got)
	}
}

func TestCreateMealValidation(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"empty body", ""},
		{"null body", "null"},
		{"array body", "[1,2]"},
		{"bad json", "{"},
		{"missing calories", `{"user_id":1,"meal_name":"Oats"}`},
		{"calories not int", `{"user_id":1,"meal_name":"Oats","calories":"lots"}`},
		{"duplicate key", `{"user_id":1,"User_ID":2,"meal_name":"Oats","calories":1}`},
	}

	ts := newFixture().server(t)
	defer ts.Close()

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := http.Post(ts.URL+"/meals", "application/json", strings.NewReader(tt.body))
			if err != nil {
				t.Fatal(err)
			}
			defer resp.Body.Close() //nolint:errcheck
			if resp.StatusCode != http.StatusBadRequest {
				t.Fatalf("expected 400, got %d", resp.StatusCode)
			}
			if body := decodeBody(t, resp); body["error"] == "" {
				t.Fatal("expected error message")
			}
		})
	}
}

func TestUpdateMeal(t *testing.T) {
	tests := []struct {
		name       string
		path       string
		body       any
		missing    bool
		wantStatus int
	}{
		{"partial update", "/meals/3", map[string]any{"calories": 400}, false, http.StatusOK},
		{"no recognized fields", "/meals/3", map[string]any{}, false, http.StatusBadRequest},
		{"user_id not updatable", "/meals/3", map[string]any{"user_id": 9}, false, http.StatusBadRequest},
		{"missing meal", "/meals/3", map[string]any{"calories": 400}, true, http.StatusNotFound},
		{"bad id", "/meals/abc", map[string]any{"calories": 400}, false, http.StatusBadRequest},
		{"zero id", "/meals/0", map[string]any{"calories": 400}, false, http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture()
			if tt.missing {
				f.meals.getFn = func(context.Context, int64) (*domain.Meal, error) { return nil, nil }
			}
			ts := f.server(t)
			defer ts.Close()

			resp := do(t, http.MethodPut, ts.URL+tt.path, "", tt.body)
			defer resp.Body.Close() //nolint:errcheck
			if resp.StatusCode != tt.wantStatus {
				t.Fatalf("expected %d, got %d", tt.wantStatus, resp.StatusCode)
			}
		})
	}
}

func TestGetMealRendersDates(t *testing.T) {
	f := newFixture()
	f.meals.getFn = func(_ context.Context, id int64) (*domain.Meal, error) {
		d := domain.Date{Year: 2024, Month: time.March, Day: 1}
		c := domain.Clock{Hour: 8, Minute: 30}
		return &domain.Meal{ID: id, UserID: 1, MealName: "Oats", Calories: 350, MealDate: &d, MealTime: &c}, nil
	}
	ts := f.server(t)
	defer ts.Close()

	resp := do(t, http.MethodGet, ts.URL+"/meals/5", "", nil)
	defer resp.Body.Close() //nolint:errcheck

	body := decodeBody(t, resp)
	if body["Meal_Date"] != "2024-03-01" || body["Meal_Time"] != "08:30:00" {
		t.Fatalf("unexpected date rendering: %v", body)
	}
}

func TestDeleteMissingCoach(t *testing.T) {
	f := newFixture()
	f.coaches.getFn = func(context.Context, int64) (*domain.Coach, error) { return nil, nil }
	ts := f.server(t)
	defer ts.Close()

	resp := do(t, http.MethodDelete, ts.URL+"/coaches/99", "", nil)
	defer resp.Body.Close() //nolint:errcheck

	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", resp.StatusCode)
	}
	if body := decodeBody(t, resp); !strings.Contains(body["error"].(string), "coach") {
		t.Fatalf("unexpected error: %v", body["error"])
	}
}

func TestDietitianSpellings(t *testing.T) {
	ts := newFixture().server(t)
	defer ts.Close()

	for _, p := range []string{"/dietitians", "/dieticians"} {
		resp := do(t, http.MethodGet, ts.URL+p, "", nil)
		resp.Body.Close() //nolint:errcheck
		if resp.StatusCode != http.StatusOK {
			t.Fatalf("%s: expected 200, got %d", p, resp.StatusCode)
		}
	}
}

func TestListGoalsFilter(t *testing.T) {
	f := newFixture()
	var gotUser *int64
	f.goals.listFn = func(_ context.Context, gf domain.GoalFilter) ([]domain.Goal, error) {
		gotUser = gf.UserID
		return []domain.Goal{{ID: 1, UserID: 5, GoalType: "weight"}}, nil
	}
	ts := f.server(t)
	defer ts.Close()

	resp := do(t, http.MethodGet, ts.URL+"/clients/goals?user_id=5", "", nil)
	defer resp.Body.Close() //nolint:errcheck

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	if gotUser == nil || *gotUser != 5 {
		t.Fatalf("expected user filter 5, got %v", gotUser)
	}

	bad := do(t, http.MethodGet, ts.URL+"/clients/goals?user_id=x", "", nil)
	defer bad.Body.Close() //nolint:errcheck
	if bad.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", bad.StatusCode)
	}
}

func TestClientNutritionView(t *testing.T) {
	f := newFixture()
	var got domain.MealFilter
	f.meals.listFn = func(_ context.Context, mf domain.MealFilter) ([]domain.Meal, error) {
		got = mf
		return []domain.Meal{}, nil
	}
	ts := f.server(t)
	defer ts.Close()

	resp := do(t, http.MethodGet, ts.URL+"/clients/4/nutrition?start_date=2024-01-01&meal_type=lunch", "", nil)
	defer resp.Body.Close() //nolint:errcheck

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	if got.UserID == nil || *got.UserID != 4 || got.MealType != "lunch" || got.StartDate == nil || got.EndDate != nil {
		t.Fatalf("unexpected filter: %+v", got)
	}

	unknown := do(t, http.MethodGet, ts.URL+"/clients/4/sleep", "", nil)
	defer unknown.Body.Close() //nolint:errcheck
	if unknown.StatusCode != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", unknown.StatusCode)
	}
}

func TestSessionRequired(t *testing.T) {
	f := newFixture()
	f.opts.RequireSession = true
	ts := f.server(t)
	defer ts.Close()

	resp := do(t, http.MethodGet, ts.URL+"/meals", "", nil)
	resp.Body.Close() //nolint:errcheck
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("expected 401 without token, got %d", resp.StatusCode)
	}

	resp = do(t, http.MethodGet, ts.URL+"/meals", "not-a-token", nil)
	resp.Body.Close() //nolint:errcheck
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("expected 401 with bad token, got %d", resp.StatusCode)
	}

	start := do(t, http.MethodPost, ts.URL+"/auth/session", "", map[string]any{"user_id": 1, "role": "Coach"})
	defer start.Body.Close() //nolint:errcheck
	if start.StatusCode != http.StatusCreated {
		t.Fatalf("expected 201, got %d", start.StatusCode)
	}
	body := decodeBody(t, start)
	token, _ := body["token"].(string)
	if token == "" || body["role"] != "coach" {
		t.Fatalf("unexpected session response: %v", body)
	}

	resp = do(t, http.MethodGet, ts.URL+"/meals", token, nil)
	resp.Body.Close() //nolint:errcheck
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200 with token, got %d", resp.StatusCode)
	}

	who := do(t, http.MethodGet, ts.URL+"/auth/session", token, nil)
	defer who.Body.Close() //nolint:errcheck
	if got := decodeBody(t, who); got["user_id"] != float64(1) || got["token"] != nil {
		t.Fatalf("unexpected session description: %v", got)
	}

	resp = do(t, http.MethodDelete, ts.URL+"/auth/session", token, nil)
	resp.Body.Close() //nolint:errcheck
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200 on logout, got %d", resp.StatusCode)
	}

	resp = do(t, http.MethodGet, ts.URL+"/meals", token, nil)
	resp.Body.Close() //nolint:errcheck
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("expected 401 after logout, got %d", resp.StatusCode)
	}
}

func TestStartSessionInactiveUser(t *testing.T) {
	f := newFixture()
	f.users.getFn = func(_ context.Context, id int64) (*domain.User, error) {
		return &domain.User{ID: id, IsActive: false}, nil
	}
	ts := f.server(t)
	defer ts.Close()

	resp := do(t, http.MethodPost, ts.URL+"/auth/session", "", map[string]any{"user_id": 1, "role": "user"})
	defer resp.Body.Close() //nolint:errcheck
	if resp.StatusCode != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", resp.StatusCode)
	}
}

func TestDashboardFallback(t *testing.T) {
	f := newFixture()
	f.opts.WebDir = t.TempDir()
	if err := os.WriteFile(filepath.Join(f.opts.WebDir, "index.html"), []byte("<html></html>"), 0o600); err != nil {
		t.Fatal(err)
	}
	ts := f.server(t)
	defer ts.Close()

	resp := do(t, http.MethodGet, ts.URL+"/dashboard/meals/list", "", nil)
	defer resp.Body.Close() //nolint:errcheck
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	if cc := resp.Header.Get("Cache-Control"); cc != "no-store" {
		t.Fatalf("expected no-store, got %q", cc)
	}
}

func TestCORSOrigins(t *testing.T) {
	tests := []struct {
		name    string
		origins []string
		origin  string
		want    string
	}{
		{"no origins configured", nil, "http://evil.example", ""},
		{"allowed origin", []string{"http://dash.example"}, "http://dash.example", "http://dash.example"},
		{"other origin", []string{"http://dash.example"}, "http://evil.example", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture()
			f.opts.AllowedOrigins = tt.origins
			ts := f.server(t)
			defer ts.Close()

			req, err := http.NewRequest(http.MethodGet, ts.URL+"/health", nil)
			if err != nil {
				t.Fatal(err)
			}
			req.Header.Set("Origin", tt.origin)
			resp, err := http.DefaultClient.Do(req)
			if err != nil {
				t.Fatalf("request failed: %v", err)
			}
			defer resp.Body.Close() //nolint:errcheck

			if got := resp.Header.Get("Access-Control-Allow-Origin"); got != tt.want {
				t.Fatalf("Access-Control-Allow-Origin = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestCreateMealTrailingData(t *testing.T) {
	ts := newFixture().server(t)
	defer ts.Close()

	tests := []struct {
		name string
		body string
		want int
	}{
		{"trailing garbage", `{"user_id":1,"meal_name":"Oats","calories":1} garbage`, http.StatusBadRequest},
		{"second object", `{"user_id":1,"meal_name":"Oats","calories":1}{}`, http.StatusBadRequest},
		{"trailing whitespace", "{\"user_id\":1,\"meal_name\":\"Oats\",\"calories\":1}\n  ", http.StatusCreated},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := http.Post(ts.URL+"/meals", "application/json", strings.NewReader(tt.body))
			if err != nil {
				t.Fatal(err)
			}
			defer resp.Body.Close() //nolint:errcheck
			if resp.StatusCode != tt.want {
				t.Fatalf("expected %d, got %d", tt.want, resp.StatusCode)
			}
		})
	}
}
