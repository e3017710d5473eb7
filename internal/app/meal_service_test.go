package app_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"fittrack/internal/app"
	"fittrack/internal/domain"
)

func payload(t *testing.T, raw map[string]any) domain.Payload {
	t.Helper()
	p, err := domain.NewPayload(raw)
	if err != nil {
		t.Fatalf("NewPayload: %v", err)
	}
	return p
}

func TestMealCreate_RequiredFields(t *testing.T) {
	svc := app.NewMealService(&mockMealRepo{})

	tests := []struct {
		name  string
		raw   map[string]any
		field string
	}{
		{"missing user", map[string]any{"Meal_Name": "Oats", "Calories": json.Number("300")}, "User_ID"},
		{"missing name", map[string]any{"User_ID": json.Number("1"), "Calories": json.Number("300")}, "Meal_Name"},
		{"null calories", map[string]any{"User_ID": json.Number("1"), "Meal_Name": "Oats", "Calories": nil}, "Calories"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Create(context.Background(), payload(t, tc.raw))
			var ve *domain.ValidationError
			if !errors.As(err, &ve) {
				t.Fatalf("err = %v, want ValidationError", err)
			}
			if ve.Field != tc.field {
				t.Errorf("field = %q, want %q", ve.Field, tc.field)
			}
		})
	}
}

func TestMealCreate_Success(t *testing.T) {
	var got []domain.Assignment
	repo := &mockMealRepo{
		createFn: func(_ context.Context, fields []domain.Assignment) (int64, error) {
			got = fields
			return 42, nil
		},
	}
	svc := app.NewMealService(repo)

	id, err := svc.Create(context.Background(), payload(t, map[string]any{
		"User_ID":   json.Number("1"),
		"Meal_Name": "Oatmeal",
		"Calories":  json.Number("350"),
		"Meal_Date": "2024-01-15",
	}))
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if id != 42 {
		t.Errorf("id = %d, want 42", id)
	}
	if len(got) != 4 || got[0].Column != "user_id" || got[3].Column != "meal_date" {
		t.Errorf("fields = %v", got)
	}
}

func TestMealUpdate(t *testing.T) {
	existing := &domain.Meal{ID: 7, UserID: 1, MealName: "Oats", Calories: 300}

	t.Run("missing meal is not found before body is checked", func(t *testing.T) {
		updated := false
		svc := app.NewMealService(&mockMealRepo{
			updateFn: func(context.Context, int64, []domain.Assignment) error { updated = true; return nil },
		})
		err := svc.Update(context.Background(), 7, payload(t, map[string]any{}))
		if !errors.Is(err, domain.ErrNotFound) {
			t.Fatalf("err = %v, want ErrNotFound", err)
		}
		if updated {
			t.Error("update must not run")
		}
	})

	t.Run("empty payload", func(t *testing.T) {
		svc := app.NewMealService(&mockMealRepo{
			getFn: func(context.Context, int64) (*domain.Meal, error) { return existing, nil },
			updateFn: func(context.Context, int64, []domain.Assignment) error {
				t.Fatal("update must not run")
				return nil
			},
		})
		err := svc.Update(context.Background(), 7, payload(t, map[string]any{}))
		if !errors.Is(err, domain.ErrEmptyUpdate) {
			t.Fatalf("err = %v, want ErrEmptyUpdate", err)
		}
	})

	t.Run("nil body", func(t *testing.T) {
		svc := app.NewMealService(&mockMealRepo{})
		if err := svc.Update(context.Background(), 7, nil); !errors.Is(err, domain.ErrBodyRequired) {
			t.Fatalf("err = %v, want ErrBodyRequired", err)
		}
	})

	t.Run("user id is not updatable", func(t *testing.T) {
		var got []domain.Assignment
		svc := app.NewMealService(&mockMealRepo{
			getFn: func(context.Context, int64) (*domain.Meal, error) { return existing, nil },
			updateFn: func(_ context.Context, _ int64, fields []domain.Assignment) error {
				got = fields
				return nil
			},
		})
		err := svc.Update(context.Background(), 7, payload(t, map[string]any{"User_ID": json.Number("2"), "Calories": json.Number("320")}))
		if err != nil {
			t.Fatalf("Update: %v", err)
		}
		if len(got) != 1 || got[0].Column != "calories" {
			t.Errorf("fields = %v", got)
		}
	})
}

func TestMealAddComment_MissingMeal(t *testing.T) {
	svc := app.NewMealService(&mockMealRepo{})
	_, err := svc.AddComment(context.Background(), 3, payload(t, map[string]any{
		"Dietitian_ID": json.Number("2"),
		"Comment_Text": "more protein",
	}))
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

func TestMealGet_RepoError(t *testing.T) {
	boom := errors.New("connection reset")
	svc := app.NewMealService(&mockMealRepo{
		getFn: func(context.Context, int64) (*domain.Meal, error) { return nil, boom },
	})
	_, err := svc.Get(context.Background(), 1)
	if !errors.Is(err, boom) {
		t.Fatalf("err = %v, want wrapped repo error", err)
	}
	if errors.Is(err, domain.ErrNotFound) {
		t.Error("repo failure must not look like not found")
	}
}
