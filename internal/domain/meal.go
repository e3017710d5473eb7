package domain

import "context"

// Meal is one logged meal.
type Meal struct {
	ID       int64   `json:"Meal_ID"`
	UserID   int64   `json:"User_ID"`
	MealName string  `json:"Meal_Name"`
	MealType *string `json:"Meal_Type"`
	Calories int64   `json:"Calories"`
	MealDate *Date   `json:"Meal_Date"`
	MealTime *Clock  `json:"Meal_Time"`
	Notes    *string `json:"Notes"`
}

// MealComment is dietitian feedback on a meal.
type MealComment struct {
	ID          int64  `json:"Comment_ID"`
	MealID      int64  `json:"Meal_ID"`
	DietitianID int64  `json:"Dietitian_ID"`
	CommentText string `json:"Comment_Text"`
	CommentDate *Date  `json:"Comment_Date"`
}

var MealSchema = Schema{
	{Column: "user_id", Names: []string{"User_ID"}, Kind: KindInt},
	{Column: "meal_name", Names: []string{"Meal_Name"}, Kind: KindText},
	{Column: "meal_type", Names: []string{"Meal_Type"}, Kind: KindText},
	{Column: "calories", Names: []string{"Calories"}, Kind: KindInt},
	{Column: "meal_date", Names: []string{"Meal_Date"}, Kind: KindDate},
	{Column: "meal_time", Names: []string{"Meal_Time"}, Kind: KindClock},
	{Column: "notes", Names: []string{"Notes"}, Kind: KindText},
}

// MealUpdateSchema is MealSchema minus ownership.
var MealUpdateSchema = MealSchema.Omit("user_id")

var MealCommentSchema = Schema{
	{Column: "dietitian_id", Names: []string{"Dietitian_ID"}, Kind: KindInt},
	{Column: "comment_text", Names: []string{"Comment_Text"}, Kind: KindText},
	{Column: "comment_date", Names: []string{"Comment_Date"}, Kind: KindDate},
}

// MealFilter narrows meal listings. Zero values mean no predicate.
type MealFilter struct {
	UserID    *int64
	StartDate *Date
	EndDate   *Date
	MealType  string
}

// MealRepository defines the port for meal persistence operations.
type MealRepository interface {
	List(ctx context.Context, f MealFilter) ([]Meal, error)
	Get(ctx context.Context, id int64) (*Meal, error)
	Create(ctx context.Context, fields []Assignment) (int64, error)
	Update(ctx context.Context, id int64, fields []Assignment) error
	Delete(ctx context.Context, id int64) error
	Comments(ctx context.Context, mealID int64) ([]MealComment, error)
	AddComment(ctx context.Context, mealID int64, fields []Assignment) (int64, error)
}
