package domain

import "context"

// Workout is one logged training session.
type Workout struct {
	ID              int64   `json:"Workout_ID"`
	UserID          int64   `json:"User_ID"`
	WorkoutDate     Date    `json:"Workout_Date"`
	WorkoutType     *string `json:"Workout_Type"`
	DurationMinutes *int64  `json:"Duration_Minutes"`
	CaloriesBurned  *int64  `json:"Calories_Burned"`
	Notes           *string `json:"Notes"`
}

// WeightMetric is one body weight reading.
type WeightMetric struct {
	ID         int64   `json:"Metric_ID"`
	UserID     int64   `json:"User_ID"`
	WeightDate Date    `json:"Weight_Date"`
	Weight     float64 `json:"Weight"`
	Unit       *string `json:"Unit"`
}

var WorkoutSchema = Schema{
	{Column: "user_id", Names: []string{"User_ID"}, Kind: KindInt},
	{Column: "workout_date", Names: []string{"Workout_Date"}, Kind: KindDate},
	{Column: "workout_type", Names: []string{"Workout_Type"}, Kind: KindText},
	{Column: "duration_minutes", Names: []string{"Duration_Minutes"}, Kind: KindInt},
	{Column: "calories_burned", Names: []string{"Calories_Burned"}, Kind: KindInt},
	{Column: "notes", Names: []string{"Notes"}, Kind: KindText},
}

var WorkoutUpdateSchema = WorkoutSchema.Omit("user_id")

var WeightMetricSchema = Schema{
	{Column: "user_id", Names: []string{"User_ID"}, Kind: KindInt},
	{Column: "weight_date", Names: []string{"Weight_Date"}, Kind: KindDate},
	{Column: "weight", Names: []string{"Weight"}, Kind: KindFloat},
	{Column: "unit", Names: []string{"Unit"}, Kind: KindText},
}

// WorkoutFilter narrows workout listings.
type WorkoutFilter struct {
	UserID      *int64
	StartDate   *Date
	EndDate     *Date
	WorkoutType string
}

// WeightFilter narrows weight metric listings.
type WeightFilter struct {
	UserID    *int64
	StartDate *Date
	EndDate   *Date
}

// WorkoutRepository defines the port for workout and weight persistence.
type WorkoutRepository interface {
	List(ctx context.Context, f WorkoutFilter) ([]Workout, error)
	Get(ctx context.Context, id int64) (*Workout, error)
	Create(ctx context.Context, fields []Assignment) (int64, error)
	Update(ctx context.Context, id int64, fields []Assignment) error
	Delete(ctx context.Context, id int64) error
	WeightMetrics(ctx context.Context, f WeightFilter) ([]WeightMetric, error)
	RecordWeight(ctx context.Context, fields []Assignment) (int64, error)
}
