package domain

import "context"

// Plan is a training plan assigned to a client.
type Plan struct {
	ID          int64   `json:"Plan_ID"`
	PlanName    string  `json:"Plan_Name"`
	ClientID    int64   `json:"Client_ID"`
	StartDate   *Date   `json:"Start_Date"`
	EndDate     *Date   `json:"End_Date"`
	Description *string `json:"Description"`
}

// Exercise is an entry of the exercise library.
type Exercise struct {
	ID           int64   `json:"Exercise_ID"`
	ExerciseName string  `json:"Exercise_Name"`
	VideoURL     string  `json:"Video_URL"`
	Description  *string `json:"Description"`
	MuscleGroup  *string `json:"Muscle_Group"`
}

// PlanExercise is an exercise scheduled in a plan, joined with its library entry.
type PlanExercise struct {
	PlanID       int64  `json:"Plan_ID"`
	ExerciseID   int64  `json:"Exercise_ID"`
	Sets         int64  `json:"Sets"`
	Reps         int64  `json:"Reps"`
	ExerciseName string `json:"Exercise_Name"`
	VideoURL     string `json:"Video_URL"`
}

var PlanSchema = Schema{
	{Column: "plan_name", Names: []string{"Plan_Name"}, Kind: KindText},
	{Column: "client_id", Names: []string{"Client_ID"}, Kind: KindInt},
	{Column: "start_date", Names: []string{"Start_Date"}, Kind: KindDate},
	{Column: "end_date", Names: []string{"End_Date"}, Kind: KindDate},
	{Column: "description", Names: []string{"Description"}, Kind: KindText},
}

var ExerciseSchema = Schema{
	{Column: "exercise_name", Names: []string{"Exercise_Name"}, Kind: KindText},
	{Column: "video_url", Names: []string{"Video_URL"}, Kind: KindText},
	{Column: "description", Names: []string{"Description"}, Kind: KindText},
	{Column: "muscle_group", Names: []string{"Muscle_Group"}, Kind: KindText},
}

// PlanExerciseSchema carries the sets and reps of a scheduled exercise.
var PlanExerciseSchema = Schema{
	{Column: "sets", Names: []string{"sets"}, Kind: KindInt},
	{Column: "reps", Names: []string{"reps"}, Kind: KindInt},
}

// PlanRepository defines the port for plan and exercise persistence.
type PlanRepository interface {
	List(ctx context.Context) ([]Plan, error)
	Get(ctx context.Context, id int64) (*Plan, error)
	Create(ctx context.Context, fields []Assignment) (int64, error)
	Exercises(ctx context.Context, planID int64) ([]PlanExercise, error)
	AddExercise(ctx context.Context, planID, exerciseID int64, fields []Assignment) error
	// UpdateExercise reports false when the plan has no such exercise.
	UpdateExercise(ctx context.Context, planID, exerciseID int64, fields []Assignment) (bool, error)
	Library(ctx context.Context) ([]Exercise, error)
	GetExercise(ctx context.Context, id int64) (*Exercise, error)
	CreateExercise(ctx context.Context, fields []Assignment) (int64, error)
}
