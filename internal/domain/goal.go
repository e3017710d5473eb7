package domain

import "context"

// Goal is a client target such as a weight or calorie goal.
type Goal struct {
	ID          int64    `json:"Goal_ID"`
	UserID      int64    `json:"User_ID"`
	GoalType    string   `json:"Goal_Type"`
	StartTime   *Date    `json:"Start_Time"`
	EndTime     *Date    `json:"End_Time"`
	TargetValue *float64 `json:"Target_Value"`
	Description *string  `json:"Description"`
}

// GoalSchema accepts the legacy dashboard names as lower priority aliases.
var GoalSchema = Schema{
	{Column: "user_id", Names: []string{"User_ID"}, Kind: KindInt},
	{Column: "goal_type", Names: []string{"Goal_Type", "Type"}, Kind: KindText},
	{Column: "start_time", Names: []string{"Start_Time", "Start_Date"}, Kind: KindDate},
	{Column: "end_time", Names: []string{"End_Time", "Target_Date"}, Kind: KindDate},
	{Column: "target_value", Names: []string{"Target_Value"}, Kind: KindFloat},
	{Column: "description", Names: []string{"Description"}, Kind: KindText},
}

// GoalFilter narrows GET /clients/goals.
type GoalFilter struct {
	UserID *int64
}

// GoalRepository defines the port for goal persistence operations.
type GoalRepository interface {
	List(ctx context.Context, f GoalFilter) ([]Goal, error)
	Get(ctx context.Context, id int64) (*Goal, error)
	Create(ctx context.Context, fields []Assignment) (int64, error)
	Update(ctx context.Context, id int64, fields []Assignment) error
	Delete(ctx context.Context, id int64) error
}
