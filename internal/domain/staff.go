package domain

import (
	"context"
	"time"
)

// Coach links a user to a coaching specialization.
type Coach struct {
	ID             int64   `json:"coach_id"`
	UserID         int64   `json:"user_id"`
	Specialization *string `json:"specialization"`
	Terminator     *string `json:"terminator"`
}

// Dietitian links a user to a dietitian license.
type Dietitian struct {
	ID             int64   `json:"dietitian_id"`
	UserID         int64   `json:"user_id"`
	LicenseNumber  *string `json:"license_number"`
	Specialization *string `json:"specialization"`
}

// Notification is a message raised for a coach about one of their clients.
type Notification struct {
	ID               int64     `json:"Notification_ID"`
	CoachID          int64     `json:"Coach_ID"`
	UserID           *int64    `json:"User_ID"`
	NotificationType string    `json:"Notification_Type"`
	Message          *string   `json:"Message"`
	NotificationDate time.Time `json:"Notification_Date"`
}

// NotificationMissedWorkout is the only type the coach view lists.
const NotificationMissedWorkout = "missed_workout"

var CoachSchema = Schema{
	{Column: "user_id", Names: []string{"user_id"}, Kind: KindInt},
	{Column: "specialization", Names: []string{"specialization"}, Kind: KindText},
	{Column: "terminator", Names: []string{"terminator"}, Kind: KindText},
}

var DietitianSchema = Schema{
	{Column: "user_id", Names: []string{"user_id"}, Kind: KindInt},
	{Column: "license_number", Names: []string{"license_number"}, Kind: KindText},
	{Column: "specialization", Names: []string{"specialization"}, Kind: KindText},
}

// CoachRepository defines the port for coach persistence operations.
type CoachRepository interface {
	List(ctx context.Context) ([]Coach, error)
	Get(ctx context.Context, id int64) (*Coach, error)
	Create(ctx context.Context, fields []Assignment) (int64, error)
	Update(ctx context.Context, id int64, fields []Assignment) error
	Delete(ctx context.Context, id int64) error
	Notifications(ctx context.Context, coachID int64, kind string) ([]Notification, error)
}

// DietitianRepository defines the port for dietitian persistence operations.
type DietitianRepository interface {
	List(ctx context.Context) ([]Dietitian, error)
	Get(ctx context.Context, id int64) (*Dietitian, error)
	Create(ctx context.Context, fields []Assignment) (int64, error)
	Update(ctx context.Context, id int64, fields []Assignment) error
	Delete(ctx context.Context, id int64) error
}
