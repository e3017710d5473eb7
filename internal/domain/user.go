package domain

import "context"

// User is a dashboard account. Deleting a user only clears IsActive.
type User struct {
	ID               int64   `json:"User_ID"`
	FirstName        string  `json:"First_Name"`
	LastName         string  `json:"Last_Name"`
	Email            string  `json:"Email"`
	Phone            *string `json:"Phone"`
	Birthdate        *Date   `json:"Birthdate"`
	Gender           *string `json:"Gender"`
	RegistrationDate *Date   `json:"Registration_Date"`
	IsActive         bool    `json:"Is_Active"`
	RoleName         *string `json:"Role_Name,omitempty"`
}

// Role is a row of the roles lookup table.
type Role struct {
	ID   int64  `json:"Role_ID"`
	Name string `json:"Role_Name"`
}

// UserSchema lists the fields POST and PUT /users accept.
var UserSchema = Schema{
	{Column: "first_name", Names: []string{"First_Name"}, Kind: KindText},
	{Column: "last_name", Names: []string{"Last_Name"}, Kind: KindText},
	{Column: "email", Names: []string{"Email"}, Kind: KindText},
	{Column: "phone", Names: []string{"Phone"}, Kind: KindText},
	{Column: "birthdate", Names: []string{"Birthdate"}, Kind: KindDate},
	{Column: "gender", Names: []string{"Gender"}, Kind: KindText},
	{Column: "registration_date", Names: []string{"Registration_Date"}, Kind: KindDate},
	{Column: "is_active", Names: []string{"Is_Active"}, Kind: KindBool},
}

// UserFilter narrows GET /users.
type UserFilter struct {
	Active *bool
}

// UserRepository defines the port for user persistence operations.
// Get returns nil, nil when the row does not exist.
type UserRepository interface {
	Get(ctx context.Context, id int64) (*User, error)
	List(ctx context.Context, f UserFilter) ([]User, error)
	ListWithRoles(ctx context.Context) ([]User, error)
	Create(ctx context.Context, fields []Assignment) (int64, error)
	Update(ctx context.Context, id int64, fields []Assignment) error
	// Deactivate soft-deletes the user and records an audit entry for
	// actorID (0 when unknown). It reports false if no row matched.
	Deactivate(ctx context.Context, id, actorID int64) (bool, error)
}
