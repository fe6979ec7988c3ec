package domain

type UserRole string

const (
	RoleAdmin   UserRole = "admin"
	RoleManager UserRole = "manager"
	RoleStaff   UserRole = "staff"
)

// User is the operator of the dashboard. There is a single default account.
type User struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      UserRole  `json:"role"`
	Avatar    string    `json:"avatar,omitempty"`
	CreatedAt Timestamp `json:"createdAt"`
	IsActive  bool      `json:"isActive"`
}

// DefaultUser returns the built-in manager account.
func DefaultUser(at Timestamp) User {
	return User{
		ID:        "1",
		Name:      "Restaurant Manager",
		Email:     "manager@restaurant.com",
		Role:      RoleAdmin,
		CreatedAt: at,
		IsActive:  true,
	}
}
