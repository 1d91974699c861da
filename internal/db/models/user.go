package models

import "time"

// User roles, stored lowercase.
const (
	RoleGuest  = "guest"
	RoleBuyer  = "buyer"
	RoleVendor = "vendor"
	RoleAdmin  = "admin"
)

type User struct {
	ID        int       `db:"id" json:"id"`
	UID       string    `db:"uid" json:"uid"`
	Name      string    `db:"name" json:"name"`
	Email     string    `db:"email" json:"email"`
	Role      string    `db:"role" json:"role"`
	IsFraud   bool      `db:"is_fraud" json:"isFraud"`
	CreatedAt time.Time `db:"created_at" json:"createdAt"`
}

// PublicUser is the projection returned by registration and lookup.
type PublicUser struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

func (u *User) Public() PublicUser {
	return PublicUser{Name: u.Name, Email: u.Email, Role: u.Role}
}
