package entity

import "fmt"

type Role string

const (
	RoleAdmin     Role = "admin"
	RoleMarketing Role = "marketing"
)

func (r Role) Valid() bool {
	return r == RoleAdmin || r == RoleMarketing
}

// User is the operator of the session. Exactly one role is active at a time;
// a role switch replaces the whole record, display name included.
type User struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Role   Role   `json:"role"`
	Avatar string `json:"avatar,omitempty"`
}

func (u *User) Validate() error {
	if u.ID == "" {
		return fmt.Errorf("user id is required")
	}
	if !u.Role.Valid() {
		return fmt.Errorf("invalid role %q", u.Role)
	}
	return nil
}
