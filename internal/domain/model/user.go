package model

import (
	"time"
)

const (
	RoleCustomer = "customer"
	RoleAdmin    = "admin"
)

type User struct {
	ID             string    `json:"_id" bson:"_id"`
	FullName       string    `json:"fullName" bson:"fullName"`
	Username       string    `json:"username" bson:"username"`
	Email          string    `json:"email" bson:"email"`
	HashedPassword string    `json:"-" bson:"password"` // Not exposed
	Role           string    `json:"role" bson:"role"`
	CreatedAt      time.Time `json:"createdAt" bson:"createdAt"`
}

// ValidRole reports whether role is one of the accepted user roles.
func ValidRole(role string) bool {
	return role == RoleCustomer || role == RoleAdmin
}

// Validate checks the fields every stored user must carry.
func (u *User) Validate() error {
	v := NewValidationError("User")
	v.Require("fullName", u.FullName != "")
	v.Require("username", u.Username != "")
	v.Require("email", u.Email != "")
	v.Require("password", u.HashedPassword != "")
	if u.Role != "" && !ValidRole(u.Role) {
		v.Fields = append(v.Fields, "role: `"+u.Role+"` is not a valid enum value")
	}
	return v.Err()
}
