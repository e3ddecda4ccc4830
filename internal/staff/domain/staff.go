package domain

import posdomain "github.com/ridloal/pos-web-client/internal/posapi/domain"

const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

// Roles are the account roles the backend knows.
var Roles = []string{RoleAdmin, RoleUser}

type UserTable struct {
	Rows  []posdomain.User
	Error string
}

// UserInput is the staff account form. Password is required for new
// accounts and left unchanged on update when blank.
type UserInput struct {
	ID       string `form:"userId" json:"userId"`
	Username string `form:"username" json:"username"`
	Name     string `form:"name" json:"name"`
	Email    string `form:"email" json:"email"`
	Role     string `form:"role" json:"role"`
	Password string `form:"password" json:"password"`
}
