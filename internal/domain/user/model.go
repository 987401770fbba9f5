package user

import "gorm.io/gorm"

// User is an authentication principal. Users are created through
// self-registration approval or by the seed tool.
type User struct {
	gorm.Model
	Username string `json:"username" gorm:"uniqueIndex"`
	Password string `json:"-"`
	Email    string `json:"email"`
	FullName string `json:"full_name"`
	Role     string `json:"role" gorm:"default:'EMPLOYEE'"`
	Status   string `json:"status" gorm:"default:'ACTIVE'"`
}
