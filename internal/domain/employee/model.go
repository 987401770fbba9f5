package employee

import "gorm.io/gorm"

type Status string

const (
	StatusActive   Status = "ACTIVE"
	StatusInactive Status = "INACTIVE"
	StatusPending  Status = "PENDING"
)

// Employee processes farmer KYC submissions. An employee may hold any
// number of farmer assignments.
type Employee struct {
	gorm.Model
	Name        string `json:"name"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	Designation string `json:"designation"`
	Department  string `json:"department"`
	Status      Status `json:"status" gorm:"default:'ACTIVE';index"`
}
