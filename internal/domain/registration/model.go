package registration

import (
	"time"

	"gorm.io/gorm"
)

type Status string

const (
	StatusPending  Status = "PENDING"
	StatusApproved Status = "APPROVED"
	StatusRejected Status = "REJECTED"
)

type Role string

const (
	RoleFarmer     Role = "FARMER"
	RoleEmployee   Role = "EMPLOYEE"
	RoleAdmin      Role = "ADMIN"
	RoleSuperAdmin Role = "SUPER_ADMIN"
	RoleFPO        Role = "FPO"
)

// Registration is a self-service signup awaiting admin review.
// Review fields stay nil until the matching transition fires;
// APPROVED and REJECTED are terminal.
type Registration struct {
	gorm.Model
	Name            string     `json:"name"`
	Email           string     `json:"email"`
	Phone           string     `json:"phone"`
	Role            Role       `json:"role" gorm:"index"`
	Status          Status     `json:"status" gorm:"default:'PENDING';index"`
	ReviewedBy      *uint      `json:"reviewed_by"`
	ReviewedDate    *time.Time `json:"reviewed_date"`
	ApprovalDate    *time.Time `json:"approval_date"`
	RejectionReason *string    `json:"rejection_reason"`
}

var transitions = map[Status][]Status{
	StatusPending:  {StatusApproved, StatusRejected},
	StatusApproved: {},
	StatusRejected: {},
}

func CanTransition(from, to Status) bool {
	for _, next := range transitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

func ValidRole(r Role) bool {
	switch r {
	case RoleFarmer, RoleEmployee, RoleAdmin, RoleSuperAdmin, RoleFPO:
		return true
	}
	return false
}
