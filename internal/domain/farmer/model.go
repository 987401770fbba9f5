package farmer

import (
	"time"

	"github.com/agrisetu/registry-go/internal/domain/employee"
	"gorm.io/gorm"
)

type KycStatus string

const (
	KycStatusNotStarted KycStatus = "NOT_STARTED"
	KycStatusPending    KycStatus = "PENDING"
	KycStatusApproved   KycStatus = "APPROVED"
	KycStatusRejected   KycStatus = "REJECTED"
	KycStatusReferBack  KycStatus = "REFER_BACK"
)

type AssignmentStatus string

const (
	AssignmentStatusUnassigned AssignmentStatus = "UNASSIGNED"
	AssignmentStatusAssigned   AssignmentStatus = "ASSIGNED"
)

// Farmer is a registry record moving through the KYC workflow.
// Invariant: AssignmentStatus == ASSIGNED iff AssignedEmployeeID != nil
// iff AssignedDate != nil. The assignee is referenced by id; the display
// name is resolved at read time via the preloaded association.
type Farmer struct {
	gorm.Model
	FarmerCode         string             `json:"farmer_code" gorm:"uniqueIndex"`
	Name               string             `json:"name"`
	Phone              string             `json:"phone"`
	State              string             `json:"state" gorm:"index"`
	District           string             `json:"district" gorm:"index"`
	Region             string             `json:"region"`
	KycStatus          KycStatus          `json:"kyc_status" gorm:"default:'PENDING';index"`
	KycReason          string             `json:"kyc_reason"` // last reject/refer-back reason
	ReviewedBy         *uint              `json:"reviewed_by"`
	AssignmentStatus   AssignmentStatus   `json:"assignment_status" gorm:"default:'UNASSIGNED';index"`
	AssignedEmployeeID *uint              `json:"assigned_employee_id" gorm:"index"`
	AssignedDate       *time.Time         `json:"assigned_date"`
	AssignedEmployee   *employee.Employee `json:"assigned_employee,omitempty" gorm:"foreignKey:AssignedEmployeeID"`
}

// Assigned reports whether the three assignment fields are consistent
// and set. Used by tests and the unassign path.
func (f *Farmer) Assigned() bool {
	return f.AssignmentStatus == AssignmentStatusAssigned &&
		f.AssignedEmployeeID != nil && f.AssignedDate != nil
}
