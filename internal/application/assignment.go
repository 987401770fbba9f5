package application

import (
	"time"

	"github.com/agrisetu/registry-go/internal/domain/farmer"
	"github.com/agrisetu/registry-go/internal/notify"
	"github.com/agrisetu/registry-go/internal/repository"
)

// AssignmentService owns the farmer-to-employee relation and its
// invariant: ASSIGNED iff assignee set iff assigned date set.
type AssignmentService struct {
	Repos  *repository.Repos
	Notify *notify.Publisher
}

func NewAssignmentService(repos *repository.Repos, publisher *notify.Publisher) *AssignmentService {
	return &AssignmentService{Repos: repos, Notify: publisher}
}

type AssignFailure struct {
	FarmerID uint   `json:"farmer_id"`
	Reason   string `json:"reason"`
}

type BatchAssignResult struct {
	Assigned []farmer.Farmer `json:"assigned"`
	Failed   []AssignFailure `json:"failed"`
}

// AssignFarmers applies the batch best-effort: a missing employee fails
// the whole batch, a bad farmer id only fails that item. Each item runs
// in its own transaction so one failure never rolls back the rest.
func (s *AssignmentService) AssignFarmers(farmerIDs []uint, employeeID uint, actorID uint) (BatchAssignResult, error) {
	result := BatchAssignResult{
		Assigned: []farmer.Farmer{},
		Failed:   []AssignFailure{},
	}

	if _, err := s.Repos.Employee.FindByID(employeeID); err != nil {
		return result, translateNotFound(err)
	}

	now := time.Now()
	for _, id := range farmerIDs {
		var f farmer.Farmer
		err := s.Repos.ExecTx(func(tx *repository.Repos) error {
			var err error
			f, err = tx.Farmer.FindByID(id)
			if err != nil {
				return translateNotFound(err)
			}
			if f.AssignmentStatus == farmer.AssignmentStatusAssigned {
				return ErrConflict
			}

			f.AssignmentStatus = farmer.AssignmentStatusAssigned
			f.AssignedEmployeeID = &employeeID
			assignedAt := now
			f.AssignedDate = &assignedAt
			return tx.Farmer.Save(&f)
		})
		if err != nil {
			result.Failed = append(result.Failed, AssignFailure{FarmerID: id, Reason: err.Error()})
			continue
		}

		result.Assigned = append(result.Assigned, f)
		recordAudit(s.Repos, actorID, "assign", "farmer", f.ID, map[string]interface{}{"employee_id": employeeID})
		s.Notify.Publish(notify.Event{
			Type:        notify.EventFarmerAssigned,
			RecipientID: employeeID,
			Payload:     map[string]interface{}{"farmer_id": f.ID, "farmer_code": f.FarmerCode},
		})
	}

	return result, nil
}

// UnassignFarmer clears the relation, restoring UNASSIGNED with both
// assignee fields nil.
func (s *AssignmentService) UnassignFarmer(farmerID uint, actorID uint) (farmer.Farmer, error) {
	var f farmer.Farmer

	err := s.Repos.ExecTx(func(tx *repository.Repos) error {
		var err error
		f, err = tx.Farmer.FindByID(farmerID)
		if err != nil {
			return translateNotFound(err)
		}

		f.AssignmentStatus = farmer.AssignmentStatusUnassigned
		f.AssignedEmployeeID = nil
		f.AssignedDate = nil
		f.AssignedEmployee = nil
		return tx.Farmer.Save(&f)
	})
	if err != nil {
		return farmer.Farmer{}, err
	}

	recordAudit(s.Repos, actorID, "unassign", "farmer", f.ID, nil)
	return f, nil
}

func (s *AssignmentService) ListUnassigned() ([]farmer.Farmer, error) {
	status := farmer.AssignmentStatusUnassigned
	return s.Repos.Farmer.List(farmer.Filter{AssignmentStatus: &status})
}

func (s *AssignmentService) ListAssignedTo(employeeID uint) ([]farmer.Farmer, error) {
	if _, err := s.Repos.Employee.FindByID(employeeID); err != nil {
		return nil, translateNotFound(err)
	}
	return s.Repos.Farmer.List(farmer.Filter{AssignedEmployeeID: &employeeID})
}
