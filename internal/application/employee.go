package application

import (
	"fmt"
	"strings"

	"github.com/agrisetu/registry-go/internal/domain/employee"
	"github.com/agrisetu/registry-go/internal/repository"
)

type EmployeeService struct {
	Repos *repository.Repos
}

func NewEmployeeService(repos *repository.Repos) *EmployeeService {
	return &EmployeeService{Repos: repos}
}

func (s *EmployeeService) CreateEmployee(input employee.CreateEmployeeDTO, actorID uint) (*employee.Employee, error) {
	if strings.TrimSpace(input.Name) == "" || strings.TrimSpace(input.Email) == "" {
		return nil, fmt.Errorf("%w: name and email are required", ErrValidation)
	}

	e := &employee.Employee{
		Name:        input.Name,
		Email:       input.Email,
		Phone:       input.Phone,
		Designation: input.Designation,
		Department:  input.Department,
		Status:      employee.StatusActive,
	}
	if err := s.Repos.Employee.Create(e); err != nil {
		return nil, err
	}

	recordAudit(s.Repos, actorID, "create", "employee", e.ID, nil)
	return e, nil
}

func (s *EmployeeService) GetEmployee(id uint) (employee.Employee, error) {
	e, err := s.Repos.Employee.FindByID(id)
	if err != nil {
		return employee.Employee{}, translateNotFound(err)
	}
	return e, nil
}

func (s *EmployeeService) ListEmployees(filter employee.Filter) ([]employee.Employee, error) {
	return s.Repos.Employee.List(filter)
}

func (s *EmployeeService) UpdateEmployee(id uint, input employee.UpdateEmployeeDTO, actorID uint) (employee.Employee, error) {
	e, err := s.Repos.Employee.FindByID(id)
	if err != nil {
		return employee.Employee{}, translateNotFound(err)
	}

	if input.Name != nil {
		e.Name = *input.Name
	}
	if input.Email != nil {
		e.Email = *input.Email
	}
	if input.Phone != nil {
		e.Phone = *input.Phone
	}
	if input.Designation != nil {
		e.Designation = *input.Designation
	}
	if input.Department != nil {
		e.Department = *input.Department
	}
	if input.Status != nil {
		e.Status = *input.Status
	}

	if err := s.Repos.Employee.Save(&e); err != nil {
		return employee.Employee{}, err
	}

	recordAudit(s.Repos, actorID, "update", "employee", e.ID, nil)
	return e, nil
}

// DeleteEmployee removes the record after nulling out every farmer
// assignment pointing at it, all in one transaction. Cascade-null was
// chosen over forbid-delete so stale staff can always be retired;
// their farmers fall back into the unassigned pool.
func (s *EmployeeService) DeleteEmployee(id uint, actorID uint) error {
	if _, err := s.Repos.Employee.FindByID(id); err != nil {
		return translateNotFound(err)
	}

	err := s.Repos.ExecTx(func(tx *repository.Repos) error {
		if err := tx.Farmer.UnassignAllForEmployee(id); err != nil {
			return err
		}
		return tx.Employee.Delete(id)
	})
	if err != nil {
		return err
	}

	recordAudit(s.Repos, actorID, "delete", "employee", id, nil)
	return nil
}
