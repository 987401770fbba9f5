package application

import (
	"fmt"
	"strings"

	"github.com/agrisetu/registry-go/internal/domain/farmer"
	"github.com/agrisetu/registry-go/internal/notify"
	"github.com/agrisetu/registry-go/internal/repository"
	"github.com/segmentio/ksuid"
)

type FarmerService struct {
	Repos  *repository.Repos
	Notify *notify.Publisher
}

func NewFarmerService(repos *repository.Repos, publisher *notify.Publisher) *FarmerService {
	return &FarmerService{Repos: repos, Notify: publisher}
}

// NewFarmerCode issues a collision-free public registry number.
// Overridable so tests get deterministic codes.
var NewFarmerCode = func() string {
	return "FRM-" + ksuid.New().String()
}

func (s *FarmerService) CreateFarmer(input farmer.CreateFarmerDTO, actorID uint) (*farmer.Farmer, error) {
	for field, val := range map[string]string{
		"name":     input.Name,
		"phone":    input.Phone,
		"state":    input.State,
		"district": input.District,
	} {
		if strings.TrimSpace(val) == "" {
			return nil, fmt.Errorf("%w: %s is required", ErrValidation, field)
		}
	}

	f := &farmer.Farmer{
		FarmerCode:       NewFarmerCode(),
		Name:             input.Name,
		Phone:            input.Phone,
		State:            input.State,
		District:         input.District,
		Region:           input.Region,
		KycStatus:        farmer.KycStatusPending,
		AssignmentStatus: farmer.AssignmentStatusUnassigned,
	}
	if err := s.Repos.Farmer.Create(f); err != nil {
		return nil, err
	}

	recordAudit(s.Repos, actorID, "create", "farmer", f.ID, map[string]interface{}{"farmer_code": f.FarmerCode})
	return f, nil
}

func (s *FarmerService) GetFarmer(id uint) (farmer.Farmer, error) {
	f, err := s.Repos.Farmer.FindByID(id)
	if err != nil {
		return farmer.Farmer{}, translateNotFound(err)
	}
	return f, nil
}

func (s *FarmerService) ListFarmers(filter farmer.Filter) ([]farmer.Farmer, error) {
	return s.Repos.Farmer.List(filter)
}

// UpdateFarmer merges the provided fields into the record. Workflow
// fields (kyc, assignment) are only mutated through their services.
func (s *FarmerService) UpdateFarmer(id uint, input farmer.UpdateFarmerDTO, actorID uint) (farmer.Farmer, error) {
	f, err := s.Repos.Farmer.FindByID(id)
	if err != nil {
		return farmer.Farmer{}, translateNotFound(err)
	}

	if input.Name != nil {
		f.Name = *input.Name
	}
	if input.Phone != nil {
		f.Phone = *input.Phone
	}
	if input.State != nil {
		f.State = *input.State
	}
	if input.District != nil {
		f.District = *input.District
	}
	if input.Region != nil {
		f.Region = *input.Region
	}

	if err := s.Repos.Farmer.Save(&f); err != nil {
		return farmer.Farmer{}, err
	}

	recordAudit(s.Repos, actorID, "update", "farmer", f.ID, nil)
	return f, nil
}

// DeleteFarmer hard-deletes the record and any issued ID card in one
// transaction.
func (s *FarmerService) DeleteFarmer(id uint, actorID uint) error {
	if _, err := s.Repos.Farmer.FindByID(id); err != nil {
		return translateNotFound(err)
	}

	err := s.Repos.ExecTx(func(tx *repository.Repos) error {
		if err := tx.Card.DeleteByFarmerID(id); err != nil {
			return err
		}
		return tx.Farmer.Delete(id)
	})
	if err != nil {
		return err
	}

	recordAudit(s.Repos, actorID, "delete", "farmer", id, nil)
	return nil
}
