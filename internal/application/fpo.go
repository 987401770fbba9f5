package application

import (
	"github.com/agrisetu/registry-go/internal/domain/fpo"
	"github.com/agrisetu/registry-go/internal/repository"
)

// FPOService is uniform fpo-scoped CRUD. Sub-entities carry no
// workflow; the only cross-entity rule is membership of the parent FPO.
type FPOService struct {
	Repos *repository.Repos
}

func NewFPOService(repos *repository.Repos) *FPOService {
	return &FPOService{Repos: repos}
}

func (s *FPOService) requireFPO(fpoID uint) error {
	if _, err := s.Repos.FPO.FindByID(fpoID); err != nil {
		return translateNotFound(err)
	}
	return nil
}

func (s *FPOService) CreateFPO(input fpo.CreateFPODTO, actorID uint) (*fpo.FPO, error) {
	f := &fpo.FPO{
		Name:           input.Name,
		RegistrationNo: input.RegistrationNo,
		State:          input.State,
		District:       input.District,
		ContactPerson:  input.ContactPerson,
		ContactPhone:   input.ContactPhone,
		MemberCount:    input.MemberCount,
	}
	if err := s.Repos.FPO.Create(f); err != nil {
		return nil, err
	}
	recordAudit(s.Repos, actorID, "create", "fpo", f.ID, nil)
	return f, nil
}

func (s *FPOService) GetFPO(id uint) (fpo.FPO, error) {
	f, err := s.Repos.FPO.FindByID(id)
	if err != nil {
		return fpo.FPO{}, translateNotFound(err)
	}
	return f, nil
}

func (s *FPOService) ListFPOs() ([]fpo.FPO, error) {
	return s.Repos.FPO.List()
}

func (s *FPOService) UpdateFPO(id uint, input fpo.UpdateFPODTO, actorID uint) (fpo.FPO, error) {
	f, err := s.Repos.FPO.FindByID(id)
	if err != nil {
		return fpo.FPO{}, translateNotFound(err)
	}

	if input.Name != nil {
		f.Name = *input.Name
	}
	if input.State != nil {
		f.State = *input.State
	}
	if input.District != nil {
		f.District = *input.District
	}
	if input.ContactPerson != nil {
		f.ContactPerson = *input.ContactPerson
	}
	if input.ContactPhone != nil {
		f.ContactPhone = *input.ContactPhone
	}
	if input.MemberCount != nil {
		f.MemberCount = *input.MemberCount
	}

	if err := s.Repos.FPO.Save(&f); err != nil {
		return fpo.FPO{}, err
	}
	recordAudit(s.Repos, actorID, "update", "fpo", f.ID, nil)
	return f, nil
}

// DeleteFPO removes the organization and all of its sub-collections in
// one transaction.
func (s *FPOService) DeleteFPO(id uint, actorID uint) error {
	if err := s.requireFPO(id); err != nil {
		return err
	}

	err := s.Repos.ExecTx(func(tx *repository.Repos) error {
		if err := tx.FPO.PurgeSubEntities(id); err != nil {
			return err
		}
		return tx.FPO.Delete(id)
	})
	if err != nil {
		return err
	}

	recordAudit(s.Repos, actorID, "delete", "fpo", id, nil)
	return nil
}
