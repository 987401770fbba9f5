package application

import (
	"fmt"

	"github.com/agrisetu/registry-go/internal/domain/farmer"
	"github.com/agrisetu/registry-go/internal/notify"
	"github.com/agrisetu/registry-go/internal/repository"
)

// KycService validates and applies KYC state transitions. The allowed
// moves live in the farmer package's transition table; any move not
// listed there returns ErrInvalidStateTransition with the record left
// untouched.
type KycService struct {
	Repos  *repository.Repos
	Notify *notify.Publisher
}

func NewKycService(repos *repository.Repos, publisher *notify.Publisher) *KycService {
	return &KycService{Repos: repos, Notify: publisher}
}

func (s *KycService) transition(farmerID uint, to farmer.KycStatus, reviewerID uint, reason string) (farmer.Farmer, error) {
	var f farmer.Farmer

	err := s.Repos.ExecTx(func(tx *repository.Repos) error {
		var err error
		f, err = tx.Farmer.FindByID(farmerID)
		if err != nil {
			return translateNotFound(err)
		}

		if !farmer.CanTransition(f.KycStatus, to) {
			return fmt.Errorf("%w: kyc %s -> %s", ErrInvalidStateTransition, f.KycStatus, to)
		}

		f.KycStatus = to
		f.KycReason = reason
		if reviewerID != 0 {
			f.ReviewedBy = &reviewerID
		}
		return tx.Farmer.Save(&f)
	})
	if err != nil {
		return farmer.Farmer{}, err
	}
	return f, nil
}

func (s *KycService) ApproveKyc(farmerID, reviewerID uint) (farmer.Farmer, error) {
	f, err := s.transition(farmerID, farmer.KycStatusApproved, reviewerID, "")
	if err != nil {
		return farmer.Farmer{}, err
	}

	recordAudit(s.Repos, reviewerID, "kyc_approve", "farmer", f.ID, nil)
	s.Notify.Publish(notify.Event{
		Type:        notify.EventKycApproved,
		RecipientID: f.ID,
		Payload:     map[string]interface{}{"farmer_code": f.FarmerCode},
	})
	return f, nil
}

func (s *KycService) RejectKyc(farmerID, reviewerID uint, reason string) (farmer.Farmer, error) {
	f, err := s.transition(farmerID, farmer.KycStatusRejected, reviewerID, reason)
	if err != nil {
		return farmer.Farmer{}, err
	}

	recordAudit(s.Repos, reviewerID, "kyc_reject", "farmer", f.ID, map[string]interface{}{"reason": reason})
	s.Notify.Publish(notify.Event{
		Type:        notify.EventKycRejected,
		RecipientID: f.ID,
		Payload:     map[string]interface{}{"reason": reason},
	})
	return f, nil
}

// ReferBackKyc sends the submission back for correction; unlike a
// rejection the farmer can resubmit.
func (s *KycService) ReferBackKyc(farmerID, reviewerID uint, reason string) (farmer.Farmer, error) {
	f, err := s.transition(farmerID, farmer.KycStatusReferBack, reviewerID, reason)
	if err != nil {
		return farmer.Farmer{}, err
	}

	recordAudit(s.Repos, reviewerID, "kyc_refer_back", "farmer", f.ID, map[string]interface{}{"reason": reason})
	s.Notify.Publish(notify.Event{
		Type:        notify.EventKycReferredBack,
		RecipientID: f.ID,
		Payload:     map[string]interface{}{"reason": reason},
	})
	return f, nil
}

// SubmitKyc moves a NOT_STARTED or referred-back record into PENDING.
func (s *KycService) SubmitKyc(farmerID uint) (farmer.Farmer, error) {
	return s.transition(farmerID, farmer.KycStatusPending, 0, "")
}
