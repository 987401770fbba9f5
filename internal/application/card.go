package application

import (
	"fmt"
	"time"

	"github.com/agrisetu/registry-go/internal/domain/card"
	"github.com/agrisetu/registry-go/internal/domain/farmer"
	"github.com/agrisetu/registry-go/internal/notify"
	"github.com/agrisetu/registry-go/internal/repository"
	"github.com/google/uuid"
)

// CardService issues registry ID cards. The rendered image is produced
// by an external service which writes FileKey afterwards; this service
// only owns the card record and its issuance precondition.
type CardService struct {
	Repos  *repository.Repos
	Notify *notify.Publisher
}

func NewCardService(repos *repository.Repos, publisher *notify.Publisher) *CardService {
	return &CardService{Repos: repos, Notify: publisher}
}

func (s *CardService) IssueCard(farmerID, actorID uint) (card.IDCard, error) {
	var issued card.IDCard

	err := s.Repos.ExecTx(func(tx *repository.Repos) error {
		f, err := tx.Farmer.FindByID(farmerID)
		if err != nil {
			return translateNotFound(err)
		}
		if f.KycStatus != farmer.KycStatusApproved {
			return fmt.Errorf("%w: card issuance requires approved kyc, have %s", ErrInvalidStateTransition, f.KycStatus)
		}

		// Reissue replaces any previous card for the farmer.
		if err := tx.Card.DeleteByFarmerID(farmerID); err != nil {
			return err
		}

		issued = card.IDCard{
			CardNumber: uuid.NewString(),
			FarmerID:   farmerID,
			IssuedDate: time.Now(),
			IssuedBy:   actorID,
			Status:     card.StatusActive,
		}
		return tx.Card.Create(&issued)
	})
	if err != nil {
		return card.IDCard{}, err
	}

	recordAudit(s.Repos, actorID, "card_issue", "farmer", farmerID, map[string]interface{}{"card_number": issued.CardNumber})
	s.Notify.Publish(notify.Event{
		Type:        notify.EventCardIssued,
		RecipientID: farmerID,
		Payload:     map[string]interface{}{"card_number": issued.CardNumber},
	})
	return issued, nil
}

func (s *CardService) GetCard(farmerID uint) (card.IDCard, error) {
	c, err := s.Repos.Card.FindByFarmerID(farmerID)
	if err != nil {
		return card.IDCard{}, translateNotFound(err)
	}
	return c, nil
}

func (s *CardService) RevokeCard(farmerID, actorID uint) (card.IDCard, error) {
	c, err := s.Repos.Card.FindByFarmerID(farmerID)
	if err != nil {
		return card.IDCard{}, translateNotFound(err)
	}

	if c.Status == card.StatusRevoked {
		return card.IDCard{}, fmt.Errorf("%w: card already revoked", ErrInvalidStateTransition)
	}

	c.Status = card.StatusRevoked
	if err := s.Repos.Card.Save(&c); err != nil {
		return card.IDCard{}, err
	}

	recordAudit(s.Repos, actorID, "card_revoke", "farmer", farmerID, nil)
	return c, nil
}
