package application

import (
	"fmt"
	"strings"
	"time"

	"github.com/agrisetu/registry-go/internal/domain/registration"
	"github.com/agrisetu/registry-go/internal/domain/user"
	"github.com/agrisetu/registry-go/internal/notify"
	"github.com/agrisetu/registry-go/internal/repository"
	"github.com/segmentio/ksuid"
	"golang.org/x/crypto/bcrypt"
)

// RegistrationService reviews self-service signups. Approval provisions
// a user with the registration's role inside the same transaction, so
// a failed provisioning never leaves an approved registration behind.
type RegistrationService struct {
	Repos  *repository.Repos
	Notify *notify.Publisher
}

func NewRegistrationService(repos *repository.Repos, publisher *notify.Publisher) *RegistrationService {
	return &RegistrationService{Repos: repos, Notify: publisher}
}

func (s *RegistrationService) CreateRegistration(input registration.CreateRegistrationDTO) (*registration.Registration, error) {
	if !registration.ValidRole(input.Role) {
		return nil, fmt.Errorf("%w: unknown role %q", ErrValidation, input.Role)
	}

	reg := &registration.Registration{
		Name:   input.Name,
		Email:  input.Email,
		Phone:  input.Phone,
		Role:   input.Role,
		Status: registration.StatusPending,
	}
	return reg, s.Repos.Registration.Create(reg)
}

func (s *RegistrationService) GetRegistration(id uint) (registration.Registration, error) {
	reg, err := s.Repos.Registration.FindByID(id)
	if err != nil {
		return registration.Registration{}, translateNotFound(err)
	}
	return reg, nil
}

func (s *RegistrationService) ListRegistrations(filter registration.Filter) ([]registration.Registration, error) {
	return s.Repos.Registration.List(filter)
}

func (s *RegistrationService) ApproveRegistration(id, approverID uint) (registration.Registration, error) {
	var reg registration.Registration

	err := s.Repos.ExecTx(func(tx *repository.Repos) error {
		var err error
		reg, err = tx.Registration.FindByID(id)
		if err != nil {
			return translateNotFound(err)
		}

		if !registration.CanTransition(reg.Status, registration.StatusApproved) {
			return fmt.Errorf("%w: registration %s -> %s", ErrInvalidStateTransition, reg.Status, registration.StatusApproved)
		}

		now := time.Now()
		reg.Status = registration.StatusApproved
		reg.ReviewedBy = &approverID
		reg.ReviewedDate = &now
		reg.ApprovalDate = &now
		if err := tx.Registration.Save(&reg); err != nil {
			return err
		}

		return s.provisionUser(tx, &reg)
	})
	if err != nil {
		return registration.Registration{}, err
	}

	recordAudit(s.Repos, approverID, "registration_approve", "registration", reg.ID, map[string]interface{}{"role": reg.Role})
	s.Notify.Publish(notify.Event{
		Type:        notify.EventRegistrationApproved,
		RecipientID: reg.ID,
		Payload:     map[string]interface{}{"role": reg.Role},
	})
	return reg, nil
}

func (s *RegistrationService) RejectRegistration(id, approverID uint, reason string) (registration.Registration, error) {
	var reg registration.Registration

	err := s.Repos.ExecTx(func(tx *repository.Repos) error {
		var err error
		reg, err = tx.Registration.FindByID(id)
		if err != nil {
			return translateNotFound(err)
		}

		if !registration.CanTransition(reg.Status, registration.StatusRejected) {
			return fmt.Errorf("%w: registration %s -> %s", ErrInvalidStateTransition, reg.Status, registration.StatusRejected)
		}

		now := time.Now()
		reg.Status = registration.StatusRejected
		reg.ReviewedBy = &approverID
		reg.ReviewedDate = &now
		reg.RejectionReason = &reason
		return tx.Registration.Save(&reg)
	})
	if err != nil {
		return registration.Registration{}, err
	}

	recordAudit(s.Repos, approverID, "registration_reject", "registration", reg.ID, map[string]interface{}{"reason": reason})
	s.Notify.Publish(notify.Event{
		Type:        notify.EventRegistrationRejected,
		RecipientID: reg.ID,
		Payload:     map[string]interface{}{"reason": reason},
	})
	return reg, nil
}

// provisionUser creates the login account for an approved signup. The
// username derives from the registered email; the account starts with a
// random password the user resets through the usual flow.
func (s *RegistrationService) provisionUser(tx *repository.Repos, reg *registration.Registration) error {
	username := strings.ToLower(strings.Split(reg.Email, "@")[0])
	if _, err := tx.User.GetUserByUsername(username); err == nil {
		username = fmt.Sprintf("%s-%d", username, reg.ID)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(ksuid.New().String()), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	usr := user.User{
		Username: username,
		Password: string(hashed),
		Email:    reg.Email,
		FullName: reg.Name,
		Role:     string(reg.Role),
		Status:   "ACTIVE",
	}
	return tx.User.SaveUser(&usr)
}
