package application_test

import (
	"errors"
	"testing"

	"github.com/agrisetu/registry-go/internal/application"
	"github.com/agrisetu/registry-go/internal/domain/registration"
	"github.com/stretchr/testify/assert"
)

func createRegistration(t *testing.T, svc *application.Services, email string) *registration.Registration {
	t.Helper()
	reg, err := svc.Registration.CreateRegistration(registration.CreateRegistrationDTO{
		Name:  "Asha Patil",
		Email: email,
		Phone: "9111111111",
		Role:  registration.RoleEmployee,
	})
	if err != nil {
		t.Fatalf("create registration: %v", err)
	}
	return reg
}

func TestCreateRegistration_InvalidRole(t *testing.T) {
	svc, _ := newServices(t)

	_, err := svc.Registration.CreateRegistration(registration.CreateRegistrationDTO{
		Name:  "x",
		Email: "x@test.in",
		Role:  "WIZARD",
	})
	assert.True(t, errors.Is(err, application.ErrValidation))
}

func TestApproveRegistration_ProvisionsUser(t *testing.T) {
	svc, repos := newServices(t)
	reg := createRegistration(t, svc, "asha.patil@registry.test")

	approved, err := svc.Registration.ApproveRegistration(reg.ID, 3)
	assert.NoError(t, err)
	assert.Equal(t, registration.StatusApproved, approved.Status)
	assert.Equal(t, uint(3), *approved.ReviewedBy)
	assert.NotNil(t, approved.ReviewedDate)
	assert.NotNil(t, approved.ApprovalDate)

	usr, err := repos.User.GetUserByUsername("asha.patil")
	assert.NoError(t, err)
	assert.Equal(t, "asha.patil@registry.test", usr.Email)
	assert.Equal(t, "EMPLOYEE", usr.Role)
	assert.NotEmpty(t, usr.Password)
}

func TestApproveRegistration_UsernameCollision(t *testing.T) {
	svc, repos := newServices(t)
	first := createRegistration(t, svc, "asha@one.test")
	second := createRegistration(t, svc, "asha@two.test")

	_, err := svc.Registration.ApproveRegistration(first.ID, 3)
	assert.NoError(t, err)
	_, err = svc.Registration.ApproveRegistration(second.ID, 3)
	assert.NoError(t, err)

	users, err := repos.User.ListUsers()
	assert.NoError(t, err)
	assert.Len(t, users, 2)
	assert.Equal(t, "asha", users[0].Username)
	assert.NotEqual(t, users[0].Username, users[1].Username)
}

func TestApproveRegistration_Twice(t *testing.T) {
	svc, repos := newServices(t)
	reg := createRegistration(t, svc, "twice@registry.test")

	approved, err := svc.Registration.ApproveRegistration(reg.ID, 3)
	assert.NoError(t, err)

	_, err = svc.Registration.ApproveRegistration(reg.ID, 9)
	assert.True(t, errors.Is(err, application.ErrInvalidStateTransition))

	// review metadata untouched by the failed second attempt
	stored, _ := repos.Registration.FindByID(reg.ID)
	assert.Equal(t, uint(3), *stored.ReviewedBy)
	assert.Equal(t, approved.ReviewedDate.Unix(), stored.ReviewedDate.Unix())
}

func TestRejectRegistration(t *testing.T) {
	svc, repos := newServices(t)
	reg := createRegistration(t, svc, "reject@registry.test")

	rejected, err := svc.Registration.RejectRegistration(reg.ID, 3, "duplicate signup")
	assert.NoError(t, err)
	assert.Equal(t, registration.StatusRejected, rejected.Status)
	assert.Equal(t, "duplicate signup", *rejected.RejectionReason)
	assert.Nil(t, rejected.ApprovalDate)

	// no user provisioned on rejection
	_, err = repos.User.GetUserByUsername("reject")
	assert.Error(t, err)

	_, err = svc.Registration.ApproveRegistration(reg.ID, 3)
	assert.True(t, errors.Is(err, application.ErrInvalidStateTransition))
}

func TestListRegistrations_FilterByStatus(t *testing.T) {
	svc, _ := newServices(t)
	pending := createRegistration(t, svc, "p@registry.test")
	done := createRegistration(t, svc, "d@registry.test")

	_, err := svc.Registration.ApproveRegistration(done.ID, 3)
	assert.NoError(t, err)

	status := registration.StatusPending
	regs, err := svc.Registration.ListRegistrations(registration.Filter{Status: &status})
	assert.NoError(t, err)
	assert.Len(t, regs, 1)
	assert.Equal(t, pending.ID, regs[0].ID)
}
