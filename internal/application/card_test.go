package application_test

import (
	"errors"
	"testing"

	"github.com/agrisetu/registry-go/internal/application"
	"github.com/agrisetu/registry-go/internal/domain/card"
	"github.com/agrisetu/registry-go/internal/domain/farmer"
	"github.com/stretchr/testify/assert"
)

func TestIssueCard_RequiresApprovedKyc(t *testing.T) {
	svc, repos := newServices(t)
	f := seedFarmer(t, repos, nil) // still PENDING

	_, err := svc.Card.IssueCard(f.ID, 1)
	assert.True(t, errors.Is(err, application.ErrInvalidStateTransition))
}

func TestIssueCard_Success(t *testing.T) {
	svc, repos := newServices(t)
	f := seedFarmer(t, repos, func(f *farmer.Farmer) {
		f.KycStatus = farmer.KycStatusApproved
	})

	issued, err := svc.Card.IssueCard(f.ID, 5)
	assert.NoError(t, err)
	assert.NotEmpty(t, issued.CardNumber)
	assert.Equal(t, f.ID, issued.FarmerID)
	assert.Equal(t, uint(5), issued.IssuedBy)
	assert.Equal(t, card.StatusActive, issued.Status)
}

func TestIssueCard_ReissueReplaces(t *testing.T) {
	svc, repos := newServices(t)
	f := seedFarmer(t, repos, func(f *farmer.Farmer) {
		f.KycStatus = farmer.KycStatusApproved
	})

	first, err := svc.Card.IssueCard(f.ID, 5)
	assert.NoError(t, err)

	second, err := svc.Card.IssueCard(f.ID, 5)
	assert.NoError(t, err)
	assert.NotEqual(t, first.CardNumber, second.CardNumber)

	current, err := svc.Card.GetCard(f.ID)
	assert.NoError(t, err)
	assert.Equal(t, second.CardNumber, current.CardNumber)
}

func TestRevokeCard(t *testing.T) {
	svc, repos := newServices(t)
	f := seedFarmer(t, repos, func(f *farmer.Farmer) {
		f.KycStatus = farmer.KycStatusApproved
	})

	_, err := svc.Card.IssueCard(f.ID, 5)
	assert.NoError(t, err)

	revoked, err := svc.Card.RevokeCard(f.ID, 5)
	assert.NoError(t, err)
	assert.Equal(t, card.StatusRevoked, revoked.Status)

	// revoking twice is a state error
	_, err = svc.Card.RevokeCard(f.ID, 5)
	assert.True(t, errors.Is(err, application.ErrInvalidStateTransition))
}

func TestGetCard_NoneIssued(t *testing.T) {
	svc, repos := newServices(t)
	f := seedFarmer(t, repos, nil)

	_, err := svc.Card.GetCard(f.ID)
	assert.True(t, errors.Is(err, application.ErrNotFound))
}
