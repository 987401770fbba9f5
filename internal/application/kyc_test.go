package application_test

import (
	"errors"
	"testing"

	"github.com/agrisetu/registry-go/internal/application"
	"github.com/agrisetu/registry-go/internal/domain/farmer"
	"github.com/stretchr/testify/assert"
)

func TestApproveKyc_Success(t *testing.T) {
	svc, repos := newServices(t)
	f := seedFarmer(t, repos, nil)

	approved, err := svc.Kyc.ApproveKyc(f.ID, 42)
	assert.NoError(t, err)
	assert.Equal(t, farmer.KycStatusApproved, approved.KycStatus)
	assert.NotNil(t, approved.ReviewedBy)
	assert.Equal(t, uint(42), *approved.ReviewedBy)
}

func TestApproveKyc_AlreadyApproved(t *testing.T) {
	svc, repos := newServices(t)
	f := seedFarmer(t, repos, nil)

	_, err := svc.Kyc.ApproveKyc(f.ID, 42)
	assert.NoError(t, err)

	// strict: a second approval is a transition violation, not a no-op
	_, err = svc.Kyc.ApproveKyc(f.ID, 42)
	assert.True(t, errors.Is(err, application.ErrInvalidStateTransition))
}

func TestApproveKyc_NotFound(t *testing.T) {
	svc, _ := newServices(t)

	_, err := svc.Kyc.ApproveKyc(9999, 42)
	assert.True(t, errors.Is(err, application.ErrNotFound))
}

func TestRejectKyc_StoresReason(t *testing.T) {
	svc, repos := newServices(t)
	f := seedFarmer(t, repos, nil)

	rejected, err := svc.Kyc.RejectKyc(f.ID, 7, "document illegible")
	assert.NoError(t, err)
	assert.Equal(t, farmer.KycStatusRejected, rejected.KycStatus)
	assert.Equal(t, "document illegible", rejected.KycReason)

	// terminal: nothing moves a rejected record
	_, err = svc.Kyc.ApproveKyc(f.ID, 7)
	assert.True(t, errors.Is(err, application.ErrInvalidStateTransition))
}

func TestReferBackKyc_Resubmit(t *testing.T) {
	svc, repos := newServices(t)
	f := seedFarmer(t, repos, nil)

	referred, err := svc.Kyc.ReferBackKyc(f.ID, 7, "address proof missing")
	assert.NoError(t, err)
	assert.Equal(t, farmer.KycStatusReferBack, referred.KycStatus)

	resubmitted, err := svc.Kyc.SubmitKyc(f.ID)
	assert.NoError(t, err)
	assert.Equal(t, farmer.KycStatusPending, resubmitted.KycStatus)

	approved, err := svc.Kyc.ApproveKyc(f.ID, 7)
	assert.NoError(t, err)
	assert.Equal(t, farmer.KycStatusApproved, approved.KycStatus)
}

func TestReferBackKyc_DirectApprove(t *testing.T) {
	svc, repos := newServices(t)
	f := seedFarmer(t, repos, nil)

	_, err := svc.Kyc.ReferBackKyc(f.ID, 7, "minor correction")
	assert.NoError(t, err)

	// approval straight from REFER_BACK is allowed
	approved, err := svc.Kyc.ApproveKyc(f.ID, 7)
	assert.NoError(t, err)
	assert.Equal(t, farmer.KycStatusApproved, approved.KycStatus)
}

func TestSubmitKyc_FromNotStarted(t *testing.T) {
	svc, repos := newServices(t)
	f := seedFarmer(t, repos, func(f *farmer.Farmer) {
		f.KycStatus = farmer.KycStatusNotStarted
	})

	submitted, err := svc.Kyc.SubmitKyc(f.ID)
	assert.NoError(t, err)
	assert.Equal(t, farmer.KycStatusPending, submitted.KycStatus)
}

func TestKyc_FailedTransitionLeavesRecordUntouched(t *testing.T) {
	svc, repos := newServices(t)
	f := seedFarmer(t, repos, nil)

	_, err := svc.Kyc.RejectKyc(f.ID, 7, "fraudulent documents")
	assert.NoError(t, err)

	_, err = svc.Kyc.ReferBackKyc(f.ID, 8, "should not apply")
	assert.Error(t, err)

	stored, err := repos.Farmer.FindByID(f.ID)
	assert.NoError(t, err)
	assert.Equal(t, farmer.KycStatusRejected, stored.KycStatus)
	assert.Equal(t, "fraudulent documents", stored.KycReason)
	assert.Equal(t, uint(7), *stored.ReviewedBy)
}
