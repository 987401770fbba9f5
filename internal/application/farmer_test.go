package application_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/agrisetu/registry-go/internal/application"
	"github.com/agrisetu/registry-go/internal/domain/farmer"
	"github.com/stretchr/testify/assert"
)

func TestCreateFarmer_Success(t *testing.T) {
	svc, repos := newServices(t)

	oldGen := application.NewFarmerCode
	counter := 0
	application.NewFarmerCode = func() string {
		counter++
		return fmt.Sprintf("FRM-TEST-%04d", counter)
	}
	defer func() { application.NewFarmerCode = oldGen }()

	f, err := svc.Farmer.CreateFarmer(farmer.CreateFarmerDTO{
		Name:     "Sunil Jadhav",
		Phone:    "9876543210",
		State:    "Maharashtra",
		District: "Nashik",
		Region:   "West",
	}, 1)
	assert.NoError(t, err)
	assert.Equal(t, "FRM-TEST-0001", f.FarmerCode)
	assert.Equal(t, farmer.KycStatusPending, f.KycStatus)
	assert.Equal(t, farmer.AssignmentStatusUnassigned, f.AssignmentStatus)

	stored, err := repos.Farmer.FindByID(f.ID)
	assert.NoError(t, err)
	assert.Equal(t, "Sunil Jadhav", stored.Name)
}

func TestCreateFarmer_MissingField(t *testing.T) {
	svc, _ := newServices(t)

	_, err := svc.Farmer.CreateFarmer(farmer.CreateFarmerDTO{
		Name:  "No State",
		Phone: "9876543210",
	}, 1)
	assert.True(t, errors.Is(err, application.ErrValidation))
}

func TestUpdateFarmer_MergesFields(t *testing.T) {
	svc, repos := newServices(t)
	f := seedFarmer(t, repos, nil)

	updated, err := svc.Farmer.UpdateFarmer(f.ID, farmer.UpdateFarmerDTO{
		District: ptrString("Satara"),
	}, 1)
	assert.NoError(t, err)
	assert.Equal(t, "Satara", updated.District)
	// untouched fields survive
	assert.Equal(t, f.Name, updated.Name)
	assert.Equal(t, f.State, updated.State)
}

func TestListFarmers_FilterComposition(t *testing.T) {
	svc, repos := newServices(t)

	seedFarmer(t, repos, func(f *farmer.Farmer) {
		f.State = "Maharashtra"
		f.KycStatus = farmer.KycStatusApproved
	})
	seedFarmer(t, repos, func(f *farmer.Farmer) {
		f.State = "Maharashtra"
		f.KycStatus = farmer.KycStatusPending
	})
	seedFarmer(t, repos, func(f *farmer.Farmer) {
		f.State = "Karnataka"
		f.KycStatus = farmer.KycStatusApproved
	})

	state := "Maharashtra"
	status := farmer.KycStatusApproved
	got, err := svc.Farmer.ListFarmers(farmer.Filter{State: &state, KycStatus: &status})
	assert.NoError(t, err)
	assert.Len(t, got, 1)
	assert.Equal(t, "Maharashtra", got[0].State)
	assert.Equal(t, farmer.KycStatusApproved, got[0].KycStatus)
}

func TestDeleteFarmer_RemovesIssuedCard(t *testing.T) {
	svc, repos := newServices(t)
	f := seedFarmer(t, repos, func(f *farmer.Farmer) {
		f.KycStatus = farmer.KycStatusApproved
	})

	_, err := svc.Card.IssueCard(f.ID, 1)
	assert.NoError(t, err)

	assert.NoError(t, svc.Farmer.DeleteFarmer(f.ID, 1))

	_, err = svc.Farmer.GetFarmer(f.ID)
	assert.True(t, errors.Is(err, application.ErrNotFound))
	_, err = svc.Card.GetCard(f.ID)
	assert.True(t, errors.Is(err, application.ErrNotFound))
}

func TestFarmerLifecycle(t *testing.T) {
	svc, repos := newServices(t)
	emp := seedEmployee(t, repos, "ravi")

	f, err := svc.Farmer.CreateFarmer(farmer.CreateFarmerDTO{
		Name:     "Lifecycle",
		Phone:    "9000000001",
		State:    "Maharashtra",
		District: "Pune",
	}, 1)
	assert.NoError(t, err)

	result, err := svc.Assignment.AssignFarmers([]uint{f.ID}, emp.ID, 1)
	assert.NoError(t, err)
	assert.Len(t, result.Assigned, 1)

	approved, err := svc.Kyc.ApproveKyc(f.ID, 1)
	assert.NoError(t, err)
	assert.Equal(t, farmer.KycStatusApproved, approved.KycStatus)
	assert.True(t, approved.Assigned())

	assert.NoError(t, svc.Farmer.DeleteFarmer(f.ID, 1))
	_, err = svc.Farmer.GetFarmer(f.ID)
	assert.True(t, errors.Is(err, application.ErrNotFound))
}
