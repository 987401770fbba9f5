package application_test

import (
	"testing"
	"time"

	"github.com/agrisetu/registry-go/internal/domain/farmer"
	"github.com/agrisetu/registry-go/internal/domain/registration"
	"github.com/stretchr/testify/assert"
)

func TestDashboard_Counts(t *testing.T) {
	svc, repos := newServices(t)
	seedEmployee(t, repos, "ravi")
	seedFarmer(t, repos, nil)
	seedFarmer(t, repos, func(f *farmer.Farmer) { f.KycStatus = farmer.KycStatusApproved })
	seedFarmer(t, repos, func(f *farmer.Farmer) { f.KycStatus = farmer.KycStatusApproved })

	reg := &registration.Registration{Name: "x", Email: "x@t", Status: registration.StatusPending}
	assert.NoError(t, repos.Registration.Create(reg))

	stats, err := svc.Stats.Dashboard(time.Now())
	assert.NoError(t, err)
	assert.Equal(t, int64(3), stats.TotalFarmers)
	assert.Equal(t, int64(1), stats.TotalEmployees)
	assert.Equal(t, int64(1), stats.PendingRegistrations)
	assert.Equal(t, int64(1), stats.FarmersByKycStatus[farmer.KycStatusPending])
	assert.Equal(t, int64(2), stats.FarmersByKycStatus[farmer.KycStatusApproved])
}

func TestDashboard_OverdueKyc(t *testing.T) {
	svc, repos := newServices(t)
	now := time.Now()

	tenDaysAgo := now.AddDate(0, 0, -10)
	fiveDaysAgo := now.AddDate(0, 0, -5)
	empID := seedEmployee(t, repos, "ravi").ID

	// pending and assigned 10 days ago: overdue
	seedFarmer(t, repos, func(f *farmer.Farmer) {
		f.AssignmentStatus = farmer.AssignmentStatusAssigned
		f.AssignedEmployeeID = &empID
		f.AssignedDate = &tenDaysAgo
	})
	// pending but assigned only 5 days ago: within the window
	seedFarmer(t, repos, func(f *farmer.Farmer) {
		f.AssignmentStatus = farmer.AssignmentStatusAssigned
		f.AssignedEmployeeID = &empID
		f.AssignedDate = &fiveDaysAgo
	})
	// approved long ago: never overdue
	seedFarmer(t, repos, func(f *farmer.Farmer) {
		f.KycStatus = farmer.KycStatusApproved
		f.AssignmentStatus = farmer.AssignmentStatusAssigned
		f.AssignedEmployeeID = &empID
		f.AssignedDate = &tenDaysAgo
	})
	// pending but never assigned: not overdue
	seedFarmer(t, repos, nil)

	stats, err := svc.Stats.Dashboard(now)
	assert.NoError(t, err)
	assert.Equal(t, int64(1), stats.OverdueKyc)
}
