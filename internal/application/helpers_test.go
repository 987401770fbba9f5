package application_test

import (
	"testing"
	"time"

	"github.com/agrisetu/registry-go/internal/application"
	"github.com/agrisetu/registry-go/internal/domain/employee"
	"github.com/agrisetu/registry-go/internal/domain/farmer"
	"github.com/agrisetu/registry-go/internal/notify"
	"github.com/agrisetu/registry-go/internal/repository"
	"github.com/agrisetu/registry-go/internal/testutils"
)

func newServices(t *testing.T) (*application.Services, *repository.Repos) {
	t.Helper()
	repos := testutils.NewTestRepos(t)
	publisher := notify.NewPublisher()
	t.Cleanup(publisher.Close)
	return application.New(repos, publisher), repos
}

func seedEmployee(t *testing.T, repos *repository.Repos, name string) employee.Employee {
	t.Helper()
	e := employee.Employee{
		Name:   name,
		Email:  name + "@registry.test",
		Status: employee.StatusActive,
	}
	if err := repos.Employee.Create(&e); err != nil {
		t.Fatalf("seed employee: %v", err)
	}
	return e
}

func seedFarmer(t *testing.T, repos *repository.Repos, mutate func(*farmer.Farmer)) farmer.Farmer {
	t.Helper()
	f := farmer.Farmer{
		FarmerCode:       "FRM-" + time.Now().Format("150405.000000000"),
		Name:             "Test Farmer",
		Phone:            "9000000000",
		State:            "Maharashtra",
		District:         "Pune",
		KycStatus:        farmer.KycStatusPending,
		AssignmentStatus: farmer.AssignmentStatusUnassigned,
	}
	if mutate != nil {
		mutate(&f)
	}
	if err := repos.Farmer.Create(&f); err != nil {
		t.Fatalf("seed farmer: %v", err)
	}
	return f
}

func ptrString(s string) *string { return &s }
