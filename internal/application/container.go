package application

import (
	"github.com/agrisetu/registry-go/internal/notify"
	"github.com/agrisetu/registry-go/internal/repository"
)

type Services struct {
	Farmer       *FarmerService
	Kyc          *KycService
	Assignment   *AssignmentService
	Employee     *EmployeeService
	Registration *RegistrationService
	FPO          *FPOService
	Card         *CardService
	Stats        *StatsService
	Export       *ExportService
	User         *UserService
	Audit        *AuditService
}

func New(repos *repository.Repos, publisher *notify.Publisher) *Services {
	return &Services{
		Farmer:       NewFarmerService(repos, publisher),
		Kyc:          NewKycService(repos, publisher),
		Assignment:   NewAssignmentService(repos, publisher),
		Employee:     NewEmployeeService(repos),
		Registration: NewRegistrationService(repos, publisher),
		FPO:          NewFPOService(repos),
		Card:         NewCardService(repos, publisher),
		Stats:        NewStatsService(repos),
		Export:       NewExportService(repos),
		User:         NewUserService(repos),
		Audit:        NewAuditService(repos),
	}
}
