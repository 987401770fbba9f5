package application

import (
	"time"

	"github.com/agrisetu/registry-go/internal/config"
	"github.com/agrisetu/registry-go/internal/domain/farmer"
	"github.com/agrisetu/registry-go/internal/domain/registration"
	"github.com/agrisetu/registry-go/internal/repository"
)

type StatsService struct {
	Repos *repository.Repos
}

func NewStatsService(repos *repository.Repos) *StatsService {
	return &StatsService{Repos: repos}
}

type DashboardStats struct {
	TotalFarmers         int64                           `json:"total_farmers"`
	TotalEmployees       int64                           `json:"total_employees"`
	TotalRegistrations   int64                           `json:"total_registrations"`
	TotalFPOs            int64                           `json:"total_fpos"`
	FarmersByKycStatus   map[farmer.KycStatus]int64      `json:"farmers_by_kyc_status"`
	PendingRegistrations int64                           `json:"pending_registrations"`
	OverdueKyc           int64                           `json:"overdue_kyc"`
}

// Dashboard derives the admin counters from the store. A farmer counts
// as overdue when the KYC is still PENDING and the assignment is older
// than the configured window (calendar days relative to now).
func (s *StatsService) Dashboard(now time.Time) (DashboardStats, error) {
	stats := DashboardStats{}

	var err error
	if stats.TotalFarmers, err = s.Repos.Farmer.Count(); err != nil {
		return stats, err
	}
	if stats.TotalEmployees, err = s.Repos.Employee.Count(); err != nil {
		return stats, err
	}
	if stats.TotalRegistrations, err = s.Repos.Registration.Count(); err != nil {
		return stats, err
	}
	if stats.TotalFPOs, err = s.Repos.FPO.Count(); err != nil {
		return stats, err
	}
	if stats.FarmersByKycStatus, err = s.Repos.Farmer.CountByKycStatus(); err != nil {
		return stats, err
	}
	if stats.PendingRegistrations, err = s.Repos.Registration.CountByStatus(registration.StatusPending); err != nil {
		return stats, err
	}

	cutoff := now.AddDate(0, 0, -config.KycOverdueDays)
	if stats.OverdueKyc, err = s.Repos.Farmer.CountOverdueKyc(cutoff); err != nil {
		return stats, err
	}

	return stats, nil
}
