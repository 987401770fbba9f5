package testutils

import (
	"testing"

	"github.com/agrisetu/registry-go/internal/domain/audit"
	"github.com/agrisetu/registry-go/internal/domain/card"
	"github.com/agrisetu/registry-go/internal/domain/employee"
	"github.com/agrisetu/registry-go/internal/domain/farmer"
	"github.com/agrisetu/registry-go/internal/domain/fpo"
	"github.com/agrisetu/registry-go/internal/domain/registration"
	"github.com/agrisetu/registry-go/internal/domain/user"
	"github.com/agrisetu/registry-go/internal/repository"
	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewTestDB opens a fresh in-memory database with the full schema.
// Each call gets its own database, so tests stay independent.
func NewTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dbConn, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}

	if err := dbConn.AutoMigrate(
		&user.User{},
		&employee.Employee{},
		&farmer.Farmer{},
		&registration.Registration{},
		&card.IDCard{},
		&fpo.FPO{},
		&fpo.BoardMember{},
		&fpo.FarmService{},
		&fpo.TurnoverRecord{},
		&fpo.CropEntry{},
		&fpo.InputShop{},
		&fpo.ProductCategory{},
		&fpo.Product{},
		&fpo.FPOUser{},
		&audit.AuditLog{},
	); err != nil {
		t.Fatalf("migrate test db: %v", err)
	}

	return dbConn
}

// NewTestRepos wires the repository container onto a fresh in-memory
// database.
func NewTestRepos(t *testing.T) *repository.Repos {
	t.Helper()
	return repository.NewRepositories(NewTestDB(t))
}
