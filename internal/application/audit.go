package application

import (
	"encoding/json"
	"log"

	"github.com/agrisetu/registry-go/internal/domain/audit"
	"github.com/agrisetu/registry-go/internal/repository"
	"gorm.io/datatypes"
)

type AuditService struct {
	Repos *repository.Repos
}

func NewAuditService(repos *repository.Repos) *AuditService {
	return &AuditService{Repos: repos}
}

func (s *AuditService) QueryAuditLogs(params repository.AuditQueryParams) ([]audit.AuditLog, error) {
	return s.Repos.Audit.GetAuditLogs(params)
}

func (s *AuditService) CleanupOldLogs(days int) error {
	return s.Repos.Audit.DeleteOldAuditLogs(days)
}

// recordAudit writes an audit entry. Audit failures are logged, never
// surfaced: the admin action itself already committed.
func recordAudit(repos *repository.Repos, userID uint, action, resourceType string, resourceID uint, details map[string]interface{}) {
	entry := &audit.AuditLog{
		UserID:       userID,
		Action:       action,
		ResourceType: resourceType,
		ResourceID:   resourceID,
	}
	if details != nil {
		data, err := json.Marshal(details)
		if err == nil {
			entry.Details = datatypes.JSON(data)
		}
	}
	if err := repos.Audit.CreateAuditLog(entry); err != nil {
		log.Printf("Failed to write audit log for %s %s/%d: %v", action, resourceType, resourceID, err)
	}
}
