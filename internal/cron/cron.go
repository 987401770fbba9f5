package cron

import (
	"log"
	"time"

	"github.com/agrisetu/registry-go/internal/application"
	"github.com/agrisetu/registry-go/internal/config"
)

func StartCleanupTask(auditService *application.AuditService) {
	go func() {
		days := config.AuditRetentionDays
		log.Printf("Starting background cleanup task (retention: %d days)", days)

		// Run immediately on startup
		if err := auditService.CleanupOldLogs(days); err != nil {
			log.Printf("Failed to cleanup old audit logs: %v", err)
		}

		// Then run every 24 hours
		ticker := time.NewTicker(24 * time.Hour)
		defer ticker.Stop()

		for range ticker.C {
			log.Println("Running scheduled audit log cleanup...")
			if err := auditService.CleanupOldLogs(days); err != nil {
				log.Printf("Failed to cleanup old audit logs: %v", err)
			} else {
				log.Println("Audit log cleanup completed successfully")
			}
		}
	}()
}
