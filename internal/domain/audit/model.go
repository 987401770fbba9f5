package audit

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// AuditLog records every admin mutation (approve, reject, assign, delete).
type AuditLog struct {
	gorm.Model
	UserID       uint           `json:"user_id" gorm:"index"`
	Action       string         `json:"action" gorm:"index"`
	ResourceType string         `json:"resource_type" gorm:"index"`
	ResourceID   uint           `json:"resource_id"`
	Details      datatypes.JSON `json:"details"`
}
