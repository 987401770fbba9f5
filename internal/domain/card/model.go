package card

import (
	"time"

	"gorm.io/gorm"
)

type Status string

const (
	StatusActive  Status = "ACTIVE"
	StatusRevoked Status = "REVOKED"
)

// IDCard is issued once a farmer clears KYC. FileKey points at the
// rendered card image in the object store; rendering itself is owned
// by an external service.
type IDCard struct {
	gorm.Model
	CardNumber string    `json:"card_number" gorm:"uniqueIndex"`
	FarmerID   uint      `json:"farmer_id" gorm:"uniqueIndex"`
	IssuedDate time.Time `json:"issued_date"`
	IssuedBy   uint      `json:"issued_by"`
	FileKey    string    `json:"file_key"`
	Status     Status    `json:"status" gorm:"default:'ACTIVE'"`
}
