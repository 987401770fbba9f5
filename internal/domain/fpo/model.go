package fpo

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// FPO is a Farmer Producer Organization. Its sub-entities are plain
// fpo-scoped collections with foreign-key membership only.
type FPO struct {
	gorm.Model
	Name             string `json:"name"`
	RegistrationNo   string `json:"registration_no" gorm:"uniqueIndex"`
	State            string `json:"state" gorm:"index"`
	District         string `json:"district" gorm:"index"`
	ContactPerson    string `json:"contact_person"`
	ContactPhone     string `json:"contact_phone"`
	MemberCount      int    `json:"member_count"`
}

type BoardMember struct {
	gorm.Model
	FPOID       uint   `json:"fpo_id" gorm:"index"`
	Name        string `json:"name"`
	Designation string `json:"designation"`
	Phone       string `json:"phone"`
}

type FarmService struct {
	gorm.Model
	FPOID       uint   `json:"fpo_id" gorm:"index"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Charge      float64 `json:"charge"`
}

type TurnoverRecord struct {
	gorm.Model
	FPOID         uint    `json:"fpo_id" gorm:"index"`
	FinancialYear string  `json:"financial_year"`
	Amount        float64 `json:"amount"`
	Remarks       string  `json:"remarks"`
}

type CropEntry struct {
	gorm.Model
	FPOID    uint    `json:"fpo_id" gorm:"index"`
	CropName string  `json:"crop_name"`
	Season   string  `json:"season"`
	Acreage  float64 `json:"acreage"`
}

type InputShop struct {
	gorm.Model
	FPOID    uint   `json:"fpo_id" gorm:"index"`
	Name     string `json:"name"`
	Location string `json:"location"`
	LicenseNo string `json:"license_no"`
}

type ProductCategory struct {
	gorm.Model
	FPOID uint   `json:"fpo_id" gorm:"index"`
	Name  string `json:"name"`
}

type Product struct {
	gorm.Model
	FPOID      uint           `json:"fpo_id" gorm:"index"`
	CategoryID *uint          `json:"category_id"`
	Name       string         `json:"name"`
	Unit       string         `json:"unit"`
	Price      float64        `json:"price"`
	Attributes datatypes.JSON `json:"attributes"`
}

type FPOUser struct {
	gorm.Model
	FPOID    uint       `json:"fpo_id" gorm:"index"`
	Name     string     `json:"name"`
	Email    string     `json:"email"`
	Phone    string     `json:"phone"`
	Role     string     `json:"role"`
	LastLogin *time.Time `json:"last_login"`
}
