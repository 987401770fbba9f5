package repository

import (
	"github.com/agrisetu/registry-go/internal/domain/card"
	"gorm.io/gorm"
)

type CardRepo interface {
	Create(c *card.IDCard) error
	FindByFarmerID(farmerID uint) (card.IDCard, error)
	Save(c *card.IDCard) error
	DeleteByFarmerID(farmerID uint) error
	WithTx(tx *gorm.DB) CardRepo
}

type DBCardRepo struct {
	db *gorm.DB
}

func NewCardRepo(db *gorm.DB) *DBCardRepo {
	return &DBCardRepo{db: db}
}

func (r *DBCardRepo) Create(c *card.IDCard) error {
	return r.db.Create(c).Error
}

func (r *DBCardRepo) FindByFarmerID(farmerID uint) (card.IDCard, error) {
	var c card.IDCard
	err := r.db.Where("farmer_id = ?", farmerID).First(&c).Error
	return c, err
}

func (r *DBCardRepo) Save(c *card.IDCard) error {
	return r.db.Save(c).Error
}

func (r *DBCardRepo) DeleteByFarmerID(farmerID uint) error {
	return r.db.Unscoped().Where("farmer_id = ?", farmerID).Delete(&card.IDCard{}).Error
}

func (r *DBCardRepo) WithTx(tx *gorm.DB) CardRepo {
	if tx == nil {
		return r
	}
	return &DBCardRepo{db: tx}
}
