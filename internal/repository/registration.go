package repository

import (
	"github.com/agrisetu/registry-go/internal/domain/registration"
	"gorm.io/gorm"
)

type RegistrationRepo interface {
	Create(reg *registration.Registration) error
	FindByID(id uint) (registration.Registration, error)
	List(filter registration.Filter) ([]registration.Registration, error)
	Save(reg *registration.Registration) error
	Count() (int64, error)
	CountByStatus(status registration.Status) (int64, error)
	WithTx(tx *gorm.DB) RegistrationRepo
}

type DBRegistrationRepo struct {
	db *gorm.DB
}

func NewRegistrationRepo(db *gorm.DB) *DBRegistrationRepo {
	return &DBRegistrationRepo{db: db}
}

func (r *DBRegistrationRepo) Create(reg *registration.Registration) error {
	return r.db.Create(reg).Error
}

func (r *DBRegistrationRepo) FindByID(id uint) (registration.Registration, error) {
	var reg registration.Registration
	err := r.db.First(&reg, id).Error
	return reg, err
}

func (r *DBRegistrationRepo) List(filter registration.Filter) ([]registration.Registration, error) {
	var regs []registration.Registration
	query := r.db.Model(&registration.Registration{})

	if filter.Status != nil {
		query = query.Where("status = ?", *filter.Status)
	}
	if filter.Role != nil {
		query = query.Where("role = ?", *filter.Role)
	}

	err := query.Order("id asc").Find(&regs).Error
	return regs, err
}

func (r *DBRegistrationRepo) Save(reg *registration.Registration) error {
	return r.db.Save(reg).Error
}

func (r *DBRegistrationRepo) Count() (int64, error) {
	var n int64
	err := r.db.Model(&registration.Registration{}).Count(&n).Error
	return n, err
}

func (r *DBRegistrationRepo) CountByStatus(status registration.Status) (int64, error) {
	var n int64
	err := r.db.Model(&registration.Registration{}).Where("status = ?", status).Count(&n).Error
	return n, err
}

func (r *DBRegistrationRepo) WithTx(tx *gorm.DB) RegistrationRepo {
	if tx == nil {
		return r
	}
	return &DBRegistrationRepo{db: tx}
}
