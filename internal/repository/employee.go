package repository

import (
	"github.com/agrisetu/registry-go/internal/domain/employee"
	"gorm.io/gorm"
)

type EmployeeRepo interface {
	Create(e *employee.Employee) error
	FindByID(id uint) (employee.Employee, error)
	List(filter employee.Filter) ([]employee.Employee, error)
	Save(e *employee.Employee) error
	Delete(id uint) error
	Count() (int64, error)
	WithTx(tx *gorm.DB) EmployeeRepo
}

type DBEmployeeRepo struct {
	db *gorm.DB
}

func NewEmployeeRepo(db *gorm.DB) *DBEmployeeRepo {
	return &DBEmployeeRepo{db: db}
}

func (r *DBEmployeeRepo) Create(e *employee.Employee) error {
	return r.db.Create(e).Error
}

func (r *DBEmployeeRepo) FindByID(id uint) (employee.Employee, error) {
	var e employee.Employee
	err := r.db.First(&e, id).Error
	return e, err
}

func (r *DBEmployeeRepo) List(filter employee.Filter) ([]employee.Employee, error) {
	var employees []employee.Employee
	query := r.db.Model(&employee.Employee{})

	if filter.Status != nil {
		query = query.Where("status = ?", *filter.Status)
	}
	if filter.Department != nil {
		query = query.Where("department = ?", *filter.Department)
	}

	err := query.Order("id asc").Find(&employees).Error
	return employees, err
}

func (r *DBEmployeeRepo) Save(e *employee.Employee) error {
	return r.db.Save(e).Error
}

func (r *DBEmployeeRepo) Delete(id uint) error {
	return r.db.Unscoped().Delete(&employee.Employee{}, id).Error
}

func (r *DBEmployeeRepo) Count() (int64, error) {
	var n int64
	err := r.db.Model(&employee.Employee{}).Count(&n).Error
	return n, err
}

func (r *DBEmployeeRepo) WithTx(tx *gorm.DB) EmployeeRepo {
	if tx == nil {
		return r
	}
	return &DBEmployeeRepo{db: tx}
}
