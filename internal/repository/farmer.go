package repository

import (
	"time"

	"github.com/agrisetu/registry-go/internal/domain/farmer"
	"gorm.io/gorm"
)

type FarmerRepo interface {
	Create(f *farmer.Farmer) error
	FindByID(id uint) (farmer.Farmer, error)
	List(filter farmer.Filter) ([]farmer.Farmer, error)
	Save(f *farmer.Farmer) error
	Delete(id uint) error
	Count() (int64, error)
	CountByKycStatus() (map[farmer.KycStatus]int64, error)
	CountOverdueKyc(cutoff time.Time) (int64, error)
	UnassignAllForEmployee(employeeID uint) error
	WithTx(tx *gorm.DB) FarmerRepo
}

type DBFarmerRepo struct {
	db *gorm.DB
}

func NewFarmerRepo(db *gorm.DB) *DBFarmerRepo {
	return &DBFarmerRepo{db: db}
}

func (r *DBFarmerRepo) Create(f *farmer.Farmer) error {
	return r.db.Create(f).Error
}

func (r *DBFarmerRepo) FindByID(id uint) (farmer.Farmer, error) {
	var f farmer.Farmer
	err := r.db.Preload("AssignedEmployee").First(&f, id).Error
	return f, err
}

func (r *DBFarmerRepo) List(filter farmer.Filter) ([]farmer.Farmer, error) {
	var farmers []farmer.Farmer
	query := r.db.Model(&farmer.Farmer{}).Preload("AssignedEmployee")

	if filter.State != nil {
		query = query.Where("state = ?", *filter.State)
	}
	if filter.District != nil {
		query = query.Where("district = ?", *filter.District)
	}
	if filter.Region != nil {
		query = query.Where("region = ?", *filter.Region)
	}
	if filter.KycStatus != nil {
		query = query.Where("kyc_status = ?", *filter.KycStatus)
	}
	if filter.AssignmentStatus != nil {
		query = query.Where("assignment_status = ?", *filter.AssignmentStatus)
	}
	if filter.AssignedEmployeeID != nil {
		query = query.Where("assigned_employee_id = ?", *filter.AssignedEmployeeID)
	}

	err := query.Order("id asc").Find(&farmers).Error
	return farmers, err
}

func (r *DBFarmerRepo) Save(f *farmer.Farmer) error {
	// Omit the preloaded association so saving a farmer never writes
	// through to the employee row.
	return r.db.Omit("AssignedEmployee").Save(f).Error
}

func (r *DBFarmerRepo) Delete(id uint) error {
	return r.db.Unscoped().Delete(&farmer.Farmer{}, id).Error
}

func (r *DBFarmerRepo) Count() (int64, error) {
	var n int64
	err := r.db.Model(&farmer.Farmer{}).Count(&n).Error
	return n, err
}

func (r *DBFarmerRepo) CountByKycStatus() (map[farmer.KycStatus]int64, error) {
	type row struct {
		KycStatus farmer.KycStatus
		Total     int64
	}
	var rows []row
	err := r.db.Model(&farmer.Farmer{}).
		Select("kyc_status, count(*) as total").
		Group("kyc_status").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	counts := make(map[farmer.KycStatus]int64, len(rows))
	for _, rw := range rows {
		counts[rw.KycStatus] = rw.Total
	}
	return counts, nil
}

func (r *DBFarmerRepo) CountOverdueKyc(cutoff time.Time) (int64, error) {
	var n int64
	err := r.db.Model(&farmer.Farmer{}).
		Where("kyc_status = ?", farmer.KycStatusPending).
		Where("assigned_date IS NOT NULL").
		Where("assigned_date < ?", cutoff).
		Count(&n).Error
	return n, err
}

// UnassignAllForEmployee clears every assignment held by the employee.
// Runs inside the employee-delete transaction.
func (r *DBFarmerRepo) UnassignAllForEmployee(employeeID uint) error {
	return r.db.Model(&farmer.Farmer{}).
		Where("assigned_employee_id = ?", employeeID).
		Updates(map[string]interface{}{
			"assignment_status":    farmer.AssignmentStatusUnassigned,
			"assigned_employee_id": nil,
			"assigned_date":        nil,
		}).Error
}

func (r *DBFarmerRepo) WithTx(tx *gorm.DB) FarmerRepo {
	if tx == nil {
		return r
	}
	return &DBFarmerRepo{db: tx}
}
