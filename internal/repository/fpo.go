package repository

import (
	"github.com/agrisetu/registry-go/internal/domain/fpo"
	"gorm.io/gorm"
)

type FPORepo interface {
	Create(f *fpo.FPO) error
	FindByID(id uint) (fpo.FPO, error)
	List() ([]fpo.FPO, error)
	Save(f *fpo.FPO) error
	Delete(id uint) error
	Count() (int64, error)

	CreateBoardMember(m *fpo.BoardMember) error
	ListBoardMembers(fpoID uint) ([]fpo.BoardMember, error)
	FindBoardMember(id uint) (fpo.BoardMember, error)
	SaveBoardMember(m *fpo.BoardMember) error
	DeleteBoardMember(id uint) error

	CreateFarmService(s *fpo.FarmService) error
	ListFarmServices(fpoID uint) ([]fpo.FarmService, error)
	FindFarmService(id uint) (fpo.FarmService, error)
	SaveFarmService(s *fpo.FarmService) error
	DeleteFarmService(id uint) error

	CreateTurnoverRecord(t *fpo.TurnoverRecord) error
	ListTurnoverRecords(fpoID uint) ([]fpo.TurnoverRecord, error)
	FindTurnoverRecord(id uint) (fpo.TurnoverRecord, error)
	SaveTurnoverRecord(t *fpo.TurnoverRecord) error
	DeleteTurnoverRecord(id uint) error

	CreateCropEntry(cr *fpo.CropEntry) error
	ListCropEntries(fpoID uint) ([]fpo.CropEntry, error)
	FindCropEntry(id uint) (fpo.CropEntry, error)
	SaveCropEntry(cr *fpo.CropEntry) error
	DeleteCropEntry(id uint) error

	CreateInputShop(s *fpo.InputShop) error
	ListInputShops(fpoID uint) ([]fpo.InputShop, error)
	FindInputShop(id uint) (fpo.InputShop, error)
	SaveInputShop(s *fpo.InputShop) error
	DeleteInputShop(id uint) error

	CreateProductCategory(ca *fpo.ProductCategory) error
	ListProductCategories(fpoID uint) ([]fpo.ProductCategory, error)
	FindProductCategory(id uint) (fpo.ProductCategory, error)
	SaveProductCategory(ca *fpo.ProductCategory) error
	DeleteProductCategory(id uint) error

	CreateProduct(p *fpo.Product) error
	ListProducts(fpoID uint) ([]fpo.Product, error)
	FindProduct(id uint) (fpo.Product, error)
	SaveProduct(p *fpo.Product) error
	DeleteProduct(id uint) error

	CreateFPOUser(u *fpo.FPOUser) error
	ListFPOUsers(fpoID uint) ([]fpo.FPOUser, error)
	FindFPOUser(id uint) (fpo.FPOUser, error)
	SaveFPOUser(u *fpo.FPOUser) error
	DeleteFPOUser(id uint) error

	PurgeSubEntities(fpoID uint) error
	WithTx(tx *gorm.DB) FPORepo
}

type DBFPORepo struct {
	db *gorm.DB
}

func NewFPORepo(db *gorm.DB) *DBFPORepo {
	return &DBFPORepo{db: db}
}

func (r *DBFPORepo) Create(f *fpo.FPO) error {
	return r.db.Create(f).Error
}

func (r *DBFPORepo) FindByID(id uint) (fpo.FPO, error) {
	var f fpo.FPO
	err := r.db.First(&f, id).Error
	return f, err
}

func (r *DBFPORepo) List() ([]fpo.FPO, error) {
	var fpos []fpo.FPO
	err := r.db.Order("id asc").Find(&fpos).Error
	return fpos, err
}

func (r *DBFPORepo) Save(f *fpo.FPO) error {
	return r.db.Save(f).Error
}

func (r *DBFPORepo) Delete(id uint) error {
	return r.db.Unscoped().Delete(&fpo.FPO{}, id).Error
}

func (r *DBFPORepo) Count() (int64, error) {
	var n int64
	err := r.db.Model(&fpo.FPO{}).Count(&n).Error
	return n, err
}

// --- board members ---

func (r *DBFPORepo) CreateBoardMember(m *fpo.BoardMember) error {
	return r.db.Create(m).Error
}

func (r *DBFPORepo) ListBoardMembers(fpoID uint) ([]fpo.BoardMember, error) {
	var out []fpo.BoardMember
	err := r.db.Where("fpo_id = ?", fpoID).Order("id asc").Find(&out).Error
	return out, err
}

func (r *DBFPORepo) FindBoardMember(id uint) (fpo.BoardMember, error) {
	var m fpo.BoardMember
	err := r.db.First(&m, id).Error
	return m, err
}

func (r *DBFPORepo) SaveBoardMember(m *fpo.BoardMember) error {
	return r.db.Save(m).Error
}

func (r *DBFPORepo) DeleteBoardMember(id uint) error {
	return r.db.Unscoped().Delete(&fpo.BoardMember{}, id).Error
}

// --- farm services ---

func (r *DBFPORepo) CreateFarmService(s *fpo.FarmService) error {
	return r.db.Create(s).Error
}

func (r *DBFPORepo) ListFarmServices(fpoID uint) ([]fpo.FarmService, error) {
	var out []fpo.FarmService
	err := r.db.Where("fpo_id = ?", fpoID).Order("id asc").Find(&out).Error
	return out, err
}

func (r *DBFPORepo) FindFarmService(id uint) (fpo.FarmService, error) {
	var s fpo.FarmService
	err := r.db.First(&s, id).Error
	return s, err
}

func (r *DBFPORepo) SaveFarmService(s *fpo.FarmService) error {
	return r.db.Save(s).Error
}

func (r *DBFPORepo) DeleteFarmService(id uint) error {
	return r.db.Unscoped().Delete(&fpo.FarmService{}, id).Error
}

// --- turnover records ---

func (r *DBFPORepo) CreateTurnoverRecord(t *fpo.TurnoverRecord) error {
	return r.db.Create(t).Error
}

func (r *DBFPORepo) ListTurnoverRecords(fpoID uint) ([]fpo.TurnoverRecord, error) {
	var out []fpo.TurnoverRecord
	err := r.db.Where("fpo_id = ?", fpoID).Order("id asc").Find(&out).Error
	return out, err
}

func (r *DBFPORepo) FindTurnoverRecord(id uint) (fpo.TurnoverRecord, error) {
	var t fpo.TurnoverRecord
	err := r.db.First(&t, id).Error
	return t, err
}

func (r *DBFPORepo) SaveTurnoverRecord(t *fpo.TurnoverRecord) error {
	return r.db.Save(t).Error
}

func (r *DBFPORepo) DeleteTurnoverRecord(id uint) error {
	return r.db.Unscoped().Delete(&fpo.TurnoverRecord{}, id).Error
}

// --- crop entries ---

func (r *DBFPORepo) CreateCropEntry(cr *fpo.CropEntry) error {
	return r.db.Create(cr).Error
}

func (r *DBFPORepo) ListCropEntries(fpoID uint) ([]fpo.CropEntry, error) {
	var out []fpo.CropEntry
	err := r.db.Where("fpo_id = ?", fpoID).Order("id asc").Find(&out).Error
	return out, err
}

func (r *DBFPORepo) FindCropEntry(id uint) (fpo.CropEntry, error) {
	var cr fpo.CropEntry
	err := r.db.First(&cr, id).Error
	return cr, err
}

func (r *DBFPORepo) SaveCropEntry(cr *fpo.CropEntry) error {
	return r.db.Save(cr).Error
}

func (r *DBFPORepo) DeleteCropEntry(id uint) error {
	return r.db.Unscoped().Delete(&fpo.CropEntry{}, id).Error
}

// --- input shops ---

func (r *DBFPORepo) CreateInputShop(s *fpo.InputShop) error {
	return r.db.Create(s).Error
}

func (r *DBFPORepo) ListInputShops(fpoID uint) ([]fpo.InputShop, error) {
	var out []fpo.InputShop
	err := r.db.Where("fpo_id = ?", fpoID).Order("id asc").Find(&out).Error
	return out, err
}

func (r *DBFPORepo) FindInputShop(id uint) (fpo.InputShop, error) {
	var s fpo.InputShop
	err := r.db.First(&s, id).Error
	return s, err
}

func (r *DBFPORepo) SaveInputShop(s *fpo.InputShop) error {
	return r.db.Save(s).Error
}

func (r *DBFPORepo) DeleteInputShop(id uint) error {
	return r.db.Unscoped().Delete(&fpo.InputShop{}, id).Error
}

// --- product categories ---

func (r *DBFPORepo) CreateProductCategory(ca *fpo.ProductCategory) error {
	return r.db.Create(ca).Error
}

func (r *DBFPORepo) ListProductCategories(fpoID uint) ([]fpo.ProductCategory, error) {
	var out []fpo.ProductCategory
	err := r.db.Where("fpo_id = ?", fpoID).Order("id asc").Find(&out).Error
	return out, err
}

func (r *DBFPORepo) FindProductCategory(id uint) (fpo.ProductCategory, error) {
	var ca fpo.ProductCategory
	err := r.db.First(&ca, id).Error
	return ca, err
}

func (r *DBFPORepo) SaveProductCategory(ca *fpo.ProductCategory) error {
	return r.db.Save(ca).Error
}

func (r *DBFPORepo) DeleteProductCategory(id uint) error {
	return r.db.Unscoped().Delete(&fpo.ProductCategory{}, id).Error
}

// --- products ---

func (r *DBFPORepo) CreateProduct(p *fpo.Product) error {
	return r.db.Create(p).Error
}

func (r *DBFPORepo) ListProducts(fpoID uint) ([]fpo.Product, error) {
	var out []fpo.Product
	err := r.db.Where("fpo_id = ?", fpoID).Order("id asc").Find(&out).Error
	return out, err
}

func (r *DBFPORepo) FindProduct(id uint) (fpo.Product, error) {
	var p fpo.Product
	err := r.db.First(&p, id).Error
	return p, err
}

func (r *DBFPORepo) SaveProduct(p *fpo.Product) error {
	return r.db.Save(p).Error
}

func (r *DBFPORepo) DeleteProduct(id uint) error {
	return r.db.Unscoped().Delete(&fpo.Product{}, id).Error
}

// --- fpo users ---

func (r *DBFPORepo) CreateFPOUser(u *fpo.FPOUser) error {
	return r.db.Create(u).Error
}

func (r *DBFPORepo) ListFPOUsers(fpoID uint) ([]fpo.FPOUser, error) {
	var out []fpo.FPOUser
	err := r.db.Where("fpo_id = ?", fpoID).Order("id asc").Find(&out).Error
	return out, err
}

func (r *DBFPORepo) FindFPOUser(id uint) (fpo.FPOUser, error) {
	var u fpo.FPOUser
	err := r.db.First(&u, id).Error
	return u, err
}

func (r *DBFPORepo) SaveFPOUser(u *fpo.FPOUser) error {
	return r.db.Save(u).Error
}

func (r *DBFPORepo) DeleteFPOUser(id uint) error {
	return r.db.Unscoped().Delete(&fpo.FPOUser{}, id).Error
}

// PurgeSubEntities removes every sub-collection row scoped to the FPO.
// Called inside the FPO-delete transaction.
func (r *DBFPORepo) PurgeSubEntities(fpoID uint) error {
	for _, model := range []interface{}{
		&fpo.BoardMember{},
		&fpo.FarmService{},
		&fpo.TurnoverRecord{},
		&fpo.CropEntry{},
		&fpo.InputShop{},
		&fpo.Product{},
		&fpo.ProductCategory{},
		&fpo.FPOUser{},
	} {
		if err := r.db.Unscoped().Where("fpo_id = ?", fpoID).Delete(model).Error; err != nil {
			return err
		}
	}
	return nil
}

func (r *DBFPORepo) WithTx(tx *gorm.DB) FPORepo {
	if tx == nil {
		return r
	}
	return &DBFPORepo{db: tx}
}
