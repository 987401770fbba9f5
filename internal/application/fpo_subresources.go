package application

import (
	"github.com/agrisetu/registry-go/internal/domain/fpo"
)

// Sub-resource CRUD. Every operation first resolves the parent FPO;
// update/delete additionally require the row to belong to it.

// --- board members ---

func (s *FPOService) CreateBoardMember(fpoID uint, m fpo.BoardMember) (*fpo.BoardMember, error) {
	if err := s.requireFPO(fpoID); err != nil {
		return nil, err
	}
	m.ID = 0
	m.FPOID = fpoID
	return &m, s.Repos.FPO.CreateBoardMember(&m)
}

func (s *FPOService) ListBoardMembers(fpoID uint) ([]fpo.BoardMember, error) {
	if err := s.requireFPO(fpoID); err != nil {
		return nil, err
	}
	return s.Repos.FPO.ListBoardMembers(fpoID)
}

func (s *FPOService) UpdateBoardMember(fpoID, id uint, m fpo.BoardMember) (fpo.BoardMember, error) {
	existing, err := s.Repos.FPO.FindBoardMember(id)
	if err != nil || existing.FPOID != fpoID {
		return fpo.BoardMember{}, ErrNotFound
	}
	existing.Name = m.Name
	existing.Designation = m.Designation
	existing.Phone = m.Phone
	return existing, s.Repos.FPO.SaveBoardMember(&existing)
}

func (s *FPOService) DeleteBoardMember(fpoID, id uint) error {
	existing, err := s.Repos.FPO.FindBoardMember(id)
	if err != nil || existing.FPOID != fpoID {
		return ErrNotFound
	}
	return s.Repos.FPO.DeleteBoardMember(id)
}

// --- farm services ---

func (s *FPOService) CreateFarmService(fpoID uint, sv fpo.FarmService) (*fpo.FarmService, error) {
	if err := s.requireFPO(fpoID); err != nil {
		return nil, err
	}
	sv.ID = 0
	sv.FPOID = fpoID
	return &sv, s.Repos.FPO.CreateFarmService(&sv)
}

func (s *FPOService) ListFarmServices(fpoID uint) ([]fpo.FarmService, error) {
	if err := s.requireFPO(fpoID); err != nil {
		return nil, err
	}
	return s.Repos.FPO.ListFarmServices(fpoID)
}

func (s *FPOService) UpdateFarmService(fpoID, id uint, sv fpo.FarmService) (fpo.FarmService, error) {
	existing, err := s.Repos.FPO.FindFarmService(id)
	if err != nil || existing.FPOID != fpoID {
		return fpo.FarmService{}, ErrNotFound
	}
	existing.Name = sv.Name
	existing.Description = sv.Description
	existing.Charge = sv.Charge
	return existing, s.Repos.FPO.SaveFarmService(&existing)
}

func (s *FPOService) DeleteFarmService(fpoID, id uint) error {
	existing, err := s.Repos.FPO.FindFarmService(id)
	if err != nil || existing.FPOID != fpoID {
		return ErrNotFound
	}
	return s.Repos.FPO.DeleteFarmService(id)
}

// --- turnover records ---

func (s *FPOService) CreateTurnoverRecord(fpoID uint, t fpo.TurnoverRecord) (*fpo.TurnoverRecord, error) {
	if err := s.requireFPO(fpoID); err != nil {
		return nil, err
	}
	t.ID = 0
	t.FPOID = fpoID
	return &t, s.Repos.FPO.CreateTurnoverRecord(&t)
}

func (s *FPOService) ListTurnoverRecords(fpoID uint) ([]fpo.TurnoverRecord, error) {
	if err := s.requireFPO(fpoID); err != nil {
		return nil, err
	}
	return s.Repos.FPO.ListTurnoverRecords(fpoID)
}

func (s *FPOService) UpdateTurnoverRecord(fpoID, id uint, t fpo.TurnoverRecord) (fpo.TurnoverRecord, error) {
	existing, err := s.Repos.FPO.FindTurnoverRecord(id)
	if err != nil || existing.FPOID != fpoID {
		return fpo.TurnoverRecord{}, ErrNotFound
	}
	existing.FinancialYear = t.FinancialYear
	existing.Amount = t.Amount
	existing.Remarks = t.Remarks
	return existing, s.Repos.FPO.SaveTurnoverRecord(&existing)
}

func (s *FPOService) DeleteTurnoverRecord(fpoID, id uint) error {
	existing, err := s.Repos.FPO.FindTurnoverRecord(id)
	if err != nil || existing.FPOID != fpoID {
		return ErrNotFound
	}
	return s.Repos.FPO.DeleteTurnoverRecord(id)
}

// --- crop entries ---

func (s *FPOService) CreateCropEntry(fpoID uint, cr fpo.CropEntry) (*fpo.CropEntry, error) {
	if err := s.requireFPO(fpoID); err != nil {
		return nil, err
	}
	cr.ID = 0
	cr.FPOID = fpoID
	return &cr, s.Repos.FPO.CreateCropEntry(&cr)
}

func (s *FPOService) ListCropEntries(fpoID uint) ([]fpo.CropEntry, error) {
	if err := s.requireFPO(fpoID); err != nil {
		return nil, err
	}
	return s.Repos.FPO.ListCropEntries(fpoID)
}

func (s *FPOService) UpdateCropEntry(fpoID, id uint, cr fpo.CropEntry) (fpo.CropEntry, error) {
	existing, err := s.Repos.FPO.FindCropEntry(id)
	if err != nil || existing.FPOID != fpoID {
		return fpo.CropEntry{}, ErrNotFound
	}
	existing.CropName = cr.CropName
	existing.Season = cr.Season
	existing.Acreage = cr.Acreage
	return existing, s.Repos.FPO.SaveCropEntry(&existing)
}

func (s *FPOService) DeleteCropEntry(fpoID, id uint) error {
	existing, err := s.Repos.FPO.FindCropEntry(id)
	if err != nil || existing.FPOID != fpoID {
		return ErrNotFound
	}
	return s.Repos.FPO.DeleteCropEntry(id)
}

// --- input shops ---

func (s *FPOService) CreateInputShop(fpoID uint, sh fpo.InputShop) (*fpo.InputShop, error) {
	if err := s.requireFPO(fpoID); err != nil {
		return nil, err
	}
	sh.ID = 0
	sh.FPOID = fpoID
	return &sh, s.Repos.FPO.CreateInputShop(&sh)
}

func (s *FPOService) ListInputShops(fpoID uint) ([]fpo.InputShop, error) {
	if err := s.requireFPO(fpoID); err != nil {
		return nil, err
	}
	return s.Repos.FPO.ListInputShops(fpoID)
}

func (s *FPOService) UpdateInputShop(fpoID, id uint, sh fpo.InputShop) (fpo.InputShop, error) {
	existing, err := s.Repos.FPO.FindInputShop(id)
	if err != nil || existing.FPOID != fpoID {
		return fpo.InputShop{}, ErrNotFound
	}
	existing.Name = sh.Name
	existing.Location = sh.Location
	existing.LicenseNo = sh.LicenseNo
	return existing, s.Repos.FPO.SaveInputShop(&existing)
}

func (s *FPOService) DeleteInputShop(fpoID, id uint) error {
	existing, err := s.Repos.FPO.FindInputShop(id)
	if err != nil || existing.FPOID != fpoID {
		return ErrNotFound
	}
	return s.Repos.FPO.DeleteInputShop(id)
}

// --- product categories ---

func (s *FPOService) CreateProductCategory(fpoID uint, ca fpo.ProductCategory) (*fpo.ProductCategory, error) {
	if err := s.requireFPO(fpoID); err != nil {
		return nil, err
	}
	ca.ID = 0
	ca.FPOID = fpoID
	return &ca, s.Repos.FPO.CreateProductCategory(&ca)
}

func (s *FPOService) ListProductCategories(fpoID uint) ([]fpo.ProductCategory, error) {
	if err := s.requireFPO(fpoID); err != nil {
		return nil, err
	}
	return s.Repos.FPO.ListProductCategories(fpoID)
}

func (s *FPOService) UpdateProductCategory(fpoID, id uint, ca fpo.ProductCategory) (fpo.ProductCategory, error) {
	existing, err := s.Repos.FPO.FindProductCategory(id)
	if err != nil || existing.FPOID != fpoID {
		return fpo.ProductCategory{}, ErrNotFound
	}
	existing.Name = ca.Name
	return existing, s.Repos.FPO.SaveProductCategory(&existing)
}

func (s *FPOService) DeleteProductCategory(fpoID, id uint) error {
	existing, err := s.Repos.FPO.FindProductCategory(id)
	if err != nil || existing.FPOID != fpoID {
		return ErrNotFound
	}
	return s.Repos.FPO.DeleteProductCategory(id)
}

// --- products ---

func (s *FPOService) CreateProduct(fpoID uint, p fpo.Product) (*fpo.Product, error) {
	if err := s.requireFPO(fpoID); err != nil {
		return nil, err
	}
	p.ID = 0
	p.FPOID = fpoID
	return &p, s.Repos.FPO.CreateProduct(&p)
}

func (s *FPOService) ListProducts(fpoID uint) ([]fpo.Product, error) {
	if err := s.requireFPO(fpoID); err != nil {
		return nil, err
	}
	return s.Repos.FPO.ListProducts(fpoID)
}

func (s *FPOService) UpdateProduct(fpoID, id uint, p fpo.Product) (fpo.Product, error) {
	existing, err := s.Repos.FPO.FindProduct(id)
	if err != nil || existing.FPOID != fpoID {
		return fpo.Product{}, ErrNotFound
	}
	existing.CategoryID = p.CategoryID
	existing.Name = p.Name
	existing.Unit = p.Unit
	existing.Price = p.Price
	existing.Attributes = p.Attributes
	return existing, s.Repos.FPO.SaveProduct(&existing)
}

func (s *FPOService) DeleteProduct(fpoID, id uint) error {
	existing, err := s.Repos.FPO.FindProduct(id)
	if err != nil || existing.FPOID != fpoID {
		return ErrNotFound
	}
	return s.Repos.FPO.DeleteProduct(id)
}

// --- fpo users ---

func (s *FPOService) CreateFPOUser(fpoID uint, u fpo.FPOUser) (*fpo.FPOUser, error) {
	if err := s.requireFPO(fpoID); err != nil {
		return nil, err
	}
	u.ID = 0
	u.FPOID = fpoID
	return &u, s.Repos.FPO.CreateFPOUser(&u)
}

func (s *FPOService) ListFPOUsers(fpoID uint) ([]fpo.FPOUser, error) {
	if err := s.requireFPO(fpoID); err != nil {
		return nil, err
	}
	return s.Repos.FPO.ListFPOUsers(fpoID)
}

func (s *FPOService) UpdateFPOUser(fpoID, id uint, u fpo.FPOUser) (fpo.FPOUser, error) {
	existing, err := s.Repos.FPO.FindFPOUser(id)
	if err != nil || existing.FPOID != fpoID {
		return fpo.FPOUser{}, ErrNotFound
	}
	existing.Name = u.Name
	existing.Email = u.Email
	existing.Phone = u.Phone
	existing.Role = u.Role
	return existing, s.Repos.FPO.SaveFPOUser(&existing)
}

func (s *FPOService) DeleteFPOUser(fpoID, id uint) error {
	existing, err := s.Repos.FPO.FindFPOUser(id)
	if err != nil || existing.FPOID != fpoID {
		return ErrNotFound
	}
	return s.Repos.FPO.DeleteFPOUser(id)
}
