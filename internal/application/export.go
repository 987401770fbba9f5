package application

import (
	"bytes"
	"fmt"
	"time"

	"github.com/agrisetu/registry-go/internal/domain/farmer"
	"github.com/agrisetu/registry-go/internal/repository"
	"github.com/xuri/excelize/v2"
)

// ExportService renders the farmer roster as an xlsx workbook for
// offline review.
type ExportService struct {
	Repos *repository.Repos
}

func NewExportService(repos *repository.Repos) *ExportService {
	return &ExportService{Repos: repos}
}

var farmerExportHeader = []string{
	"Farmer Code", "Name", "Phone", "State", "District", "Region",
	"KYC Status", "Assignment Status", "Assigned Employee", "Assigned Date",
}

func (s *ExportService) ExportFarmers(filter farmer.Filter) ([]byte, error) {
	farmers, err := s.Repos.Farmer.List(filter)
	if err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Farmers"
	index, err := f.NewSheet(sheet)
	if err != nil {
		return nil, err
	}
	f.SetActiveSheet(index)
	f.DeleteSheet("Sheet1")

	for col, title := range farmerExportHeader {
		cell, _ := excelize.CoordinatesToCellName(col+1, 1)
		if err := f.SetCellValue(sheet, cell, title); err != nil {
			return nil, err
		}
	}

	for row, fr := range farmers {
		assignee := ""
		if fr.AssignedEmployee != nil {
			assignee = fr.AssignedEmployee.Name
		}
		assignedDate := ""
		if fr.AssignedDate != nil {
			assignedDate = fr.AssignedDate.Format(time.DateOnly)
		}

		values := []interface{}{
			fr.FarmerCode, fr.Name, fr.Phone, fr.State, fr.District, fr.Region,
			string(fr.KycStatus), string(fr.AssignmentStatus), assignee, assignedDate,
		}
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row+2)
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return nil, err
			}
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}
	return buf.Bytes(), nil
}
