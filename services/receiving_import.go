package services

import (
	"asset-tracker/models"
	"asset-tracker/repositories"
	"asset-tracker/utils"
	"fmt"
	"io"
	"strings"

	"github.com/xuri/excelize/v2"
	"gorm.io/gorm"
)

// ReceivingImportColumns is the header expected in spreadsheets and manifests, in order.
var ReceivingImportColumns = []string{"Consignment", "Serial Number", "Description", "Name", "Model", "Category", "Status"}

// ReceivingImportRow is one line of a bulk receiving file. Row is the 1-based line number.
type ReceivingImportRow struct {
	Row             int
	ConsignmentCode string
	SerialNumber    string
	Description     string
	Name            string
	Model           string
	CategorySlug    string
	Status          string
}

type ImportResult struct {
	Imported      int      `json:"imported"`
	SerialNumbers []string `json:"serial_numbers"`
}

// RowFromCells maps positional cells onto a row; missing trailing cells are empty.
func RowFromCells(rowNum int, cells []string) ReceivingImportRow {
	cell := func(i int) string {
		if i < len(cells) {
			return strings.TrimSpace(cells[i])
		}
		return ""
	}
	return ReceivingImportRow{
		Row:             rowNum,
		ConsignmentCode: cell(0),
		SerialNumber:    cell(1),
		Description:     cell(2),
		Name:            cell(3),
		Model:           cell(4),
		CategorySlug:    cell(5),
		Status:          cell(6),
	}
}

func isBlank(cells []string) bool {
	for _, c := range cells {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}

// ParseReceivingSheet reads the first sheet of an .xlsx workbook. The first row is the header.
func ParseReceivingSheet(r io.Reader) ([]ReceivingImportRow, error) {
	excelFile, err := excelize.OpenReader(r)
	if err != nil {
		return nil, utils.NewValidationError("file", nil, "Failed to read Excel file. Please ensure the file is not corrupted.")
	}
	defer excelFile.Close()

	sheets := excelFile.GetSheetList()
	if len(sheets) == 0 {
		return nil, utils.NewValidationError("file", nil, "Excel file contains no sheets.")
	}

	rows, err := excelFile.GetRows(sheets[0])
	if err != nil {
		return nil, err
	}
	return RowsFromTable(rows)
}

// RowsFromTable turns header-led tabular data into import rows, skipping blank lines.
func RowsFromTable(table [][]string) ([]ReceivingImportRow, error) {
	var out []ReceivingImportRow
	for i, cells := range table {
		if i == 0 || isBlank(cells) {
			continue
		}
		out = append(out, RowFromCells(i+1, cells))
	}
	if len(out) == 0 {
		return nil, utils.NewValidationError("file", nil, "The file has no data rows.")
	}
	return out, nil
}

func (s *ReceivingService) Import(r io.Reader) (*ImportResult, error) {
	rows, err := ParseReceivingSheet(r)
	if err != nil {
		return nil, err
	}
	return s.ImportRows(rows)
}

// ImportRows creates every row through the regular receiving save path in one transaction. Any
// rejected row rolls the whole batch back; all row errors are reported together.
func (s *ReceivingService) ImportRows(rows []ReceivingImportRow) (*ImportResult, error) {
	result := &ImportResult{SerialNumbers: []string{}}

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		var rowErrs utils.ValidationErrors

		for _, row := range rows {
			input, err := resolveImportRow(tx, row)
			if err == nil {
				_, err = createReceiving(tx, input)
			}
			if err != nil {
				if utils.IsValidationError(err) || utils.IsNotFound(err) {
					rowErrs = append(rowErrs, utils.NewValidationError(fmt.Sprintf("row %d", row.Row), row.SerialNumber, err.Error()))
					continue
				}
				return err
			}

			result.Imported++
			result.SerialNumbers = append(result.SerialNumbers, row.SerialNumber)
		}

		if len(rowErrs) > 0 {
			return rowErrs
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

func resolveImportRow(tx *gorm.DB, row ReceivingImportRow) (ReceivingInput, error) {
	if row.ConsignmentCode == "" {
		return ReceivingInput{}, utils.NewValidationError("consignment", nil, "This field is required.")
	}
	consignment, err := repositories.NewConsignmentRepository(tx).FindByCode(strings.ToUpper(row.ConsignmentCode))
	if err != nil {
		return ReceivingInput{}, err
	}

	input := ReceivingInput{
		ConsignmentID: consignment.ID,
		SerialNumber:  row.SerialNumber,
		Description:   row.Description,
		Status:        models.ReceivingStatus(strings.ToLower(row.Status)),
	}
	if row.Name != "" {
		input.Name = &row.Name
	}
	if row.Model != "" {
		input.Model = &row.Model
	}
	if row.CategorySlug != "" {
		category, err := repositories.NewCategoryRepository(tx).GetBySlug(models.Slugify(row.CategorySlug))
		if err != nil {
			return ReceivingInput{}, err
		}
		input.CategoryID = &category.ID
	}
	return input, nil
}
