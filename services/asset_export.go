package services

import (
	"asset-tracker/config"
	"asset-tracker/repositories"
	"fmt"
	"io"
	"time"

	"github.com/xuri/excelize/v2"
)

var assetExportHeaders = []string{
	"Tag Number", "Serial Number", "Name", "Model", "Description", "Status",
	"Supplier", "Invoice Number", "Location", "Received By", "Receiving ID",
}

// Export writes the asset register as an .xlsx workbook to w.
func (s *AssetService) Export(w io.Writer, f repositories.AssetFilter) error {
	assets, err := s.List(f)
	if err != nil {
		return err
	}

	file := excelize.NewFile()
	defer file.Close()

	sheet := "Assets"
	file.SetSheetName("Sheet1", sheet)

	for i, header := range assetExportHeaders {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		file.SetCellValue(sheet, cell, header)
	}

	for i, a := range assets {
		row := i + 2
		location := ""
		if a.Location != nil {
			location = a.Location.Name
		}
		values := []any{
			a.TagNumber, deref(a.SerialNumber), deref(a.Name), deref(a.Model), deref(a.Description),
			string(a.Status), deref(a.Supplier), deref(a.InvoiceNumber), location, a.ReceivedByFullName, a.ReceivingID,
		}
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row)
			file.SetCellValue(sheet, cell, v)
		}
	}

	footer, _ := excelize.CoordinatesToCellName(1, len(assets)+3)
	file.SetCellValue(sheet, footer, fmt.Sprintf("Generated %s", exportTimestamp()))

	return file.Write(w)
}

// ExportFilename is the download name for an export made now.
func ExportFilename() string {
	return "assets_" + time.Now().In(exportLocation()).Format("20060102_150405") + ".xlsx"
}

func exportTimestamp() string {
	return time.Now().In(exportLocation()).Format("2006-01-02 15:04:05 MST")
}

func exportLocation() *time.Location {
	loc, err := time.LoadLocation(config.TimeZone)
	if err != nil {
		return time.UTC
	}
	return loc
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
