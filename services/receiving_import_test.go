package services

import (
	"bytes"
	"errors"
	"testing"

	"asset-tracker/models"
	"asset-tracker/repositories"
	"asset-tracker/utils"

	"github.com/xuri/excelize/v2"
)

func TestRowsFromTable(t *testing.T) {
	rows, err := RowsFromTable([][]string{
		ReceivingImportColumns,
		{"SLK001", " SN-1 ", "Laptop"},
		{"", "  ", ""},
		{"slk001", "SN-2", "Dock", "", "", "laptops", "Approved"},
	})
	if err != nil {
		t.Fatal(err)
	}
	if len(rows) != 2 {
		t.Fatalf("got %d rows", len(rows))
	}
	if rows[0].Row != 2 || rows[0].SerialNumber != "SN-1" || rows[0].Status != "" {
		t.Fatalf("first row = %+v", rows[0])
	}
	if rows[1].Row != 4 || rows[1].CategorySlug != "laptops" {
		t.Fatalf("second row = %+v", rows[1])
	}

	if _, err := RowsFromTable([][]string{ReceivingImportColumns}); !utils.IsValidationError(err) {
		t.Fatalf("header-only table: got %v", err)
	}
}

func TestImportRowsAllOrNothing(t *testing.T) {
	w := newWorld(t)
	w.consignment(t, "Acme")
	svc := NewReceivingService(w.db)

	_, err := svc.ImportRows([]ReceivingImportRow{
		{Row: 2, ConsignmentCode: "SLK001", SerialNumber: "SN-1", Description: "Laptop"},
		{Row: 3, ConsignmentCode: "SLK404", SerialNumber: "SN-2", Description: "Laptop"},
		{Row: 4, ConsignmentCode: "SLK001", SerialNumber: "SN-1", Description: "Duplicate"},
	})

	var errs utils.ValidationErrors
	if !errors.As(err, &errs) {
		t.Fatalf("want ValidationErrors, got %v", err)
	}
	if len(errs) != 2 || errs[0].Field != "row 3" || errs[1].Field != "row 4" {
		t.Fatalf("row errors = %v", errs)
	}

	all, _ := svc.List(repositories.ReceivingFilter{})
	if len(all) != 0 {
		t.Fatalf("%d receivings written by a failed import", len(all))
	}
}

func TestImportSpreadsheet(t *testing.T) {
	w := newWorld(t)
	w.consignment(t, "Acme")

	book := excelize.NewFile()
	for i, row := range [][]any{
		{"Consignment", "Serial Number", "Description", "Name", "Model", "Category", "Status"},
		{"SLK001", "SN-1", "Laptop", "ThinkPad", "T14", "Laptops", "approved"},
		{"SLK001", "SN-2", "Dock"},
	} {
		cell, _ := excelize.CoordinatesToCellName(1, i+1)
		if err := book.SetSheetRow("Sheet1", cell, &row); err != nil {
			t.Fatal(err)
		}
	}
	var buf bytes.Buffer
	if err := book.Write(&buf); err != nil {
		t.Fatal(err)
	}

	svc := NewReceivingService(w.db)
	result, err := svc.Import(&buf)
	if err != nil {
		t.Fatal(err)
	}
	if result.Imported != 2 || result.SerialNumbers[1] != "SN-2" {
		t.Fatalf("result = %+v", result)
	}

	rows, _ := svc.List(repositories.ReceivingFilter{})
	if rows[0].Status != models.ReceivingApproved || rows[0].CategoryID == nil || *rows[0].CategoryID != w.laptops.ID {
		t.Fatalf("first import = %+v", rows[0].Receiving)
	}
	if rows[1].Status != models.ReceivingPending || *rows[1].Supplier != "Acme" {
		t.Fatalf("second import = %+v", rows[1].Receiving)
	}

	if _, err := svc.Import(bytes.NewBufferString("not a workbook")); !utils.IsValidationError(err) {
		t.Fatalf("garbage upload: got %v", err)
	}
}
