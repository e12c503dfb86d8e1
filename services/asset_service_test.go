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

func TestAssetRequiresApprovedReceiving(t *testing.T) {
	w := newWorld(t)
	c := w.consignment(t, "Acme")
	pending := w.receiving(t, c.ID, "SN-1", models.ReceivingPending)
	svc := NewAssetService(w.db)

	_, err := svc.Create(AssetInput{ReceivingID: pending.ID, TagNumber: "TAG-1"})
	var verr *utils.ValidationError
	if !errors.As(err, &verr) || verr.Field != "receiving_id" {
		t.Fatalf("pending receiving: got %v", err)
	}

	if _, err := svc.Create(AssetInput{ReceivingID: 404, TagNumber: "TAG-1"}); !utils.IsNotFound(err) {
		t.Fatalf("missing receiving: got %v", err)
	}

	options, err := svc.ReceivingOptions()
	if err != nil {
		t.Fatal(err)
	}
	if len(options) != 0 {
		t.Fatalf("pending receiving offered as option: %+v", options)
	}
}

func TestAssetCopiesReceivingFields(t *testing.T) {
	w := newWorld(t)
	c := w.consignment(t, "Acme")
	rec := w.receiving(t, c.ID, "SN-1", models.ReceivingApproved)

	a := w.asset(t, rec.ID, "TAG-1")

	if a.Status != models.AssetAvailable {
		t.Fatalf("status = %q, want available", a.Status)
	}
	if a.SerialNumber == nil || *a.SerialNumber != "SN-1" {
		t.Fatalf("serial = %v", a.SerialNumber)
	}
	if a.Description == nil || *a.Description != "ThinkPad T14" {
		t.Fatalf("description = %v", a.Description)
	}
	if a.Supplier == nil || *a.Supplier != "Acme" {
		t.Fatalf("supplier = %v", a.Supplier)
	}
	if a.LocationID == nil || *a.LocationID != w.main.ID {
		t.Fatalf("location = %v", a.LocationID)
	}
	if a.ReceivedByFullName != "Ada Lovelace" {
		t.Fatalf("full name = %q", a.ReceivedByFullName)
	}
}

func TestAssetUniqueness(t *testing.T) {
	w := newWorld(t)
	c := w.consignment(t, "Acme")
	first := w.receiving(t, c.ID, "SN-1", models.ReceivingApproved)
	second := w.receiving(t, c.ID, "SN-2", models.ReceivingApproved)
	w.asset(t, first.ID, "TAG-1")
	svc := NewAssetService(w.db)

	_, err := svc.Create(AssetInput{ReceivingID: second.ID, TagNumber: "TAG-1"})
	var verr *utils.ValidationError
	if !errors.As(err, &verr) || verr.Field != "tag_number" {
		t.Fatalf("duplicate tag: got %v", err)
	}

	_, err = svc.Create(AssetInput{ReceivingID: first.ID, TagNumber: "TAG-2"})
	if !errors.As(err, &verr) || verr.Message != "An asset with the serial number 'SN-1' already exists for this receiving." {
		t.Fatalf("duplicate serial: got %v", err)
	}
}

func TestAssetStatusUpdateRepullsReceiving(t *testing.T) {
	w := newWorld(t)
	c := w.consignment(t, "Acme")
	rec := w.receiving(t, c.ID, "SN-1", models.ReceivingApproved)
	a := w.asset(t, rec.ID, "TAG-1")

	_, err := NewReceivingService(w.db).Update(rec.ID, ReceivingInput{
		ConsignmentID: c.ID,
		SerialNumber:  "SN-1",
		Description:   "ThinkPad T14, refurbished",
		Name:          strPtr("Laptop"),
	})
	if err != nil {
		t.Fatal(err)
	}

	svc := NewAssetService(w.db)
	updated, err := svc.UpdateStatus(a.ID, "maintenance", w.user.ID)
	if err != nil {
		t.Fatal(err)
	}
	if updated.Status != models.AssetMaintenance {
		t.Fatalf("status = %q", updated.Status)
	}
	if *updated.Description != "ThinkPad T14, refurbished" || updated.Name == nil || *updated.Name != "Laptop" {
		t.Fatalf("receiving fields not re-pulled: %q / %v", *updated.Description, updated.Name)
	}

	if _, err := svc.UpdateStatus(a.ID, "lost", w.user.ID); !utils.IsValidationError(err) {
		t.Fatalf("invalid status accepted: %v", err)
	}
}

func TestAssetListAndExport(t *testing.T) {
	w := newWorld(t)
	c := w.consignment(t, "Acme")
	w.asset(t, w.receiving(t, c.ID, "SN-1", models.ReceivingApproved).ID, "TAG-1")
	second := w.asset(t, w.receiving(t, c.ID, "SN-2", models.ReceivingApproved).ID, "TAG-2")
	svc := NewAssetService(w.db)

	if _, err := svc.UpdateStatus(second.ID, "in_use", w.user.ID); err != nil {
		t.Fatal(err)
	}

	rows, err := svc.List(repositories.AssetFilter{Status: "in_use"})
	if err != nil {
		t.Fatal(err)
	}
	if len(rows) != 1 || rows[0].TagNumber != "TAG-2" {
		t.Fatalf("status filter: %+v", rows)
	}

	var buf bytes.Buffer
	if err := svc.Export(&buf, repositories.AssetFilter{}); err != nil {
		t.Fatal(err)
	}
	book, err := excelize.OpenReader(&buf)
	if err != nil {
		t.Fatal(err)
	}
	defer book.Close()

	sheet, err := book.GetRows("Assets")
	if err != nil {
		t.Fatal(err)
	}
	if sheet[0][0] != "Tag Number" || sheet[1][0] != "TAG-1" || sheet[2][0] != "TAG-2" {
		t.Fatalf("unexpected sheet: %v", sheet)
	}
	if sheet[1][8] != "Main Store" {
		t.Fatalf("location column = %q", sheet[1][8])
	}
}
