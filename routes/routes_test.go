package routes

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http/httptest"
	"testing"

	"asset-tracker/migration"
	"asset-tracker/models"

	"github.com/glebarez/sqlite"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
	Errors  []struct {
		Field   string `json:"field"`
		Message string `json:"message"`
	} `json:"errors"`
}

func newTestApp(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatal(err)
	}
	sqlDB, _ := db.DB()
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })
	db.Exec("PRAGMA foreign_keys = ON")
	if err := migration.Migrate(db); err != nil {
		t.Fatal(err)
	}

	return NewApp(Dependencies{DB: db}), db
}

func call(t *testing.T, app *fiber.App, method, path, token string, body any) (int, envelope) {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		raw, _ := json.Marshal(body)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, "/api/v1"+path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("%s %s: %v", method, path, err)
	}
	defer resp.Body.Close()

	var out envelope
	json.NewDecoder(resp.Body).Decode(&out)
	return resp.StatusCode, out
}

func decodeID(t *testing.T, raw json.RawMessage) uint {
	t.Helper()
	var v struct {
		ID uint `json:"id"`
	}
	if err := json.Unmarshal(raw, &v); err != nil {
		t.Fatalf("decode id from %s: %v", raw, err)
	}
	return v.ID
}

func TestProtectedRoutesRequireToken(t *testing.T) {
	app, _ := newTestApp(t)

	for _, path := range []string{"/receivings", "/assets", "/dispatches", "/consignments/next-code"} {
		status, body := call(t, app, "GET", path, "", nil)
		if status != fiber.StatusUnauthorized || body.Success {
			t.Errorf("GET %s without token: %d %+v", path, status, body)
		}
	}

	status, _ := call(t, app, "GET", "/assets", "garbage", nil)
	if status != fiber.StatusUnauthorized {
		t.Errorf("malformed header: %d", status)
	}

	if status, _ := call(t, app, "GET", "/consignments", "", nil); status != fiber.StatusOK {
		t.Errorf("consignment list is public, got %d", status)
	}
	if status, _ := call(t, app, "GET", "/locations", "", nil); status != fiber.StatusOK {
		t.Errorf("location list is public, got %d", status)
	}
}

func TestLifecycleOverHTTP(t *testing.T) {
	app, db := newTestApp(t)

	status, reg := call(t, app, "POST", "/auth/register", "", map[string]any{
		"username": "ada", "password": "s3cret", "first_name": "Ada", "last_name": "Lovelace",
	})
	if status != fiber.StatusCreated {
		t.Fatalf("register: %d %s", status, reg.Message)
	}
	var session struct {
		Token string      `json:"token"`
		User  models.User `json:"user"`
	}
	json.Unmarshal(reg.Data, &session)

	status, loc := call(t, app, "POST", "/locations", session.Token, map[string]any{"name": "Main Store"})
	if status != fiber.StatusCreated {
		t.Fatalf("location: %d %s", status, loc.Message)
	}
	locationID := decodeID(t, loc.Data)

	status, cons := call(t, app, "POST", "/consignments", session.Token, map[string]any{
		"supplier": "Acme", "quantity": 2, "location_id": locationID, "invoice_number": "INV-1",
	})
	if status != fiber.StatusCreated {
		t.Fatalf("consignment: %d %s", status, cons.Message)
	}
	var consignment models.Consignment
	json.Unmarshal(cons.Data, &consignment)
	if consignment.Code() != "SLK001" || consignment.ReceivedByID != session.User.ID {
		t.Fatalf("consignment = %+v", consignment)
	}

	status, bad := call(t, app, "POST", "/receivings", session.Token, map[string]any{"consignment_id": consignment.ID})
	if status != fiber.StatusBadRequest || len(bad.Errors) == 0 {
		t.Fatalf("invalid receiving: %d %+v", status, bad)
	}

	status, rec := call(t, app, "POST", "/receivings", session.Token, map[string]any{
		"consignment_id": consignment.ID, "serial_number": "SN-1", "description": "Laptop", "status": "approved",
	})
	if status != fiber.StatusCreated {
		t.Fatalf("receiving: %d %s", status, rec.Message)
	}
	receivingID := decodeID(t, rec.Data)

	status, asset := call(t, app, "POST", "/assets", session.Token, map[string]any{
		"receiving_id": receivingID, "tag_number": "TAG-1",
	})
	if status != fiber.StatusCreated {
		t.Fatalf("asset: %d %s", status, asset.Message)
	}
	assetID := decodeID(t, asset.Data)

	status, _ = call(t, app, "PATCH", fmt.Sprintf("/assets/%d/status", assetID), session.Token, map[string]any{"status": "in_use"})
	if status != fiber.StatusOK {
		t.Fatalf("asset status: %d", status)
	}

	status, gate := call(t, app, "POST", "/dispatches", session.Token, map[string]any{
		"asset_id": assetID, "approver_id": session.User.ID, "status": "pending",
	})
	if status != fiber.StatusConflict || gate.Message != "asset not available" {
		t.Fatalf("dispatch gate: %d %q", status, gate.Message)
	}

	var dispatches int64
	db.Model(&models.Dispatch{}).Count(&dispatches)
	if dispatches != 0 {
		t.Fatalf("%d dispatches written past the gate", dispatches)
	}

	status, hist := call(t, app, "GET", fmt.Sprintf("/assets/%d/history", assetID), session.Token, nil)
	if status != fiber.StatusOK {
		t.Fatalf("history: %d", status)
	}
	var entries []models.TransactionHistory
	json.Unmarshal(hist.Data, &entries)
	if len(entries) != 1 || entries[0].ToStatus != "in_use" {
		t.Fatalf("history = %s", hist.Data)
	}

	if status, _ := call(t, app, "GET", "/assets/999", session.Token, nil); status != fiber.StatusNotFound {
		t.Fatalf("missing asset: %d", status)
	}

	if status, _ := call(t, app, "GET", "/auth/logout", session.Token, nil); status != fiber.StatusOK {
		t.Fatalf("logout: %d", status)
	}
	if status, _ := call(t, app, "GET", "/assets", session.Token, nil); status != fiber.StatusUnauthorized {
		t.Fatalf("token still valid after logout: %d", status)
	}
}

func TestCategoryRoutes(t *testing.T) {
	app, _ := newTestApp(t)

	_, reg := call(t, app, "POST", "/auth/register", "", map[string]any{"username": "ada", "password": "s3cret"})
	var session struct {
		Token string `json:"token"`
	}
	json.Unmarshal(reg.Data, &session)

	if status, _ := call(t, app, "POST", "/categories", "", map[string]any{"name": "Monitors"}); status != fiber.StatusUnauthorized {
		t.Fatalf("anonymous create: %d", status)
	}

	status, created := call(t, app, "POST", "/categories", session.Token, map[string]any{"name": "Monitors & Screens"})
	if status != fiber.StatusCreated {
		t.Fatalf("create: %d %s", status, created.Message)
	}
	var category models.Category
	json.Unmarshal(created.Data, &category)
	if category.Slug != "monitors-screens" {
		t.Fatalf("slug = %q", category.Slug)
	}

	status, dup := call(t, app, "POST", "/categories", session.Token, map[string]any{"name": "Monitors Screens"})
	if status != fiber.StatusBadRequest || len(dup.Errors) != 1 || dup.Errors[0].Field != "slug" {
		t.Fatalf("duplicate slug: %d %+v", status, dup)
	}

	status, list := call(t, app, "GET", "/categories", "", nil)
	if status != fiber.StatusOK {
		t.Fatalf("list: %d", status)
	}
	var all []models.Category
	json.Unmarshal(list.Data, &all)
	if len(all) != 1 {
		t.Fatalf("got %d categories", len(all))
	}

	if status, _ := call(t, app, "DELETE", fmt.Sprintf("/categories/%d", category.ID), session.Token, nil); status != fiber.StatusOK {
		t.Fatalf("delete: %d", status)
	}
	if status, _ := call(t, app, "GET", fmt.Sprintf("/categories/%d", category.ID), "", nil); status != fiber.StatusNotFound {
		t.Fatalf("get deleted: %d", status)
	}
}
