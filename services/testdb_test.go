package services

import (
	"testing"

	"asset-tracker/migration"
	"asset-tracker/models"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("db handle: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	if err := db.Exec("PRAGMA foreign_keys = ON").Error; err != nil {
		t.Fatalf("pragma: %v", err)
	}
	if err := migration.Migrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

type world struct {
	db       *gorm.DB
	user     models.User
	approver models.User
	main     models.Location
	branch   models.Location
	laptops  models.Category
}

func newWorld(t *testing.T) *world {
	t.Helper()
	w := &world{
		db:       openTestDB(t),
		user:     models.User{Username: "receiver", Password: "x", FirstName: "Ada", LastName: "Lovelace", IsActive: true},
		approver: models.User{Username: "approver", Password: "x", FirstName: "Grace", LastName: "Hopper", IsActive: true},
		main:     models.Location{Name: "Main Store"},
		branch:   models.Location{Name: "Branch Office"},
		laptops:  models.Category{Name: "Laptops"},
	}
	for _, row := range []any{&w.user, &w.approver, &w.main, &w.branch, &w.laptops} {
		if err := w.db.Create(row).Error; err != nil {
			t.Fatalf("seed: %v", err)
		}
	}
	return w
}

func (w *world) consignment(t *testing.T, supplier string) *models.Consignment {
	t.Helper()
	invoice := "INV-" + supplier
	c, err := NewConsignmentService(w.db, nil, nil, nil).Create(ctxBG, ConsignmentInput{
		Supplier:      supplier,
		Quantity:      5,
		LocationID:    w.main.ID,
		InvoiceNumber: &invoice,
	}, nil, w.user.ID)
	if err != nil {
		t.Fatalf("create consignment: %v", err)
	}
	return c
}

func (w *world) receiving(t *testing.T, consignmentID uint, serial string, status models.ReceivingStatus) *ReceivingRecord {
	t.Helper()
	rec, err := NewReceivingService(w.db).Create(ReceivingInput{
		ConsignmentID: consignmentID,
		SerialNumber:  serial,
		Description:   "ThinkPad T14",
		Status:        status,
	})
	if err != nil {
		t.Fatalf("create receiving: %v", err)
	}
	return rec
}

func (w *world) asset(t *testing.T, receivingID uint, tag string) *AssetRecord {
	t.Helper()
	a, err := NewAssetService(w.db).Create(AssetInput{ReceivingID: receivingID, TagNumber: tag})
	if err != nil {
		t.Fatalf("create asset: %v", err)
	}
	return a
}

func strPtr(s string) *string { return &s }
