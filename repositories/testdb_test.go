package repositories

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

type fixture struct {
	user     models.User
	location models.Location
}

func seedFixture(t *testing.T, db *gorm.DB) fixture {
	t.Helper()
	f := fixture{
		user:     models.User{Username: "receiver", Password: "x", FirstName: "Ada", LastName: "Lovelace"},
		location: models.Location{Name: "Main Store"},
	}
	if err := db.Create(&f.user).Error; err != nil {
		t.Fatal(err)
	}
	if err := db.Create(&f.location).Error; err != nil {
		t.Fatal(err)
	}
	return f
}

func createConsignment(t *testing.T, db *gorm.DB, f fixture, supplier string) *models.Consignment {
	t.Helper()
	c := &models.Consignment{Supplier: supplier, Quantity: 1, LocationID: f.location.ID, ReceivedByID: f.user.ID}
	err := db.Transaction(func(tx *gorm.DB) error {
		return NewConsignmentRepository(tx).Create(c)
	})
	if err != nil {
		t.Fatalf("create consignment: %v", err)
	}
	return c
}
