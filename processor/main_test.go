package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"asset-tracker/config"
	"asset-tracker/migration"
	"asset-tracker/models"
	"asset-tracker/services"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type summaryMailer struct {
	subjects []string
	bodies   []string
}

func (m *summaryMailer) Send(to []string, subject, htmlBody string) error {
	m.subjects = append(m.subjects, subject)
	m.bodies = append(m.bodies, htmlBody)
	return nil
}

func newProcessor(t *testing.T) (*Processor, string, string) {
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
	if err := migration.Migrate(db); err != nil {
		t.Fatal(err)
	}

	user := models.User{Username: "receiver", Password: "x"}
	loc := models.Location{Name: "Main Store"}
	db.Create(&user)
	db.Create(&loc)
	c := &models.Consignment{Supplier: "Acme", Quantity: 2, LocationID: loc.ID, ReceivedByID: user.ID}
	db.Create(c)
	db.Model(c).UpdateColumn("slk_id", "SLK001")

	root := t.TempDir()
	in := filepath.Join(root, "unprocessed")
	out := filepath.Join(root, "processed")
	os.MkdirAll(in, os.ModePerm)

	return &Processor{
		DB:           db,
		Receivings:   services.NewReceivingService(db),
		ProcessedDir: out,
		Logger:       config.GetLogger(),
	}, in, out
}

func writeManifest(t *testing.T, dir, name string, lines ...string) {
	t.Helper()
	content := strings.Join(append([]string{strings.Join(services.ReceivingImportColumns, ",")}, lines...), "\n")
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestProcessDirImportsEachManifestOnce(t *testing.T) {
	p, in, out := newProcessor(t)
	writeManifest(t, in, "batch1.csv",
		"SLK001,SN-1,Laptop,,,,approved",
		"SLK001,SN-2,Dock",
	)

	reports, err := p.ProcessDir(in)
	if err != nil {
		t.Fatal(err)
	}
	if len(reports) != 1 || reports[0].Err != nil || reports[0].Imported != 2 {
		t.Fatalf("reports = %+v", reports)
	}
	if _, err := os.Stat(filepath.Join(out, "batch1.csv")); err != nil {
		t.Fatalf("manifest not moved: %v", err)
	}

	// A second copy under the same name is skipped.
	writeManifest(t, in, "batch1.csv", "SLK001,SN-3,Monitor")
	reports, _ = p.ProcessDir(in)
	if len(reports) != 0 {
		t.Fatalf("reprocessed a known manifest: %+v", reports)
	}

	var count int64
	p.DB.Model(&models.Receiving{}).Count(&count)
	if count != 2 {
		t.Fatalf("%d receivings, want 2", count)
	}
}

func TestProcessDirKeepsRejectedManifest(t *testing.T) {
	p, in, _ := newProcessor(t)
	mailer := &summaryMailer{}
	p.Mailer = mailer
	p.Recipients = []string{"stores@example.com"}

	writeManifest(t, in, "bad.csv",
		"SLK001,SN-1,Laptop",
		"SLK404,SN-2,Dock",
	)

	reports, err := p.ProcessDir(in)
	if err != nil {
		t.Fatal(err)
	}
	if len(reports) != 1 || reports[0].Err == nil {
		t.Fatalf("reports = %+v", reports)
	}
	if _, err := os.Stat(filepath.Join(in, "bad.csv")); err != nil {
		t.Fatalf("rejected manifest moved: %v", err)
	}

	var logs int64
	p.DB.Model(&models.FileLog{}).Count(&logs)
	if logs != 0 {
		t.Fatal("rejected manifest logged as processed")
	}

	p.sendSummary(reports)
	if len(mailer.subjects) != 1 || !strings.Contains(mailer.bodies[0], "bad.csv: failed") {
		t.Fatalf("summary = %v", mailer.bodies)
	}
}
