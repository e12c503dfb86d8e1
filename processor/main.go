package main

import (
	"asset-tracker/config"
	"asset-tracker/database"
	"asset-tracker/migration"
	"asset-tracker/models"
	"asset-tracker/services"
	"asset-tracker/utils"
	"encoding/csv"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// Processor imports receiving manifests (CSV, same columns as the spreadsheet import) from a
// folder. Each file is imported once; finished files move to the processed folder.
type Processor struct {
	DB           *gorm.DB
	Receivings   *services.ReceivingService
	Mailer       services.MailSender
	Recipients   []string
	ProcessedDir string
	Logger       *logrus.Logger
}

type fileReport struct {
	Filename string
	Imported int
	Err      error
}

func (p *Processor) ProcessDir(dir string) ([]fileReport, error) {
	files, err := filepath.Glob(filepath.Join(dir, "*.csv"))
	if err != nil {
		return nil, err
	}

	var reports []fileReport
	for _, file := range files {
		report, skipped := p.processFile(file)
		if skipped {
			continue
		}
		reports = append(reports, report)
	}
	return reports, nil
}

// processFile reports skipped=true when the file was already imported earlier.
func (p *Processor) processFile(filename string) (fileReport, bool) {
	name := filepath.Base(filename)
	report := fileReport{Filename: name}

	var existing models.FileLog
	err := p.DB.Where("filename = ?", name).First(&existing).Error
	if err == nil {
		p.Logger.WithField("file", name).Info("manifest already processed, skip")
		return report, true
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		report.Err = err
		return report, false
	}

	info, err := os.Stat(filename)
	if err != nil {
		report.Err = err
		return report, false
	}

	rows, err := readManifest(filename)
	if err != nil {
		report.Err = err
		return report, false
	}

	result, err := p.Receivings.ImportRows(rows)
	if err != nil {
		report.Err = err
		return report, false
	}
	report.Imported = result.Imported

	if err := p.DB.Create(&models.FileLog{Filename: name, DateModified: info.ModTime(), RowsImported: result.Imported}).Error; err != nil {
		report.Err = err
		return report, false
	}

	if p.ProcessedDir != "" {
		if err := moveFile(filename, filepath.Join(p.ProcessedDir, name)); err != nil {
			config.LogError(p.Logger, "processor", "processFile", "move file", name, err)
		}
	}
	return report, false
}

func readManifest(filename string) ([]services.ReceivingImportRow, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1
	records, err := reader.ReadAll()
	if err != nil {
		return nil, err
	}
	return services.RowsFromTable(records)
}

func moveFile(src, dst string) error {
	if err := os.MkdirAll(filepath.Dir(dst), os.ModePerm); err != nil {
		return err
	}
	if err := os.Rename(src, dst); err == nil {
		return nil
	}
	return copyAndDeleteFile(src, dst)
}

func copyAndDeleteFile(src, dst string) error {
	sourceFile, err := os.Open(src)
	if err != nil {
		return err
	}
	defer sourceFile.Close()

	destinationFile, err := os.Create(dst)
	if err != nil {
		return err
	}
	defer destinationFile.Close()

	if _, err := io.Copy(destinationFile, sourceFile); err != nil {
		return err
	}

	sourceFile.Close()
	return os.Remove(src)
}

func (p *Processor) sendSummary(reports []fileReport) {
	if p.Mailer == nil || len(p.Recipients) == 0 || len(reports) == 0 {
		return
	}

	var b strings.Builder
	b.WriteString("<html><body><h3>Receiving manifests processed</h3><ul>")
	for _, r := range reports {
		if r.Err != nil {
			fmt.Fprintf(&b, "<li>%s: failed (%s)</li>", r.Filename, r.Err.Error())
			continue
		}
		fmt.Fprintf(&b, "<li>%s: %d receivings</li>", r.Filename, r.Imported)
	}
	b.WriteString("</ul><p>This is an auto-generated email. Please do not reply.</p></body></html>")

	if err := p.Mailer.Send(p.Recipients, "Receiving manifests processed", b.String()); err != nil {
		config.LogError(p.Logger, "processor", "sendSummary", "send mail", len(reports), err)
	}
}

func main() {
	inDir := flag.String("in", "manifests/unprocessed", "folder holding manifest CSV files")
	outDir := flag.String("out", "manifests/processed", "folder receiving processed files")
	flag.Parse()

	config.LoadConfig()
	config.SetupLogger()
	logger := config.GetLogger()

	db, err := database.OpenDatabaseConnection(config.DBName)
	if err != nil {
		logger.Fatalf("Failed to connect to database: %v", err)
	}
	if err := migration.Migrate(db); err != nil {
		logger.Fatalf("Failed to auto migrate: %v", err)
	}

	p := &Processor{
		DB:           db,
		Receivings:   services.NewReceivingService(db),
		Recipients:   config.NotifyEmails,
		ProcessedDir: *outDir,
		Logger:       logger,
	}
	if config.SMTPEnabled() {
		p.Mailer = utils.NewMailerFromConfig()
	}

	reports, err := p.ProcessDir(*inDir)
	if err != nil {
		logger.Fatalf("Failed to read folder: %v", err)
	}
	for _, r := range reports {
		if r.Err != nil {
			config.LogError(logger, "processor", "main", "import manifest", r.Filename, r.Err)
			continue
		}
		logger.WithFields(logrus.Fields{"file": r.Filename, "rows": r.Imported}).Info("manifest imported")
	}
	p.sendSummary(reports)
}
