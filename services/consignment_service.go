package services

import (
	"asset-tracker/config"
	"asset-tracker/models"
	"asset-tracker/repositories"
	"asset-tracker/storage"
	"asset-tracker/utils"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// MailSender delivers notification mail. utils.Mailer is the SMTP implementation.
type MailSender interface {
	Send(to []string, subject, htmlBody string) error
}

type ConsignmentService struct {
	DB         *gorm.DB
	Invoices   storage.InvoiceStore
	Mailer     MailSender
	Recipients []string
	Logger     *logrus.Logger
}

func NewConsignmentService(db *gorm.DB, invoices storage.InvoiceStore, mailer MailSender, recipients []string) *ConsignmentService {
	return &ConsignmentService{
		DB:         db,
		Invoices:   invoices,
		Mailer:     mailer,
		Recipients: recipients,
		Logger:     config.GetLogger(),
	}
}

type ConsignmentInput struct {
	Supplier      string  `json:"supplier" form:"supplier" validate:"required,max=255"`
	Quantity      uint    `json:"quantity" form:"quantity" validate:"required,gt=0"`
	LocationID    uint    `json:"location_id" form:"location_id" validate:"required"`
	Datetime      string  `json:"datetime" form:"datetime"`
	InvoiceNumber *string `json:"invoice_number" form:"invoice_number" validate:"omitempty,max=100"`
	Comments      *string `json:"comments" form:"comments"`
	Project       *string `json:"project" form:"project" validate:"omitempty,max=255"`
}

// Attachment is an uploaded invoice file.
type Attachment struct {
	Filename string
	Content  io.Reader
}

// ConsignmentSummary is the list representation of a consignment.
type ConsignmentSummary struct {
	ID                 uint      `json:"id"`
	SlkID              string    `json:"slk_id"`
	Supplier           string    `json:"supplier"`
	Quantity           uint      `json:"quantity"`
	Datetime           time.Time `json:"datetime"`
	InvoiceNumber      *string   `json:"invoice_number"`
	Invoice            *string   `json:"invoice"`
	Comments           *string   `json:"comments"`
	Project            *string   `json:"project"`
	LocationName       string    `json:"location_name"`
	ReceivedByUsername string    `json:"received_by_username"`
	ReceivedByFullName string    `json:"received_by_full_name"`
}

func summarizeConsignment(c *models.Consignment) ConsignmentSummary {
	out := ConsignmentSummary{
		ID:                 c.ID,
		SlkID:              c.Code(),
		Supplier:           c.Supplier,
		Quantity:           c.Quantity,
		Datetime:           c.Datetime,
		InvoiceNumber:      c.InvoiceNumber,
		Invoice:            c.Invoice,
		Comments:           c.Comments,
		Project:            c.Project,
		ReceivedByFullName: fullName(c.ReceivedBy),
	}
	if c.Location != nil {
		out.LocationName = c.Location.Name
	}
	if c.ReceivedBy != nil {
		out.ReceivedByUsername = c.ReceivedBy.Username
	}
	return out
}

func (s *ConsignmentService) List(f repositories.ConsignmentFilter) ([]ConsignmentSummary, error) {
	rows, err := repositories.NewConsignmentRepository(s.DB).List(f)
	if err != nil {
		return nil, err
	}

	out := make([]ConsignmentSummary, 0, len(rows))
	for i := range rows {
		out = append(out, summarizeConsignment(&rows[i]))
	}
	return out, nil
}

func (s *ConsignmentService) Get(id uint) (*models.Consignment, error) {
	return repositories.NewConsignmentRepository(s.DB).FindByID(id)
}

func (s *ConsignmentService) NextCode() (string, error) {
	return repositories.NewConsignmentRepository(s.DB).NextIdentifier()
}

// Create stores the optional invoice, then inserts the consignment and assigns its code in one
// transaction. received_by is always the caller.
func (s *ConsignmentService) Create(ctx context.Context, input ConsignmentInput, invoice *Attachment, userID uint) (*models.Consignment, error) {
	input.Supplier = strings.TrimSpace(input.Supplier)
	if err := utils.ValidateStruct(input); err != nil {
		return nil, err
	}
	datetime, err := parseDatetime(input.Datetime)
	if err != nil {
		return nil, err
	}

	var invoiceKey *string
	if invoice != nil {
		if s.Invoices == nil {
			return nil, errors.New("invoice storage is not configured")
		}
		key, err := s.Invoices.Save(ctx, invoice.Filename, invoice.Content)
		if err != nil {
			return nil, err
		}
		invoiceKey = &key
	}

	c := &models.Consignment{
		Supplier:      input.Supplier,
		Quantity:      input.Quantity,
		LocationID:    input.LocationID,
		Datetime:      datetime,
		InvoiceNumber: input.InvoiceNumber,
		Invoice:       invoiceKey,
		ReceivedByID:  userID,
		Comments:      input.Comments,
		Project:       input.Project,
	}

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		if err := requireLocation(tx, "location_id", input.LocationID); err != nil {
			return err
		}
		return repositories.NewConsignmentRepository(tx).Create(c)
	})
	if err != nil {
		if invoiceKey != nil {
			if delErr := s.Invoices.Delete(ctx, *invoiceKey); delErr != nil {
				config.LogError(s.Logger, "consignment", "Create", "discard invoice", *invoiceKey, delErr)
			}
		}
		return nil, err
	}

	s.notifyArrival(c)
	return s.Get(c.ID)
}

// Update edits the consignment only. Receivings keep their copies until they are saved again.
func (s *ConsignmentService) Update(id uint, input ConsignmentInput) (*models.Consignment, error) {
	input.Supplier = strings.TrimSpace(input.Supplier)
	if err := utils.ValidateStruct(input); err != nil {
		return nil, err
	}
	datetime, err := parseDatetime(input.Datetime)
	if err != nil {
		return nil, err
	}

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		repo := repositories.NewConsignmentRepository(tx)
		c, err := repo.FindByID(id)
		if err != nil {
			return err
		}
		if err := requireLocation(tx, "location_id", input.LocationID); err != nil {
			return err
		}

		c.Supplier = input.Supplier
		c.Quantity = input.Quantity
		c.LocationID = input.LocationID
		c.InvoiceNumber = input.InvoiceNumber
		c.Comments = input.Comments
		c.Project = input.Project
		if !datetime.IsZero() {
			c.Datetime = datetime
		}
		return repo.Update(c)
	})
	if err != nil {
		return nil, err
	}
	return s.Get(id)
}

func (s *ConsignmentService) Delete(id uint) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		return repositories.NewConsignmentRepository(tx).Delete(id)
	})
}

func (s *ConsignmentService) notifyArrival(c *models.Consignment) {
	if s.Mailer == nil || len(s.Recipients) == 0 {
		return
	}

	subject := "New consignment " + c.Code()
	body := fmt.Sprintf(`
		<html>
			<body>
				<h3>New consignment received</h3>
				<p>Identifier: <strong>%s</strong></p>
				<p>Supplier: %s</p>
				<p>Quantity: %d</p>
				<p>This is an auto-generated email. Please do not reply.</p>
			</body>
		</html>
	`, c.Code(), c.Supplier, c.Quantity)

	if err := s.Mailer.Send(s.Recipients, subject, body); err != nil {
		config.LogError(s.Logger, "consignment", "notifyArrival", "send mail", c.Code(), err)
	}
}

// parseDatetime accepts RFC 3339 or "2006-01-02 15:04:05". Empty means "now", set on insert.
func parseDatetime(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, nil
	}
	for _, layout := range []string{time.RFC3339, "2006-01-02 15:04:05", "2006-01-02T15:04"} {
		if t, err := time.Parse(layout, value); err == nil {
			return t, nil
		}
	}
	return time.Time{}, utils.NewValidationError("datetime", value, "Datetime has wrong format.")
}
