package storage

import (
	"asset-tracker/config"
	"asset-tracker/controllers/idgen"
	"context"
	"fmt"
	"io"
	"path"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"
)

// InvoicePrefix namespaces every stored invoice attachment.
const InvoicePrefix = "invoices"

// InvoiceStore keeps write-once invoice files. Save returns the key the file was stored under.
type InvoiceStore interface {
	Save(ctx context.Context, filename string, r io.Reader) (string, error)
	Delete(ctx context.Context, key string) error
}

var unsafeName = regexp.MustCompile(`[^A-Za-z0-9._-]+`)

// InvoiceKey builds a fresh "invoices/<id>_<name>" key for an uploaded file.
func InvoiceKey(filename string) string {
	name := unsafeName.ReplaceAllString(filepath.Base(filename), "_")
	name = strings.Trim(name, "._")
	if name == "" {
		name = "invoice"
	}
	return path.Join(InvoicePrefix, strconv.FormatInt(idgen.GenerateID(), 10)+"_"+name)
}

// NewInvoiceStore builds the store selected by STORAGE_PROVIDER.
func NewInvoiceStore(ctx context.Context) (InvoiceStore, error) {
	switch config.StorageProvider {
	case "", "local":
		return NewLocalInvoiceStore(config.MediaRoot), nil
	case "gcs":
		return NewGCSInvoiceStore(ctx, config.GCSBucket, config.GCSCredentials)
	default:
		return nil, fmt.Errorf("unsupported STORAGE_PROVIDER: %s", config.StorageProvider)
	}
}
