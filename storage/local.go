package storage

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
)

// LocalInvoiceStore writes invoices below Root on the local disk.
type LocalInvoiceStore struct {
	Root string
}

func NewLocalInvoiceStore(root string) *LocalInvoiceStore {
	return &LocalInvoiceStore{Root: root}
}

func (s *LocalInvoiceStore) Save(ctx context.Context, filename string, r io.Reader) (string, error) {
	key := InvoiceKey(filename)
	full := filepath.Join(s.Root, filepath.FromSlash(key))

	if err := os.MkdirAll(filepath.Dir(full), os.ModePerm); err != nil {
		return "", err
	}

	// O_EXCL: an existing blob is never overwritten.
	f, err := os.OpenFile(full, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0o644)
	if err != nil {
		return "", err
	}

	if _, err := io.Copy(f, r); err != nil {
		f.Close()
		os.Remove(full)
		return "", err
	}
	if err := f.Close(); err != nil {
		os.Remove(full)
		return "", err
	}
	return key, nil
}

func (s *LocalInvoiceStore) Delete(ctx context.Context, key string) error {
	err := os.Remove(filepath.Join(s.Root, filepath.FromSlash(key)))
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	return err
}
