package storage

import (
	"context"
	"errors"
	"fmt"
	"io"

	"cloud.google.com/go/storage"
	"google.golang.org/api/option"
)

// GCSInvoiceStore keeps invoices as objects in a Cloud Storage bucket.
type GCSInvoiceStore struct {
	client *storage.Client
	bucket string
}

func NewGCSInvoiceStore(ctx context.Context, bucket, credentialsJSON string) (*GCSInvoiceStore, error) {
	if bucket == "" {
		return nil, errors.New("GCS_BUCKET is required for the gcs storage provider")
	}

	var opts []option.ClientOption
	if credentialsJSON != "" {
		opts = append(opts, option.WithCredentialsJSON([]byte(credentialsJSON)))
	}

	client, err := storage.NewClient(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("storage.NewClient: %w", err)
	}
	return &GCSInvoiceStore{client: client, bucket: bucket}, nil
}

func (s *GCSInvoiceStore) Save(ctx context.Context, filename string, r io.Reader) (string, error) {
	key := InvoiceKey(filename)

	obj := s.client.Bucket(s.bucket).Object(key).If(storage.Conditions{DoesNotExist: true})
	w := obj.NewWriter(ctx)
	if _, err := io.Copy(w, r); err != nil {
		w.Close()
		return "", fmt.Errorf("io.Copy: %w", err)
	}
	if err := w.Close(); err != nil {
		return "", fmt.Errorf("Writer.Close: %w", err)
	}
	return key, nil
}

func (s *GCSInvoiceStore) Delete(ctx context.Context, key string) error {
	err := s.client.Bucket(s.bucket).Object(key).Delete(ctx)
	if errors.Is(err, storage.ErrObjectNotExist) {
		return nil
	}
	return err
}

func (s *GCSInvoiceStore) Close() error {
	return s.client.Close()
}
