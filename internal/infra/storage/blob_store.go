// Package storage archives invoice images in a gocloud.dev/blob bucket.
package storage

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"log/slog"
	"path"
	"strings"

	"clubefast/config"
	"clubefast/internal/domain/constants"
	"clubefast/internal/domain/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"gocloud.dev/blob"
	_ "gocloud.dev/blob/fileblob"
	_ "gocloud.dev/blob/memblob"
)

const defaultPrefix = "invoices"

// BlobImageStore implements service.InvoiceImageStore on a gocloud.dev/blob bucket.
type BlobImageStore struct {
	bucket *blob.Bucket
	prefix string
	logger *slog.Logger
}

// Params holds dependencies for the image store, injected by Fx
type Params struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewInvoiceImageStore opens the configured bucket. Without storage.bucketUrl archiving is disabled
// and a nil store is returned.
func NewInvoiceImageStore(params Params) (service.InvoiceImageStore, error) {
	cfg := params.Config.Storage
	if cfg == nil || strings.TrimSpace(cfg.BucketURL) == "" {
		params.Logger.Info("Invoice image archive disabled")

		return nil, nil
	}

	store, err := OpenBucketStore(params.Ctx, cfg.BucketURL, cfg.Prefix, params.Logger)
	if err != nil {
		return nil, err
	}

	params.Lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			return store.Close()
		},
	})

	return store, nil
}

// OpenBucketStore opens a bucket by URL, e.g. file:///var/lib/clubefast or mem://.
func OpenBucketStore(ctx context.Context, bucketURL, prefix string, logger *slog.Logger) (*BlobImageStore, error) {
	bucket, err := blob.OpenBucket(ctx, bucketURL)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open bucket %s", bucketURL)
	}

	if prefix = strings.Trim(prefix, "/"); prefix == "" {
		prefix = defaultPrefix
	}

	logger.Info("Invoice image archive ready", slog.String("bucket", bucketURL), slog.String("prefix", prefix))

	return &BlobImageStore{bucket: bucket, prefix: prefix, logger: logger}, nil
}

// Save stores the image under <prefix>/<customerID>/<sha256>.<ext>. Identical uploads share a key.
func (s *BlobImageStore) Save(ctx context.Context, customerID uuid.UUID, image []byte, mimeType string) (string, error) {
	key := s.key(customerID, image, mimeType)

	if err := s.bucket.WriteAll(ctx, key, image, &blob.WriterOptions{ContentType: mimeType}); err != nil {
		return "", errors.Wrapf(err, "failed to write %s", key)
	}

	s.logger.DebugContext(ctx, "Invoice image archived", slog.String("key", key), slog.Int("bytes", len(image)))

	return key, nil
}

// Close releases the bucket.
func (s *BlobImageStore) Close() error {
	return errors.WithStack(s.bucket.Close())
}

func (s *BlobImageStore) key(customerID uuid.UUID, image []byte, mimeType string) string {
	sum := sha256.Sum256(image)

	ext, ok := constants.AllowedImageMimeTypes[strings.ToLower(mimeType)]
	if !ok {
		ext = "bin"
	}

	return path.Join(s.prefix, customerID.String(), fmt.Sprintf("%s.%s", hex.EncodeToString(sum[:]), ext))
}
