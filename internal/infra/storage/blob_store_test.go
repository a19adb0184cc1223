package storage

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openMemStore(t *testing.T, prefix string) *BlobImageStore {
	t.Helper()

	store, err := OpenBucketStore(context.Background(), "mem://", prefix, slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	return store
}

func TestBlobImageStore_Save(t *testing.T) {
	store := openMemStore(t, "")
	ctx := context.Background()
	customerID := uuid.MustParse("6f9c1e2a-3b4d-4e5f-8a9b-0c1d2e3f4a5b")
	image := []byte("\xff\xd8\xff\xe0 fake jpeg")

	key, err := store.Save(ctx, customerID, image, "image/jpeg")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(key, "invoices/"+customerID.String()+"/"))
	assert.True(t, strings.HasSuffix(key, ".jpg"))

	stored, err := store.bucket.ReadAll(ctx, key)
	require.NoError(t, err)
	assert.Equal(t, image, stored)

	attrs, err := store.bucket.Attributes(ctx, key)
	require.NoError(t, err)
	assert.Equal(t, "image/jpeg", attrs.ContentType)
}

func TestBlobImageStore_KeyIsContentAddressed(t *testing.T) {
	store := openMemStore(t, "/archive/")
	customerID := uuid.New()

	first := store.key(customerID, []byte("a"), "image/png")
	second := store.key(customerID, []byte("a"), "image/png")
	other := store.key(customerID, []byte("b"), "image/png")

	assert.Equal(t, first, second)
	assert.NotEqual(t, first, other)
	assert.True(t, strings.HasPrefix(first, "archive/"))
	assert.True(t, strings.HasSuffix(store.key(customerID, []byte("a"), "application/pdf"), ".pdf"))
	assert.True(t, strings.HasSuffix(store.key(customerID, []byte("a"), "text/plain"), ".bin"))
}

func TestOpenBucketStore_UnknownScheme(t *testing.T) {
	_, err := OpenBucketStore(context.Background(), "nope://bucket", "", slog.New(slog.NewTextHandler(io.Discard, nil)))
	assert.Error(t, err)
}
