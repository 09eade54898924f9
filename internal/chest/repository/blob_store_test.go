package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gocloud.dev/blob/memblob"

	"github.com/petrilli/aletheia/internal/chest/domain"
	apperrors "github.com/petrilli/aletheia/internal/errors"
)

func newTestStore(t *testing.T) *BlobStore {
	t.Helper()
	bucket := memblob.OpenBucket(nil)
	t.Cleanup(func() {
		assert.NoError(t, bucket.Close())
	})
	return NewBlobStoreFromBucket(bucket)
}

func TestNewBlobStore(t *testing.T) {
	ctx := context.Background()

	t.Run("Success_MemURL", func(t *testing.T) {
		store, err := NewBlobStore(ctx, "mem://")
		require.NoError(t, err)
		require.NotNil(t, store)
		defer func() {
			assert.NoError(t, store.Close())
		}()

		accessible, err := store.IsAccessible(ctx)
		require.NoError(t, err)
		assert.True(t, accessible)
	})

	t.Run("Error_UnknownScheme", func(t *testing.T) {
		store, err := NewBlobStore(ctx, "bogus://bucket")
		assert.Error(t, err)
		assert.Nil(t, store)
		assert.Contains(t, err.Error(), "failed to open bucket")
	})
}

func TestBlobStore_WriteReadAttributes(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	metadata := map[string]string{
		domain.MetadataKey: "projects/proj1/locations/global/keyRings/aletheia/cryptoKeys/proj1",
	}
	err := store.Write(ctx, "db/password", []byte("ciphertext"), domain.ContentType, metadata)
	require.NoError(t, err)

	attrs, err := store.Attributes(ctx, "db/password")
	require.NoError(t, err)
	assert.Equal(t, domain.ContentType, attrs.ContentType)
	assert.Equal(t, metadata[domain.MetadataKey], attrs.Metadata[domain.MetadataKey])
	assert.Equal(t, int64(len("ciphertext")), attrs.Size)
	assert.False(t, attrs.UpdatedAt.IsZero())

	payload, err := store.Read(ctx, "db/password")
	require.NoError(t, err)
	assert.Equal(t, []byte("ciphertext"), payload)
}

func TestBlobStore_Overwrite(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	require.NoError(t, store.Write(ctx, "name", []byte("first"), domain.ContentType, nil))
	require.NoError(t, store.Write(ctx, "name", []byte("second"), domain.ContentType, nil))

	payload, err := store.Read(ctx, "name")
	require.NoError(t, err)
	assert.Equal(t, []byte("second"), payload)
}

func TestBlobStore_NotFound(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	t.Run("Attributes", func(t *testing.T) {
		attrs, err := store.Attributes(ctx, "missing")
		assert.Nil(t, attrs)
		assert.ErrorIs(t, err, apperrors.ErrNotFound)
	})

	t.Run("Read", func(t *testing.T) {
		payload, err := store.Read(ctx, "missing")
		assert.Nil(t, payload)
		assert.ErrorIs(t, err, apperrors.ErrNotFound)
	})

	t.Run("Delete", func(t *testing.T) {
		err := store.Delete(ctx, "missing")
		assert.ErrorIs(t, err, apperrors.ErrNotFound)
	})
}

func TestBlobStore_Delete(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	require.NoError(t, store.Write(ctx, "name", []byte("payload"), domain.ContentType, nil))
	require.NoError(t, store.Delete(ctx, "name"))

	_, err := store.Read(ctx, "name")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestBlobStore_List(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	names := []string{"db/password", "db/username", "api/token"}
	for _, name := range names {
		require.NoError(t, store.Write(ctx, name, []byte("payload"), domain.ContentType, nil))
	}

	t.Run("Success_All", func(t *testing.T) {
		infos, err := store.List(ctx, "", 0)
		require.NoError(t, err)
		require.Len(t, infos, 3)
		// memblob lists in lexical order.
		assert.Equal(t, "api/token", infos[0].Name)
		assert.Equal(t, "db/password", infos[1].Name)
		assert.Equal(t, "db/username", infos[2].Name)
	})

	t.Run("Success_Prefix", func(t *testing.T) {
		infos, err := store.List(ctx, "db/", 0)
		require.NoError(t, err)
		require.Len(t, infos, 2)
		for _, info := range infos {
			assert.Contains(t, info.Name, "db/")
			assert.Equal(t, int64(len("payload")), info.Size)
			assert.False(t, info.UpdatedAt.IsZero())
		}
	})

	t.Run("Success_Limit", func(t *testing.T) {
		infos, err := store.List(ctx, "", 2)
		require.NoError(t, err)
		assert.Len(t, infos, 2)
	})

	t.Run("Success_NoMatches", func(t *testing.T) {
		infos, err := store.List(ctx, "nothing/", 0)
		require.NoError(t, err)
		assert.Empty(t, infos)
	})
}
