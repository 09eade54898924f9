// Package repository implements object persistence for chest secrets on top
// of gocloud.dev/blob buckets.
package repository

import (
	"context"
	"fmt"
	"io"

	"gocloud.dev/blob"
	"gocloud.dev/gcerrors"

	"github.com/petrilli/aletheia/internal/chest/domain"
	apperrors "github.com/petrilli/aletheia/internal/errors"

	// Register all object store drivers
	_ "gocloud.dev/blob/azureblob"
	_ "gocloud.dev/blob/fileblob"
	_ "gocloud.dev/blob/gcsblob"
	_ "gocloud.dev/blob/memblob"
	_ "gocloud.dev/blob/s3blob"
)

// BlobStore persists encrypted secrets as objects in a gocloud.dev bucket.
type BlobStore struct {
	bucket *blob.Bucket
}

// NewBlobStore opens the bucket at the given URL. The scheme selects the
// driver (gs://, s3://, azblob://, file://, mem://).
func NewBlobStore(ctx context.Context, bucketURL string) (*BlobStore, error) {
	bucket, err := blob.OpenBucket(ctx, bucketURL)
	if err != nil {
		return nil, fmt.Errorf("failed to open bucket: %w", err)
	}
	return &BlobStore{bucket: bucket}, nil
}

// NewBlobStoreFromBucket wraps an already opened bucket.
func NewBlobStoreFromBucket(bucket *blob.Bucket) *BlobStore {
	return &BlobStore{bucket: bucket}
}

// IsAccessible reports whether the bucket exists and is reachable with the
// current credentials.
func (b *BlobStore) IsAccessible(ctx context.Context) (bool, error) {
	return b.bucket.IsAccessible(ctx)
}

// Attributes returns a stored object's attributes without its payload.
func (b *BlobStore) Attributes(ctx context.Context, name string) (*domain.ObjectAttrs, error) {
	attrs, err := b.bucket.Attributes(ctx, name)
	if err != nil {
		if gcerrors.Code(err) == gcerrors.NotFound {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.Wrap(err, "failed to get object attributes")
	}

	return &domain.ObjectAttrs{
		ContentType: attrs.ContentType,
		Metadata:    attrs.Metadata,
		Size:        attrs.Size,
		UpdatedAt:   attrs.ModTime,
	}, nil
}

// Read returns a stored object's payload.
func (b *BlobStore) Read(ctx context.Context, name string) ([]byte, error) {
	payload, err := b.bucket.ReadAll(ctx, name)
	if err != nil {
		if gcerrors.Code(err) == gcerrors.NotFound {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.Wrap(err, "failed to read object")
	}
	return payload, nil
}

// Write stores the payload under name with the given content type and
// metadata. An existing object under the same name is replaced.
func (b *BlobStore) Write(
	ctx context.Context,
	name string,
	payload []byte,
	contentType string,
	metadata map[string]string,
) error {
	opts := &blob.WriterOptions{
		ContentType: contentType,
		Metadata:    metadata,
	}
	if err := b.bucket.WriteAll(ctx, name, payload, opts); err != nil {
		return apperrors.Wrap(err, "failed to write object")
	}
	return nil
}

// Delete removes the object stored under name.
func (b *BlobStore) Delete(ctx context.Context, name string) error {
	if err := b.bucket.Delete(ctx, name); err != nil {
		if gcerrors.Code(err) == gcerrors.NotFound {
			return apperrors.ErrNotFound
		}
		return apperrors.Wrap(err, "failed to delete object")
	}
	return nil
}

// List returns objects whose names start with prefix, ordered by name. A
// limit of zero or less returns everything.
func (b *BlobStore) List(ctx context.Context, prefix string, limit int) ([]domain.SecretInfo, error) {
	iter := b.bucket.List(&blob.ListOptions{Prefix: prefix})

	infos := []domain.SecretInfo{}
	for limit <= 0 || len(infos) < limit {
		obj, err := iter.Next(ctx)
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, apperrors.Wrap(err, "failed to list objects")
		}
		infos = append(infos, domain.SecretInfo{
			Name:      obj.Key,
			Size:      obj.Size,
			UpdatedAt: obj.ModTime,
		})
	}
	return infos, nil
}

// Close releases the bucket handle.
func (b *BlobStore) Close() error {
	return b.bucket.Close()
}
