// Package usecase defines the interfaces and implementations for chest
// operations. A chest binds one KMS key and one bucket and orchestrates
// encryption and storage so that secrets are always encrypted before they
// leave the process and decrypted only on demand.
package usecase

import (
	"context"

	"github.com/petrilli/aletheia/internal/chest/domain"
)

// KeyService defines the encryption capability a chest depends on.
type KeyService interface {
	Encrypt(ctx context.Context, route domain.KeyRoute, plaintext []byte) ([]byte, error)
	Decrypt(ctx context.Context, route domain.KeyRoute, ciphertext []byte) ([]byte, error)
}

// ObjectStore defines the persistence operations a chest depends on.
type ObjectStore interface {
	IsAccessible(ctx context.Context) (bool, error)
	Attributes(ctx context.Context, name string) (*domain.ObjectAttrs, error)
	Read(ctx context.Context, name string) ([]byte, error)
	Write(
		ctx context.Context,
		name string,
		payload []byte,
		contentType string,
		metadata map[string]string,
	) error
	List(ctx context.Context, prefix string, limit int) ([]domain.SecretInfo, error)
	Delete(ctx context.Context, name string) error
}

// ChestUseCase defines the operations of a chest.
type ChestUseCase interface {
	// Create encrypts value with the chest's key and stores it under name,
	// replacing any existing secret with that name. The returned secret has
	// its plaintext already cached.
	Create(ctx context.Context, name string, value []byte) (*domain.Secret, error)
	// Get retrieves the secret stored under name without decrypting it. The
	// returned secret carries the key route recorded at write time, which may
	// differ from the chest's own route.
	Get(ctx context.Context, name string) (*domain.Secret, error)
	// Delete removes the secret stored under name.
	Delete(ctx context.Context, name string) error
	// List returns stored secrets matching prefix, without payloads.
	List(ctx context.Context, prefix string, limit int) ([]domain.SecretInfo, error)
	// Route returns the chest's own key route.
	Route() domain.KeyRoute
}
