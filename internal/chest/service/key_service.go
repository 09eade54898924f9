// Package service integrates the chest with its external collaborators
// through gocloud.dev portable APIs.
package service

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"gocloud.dev/secrets"

	"github.com/petrilli/aletheia/internal/chest/domain"

	// Register all KMS provider drivers
	_ "gocloud.dev/secrets/awskms"
	_ "gocloud.dev/secrets/azurekeyvault"
	_ "gocloud.dev/secrets/gcpkms"
	_ "gocloud.dev/secrets/hashivault"
	_ "gocloud.dev/secrets/localsecrets"
)

// Keeper is the slice of *secrets.Keeper the key service uses.
type Keeper interface {
	Encrypt(ctx context.Context, plaintext []byte) ([]byte, error)
	Decrypt(ctx context.Context, ciphertext []byte) ([]byte, error)
	Close() error
}

// OpenKeeperFunc opens a keeper for a driver URL. Tests substitute it to
// back routes with local keepers instead of cloud KMS connections.
type OpenKeeperFunc func(ctx context.Context, url string) (Keeper, error)

// KeyService encrypts and decrypts payloads against KMS keys addressed by
// route. Implementations hold no per-call state and are safe for concurrent
// use.
type KeyService interface {
	Encrypt(ctx context.Context, route domain.KeyRoute, plaintext []byte) ([]byte, error)
	Decrypt(ctx context.Context, route domain.KeyRoute, ciphertext []byte) ([]byte, error)
	Close() error
}

// kmsKeyService implements KeyService using gocloud.dev/secrets.
type kmsKeyService struct {
	scheme string
	open   OpenKeeperFunc

	mu      sync.Mutex
	keepers map[string]Keeper
}

// NewKeyService creates a key service that opens keepers with
// gocloud.dev/secrets. The scheme selects the driver (gcpkms://, awskms://,
// azurekeyvault://, hashivault://, base64key://) and is combined with the
// key route to form the keeper URL.
func NewKeyService(scheme string) KeyService {
	return NewKeyServiceWithOpener(scheme, func(ctx context.Context, url string) (Keeper, error) {
		return secrets.OpenKeeper(ctx, url)
	})
}

// NewKeyServiceWithOpener creates a key service with a custom keeper opener.
func NewKeyServiceWithOpener(scheme string, open OpenKeeperFunc) KeyService {
	return &kmsKeyService{
		scheme:  scheme,
		open:    open,
		keepers: make(map[string]Keeper),
	}
}

// Encrypt encrypts plaintext with the key addressed by route.
func (k *kmsKeyService) Encrypt(
	ctx context.Context,
	route domain.KeyRoute,
	plaintext []byte,
) ([]byte, error) {
	keeper, err := k.keeper(ctx, route)
	if err != nil {
		return nil, err
	}
	ciphertext, err := keeper.Encrypt(ctx, plaintext)
	if err != nil {
		return nil, fmt.Errorf("encrypt with %s: %w", route, err)
	}
	return ciphertext, nil
}

// Decrypt decrypts ciphertext with the key addressed by route.
func (k *kmsKeyService) Decrypt(
	ctx context.Context,
	route domain.KeyRoute,
	ciphertext []byte,
) ([]byte, error) {
	keeper, err := k.keeper(ctx, route)
	if err != nil {
		return nil, err
	}
	plaintext, err := keeper.Decrypt(ctx, ciphertext)
	if err != nil {
		return nil, fmt.Errorf("decrypt with %s: %w", route, err)
	}
	return plaintext, nil
}

// Close releases every keeper opened by the service.
func (k *kmsKeyService) Close() error {
	k.mu.Lock()
	defer k.mu.Unlock()

	var errs []error
	for url, keeper := range k.keepers {
		if err := keeper.Close(); err != nil {
			errs = append(errs, fmt.Errorf("close keeper %s: %w", url, err))
		}
	}
	clear(k.keepers)
	return errors.Join(errs...)
}

// keeper returns the keeper for the route, opening it on first use. Keepers
// are stateless handles, so one per route is shared across calls.
func (k *kmsKeyService) keeper(ctx context.Context, route domain.KeyRoute) (Keeper, error) {
	k.mu.Lock()
	defer k.mu.Unlock()

	url := fmt.Sprintf("%s://%s", k.scheme, route)
	if keeper, ok := k.keepers[url]; ok {
		return keeper, nil
	}

	keeper, err := k.open(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("failed to open KMS keeper: %w", err)
	}
	k.keepers[url] = keeper
	return keeper, nil
}
