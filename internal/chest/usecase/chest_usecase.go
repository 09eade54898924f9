package usecase

import (
	"context"
	"fmt"

	"github.com/petrilli/aletheia/internal/chest/domain"
	apperrors "github.com/petrilli/aletheia/internal/errors"
)

// chestUseCase implements the ChestUseCase interface.
type chestUseCase struct {
	route      domain.KeyRoute
	keyService KeyService
	store      ObjectStore
}

// NewChestUseCase builds a chest for the identity and fail-fast probes both
// collaborators: the key must encrypt a fixed non-secret payload and the
// bucket must be reachable. A probe failure aborts construction so a chest
// is never partially usable.
func NewChestUseCase(
	ctx context.Context,
	identity domain.Identity,
	keyService KeyService,
	store ObjectStore,
) (ChestUseCase, error) {
	route, err := identity.Route()
	if err != nil {
		return nil, err
	}

	// Prove the key accepts encryption requests before accepting secrets.
	if _, err := keyService.Encrypt(ctx, route, []byte(domain.ProbePlaintext)); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrKeyUnavailable, err)
	}

	accessible, err := store.IsAccessible(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrBucketUnavailable, err)
	}
	if !accessible {
		return nil, domain.ErrBucketUnavailable
	}

	return &chestUseCase{
		route:      route,
		keyService: keyService,
		store:      store,
	}, nil
}

// Create encrypts value with the chest's key and stores the ciphertext under
// name. The stored object carries the secret content type and the key route
// in its metadata; an existing object under the same name is replaced.
func (c *chestUseCase) Create(
	ctx context.Context,
	name string,
	value []byte,
) (*domain.Secret, error) {
	ciphertext, err := c.keyService.Encrypt(ctx, c.route, value)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrEncryptionFailed, err)
	}

	metadata := map[string]string{domain.MetadataKey: c.route.String()}
	if err := c.store.Write(ctx, name, ciphertext, domain.ContentType, metadata); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrStorageWriteFailed, err)
	}

	return domain.NewSecretWithPlaintext(name, c.route, ciphertext, value, c.keyService), nil
}

// Get retrieves the secret stored under name. The object must carry the
// secret content type and a parseable key route in its metadata; any other
// object under that name is reported as ErrInvalidSecretFormat, distinct
// from ErrSecretNotFound.
func (c *chestUseCase) Get(ctx context.Context, name string) (*domain.Secret, error) {
	attrs, err := c.store.Attributes(ctx, name)
	if err != nil {
		if apperrors.Is(err, apperrors.ErrNotFound) {
			return nil, domain.ErrSecretNotFound
		}
		return nil, err
	}

	if attrs.ContentType != domain.ContentType {
		return nil, fmt.Errorf(
			"%w: unexpected content type %q",
			domain.ErrInvalidSecretFormat, attrs.ContentType,
		)
	}
	rawRoute, ok := attrs.Metadata[domain.MetadataKey]
	if !ok {
		return nil, fmt.Errorf(
			"%w: missing %s metadata",
			domain.ErrInvalidSecretFormat, domain.MetadataKey,
		)
	}
	// Decryption must use the route recorded at write time, so a route that
	// cannot be parsed makes the object unusable as a secret.
	route, err := domain.ParseKeyRoute(rawRoute)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidSecretFormat, err)
	}

	ciphertext, err := c.store.Read(ctx, name)
	if err != nil {
		if apperrors.Is(err, apperrors.ErrNotFound) {
			return nil, domain.ErrSecretNotFound
		}
		return nil, err
	}

	return domain.NewSecret(name, route, ciphertext, c.keyService), nil
}

// Delete removes the secret stored under name.
func (c *chestUseCase) Delete(ctx context.Context, name string) error {
	if err := c.store.Delete(ctx, name); err != nil {
		if apperrors.Is(err, apperrors.ErrNotFound) {
			return domain.ErrSecretNotFound
		}
		return err
	}
	return nil
}

// List returns stored secrets matching prefix, ordered by name. Listings
// never touch payloads or the key service.
func (c *chestUseCase) List(
	ctx context.Context,
	prefix string,
	limit int,
) ([]domain.SecretInfo, error) {
	return c.store.List(ctx, prefix, limit)
}

// Route returns the chest's own key route.
func (c *chestUseCase) Route() domain.KeyRoute {
	return c.route
}
