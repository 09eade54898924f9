package app

import (
	"context"
	"fmt"

	chestDomain "github.com/petrilli/aletheia/internal/chest/domain"
	chestHTTP "github.com/petrilli/aletheia/internal/chest/http"
	chestRepository "github.com/petrilli/aletheia/internal/chest/repository"
	chestService "github.com/petrilli/aletheia/internal/chest/service"
	chestUsecase "github.com/petrilli/aletheia/internal/chest/usecase"
)

// KeyService returns the KMS-backed key service.
func (c *Container) KeyService() chestService.KeyService {
	c.keyServiceInit.Do(func() {
		c.keyService = c.initKeyService()
	})
	return c.keyService
}

// BlobStore returns the object store holding the encrypted secrets.
func (c *Container) BlobStore() (*chestRepository.BlobStore, error) {
	var err error
	c.blobStoreInit.Do(func() {
		c.blobStore, err = c.initBlobStore()
		if err != nil {
			c.initErrors["blobStore"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["blobStore"]; exists {
		return nil, storedErr
	}
	return c.blobStore, nil
}

// ChestUseCase returns the chest use case.
func (c *Container) ChestUseCase() (chestUsecase.ChestUseCase, error) {
	var err error
	c.chestUseCaseInit.Do(func() {
		c.chestUseCase, err = c.initChestUseCase()
		if err != nil {
			c.initErrors["chestUseCase"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["chestUseCase"]; exists {
		return nil, storedErr
	}
	return c.chestUseCase, nil
}

// ChestHandler returns the HTTP handler for secret management operations.
func (c *Container) ChestHandler() (*chestHTTP.ChestHandler, error) {
	var err error
	c.chestHandlerInit.Do(func() {
		c.chestHandler, err = c.initChestHandler()
		if err != nil {
			c.initErrors["chestHandler"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["chestHandler"]; exists {
		return nil, storedErr
	}
	return c.chestHandler, nil
}

// initKeyService creates the key service using the configured KMS scheme.
func (c *Container) initKeyService() chestService.KeyService {
	return chestService.NewKeyService(c.config.KMSScheme)
}

// initBlobStore opens the bucket that holds the chest's secrets.
func (c *Container) initBlobStore() (*chestRepository.BlobStore, error) {
	store, err := chestRepository.NewBlobStore(context.Background(), c.config.BucketURL())
	if err != nil {
		return nil, fmt.Errorf("failed to open bucket %s: %w", c.config.BucketURL(), err)
	}
	return store, nil
}

// initChestUseCase creates the chest use case with all its dependencies.
// Construction probes the key and the bucket, so a misconfigured chest
// fails here rather than on the first request.
func (c *Container) initChestUseCase() (chestUsecase.ChestUseCase, error) {
	store, err := c.BlobStore()
	if err != nil {
		return nil, fmt.Errorf("failed to get blob store for chest use case: %w", err)
	}

	keyService := c.KeyService()

	identity := chestDomain.Identity{
		ProjectID: c.config.ProjectID,
		Bucket:    c.config.Bucket,
		Location:  c.config.Location,
		Keyring:   c.config.Keyring,
		Name:      c.config.Chest,
	}

	baseUseCase, err := chestUsecase.NewChestUseCase(context.Background(), identity, keyService, store)
	if err != nil {
		return nil, fmt.Errorf("failed to create chest use case: %w", err)
	}

	// Wrap with metrics if enabled
	if c.config.MetricsEnabled {
		businessMetrics, err := c.BusinessMetrics()
		if err != nil {
			return nil, fmt.Errorf("failed to get business metrics for chest use case: %w", err)
		}
		return chestUsecase.NewChestUseCaseWithMetrics(baseUseCase, businessMetrics), nil
	}

	return baseUseCase, nil
}

// initChestHandler creates the chest HTTP handler with all its dependencies.
func (c *Container) initChestHandler() (*chestHTTP.ChestHandler, error) {
	useCase, err := c.ChestUseCase()
	if err != nil {
		return nil, fmt.Errorf("failed to get chest use case for chest handler: %w", err)
	}

	return chestHTTP.NewChestHandler(useCase, c.Logger()), nil
}
