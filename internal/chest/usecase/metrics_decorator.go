package usecase

import (
	"context"
	"time"

	"github.com/petrilli/aletheia/internal/chest/domain"
	"github.com/petrilli/aletheia/internal/metrics"
)

// chestUseCaseWithMetrics decorates ChestUseCase with metrics instrumentation.
type chestUseCaseWithMetrics struct {
	next    ChestUseCase
	metrics metrics.BusinessMetrics
}

// NewChestUseCaseWithMetrics wraps a ChestUseCase with metrics recording.
func NewChestUseCaseWithMetrics(useCase ChestUseCase, m metrics.BusinessMetrics) ChestUseCase {
	return &chestUseCaseWithMetrics{
		next:    useCase,
		metrics: m,
	}
}

// Create records metrics for secret creation operations.
func (c *chestUseCaseWithMetrics) Create(
	ctx context.Context,
	name string,
	value []byte,
) (*domain.Secret, error) {
	start := time.Now()
	secret, err := c.next.Create(ctx, name, value)

	status := "success"
	if err != nil {
		status = "error"
	}

	c.metrics.RecordOperation(ctx, "chest", "secret_create", status)
	c.metrics.RecordDuration(ctx, "chest", "secret_create", time.Since(start), status)

	return secret, err
}

// Get records metrics for secret retrieval operations.
func (c *chestUseCaseWithMetrics) Get(ctx context.Context, name string) (*domain.Secret, error) {
	start := time.Now()
	secret, err := c.next.Get(ctx, name)

	status := "success"
	if err != nil {
		status = "error"
	}

	c.metrics.RecordOperation(ctx, "chest", "secret_get", status)
	c.metrics.RecordDuration(ctx, "chest", "secret_get", time.Since(start), status)

	return secret, err
}

// Delete records metrics for secret deletion operations.
func (c *chestUseCaseWithMetrics) Delete(ctx context.Context, name string) error {
	start := time.Now()
	err := c.next.Delete(ctx, name)

	status := "success"
	if err != nil {
		status = "error"
	}

	c.metrics.RecordOperation(ctx, "chest", "secret_delete", status)
	c.metrics.RecordDuration(ctx, "chest", "secret_delete", time.Since(start), status)

	return err
}

// List records metrics for secret listing operations.
func (c *chestUseCaseWithMetrics) List(
	ctx context.Context,
	prefix string,
	limit int,
) ([]domain.SecretInfo, error) {
	start := time.Now()
	infos, err := c.next.List(ctx, prefix, limit)

	status := "success"
	if err != nil {
		status = "error"
	}

	c.metrics.RecordOperation(ctx, "chest", "secret_list", status)
	c.metrics.RecordDuration(ctx, "chest", "secret_list", time.Since(start), status)

	return infos, err
}

// Route returns the chest's own key route without recording metrics.
func (c *chestUseCaseWithMetrics) Route() domain.KeyRoute {
	return c.next.Route()
}
