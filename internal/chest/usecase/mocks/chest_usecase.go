package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	chestDomain "github.com/petrilli/aletheia/internal/chest/domain"
)

// MockChestUseCase is a mock implementation of ChestUseCase for testing.
type MockChestUseCase struct {
	mock.Mock
}

// Create mocks the Create method of ChestUseCase.
func (m *MockChestUseCase) Create(
	ctx context.Context,
	name string,
	value []byte,
) (*chestDomain.Secret, error) {
	args := m.Called(ctx, name, value)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*chestDomain.Secret), args.Error(1)
}

// Get mocks the Get method of ChestUseCase.
func (m *MockChestUseCase) Get(ctx context.Context, name string) (*chestDomain.Secret, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*chestDomain.Secret), args.Error(1)
}

// Delete mocks the Delete method of ChestUseCase.
func (m *MockChestUseCase) Delete(ctx context.Context, name string) error {
	args := m.Called(ctx, name)
	return args.Error(0)
}

// List mocks the List method of ChestUseCase.
func (m *MockChestUseCase) List(
	ctx context.Context,
	prefix string,
	limit int,
) ([]chestDomain.SecretInfo, error) {
	args := m.Called(ctx, prefix, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]chestDomain.SecretInfo), args.Error(1)
}

// Route mocks the Route method of ChestUseCase.
func (m *MockChestUseCase) Route() chestDomain.KeyRoute {
	args := m.Called()
	return args.Get(0).(chestDomain.KeyRoute)
}
