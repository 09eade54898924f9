package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	chestDomain "github.com/petrilli/aletheia/internal/chest/domain"
)

// MockObjectStore is a mock implementation of ObjectStore for testing.
type MockObjectStore struct {
	mock.Mock
}

// IsAccessible mocks the IsAccessible method of ObjectStore.
func (m *MockObjectStore) IsAccessible(ctx context.Context) (bool, error) {
	args := m.Called(ctx)
	return args.Bool(0), args.Error(1)
}

// Attributes mocks the Attributes method of ObjectStore.
func (m *MockObjectStore) Attributes(
	ctx context.Context,
	name string,
) (*chestDomain.ObjectAttrs, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*chestDomain.ObjectAttrs), args.Error(1)
}

// Read mocks the Read method of ObjectStore.
func (m *MockObjectStore) Read(ctx context.Context, name string) ([]byte, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

// Write mocks the Write method of ObjectStore.
func (m *MockObjectStore) Write(
	ctx context.Context,
	name string,
	payload []byte,
	contentType string,
	metadata map[string]string,
) error {
	args := m.Called(ctx, name, payload, contentType, metadata)
	return args.Error(0)
}

// List mocks the List method of ObjectStore.
func (m *MockObjectStore) List(
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

// Delete mocks the Delete method of ObjectStore.
func (m *MockObjectStore) Delete(ctx context.Context, name string) error {
	args := m.Called(ctx, name)
	return args.Error(0)
}
