// Package mocks provides mock implementations for testing chest use cases.
package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	chestDomain "github.com/petrilli/aletheia/internal/chest/domain"
)

// MockKeyService is a mock implementation of KeyService for testing.
type MockKeyService struct {
	mock.Mock
}

// Encrypt mocks the Encrypt method of KeyService.
func (m *MockKeyService) Encrypt(
	ctx context.Context,
	route chestDomain.KeyRoute,
	plaintext []byte,
) ([]byte, error) {
	args := m.Called(ctx, route, plaintext)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

// Decrypt mocks the Decrypt method of KeyService.
func (m *MockKeyService) Decrypt(
	ctx context.Context,
	route chestDomain.KeyRoute,
	ciphertext []byte,
) ([]byte, error) {
	args := m.Called(ctx, route, ciphertext)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}
