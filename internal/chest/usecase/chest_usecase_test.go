package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/petrilli/aletheia/internal/chest/domain"
	"github.com/petrilli/aletheia/internal/chest/usecase/mocks"
	apperrors "github.com/petrilli/aletheia/internal/errors"
)

var testIdentity = domain.Identity{ProjectID: "proj1", Bucket: "proj1-secrets"}

func testChestRoute(t *testing.T) domain.KeyRoute {
	t.Helper()
	route, err := testIdentity.Route()
	require.NoError(t, err)
	return route
}

// expectProbes stubs the construction probes so tests can focus on the
// operation under test.
func expectProbes(
	mockKey *mocks.MockKeyService,
	mockStore *mocks.MockObjectStore,
	route domain.KeyRoute,
) {
	mockKey.On("Encrypt", mock.Anything, route, []byte(domain.ProbePlaintext)).
		Return([]byte("probe-ciphertext"), nil).
		Once()
	mockStore.On("IsAccessible", mock.Anything).
		Return(true, nil).
		Once()
}

func TestNewChestUseCase(t *testing.T) {
	ctx := context.Background()

	t.Run("Success_ProbesPass", func(t *testing.T) {
		mockKey := &mocks.MockKeyService{}
		mockStore := &mocks.MockObjectStore{}
		route := testChestRoute(t)
		expectProbes(mockKey, mockStore, route)

		chest, err := NewChestUseCase(ctx, testIdentity, mockKey, mockStore)

		require.NoError(t, err)
		require.NotNil(t, chest)
		assert.Equal(t, route, chest.Route())
		mockKey.AssertExpectations(t)
		mockStore.AssertExpectations(t)
	})

	t.Run("Error_InvalidIdentity", func(t *testing.T) {
		mockKey := &mocks.MockKeyService{}
		mockStore := &mocks.MockObjectStore{}

		chest, err := NewChestUseCase(ctx, domain.Identity{Bucket: "b"}, mockKey, mockStore)

		assert.Nil(t, chest)
		assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
		mockKey.AssertNotCalled(t, "Encrypt", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Error_KeyProbeFails", func(t *testing.T) {
		mockKey := &mocks.MockKeyService{}
		mockStore := &mocks.MockObjectStore{}
		route := testChestRoute(t)

		mockKey.On("Encrypt", mock.Anything, route, []byte(domain.ProbePlaintext)).
			Return(nil, errors.New("permission denied")).
			Once()

		chest, err := NewChestUseCase(ctx, testIdentity, mockKey, mockStore)

		assert.Nil(t, chest)
		assert.ErrorIs(t, err, domain.ErrKeyUnavailable)
		assert.Contains(t, err.Error(), "permission denied")
		mockStore.AssertNotCalled(t, "IsAccessible", mock.Anything)
	})

	t.Run("Error_BucketInaccessible", func(t *testing.T) {
		mockKey := &mocks.MockKeyService{}
		mockStore := &mocks.MockObjectStore{}
		route := testChestRoute(t)

		mockKey.On("Encrypt", mock.Anything, route, []byte(domain.ProbePlaintext)).
			Return([]byte("probe-ciphertext"), nil).
			Once()
		mockStore.On("IsAccessible", mock.Anything).
			Return(false, nil).
			Once()

		chest, err := NewChestUseCase(ctx, testIdentity, mockKey, mockStore)

		assert.Nil(t, chest)
		assert.ErrorIs(t, err, domain.ErrBucketUnavailable)
	})

	t.Run("Error_BucketProbeFails", func(t *testing.T) {
		mockKey := &mocks.MockKeyService{}
		mockStore := &mocks.MockObjectStore{}
		route := testChestRoute(t)

		mockKey.On("Encrypt", mock.Anything, route, []byte(domain.ProbePlaintext)).
			Return([]byte("probe-ciphertext"), nil).
			Once()
		mockStore.On("IsAccessible", mock.Anything).
			Return(false, errors.New("network unreachable")).
			Once()

		chest, err := NewChestUseCase(ctx, testIdentity, mockKey, mockStore)

		assert.Nil(t, chest)
		assert.ErrorIs(t, err, domain.ErrBucketUnavailable)
		assert.Contains(t, err.Error(), "network unreachable")
	})
}

func TestChestUseCase_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("Success_CreateSecret", func(t *testing.T) {
		mockKey := &mocks.MockKeyService{}
		mockStore := &mocks.MockObjectStore{}
		route := testChestRoute(t)
		expectProbes(mockKey, mockStore, route)

		value := []byte("s3cr3t")
		ciphertext := []byte("ciphertext")
		metadata := map[string]string{domain.MetadataKey: route.String()}

		mockKey.On("Encrypt", ctx, route, value).
			Return(ciphertext, nil).
			Once()
		mockStore.On("Write", ctx, "db/password", ciphertext, domain.ContentType, metadata).
			Return(nil).
			Once()

		chest, err := NewChestUseCase(ctx, testIdentity, mockKey, mockStore)
		require.NoError(t, err)

		secret, err := chest.Create(ctx, "db/password", value)

		require.NoError(t, err)
		require.NotNil(t, secret)
		assert.Equal(t, "db/password", secret.Name())
		assert.Equal(t, route, secret.Route())
		assert.Equal(t, ciphertext, secret.Ciphertext())
		assert.True(t, secret.Resolved())

		// The plaintext is already cached; no Decrypt expectation is set, so
		// any decryption attempt would fail the test.
		plaintext, err := secret.Plaintext(ctx)
		require.NoError(t, err)
		assert.Equal(t, value, plaintext)

		mockKey.AssertExpectations(t)
		mockStore.AssertExpectations(t)
	})

	t.Run("Error_EncryptionFails", func(t *testing.T) {
		mockKey := &mocks.MockKeyService{}
		mockStore := &mocks.MockObjectStore{}
		route := testChestRoute(t)
		expectProbes(mockKey, mockStore, route)

		mockKey.On("Encrypt", ctx, route, []byte("s3cr3t")).
			Return(nil, errors.New("payload too large")).
			Once()

		chest, err := NewChestUseCase(ctx, testIdentity, mockKey, mockStore)
		require.NoError(t, err)

		secret, err := chest.Create(ctx, "db/password", []byte("s3cr3t"))

		assert.Nil(t, secret)
		assert.ErrorIs(t, err, domain.ErrEncryptionFailed)
		mockStore.AssertNotCalled(
			t, "Write",
			mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything,
		)
	})

	t.Run("Error_WriteFails", func(t *testing.T) {
		mockKey := &mocks.MockKeyService{}
		mockStore := &mocks.MockObjectStore{}
		route := testChestRoute(t)
		expectProbes(mockKey, mockStore, route)

		mockKey.On("Encrypt", ctx, route, []byte("s3cr3t")).
			Return([]byte("ciphertext"), nil).
			Once()
		mockStore.On("Write", ctx, "db/password", []byte("ciphertext"), domain.ContentType, mock.Anything).
			Return(errors.New("quota exceeded")).
			Once()

		chest, err := NewChestUseCase(ctx, testIdentity, mockKey, mockStore)
		require.NoError(t, err)

		secret, err := chest.Create(ctx, "db/password", []byte("s3cr3t"))

		assert.Nil(t, secret)
		assert.ErrorIs(t, err, domain.ErrStorageWriteFailed)
		assert.Contains(t, err.Error(), "quota exceeded")
	})
}

func TestChestUseCase_Get(t *testing.T) {
	ctx := context.Background()

	t.Run("Success_GetSecret", func(t *testing.T) {
		mockKey := &mocks.MockKeyService{}
		mockStore := &mocks.MockObjectStore{}
		route := testChestRoute(t)
		expectProbes(mockKey, mockStore, route)

		// The stored route belongs to another chest; decryption must follow
		// it instead of the chest's own route.
		storedRoute, err := domain.NewKeyRoute("proj2", "us-east1", "aletheia", "other-chest")
		require.NoError(t, err)

		mockStore.On("Attributes", ctx, "db/password").
			Return(&domain.ObjectAttrs{
				ContentType: domain.ContentType,
				Metadata:    map[string]string{domain.MetadataKey: storedRoute.String()},
			}, nil).
			Once()
		mockStore.On("Read", ctx, "db/password").
			Return([]byte("ciphertext"), nil).
			Once()
		mockKey.On("Decrypt", ctx, storedRoute, []byte("ciphertext")).
			Return([]byte("s3cr3t"), nil).
			Once()

		chest, err := NewChestUseCase(ctx, testIdentity, mockKey, mockStore)
		require.NoError(t, err)

		secret, err := chest.Get(ctx, "db/password")

		require.NoError(t, err)
		require.NotNil(t, secret)
		assert.Equal(t, storedRoute, secret.Route())
		assert.False(t, secret.Resolved())

		plaintext, err := secret.Plaintext(ctx)
		require.NoError(t, err)
		assert.Equal(t, []byte("s3cr3t"), plaintext)

		mockKey.AssertExpectations(t)
		mockStore.AssertExpectations(t)
	})

	t.Run("Error_SecretNotFound", func(t *testing.T) {
		mockKey := &mocks.MockKeyService{}
		mockStore := &mocks.MockObjectStore{}
		route := testChestRoute(t)
		expectProbes(mockKey, mockStore, route)

		mockStore.On("Attributes", ctx, "missing").
			Return(nil, apperrors.ErrNotFound).
			Once()

		chest, err := NewChestUseCase(ctx, testIdentity, mockKey, mockStore)
		require.NoError(t, err)

		secret, err := chest.Get(ctx, "missing")

		assert.Nil(t, secret)
		assert.ErrorIs(t, err, domain.ErrSecretNotFound)
	})

	t.Run("Error_WrongContentType", func(t *testing.T) {
		mockKey := &mocks.MockKeyService{}
		mockStore := &mocks.MockObjectStore{}
		route := testChestRoute(t)
		expectProbes(mockKey, mockStore, route)

		mockStore.On("Attributes", ctx, "report.pdf").
			Return(&domain.ObjectAttrs{
				ContentType: "application/pdf",
				Metadata:    map[string]string{domain.MetadataKey: route.String()},
			}, nil).
			Once()

		chest, err := NewChestUseCase(ctx, testIdentity, mockKey, mockStore)
		require.NoError(t, err)

		secret, err := chest.Get(ctx, "report.pdf")

		assert.Nil(t, secret)
		assert.ErrorIs(t, err, domain.ErrInvalidSecretFormat)
		assert.ErrorIs(t, err, apperrors.ErrConflict)
		assert.NotErrorIs(t, err, domain.ErrSecretNotFound)
		mockStore.AssertNotCalled(t, "Read", mock.Anything, mock.Anything)
	})

	t.Run("Error_MissingKeyMetadata", func(t *testing.T) {
		mockKey := &mocks.MockKeyService{}
		mockStore := &mocks.MockObjectStore{}
		route := testChestRoute(t)
		expectProbes(mockKey, mockStore, route)

		mockStore.On("Attributes", ctx, "db/password").
			Return(&domain.ObjectAttrs{
				ContentType: domain.ContentType,
				Metadata:    map[string]string{},
			}, nil).
			Once()

		chest, err := NewChestUseCase(ctx, testIdentity, mockKey, mockStore)
		require.NoError(t, err)

		secret, err := chest.Get(ctx, "db/password")

		assert.Nil(t, secret)
		assert.ErrorIs(t, err, domain.ErrInvalidSecretFormat)
		assert.Contains(t, err.Error(), domain.MetadataKey)
	})

	t.Run("Error_MalformedStoredRoute", func(t *testing.T) {
		mockKey := &mocks.MockKeyService{}
		mockStore := &mocks.MockObjectStore{}
		route := testChestRoute(t)
		expectProbes(mockKey, mockStore, route)

		mockStore.On("Attributes", ctx, "db/password").
			Return(&domain.ObjectAttrs{
				ContentType: domain.ContentType,
				Metadata:    map[string]string{domain.MetadataKey: "not a route"},
			}, nil).
			Once()

		chest, err := NewChestUseCase(ctx, testIdentity, mockKey, mockStore)
		require.NoError(t, err)

		secret, err := chest.Get(ctx, "db/password")

		assert.Nil(t, secret)
		assert.ErrorIs(t, err, domain.ErrInvalidSecretFormat)
	})

	t.Run("Error_DeletedBetweenAttributesAndRead", func(t *testing.T) {
		mockKey := &mocks.MockKeyService{}
		mockStore := &mocks.MockObjectStore{}
		route := testChestRoute(t)
		expectProbes(mockKey, mockStore, route)

		mockStore.On("Attributes", ctx, "db/password").
			Return(&domain.ObjectAttrs{
				ContentType: domain.ContentType,
				Metadata:    map[string]string{domain.MetadataKey: route.String()},
			}, nil).
			Once()
		mockStore.On("Read", ctx, "db/password").
			Return(nil, apperrors.ErrNotFound).
			Once()

		chest, err := NewChestUseCase(ctx, testIdentity, mockKey, mockStore)
		require.NoError(t, err)

		secret, err := chest.Get(ctx, "db/password")

		assert.Nil(t, secret)
		assert.ErrorIs(t, err, domain.ErrSecretNotFound)
	})
}

func TestChestUseCase_Delete(t *testing.T) {
	ctx := context.Background()

	t.Run("Success_DeleteSecret", func(t *testing.T) {
		mockKey := &mocks.MockKeyService{}
		mockStore := &mocks.MockObjectStore{}
		route := testChestRoute(t)
		expectProbes(mockKey, mockStore, route)

		mockStore.On("Delete", ctx, "db/password").
			Return(nil).
			Once()

		chest, err := NewChestUseCase(ctx, testIdentity, mockKey, mockStore)
		require.NoError(t, err)

		err = chest.Delete(ctx, "db/password")

		assert.NoError(t, err)
		mockStore.AssertExpectations(t)
	})

	t.Run("Error_SecretNotFound", func(t *testing.T) {
		mockKey := &mocks.MockKeyService{}
		mockStore := &mocks.MockObjectStore{}
		route := testChestRoute(t)
		expectProbes(mockKey, mockStore, route)

		mockStore.On("Delete", ctx, "missing").
			Return(apperrors.ErrNotFound).
			Once()

		chest, err := NewChestUseCase(ctx, testIdentity, mockKey, mockStore)
		require.NoError(t, err)

		err = chest.Delete(ctx, "missing")

		assert.ErrorIs(t, err, domain.ErrSecretNotFound)
	})
}

func TestChestUseCase_List(t *testing.T) {
	ctx := context.Background()

	t.Run("Success_ListSecrets", func(t *testing.T) {
		mockKey := &mocks.MockKeyService{}
		mockStore := &mocks.MockObjectStore{}
		route := testChestRoute(t)
		expectProbes(mockKey, mockStore, route)

		infos := []domain.SecretInfo{
			{Name: "db/password", Size: 42},
			{Name: "db/username", Size: 17},
		}
		mockStore.On("List", ctx, "db/", 50).
			Return(infos, nil).
			Once()

		chest, err := NewChestUseCase(ctx, testIdentity, mockKey, mockStore)
		require.NoError(t, err)

		result, err := chest.List(ctx, "db/", 50)

		require.NoError(t, err)
		assert.Equal(t, infos, result)
		mockKey.AssertNotCalled(t, "Decrypt", mock.Anything, mock.Anything, mock.Anything)
	})
}
