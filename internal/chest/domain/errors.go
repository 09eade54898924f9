// Package domain defines core domain models and errors for chests.
package domain

import (
	"github.com/petrilli/aletheia/internal/errors"
)

// Chest-specific error definitions.
var (
	// ErrKeyUnavailable indicates the chest's encryption key could not be
	// used. Raised during construction when the key probe fails.
	ErrKeyUnavailable = errors.Wrap(errors.ErrUnavailable, "encryption key unavailable")

	// ErrBucketUnavailable indicates the chest's bucket does not exist or is
	// not accessible with the current credentials.
	ErrBucketUnavailable = errors.Wrap(errors.ErrUnavailable, "bucket unavailable")

	// ErrSecretNotFound indicates no object exists under the requested name.
	ErrSecretNotFound = errors.Wrap(errors.ErrNotFound, "secret not found")

	// ErrInvalidSecretFormat indicates an object exists under the requested
	// name but does not carry the secret content type and key metadata.
	ErrInvalidSecretFormat = errors.Wrap(errors.ErrConflict, "object is not a valid secret")

	// ErrEncryptionFailed indicates the key service rejected an encryption call.
	ErrEncryptionFailed = errors.New("encryption failed")

	// ErrDecryptionFailed indicates the key service rejected a decryption call.
	ErrDecryptionFailed = errors.New("decryption failed")

	// ErrStorageWriteFailed indicates the encrypted payload could not be stored.
	ErrStorageWriteFailed = errors.New("storage write failed")
)
