// Package domain defines the core domain models for chest-based secret
// storage. Secrets hold ciphertext plus the route of the key that produced
// it; plaintext is resolved lazily through the key service and cached for
// the lifetime of the value.
package domain

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"sync"

	"golang.org/x/sync/singleflight"
)

// Decrypter is the capability a Secret needs to resolve its plaintext.
// The chest key service satisfies it.
type Decrypter interface {
	Decrypt(ctx context.Context, route KeyRoute, ciphertext []byte) ([]byte, error)
}

// Secret is an encrypted value retrieved from or written to a chest.
//
// Ciphertext and key route are fixed at construction. Plaintext is resolved
// on first access and cached; concurrent first accesses share a single
// decryption call and observe the same outcome. A failed resolution leaves
// the cache empty so a later call can retry.
type Secret struct {
	name       string
	route      KeyRoute
	ciphertext []byte
	decrypter  Decrypter

	mu        sync.RWMutex
	group     singleflight.Group
	plaintext []byte
	resolved  bool
}

// NewSecret builds a secret whose plaintext has not been resolved yet.
// This is the read path: the route comes from stored object metadata.
func NewSecret(name string, route KeyRoute, ciphertext []byte, decrypter Decrypter) *Secret {
	return &Secret{
		name:       name,
		route:      route,
		ciphertext: bytes.Clone(ciphertext),
		decrypter:  decrypter,
	}
}

// NewSecretWithPlaintext builds a secret with the plaintext already cached.
// This is the write path: the caller just encrypted the value, so resolving
// it again would be a wasted KMS call.
func NewSecretWithPlaintext(
	name string,
	route KeyRoute,
	ciphertext, plaintext []byte,
	decrypter Decrypter,
) *Secret {
	return &Secret{
		name:       name,
		route:      route,
		ciphertext: bytes.Clone(ciphertext),
		decrypter:  decrypter,
		plaintext:  bytes.Clone(plaintext),
		resolved:   true,
	}
}

// Name returns the secret's name within the chest.
func (s *Secret) Name() string {
	return s.name
}

// Route returns the key route that encrypted this secret.
func (s *Secret) Route() KeyRoute {
	return s.route
}

// Ciphertext returns a copy of the encrypted payload.
func (s *Secret) Ciphertext() []byte {
	return bytes.Clone(s.ciphertext)
}

// Plaintext returns the decrypted value, resolving it through the key
// service on first call. Concurrent first calls are collapsed into a single
// decryption; every caller gets the same outcome. On failure the cache stays
// empty and the error wraps ErrDecryptionFailed.
func (s *Secret) Plaintext(ctx context.Context) ([]byte, error) {
	s.mu.RLock()
	if s.resolved {
		plaintext := bytes.Clone(s.plaintext)
		s.mu.RUnlock()
		return plaintext, nil
	}
	s.mu.RUnlock()

	value, err, _ := s.group.Do("plaintext", func() (any, error) {
		s.mu.RLock()
		if s.resolved {
			plaintext := s.plaintext
			s.mu.RUnlock()
			return plaintext, nil
		}
		s.mu.RUnlock()

		plaintext, err := s.decrypter.Decrypt(ctx, s.route, s.ciphertext)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrDecryptionFailed, err)
		}

		s.mu.Lock()
		s.plaintext = plaintext
		s.resolved = true
		s.mu.Unlock()

		return plaintext, nil
	})
	if err != nil {
		return nil, err
	}
	return bytes.Clone(value.([]byte)), nil
}

// Resolved reports whether the plaintext is cached, without resolving it.
func (s *Secret) Resolved() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.resolved
}

// String renders the secret for display without ever exposing the payload.
func (s *Secret) String() string {
	return fmt.Sprintf("Secret(name=%q, %s)", s.name, s.state())
}

// LogValue keeps structured logs free of secret material.
func (s *Secret) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("name", s.name),
		slog.String("state", s.state()),
	)
}

func (s *Secret) state() string {
	if s.Resolved() {
		return "cleartext"
	}
	return "encrypted"
}
