package domain

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/petrilli/aletheia/internal/errors"
)

// KeyRoute identifies a KMS crypto key by its full resource path:
//
//	projects/{project}/locations/{location}/keyRings/{keyring}/cryptoKeys/{key}
//
// The route travels with every stored secret (see MetadataKey), so reads can
// resolve the decryption key even when it differs from the chest's own key.
type KeyRoute struct {
	// ProjectID is the cloud project that owns the keyring.
	ProjectID string
	// Location is the KMS location (e.g., "global", "us-east1").
	Location string
	// KeyRing is the keyring holding the crypto key.
	KeyRing string
	// CryptoKey is the key name, which for chest keys equals the chest name.
	CryptoKey string
}

// NewKeyRoute builds a validated key route. Each segment must be non-empty
// and free of slashes and whitespace; failures return ErrInvalidInput.
func NewKeyRoute(projectID, location, keyring, cryptoKey string) (KeyRoute, error) {
	route := KeyRoute{
		ProjectID: projectID,
		Location:  location,
		KeyRing:   keyring,
		CryptoKey: cryptoKey,
	}
	if err := route.validate(); err != nil {
		return KeyRoute{}, err
	}
	return route, nil
}

// ParseKeyRoute parses a canonical resource path into a KeyRoute. It is the
// inverse of String and is used to interpret routes read from stored object
// metadata.
func ParseKeyRoute(s string) (KeyRoute, error) {
	parts := strings.Split(s, "/")
	if len(parts) != 8 ||
		parts[0] != "projects" ||
		parts[2] != "locations" ||
		parts[4] != "keyRings" ||
		parts[6] != "cryptoKeys" {
		return KeyRoute{}, fmt.Errorf("%w: malformed key route %q", errors.ErrInvalidInput, s)
	}
	return NewKeyRoute(parts[1], parts[3], parts[5], parts[7])
}

// String renders the canonical resource path for the route.
func (r KeyRoute) String() string {
	return fmt.Sprintf(
		"projects/%s/locations/%s/keyRings/%s/cryptoKeys/%s",
		r.ProjectID, r.Location, r.KeyRing, r.CryptoKey,
	)
}

// IsZero reports whether the route is the zero value.
func (r KeyRoute) IsZero() bool {
	return r == KeyRoute{}
}

func (r KeyRoute) validate() error {
	segments := []struct {
		name  string
		value string
	}{
		{"project", r.ProjectID},
		{"location", r.Location},
		{"keyring", r.KeyRing},
		{"crypto key", r.CryptoKey},
	}
	for _, seg := range segments {
		if seg.value == "" {
			return fmt.Errorf("%w: %s must not be empty", errors.ErrInvalidInput, seg.name)
		}
		if strings.Contains(seg.value, "/") || containsSpace(seg.value) {
			return fmt.Errorf(
				"%w: %s %q must not contain slashes or whitespace",
				errors.ErrInvalidInput, seg.name, seg.value,
			)
		}
	}
	return nil
}

func containsSpace(s string) bool {
	for _, r := range s {
		if unicode.IsSpace(r) {
			return true
		}
	}
	return false
}
