package domain

import "time"

// ObjectAttrs describes a stored object as seen by the object store. Reads
// fetch attributes first so the secret envelope can be validated before the
// payload is downloaded.
type ObjectAttrs struct {
	// ContentType is the object's MIME type. Secrets carry ContentType.
	ContentType string
	// Metadata holds the object's user metadata. Secrets carry MetadataKey.
	Metadata map[string]string
	// Size is the payload size in bytes.
	Size int64
	// UpdatedAt is the object's last modification time.
	UpdatedAt time.Time
}

// SecretInfo summarizes a stored secret for listings. Listings never touch
// payloads or the key service.
type SecretInfo struct {
	// Name is the object name within the chest's bucket.
	Name string
	// Size is the ciphertext size in bytes.
	Size int64
	// UpdatedAt is the time the secret was last written.
	UpdatedAt time.Time
}
