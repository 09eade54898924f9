package domain

const (
	// ContentType marks stored objects as chest secrets. Objects carrying any
	// other content type are rejected on read.
	ContentType = "application/x-aletheia-secret"

	// MetadataKey is the object metadata key whose value is the key route
	// used to encrypt the payload. Reads resolve the decryption key from this
	// value, not from the chest's own configuration.
	MetadataKey = "x-aletheia-secret-key"

	// ProbePlaintext is the fixed, non-sensitive payload encrypted during
	// chest construction to prove the key is usable before any secret is
	// accepted.
	ProbePlaintext = "THIS IS NOT A SECRET"

	// MaxPlaintextSize is the KMS single-call encryption ceiling in bytes.
	// The chest does not chunk or split larger values; oversized payloads
	// fail with the key service's own error.
	MaxPlaintextSize = 64 * 1024

	// DefaultLocation is the KMS location used when none is given.
	DefaultLocation = "global"

	// DefaultKeyring is the KMS keyring used when none is given.
	DefaultKeyring = "aletheia"
)
