package domain

// Identity fixes which project, key, and bucket a chest binds. The zero
// values of Location, Keyring, and Name carry the documented defaults, so
// callers only need to supply a project and a bucket.
type Identity struct {
	// ProjectID is the cloud project owning the chest's key.
	ProjectID string
	// Bucket is the object store bucket holding the chest's secrets.
	Bucket string
	// Location is the KMS location; empty means DefaultLocation.
	Location string
	// Keyring is the KMS keyring; empty means DefaultKeyring.
	Keyring string
	// Name is the chest name and crypto key name; empty means ProjectID.
	Name string
}

// Normalize returns a copy with the documented defaults applied.
func (i Identity) Normalize() Identity {
	if i.Location == "" {
		i.Location = DefaultLocation
	}
	if i.Keyring == "" {
		i.Keyring = DefaultKeyring
	}
	if i.Name == "" {
		i.Name = i.ProjectID
	}
	return i
}

// Route derives the chest's key route from the identity. Malformed or
// missing segments return ErrInvalidInput.
func (i Identity) Route() (KeyRoute, error) {
	n := i.Normalize()
	return NewKeyRoute(n.ProjectID, n.Location, n.Keyring, n.Name)
}
