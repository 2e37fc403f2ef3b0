package types

// Alias is a local, human-chosen name for a peer.
type Alias string

// String returns the string form of the alias.
func (a Alias) String() string { return string(a) }

// Fingerprint is a short identifier for public keys presented to users.
type Fingerprint string

// String returns the string form of the fingerprint.
func (f Fingerprint) String() string { return string(f) }
