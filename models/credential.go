package models

import "time"

// Credential is the bearer token representing a signed-in session.
// The encoded string is opaque to the client except for the embedded
// expiry claim, which is decoded once and cached here. At most one
// Credential is current at a time; setting a new one supersedes and
// persists over the previous one.
type Credential struct {
	// Access is the encoded JWT string as issued by the backend.
	Access string `json:"access"`

	// ExpiresAt is the expiry instant decoded from the token's exp
	// claim. Zero when the claim could not be decoded, in which case
	// the credential is treated as already expired (fail closed).
	ExpiresAt time.Time `json:"expires_at"`

	// SavedAt records when the credential was persisted locally.
	SavedAt time.Time `json:"saved_at"`
}

// Empty reports whether no token string is held at all.
func (c Credential) Empty() bool {
	return c.Access == ""
}
