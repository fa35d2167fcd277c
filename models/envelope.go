package models

import "encoding/json"

// Envelope is the loose JSON object returned by every Qryptify backend
// endpoint. The backend signals success with a truthy "status" field
// (older endpoints use "success"); payload fields vary per call site
// and absent fields unmarshal to their zero values, so callers must
// tolerate partially filled envelopes.
type Envelope struct {
	// Status and Success are the two spellings of the backend's
	// success flag. Use [Envelope.OK] instead of reading them
	// directly.
	Status  bool `json:"status,omitempty"`
	Success bool `json:"success,omitempty"`

	// Message is the human-readable outcome description. Surfaced
	// verbatim to the user on business failures.
	Message string `json:"message,omitempty"`

	// Access is the bearer token issued by login and refresh-token.
	Access string `json:"access,omitempty"`

	// Token is the CSRF token value returned by csrf-token.
	Token string `json:"token,omitempty"`

	// User is the profile object returned by user-details.
	User *User `json:"user,omitempty"`

	// Data is any endpoint-specific payload kept raw so typed
	// callers can decode it themselves.
	Data json.RawMessage `json:"data,omitempty"`
}

// OK reports whether the backend marked the response as successful
// under either spelling of the flag.
func (e Envelope) OK() bool {
	return e.Status || e.Success
}
