package store

import "errors"

// ErrLocalSessionNotFound is returned by [SessionRepository.LoadCredential]
// when no credential has been persisted yet (first run or after logout).
var ErrLocalSessionNotFound = errors.New("local session not found")
