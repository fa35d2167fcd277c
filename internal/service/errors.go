package service

import "errors"

var (
	ErrEmailRequired    = errors.New("email is required")
	ErrPasswordRequired = errors.New("password is required")
	ErrPasswordTooShort = errors.New("password must be at least 6 characters")
	ErrPasswordMismatch = errors.New("passwords do not match")
	ErrPasswordReused   = errors.New("new password must differ from the current one")

	ErrAdminOnly        = errors.New("only an admin can create accounts")
	ErrNotAuthenticated = errors.New("not signed in")
	ErrNothingToUpdate  = errors.New("no profile fields changed")

	ErrMessageRequired = errors.New("message is required")

	// ErrDeclined wraps a backend envelope that came back with a
	// falsy status flag. The backend message is attached verbatim.
	ErrDeclined = errors.New("request declined")
)
