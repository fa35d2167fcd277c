package adapter

import "errors"

var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("conflict")
	ErrBadGateway          = errors.New("bad gateway")
	ErrInternalServerError = errors.New("internal server error")

	// ErrAuthenticationFailed is returned when a required silent refresh
	// could not produce a usable credential. The primary request is
	// aborted before dispatch in that case.
	ErrAuthenticationFailed = errors.New("authentication failed")
)
