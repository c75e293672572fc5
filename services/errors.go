package services

import "errors"

// Sentinel errors for the business-rule taxonomy. Handlers translate these
// to response codes; services never retry or recover them.
var (
	ErrNotFound           = errors.New("not found")
	ErrPermissionDenied   = errors.New("permission denied")
	ErrConflict           = errors.New("conflict")
	ErrInvalidArgument    = errors.New("invalid argument")
	ErrInvalidCredentials = errors.New("invalid credentials")
)
