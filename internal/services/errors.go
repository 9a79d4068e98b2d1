// internal/services/errors.go
package services

import "errors"

var (
	ErrNotFound             = errors.New("record not found")
	ErrInvalidCredentials   = errors.New("invalid credentials")
	ErrUserExists           = errors.New("username or email already registered")
	ErrInvalidReference     = errors.New("vehicle reference does not match item type")
	ErrDuplicateAssociation = errors.New("vehicle already has an entry")
	ErrDuplicateEmail       = errors.New("email already subscribed")
)
