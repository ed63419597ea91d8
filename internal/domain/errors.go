package domain

import "errors"

var (
	ErrNotFound         = errors.New("not found")
	ErrDuplicateAddress = errors.New("address already registered")
	ErrDuplicateTitle   = errors.New("title already exists")
	ErrNoSuchAddress    = errors.New("address does not exist")
	ErrBadPassword      = errors.New("incorrect password")
	ErrUnauthorized     = errors.New("unauthorized")
	ErrForbidden        = errors.New("forbidden")
	ErrInvalidInput     = errors.New("invalid input")
	ErrMailRelay        = errors.New("mail relay failed")
)
