package domain

import "errors"

var (
	ErrNotFound      = errors.New("not found")
	ErrUsernameTaken = errors.New("username already taken")
	ErrSelfFollow    = errors.New("cannot follow yourself")
	ErrForbidden     = errors.New("forbidden")
)
