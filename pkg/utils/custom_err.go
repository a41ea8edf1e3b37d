package utils

import "errors"

var (
	ErrUsernameTaken      = errors.New("username already registered")
	ErrEmailTaken         = errors.New("email already registered")
	ErrDuplicateUser      = errors.New("username or email already registered")
	ErrInvalidCredentials = errors.New("incorrect username or password")
	ErrInactiveUser       = errors.New("inactive user")
	ErrInvalidToken       = errors.New("could not validate credentials")
	ErrForbidden          = errors.New("not enough permissions")
	ErrInvalidRole        = errors.New("invalid role, must be 'user' or 'admin'")
	ErrUserNotFound       = errors.New("user not found")
	ErrDatabaseError      = errors.New("database error")
)
