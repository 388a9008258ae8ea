package identity

import "errors"

var (
	ErrUnknownLoginStatus = errors.New("unknown login status")
	ErrNotLoggingIn       = errors.New("login is not in progress")
)
