package auth

import "errors"

// ErrInvalidCredentials covers both unknown username and wrong password
// so responses never reveal which part failed.
var ErrInvalidCredentials = errors.New("invalid credentials")
