package model

import "errors"

// ErrInvalidToken covers malformed, expired, forged and wrong-type tokens alike.
var ErrInvalidToken = errors.New("invalid or expired token")
