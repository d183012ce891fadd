package app

import (
	"github.com/iov-one/warden/errors"
)

var (
	// ErrConfiguration is returned when the genesis configuration cannot
	// produce a working gateway.
	ErrConfiguration = errors.Register(1130, "invalid configuration")

	// ErrInitialized is returned on a repeated initialization attempt.
	ErrInitialized = errors.Register(1131, "already initialized")
)
