package upgrade

import (
	"github.com/iov-one/warden/errors"
)

var (
	// ErrMustBePaused is returned when an upgrade is authorized while
	// the gateway is still live.
	ErrMustBePaused = errors.Register(1120, "gateway must be paused")

	// ErrUnknownRef is returned when the target reference is not
	// registered with the gateway.
	ErrUnknownRef = errors.Register(1121, "unknown logic reference")
)
