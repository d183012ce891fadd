package pause

import (
	"github.com/iov-one/warden/errors"
)

// Error codes 1100-1109 are reserved for this package.
var (
	// ErrPaused is returned by any mutating operation that is refused
	// because the switch is engaged.
	ErrPaused = errors.Register(1100, "paused")

	// ErrNotPaused is returned when releasing a switch that is not
	// engaged.
	ErrNotPaused = errors.Register(1101, "not paused")

	// ErrAlreadyPaused is returned when engaging a switch that is
	// already engaged.
	ErrAlreadyPaused = errors.Register(1102, "already paused")
)
