package approval

import (
	"github.com/iov-one/warden/errors"
)

// Error codes 1110-1119 are reserved for this package.
var (
	// ErrAlreadyConfirmed is returned when an owner confirms the same
	// transaction a second time.
	ErrAlreadyConfirmed = errors.Register(1110, "already confirmed")

	// ErrAlreadyExecuted is returned when operating on a transaction
	// that was executed.
	ErrAlreadyExecuted = errors.Register(1111, "already executed")

	// ErrInsufficientConfirmations is returned when executing a
	// transaction that did not reach the confirmation threshold.
	ErrInsufficientConfirmations = errors.Register(1112, "insufficient confirmations")
)
