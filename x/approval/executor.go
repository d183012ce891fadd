package approval

import (
	"github.com/iov-one/warden"
)

// Executor performs the outbound action of an approved transaction. It
// is owned by the surrounding execution environment, not by the engine.
//
// A returned error means the action failed and nothing the engine can do
// about it. The executor is not atomic with respect to external state: it
// may have mutated other systems before returning, and it may call back
// into the gateway before returning.
type Executor interface {
	Execute(ctx warden.Context, destination warden.Address, value uint64, payload []byte) ([]byte, error)
}

// ExecutorFunc turns a plain function into an Executor.
type ExecutorFunc func(ctx warden.Context, destination warden.Address, value uint64, payload []byte) ([]byte, error)

var _ Executor = (ExecutorFunc)(nil)

func (f ExecutorFunc) Execute(ctx warden.Context, destination warden.Address, value uint64, payload []byte) ([]byte, error) {
	return f(ctx, destination, value, payload)
}
