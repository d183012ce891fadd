package wardentest

import (
	"github.com/iov-one/warden"
)

// ExecutorCall captures the arguments of a single executor invocation.
type ExecutorCall struct {
	Destination warden.Address
	Value       uint64
	Payload     []byte
}

// Executor is a mock of the action executor collaborator. It records
// every call and responds with the declared Err and Data. An optional
// Hook runs within the call, which allows tests to simulate reentrant
// callbacks into the gateway.
type Executor struct {
	// Data is returned on success.
	Data []byte

	// Err if set makes every execution report failure.
	Err error

	// Hook, when set, is run before returning. It is given the call
	// arguments and its results override Data and Err.
	Hook func(ctx warden.Context, call ExecutorCall) ([]byte, error)

	// Calls are all recorded invocations, oldest first.
	Calls []ExecutorCall
}

func (e *Executor) Execute(ctx warden.Context, destination warden.Address, value uint64, payload []byte) ([]byte, error) {
	call := ExecutorCall{
		Destination: destination,
		Value:       value,
		Payload:     payload,
	}
	e.Calls = append(e.Calls, call)
	if e.Hook != nil {
		return e.Hook(ctx, call)
	}
	return e.Data, e.Err
}

// CallCount returns the number of executions performed so far.
func (e *Executor) CallCount() int {
	return len(e.Calls)
}
