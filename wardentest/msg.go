package wardentest

import (
	"github.com/iov-one/warden"
)

// Msg is a mock implementing the warden.Msg interface with a declared
// routing path.
type Msg struct {
	// RoutePath is returned by the Path method.
	RoutePath string

	// Err if set is returned by Validate.
	Err error
}

var _ warden.Msg = (*Msg)(nil)

func (m *Msg) Path() string {
	return m.RoutePath
}

func (m *Msg) Validate() error {
	return m.Err
}
