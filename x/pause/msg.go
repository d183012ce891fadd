package pause

import (
	"github.com/gogo/protobuf/proto"
	"github.com/iov-one/warden"
)

const (
	pathPauseMsg   = "pause/pause"
	pathUnpauseMsg = "pause/unpause"
)

var _ warden.Msg = (*PauseMsg)(nil)
var _ warden.Msg = (*UnpauseMsg)(nil)

// PauseMsg engages the switch.
type PauseMsg struct {
}

func (m *PauseMsg) Reset()         { *m = PauseMsg{} }
func (m *PauseMsg) String() string { return proto.CompactTextString(m) }
func (*PauseMsg) ProtoMessage()    {}

// Path fulfills warden.Msg interface to allow routing.
func (PauseMsg) Path() string {
	return pathPauseMsg
}

// Validate is a noop, the message carries no payload.
func (*PauseMsg) Validate() error {
	return nil
}

// UnpauseMsg releases the switch.
type UnpauseMsg struct {
}

func (m *UnpauseMsg) Reset()         { *m = UnpauseMsg{} }
func (m *UnpauseMsg) String() string { return proto.CompactTextString(m) }
func (*UnpauseMsg) ProtoMessage()    {}

// Path fulfills warden.Msg interface to allow routing.
func (UnpauseMsg) Path() string {
	return pathUnpauseMsg
}

// Validate is a noop, the message carries no payload.
func (*UnpauseMsg) Validate() error {
	return nil
}
