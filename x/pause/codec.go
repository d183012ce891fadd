package pause

import (
	"github.com/gogo/protobuf/proto"
	"github.com/iov-one/warden/errors"
)

// State is the persisted switch state.
type State struct {
	Paused bool `protobuf:"varint,1,opt,name=paused,proto3" json:"paused,omitempty"`
}

func (m *State) Reset()         { *m = State{} }
func (m *State) String() string { return proto.CompactTextString(m) }
func (*State) ProtoMessage()    {}

func (m *State) Validate() error {
	return nil
}

// Policy names who may flip the switch.
type Policy string

const (
	// PolicyOwner allows any owner to pause and unpause.
	PolicyOwner Policy = "owner"

	// PolicyPauser allows only holders of the pauser role to pause and
	// unpause.
	PolicyPauser Policy = "pauser"
)

// Config holds the pause policy chosen at initialization time.
type Config struct {
	Policy string `protobuf:"bytes,1,opt,name=policy,proto3" json:"policy,omitempty"`
}

func (m *Config) Reset()         { *m = Config{} }
func (m *Config) String() string { return proto.CompactTextString(m) }
func (*Config) ProtoMessage()    {}

func (m *Config) Validate() error {
	switch Policy(m.Policy) {
	case PolicyOwner, PolicyPauser:
		return nil
	default:
		return errors.Wrapf(errors.ErrInput, "unknown pause policy %q", m.Policy)
	}
}
