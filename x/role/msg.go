package role

import (
	"github.com/gogo/protobuf/proto"
	"github.com/iov-one/warden"
	"github.com/iov-one/warden/errors"
)

const (
	pathGrantMsg  = "role/grant"
	pathRevokeMsg = "role/revoke"
)

var _ warden.Msg = (*GrantMsg)(nil)
var _ warden.Msg = (*RevokeMsg)(nil)

// GrantMsg requests membership of a principal in a role.
type GrantMsg struct {
	Address []byte `protobuf:"bytes,1,opt,name=address,proto3" json:"address,omitempty"`
	Role    string `protobuf:"bytes,2,opt,name=role,proto3" json:"role,omitempty"`
}

func (m *GrantMsg) Reset()         { *m = GrantMsg{} }
func (m *GrantMsg) String() string { return proto.CompactTextString(m) }
func (*GrantMsg) ProtoMessage()    {}

// Path fulfills warden.Msg interface to allow routing.
func (GrantMsg) Path() string {
	return pathGrantMsg
}

// Validate enforces address and role name correctness.
func (m *GrantMsg) Validate() error {
	return validateMsg(m.Address, m.Role)
}

// RevokeMsg requests removal of a principal from a role.
type RevokeMsg struct {
	Address []byte `protobuf:"bytes,1,opt,name=address,proto3" json:"address,omitempty"`
	Role    string `protobuf:"bytes,2,opt,name=role,proto3" json:"role,omitempty"`
}

func (m *RevokeMsg) Reset()         { *m = RevokeMsg{} }
func (m *RevokeMsg) String() string { return proto.CompactTextString(m) }
func (*RevokeMsg) ProtoMessage()    {}

// Path fulfills warden.Msg interface to allow routing.
func (RevokeMsg) Path() string {
	return pathRevokeMsg
}

// Validate enforces address and role name correctness.
func (m *RevokeMsg) Validate() error {
	return validateMsg(m.Address, m.Role)
}

func validateMsg(addr []byte, r string) error {
	var errs error
	errs = errors.Append(errs,
		errors.Wrap(warden.Address(addr).Validate(), "address"))
	errs = errors.Append(errs,
		errors.Wrap(Role(r).Validate(), "role"))
	return errs
}
