package upgrade

import (
	"github.com/gogo/protobuf/proto"
	"github.com/iov-one/warden"
)

const pathAuthorizeMsg = "upgrade/authorize"

var _ warden.Msg = (*AuthorizeUpgradeMsg)(nil)

// AuthorizeUpgradeMsg moves the gateway to another logic version.
type AuthorizeUpgradeMsg struct {
	Ref string `protobuf:"bytes,1,opt,name=ref,proto3" json:"ref,omitempty"`
}

func (m *AuthorizeUpgradeMsg) Reset()         { *m = AuthorizeUpgradeMsg{} }
func (m *AuthorizeUpgradeMsg) String() string { return proto.CompactTextString(m) }
func (*AuthorizeUpgradeMsg) ProtoMessage()    {}

// Path fulfills warden.Msg interface to allow routing.
func (AuthorizeUpgradeMsg) Path() string {
	return pathAuthorizeMsg
}

// Validate enforces the reference format.
func (m *AuthorizeUpgradeMsg) Validate() error {
	return validateRef(m.Ref)
}
