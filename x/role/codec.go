package role

import (
	"github.com/gogo/protobuf/proto"
	"github.com/iov-one/warden"
	"github.com/iov-one/warden/errors"
)

// Assignment is the stored relation between a principal and a role it
// holds. One entity is stored per (role, principal) pair.
type Assignment struct {
	Address []byte `protobuf:"bytes,1,opt,name=address,proto3" json:"address,omitempty"`
	Role    string `protobuf:"bytes,2,opt,name=role,proto3" json:"role,omitempty"`
}

func (m *Assignment) Reset()         { *m = Assignment{} }
func (m *Assignment) String() string { return proto.CompactTextString(m) }
func (*Assignment) ProtoMessage()    {}

func (m *Assignment) Validate() error {
	var errs error
	errs = errors.Append(errs,
		errors.Wrap(warden.Address(m.Address).Validate(), "address"))
	errs = errors.Append(errs,
		errors.Wrap(Role(m.Role).Validate(), "role"))
	return errs
}

// Config holds the registry configuration. Admin is optional. When set,
// the admin address can change any role membership. Membership in a role
// always implies administration rights over that same role.
type Config struct {
	Admin []byte `protobuf:"bytes,1,opt,name=admin,proto3" json:"admin,omitempty"`
}

func (m *Config) Reset()         { *m = Config{} }
func (m *Config) String() string { return proto.CompactTextString(m) }
func (*Config) ProtoMessage()    {}

func (m *Config) Validate() error {
	if len(m.Admin) == 0 {
		return nil
	}
	return errors.Wrap(warden.Address(m.Admin).Validate(), "admin")
}
