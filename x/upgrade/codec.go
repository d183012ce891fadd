package upgrade

import (
	"regexp"

	"github.com/gogo/protobuf/proto"
	"github.com/iov-one/warden/errors"
)

// Config holds the reference of the active gateway logic.
type Config struct {
	Ref string `protobuf:"bytes,1,opt,name=ref,proto3" json:"ref,omitempty"`
}

var _ proto.Message = (*Config)(nil)

func (c *Config) Reset()         { *c = Config{} }
func (c *Config) String() string { return proto.CompactTextString(c) }
func (*Config) ProtoMessage()    {}

func (c *Config) Validate() error {
	return validateRef(c.Ref)
}

var validRef = regexp.MustCompile(`^[a-z0-9][a-z0-9._-]{0,63}$`).MatchString

func validateRef(ref string) error {
	if ref == "" {
		return errors.Wrap(errors.ErrEmpty, "ref")
	}
	if !validRef(ref) {
		return errors.Wrapf(errors.ErrInput, "invalid ref %q", ref)
	}
	return nil
}
