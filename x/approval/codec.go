package approval

import (
	"github.com/gogo/protobuf/proto"
	"github.com/iov-one/warden"
	"github.com/iov-one/warden/errors"
)

// TransactionRecord is the stored state of one submitted transaction. A
// record is created at submission and never deleted. It transitions from
// not executed to executed exactly once, on a successful execution.
type TransactionRecord struct {
	Destination   []byte `protobuf:"bytes,1,opt,name=destination,proto3" json:"destination,omitempty"`
	Value         uint64 `protobuf:"varint,2,opt,name=value,proto3" json:"value,omitempty"`
	Payload       []byte `protobuf:"bytes,3,opt,name=payload,proto3" json:"payload,omitempty"`
	Executed      bool   `protobuf:"varint,4,opt,name=executed,proto3" json:"executed,omitempty"`
	Confirmations int32  `protobuf:"varint,5,opt,name=confirmations,proto3" json:"confirmations,omitempty"`
}

func (m *TransactionRecord) Reset()         { *m = TransactionRecord{} }
func (m *TransactionRecord) String() string { return proto.CompactTextString(m) }
func (*TransactionRecord) ProtoMessage()    {}

func (m *TransactionRecord) Validate() error {
	var errs error
	errs = errors.Append(errs,
		errors.Wrap(warden.Address(m.Destination).Validate(), "destination"))
	if m.Confirmations < 0 {
		errs = errors.Append(errs,
			errors.Wrap(errors.ErrModel, "negative confirmations"))
	}
	return errs
}

// Mark is the stored proof that one owner confirmed one transaction.
// Marks are created once and never destroyed.
type Mark struct {
	Confirmed bool `protobuf:"varint,1,opt,name=confirmed,proto3" json:"confirmed,omitempty"`
}

func (m *Mark) Reset()         { *m = Mark{} }
func (m *Mark) String() string { return proto.CompactTextString(m) }
func (*Mark) ProtoMessage()    {}

func (m *Mark) Validate() error {
	return nil
}

// Config holds the confirmation threshold. It is fixed at initialization
// time and is deliberately not re-validated against the owner count when
// role membership changes later.
type Config struct {
	Threshold int32 `protobuf:"varint,1,opt,name=threshold,proto3" json:"threshold,omitempty"`
}

func (m *Config) Reset()         { *m = Config{} }
func (m *Config) String() string { return proto.CompactTextString(m) }
func (*Config) ProtoMessage()    {}

func (m *Config) Validate() error {
	if m.Threshold < 1 {
		return errors.Wrap(errors.ErrInput, "threshold must be positive")
	}
	return nil
}
