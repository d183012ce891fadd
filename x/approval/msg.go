package approval

import (
	"github.com/gogo/protobuf/proto"
	"github.com/iov-one/warden"
	"github.com/iov-one/warden/errors"
)

const (
	pathSubmitMsg  = "approval/submit"
	pathConfirmMsg = "approval/confirm"
	pathExecuteMsg = "approval/execute"

	// To avoid burning memory, this is the maximum payload size in
	// bytes accepted with a single submission.
	maxPayloadSize = 8192
)

var _ warden.Msg = (*SubmitMsg)(nil)
var _ warden.Msg = (*ConfirmMsg)(nil)
var _ warden.Msg = (*ExecuteMsg)(nil)

// SubmitMsg registers a new transaction intent.
type SubmitMsg struct {
	Destination []byte `protobuf:"bytes,1,opt,name=destination,proto3" json:"destination,omitempty"`
	Value       uint64 `protobuf:"varint,2,opt,name=value,proto3" json:"value,omitempty"`
	Payload     []byte `protobuf:"bytes,3,opt,name=payload,proto3" json:"payload,omitempty"`
}

func (m *SubmitMsg) Reset()         { *m = SubmitMsg{} }
func (m *SubmitMsg) String() string { return proto.CompactTextString(m) }
func (*SubmitMsg) ProtoMessage()    {}

// Path fulfills warden.Msg interface to allow routing.
func (SubmitMsg) Path() string {
	return pathSubmitMsg
}

// Validate enforces a usable destination and payload boundaries.
func (m *SubmitMsg) Validate() error {
	if err := warden.Address(m.Destination).Validate(); err != nil {
		return errors.Wrap(err, "destination")
	}
	if len(m.Payload) > maxPayloadSize {
		return errors.Wrapf(errors.ErrInput, "payload over %d bytes", maxPayloadSize)
	}
	return nil
}

// ConfirmMsg registers the confirmation of the caller on a transaction.
type ConfirmMsg struct {
	TransactionID []byte `protobuf:"bytes,1,opt,name=transaction_id,json=transactionId,proto3" json:"transaction_id,omitempty"`
}

func (m *ConfirmMsg) Reset()         { *m = ConfirmMsg{} }
func (m *ConfirmMsg) String() string { return proto.CompactTextString(m) }
func (*ConfirmMsg) ProtoMessage()    {}

// Path fulfills warden.Msg interface to allow routing.
func (ConfirmMsg) Path() string {
	return pathConfirmMsg
}

// Validate enforces the id format.
func (m *ConfirmMsg) Validate() error {
	return validateTxID(m.TransactionID)
}

// ExecuteMsg triggers execution of a transaction that reached the
// confirmation threshold.
type ExecuteMsg struct {
	TransactionID []byte `protobuf:"bytes,1,opt,name=transaction_id,json=transactionId,proto3" json:"transaction_id,omitempty"`
}

func (m *ExecuteMsg) Reset()         { *m = ExecuteMsg{} }
func (m *ExecuteMsg) String() string { return proto.CompactTextString(m) }
func (*ExecuteMsg) ProtoMessage()    {}

// Path fulfills warden.Msg interface to allow routing.
func (ExecuteMsg) Path() string {
	return pathExecuteMsg
}

// Validate enforces the id format.
func (m *ExecuteMsg) Validate() error {
	return validateTxID(m.TransactionID)
}

func validateTxID(txID []byte) error {
	if len(txID) == 0 {
		return errors.Wrap(errors.ErrEmpty, "transaction id")
	}
	if len(txID) != 8 {
		return errors.Wrapf(errors.ErrInput, "transaction id must be 8 bytes, got %d", len(txID))
	}
	return nil
}
