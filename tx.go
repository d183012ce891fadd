package warden

import (
	"reflect"

	"github.com/iov-one/warden/errors"
)

// Msg is a message dispatched to a handler. Messages are validated before
// routing, so handlers can assume basic well-formedness.
type Msg interface {
	// Path returns the routing path of this message, in the form of
	// "extension/operation".
	Path() string

	// Validate performs a stateless check of the message content.
	Validate() error
}

// Tx represents the outermost wrapper of an operation request. It carries
// exactly one message.
type Tx interface {
	// GetMsg returns the action we wish to communicate
	GetMsg() (Msg, error)
}

// LoadMsg extracts the message from given transaction, ensures its
// validity, and loads it into given destination. Destination must be a
// pointer to the expected concrete message type.
func LoadMsg(tx Tx, destination Msg) error {
	msg, err := tx.GetMsg()
	if err != nil {
		return errors.Wrap(err, "cannot get message")
	}
	if err := msg.Validate(); err != nil {
		return errors.Wrap(err, "invalid message")
	}

	dest := reflect.ValueOf(destination)
	if dest.Kind() != reflect.Ptr {
		return errors.Wrapf(errors.ErrType, "%T is not a pointer", destination)
	}
	val := reflect.ValueOf(msg)
	if val.Type() != dest.Type() {
		return errors.Wrapf(errors.ErrMsg, "want %T message, got %T", destination, msg)
	}
	dest.Elem().Set(val.Elem())
	return nil
}
