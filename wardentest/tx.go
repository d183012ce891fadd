package wardentest

import (
	"github.com/iov-one/warden"
)

// Tx is a mock implementing the warden.Tx interface.
type Tx struct {
	// Msg is the message this transaction is carrying.
	Msg warden.Msg

	// Err if set is returned by any method call.
	Err error
}

var _ warden.Tx = (*Tx)(nil)

func (tx *Tx) GetMsg() (warden.Msg, error) {
	if tx.Err != nil {
		return nil, tx.Err
	}
	return tx.Msg, nil
}
