package warden

import (
	cmn "github.com/tendermint/tendermint/libs/common"
)

// CheckResult captures any non-error response from the preliminary
// validation of an operation.
type CheckResult struct {
	// Data is a machine-parseable return value, like id of created entity
	Data []byte
	// Log is human-readable informational string
	Log string
	// GasAllocated is the maximum units of work we allow this op to perform
	GasAllocated int64
}

// DeliverResult captures any non-error response from applying an
// operation.
type DeliverResult struct {
	// Data is a machine-parseable return value, like id of created entity
	Data []byte
	// Log is human-readable informational string
	Log string
	// Tags are the emitted notifications, used by external observers to
	// index and search the operation history
	Tags []cmn.KVPair
	// GasUsed is the units of work performed by this operation
	GasUsed int64
}

// Pair builds a notification tag from a pair of strings.
func Pair(key, value string) cmn.KVPair {
	return cmn.KVPair{
		Key:   []byte(key),
		Value: []byte(value),
	}
}
