package errors

import (
	"strings"
)

// Append clubs together all provided errors. Nil values are ignored.
//
// If given error implements the unpacker interface, it is flattened and
// instead of the given error all represented errors are directly included
// in the result set.
func Append(errs ...error) error {
	var res multiError
	for _, e := range errs {
		switch e := e.(type) {
		case nil:
			continue
		case unpacker:
			res = append(res, e.Unpack()...)
		default:
			res = append(res, e)
		}
	}

	switch len(res) {
	case 0:
		return nil
	case 1:
		return res[0]
	default:
		return res
	}
}

// multiError represents a group of errors. It is created by the Append
// function and is never empty or of size one.
type multiError []error

var _ unpacker = (multiError)(nil)

func (errs multiError) Error() string {
	switch len(errs) {
	case 0:
		return ""
	case 1:
		return errs[0].Error()
	}
	msgs := make([]string, len(errs))
	for i, err := range errs {
		msgs[i] = err.Error()
	}
	return strings.Join(msgs, "; ")
}

// Unpack returns all errors that this instance is clubbing together.
func (errs multiError) Unpack() []error {
	return errs
}

// Contains first checks if given error is a multi error and if so, it
// checks each error it contains. This is a helper that allows root error
// tests against error collections.
func Contains(clubbed error, err *Error) bool {
	if err.Is(clubbed) {
		return true
	}
	if u, ok := clubbed.(unpacker); ok {
		for _, e := range u.Unpack() {
			if Contains(e, err) {
				return true
			}
		}
	}
	return false
}

type unpacker interface {
	Unpack() []error
}
