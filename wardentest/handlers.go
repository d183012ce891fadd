package wardentest

import (
	"github.com/iov-one/warden"
)

// Handler implements the warden.Handler interface and always returns the
// declared results. It counts the number of calls, so tests can assert
// routing.
type Handler struct {
	checkCall   int
	deliverCall int

	CheckResult   warden.CheckResult
	CheckErr      error
	DeliverResult warden.DeliverResult
	DeliverErr    error
}

var _ warden.Handler = (*Handler)(nil)

func (h *Handler) Check(ctx warden.Context, db warden.KVStore, tx warden.Tx) (*warden.CheckResult, error) {
	h.checkCall++
	if h.CheckErr != nil {
		return nil, h.CheckErr
	}
	res := h.CheckResult
	return &res, nil
}

func (h *Handler) Deliver(ctx warden.Context, db warden.KVStore, tx warden.Tx) (*warden.DeliverResult, error) {
	h.deliverCall++
	if h.DeliverErr != nil {
		return nil, h.DeliverErr
	}
	res := h.DeliverResult
	return &res, nil
}

func (h *Handler) CheckCallCount() int {
	return h.checkCall
}

func (h *Handler) DeliverCallCount() int {
	return h.deliverCall
}

func (h *Handler) CallCount() int {
	return h.checkCall + h.deliverCall
}
