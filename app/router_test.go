package app

import (
	"context"
	"testing"

	"github.com/iov-one/warden/errors"
	"github.com/iov-one/warden/store"
	"github.com/iov-one/warden/wardentest"
	"github.com/stretchr/testify/assert"
)

func TestRouterDispatch(t *testing.T) {
	r := NewRouter()
	h := &wardentest.Handler{}
	r.Handle("test/good", h)

	db := store.MemStore()
	tx := &wardentest.Tx{Msg: &wardentest.Msg{RoutePath: "test/good"}}
	_, err := r.Deliver(context.Background(), db, tx)
	assert.NoError(t, err)
	assert.Equal(t, 1, h.DeliverCallCount())

	tx = &wardentest.Tx{Msg: &wardentest.Msg{RoutePath: "test/missing"}}
	_, err = r.Deliver(context.Background(), db, tx)
	assert.True(t, errors.ErrNotFound.Is(err))
	_, err = r.Check(context.Background(), db, tx)
	assert.True(t, errors.ErrNotFound.Is(err))
}

func TestRouterPanicsOnDoubleRegistration(t *testing.T) {
	r := NewRouter()
	r.Handle("test/good", &wardentest.Handler{})
	assert.Panics(t, func() {
		r.Handle("test/good", &wardentest.Handler{})
	})
}

func TestRouterPanicsOnInvalidPath(t *testing.T) {
	r := NewRouter()
	assert.Panics(t, func() {
		r.Handle("Bad Path!", &wardentest.Handler{})
	})
}
