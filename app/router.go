package app

import (
	"regexp"

	"github.com/iov-one/warden"
	"github.com/iov-one/warden/errors"
)

// isPath ensures path is limited to a reasonable size and character set.
var isPath = regexp.MustCompile(`^[a-z0-9_/-]{4,32}$`).MatchString

// Router is one logic version of the gateway. It maps message paths to
// the handlers implementing them.
type Router struct {
	routes map[string]warden.Handler
}

var _ warden.Registry = (*Router)(nil)
var _ warden.Handler = (*Router)(nil)

// NewRouter initializes a router with no routes.
func NewRouter() *Router {
	return &Router{
		routes: make(map[string]warden.Handler),
	}
}

// Handle sets the handler for a given message path. Panics on invalid
// path or on repeated registration, both are programmer errors during
// setup.
func (r *Router) Handle(path string, h warden.Handler) {
	if !isPath(path) {
		panic("invalid path: " + path)
	}
	if _, ok := r.routes[path]; ok {
		panic("re-registering route: " + path)
	}
	r.routes[path] = h
}

// handler returns the registered Handler, or a handler that fails every
// call with ErrNotFound.
func (r *Router) handler(path string) warden.Handler {
	if h, ok := r.routes[path]; ok {
		return h
	}
	return notFoundHandler(path)
}

// Check dispatches to the proper handler based on the message path.
func (r *Router) Check(ctx warden.Context, db warden.KVStore, tx warden.Tx) (*warden.CheckResult, error) {
	msg, err := tx.GetMsg()
	if err != nil {
		return nil, errors.Wrap(err, "get msg")
	}
	return r.handler(msg.Path()).Check(ctx, db, tx)
}

// Deliver dispatches to the proper handler based on the message path.
func (r *Router) Deliver(ctx warden.Context, db warden.KVStore, tx warden.Tx) (*warden.DeliverResult, error) {
	msg, err := tx.GetMsg()
	if err != nil {
		return nil, errors.Wrap(err, "get msg")
	}
	return r.handler(msg.Path()).Deliver(ctx, db, tx)
}

type notFoundHandler string

var _ warden.Handler = notFoundHandler("")

func (h notFoundHandler) Check(ctx warden.Context, db warden.KVStore, tx warden.Tx) (*warden.CheckResult, error) {
	return nil, errors.Wrapf(errors.ErrNotFound, "no handler for %q", string(h))
}

func (h notFoundHandler) Deliver(ctx warden.Context, db warden.KVStore, tx warden.Tx) (*warden.DeliverResult, error) {
	return nil, errors.Wrapf(errors.ErrNotFound, "no handler for %q", string(h))
}
