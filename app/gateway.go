package app

import (
	"sync"

	"github.com/google/uuid"
	"github.com/iov-one/warden"
	"github.com/iov-one/warden/errors"
	"github.com/iov-one/warden/x/upgrade"
	"github.com/tendermint/tendermint/libs/log"
)

// Gateway owns the state store and dispatches every operation through
// the active logic version. Calls are serialized, and every call runs on
// a cache wrap of the store that is committed only on success. A handler
// error therefore never leaves a partial mutation behind.
type Gateway struct {
	mu     sync.Mutex
	db     warden.CacheableKVStore
	logics map[string]*Router
	logger log.Logger
}

var _ upgrade.RefSet = (*Gateway)(nil)

// NewGateway returns a gateway with no logic versions registered yet.
func NewGateway(db warden.CacheableKVStore, logger log.Logger) *Gateway {
	if logger == nil {
		logger = warden.DefaultLogger
	}
	return &Gateway{
		db:     db,
		logics: make(map[string]*Router),
		logger: logger,
	}
}

// AddLogic registers a new logic version and returns its empty router
// for the caller to fill with handlers. Panics on a repeated reference,
// that is a programmer error during setup.
func (g *Gateway) AddLogic(ref string) *Router {
	if _, ok := g.logics[ref]; ok {
		panic("re-registering logic: " + ref)
	}
	r := NewRouter()
	g.logics[ref] = r
	return r
}

// HasRef implements upgrade.RefSet so only registered logic versions can
// be activated.
func (g *Gateway) HasRef(ref string) bool {
	_, ok := g.logics[ref]
	return ok
}

// Check runs the operation without persisting anything.
func (g *Gateway) Check(ctx warden.Context, tx warden.Tx) (*warden.CheckResult, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	ctx, router, cache, err := g.prepare(ctx)
	if err != nil {
		return nil, err
	}
	defer cache.Discard()

	return router.Check(ctx, cache, tx)
}

// Deliver runs the operation and commits its mutations on success. On a
// handler error the cache wrap is discarded and the state is exactly as
// before the call.
func (g *Gateway) Deliver(ctx warden.Context, tx warden.Tx) (*warden.DeliverResult, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	ctx, router, cache, err := g.prepare(ctx)
	if err != nil {
		return nil, err
	}

	res, err := router.Deliver(ctx, cache, tx)
	if err != nil {
		cache.Discard()
		return nil, err
	}
	if err := cache.Write(); err != nil {
		return nil, errors.Wrap(err, "cannot commit")
	}
	return res, nil
}

// prepare resolves the active logic version and sets up the per-call
// cache wrap and logger. Every call is tagged with a fresh correlation
// id so concurrent clients can follow their own calls through the logs.
func (g *Gateway) prepare(ctx warden.Context) (warden.Context, *Router, warden.KVCacheWrap, error) {
	ref, err := upgrade.ActiveRef(g.db)
	if err != nil {
		return nil, nil, nil, errors.Wrap(err, "no active logic")
	}
	router, ok := g.logics[ref]
	if !ok {
		return nil, nil, nil, errors.Wrapf(ErrConfiguration, "active logic %q is not registered", ref)
	}
	ctx = warden.WithLogger(ctx, g.logger)
	ctx = warden.LogInfo(ctx, "call", uuid.New().String(), "logic", ref)
	return ctx, router, g.db.CacheWrap(), nil
}
