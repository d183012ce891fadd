package upgrade

import (
	"github.com/iov-one/warden"
	"github.com/iov-one/warden/errors"
	"github.com/iov-one/warden/x"
	"github.com/iov-one/warden/x/pause"
	"github.com/iov-one/warden/x/role"
	cmn "github.com/tendermint/tendermint/libs/common"
)

const authorizeCost int64 = 0

// RefSet answers whether a logic reference is registered with the
// gateway. The gateway itself provides the implementation.
type RefSet interface {
	HasRef(ref string) bool
}

// RefSetFunc turns a plain function into a RefSet.
type RefSetFunc func(ref string) bool

func (f RefSetFunc) HasRef(ref string) bool { return f(ref) }

// RegisterRoutes will instantiate and register all handlers in this
// package.
func RegisterRoutes(r warden.Registry, auth x.Authenticator, roles role.Registry, refs RefSet) {
	r.Handle(pathAuthorizeMsg, AuthorizeHandler{auth: auth, roles: roles, refs: refs})
}

// AuthorizeHandler moves the active logic reference. The caller must
// hold the upgrader role and the gateway must be paused first.
type AuthorizeHandler struct {
	auth  x.Authenticator
	roles role.Registry
	refs  RefSet
}

var _ warden.Handler = AuthorizeHandler{}

func (h AuthorizeHandler) Check(ctx warden.Context, db warden.KVStore, tx warden.Tx) (*warden.CheckResult, error) {
	if _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &warden.CheckResult{GasAllocated: authorizeCost}, nil
}

func (h AuthorizeHandler) Deliver(ctx warden.Context, db warden.KVStore, tx warden.Tx) (*warden.DeliverResult, error) {
	msg, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}

	if err := SaveConfig(db, Config{Ref: msg.Ref}); err != nil {
		return nil, errors.Wrap(err, "cannot store config")
	}

	warden.GetLogger(ctx).Info("upgrade authorized", "ref", msg.Ref)

	res := warden.DeliverResult{
		Tags: []cmn.KVPair{
			warden.Pair("action", "authorize-upgrade"),
			warden.Pair("ref", msg.Ref),
		},
	}
	return &res, nil
}

// validate does all common pre-processing between Check and Deliver. The
// role is checked before the pause state so an unauthorized caller learns
// nothing about the gateway being open for upgrade.
func (h AuthorizeHandler) validate(ctx warden.Context, db warden.KVStore, tx warden.Tx) (*AuthorizeUpgradeMsg, error) {
	var msg AuthorizeUpgradeMsg
	if err := warden.LoadMsg(tx, &msg); err != nil {
		return nil, errors.Wrap(err, "load msg")
	}
	if err := h.canUpgrade(ctx, db); err != nil {
		return nil, err
	}
	paused, err := pause.IsPaused(db)
	if err != nil {
		return nil, err
	}
	if !paused {
		return nil, errors.Wrap(ErrMustBePaused, "authorize upgrade")
	}
	if h.refs != nil && !h.refs.HasRef(msg.Ref) {
		return nil, errors.Wrapf(ErrUnknownRef, "%q", msg.Ref)
	}
	return &msg, nil
}

func (h AuthorizeHandler) canUpgrade(ctx warden.Context, db warden.KVStore) error {
	for _, addr := range x.GetAddresses(ctx, h.auth) {
		ok, err := h.roles.HasRole(db, addr, role.Upgrader)
		if err != nil {
			return err
		}
		if ok {
			return nil
		}
	}
	return errors.Wrap(errors.ErrUnauthorized, "upgrader role required")
}
