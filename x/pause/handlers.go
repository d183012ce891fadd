package pause

import (
	"github.com/iov-one/warden"
	"github.com/iov-one/warden/errors"
	"github.com/iov-one/warden/x"
	"github.com/iov-one/warden/x/role"
	cmn "github.com/tendermint/tendermint/libs/common"
)

const flipCost int64 = 0

// RegisterRoutes will instantiate and register all handlers in this
// package.
func RegisterRoutes(r warden.Registry, auth x.Authenticator, roles role.Registry) {
	r.Handle(pathPauseMsg, PauseHandler{auth: auth, roles: roles})
	r.Handle(pathUnpauseMsg, UnpauseHandler{auth: auth, roles: roles})
}

// PauseHandler engages the switch.
type PauseHandler struct {
	auth  x.Authenticator
	roles role.Registry
}

var _ warden.Handler = PauseHandler{}

func (h PauseHandler) Check(ctx warden.Context, db warden.KVStore, tx warden.Tx) (*warden.CheckResult, error) {
	if err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &warden.CheckResult{GasAllocated: flipCost}, nil
}

func (h PauseHandler) Deliver(ctx warden.Context, db warden.KVStore, tx warden.Tx) (*warden.DeliverResult, error) {
	if err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	if err := SetPaused(db, true); err != nil {
		return nil, err
	}
	warden.GetLogger(ctx).Info("gateway paused")
	res := warden.DeliverResult{
		Tags: []cmn.KVPair{warden.Pair("action", "pause")},
	}
	return &res, nil
}

func (h PauseHandler) validate(ctx warden.Context, db warden.KVStore, tx warden.Tx) error {
	var msg PauseMsg
	if err := warden.LoadMsg(tx, &msg); err != nil {
		return errors.Wrap(err, "load msg")
	}
	return canFlip(ctx, db, h.auth, h.roles)
}

// UnpauseHandler releases the switch.
type UnpauseHandler struct {
	auth  x.Authenticator
	roles role.Registry
}

var _ warden.Handler = UnpauseHandler{}

func (h UnpauseHandler) Check(ctx warden.Context, db warden.KVStore, tx warden.Tx) (*warden.CheckResult, error) {
	if err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &warden.CheckResult{GasAllocated: flipCost}, nil
}

func (h UnpauseHandler) Deliver(ctx warden.Context, db warden.KVStore, tx warden.Tx) (*warden.DeliverResult, error) {
	if err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	if err := SetPaused(db, false); err != nil {
		return nil, err
	}
	warden.GetLogger(ctx).Info("gateway unpaused")
	res := warden.DeliverResult{
		Tags: []cmn.KVPair{warden.Pair("action", "unpause")},
	}
	return &res, nil
}

func (h UnpauseHandler) validate(ctx warden.Context, db warden.KVStore, tx warden.Tx) error {
	var msg UnpauseMsg
	if err := warden.LoadMsg(tx, &msg); err != nil {
		return errors.Wrap(err, "load msg")
	}
	return canFlip(ctx, db, h.auth, h.roles)
}

// canFlip checks the pausing capability of the caller according to the
// configured policy.
func canFlip(ctx warden.Context, db warden.KVStore, auth x.Authenticator, roles role.Registry) error {
	conf, err := LoadConfig(db)
	if err != nil {
		return errors.Wrap(err, "cannot load config")
	}
	required := role.Owner
	if Policy(conf.Policy) == PolicyPauser {
		required = role.Pauser
	}
	for _, addr := range x.GetAddresses(ctx, auth) {
		ok, err := roles.HasRole(db, addr, required)
		if err != nil {
			return err
		}
		if ok {
			return nil
		}
	}
	return errors.ErrUnauthorized
}
