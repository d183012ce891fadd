package role

import (
	"github.com/iov-one/warden"
	"github.com/iov-one/warden/errors"
	"github.com/iov-one/warden/x"
	cmn "github.com/tendermint/tendermint/libs/common"
)

const (
	grantCost  int64 = 50
	revokeCost int64 = 0
)

// RegisterRoutes will instantiate and register all handlers in this
// package.
func RegisterRoutes(r warden.Registry, auth x.Authenticator) {
	reg := NewRegistry()
	r.Handle(pathGrantMsg, GrantHandler{auth: auth, reg: reg})
	r.Handle(pathRevokeMsg, RevokeHandler{auth: auth, reg: reg})
}

// GrantHandler adds a principal to a role.
type GrantHandler struct {
	auth x.Authenticator
	reg  Registry
}

var _ warden.Handler = GrantHandler{}

func (h GrantHandler) Check(ctx warden.Context, db warden.KVStore, tx warden.Tx) (*warden.CheckResult, error) {
	if _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &warden.CheckResult{GasAllocated: grantCost}, nil
}

func (h GrantHandler) Deliver(ctx warden.Context, db warden.KVStore, tx warden.Tx) (*warden.DeliverResult, error) {
	msg, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}

	addr := warden.Address(msg.Address)
	if err := h.reg.Grant(db, addr, Role(msg.Role)); err != nil {
		return nil, err
	}

	res := warden.DeliverResult{
		Tags: changedTags("grant", addr, Role(msg.Role)),
	}
	return &res, nil
}

// validate does all common pre-processing between Check and Deliver.
func (h GrantHandler) validate(ctx warden.Context, db warden.KVStore, tx warden.Tx) (*GrantMsg, error) {
	var msg GrantMsg
	if err := warden.LoadMsg(tx, &msg); err != nil {
		return nil, errors.Wrap(err, "load msg")
	}
	if err := canAdministrate(ctx, db, h.auth, h.reg, Role(msg.Role)); err != nil {
		return nil, err
	}
	return &msg, nil
}

// RevokeHandler removes a principal from a role.
type RevokeHandler struct {
	auth x.Authenticator
	reg  Registry
}

var _ warden.Handler = RevokeHandler{}

func (h RevokeHandler) Check(ctx warden.Context, db warden.KVStore, tx warden.Tx) (*warden.CheckResult, error) {
	if _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &warden.CheckResult{GasAllocated: revokeCost}, nil
}

func (h RevokeHandler) Deliver(ctx warden.Context, db warden.KVStore, tx warden.Tx) (*warden.DeliverResult, error) {
	msg, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}

	addr := warden.Address(msg.Address)
	if err := h.reg.Revoke(db, addr, Role(msg.Role)); err != nil {
		return nil, err
	}

	// Removing the last owner is allowed but bricks the gateway. Make
	// sure this leaves a trace.
	if Role(msg.Role) == Owner {
		members, err := h.reg.Members(db, Owner)
		if err != nil {
			return nil, errors.Wrap(err, "cannot count owners")
		}
		if len(members) == 0 {
			warden.GetLogger(ctx).Error("last owner revoked, gateway is frozen",
				"address", addr)
		}
	}

	res := warden.DeliverResult{
		Tags: changedTags("revoke", addr, Role(msg.Role)),
	}
	return &res, nil
}

// validate does all common pre-processing between Check and Deliver.
func (h RevokeHandler) validate(ctx warden.Context, db warden.KVStore, tx warden.Tx) (*RevokeMsg, error) {
	var msg RevokeMsg
	if err := warden.LoadMsg(tx, &msg); err != nil {
		return nil, errors.Wrap(err, "load msg")
	}
	if err := canAdministrate(ctx, db, h.auth, h.reg, Role(msg.Role)); err != nil {
		return nil, err
	}
	return &msg, nil
}

// canAdministrate checks the caller capability over a role. Changing
// membership requires either the configured admin address or membership
// in the very same role.
func canAdministrate(ctx warden.Context, db warden.KVStore, auth x.Authenticator, reg Registry, r Role) error {
	conf, err := LoadConfig(db)
	if err != nil {
		return errors.Wrap(err, "cannot load config")
	}
	if len(conf.Admin) != 0 && auth.HasAddress(ctx, conf.Admin) {
		return nil
	}
	for _, addr := range x.GetAddresses(ctx, auth) {
		ok, err := reg.HasRole(db, addr, r)
		if err != nil {
			return err
		}
		if ok {
			return nil
		}
	}
	return errors.ErrUnauthorized
}

func changedTags(op string, addr warden.Address, r Role) []cmn.KVPair {
	return []cmn.KVPair{
		warden.Pair("action", "role-"+op),
		warden.Pair("role", string(r)),
		warden.Pair("address", addr.String()),
	}
}
