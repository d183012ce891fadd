package approval

import (
	"github.com/iov-one/warden"
	"github.com/iov-one/warden/errors"
	"github.com/iov-one/warden/x"
	"github.com/iov-one/warden/x/pause"
	"github.com/iov-one/warden/x/role"
	cmn "github.com/tendermint/tendermint/libs/common"
)

const (
	submitCost  int64 = 100
	confirmCost int64 = 50
	executeCost int64 = 200
)

// RegisterRoutes will instantiate and register all handlers in this
// package.
func RegisterRoutes(r warden.Registry, auth x.Authenticator, roles role.Registry, exec Executor) {
	r.Handle(pathSubmitMsg, SubmitHandler{auth: auth, roles: roles})
	r.Handle(pathConfirmMsg, ConfirmHandler{auth: auth, roles: roles})
	r.Handle(pathExecuteMsg, ExecuteHandler{auth: auth, roles: roles, exec: exec})
}

// SubmitHandler stores a new transaction record.
type SubmitHandler struct {
	auth  x.Authenticator
	roles role.Registry
}

var _ warden.Handler = SubmitHandler{}

func (h SubmitHandler) Check(ctx warden.Context, db warden.KVStore, tx warden.Tx) (*warden.CheckResult, error) {
	if _, _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &warden.CheckResult{GasAllocated: submitCost}, nil
}

func (h SubmitHandler) Deliver(ctx warden.Context, db warden.KVStore, tx warden.Tx) (*warden.DeliverResult, error) {
	msg, _, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}

	txID, err := txSeq.NextVal(db)
	if err != nil {
		return nil, errors.Wrap(err, "cannot acquire id")
	}

	// Submission does not confirm implicitly, not even for the
	// submitter.
	rec := TransactionRecord{
		Destination:   msg.Destination,
		Value:         msg.Value,
		Payload:       msg.Payload,
		Executed:      false,
		Confirmations: 0,
	}
	if err := txBucket.Put(db, txID, &rec); err != nil {
		return nil, errors.Wrap(err, "cannot store transaction")
	}

	warden.GetLogger(ctx).Info("transaction submitted",
		"id", IDString(txID),
		"destination", warden.Address(msg.Destination))

	res := warden.DeliverResult{
		Data: txID,
		Tags: []cmn.KVPair{
			warden.Pair("action", "submit"),
			warden.Pair("tx.id", IDString(txID)),
		},
	}
	return &res, nil
}

// validate does all common pre-processing between Check and Deliver.
func (h SubmitHandler) validate(ctx warden.Context, db warden.KVStore, tx warden.Tx) (*SubmitMsg, warden.Address, error) {
	var msg SubmitMsg
	if err := warden.LoadMsg(tx, &msg); err != nil {
		return nil, nil, errors.Wrap(err, "load msg")
	}
	sender, err := ownerCaller(ctx, db, h.auth, h.roles)
	if err != nil {
		return nil, nil, err
	}
	if err := pause.AssertUnpaused(db); err != nil {
		return nil, nil, err
	}
	return &msg, sender, nil
}

// ConfirmHandler registers a one time, non revocable vote of one owner on
// one pending transaction.
type ConfirmHandler struct {
	auth  x.Authenticator
	roles role.Registry
}

var _ warden.Handler = ConfirmHandler{}

func (h ConfirmHandler) Check(ctx warden.Context, db warden.KVStore, tx warden.Tx) (*warden.CheckResult, error) {
	if _, _, _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &warden.CheckResult{GasAllocated: confirmCost}, nil
}

func (h ConfirmHandler) Deliver(ctx warden.Context, db warden.KVStore, tx warden.Tx) (*warden.DeliverResult, error) {
	msg, rec, sender, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}

	mark := Mark{Confirmed: true}
	if err := marksBucket.Put(db, markKey(msg.TransactionID, sender), &mark); err != nil {
		return nil, errors.Wrap(err, "cannot store mark")
	}
	rec.Confirmations++
	if err := txBucket.Put(db, msg.TransactionID, rec); err != nil {
		return nil, errors.Wrap(err, "cannot update transaction")
	}

	warden.GetLogger(ctx).Info("transaction confirmed",
		"id", IDString(msg.TransactionID),
		"confirmations", rec.Confirmations,
		"address", sender)

	res := warden.DeliverResult{
		Tags: []cmn.KVPair{
			warden.Pair("action", "confirm"),
			warden.Pair("tx.id", IDString(msg.TransactionID)),
			warden.Pair("address", sender.String()),
		},
	}
	return &res, nil
}

// validate does all common pre-processing between Check and Deliver.
func (h ConfirmHandler) validate(ctx warden.Context, db warden.KVStore, tx warden.Tx) (*ConfirmMsg, *TransactionRecord, warden.Address, error) {
	var msg ConfirmMsg
	if err := warden.LoadMsg(tx, &msg); err != nil {
		return nil, nil, nil, errors.Wrap(err, "load msg")
	}
	sender, err := ownerCaller(ctx, db, h.auth, h.roles)
	if err != nil {
		return nil, nil, nil, err
	}
	if err := pause.AssertUnpaused(db); err != nil {
		return nil, nil, nil, err
	}
	rec, err := TxRecord(db, msg.TransactionID)
	if err != nil {
		return nil, nil, nil, err
	}
	if rec.Executed {
		return nil, nil, nil, errors.Wrapf(ErrAlreadyExecuted, "transaction %s", IDString(msg.TransactionID))
	}
	confirmed, err := HasConfirmed(db, msg.TransactionID, sender)
	if err != nil {
		return nil, nil, nil, err
	}
	if confirmed {
		// A second confirmation is an error, not a noop.
		return nil, nil, nil, errors.Wrapf(ErrAlreadyConfirmed, "by %s", sender)
	}
	return &msg, rec, sender, nil
}

// ExecuteHandler triggers the outbound action of a transaction that
// reached the confirmation threshold.
type ExecuteHandler struct {
	auth  x.Authenticator
	roles role.Registry
	exec  Executor
}

var _ warden.Handler = ExecuteHandler{}

func (h ExecuteHandler) Check(ctx warden.Context, db warden.KVStore, tx warden.Tx) (*warden.CheckResult, error) {
	if _, _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &warden.CheckResult{GasAllocated: executeCost}, nil
}

func (h ExecuteHandler) Deliver(ctx warden.Context, db warden.KVStore, tx warden.Tx) (*warden.DeliverResult, error) {
	msg, rec, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}

	// The flag must be persisted before calling out. A reentrant call
	// into this handler for the same id then fails with
	// ErrAlreadyExecuted instead of executing twice.
	rec.Executed = true
	if err := txBucket.Put(db, msg.TransactionID, rec); err != nil {
		return nil, errors.Wrap(err, "cannot update transaction")
	}

	out, execErr := h.exec.Execute(ctx, rec.Destination, rec.Value, rec.Payload)
	if execErr != nil {
		// Reopen the record so the execution can be retried once the
		// failure condition is resolved. No other operation can have
		// touched it while the flag was set.
		rec.Executed = false
		if err := txBucket.Put(db, msg.TransactionID, rec); err != nil {
			return nil, errors.Wrap(err, "cannot reopen transaction")
		}
		warden.GetLogger(ctx).Error("execution failed",
			"id", IDString(msg.TransactionID),
			"err", execErr)
		res := warden.DeliverResult{
			Log: "execution failed",
			Tags: []cmn.KVPair{
				warden.Pair("action", "execute-failure"),
				warden.Pair("tx.id", IDString(msg.TransactionID)),
			},
		}
		return &res, nil
	}

	warden.GetLogger(ctx).Info("transaction executed",
		"id", IDString(msg.TransactionID))

	res := warden.DeliverResult{
		Data: out,
		Tags: []cmn.KVPair{
			warden.Pair("action", "execute"),
			warden.Pair("tx.id", IDString(msg.TransactionID)),
		},
	}
	return &res, nil
}

// validate does all common pre-processing between Check and Deliver.
func (h ExecuteHandler) validate(ctx warden.Context, db warden.KVStore, tx warden.Tx) (*ExecuteMsg, *TransactionRecord, error) {
	var msg ExecuteMsg
	if err := warden.LoadMsg(tx, &msg); err != nil {
		return nil, nil, errors.Wrap(err, "load msg")
	}
	if _, err := ownerCaller(ctx, db, h.auth, h.roles); err != nil {
		return nil, nil, err
	}
	if err := pause.AssertUnpaused(db); err != nil {
		return nil, nil, err
	}
	rec, err := TxRecord(db, msg.TransactionID)
	if err != nil {
		return nil, nil, err
	}
	if rec.Executed {
		return nil, nil, errors.Wrapf(ErrAlreadyExecuted, "transaction %s", IDString(msg.TransactionID))
	}
	threshold, err := Threshold(db)
	if err != nil {
		return nil, nil, err
	}
	if rec.Confirmations < threshold {
		return nil, nil, errors.Wrapf(ErrInsufficientConfirmations,
			"%d of %d", rec.Confirmations, threshold)
	}
	return &msg, rec, nil
}

// ownerCaller returns the main signer if it holds the owner role, or
// ErrUnauthorized. The main signer is the principal all approval
// operations are attributed to.
func ownerCaller(ctx warden.Context, db warden.KVStore, auth x.Authenticator, roles role.Registry) (warden.Address, error) {
	sender := x.MainSigner(ctx, auth)
	if sender == nil {
		return nil, errors.Wrap(errors.ErrUnauthorized, "no signer")
	}
	addr := sender.Address()
	ok, err := roles.HasRole(db, addr, role.Owner)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, errors.Wrapf(errors.ErrUnauthorized, "%s is not an owner", addr)
	}
	return addr, nil
}
