package approval

import (
	"context"
	"testing"

	"github.com/iov-one/warden"
	"github.com/iov-one/warden/errors"
	"github.com/iov-one/warden/orm"
	"github.com/iov-one/warden/store"
	"github.com/iov-one/warden/wardentest"
	"github.com/iov-one/warden/x/pause"
	"github.com/iov-one/warden/x/role"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fixture wires an engine with three owners and a threshold of two.
type fixture struct {
	db       *store.BTreeStore
	roles    role.Registry
	exec     *wardentest.Executor
	a, b, c  warden.Condition
	stranger warden.Condition
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	f := fixture{
		db:       store.MemStore(),
		roles:    role.NewRegistry(),
		exec:     &wardentest.Executor{Data: []byte("ok")},
		a:        wardentest.NewCondition(),
		b:        wardentest.NewCondition(),
		c:        wardentest.NewCondition(),
		stranger: wardentest.NewCondition(),
	}
	for _, owner := range []warden.Condition{f.a, f.b, f.c} {
		require.NoError(t, f.roles.Grant(f.db, owner.Address(), role.Owner))
	}
	require.NoError(t, SaveConfig(f.db, Config{Threshold: 2}))
	return &f
}

func (f *fixture) submit(t *testing.T, signer warden.Condition, msg *SubmitMsg) []byte {
	t.Helper()
	h := SubmitHandler{auth: &wardentest.Auth{Signer: signer}, roles: f.roles}
	res, err := h.Deliver(context.Background(), f.db, &wardentest.Tx{Msg: msg})
	require.NoError(t, err)
	return res.Data
}

func (f *fixture) confirm(signer warden.Condition, txID []byte) error {
	h := ConfirmHandler{auth: &wardentest.Auth{Signer: signer}, roles: f.roles}
	_, err := h.Deliver(context.Background(), f.db, &wardentest.Tx{Msg: &ConfirmMsg{TransactionID: txID}})
	return err
}

func (f *fixture) execute(signer warden.Condition, txID []byte) (*warden.DeliverResult, error) {
	h := ExecuteHandler{auth: &wardentest.Auth{Signer: signer}, roles: f.roles, exec: f.exec}
	return h.Deliver(context.Background(), f.db, &wardentest.Tx{Msg: &ExecuteMsg{TransactionID: txID}})
}

func destination() []byte {
	return wardentest.NewAddress()
}

func TestSubmitAllocatesSequentialIDs(t *testing.T) {
	f := newFixture(t)

	first := f.submit(t, f.a, &SubmitMsg{Destination: destination(), Value: 1})
	assert.Equal(t, orm.EncodeSequence(0), first)

	second := f.submit(t, f.b, &SubmitMsg{Destination: destination(), Value: 2})
	assert.Equal(t, orm.EncodeSequence(1), second)

	rec, err := TxRecord(f.db, first)
	require.NoError(t, err)
	assert.False(t, rec.Executed)
	assert.Equal(t, int32(0), rec.Confirmations, "no implicit self confirmation")
}

func TestSubmitRequiresOwner(t *testing.T) {
	f := newFixture(t)
	h := SubmitHandler{auth: &wardentest.Auth{Signer: f.stranger}, roles: f.roles}
	_, err := h.Deliver(context.Background(), f.db, &wardentest.Tx{
		Msg: &SubmitMsg{Destination: destination(), Value: 1},
	})
	assert.True(t, errors.ErrUnauthorized.Is(err))
}

func TestSubmitRequiresDestination(t *testing.T) {
	f := newFixture(t)
	h := SubmitHandler{auth: &wardentest.Auth{Signer: f.a}, roles: f.roles}
	_, err := h.Deliver(context.Background(), f.db, &wardentest.Tx{
		Msg: &SubmitMsg{Value: 1},
	})
	assert.True(t, errors.ErrEmpty.Is(err))
}

func TestConfirmOncePerOwner(t *testing.T) {
	f := newFixture(t)
	txID := f.submit(t, f.a, &SubmitMsg{Destination: destination(), Value: 1})

	require.NoError(t, f.confirm(f.a, txID))

	// The second confirmation by the same owner fails, and the count
	// raised by exactly one in total.
	err := f.confirm(f.a, txID)
	assert.True(t, ErrAlreadyConfirmed.Is(err))

	rec, err := TxRecord(f.db, txID)
	require.NoError(t, err)
	assert.Equal(t, int32(1), rec.Confirmations)

	confirmed, err := HasConfirmed(f.db, txID, f.a.Address())
	require.NoError(t, err)
	assert.True(t, confirmed)
	confirmed, err = HasConfirmed(f.db, txID, f.b.Address())
	require.NoError(t, err)
	assert.False(t, confirmed)
}

func TestConfirmUnknownTransaction(t *testing.T) {
	f := newFixture(t)
	err := f.confirm(f.a, orm.EncodeSequence(42))
	assert.True(t, errors.ErrNotFound.Is(err))
}

func TestConfirmRequiresOwner(t *testing.T) {
	f := newFixture(t)
	txID := f.submit(t, f.a, &SubmitMsg{Destination: destination(), Value: 1})
	err := f.confirm(f.stranger, txID)
	assert.True(t, errors.ErrUnauthorized.Is(err))
}

func TestExecuteHappyPath(t *testing.T) {
	f := newFixture(t)
	dest := destination()
	txID := f.submit(t, f.a, &SubmitMsg{Destination: dest, Value: 1, Payload: []byte("data")})

	require.NoError(t, f.confirm(f.a, txID))

	// One confirmation is below the threshold of two.
	_, err := f.execute(f.a, txID)
	assert.True(t, ErrInsufficientConfirmations.Is(err))
	assert.Equal(t, 0, f.exec.CallCount())

	require.NoError(t, f.confirm(f.b, txID))

	res, err := f.execute(f.a, txID)
	require.NoError(t, err)
	assert.Equal(t, []byte("ok"), res.Data)
	require.Equal(t, 1, f.exec.CallCount())
	call := f.exec.Calls[0]
	assert.Equal(t, warden.Address(dest), call.Destination)
	assert.Equal(t, uint64(1), call.Value)
	assert.Equal(t, []byte("data"), call.Payload)

	rec, err := TxRecord(f.db, txID)
	require.NoError(t, err)
	assert.True(t, rec.Executed)

	// A second execution always fails.
	_, err = f.execute(f.b, txID)
	assert.True(t, ErrAlreadyExecuted.Is(err))
	assert.Equal(t, 1, f.exec.CallCount())

	// So does a late confirmation.
	err = f.confirm(f.c, txID)
	assert.True(t, ErrAlreadyExecuted.Is(err))
}

func TestExecuteUnknownTransaction(t *testing.T) {
	f := newFixture(t)
	_, err := f.execute(f.a, orm.EncodeSequence(7))
	assert.True(t, errors.ErrNotFound.Is(err))
}

func TestExecutorFailureLeavesRecordRetryable(t *testing.T) {
	f := newFixture(t)
	txID := f.submit(t, f.a, &SubmitMsg{Destination: destination(), Value: 1})
	require.NoError(t, f.confirm(f.a, txID))
	require.NoError(t, f.confirm(f.b, txID))

	f.exec.Err = errors.ErrState.New("destination rejected the call")

	res, err := f.execute(f.a, txID)
	require.NoError(t, err, "executor failure is reported via tags, not an error")
	require.NotEmpty(t, res.Tags)
	assert.Equal(t, "execute-failure", string(res.Tags[0].Value))

	rec, err := TxRecord(f.db, txID)
	require.NoError(t, err)
	assert.False(t, rec.Executed, "failed execution must reopen the record")

	// Retry is a fresh external call and succeeds once the failure
	// condition is resolved.
	f.exec.Err = nil
	_, err = f.execute(f.b, txID)
	require.NoError(t, err)
	assert.Equal(t, 2, f.exec.CallCount())

	rec, err = TxRecord(f.db, txID)
	require.NoError(t, err)
	assert.True(t, rec.Executed)
}

func TestReentrantExecuteIsBlocked(t *testing.T) {
	f := newFixture(t)
	txID := f.submit(t, f.a, &SubmitMsg{Destination: destination(), Value: 1})
	require.NoError(t, f.confirm(f.a, txID))
	require.NoError(t, f.confirm(f.b, txID))

	var reentryErr error
	f.exec.Hook = func(ctx warden.Context, call wardentest.ExecutorCall) ([]byte, error) {
		// The executor calls back into the engine before returning.
		// It must observe the record as executed.
		_, reentryErr = f.execute(f.c, txID)
		return []byte("ok"), nil
	}

	_, err := f.execute(f.a, txID)
	require.NoError(t, err)
	require.Error(t, reentryErr)
	assert.True(t, ErrAlreadyExecuted.Is(reentryErr))
	assert.Equal(t, 1, f.exec.CallCount(), "nested call must not reach the executor")
}

func TestPausedEngineRejectsMutation(t *testing.T) {
	f := newFixture(t)
	txID := f.submit(t, f.a, &SubmitMsg{Destination: destination(), Value: 1})
	require.NoError(t, f.confirm(f.a, txID))
	require.NoError(t, f.confirm(f.b, txID))

	// Engage the switch directly through the pause controller. The
	// pause handlers themselves are exercised in their own package.
	require.NoError(t, pause.SetPaused(f.db, true))

	h := SubmitHandler{auth: &wardentest.Auth{Signer: f.a}, roles: f.roles}
	_, err := h.Deliver(context.Background(), f.db, &wardentest.Tx{
		Msg: &SubmitMsg{Destination: destination(), Value: 1},
	})
	assert.True(t, pause.ErrPaused.Is(err))

	err = f.confirm(f.c, txID)
	assert.True(t, pause.ErrPaused.Is(err))

	_, err = f.execute(f.a, txID)
	assert.True(t, pause.ErrPaused.Is(err))
	assert.Equal(t, 0, f.exec.CallCount())
}

func TestScenarioTwoOfThree(t *testing.T) {
	// owners = [A,B,C], threshold = 2. A submits id=0. A confirms, B
	// confirms, A executes. A second execute fails.
	f := newFixture(t)
	dest := destination()
	txID := f.submit(t, f.a, &SubmitMsg{Destination: dest, Value: 1})
	require.Equal(t, "0", IDString(txID))

	require.NoError(t, f.confirm(f.a, txID))
	rec, err := TxRecord(f.db, txID)
	require.NoError(t, err)
	assert.Equal(t, int32(1), rec.Confirmations)

	require.NoError(t, f.confirm(f.b, txID))

	res, err := f.execute(f.a, txID)
	require.NoError(t, err)
	assert.Equal(t, "execute", string(res.Tags[0].Value))
	assert.Equal(t, "0", string(res.Tags[1].Value))

	_, err = f.execute(f.a, txID)
	assert.True(t, ErrAlreadyExecuted.Is(err))
}

func TestThresholdQuery(t *testing.T) {
	f := newFixture(t)
	threshold, err := Threshold(f.db)
	require.NoError(t, err)
	assert.Equal(t, int32(2), threshold)

	// An engine without configuration refuses to execute.
	bare := store.MemStore()
	_, err = Threshold(bare)
	assert.True(t, errors.ErrNotFound.Is(err))
}
