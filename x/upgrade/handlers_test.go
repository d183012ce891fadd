package upgrade

import (
	"context"
	"testing"

	"github.com/iov-one/warden"
	"github.com/iov-one/warden/errors"
	"github.com/iov-one/warden/store"
	"github.com/iov-one/warden/wardentest"
	"github.com/iov-one/warden/x/pause"
	"github.com/iov-one/warden/x/role"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthorizeUpgrade(t *testing.T) {
	upgrader := wardentest.NewCondition()
	owner := wardentest.NewCondition()

	known := RefSetFunc(func(ref string) bool {
		return ref == "v1" || ref == "v2"
	})

	cases := map[string]struct {
		signer  warden.Condition
		paused  bool
		ref     string
		wantErr *errors.Error
	}{
		"upgrader on a paused gateway": {
			signer: upgrader,
			paused: true,
			ref:    "v2",
		},
		"gateway must be paused first": {
			signer:  upgrader,
			paused:  false,
			ref:     "v2",
			wantErr: ErrMustBePaused,
		},
		"owner role is not enough": {
			signer:  owner,
			paused:  true,
			ref:     "v2",
			wantErr: errors.ErrUnauthorized,
		},
		"unauthorized beats unpaused": {
			signer:  owner,
			paused:  false,
			ref:     "v2",
			wantErr: errors.ErrUnauthorized,
		},
		"target must be registered": {
			signer:  upgrader,
			paused:  true,
			ref:     "v9",
			wantErr: ErrUnknownRef,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			db := store.MemStore()
			roles := role.NewRegistry()
			require.NoError(t, roles.Grant(db, upgrader.Address(), role.Upgrader))
			require.NoError(t, roles.Grant(db, owner.Address(), role.Owner))
			require.NoError(t, SaveConfig(db, Config{Ref: "v1"}))
			if tc.paused {
				require.NoError(t, pause.SetPaused(db, true))
			}

			h := AuthorizeHandler{
				auth:  &wardentest.Auth{Signer: tc.signer},
				roles: roles,
				refs:  known,
			}
			tx := &wardentest.Tx{Msg: &AuthorizeUpgradeMsg{Ref: tc.ref}}

			_, err := h.Check(context.Background(), db, tx)
			if tc.wantErr != nil {
				require.Error(t, err)
				assert.True(t, tc.wantErr.Is(err))
			} else {
				assert.NoError(t, err)
			}

			_, err = h.Deliver(context.Background(), db, tx)
			active, loadErr := ActiveRef(db)
			require.NoError(t, loadErr)
			if tc.wantErr != nil {
				require.Error(t, err)
				assert.True(t, tc.wantErr.Is(err))
				assert.Equal(t, "v1", active, "failed authorization must not move the ref")
			} else {
				require.NoError(t, err)
				assert.Equal(t, tc.ref, active)
			}
		})
	}
}

func TestActiveRefUninitialized(t *testing.T) {
	db := store.MemStore()
	_, err := ActiveRef(db)
	assert.True(t, errors.ErrNotFound.Is(err))
}

func TestAuthorizeUpgradeMsgValidate(t *testing.T) {
	cases := map[string]struct {
		ref     string
		wantErr *errors.Error
	}{
		"simple ref":          {ref: "v2"},
		"dotted ref":          {ref: "gateway-2.1"},
		"empty":               {ref: "", wantErr: errors.ErrEmpty},
		"leading punctuation": {ref: ".v2", wantErr: errors.ErrInput},
		"upper case":          {ref: "V2", wantErr: errors.ErrInput},
	}
	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			msg := AuthorizeUpgradeMsg{Ref: tc.ref}
			err := msg.Validate()
			if tc.wantErr != nil {
				assert.True(t, tc.wantErr.Is(err))
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
