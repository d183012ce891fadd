package warden

import (
	"encoding/json"
	"testing"

	fuzz "github.com/google/gofuzz"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConditionParse(t *testing.T) {
	cases := map[string]struct {
		cond    Condition
		wantErr bool
		ext     string
		typ     string
		data    []byte
	}{
		"valid condition": {
			cond: NewCondition("sigs", "ed25519", []byte{1, 2, 3}),
			ext:  "sigs",
			typ:  "ed25519",
			data: []byte{1, 2, 3},
		},
		"data may contain separators": {
			cond: NewCondition("role", "member", []byte("a/b/c")),
			ext:  "role",
			typ:  "member",
			data: []byte("a/b/c"),
		},
		"missing data": {
			cond:    Condition("sigs/ed25519/"),
			wantErr: true,
		},
		"bad format": {
			cond:    Condition("justsomebytes"),
			wantErr: true,
		},
		"empty": {
			cond:    Condition(""),
			wantErr: true,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			ext, typ, data, err := tc.cond.Parse()
			if tc.wantErr {
				require.Error(t, err)
				require.Error(t, tc.cond.Validate())
				return
			}
			require.NoError(t, err)
			require.NoError(t, tc.cond.Validate())
			assert.Equal(t, tc.ext, ext)
			assert.Equal(t, tc.typ, typ)
			assert.Equal(t, tc.data, data)
		})
	}
}

func TestAddressValidate(t *testing.T) {
	addr := NewCondition("sigs", "ed25519", []byte("some-key")).Address()
	require.NoError(t, addr.Validate())
	assert.Len(t, []byte(addr), AddressLength)

	assert.Error(t, Address(nil).Validate())
	assert.Error(t, Address([]byte{1, 2, 3}).Validate())
}

func TestAddressJSONRoundTrip(t *testing.T) {
	f := fuzz.New().NilChance(0).NumElements(AddressLength, AddressLength)

	for i := 0; i < 100; i++ {
		var raw []byte
		f.Fuzz(&raw)
		addr := Address(raw)
		require.NoError(t, addr.Validate())

		enc, err := json.Marshal(addr)
		require.NoError(t, err)

		var got Address
		require.NoError(t, json.Unmarshal(enc, &got))
		assert.True(t, addr.Equals(got), "fuzz round %d", i)
	}
}

func TestAddressUnmarshalJSONFormats(t *testing.T) {
	addr := NewAddress([]byte("payload"))

	b32, err := addr.Bech32("warden")
	require.NoError(t, err)

	cases := map[string]struct {
		enc     string
		want    Address
		wantErr bool
	}{
		"hex":            {enc: addr.String(), want: addr},
		"bech32":         {enc: "bech32:" + b32, want: addr},
		"empty is nil":   {enc: "", want: nil},
		"truncated hex":  {enc: "abcd", wantErr: true},
		"invalid bech32": {enc: "bech32:junk", wantErr: true},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			raw, err := json.Marshal(tc.enc)
			require.NoError(t, err)
			var got Address
			err = json.Unmarshal(raw, &got)
			if tc.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.True(t, tc.want.Equals(got))
		})
	}
}

func TestParseAddressRejectsWrongLength(t *testing.T) {
	short, err := EncodeBech32("warden", []byte{1, 2, 3})
	require.NoError(t, err)
	_, err = ParseAddress("bech32:" + short)
	require.Error(t, err)
}
