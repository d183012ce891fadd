package orm

import (
	"bytes"
	"testing"

	"github.com/iov-one/warden/errors"
	"github.com/iov-one/warden/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSequenceStartsAtZero(t *testing.T) {
	db := store.MemStore()
	s := NewSequence("tx", "id")

	val, err := s.NextInt(db)
	require.NoError(t, err)
	assert.Equal(t, int64(0), val)

	bz, err := s.NextVal(db)
	require.NoError(t, err)
	assert.Equal(t, int64(1), DecodeSequence(bz))
}

func TestSequenceValuesAreOrdered(t *testing.T) {
	db := store.MemStore()
	s := NewSequence("tx", "id")

	prev, err := s.NextVal(db)
	require.NoError(t, err)
	for i := 0; i < 100; i++ {
		next, err := s.NextVal(db)
		require.NoError(t, err)
		require.True(t, bytes.Compare(prev, next) < 0, "iteration %d", i)
		prev = next
	}
}

func TestSequenceLatest(t *testing.T) {
	db := store.MemStore()
	s := NewSequence("tx", "id")

	_, _, err := s.Latest(db)
	assert.True(t, errors.ErrNotFound.Is(err))

	_, err = s.NextVal(db)
	require.NoError(t, err)
	_, err = s.NextVal(db)
	require.NoError(t, err)

	latest, raw, err := s.Latest(db)
	require.NoError(t, err)
	assert.Equal(t, int64(1), latest)
	assert.Equal(t, EncodeSequence(1), raw)
}

func TestSequencesAreIndependent(t *testing.T) {
	db := store.MemStore()
	a := NewSequence("tx", "id")
	b := NewSequence("role", "id")

	_, err := a.NextVal(db)
	require.NoError(t, err)

	val, err := b.NextInt(db)
	require.NoError(t, err)
	assert.Equal(t, int64(0), val)
}
