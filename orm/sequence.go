package orm

import (
	"encoding/binary"

	"github.com/iov-one/warden"
	"github.com/iov-one/warden/errors"
)

// Sequence maintains a counter and hands out a series of keys. Each key
// is greater than the last, both as an integer as well as under
// bytes.Compare on the 8 byte big endian encoding.
//
// The first value handed out is zero.
type Sequence struct {
	id []byte
}

// NewSequence returns a sequence counter. Sequence is using the following
// pattern to construct its state key:
//   _s.<bucket>:<name>
func NewSequence(bucket, name string) Sequence {
	id := "_s." + bucket + ":" + name
	return Sequence{
		id: []byte(id),
	}
}

// NextVal returns the next value of the sequence as 8 bytes.
func (s *Sequence) NextVal(db warden.KVStore) ([]byte, error) {
	_, bz, err := s.next(db)
	return bz, err
}

// NextInt returns the next value of the sequence as an integer.
func (s *Sequence) NextInt(db warden.KVStore) (int64, error) {
	val, _, err := s.next(db)
	return val, err
}

// Latest returns the most recently handed out value of the sequence. This
// method does not modify the sequence state. Returns ErrNotFound if the
// sequence was never used.
func (s *Sequence) Latest(db warden.ReadOnlyKVStore) (int64, []byte, error) {
	raw, err := db.Get(s.id)
	if err != nil {
		return 0, nil, err
	}
	if raw == nil {
		return 0, nil, errors.Wrap(errors.ErrNotFound, "sequence not initialized")
	}
	latest := DecodeSequence(raw) - 1
	return latest, EncodeSequence(latest), nil
}

// next hands out the current counter value and bumps the stored state, so
// the values given out start at zero.
func (s *Sequence) next(db warden.KVStore) (int64, []byte, error) {
	raw, err := db.Get(s.id)
	if err != nil {
		return 0, nil, err
	}
	val := DecodeSequence(raw)
	if err := db.Set(s.id, EncodeSequence(val+1)); err != nil {
		return 0, nil, err
	}
	return val, EncodeSequence(val), nil
}

// DecodeSequence converts the raw sequence state into an integer. Nil
// decodes to zero.
func DecodeSequence(bz []byte) int64 {
	if bz == nil {
		return 0
	}
	val := binary.BigEndian.Uint64(bz)
	return int64(val)
}

// EncodeSequence converts an integer into the 8 byte big endian
// representation.
func EncodeSequence(val int64) []byte {
	bz := make([]byte, 8)
	binary.BigEndian.PutUint64(bz, uint64(val))
	return bz
}
