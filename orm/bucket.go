// Package orm provides an easy to use db wrapper.
//
// A Bucket isolates one model type inside a shared key-value store by
// prefixing all keys. Values are serialized with protobuf and validated
// before being persisted.
package orm

import (
	"regexp"

	"github.com/gogo/protobuf/proto"
	"github.com/iov-one/warden"
	"github.com/iov-one/warden/errors"
)

// Model is implemented by any entity that can be stored in a Bucket.
type Model interface {
	proto.Message

	// Validate returns an error if the model content is invalid and
	// must not be persisted.
	Validate() error
}

var isBucketName = regexp.MustCompile(`^[a-z]{3,10}$`).MatchString

// Bucket partitions a key-value store namespace for one model type.
type Bucket struct {
	prefix []byte
}

// NewBucket creates a bucket with given name. Panics on invalid name, as
// buckets are created during a program startup phase.
func NewBucket(name string) Bucket {
	if !isBucketName(name) {
		panic("invalid bucket name: " + name)
	}
	return Bucket{
		prefix: append([]byte(name), ':'),
	}
}

// DBKey returns the full key used in the underlying store.
func (b Bucket) DBKey(key []byte) []byte {
	return append(append([]byte{}, b.prefix...), key...)
}

// One loads the entity with given key into dest. Returns ErrNotFound when
// no entity with given key exists.
func (b Bucket) One(db warden.ReadOnlyKVStore, key []byte, dest Model) error {
	raw, err := db.Get(b.DBKey(key))
	if err != nil {
		return errors.Wrap(err, "bucket lookup")
	}
	if raw == nil {
		return errors.Wrapf(errors.ErrNotFound, "key %X", key)
	}
	if err := proto.Unmarshal(raw, dest); err != nil {
		return errors.Wrap(err, "unmarshal")
	}
	return nil
}

// Has returns true if an entity with given key exists.
func (b Bucket) Has(db warden.ReadOnlyKVStore, key []byte) (bool, error) {
	return db.Has(b.DBKey(key))
}

// Put validates and persists given model under given key.
func (b Bucket) Put(db warden.KVStore, key []byte, m Model) error {
	if err := m.Validate(); err != nil {
		return errors.Wrap(err, "invalid model")
	}
	raw, err := proto.Marshal(m)
	if err != nil {
		return errors.Wrap(err, "marshal")
	}
	if raw == nil {
		// A model with all fields zero marshals to no bytes. Persist
		// an empty value so existence checks still work.
		raw = []byte{}
	}
	return db.Set(b.DBKey(key), raw)
}

// Delete removes the entity with given key. Returns ErrNotFound when no
// entity with given key exists.
func (b Bucket) Delete(db warden.KVStore, key []byte) error {
	dbkey := b.DBKey(key)
	has, err := db.Has(dbkey)
	if err != nil {
		return err
	}
	if !has {
		return errors.Wrapf(errors.ErrNotFound, "key %X", key)
	}
	return db.Delete(dbkey)
}

// Iterator returns an iterator over all entities of this bucket, in
// ascending key order. Returned keys have the bucket prefix trimmed.
func (b Bucket) Iterator(db warden.ReadOnlyKVStore) (warden.Iterator, error) {
	start, end := prefixRange(b.prefix)
	it, err := db.Iterator(start, end)
	if err != nil {
		return nil, err
	}
	return &trimIterator{it: it, trim: len(b.prefix)}, nil
}

// trimIterator removes the bucket prefix from all keys it returns.
type trimIterator struct {
	it   warden.Iterator
	trim int
}

func (it *trimIterator) Next() ([]byte, []byte, error) {
	key, value, err := it.it.Next()
	if err != nil {
		return nil, nil, err
	}
	return key[it.trim:], value, nil
}

func (it *trimIterator) Release() {
	it.it.Release()
}

// prefixRange turns a prefix into (start, end) to create a range that
// covers exactly all keys with given prefix.
//
// In case of prefix, it returns a range that covers all keys starting
// with given prefix. The end key is the prefix incremented on its last
// byte, with trailing 0xFF bytes stripped first.
func prefixRange(prefix []byte) ([]byte, []byte) {
	if len(prefix) == 0 {
		return nil, nil
	}
	end := make([]byte, len(prefix))
	copy(end, prefix)
	for i := len(end) - 1; i >= 0; i-- {
		if end[i] < 0xFF {
			end[i]++
			return prefix, end[:i+1]
		}
	}
	// Prefix is all 0xFF, open-ended range.
	return prefix, nil
}
