// Package store provides the in-memory key-value store backing the
// gateway state. The implementation is a btree so iteration returns keys
// in ascending order, same as any database-backed store would.
package store

import (
	"bytes"

	"github.com/google/btree"
	"github.com/iov-one/warden"
	"github.com/iov-one/warden/errors"
)

// Strongly types aliases to shorten the names everywhere in this package.
type (
	KVStore          = warden.KVStore
	ReadOnlyKVStore  = warden.ReadOnlyKVStore
	CacheableKVStore = warden.CacheableKVStore
	KVCacheWrap      = warden.KVCacheWrap
	Iterator         = warden.Iterator
)

const defaultBTreeDegree = 2

// item is a (key, value) pair stored in the btree. Ordering is by key
// bytes only.
type item struct {
	key   []byte
	value []byte
}

func (i item) Less(other btree.Item) bool {
	return bytes.Compare(i.key, other.(item).key) < 0
}

// BTreeStore is an in-memory CacheableKVStore. A cache wrap is a cheap
// copy-on-write clone of the tree, so all buffered changes either replace
// the parent tree on Write, or are dropped without a trace on Discard.
type BTreeStore struct {
	bt *btree.BTree
	// parent is set on cache wraps only and receives the tree on Write.
	parent *BTreeStore
}

var _ CacheableKVStore = (*BTreeStore)(nil)
var _ KVCacheWrap = (*BTreeStore)(nil)

// MemStore returns a simple implementation useful for tests and for any
// deployment where persistence of the raw bytes is delegated elsewhere.
func MemStore() *BTreeStore {
	return &BTreeStore{
		bt: btree.New(defaultBTreeDegree),
	}
}

// Get returns nil iff key doesn't exist. Panics on nil key.
func (s *BTreeStore) Get(key []byte) ([]byte, error) {
	assertValidKey(key)
	res := s.bt.Get(item{key: key})
	if res == nil {
		return nil, nil
	}
	return res.(item).value, nil
}

// Has checks if a key exists. Panics on nil key.
func (s *BTreeStore) Has(key []byte) (bool, error) {
	assertValidKey(key)
	return s.bt.Has(item{key: key}), nil
}

// Set adds or overwrites given (key, value) pair.
func (s *BTreeStore) Set(key, value []byte) error {
	assertValidKey(key)
	assertValidValue(value)
	s.bt.ReplaceOrInsert(item{key: key, value: value})
	return nil
}

// Delete removes given key. Removing a missing key is a noop.
func (s *BTreeStore) Delete(key []byte) error {
	assertValidKey(key)
	s.bt.Delete(item{key: key})
	return nil
}

// Iterator over the range [start, end). Nil is an open boundary on
// either side. The iterator operates on a snapshot of the store taken at
// creation time.
func (s *BTreeStore) Iterator(start, end []byte) (Iterator, error) {
	if start != nil && end != nil && bytes.Compare(start, end) >= 0 {
		return nil, errors.Wrap(errors.ErrInput, "start must be less than end")
	}

	var pairs []item
	collect := func(i btree.Item) bool {
		pairs = append(pairs, i.(item))
		return true
	}
	switch {
	case start == nil && end == nil:
		s.bt.Ascend(collect)
	case start == nil:
		s.bt.AscendLessThan(item{key: end}, collect)
	case end == nil:
		s.bt.AscendGreaterOrEqual(item{key: start}, collect)
	default:
		s.bt.AscendRange(item{key: start}, item{key: end}, collect)
	}
	return &sliceIterator{pairs: pairs}, nil
}

// CacheWrap clones the tree. Clones share nodes until written to, so this
// is a cheap operation even for a large state.
func (s *BTreeStore) CacheWrap() KVCacheWrap {
	return &BTreeStore{
		bt:     s.bt.Clone(),
		parent: s,
	}
}

// Write pushes all buffered changes into the parent store.
func (s *BTreeStore) Write() error {
	if s.parent == nil {
		return errors.Wrap(errors.ErrHuman, "not a cache wrap")
	}
	s.parent.bt = s.bt
	s.bt = nil
	return nil
}

// Discard drops all buffered changes and invalidates this cache wrap.
func (s *BTreeStore) Discard() {
	s.bt = nil
}

type sliceIterator struct {
	pairs []item
}

var _ Iterator = (*sliceIterator)(nil)

func (it *sliceIterator) Next() ([]byte, []byte, error) {
	if len(it.pairs) == 0 {
		return nil, nil, errors.ErrIteratorDone
	}
	next := it.pairs[0]
	it.pairs = it.pairs[1:]
	return next.key, next.value, nil
}

func (it *sliceIterator) Release() {
	it.pairs = nil
}

func assertValidKey(key []byte) {
	if len(key) == 0 {
		panic("key is empty")
	}
}

func assertValidValue(value []byte) {
	if value == nil {
		panic("value is nil")
	}
}
