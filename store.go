package warden

// ReadOnlyKVStore is a simple interface to query data.
type ReadOnlyKVStore interface {
	// Get returns nil iff key doesn't exist. Panics on nil key.
	Get(key []byte) ([]byte, error)

	// Has checks if a key exists. Panics on nil key.
	Has(key []byte) (bool, error)

	// Iterator over a domain of keys in ascending order. End is exclusive.
	// Start must be less than end, or the Iterator is invalid.
	// Iterator must be closed by caller.
	// To iterate over entire domain, use store.Iterator(nil, nil)
	Iterator(start, end []byte) (Iterator, error)
}

// SetDeleter is a minimal interface for writing data.
type SetDeleter interface {
	Set(key, value []byte) error // CONTRACT: key, value readonly []byte
	Delete(key []byte) error     // CONTRACT: key readonly []byte
}

// KVStore is a simple interface to get/set data.
type KVStore interface {
	ReadOnlyKVStore
	SetDeleter
}

// CacheableKVStore is a KVStore that can wrap itself with a write cache,
// so a set of operations can be committed or discarded atomically.
type CacheableKVStore interface {
	KVStore
	CacheWrap() KVCacheWrap
}

// KVCacheWrap is a buffered writer over a KVStore. All changes are held
// in memory until Write is called. Discard drops them.
type KVCacheWrap interface {
	KVStore

	// Write syncs with the underlying store.
	Write() error

	// Discard invalidates this CacheWrap and releases all data
	Discard()
}

// Iterator allows iteration over sorted (key, value) pairs. When the
// range is exhausted, Next returns errors.ErrIteratorDone.
type Iterator interface {
	// Next moves the iterator to the next sequential key in the database,
	// as defined by order of iteration.
	Next() (key, value []byte, err error)

	// Release releases the Iterator.
	Release()
}
