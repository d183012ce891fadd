// Package gconf provides a singleton configuration entity per extension.
//
// Each extension stores its configuration under a well known key derived
// from the package name. Configuration is written during genesis
// initialization and is read-only afterwards, unless an extension
// explicitly updates it (see x/upgrade).
package gconf

import (
	"github.com/gogo/protobuf/proto"
	"github.com/iov-one/warden"
	"github.com/iov-one/warden/errors"
)

// Configuration is implemented by any extension configuration entity.
type Configuration interface {
	proto.Message
	Validate() error
}

func dbKey(pkg string) []byte {
	return []byte("_c:" + pkg)
}

// Save validates the object before writing it to the special
// "configuration" singleton for that package name.
func Save(db warden.KVStore, pkg string, src Configuration) error {
	key := dbKey(pkg)
	if err := src.Validate(); err != nil {
		return errors.Wrapf(err, "validation: key %q", key)
	}
	raw, err := proto.Marshal(src)
	if err != nil {
		return errors.Wrapf(err, "marshal: key %q", key)
	}
	return db.Set(key, raw)
}

// Load reads the configuration singleton of given package into dst.
// Returns ErrNotFound if the package was never configured.
func Load(db warden.ReadOnlyKVStore, pkg string, dst Configuration) error {
	key := dbKey(pkg)
	raw, err := db.Get(key)
	if err != nil {
		return err
	}
	if raw == nil {
		return errors.Wrapf(errors.ErrNotFound, "key %q", key)
	}
	if err := proto.Unmarshal(raw, dst); err != nil {
		return errors.Wrapf(err, "unmarshal: key %q", key)
	}
	return nil
}
