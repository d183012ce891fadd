package upgrade

import (
	"github.com/iov-one/warden"
	"github.com/iov-one/warden/errors"
	"github.com/iov-one/warden/gconf"
)

// ActiveRef returns the reference of the logic version the gateway must
// route through. Returns ErrNotFound on an uninitialized gateway.
func ActiveRef(db warden.ReadOnlyKVStore) (string, error) {
	var conf Config
	if err := gconf.Load(db, "upgrade", &conf); err != nil {
		return "", errors.Wrap(err, "cannot load config")
	}
	return conf.Ref, nil
}

// SaveConfig persists the active logic reference. Used during genesis
// initialization and by the authorize handler.
func SaveConfig(db warden.KVStore, conf Config) error {
	return gconf.Save(db, "upgrade", &conf)
}
