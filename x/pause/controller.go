package pause

import (
	"github.com/iov-one/warden"
	"github.com/iov-one/warden/errors"
	"github.com/iov-one/warden/gconf"
	"github.com/iov-one/warden/orm"
)

var stateBucket = orm.NewBucket("pause")

var stateKey = []byte("switch")

// IsPaused is a pure query of the switch state. A switch that was never
// touched is not paused.
func IsPaused(db warden.ReadOnlyKVStore) (bool, error) {
	var state State
	err := stateBucket.One(db, stateKey, &state)
	if errors.ErrNotFound.Is(err) {
		return false, nil
	}
	if err != nil {
		return false, errors.Wrap(err, "cannot load switch state")
	}
	return state.Paused, nil
}

// AssertUnpaused returns ErrPaused if the switch is engaged. All mutating
// approval operations call this first.
func AssertUnpaused(db warden.ReadOnlyKVStore) error {
	paused, err := IsPaused(db)
	if err != nil {
		return err
	}
	if paused {
		return errors.Wrap(ErrPaused, "gateway")
	}
	return nil
}

// SetPaused transitions the switch. Redundant transitions fail.
// Authorization is the business of the handlers, callers of this function
// must check the capability themselves.
func SetPaused(db warden.KVStore, paused bool) error {
	current, err := IsPaused(db)
	if err != nil {
		return err
	}
	if current == paused {
		if paused {
			return ErrAlreadyPaused
		}
		return ErrNotPaused
	}
	state := State{Paused: paused}
	return stateBucket.Put(db, stateKey, &state)
}

// SaveConfig persists the pause policy. This is done once, during genesis
// initialization.
func SaveConfig(db warden.KVStore, conf Config) error {
	return gconf.Save(db, "pause", &conf)
}

// LoadConfig returns the configured pause policy, defaulting to the owner
// policy when no configuration exists.
func LoadConfig(db warden.ReadOnlyKVStore) (Config, error) {
	var conf Config
	err := gconf.Load(db, "pause", &conf)
	if errors.ErrNotFound.Is(err) {
		return Config{Policy: string(PolicyOwner)}, nil
	}
	return conf, err
}
