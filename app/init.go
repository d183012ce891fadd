package app

import (
	"github.com/iov-one/warden"
	"github.com/iov-one/warden/errors"
	"github.com/iov-one/warden/x/approval"
	"github.com/iov-one/warden/x/pause"
	"github.com/iov-one/warden/x/role"
	"github.com/iov-one/warden/x/upgrade"
)

// DefaultLogicRef is the logic version activated when the genesis does
// not name one.
const DefaultLogicRef = "v1"

// initializedKey marks a store that went through genesis initialization.
var initializedKey = []byte("_i:gateway")

// genesisConf is the expected shape of the "gateway" genesis option.
type genesisConf struct {
	Owners      []warden.Address `json:"owners"`
	Threshold   int32            `json:"threshold"`
	Upgraders   []warden.Address `json:"upgraders"`
	Pausers     []warden.Address `json:"pausers"`
	Admin       warden.Address   `json:"admin"`
	PausePolicy string           `json:"pause_policy"`
	Logic       string           `json:"logic"`
}

// Initializer writes the initial gateway state from the genesis options.
type Initializer struct {
	// Refs limits the initial logic reference to registered versions.
	// When nil any well formed reference is accepted.
	Refs upgrade.RefSet
}

var _ warden.Initializer = (*Initializer)(nil)

// FromGenesis performs the one time state initialization. A second call
// on the same store fails with ErrInitialized and changes nothing.
//
// All validation happens before the first write. A rejected genesis must
// leave the store untouched, otherwise a corrected retry would trip over
// leftovers of the failed attempt.
func (i *Initializer) FromGenesis(opts warden.Options, db warden.KVStore) error {
	done, err := db.Get(initializedKey)
	if err != nil {
		return err
	}
	if done != nil {
		return errors.Wrap(ErrInitialized, "gateway")
	}

	var conf genesisConf
	if err := opts.ReadOptions("gateway", &conf); err != nil {
		return errors.Wrap(err, "read genesis options")
	}
	if err := validateConf(&conf); err != nil {
		return err
	}

	policy := conf.PausePolicy
	if policy == "" {
		policy = string(pause.PolicyOwner)
	}
	if err := (&pause.Config{Policy: policy}).Validate(); err != nil {
		return errors.Wrapf(ErrConfiguration, "pause policy %q", policy)
	}
	logic := conf.Logic
	if logic == "" {
		logic = DefaultLogicRef
	}
	if i.Refs != nil && !i.Refs.HasRef(logic) {
		return errors.Wrapf(ErrConfiguration, "logic %q is not registered", logic)
	}

	roles := role.NewRegistry()
	for _, addr := range conf.Owners {
		if err := roles.Grant(db, addr, role.Owner); err != nil {
			return errors.Wrapf(err, "grant owner to %s", addr)
		}
	}
	for _, addr := range conf.Upgraders {
		if err := roles.Grant(db, addr, role.Upgrader); err != nil {
			return errors.Wrapf(err, "grant upgrader to %s", addr)
		}
	}
	for _, addr := range conf.Pausers {
		if err := roles.Grant(db, addr, role.Pauser); err != nil {
			return errors.Wrapf(err, "grant pauser to %s", addr)
		}
	}

	if err := role.SaveConfig(db, role.Config{Admin: conf.Admin}); err != nil {
		return errors.Wrap(err, "role config")
	}
	if err := approval.SaveConfig(db, approval.Config{Threshold: conf.Threshold}); err != nil {
		return errors.Wrap(err, "approval config")
	}
	if err := pause.SaveConfig(db, pause.Config{Policy: policy}); err != nil {
		return errors.Wrap(err, "pause config")
	}
	if err := upgrade.SaveConfig(db, upgrade.Config{Ref: logic}); err != nil {
		return errors.Wrap(err, "upgrade config")
	}

	return db.Set(initializedKey, []byte{1})
}

func validateConf(conf *genesisConf) error {
	if len(conf.Owners) == 0 {
		return errors.Wrap(ErrConfiguration, "no owners")
	}
	seen := make(map[string]struct{}, len(conf.Owners))
	for _, addr := range conf.Owners {
		if err := addr.Validate(); err != nil {
			return errors.Wrapf(ErrConfiguration, "owner %s", addr)
		}
		if _, ok := seen[string(addr)]; ok {
			return errors.Wrapf(ErrConfiguration, "duplicated owner %s", addr)
		}
		seen[string(addr)] = struct{}{}
	}
	if conf.Threshold < 1 || int(conf.Threshold) > len(conf.Owners) {
		return errors.Wrapf(ErrConfiguration,
			"threshold %d with %d owners", conf.Threshold, len(conf.Owners))
	}
	if err := validateAddrs(conf.Upgraders); err != nil {
		return errors.Wrap(err, "upgraders")
	}
	if err := validateAddrs(conf.Pausers); err != nil {
		return errors.Wrap(err, "pausers")
	}
	if len(conf.Admin) != 0 {
		if err := conf.Admin.Validate(); err != nil {
			return errors.Wrapf(ErrConfiguration, "admin %s", conf.Admin)
		}
	}
	return nil
}

func validateAddrs(addrs []warden.Address) error {
	seen := make(map[string]struct{}, len(addrs))
	for _, addr := range addrs {
		if err := addr.Validate(); err != nil {
			return errors.Wrapf(ErrConfiguration, "address %s", addr)
		}
		if _, ok := seen[string(addr)]; ok {
			return errors.Wrapf(ErrConfiguration, "duplicated address %s", addr)
		}
		seen[string(addr)] = struct{}{}
	}
	return nil
}
