package role

import (
	"regexp"

	"github.com/iov-one/warden"
	"github.com/iov-one/warden/errors"
	"github.com/iov-one/warden/gconf"
	"github.com/iov-one/warden/orm"
)

// Role is the name of a permission set.
type Role string

const (
	// Owner may submit, confirm and execute transactions. Depending on
	// the pause policy it may also flip the pause switch.
	Owner Role = "owner"

	// Upgrader may authorize replacement of the active logic module.
	Upgrader Role = "upgrader"

	// Pauser may flip the pause switch when the gateway is configured
	// with the pauser policy.
	Pauser Role = "pauser"
)

var isRoleName = regexp.MustCompile(`^[a-z]{3,12}$`).MatchString

// Validate returns an error if this is not a well formed role name.
func (r Role) Validate() error {
	if !isRoleName(string(r)) {
		return errors.Wrapf(errors.ErrInput, "role name %q", r)
	}
	return nil
}

const bucketName = "roles"

// Registry gives access to the role membership state.
type Registry struct {
	bucket orm.Bucket
}

// NewRegistry returns a registry operating on the default bucket.
func NewRegistry() Registry {
	return Registry{
		bucket: orm.NewBucket(bucketName),
	}
}

// assignmentKey builds the bucket key of a (role, principal) pair. Role
// names cannot contain the separator, so keys are collision free.
func assignmentKey(addr warden.Address, r Role) []byte {
	return append([]byte(string(r)+"/"), addr...)
}

// HasRole returns true if given principal holds given role. Pure lookup,
// an unknown role or principal is simply not a member.
func (reg Registry) HasRole(db warden.ReadOnlyKVStore, addr warden.Address, r Role) (bool, error) {
	return reg.bucket.Has(db, assignmentKey(addr, r))
}

// Members returns the addresses of all principals holding given role, in
// ascending address order.
func (reg Registry) Members(db warden.ReadOnlyKVStore, r Role) ([]warden.Address, error) {
	it, err := reg.bucket.Iterator(db)
	if err != nil {
		return nil, errors.Wrap(err, "cannot iterate assignments")
	}
	defer it.Release()

	var members []warden.Address
	for {
		key, _, err := it.Next()
		switch {
		case err == nil:
			prefix := string(r) + "/"
			if len(key) > len(prefix) && string(key[:len(prefix)]) == prefix {
				addr := make(warden.Address, len(key)-len(prefix))
				copy(addr, key[len(prefix):])
				members = append(members, addr)
			}
		case errors.ErrIteratorDone.Is(err):
			return members, nil
		default:
			return nil, err
		}
	}
}

// RolesOf returns all roles held by given principal.
func (reg Registry) RolesOf(db warden.ReadOnlyKVStore, addr warden.Address) ([]Role, error) {
	it, err := reg.bucket.Iterator(db)
	if err != nil {
		return nil, errors.Wrap(err, "cannot iterate assignments")
	}
	defer it.Release()

	var roles []Role
	for {
		key, _, err := it.Next()
		switch {
		case err == nil:
			sep := len(key) - len(addr) - 1
			if sep > 0 && key[sep] == '/' && addr.Equals(warden.Address(key[sep+1:])) {
				roles = append(roles, Role(key[:sep]))
			}
		case errors.ErrIteratorDone.Is(err):
			return roles, nil
		default:
			return nil, err
		}
	}
}

// Grant makes given principal a member of given role. Granting an
// already held role fails with ErrDuplicate.
func (reg Registry) Grant(db warden.KVStore, addr warden.Address, r Role) error {
	key := assignmentKey(addr, r)
	has, err := reg.bucket.Has(db, key)
	if err != nil {
		return err
	}
	if has {
		return errors.Wrapf(errors.ErrDuplicate, "%s already holds %q", addr, r)
	}
	a := Assignment{Address: addr, Role: string(r)}
	return reg.bucket.Put(db, key, &a)
}

// Revoke removes given principal from given role. Revoking a role that is
// not held fails with ErrNotFound.
func (reg Registry) Revoke(db warden.KVStore, addr warden.Address, r Role) error {
	err := reg.bucket.Delete(db, assignmentKey(addr, r))
	return errors.Wrapf(err, "revoke %q from %s", r, addr)
}

// SaveConfig persists the registry configuration. This is done once,
// during genesis initialization.
func SaveConfig(db warden.KVStore, conf Config) error {
	return gconf.Save(db, "role", &conf)
}

// LoadConfig returns the registry configuration. A missing configuration
// is returned as the zero value, meaning no admin is set.
func LoadConfig(db warden.ReadOnlyKVStore) (Config, error) {
	var conf Config
	err := gconf.Load(db, "role", &conf)
	if errors.ErrNotFound.Is(err) {
		return Config{}, nil
	}
	return conf, err
}
