package app

import (
	"github.com/iov-one/warden"
	"github.com/iov-one/warden/x"
	"github.com/iov-one/warden/x/approval"
	"github.com/iov-one/warden/x/pause"
	"github.com/iov-one/warden/x/role"
	"github.com/iov-one/warden/x/upgrade"
)

// RegisterRoutes wires the handlers of all extensions into one logic
// version. The gateway itself acts as the upgrade target registry, so
// only logic versions it carries can ever be activated.
func RegisterRoutes(r warden.Registry, auth x.Authenticator, exec approval.Executor, refs upgrade.RefSet) {
	roles := role.NewRegistry()
	role.RegisterRoutes(r, auth)
	pause.RegisterRoutes(r, auth, roles)
	approval.RegisterRoutes(r, auth, roles, exec)
	upgrade.RegisterRoutes(r, auth, roles, refs)
}

// NewStandardGateway assembles a ready to use gateway with a single
// logic version under DefaultLogicRef. Any number of authentication
// sources can be provided, they are chained into one. The store must
// still go through genesis initialization before the gateway accepts
// operations.
func NewStandardGateway(db warden.CacheableKVStore, exec approval.Executor, auths ...x.Authenticator) *Gateway {
	g := NewGateway(db, warden.DefaultLogger)
	RegisterRoutes(g.AddLogic(DefaultLogicRef), x.ChainAuth(auths...), exec, g)
	return g
}
