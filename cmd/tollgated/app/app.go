/*
Package app links together all the extensions to construct the tollgate
vesting daemon.
*/
package app

import (
	"path/filepath"
	"strings"

	"github.com/iov-one/tollgate"
	"github.com/iov-one/tollgate/app"
	"github.com/iov-one/tollgate/errors"
	"github.com/iov-one/tollgate/store/iavl"
	"github.com/iov-one/tollgate/x"
	"github.com/iov-one/tollgate/x/cash"
	"github.com/iov-one/tollgate/x/sigs"
	"github.com/iov-one/tollgate/x/utils"
	"github.com/iov-one/tollgate/x/vesting"
)

// Name is reported by abci.Info.
const Name = "tollgate"

// Authenticator returns the typical authentication, just using public key
// signatures.
func Authenticator() x.Authenticator {
	return sigs.Authenticate{}
}

// Chain returns a chain of decorators, to handle authentication, logging,
// and recovery.
func Chain() app.Decorators {
	return app.ChainDecorators(
		utils.NewLogging(),
		utils.NewRecovery(),
		// on CheckTx, bad tx don't affect state
		utils.NewSavepoint().OnCheck(),
		sigs.NewDecorator(),
		// on DeliverTx, bad tx will increment nonce even if the message
		// fails
		utils.NewSavepoint().OnDeliver(),
	)
}

// Router returns a router dispatching to the cash and vesting handlers.
func Router(authFn x.Authenticator) *app.Router {
	r := app.NewRouter()
	bank := cash.NewController(cash.NewBucket())
	cash.RegisterRoutes(r, authFn, bank)
	vesting.RegisterRoutes(r, authFn, bank)
	return r
}

// QueryRouter returns a query router, allowing access to "/wallets",
// "/auth", "/vestings" and "/vestingconf".
func QueryRouter() tollgate.QueryRouter {
	r := tollgate.NewQueryRouter()
	r.RegisterAll(
		cash.RegisterQuery,
		sigs.RegisterQuery,
		vesting.RegisterQuery,
	)
	return r
}

// Stack wires up a standard router with a standard decorator chain. This
// can be passed into BaseApp.
func Stack() tollgate.Handler {
	authFn := Authenticator()
	return Chain().WithHandler(Router(authFn))
}

// Initializers returns the genesis loaders of all extensions.
func Initializers() tollgate.Initializer {
	return tollgate.ChainInitializer(
		cash.Initializer{},
		vesting.Initializer{},
	)
}

// Application constructs a basic ABCI application with the given
// arguments.
func Application(name string, h tollgate.Handler, decoder tollgate.TxDecoder, dbPath string, debug bool) (app.BaseApp, error) {
	kv, err := CommitKVStore(dbPath)
	if err != nil {
		return app.BaseApp{}, err
	}
	store, err := app.NewStoreApp(name, kv, QueryRouter())
	if err != nil {
		return app.BaseApp{}, err
	}
	return app.NewBaseApp(store, decoder, h, debug), nil
}

// CommitKVStore returns an initialized KVStore that persists the data to
// the named path. An empty path returns an in-memory store.
func CommitKVStore(dbPath string) (tollgate.CommitKVStore, error) {
	if dbPath == "" {
		return iavl.MockCommitStore(), nil
	}

	path, err := filepath.Abs(dbPath)
	if err != nil {
		return nil, errors.Wrapf(errors.ErrInput, "invalid database name %q: %s", dbPath, err)
	}

	// Some external calls accidentally add a ".db", which is removed.
	path = strings.TrimSuffix(path, filepath.Ext(path))

	dir := filepath.Dir(path)
	name := filepath.Base(path)
	return iavl.NewCommitStore(dir, name)
}
