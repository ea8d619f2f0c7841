package cash

import (
	"github.com/iov-one/tollgate"
	"github.com/iov-one/tollgate/coin"
	"github.com/iov-one/tollgate/errors"
)

const optKey = "cash"

// GenesisAccount is used to parse the json from genesis file. It uses
// tollgate.Address, so address in hex, not base64.
type GenesisAccount struct {
	Address tollgate.Address `json:"address"`
	Coins   []coin.Coin      `json:"coins"`
}

// Initializer fulfils the Initializer interface to load data from the
// genesis file.
type Initializer struct{}

var _ tollgate.Initializer = Initializer{}

// FromGenesis will parse initial account info from genesis and save it to
// the database.
func (Initializer) FromGenesis(opts tollgate.Options, kv tollgate.KVStore) error {
	var accts []GenesisAccount
	if err := opts.ReadOptions(optKey, &accts); err != nil {
		return err
	}
	bucket := NewBucket()
	for i, acct := range accts {
		if err := acct.Address.Validate(); err != nil {
			return errors.Wrapf(err, "account %d address", i)
		}
		coins, err := coin.CombineCoins(acct.Coins...)
		if err != nil {
			return errors.Wrapf(err, "account %d coins", i)
		}
		if err := bucket.Save(kv, acct.Address, coins); err != nil {
			return errors.Wrapf(err, "account %d", i)
		}
	}
	return nil
}
