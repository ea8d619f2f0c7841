package app

import (
	"encoding/json"
	"fmt"
	"path/filepath"

	"github.com/iov-one/tollgate"
	"github.com/iov-one/tollgate/coin"
	"github.com/iov-one/tollgate/commands/server"
	"github.com/iov-one/tollgate/crypto"
	"github.com/iov-one/tollgate/errors"
	"github.com/iov-one/tollgate/x/cash"
	"github.com/iov-one/tollgate/x/vesting"
	abci "github.com/tendermint/tendermint/abci/types"
)

// DefaultTicker is the asset minted by GenInitOptions when none is given.
const DefaultTicker = "TOLL"

// genesisBalance is minted to the account created by GenInitOptions.
const genesisBalance = 1000000000000

// GenInitOptions produces the app_state for a development chain: one rich
// account and the default vesting cadence.
//
// Arguments are the optional ticker and the optional hex or bech32 address
// of the rich account. If no address is given, a new key is generated and
// printed.
func GenInitOptions(args []string) (json.RawMessage, error) {
	ticker := DefaultTicker
	if len(args) > 0 {
		ticker = args[0]
		if err := coin.NewCoin(1, ticker).Validate(); err != nil {
			return nil, errors.Wrapf(err, "ticker %q", ticker)
		}
	}

	var addr tollgate.Address
	if len(args) > 1 {
		var err error
		if addr, err = tollgate.ParseAddress(args[1]); err != nil {
			return nil, err
		}
	} else {
		var (
			keys string
			err  error
		)
		addr, keys, err = GenerateCoinKey()
		if err != nil {
			return nil, err
		}
		fmt.Println(keys)
	}

	state := map[string]interface{}{
		"cash": []cash.GenesisAccount{
			{Address: addr, Coins: []coin.Coin{coin.NewCoin(genesisBalance, ticker)}},
		},
		"conf": map[string]interface{}{
			"vesting_defaults": vesting.Defaults{
				PeriodLength:       vesting.DefaultPeriodLength,
				PeriodsPerTollgate: vesting.DefaultPeriodsPerTollgate,
			},
		},
	}
	raw, err := json.MarshalIndent(state, "", "  ")
	if err != nil {
		return nil, errors.Wrap(errors.ErrInput, err.Error())
	}
	return raw, nil
}

// GenerateApp is used to create a stub for server/start.go command.
func GenerateApp(options *server.Options) (abci.Application, error) {
	// db goes in a subdir, but "" -> "" for memdb
	var dbPath string
	if options.Home != "" {
		dbPath = filepath.Join(options.Home, "tollgate.db")
	}

	application, err := Application(Name, Stack(), TxDecoder, dbPath, options.Debug)
	if err != nil {
		return nil, err
	}
	application.WithInit(Initializers())
	application.WithLogger(options.Logger)
	return application, nil
}

type output struct {
	Address tollgate.Address   `json:"address"`
	Pubkey  *crypto.PublicKey  `json:"pub_key"`
	Secret  *crypto.PrivateKey `json:"secret"`
}

// GenerateCoinKey returns the address of a new public key, along with a
// json representation of the keys.
func GenerateCoinKey() (tollgate.Address, string, error) {
	privKey := crypto.GenPrivKeyEd25519()
	pubKey := privKey.PublicKey()
	addr := pubKey.Address()

	out := output{Address: addr, Pubkey: pubKey, Secret: privKey}
	keys, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return nil, "", errors.Wrap(errors.ErrInput, err.Error())
	}
	return addr, string(keys), nil
}
