package vesting

import (
	"github.com/iov-one/tollgate"
	"github.com/iov-one/tollgate/coin"
	"github.com/iov-one/tollgate/errors"
	"github.com/iov-one/tollgate/gconf"
	"github.com/iov-one/tollgate/x/cash"
)

const optKey = "vesting"

// GenesisVesting is the schedule declared in the genesis file. The pool
// is funded by minting the funds.
type GenesisVesting struct {
	Authority          tollgate.Address  `json:"authority"`
	Treasury           tollgate.Address  `json:"treasury"`
	Denom              string            `json:"denom"`
	PeriodLength       int64             `json:"period_length"`
	PeriodsPerTollgate uint64            `json:"periods_per_tollgate"`
	StartTime          tollgate.UnixTime `json:"start_time"`
	Funds              coin.Coin         `json:"funds"`
	Allocations        []*Allocation     `json:"allocations"`
}

// Initializer loads the default cadence and the optional genesis schedule.
type Initializer struct {
	// Minter funds the pool of the genesis schedule. The cash controller
	// is used if not set.
	Minter cash.CoinMinter
}

var _ tollgate.Initializer = Initializer{}

// FromGenesis stores the "conf"."vesting_defaults" configuration and
// initializes the "vesting" schedule, if any of them is declared.
func (i Initializer) FromGenesis(opts tollgate.Options, db tollgate.KVStore) error {
	switch err := gconf.InitConfig(db, opts, defaultsPkg, &Defaults{}); {
	case err == nil, errors.ErrNotFound.Is(err):
	default:
		return err
	}

	var gen *GenesisVesting
	if err := opts.ReadOptions(optKey, &gen); err != nil {
		return err
	}
	if gen == nil {
		return nil
	}

	defaults, err := loadDefaults(db)
	if err != nil {
		return err
	}
	params := InitParams{
		Authority:          gen.Authority,
		Treasury:           gen.Treasury,
		Denom:              gen.Denom,
		PeriodLength:       gen.PeriodLength,
		PeriodsPerTollgate: gen.PeriodsPerTollgate,
		Allocations:        gen.Allocations,
	}
	if params.PeriodLength == 0 {
		params.PeriodLength = defaults.PeriodLength
	}
	if params.PeriodsPerTollgate == 0 {
		params.PeriodsPerTollgate = defaults.PeriodsPerTollgate
	}

	ctrl := NewController(NewScheduleStore())
	if _, err := ctrl.Initialize(db, params, gen.Funds, gen.StartTime); err != nil {
		return errors.Wrap(err, "genesis vesting")
	}

	minter := i.Minter
	if minter == nil {
		minter = cash.NewController(cash.NewBucket())
	}
	if err := minter.CoinMint(db, PoolAddress, gen.Funds); err != nil {
		return errors.Wrap(err, "fund the pool")
	}
	return nil
}
