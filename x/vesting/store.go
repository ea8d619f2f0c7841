package vesting

import (
	"github.com/iov-one/tollgate"
	"github.com/iov-one/tollgate/coin"
	"github.com/iov-one/tollgate/errors"
	"github.com/iov-one/tollgate/gconf"
	"github.com/iov-one/tollgate/orm"
)

// configPkg is the gconf key of the vesting configuration.
const configPkg = "vesting"

// ScheduleStore keeps the configuration and the vesting record of every
// recipient.
type ScheduleStore struct {
	bucket orm.ModelBucket
}

// NewScheduleStore returns a store using the default vesting bucket.
func NewScheduleStore() ScheduleStore {
	return ScheduleStore{bucket: NewBucket()}
}

// Initialize creates a vesting record for every allocation and stores the
// configuration. The funds must be exactly the sum of all allocations, in
// the configured denomination.
//
// Everything is validated before the first write, so that a failure does
// not leave a partially initialized state behind.
func (s ScheduleStore) Initialize(db tollgate.KVStore, conf *GlobalConfig, funds coin.Coin, allocations []*Allocation) ([]*VestingRecord, error) {
	switch ok, err := gconf.Exists(db, configPkg); {
	case err != nil:
		return nil, errors.Wrap(err, "configuration")
	case ok:
		return nil, errors.Wrap(errors.ErrState, "already initialized")
	}
	if err := conf.Validate(); err != nil {
		return nil, errors.Wrap(err, "configuration")
	}
	if len(allocations) == 0 {
		return nil, errors.Wrap(errors.ErrEmpty, "no allocations")
	}

	var (
		sum     coin.Coin
		records = make([]*VestingRecord, 0, len(allocations))
		seen    = make(map[string]struct{}, len(allocations))
	)
	for i, a := range allocations {
		if a == nil {
			return nil, errors.Wrapf(errors.ErrEmpty, "allocation %d", i)
		}
		if err := a.Recipient.Validate(); err != nil {
			return nil, errors.Wrapf(err, "allocation %d recipient", i)
		}
		if _, ok := seen[string(a.Recipient)]; ok {
			return nil, errors.Wrapf(ErrDuplicateRecipient, "recipient %s", a.Recipient)
		}
		seen[string(a.Recipient)] = struct{}{}

		rec, err := NewVestingRecord(conf, a.Recipient, a.Amount)
		if err != nil {
			return nil, errors.Wrapf(err, "allocation %d", i)
		}
		records = append(records, rec)

		sum, err = sum.Add(coin.NewCoin(a.Amount, conf.Denom))
		if err != nil {
			return nil, errors.Wrap(err, "sum of allocations")
		}
	}

	if funds.Ticker != conf.Denom {
		return nil, errors.Wrapf(ErrAssetMismatch, "funds in %q, distributing %q", funds.Ticker, conf.Denom)
	}
	if funds.Amount != sum.Amount {
		return nil, errors.Wrapf(ErrAssetMismatch, "funds of %d, allocations sum to %d", funds.Amount, sum.Amount)
	}

	for _, rec := range records {
		if err := s.bucket.Put(db, rec.Recipient, rec); err != nil {
			return nil, errors.Wrapf(err, "store %s", rec.Recipient)
		}
	}
	if err := gconf.Save(db, configPkg, conf); err != nil {
		return nil, err
	}
	return records, nil
}

// Get returns the record of the given recipient or ErrNotFound.
func (s ScheduleStore) Get(db tollgate.ReadOnlyKVStore, recipient tollgate.Address) (*VestingRecord, error) {
	var rec VestingRecord
	if err := s.bucket.One(db, recipient, &rec); err != nil {
		return nil, errors.Wrapf(err, "vesting of %s", recipient)
	}
	return &rec, nil
}

// Put overwrites the record of the given recipient.
func (s ScheduleStore) Put(db tollgate.KVStore, recipient tollgate.Address, rec *VestingRecord) error {
	if !recipient.Equals(rec.Recipient) {
		return errors.Wrap(errors.ErrInput, "record of another recipient")
	}
	return s.bucket.Put(db, recipient, rec)
}

// Config returns the stored configuration. It fails with ErrNotFound if
// the vesting was not initialized yet.
func (s ScheduleStore) Config(db tollgate.ReadOnlyKVStore) (*GlobalConfig, error) {
	return LoadConfig(db)
}

// LoadConfig returns the stored vesting configuration.
func LoadConfig(db gconf.ReadStore) (*GlobalConfig, error) {
	var conf GlobalConfig
	if err := gconf.Load(db, configPkg, &conf); err != nil {
		return nil, errors.Wrap(err, "vesting configuration")
	}
	return &conf, nil
}
