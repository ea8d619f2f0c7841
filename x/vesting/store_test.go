package vesting

import (
	"testing"

	"github.com/iov-one/tollgate"
	"github.com/iov-one/tollgate/coin"
	"github.com/iov-one/tollgate/errors"
	"github.com/iov-one/tollgate/store"
	"github.com/iov-one/tollgate/weavetest"
	"github.com/iov-one/tollgate/weavetest/assert"
)

func TestScheduleStoreInitialize(t *testing.T) {
	alice := weavetest.NewAddress()
	bob := weavetest.NewAddress()

	cases := map[string]struct {
		conf        func() *GlobalConfig
		funds       coin.Coin
		allocations []*Allocation
		wantErr     *errors.Error
	}{
		"valid": {
			funds: coin.NewCoin(300, "LUNA"),
			allocations: []*Allocation{
				{Recipient: alice, Amount: 100},
				{Recipient: bob, Amount: 200},
			},
		},
		"duplicated recipient": {
			funds: coin.NewCoin(300, "LUNA"),
			allocations: []*Allocation{
				{Recipient: alice, Amount: 100},
				{Recipient: alice, Amount: 200},
			},
			wantErr: ErrDuplicateRecipient,
		},
		"funds in another currency": {
			funds: coin.NewCoin(300, "ETH"),
			allocations: []*Allocation{
				{Recipient: alice, Amount: 100},
				{Recipient: bob, Amount: 200},
			},
			wantErr: ErrAssetMismatch,
		},
		"funds too low": {
			funds: coin.NewCoin(299, "LUNA"),
			allocations: []*Allocation{
				{Recipient: alice, Amount: 100},
				{Recipient: bob, Amount: 200},
			},
			wantErr: ErrAssetMismatch,
		},
		"funds too high": {
			funds: coin.NewCoin(301, "LUNA"),
			allocations: []*Allocation{
				{Recipient: alice, Amount: 100},
				{Recipient: bob, Amount: 200},
			},
			wantErr: ErrAssetMismatch,
		},
		"zero allocation": {
			funds: coin.NewCoin(100, "LUNA"),
			allocations: []*Allocation{
				{Recipient: alice, Amount: 100},
				{Recipient: bob, Amount: 0},
			},
			wantErr: ErrZeroVestingAmount,
		},
		"no allocations": {
			funds:   coin.NewCoin(100, "LUNA"),
			wantErr: errors.ErrEmpty,
		},
		"allocations overflow": {
			funds: coin.NewCoin(100, "LUNA"),
			allocations: []*Allocation{
				{Recipient: alice, Amount: ^uint64(0)},
				{Recipient: bob, Amount: 1},
			},
			wantErr: errors.ErrOverflow,
		},
		"invalid configuration": {
			conf: func() *GlobalConfig {
				c := testConfig()
				c.PeriodsPerTollgate = 4
				return c
			},
			funds:       coin.NewCoin(100, "LUNA"),
			allocations: []*Allocation{{Recipient: alice, Amount: 100}},
			wantErr:     errors.ErrInput,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			db := store.MemStore()
			s := NewScheduleStore()
			conf := testConfig()
			if tc.conf != nil {
				conf = tc.conf()
			}

			records, err := s.Initialize(db, conf, tc.funds, tc.allocations)
			if tc.wantErr != nil {
				assert.IsErr(t, tc.wantErr, err)
				// Nothing must be written on failure.
				assertEmpty(t, db)
				return
			}
			assert.Nil(t, err)
			assert.Equal(t, len(tc.allocations), len(records))

			for _, a := range tc.allocations {
				rec, err := s.Get(db, a.Recipient)
				assert.Nil(t, err)
				assert.Equal(t, a.Amount, rec.TotalAmount)
				assert.Equal(t, true, rec.Active)
			}
			stored, err := s.Config(db)
			assert.Nil(t, err)
			assert.Equal(t, conf, stored)
		})
	}
}

func assertEmpty(t testing.TB, db tollgate.ReadOnlyKVStore) {
	t.Helper()
	it, err := db.Iterator(nil, nil)
	assert.Nil(t, err)
	defer it.Close()
	if it.Valid() {
		t.Fatalf("unexpected key in the store: %q", it.Key())
	}
}

func TestScheduleStoreInitializeTwice(t *testing.T) {
	db := store.MemStore()
	s := NewScheduleStore()
	alice := weavetest.NewAddress()

	allocations := []*Allocation{{Recipient: alice, Amount: 100}}
	_, err := s.Initialize(db, testConfig(), coin.NewCoin(100, "LUNA"), allocations)
	assert.Nil(t, err)

	_, err = s.Initialize(db, testConfig(), coin.NewCoin(100, "LUNA"), allocations)
	assert.IsErr(t, errors.ErrState, err)
}

func TestScheduleStoreGetPut(t *testing.T) {
	db := store.MemStore()
	s := NewScheduleStore()
	conf := testConfig()

	_, err := s.Get(db, weavetest.NewAddress())
	assert.IsErr(t, errors.ErrNotFound, err)

	_, err = s.Config(db)
	assert.IsErr(t, errors.ErrNotFound, err)

	rec := mustRecord(t, conf, 900)
	assert.Nil(t, s.Put(db, rec.Recipient, rec))

	rec.LastClaimedPeriod = 2
	rec.ClaimedAmount = 600
	rec.VestedAmount = 300
	assert.Nil(t, s.Put(db, rec.Recipient, rec))

	got, err := s.Get(db, rec.Recipient)
	assert.Nil(t, err)
	assert.Equal(t, rec, got)

	// Records violating the invariants are rejected.
	broken := *rec
	broken.VestedAmount = 1
	err = s.Put(db, broken.Recipient, &broken)
	assert.IsErr(t, errors.ErrState, err)

	err = s.Put(db, weavetest.NewAddress(), rec)
	assert.IsErr(t, errors.ErrInput, err)
}
