package cash

import (
	"encoding/json"
	"testing"

	"github.com/iov-one/tollgate"
	"github.com/iov-one/tollgate/coin"
	"github.com/iov-one/tollgate/errors"
	"github.com/iov-one/tollgate/store"
	"github.com/iov-one/tollgate/weavetest/assert"
)

func TestGenesisInitializer(t *testing.T) {
	const genesis = `
		{
			"cash": [
				{
					"address": "0000000000000000000000000000000000000001",
					"coins": ["5 ETH", {"ticker": "IOV", "amount": 7}]
				},
				{
					"address": "bech32:tiov1qypqxpq9qcrsszg2pvxq6rs0zqg3yyc5w8tjwv",
					"coins": ["1 IOV"]
				}
			]
		}
	`
	var opts tollgate.Options
	if err := json.Unmarshal([]byte(genesis), &opts); err != nil {
		t.Fatalf("cannot unmarshal genesis: %s", err)
	}

	db := store.MemStore()
	var ini Initializer
	assert.Nil(t, ini.FromGenesis(opts, db))

	ctrl := NewController(NewBucket())

	first, err := tollgate.ParseAddress("0000000000000000000000000000000000000001")
	assert.Nil(t, err)
	got, err := ctrl.Balance(db, first)
	assert.Nil(t, err)
	want := coin.Coins{coin.NewCoinp(5, "ETH"), coin.NewCoinp(7, "IOV")}
	if !want.Equals(got) {
		t.Fatalf("want %s, got %s", want, got)
	}

	second, err := tollgate.ParseAddress("bech32:tiov1qypqxpq9qcrsszg2pvxq6rs0zqg3yyc5w8tjwv")
	assert.Nil(t, err)
	got, err = ctrl.Balance(db, second)
	assert.Nil(t, err)
	assert.Equal(t, coin.NewCoin(1, "IOV"), got.Balance("IOV"))
}

func TestGenesisInitializerErrors(t *testing.T) {
	cases := map[string]struct {
		genesis string
		wantErr *errors.Error
	}{
		"missing address": {
			genesis: `{"cash": [{"coins": ["1 IOV"]}]}`,
			wantErr: errors.ErrEmpty,
		},
		"invalid coin": {
			genesis: `{"cash": [{"address": "0000000000000000000000000000000000000001", "coins": ["1 I"]}]}`,
			wantErr: errors.ErrInput,
		},
		"not a list": {
			genesis: `{"cash": {}}`,
			wantErr: errors.ErrInput,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			var opts tollgate.Options
			if err := json.Unmarshal([]byte(tc.genesis), &opts); err != nil {
				t.Fatalf("cannot unmarshal genesis: %s", err)
			}
			err := Initializer{}.FromGenesis(opts, store.MemStore())
			assert.IsErr(t, tc.wantErr, err)
		})
	}
}
