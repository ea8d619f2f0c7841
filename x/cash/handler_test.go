package cash

import (
	"context"
	"testing"

	"github.com/iov-one/tollgate"
	"github.com/iov-one/tollgate/coin"
	"github.com/iov-one/tollgate/errors"
	"github.com/iov-one/tollgate/store"
	"github.com/iov-one/tollgate/weavetest"
	"github.com/iov-one/tollgate/weavetest/assert"
)

func TestSendHandler(t *testing.T) {
	sender := weavetest.NewCondition()
	recipient := weavetest.NewAddress()

	cases := map[string]struct {
		signer      tollgate.Condition
		msg         tollgate.Msg
		wantCheck   *errors.Error
		wantDeliver *errors.Error
		wantBalance coin.Coin
	}{
		"send coins": {
			signer: sender,
			msg: &SendMsg{
				Source:      sender.Address(),
				Destination: recipient,
				Amount:      coin.NewCoinp(30, "IOV"),
			},
			wantBalance: coin.NewCoin(30, "IOV"),
		},
		"source did not sign": {
			signer: weavetest.NewCondition(),
			msg: &SendMsg{
				Source:      sender.Address(),
				Destination: recipient,
				Amount:      coin.NewCoinp(30, "IOV"),
			},
			wantCheck:   errors.ErrUnauthorized,
			wantDeliver: errors.ErrUnauthorized,
			wantBalance: coin.Coin{Ticker: "IOV"},
		},
		"more than the source has": {
			signer: sender,
			msg: &SendMsg{
				Source:      sender.Address(),
				Destination: recipient,
				Amount:      coin.NewCoinp(101, "IOV"),
			},
			wantDeliver: errors.ErrInsufficientAmount,
			wantBalance: coin.Coin{Ticker: "IOV"},
		},
		"invalid message": {
			signer: sender,
			msg: &SendMsg{
				Source:      sender.Address(),
				Destination: recipient,
			},
			wantCheck:   errors.ErrAmount,
			wantDeliver: errors.ErrAmount,
			wantBalance: coin.Coin{Ticker: "IOV"},
		},
		"wrong message type": {
			signer:      sender,
			msg:         &weavetest.Msg{RoutePath: "cash/send"},
			wantCheck:   errors.ErrType,
			wantDeliver: errors.ErrType,
			wantBalance: coin.Coin{Ticker: "IOV"},
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			db := store.MemStore()
			ctrl := NewController(NewBucket())
			assert.Nil(t, ctrl.CoinMint(db, sender.Address(), coin.NewCoin(100, "IOV")))

			auth := &weavetest.Auth{Signer: tc.signer}
			h := NewSendHandler(auth, ctrl)
			ctx := context.Background()
			tx := &weavetest.Tx{Msg: tc.msg}

			cache := db.CacheWrap()
			_, err := h.Check(ctx, cache, tx)
			if tc.wantCheck == nil {
				assert.Nil(t, err)
			} else {
				assert.IsErr(t, tc.wantCheck, err)
			}
			cache.Discard()

			_, err = h.Deliver(ctx, db, tx)
			if tc.wantDeliver == nil {
				assert.Nil(t, err)
			} else {
				assert.IsErr(t, tc.wantDeliver, err)
			}

			got, err := ctrl.Balance(db, recipient)
			assert.Nil(t, err)
			assert.Equal(t, tc.wantBalance, got.Balance("IOV"))
		})
	}
}
