package app

import (
	"context"
	"testing"

	"github.com/iov-one/tollgate"
	"github.com/iov-one/tollgate/errors"
	"github.com/iov-one/tollgate/store"
	"github.com/iov-one/tollgate/weavetest"
	"github.com/iov-one/tollgate/weavetest/assert"
)

func TestRouterDispatch(t *testing.T) {
	claim := &weavetest.Handler{DeliverResult: tollgate.DeliverResult{Log: "claimed"}}
	send := &weavetest.Handler{}

	r := NewRouter()
	r.Handle("vesting/claim", claim)
	r.Handle("cash/send", send)

	ctx := context.Background()
	db := store.MemStore()

	res, err := r.Deliver(ctx, db, &weavetest.Tx{Msg: &weavetest.Msg{RoutePath: "vesting/claim"}})
	assert.Nil(t, err)
	assert.Equal(t, "claimed", res.Log)
	assert.Equal(t, 1, claim.DeliverCallCount())
	assert.Equal(t, 0, send.CallCount())

	_, err = r.Check(ctx, db, &weavetest.Tx{Msg: &weavetest.Msg{RoutePath: "cash/send"}})
	assert.Nil(t, err)
	assert.Equal(t, 1, send.CheckCallCount())
}

func TestRouterErrors(t *testing.T) {
	r := NewRouter()
	r.Handle("vesting/claim", &weavetest.Handler{})

	ctx := context.Background()
	db := store.MemStore()

	cases := map[string]struct {
		tx      tollgate.Tx
		wantErr *errors.Error
	}{
		"unknown path": {
			tx:      &weavetest.Tx{Msg: &weavetest.Msg{RoutePath: "vesting/unknown"}},
			wantErr: errors.ErrNotFound,
		},
		"no message": {
			tx:      &weavetest.Tx{},
			wantErr: errors.ErrMsg,
		},
		"broken transaction": {
			tx:      &weavetest.Tx{Err: errors.ErrInput},
			wantErr: errors.ErrInput,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			_, err := r.Check(ctx, db, tc.tx)
			assert.IsErr(t, tc.wantErr, err)
			_, err = r.Deliver(ctx, db, tc.tx)
			assert.IsErr(t, tc.wantErr, err)
		})
	}
}

func TestRouterRegistration(t *testing.T) {
	r := NewRouter()
	r.Handle("vesting/approve_tollgate", &weavetest.Handler{})

	assert.Panics(t, func() { r.Handle("vesting/approve_tollgate", &weavetest.Handler{}) })
	assert.Panics(t, func() { r.Handle("vesting claim", &weavetest.Handler{}) })
	assert.Panics(t, func() { r.Handle("", &weavetest.Handler{}) })
}
