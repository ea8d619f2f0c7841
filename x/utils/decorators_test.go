package utils

import (
	"context"
	"testing"

	"github.com/iov-one/tollgate"
	"github.com/iov-one/tollgate/errors"
	"github.com/iov-one/tollgate/store"
	"github.com/iov-one/tollgate/weavetest"
	"github.com/iov-one/tollgate/weavetest/assert"
)

func TestRecovery(t *testing.T) {
	var h panicHandler
	r := NewRecovery()

	ctx := context.Background()
	db := store.MemStore()

	assert.Panics(t, func() { h.Check(ctx, db, nil) })
	assert.Panics(t, func() { h.Deliver(ctx, db, nil) })

	_, err := r.Check(ctx, db, nil, h)
	assert.IsErr(t, errors.ErrPanic, err)

	_, err = r.Deliver(ctx, db, nil, h)
	assert.IsErr(t, errors.ErrPanic, err)
}

type panicHandler struct{}

var _ tollgate.Handler = panicHandler{}

func (panicHandler) Check(tollgate.Context, tollgate.KVStore, tollgate.Tx) (*tollgate.CheckResult, error) {
	panic("check panic")
}

func (panicHandler) Deliver(tollgate.Context, tollgate.KVStore, tollgate.Tx) (*tollgate.DeliverResult, error) {
	panic("deliver panic")
}

func TestLoggingPassesResult(t *testing.T) {
	h := &weavetest.Handler{
		CheckResult:   tollgate.CheckResult{Log: "checked", GasAllocated: 7},
		DeliverResult: tollgate.DeliverResult{Log: "delivered"},
	}
	ctx := context.Background()
	db := store.MemStore()

	cres, err := NewLogging().Check(ctx, db, nil, h)
	assert.Nil(t, err)
	assert.Equal(t, int64(7), cres.GasAllocated)

	dres, err := NewLogging().Deliver(ctx, db, nil, h)
	assert.Nil(t, err)
	assert.Equal(t, "delivered", dres.Log)

	failing := &weavetest.Handler{DeliverErr: errors.ErrNotFound}
	_, err = NewLogging().Deliver(ctx, db, nil, failing)
	assert.IsErr(t, errors.ErrNotFound, err)
}

func TestSavepoint(t *testing.T) {
	key, value := []byte("written"), []byte("value")

	cases := map[string]struct {
		save      Savepoint
		handlerOk bool
		check     bool
		wantErr   bool
		wantKey   bool
	}{
		"inactive savepoint keeps writes of a failed check": {
			save:    NewSavepoint(),
			check:   true,
			wantErr: true,
			wantKey: true,
		},
		"check savepoint drops writes of a failed check": {
			save:    NewSavepoint().OnCheck(),
			check:   true,
			wantErr: true,
			wantKey: false,
		},
		"deliver savepoint drops writes of a failed deliver": {
			save:    NewSavepoint().OnDeliver(),
			wantErr: true,
			wantKey: false,
		},
		"check savepoint does not affect deliver": {
			save:    NewSavepoint().OnCheck(),
			wantErr: true,
			wantKey: true,
		},
		"both activated keep writes on success": {
			save:      NewSavepoint().OnCheck().OnDeliver(),
			handlerOk: true,
			wantKey:   true,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			db := store.MemStore()
			h := writeHandler{key: key, value: value}
			if !tc.handlerOk {
				h.err = errors.ErrState
			}

			var err error
			if tc.check {
				_, err = tc.save.Check(context.Background(), db, nil, h)
			} else {
				_, err = tc.save.Deliver(context.Background(), db, nil, h)
			}
			if tc.wantErr {
				assert.IsErr(t, errors.ErrState, err)
			} else {
				assert.Nil(t, err)
			}

			has, err := db.Has(key)
			assert.Nil(t, err)
			assert.Equal(t, tc.wantKey, has)
		})
	}
}

// writeHandler always writes a single key and returns the configured error.
type writeHandler struct {
	key   []byte
	value []byte
	err   error
}

func (h writeHandler) Check(ctx tollgate.Context, db tollgate.KVStore, tx tollgate.Tx) (*tollgate.CheckResult, error) {
	if err := db.Set(h.key, h.value); err != nil {
		return nil, err
	}
	if h.err != nil {
		return nil, h.err
	}
	return &tollgate.CheckResult{}, nil
}

func (h writeHandler) Deliver(ctx tollgate.Context, db tollgate.KVStore, tx tollgate.Tx) (*tollgate.DeliverResult, error) {
	if err := db.Set(h.key, h.value); err != nil {
		return nil, err
	}
	if h.err != nil {
		return nil, h.err
	}
	return &tollgate.DeliverResult{}, nil
}
