package tollgate_test

import (
	"testing"

	"github.com/iov-one/tollgate"
	"github.com/iov-one/tollgate/errors"
	"github.com/iov-one/tollgate/weavetest"
	"github.com/iov-one/tollgate/weavetest/assert"
)

func TestLoadMsg(t *testing.T) {
	cases := map[string]struct {
		tx      tollgate.Tx
		dest    interface{}
		wantErr *errors.Error
		wantMsg interface{}
	}{
		"pointer message into value": {
			tx:      &weavetest.Tx{Msg: &weavetest.Msg{RoutePath: "vesting/claim"}},
			dest:    &weavetest.Msg{},
			wantMsg: &weavetest.Msg{RoutePath: "vesting/claim"},
		},
		"invalid message": {
			tx:      &weavetest.Tx{Msg: &weavetest.Msg{RoutePath: "vesting/claim", Err: errors.ErrAmount}},
			dest:    &weavetest.Msg{},
			wantErr: errors.ErrAmount,
		},
		"missing message": {
			tx:      &weavetest.Tx{},
			dest:    &weavetest.Msg{},
			wantErr: errors.ErrMsg,
		},
		"nil pointer message": {
			tx:      &weavetest.Tx{Msg: (*weavetest.Msg)(nil)},
			dest:    &weavetest.Msg{},
			wantErr: errors.ErrMsg,
		},
		"transaction error": {
			tx:      &weavetest.Tx{Err: errors.ErrInput},
			dest:    &weavetest.Msg{},
			wantErr: errors.ErrInput,
		},
		"destination of a different type": {
			tx:      &weavetest.Tx{Msg: &weavetest.Msg{}},
			dest:    &weavetest.Tx{},
			wantErr: errors.ErrType,
		},
		"destination not a pointer": {
			tx:      &weavetest.Tx{Msg: &weavetest.Msg{}},
			dest:    weavetest.Msg{},
			wantErr: errors.ErrHuman,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			err := tollgate.LoadMsg(tc.tx, tc.dest)
			if tc.wantErr != nil {
				assert.IsErr(t, tc.wantErr, err)
				return
			}
			assert.Nil(t, err)
			assert.Equal(t, tc.wantMsg, tc.dest)
		})
	}
}
