package cash

import (
	"strings"
	"testing"

	"github.com/iov-one/tollgate/coin"
	"github.com/iov-one/tollgate/errors"
	"github.com/iov-one/tollgate/weavetest"
	"github.com/iov-one/tollgate/weavetest/assert"
)

func TestSendMsgValidate(t *testing.T) {
	src := weavetest.NewAddress()
	dest := weavetest.NewAddress()

	cases := map[string]struct {
		msg       SendMsg
		wantField map[string]*errors.Error
	}{
		"valid": {
			msg: SendMsg{Source: src, Destination: dest, Amount: coin.NewCoinp(1, "IOV"), Memo: "thanks"},
			wantField: map[string]*errors.Error{
				"Amount":      nil,
				"Source":      nil,
				"Destination": nil,
				"Memo":        nil,
			},
		},
		"missing everything": {
			msg: SendMsg{},
			wantField: map[string]*errors.Error{
				"Amount":      errors.ErrAmount,
				"Source":      errors.ErrEmpty,
				"Destination": errors.ErrEmpty,
			},
		},
		"bad ticker": {
			msg: SendMsg{Source: src, Destination: dest, Amount: &coin.Coin{Ticker: "x", Amount: 1}},
			wantField: map[string]*errors.Error{
				"Amount": errors.ErrCurrency,
			},
		},
		"memo too long": {
			msg: SendMsg{Source: src, Destination: dest, Amount: coin.NewCoinp(1, "IOV"), Memo: strings.Repeat("x", maxMemoSize+1)},
			wantField: map[string]*errors.Error{
				"Memo": errors.ErrInput,
			},
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			err := tc.msg.Validate()
			for field, want := range tc.wantField {
				assert.FieldError(t, err, field, want)
			}
		})
	}
}
