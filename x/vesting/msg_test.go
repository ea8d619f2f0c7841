package vesting

import (
	"testing"

	"github.com/iov-one/tollgate/coin"
	"github.com/iov-one/tollgate/errors"
	"github.com/iov-one/tollgate/weavetest"
	"github.com/iov-one/tollgate/weavetest/assert"
)

func TestInitializeMsgValidate(t *testing.T) {
	recipient := weavetest.NewAddress()
	treasury := weavetest.NewAddress()

	cases := map[string]struct {
		msg       InitializeMsg
		wantField map[string]*errors.Error
	}{
		"minimal": {
			msg: InitializeMsg{
				Treasury:    treasury,
				Denom:       "LUNA",
				Allocations: []*Allocation{{Recipient: recipient, Amount: 10}},
				Funds:       coin.NewCoinp(10, "LUNA"),
			},
			wantField: map[string]*errors.Error{
				"Authority":     nil,
				"Treasury":      nil,
				"Denom":         nil,
				"Allocations.0": nil,
				"Funds":         nil,
			},
		},
		"empty": {
			msg: InitializeMsg{},
			wantField: map[string]*errors.Error{
				"Treasury":    errors.ErrEmpty,
				"Denom":       errors.ErrCurrency,
				"Allocations": errors.ErrEmpty,
				"Funds":       errors.ErrEmpty,
			},
		},
		"invalid allocations": {
			msg: InitializeMsg{
				Treasury: treasury,
				Denom:    "LUNA",
				Allocations: []*Allocation{
					{Recipient: recipient, Amount: 10},
					{Recipient: recipient, Amount: 0},
					nil,
				},
				Funds: coin.NewCoinp(10, "LUNA"),
			},
			wantField: map[string]*errors.Error{
				"Allocations.0": nil,
				"Allocations.1": ErrZeroVestingAmount,
				"Allocations.2": errors.ErrEmpty,
			},
		},
		"invalid cadence": {
			msg: InitializeMsg{
				Authority:          []byte{1, 2, 3},
				Treasury:           treasury,
				Denom:              "LUNA",
				PeriodLength:       -1,
				PeriodsPerTollgate: 4,
				Allocations:        []*Allocation{{Recipient: recipient, Amount: 10}},
				Funds:              coin.NewCoinp(0, "LUNA"),
			},
			wantField: map[string]*errors.Error{
				"Authority":          errors.ErrInput,
				"PeriodLength":       errors.ErrInput,
				"PeriodsPerTollgate": errors.ErrInput,
				"Funds":              errors.ErrAmount,
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

func TestApproveTollgateMsgValidate(t *testing.T) {
	msg := ApproveTollgateMsg{Recipient: weavetest.NewAddress()}
	assert.Nil(t, msg.Validate())

	msg = ApproveTollgateMsg{}
	assert.FieldError(t, msg.Validate(), "Recipient", errors.ErrEmpty)
}
