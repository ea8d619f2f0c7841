package vesting

import "github.com/iov-one/tollgate/errors"

var (
	ErrAssetMismatch      = errors.Register(1300, "mismatched asset")
	ErrDuplicateRecipient = errors.Register(1301, "duplicated recipient")
	ErrVestingInactive    = errors.Register(1302, "vesting no longer active")
	ErrNoTollgateRequired = errors.Register(1303, "no tollgate required")
	ErrTollgateNotYetDue  = errors.Register(1304, "next tollgate time not reached")
	ErrNothingToClaim     = errors.Register(1305, "nothing to be claimed")
	ErrZeroVestingAmount  = errors.Register(1306, "zero vesting amount")
)
