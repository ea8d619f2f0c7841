package vesting

import (
	"strconv"

	"github.com/iov-one/tollgate"
	"github.com/iov-one/tollgate/coin"
	"github.com/iov-one/tollgate/errors"
)

const (
	pathInitializeMsg      = "vesting/initialize"
	pathApproveTollgateMsg = "vesting/approve_tollgate"
	pathClaimMsg           = "vesting/claim"
)

var _ tollgate.Msg = (*InitializeMsg)(nil)

// Path returns the routing path for this message.
func (InitializeMsg) Path() string {
	return pathInitializeMsg
}

// Validate ensures the message is well formed. Authority and cadence are
// optional.
func (m *InitializeMsg) Validate() error {
	var errs error
	if m.Authority != nil {
		errs = errors.AppendField(errs, "Authority", m.Authority.Validate())
	}
	errs = errors.AppendField(errs, "Treasury", m.Treasury.Validate())
	if !coin.IsDenom(m.Denom) {
		errs = errors.Append(errs, errors.Field("Denom", errors.ErrCurrency, "invalid denom %q", m.Denom))
	}
	if m.PeriodLength < 0 {
		errs = errors.Append(errs, errors.Field("PeriodLength", errors.ErrInput, "negative"))
	}
	if m.PeriodsPerTollgate > minTierPeriods {
		errs = errors.Append(errs, errors.Field("PeriodsPerTollgate", errors.ErrInput, "must not be greater than %d", minTierPeriods))
	}
	if len(m.Allocations) == 0 {
		errs = errors.Append(errs, errors.Field("Allocations", errors.ErrEmpty, "required"))
	}
	for i, a := range m.Allocations {
		field := "Allocations." + strconv.Itoa(i)
		if a == nil {
			errs = errors.Append(errs, errors.Field(field, errors.ErrEmpty, "required"))
			continue
		}
		errs = errors.AppendField(errs, field, a.Validate())
	}
	switch {
	case m.Funds == nil:
		errs = errors.Append(errs, errors.Field("Funds", errors.ErrEmpty, "required"))
	case !m.Funds.IsPositive():
		errs = errors.Append(errs, errors.Field("Funds", errors.ErrAmount, "must be positive"))
	default:
		errs = errors.AppendField(errs, "Funds", m.Funds.Validate())
	}
	return errs
}

var _ tollgate.Msg = (*ApproveTollgateMsg)(nil)

// Path returns the routing path for this message.
func (ApproveTollgateMsg) Path() string {
	return pathApproveTollgateMsg
}

// Validate ensures the recipient is set.
func (m *ApproveTollgateMsg) Validate() error {
	return errors.Field("Recipient", m.Recipient.Validate(), "")
}

var _ tollgate.Msg = (*ClaimMsg)(nil)

// Path returns the routing path for this message.
func (ClaimMsg) Path() string {
	return pathClaimMsg
}

// Validate always succeeds, the recipient is the signer of the
// transaction.
func (m *ClaimMsg) Validate() error {
	return nil
}
