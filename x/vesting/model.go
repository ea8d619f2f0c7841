package vesting

import (
	"time"

	"github.com/iov-one/tollgate"
	"github.com/iov-one/tollgate/coin"
	"github.com/iov-one/tollgate/errors"
	"github.com/iov-one/tollgate/orm"
)

const (
	// DefaultPeriodLength is thirty days.
	DefaultPeriodLength = int64(30 * 24 * time.Hour / time.Second)
	// DefaultPeriodsPerTollgate is the number of periods unlocked by an
	// approval unless configured otherwise.
	DefaultPeriodsPerTollgate uint64 = 3
)

var _ orm.Model = (*VestingRecord)(nil)

// Validate returns an error if the configuration is not complete.
func (c *GlobalConfig) Validate() error {
	var errs error
	errs = errors.AppendField(errs, "Authority", c.Authority.Validate())
	errs = errors.AppendField(errs, "Treasury", c.Treasury.Validate())
	if !coin.IsDenom(c.Denom) {
		errs = errors.Append(errs, errors.Field("Denom", errors.ErrCurrency, "invalid denom %q", c.Denom))
	}
	errs = errors.Append(errs, validateCadence(c.PeriodLength, c.PeriodsPerTollgate))
	switch {
	case c.StartTime == 0:
		errs = errors.Append(errs, errors.Field("StartTime", errors.ErrEmpty, "required"))
	case c.StartTime < 0:
		errs = errors.Append(errs, errors.Field("StartTime", errors.ErrInput, "negative"))
	}
	return errs
}

// Validate returns an error if the default cadence cannot be used to
// initialize a schedule.
func (d *Defaults) Validate() error {
	return validateCadence(d.PeriodLength, d.PeriodsPerTollgate)
}

func validateCadence(periodLength int64, perTollgate uint64) error {
	var errs error
	if periodLength <= 0 {
		errs = errors.Append(errs, errors.Field("PeriodLength", errors.ErrInput, "must be positive"))
	}
	// A single tollgate cannot approve more than the shortest schedule
	// holds, otherwise new records would start with more approved periods
	// than they have in total.
	if perTollgate == 0 || perTollgate > minTierPeriods {
		errs = errors.Append(errs, errors.Field("PeriodsPerTollgate", errors.ErrInput, "must be between 1 and %d", minTierPeriods))
	}
	return errs
}

// Validate ensures the record is consistent.
func (r *VestingRecord) Validate() error {
	var errs error
	errs = errors.AppendField(errs, "Recipient", r.Recipient.Validate())
	if r.TotalAmount == 0 {
		errs = errors.Append(errs, errors.Field("TotalAmount", ErrZeroVestingAmount, "required"))
	}
	if r.TotalPeriods == 0 {
		errs = errors.Append(errs, errors.Field("TotalPeriods", errors.ErrState, "required"))
	} else if r.AmountPerPeriod > r.TotalAmount/r.TotalPeriods {
		errs = errors.Append(errs, errors.Field("AmountPerPeriod", errors.ErrState, "exceeds total amount"))
	}
	if r.LastClaimedPeriod > r.ApprovedPeriods {
		errs = errors.Append(errs, errors.Field("LastClaimedPeriod", errors.ErrState, "above approved periods"))
	}
	if r.ApprovedPeriods > r.TotalPeriods {
		errs = errors.Append(errs, errors.Field("ApprovedPeriods", errors.ErrState, "above total periods"))
	}
	if r.ClaimedAmount > r.TotalAmount {
		errs = errors.Append(errs, errors.Field("ClaimedAmount", errors.ErrState, "above total amount"))
	}
	if r.Active && r.ClaimedAmount+r.VestedAmount != r.TotalAmount {
		errs = errors.Append(errs, errors.Field("VestedAmount", errors.ErrState, "claimed and vested do not add up to total"))
	}
	return errs
}

// Validate ensures the allocation names a recipient and a positive amount.
func (a *Allocation) Validate() error {
	var errs error
	errs = errors.AppendField(errs, "Recipient", a.Recipient.Validate())
	if a.Amount == 0 {
		errs = errors.Append(errs, errors.Field("Amount", ErrZeroVestingAmount, "for address %s", a.Recipient))
	}
	return errs
}

// BucketName is where the vesting records are stored.
const BucketName = "vesting"

// NewBucket returns a bucket of vesting records keyed by the recipient
// address.
func NewBucket() orm.ModelBucket {
	return orm.NewModelBucket(BucketName, &VestingRecord{})
}

// PoolAddress holds the funds of every schedule until they are claimed or
// forfeited.
var PoolAddress = tollgate.NewCondition("vesting", "pool", []byte("tollgate")).Address()
