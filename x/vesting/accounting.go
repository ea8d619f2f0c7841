package vesting

import (
	"github.com/iov-one/tollgate"
	"github.com/iov-one/tollgate/coin"
	"github.com/iov-one/tollgate/errors"
)

// TransferInstruction describes a payout from the vesting pool. The
// accounting never moves funds itself, the caller is expected to settle
// the instruction.
type TransferInstruction struct {
	Destination tollgate.Address
	Amount      coin.Coin
}

// NewVestingRecord returns the initial schedule of a recipient allocated
// the given amount.
func NewVestingRecord(conf *GlobalConfig, recipient tollgate.Address, amount uint64) (*VestingRecord, error) {
	if amount == 0 {
		return nil, errors.Wrapf(ErrZeroVestingAmount, "for address %s", recipient)
	}
	periods := TotalPeriods(amount)
	rec := &VestingRecord{
		Recipient:       recipient,
		TotalAmount:     amount,
		TotalPeriods:    periods,
		AmountPerPeriod: amount / periods,
		ApprovedPeriods: conf.PeriodsPerTollgate,
		VestedAmount:    amount,
		Active:          true,
	}
	if err := rec.Validate(); err != nil {
		return nil, err
	}
	return rec, nil
}

// ElapsedPeriods returns the number of whole periods that passed between
// the start of the schedule and now.
func ElapsedPeriods(conf *GlobalConfig, now tollgate.UnixTime) (uint64, error) {
	if conf.PeriodLength <= 0 {
		return 0, errors.Wrap(errors.ErrState, "period length not set")
	}
	if now < conf.StartTime {
		return 0, errors.Wrapf(errors.ErrState, "time %s before the vesting start %s", now, conf.StartTime)
	}
	return uint64(int64(now-conf.StartTime) / conf.PeriodLength), nil
}

// ApproveTollgate either unlocks the next block of periods of the record
// or deactivates it. Deactivation keeps everything the recipient is
// already entitled to and returns the transfer of the remaining funds to
// the treasury. No transfer is returned if nothing is forfeited.
//
// The record is modified only if no error is returned.
func ApproveTollgate(conf *GlobalConfig, rec *VestingRecord, approve bool, now tollgate.UnixTime) (*TransferInstruction, error) {
	if !rec.Active {
		return nil, errors.Wrapf(ErrVestingInactive, "recipient %s", rec.Recipient)
	}
	elapsed, err := ElapsedPeriods(conf, now)
	if err != nil {
		return nil, err
	}
	if rec.ApprovedPeriods+conf.PeriodsPerTollgate > rec.TotalPeriods {
		return nil, errors.Wrapf(ErrNoTollgateRequired, "%d of %d periods approved", rec.ApprovedPeriods, rec.TotalPeriods)
	}
	if elapsed < rec.ApprovedPeriods {
		return nil, errors.Wrapf(ErrTollgateNotYetDue, "%d of %d approved periods elapsed", elapsed, rec.ApprovedPeriods)
	}

	if approve {
		rec.ApprovedPeriods += conf.PeriodsPerTollgate
		return nil, nil
	}

	entitled := rec.AmountPerPeriod * unclaimedPeriods(rec, elapsed)
	if entitled > rec.VestedAmount {
		return nil, errors.Wrapf(errors.ErrState, "entitled %d above vested %d", entitled, rec.VestedAmount)
	}
	forfeited := rec.VestedAmount - entitled

	rec.VestedAmount = entitled
	rec.Active = false

	if forfeited == 0 {
		return nil, nil
	}
	return &TransferInstruction{
		Destination: conf.Treasury,
		Amount:      coin.NewCoin(forfeited, conf.Denom),
	}, nil
}

// Claim pays out everything that vested since the last claim. Inactive
// records can still claim what they were entitled to when deactivated.
//
// The record is modified only if no error is returned.
func Claim(conf *GlobalConfig, rec *VestingRecord, now tollgate.UnixTime) (*TransferInstruction, error) {
	elapsed, err := ElapsedPeriods(conf, now)
	if err != nil {
		return nil, err
	}
	eligible := eligiblePeriods(rec, elapsed)
	claimable := rec.AmountPerPeriod * unclaimedPeriods(rec, elapsed)
	if claimable > rec.VestedAmount {
		return nil, errors.Wrapf(errors.ErrState, "claimable %d above vested %d", claimable, rec.VestedAmount)
	}
	if claimable == 0 {
		return nil, errors.Wrapf(ErrNothingToClaim, "%d of %d periods claimed", rec.LastClaimedPeriod, eligible)
	}

	rec.ClaimedAmount += claimable
	rec.VestedAmount -= claimable
	rec.LastClaimedPeriod = eligible

	return &TransferInstruction{
		Destination: rec.Recipient,
		Amount:      coin.NewCoin(claimable, conf.Denom),
	}, nil
}

// eligiblePeriods returns the number of periods that both elapsed and were
// approved.
func eligiblePeriods(rec *VestingRecord, elapsed uint64) uint64 {
	if elapsed < rec.ApprovedPeriods {
		return elapsed
	}
	return rec.ApprovedPeriods
}

// unclaimedPeriods returns the number of eligible periods not paid out yet.
func unclaimedPeriods(rec *VestingRecord, elapsed uint64) uint64 {
	eligible := eligiblePeriods(rec, elapsed)
	if eligible <= rec.LastClaimedPeriod {
		return 0
	}
	return eligible - rec.LastClaimedPeriod
}
