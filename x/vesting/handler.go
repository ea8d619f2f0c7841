package vesting

import (
	"strconv"

	"github.com/iov-one/tollgate"
	"github.com/iov-one/tollgate/errors"
	"github.com/iov-one/tollgate/gconf"
	"github.com/iov-one/tollgate/x"
	"github.com/iov-one/tollgate/x/cash"
	"github.com/tendermint/tendermint/libs/common"
)

const (
	initializeCost      int64 = 300
	approveTollgateCost int64 = 100
	claimCost           int64 = 100
)

// defaultsPkg is the gconf key of the cadence used when the initialization
// message does not declare one.
const defaultsPkg = "vesting_defaults"

// RegisterRoutes will instantiate and register all handlers in this
// package.
func RegisterRoutes(r tollgate.Registry, auth x.Authenticator, bank cash.CoinMover) {
	ctrl := NewController(NewScheduleStore())
	r.Handle(pathInitializeMsg, InitializeHandler{auth: auth, ctrl: ctrl, bank: bank})
	r.Handle(pathApproveTollgateMsg, ApproveTollgateHandler{auth: auth, ctrl: ctrl, bank: bank})
	r.Handle(pathClaimMsg, ClaimHandler{auth: auth, ctrl: ctrl, bank: bank})
}

// InitializeHandler sets up the schedules of all recipients and moves the
// funds from the signer to the vesting pool.
type InitializeHandler struct {
	auth x.Authenticator
	ctrl Controller
	bank cash.CoinMover
}

var _ tollgate.Handler = InitializeHandler{}

func (h InitializeHandler) Check(ctx tollgate.Context, db tollgate.KVStore, tx tollgate.Tx) (*tollgate.CheckResult, error) {
	if _, _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &tollgate.CheckResult{GasAllocated: initializeCost}, nil
}

func (h InitializeHandler) Deliver(ctx tollgate.Context, db tollgate.KVStore, tx tollgate.Tx) (*tollgate.DeliverResult, error) {
	msg, funder, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	now, err := tollgate.BlockUnixTime(ctx)
	if err != nil {
		return nil, err
	}
	defaults, err := loadDefaults(db)
	if err != nil {
		return nil, err
	}

	params := InitParams{
		Authority:          msg.Authority,
		Treasury:           msg.Treasury,
		Denom:              msg.Denom,
		PeriodLength:       msg.PeriodLength,
		PeriodsPerTollgate: msg.PeriodsPerTollgate,
		Allocations:        msg.Allocations,
	}
	if params.Authority == nil {
		params.Authority = funder
	}
	if params.PeriodLength == 0 {
		params.PeriodLength = defaults.PeriodLength
	}
	if params.PeriodsPerTollgate == 0 {
		params.PeriodsPerTollgate = defaults.PeriodsPerTollgate
	}

	summary, err := h.ctrl.Initialize(db, params, *msg.Funds, now)
	if err != nil {
		return nil, err
	}
	if err := h.bank.MoveCoins(db, funder, PoolAddress, *msg.Funds); err != nil {
		return nil, errors.Wrap(err, "fund the pool")
	}

	tollgate.GetLogger(ctx).Info("vesting initialized",
		"authority", params.Authority,
		"recipients", summary.Recipients,
		"funds", msg.Funds.String(),
		"start_time", summary.StartTime)

	return &tollgate.DeliverResult{
		Tags: []common.KVPair{
			tollgate.Tag("action", "initialize"),
			tollgate.Tag("authority", params.Authority.String()),
			tollgate.Tag("recipients", strconv.Itoa(summary.Recipients)),
			tollgate.Tag("vesting_start_time", strconv.FormatInt(int64(summary.StartTime), 10)),
		},
	}, nil
}

// validate returns the message together with the address of the funder.
func (h InitializeHandler) validate(ctx tollgate.Context, db tollgate.KVStore, tx tollgate.Tx) (*InitializeMsg, tollgate.Address, error) {
	var msg InitializeMsg
	if err := tollgate.LoadMsg(tx, &msg); err != nil {
		return nil, nil, errors.Wrap(err, "load msg")
	}
	signer := x.MainSigner(ctx, h.auth)
	if signer == nil {
		return nil, nil, errors.Wrap(errors.ErrUnauthorized, "funder signature missing")
	}
	return &msg, signer.Address(), nil
}

// loadDefaults returns the configured cadence, or the built-in one if none
// is configured.
func loadDefaults(db gconf.ReadStore) (*Defaults, error) {
	var d Defaults
	switch err := gconf.Load(db, defaultsPkg, &d); {
	case err == nil:
		return &d, nil
	case errors.ErrNotFound.Is(err):
		return &Defaults{
			PeriodLength:       DefaultPeriodLength,
			PeriodsPerTollgate: DefaultPeriodsPerTollgate,
		}, nil
	default:
		return nil, err
	}
}

// ApproveTollgateHandler lets the authority unlock the next periods of a
// recipient, or stop its vesting and send the forfeited funds to the
// treasury.
type ApproveTollgateHandler struct {
	auth x.Authenticator
	ctrl Controller
	bank cash.CoinMover
}

var _ tollgate.Handler = ApproveTollgateHandler{}

func (h ApproveTollgateHandler) Check(ctx tollgate.Context, db tollgate.KVStore, tx tollgate.Tx) (*tollgate.CheckResult, error) {
	_, caller, err := h.validate(ctx, tx)
	if err != nil {
		return nil, err
	}
	conf, err := LoadConfig(db)
	if err != nil {
		return nil, err
	}
	if !caller.Equals(conf.Authority) {
		return nil, errors.Wrap(errors.ErrUnauthorized, "only the authority can approve tollgates")
	}
	return &tollgate.CheckResult{GasAllocated: approveTollgateCost}, nil
}

func (h ApproveTollgateHandler) Deliver(ctx tollgate.Context, db tollgate.KVStore, tx tollgate.Tx) (*tollgate.DeliverResult, error) {
	msg, caller, err := h.validate(ctx, tx)
	if err != nil {
		return nil, err
	}
	now, err := tollgate.BlockUnixTime(ctx)
	if err != nil {
		return nil, err
	}
	transfer, err := h.ctrl.ApproveTollgate(db, caller, msg.Recipient, msg.Approve, now)
	if err != nil {
		return nil, err
	}
	if err := settle(db, h.bank, transfer); err != nil {
		return nil, err
	}
	rec, err := h.ctrl.VestingInfo(db, msg.Recipient)
	if err != nil {
		return nil, err
	}

	log := tollgate.GetLogger(ctx)
	tags := []common.KVPair{
		tollgate.Tag("action", "approve_tollgate"),
		tollgate.Tag("recipient", msg.Recipient.String()),
		tollgate.Tag("vesting_status", strconv.FormatBool(rec.Active)),
		tollgate.Tag("approved_periods", strconv.FormatUint(rec.ApprovedPeriods, 10)),
	}
	if transfer != nil {
		tags = append(tags, tollgate.Tag("forfeited_amount", transfer.Amount.String()))
		log.Info("tollgate disapproved",
			"recipient", msg.Recipient,
			"forfeited", transfer.Amount.String())
	} else {
		log.Info("tollgate processed",
			"recipient", msg.Recipient,
			"active", rec.Active,
			"approved_periods", rec.ApprovedPeriods)
	}
	return &tollgate.DeliverResult{Tags: tags}, nil
}

// validate returns the message together with the address of the main
// signer. Whether that signer is the authority is decided by the
// controller.
func (h ApproveTollgateHandler) validate(ctx tollgate.Context, tx tollgate.Tx) (*ApproveTollgateMsg, tollgate.Address, error) {
	var msg ApproveTollgateMsg
	if err := tollgate.LoadMsg(tx, &msg); err != nil {
		return nil, nil, errors.Wrap(err, "load msg")
	}
	signer := x.MainSigner(ctx, h.auth)
	if signer == nil {
		return nil, nil, errors.Wrap(errors.ErrUnauthorized, "authority signature missing")
	}
	return &msg, signer.Address(), nil
}

// ClaimHandler pays out the vested funds to the recipient signing the
// transaction.
type ClaimHandler struct {
	auth x.Authenticator
	ctrl Controller
	bank cash.CoinMover
}

var _ tollgate.Handler = ClaimHandler{}

func (h ClaimHandler) Check(ctx tollgate.Context, db tollgate.KVStore, tx tollgate.Tx) (*tollgate.CheckResult, error) {
	if _, err := h.validate(ctx, tx); err != nil {
		return nil, err
	}
	return &tollgate.CheckResult{GasAllocated: claimCost}, nil
}

func (h ClaimHandler) Deliver(ctx tollgate.Context, db tollgate.KVStore, tx tollgate.Tx) (*tollgate.DeliverResult, error) {
	recipient, err := h.validate(ctx, tx)
	if err != nil {
		return nil, err
	}
	now, err := tollgate.BlockUnixTime(ctx)
	if err != nil {
		return nil, err
	}
	transfer, err := h.ctrl.Claim(db, recipient, now)
	if err != nil {
		return nil, err
	}
	if err := settle(db, h.bank, transfer); err != nil {
		return nil, err
	}
	rec, err := h.ctrl.VestingInfo(db, recipient)
	if err != nil {
		return nil, err
	}

	tollgate.GetLogger(ctx).Info("vesting claimed",
		"recipient", recipient,
		"amount", transfer.Amount.String(),
		"claimed_periods", rec.LastClaimedPeriod)

	return &tollgate.DeliverResult{
		Tags: []common.KVPair{
			tollgate.Tag("action", "claim"),
			tollgate.Tag("recipient", recipient.String()),
			tollgate.Tag("claimed_amount", transfer.Amount.String()),
			tollgate.Tag("claimed_periods", strconv.FormatUint(rec.LastClaimedPeriod, 10)),
		},
	}, nil
}

// validate returns the address of the recipient claiming.
func (h ClaimHandler) validate(ctx tollgate.Context, tx tollgate.Tx) (tollgate.Address, error) {
	var msg ClaimMsg
	if err := tollgate.LoadMsg(tx, &msg); err != nil {
		return nil, errors.Wrap(err, "load msg")
	}
	signer := x.MainSigner(ctx, h.auth)
	if signer == nil {
		return nil, errors.Wrap(errors.ErrUnauthorized, "recipient signature missing")
	}
	return signer.Address(), nil
}

// settle executes the transfer out of the vesting pool. Nil transfers are
// ignored.
func settle(db tollgate.KVStore, bank cash.CoinMover, t *TransferInstruction) error {
	if t == nil {
		return nil
	}
	if err := bank.MoveCoins(db, PoolAddress, t.Destination, t.Amount); err != nil {
		return errors.Wrap(err, "pay out of the vesting pool")
	}
	return nil
}

// RegisterQuery registers the vesting records as "/vestings" and the
// configuration as "/vestingconf".
func RegisterQuery(qr tollgate.QueryRouter) {
	NewBucket().Register("vestings", qr)
	qr.Register("/vestingconf", configQuery{})
}

// configQuery returns the stored configuration, ignoring the query data.
type configQuery struct{}

func (configQuery) Query(db tollgate.ReadOnlyKVStore, mod string, data []byte) ([]tollgate.Model, error) {
	if mod != tollgate.KeyQueryMod {
		return nil, errors.Wrapf(errors.ErrInput, "unknown query mode %q", mod)
	}
	conf, err := LoadConfig(db)
	switch {
	case errors.ErrNotFound.Is(err):
		return nil, nil
	case err != nil:
		return nil, err
	}
	raw, err := conf.Marshal()
	if err != nil {
		return nil, errors.Wrap(errors.ErrModel, err.Error())
	}
	return []tollgate.Model{tollgate.Pair([]byte(configPkg), raw)}, nil
}
