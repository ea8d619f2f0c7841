package vesting

import (
	"github.com/iov-one/tollgate"
	"github.com/iov-one/tollgate/coin"
	"github.com/iov-one/tollgate/errors"
)

// InitParams is everything needed to set up the vesting, except for the
// start time which is always the time of the initialization.
type InitParams struct {
	Authority          tollgate.Address
	Treasury           tollgate.Address
	Denom              string
	PeriodLength       int64
	PeriodsPerTollgate uint64
	Allocations        []*Allocation
}

// InitSummary describes a successful initialization.
type InitSummary struct {
	Recipients int
	StartTime  tollgate.UnixTime
}

// Controller exposes the operations of the vesting. Every call is a single
// read-modify-write against the store. Funds are never moved by the
// controller, returned transfer instructions must be settled by the
// caller.
type Controller interface {
	Initialize(db tollgate.KVStore, params InitParams, funds coin.Coin, now tollgate.UnixTime) (*InitSummary, error)
	ApproveTollgate(db tollgate.KVStore, caller, recipient tollgate.Address, approve bool, now tollgate.UnixTime) (*TransferInstruction, error)
	Claim(db tollgate.KVStore, caller tollgate.Address, now tollgate.UnixTime) (*TransferInstruction, error)
	VestingInfo(db tollgate.ReadOnlyKVStore, recipient tollgate.Address) (*VestingRecord, error)
}

// BaseController is the ScheduleStore backed implementation of the
// Controller.
type BaseController struct {
	store ScheduleStore
}

var _ Controller = BaseController{}

// NewController returns a controller operating on the given store.
func NewController(store ScheduleStore) BaseController {
	return BaseController{store: store}
}

// Initialize creates the schedules of all allocations, starting now.
func (c BaseController) Initialize(db tollgate.KVStore, params InitParams, funds coin.Coin, now tollgate.UnixTime) (*InitSummary, error) {
	conf := &GlobalConfig{
		Authority:          params.Authority,
		Treasury:           params.Treasury,
		Denom:              params.Denom,
		PeriodLength:       params.PeriodLength,
		PeriodsPerTollgate: params.PeriodsPerTollgate,
		StartTime:          now,
	}
	records, err := c.store.Initialize(db, conf, funds, params.Allocations)
	if err != nil {
		return nil, err
	}
	return &InitSummary{
		Recipients: len(records),
		StartTime:  now,
	}, nil
}

// ApproveTollgate approves or disapproves the next tollgate of the
// recipient. Only the authority can call it.
func (c BaseController) ApproveTollgate(db tollgate.KVStore, caller, recipient tollgate.Address, approve bool, now tollgate.UnixTime) (*TransferInstruction, error) {
	conf, err := c.store.Config(db)
	if err != nil {
		return nil, err
	}
	if !caller.Equals(conf.Authority) {
		return nil, errors.Wrap(errors.ErrUnauthorized, "only the authority can approve tollgates")
	}
	rec, err := c.store.Get(db, recipient)
	if err != nil {
		return nil, err
	}
	transfer, err := ApproveTollgate(conf, rec, approve, now)
	if err != nil {
		return nil, err
	}
	if err := c.store.Put(db, recipient, rec); err != nil {
		return nil, err
	}
	return transfer, nil
}

// Claim pays out to the caller everything vested since the last claim.
func (c BaseController) Claim(db tollgate.KVStore, caller tollgate.Address, now tollgate.UnixTime) (*TransferInstruction, error) {
	conf, err := c.store.Config(db)
	if err != nil {
		return nil, err
	}
	rec, err := c.store.Get(db, caller)
	if err != nil {
		return nil, err
	}
	transfer, err := Claim(conf, rec, now)
	if err != nil {
		return nil, err
	}
	if err := c.store.Put(db, caller, rec); err != nil {
		return nil, err
	}
	return transfer, nil
}

// VestingInfo returns the current record of the recipient.
func (c BaseController) VestingInfo(db tollgate.ReadOnlyKVStore, recipient tollgate.Address) (*VestingRecord, error) {
	return c.store.Get(db, recipient)
}
