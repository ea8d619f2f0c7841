package vesting

import (
	"github.com/gogo/protobuf/proto"
	"github.com/iov-one/tollgate"
	"github.com/iov-one/tollgate/coin"
)

// GlobalConfig is the immutable configuration of the vesting pool. It is
// created once by the initialization and never changes afterwards.
type GlobalConfig struct {
	// Authority is permitted to approve and disapprove tollgates.
	Authority tollgate.Address `protobuf:"bytes,1,opt,name=authority,proto3" json:"authority"`
	// Treasury receives the funds forfeited by a disapproval.
	Treasury tollgate.Address `protobuf:"bytes,2,opt,name=treasury,proto3" json:"treasury"`
	// Denom is the ticker of the only asset being distributed.
	Denom string `protobuf:"bytes,3,opt,name=denom,proto3" json:"denom"`
	// PeriodLength is the duration of a single period in seconds.
	PeriodLength int64 `protobuf:"varint,4,opt,name=period_length,json=periodLength,proto3" json:"period_length"`
	// PeriodsPerTollgate is the number of periods unlocked by a single
	// tollgate approval.
	PeriodsPerTollgate uint64 `protobuf:"varint,5,opt,name=periods_per_tollgate,json=periodsPerTollgate,proto3" json:"periods_per_tollgate"`
	// StartTime is when the first period begins.
	StartTime tollgate.UnixTime `protobuf:"varint,6,opt,name=start_time,json=startTime,proto3" json:"start_time"`
}

type globalConfigPB GlobalConfig

func (m *globalConfigPB) Reset()         { *m = globalConfigPB{} }
func (m *globalConfigPB) String() string { return proto.CompactTextString(m) }
func (*globalConfigPB) ProtoMessage()    {}

func (m *GlobalConfig) Marshal() ([]byte, error) {
	return proto.Marshal((*globalConfigPB)(m))
}

func (m *GlobalConfig) Unmarshal(raw []byte) error {
	return proto.Unmarshal(raw, (*globalConfigPB)(m))
}

// Defaults is the cadence used by a runtime initialization that does not
// declare its own.
type Defaults struct {
	PeriodLength       int64  `protobuf:"varint,1,opt,name=period_length,json=periodLength,proto3" json:"period_length"`
	PeriodsPerTollgate uint64 `protobuf:"varint,2,opt,name=periods_per_tollgate,json=periodsPerTollgate,proto3" json:"periods_per_tollgate"`
}

type defaultsPB Defaults

func (m *defaultsPB) Reset()         { *m = defaultsPB{} }
func (m *defaultsPB) String() string { return proto.CompactTextString(m) }
func (*defaultsPB) ProtoMessage()    {}

func (m *Defaults) Marshal() ([]byte, error) {
	return proto.Marshal((*defaultsPB)(m))
}

func (m *Defaults) Unmarshal(raw []byte) error {
	return proto.Unmarshal(raw, (*defaultsPB)(m))
}

// VestingRecord is the schedule of a single recipient.
type VestingRecord struct {
	Recipient         tollgate.Address `protobuf:"bytes,1,opt,name=recipient,proto3" json:"recipient"`
	TotalAmount       uint64           `protobuf:"varint,2,opt,name=total_amount,json=totalAmount,proto3" json:"total_amount"`
	TotalPeriods      uint64           `protobuf:"varint,3,opt,name=total_periods,json=totalPeriods,proto3" json:"total_periods"`
	AmountPerPeriod   uint64           `protobuf:"varint,4,opt,name=amount_per_period,json=amountPerPeriod,proto3" json:"amount_per_period"`
	ApprovedPeriods   uint64           `protobuf:"varint,5,opt,name=approved_periods,json=approvedPeriods,proto3" json:"approved_periods"`
	LastClaimedPeriod uint64           `protobuf:"varint,6,opt,name=last_claimed_period,json=lastClaimedPeriod,proto3" json:"last_claimed_period"`
	ClaimedAmount     uint64           `protobuf:"varint,7,opt,name=claimed_amount,json=claimedAmount,proto3" json:"claimed_amount"`
	VestedAmount      uint64           `protobuf:"varint,8,opt,name=vested_amount,json=vestedAmount,proto3" json:"vested_amount"`
	Active            bool             `protobuf:"varint,9,opt,name=active,proto3" json:"active"`
}

type vestingRecordPB VestingRecord

func (m *vestingRecordPB) Reset()         { *m = vestingRecordPB{} }
func (m *vestingRecordPB) String() string { return proto.CompactTextString(m) }
func (*vestingRecordPB) ProtoMessage()    {}

func (m *VestingRecord) Marshal() ([]byte, error) {
	return proto.Marshal((*vestingRecordPB)(m))
}

func (m *VestingRecord) Unmarshal(raw []byte) error {
	return proto.Unmarshal(raw, (*vestingRecordPB)(m))
}

// Allocation declares how much a single recipient receives in total.
type Allocation struct {
	Recipient tollgate.Address `protobuf:"bytes,1,opt,name=recipient,proto3" json:"recipient"`
	Amount    uint64           `protobuf:"varint,2,opt,name=amount,proto3" json:"amount"`
}

type allocationPB Allocation

func (m *allocationPB) Reset()         { *m = allocationPB{} }
func (m *allocationPB) String() string { return proto.CompactTextString(m) }
func (*allocationPB) ProtoMessage()    {}

func (m *Allocation) Reset()         { *m = Allocation{} }
func (m *Allocation) String() string { return proto.CompactTextString((*allocationPB)(m)) }
func (*Allocation) ProtoMessage()    {}

// InitializeMsg creates the vesting schedules of all recipients and funds
// the pool from the signer account.
type InitializeMsg struct {
	// Authority defaults to the main signer when not set.
	Authority tollgate.Address `protobuf:"bytes,1,opt,name=authority,proto3" json:"authority,omitempty"`
	Treasury  tollgate.Address `protobuf:"bytes,2,opt,name=treasury,proto3" json:"treasury"`
	Denom     string           `protobuf:"bytes,3,opt,name=denom,proto3" json:"denom"`
	// PeriodLength and PeriodsPerTollgate fall back to the configured
	// defaults when zero.
	PeriodLength       int64         `protobuf:"varint,4,opt,name=period_length,json=periodLength,proto3" json:"period_length,omitempty"`
	PeriodsPerTollgate uint64        `protobuf:"varint,5,opt,name=periods_per_tollgate,json=periodsPerTollgate,proto3" json:"periods_per_tollgate,omitempty"`
	Allocations        []*Allocation `protobuf:"bytes,6,rep,name=allocations,proto3" json:"allocations"`
	Funds              *coin.Coin    `protobuf:"bytes,7,opt,name=funds,proto3" json:"funds"`
}

type initializeMsgPB InitializeMsg

func (m *initializeMsgPB) Reset()         { *m = initializeMsgPB{} }
func (m *initializeMsgPB) String() string { return proto.CompactTextString(m) }
func (*initializeMsgPB) ProtoMessage()    {}

func (m *InitializeMsg) Reset()         { *m = InitializeMsg{} }
func (m *InitializeMsg) String() string { return proto.CompactTextString((*initializeMsgPB)(m)) }
func (*InitializeMsg) ProtoMessage()    {}

func (m *InitializeMsg) Marshal() ([]byte, error) {
	return proto.Marshal((*initializeMsgPB)(m))
}

func (m *InitializeMsg) Unmarshal(raw []byte) error {
	return proto.Unmarshal(raw, (*initializeMsgPB)(m))
}

// ApproveTollgateMsg is sent by the authority to either unlock the next
// block of periods of a recipient or to stop its vesting for good.
type ApproveTollgateMsg struct {
	Recipient tollgate.Address `protobuf:"bytes,1,opt,name=recipient,proto3" json:"recipient"`
	Approve   bool             `protobuf:"varint,2,opt,name=approve,proto3" json:"approve"`
}

type approveTollgateMsgPB ApproveTollgateMsg

func (m *approveTollgateMsgPB) Reset()         { *m = approveTollgateMsgPB{} }
func (m *approveTollgateMsgPB) String() string { return proto.CompactTextString(m) }
func (*approveTollgateMsgPB) ProtoMessage()    {}

func (m *ApproveTollgateMsg) Reset() { *m = ApproveTollgateMsg{} }
func (m *ApproveTollgateMsg) String() string {
	return proto.CompactTextString((*approveTollgateMsgPB)(m))
}
func (*ApproveTollgateMsg) ProtoMessage() {}

func (m *ApproveTollgateMsg) Marshal() ([]byte, error) {
	return proto.Marshal((*approveTollgateMsgPB)(m))
}

func (m *ApproveTollgateMsg) Unmarshal(raw []byte) error {
	return proto.Unmarshal(raw, (*approveTollgateMsgPB)(m))
}

// ClaimMsg is sent by a recipient to receive everything vested so far.
type ClaimMsg struct{}

type claimMsgPB ClaimMsg

func (m *claimMsgPB) Reset()         { *m = claimMsgPB{} }
func (m *claimMsgPB) String() string { return proto.CompactTextString(m) }
func (*claimMsgPB) ProtoMessage()    {}

func (m *ClaimMsg) Reset()         { *m = ClaimMsg{} }
func (m *ClaimMsg) String() string { return proto.CompactTextString((*claimMsgPB)(m)) }
func (*ClaimMsg) ProtoMessage()    {}

func (m *ClaimMsg) Marshal() ([]byte, error) {
	return proto.Marshal((*claimMsgPB)(m))
}

func (m *ClaimMsg) Unmarshal(raw []byte) error {
	return proto.Unmarshal(raw, (*claimMsgPB)(m))
}
