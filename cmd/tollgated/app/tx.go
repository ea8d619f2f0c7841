package app

import (
	"github.com/gogo/protobuf/proto"
	"github.com/iov-one/tollgate"
	"github.com/iov-one/tollgate/errors"
	"github.com/iov-one/tollgate/x/cash"
	"github.com/iov-one/tollgate/x/sigs"
	"github.com/iov-one/tollgate/x/vesting"
)

// Tx is the transaction format of the tollgate daemon. Exactly one message
// field must be set.
type Tx struct {
	Signatures           []*sigs.StdSignature        `protobuf:"bytes,1,rep,name=signatures,proto3" json:"signatures,omitempty"`
	SendMsg              *cash.SendMsg               `protobuf:"bytes,2,opt,name=send_msg,json=sendMsg,proto3" json:"send_msg,omitempty"`
	InitializeVestingMsg *vesting.InitializeMsg      `protobuf:"bytes,3,opt,name=initialize_vesting_msg,json=initializeVestingMsg,proto3" json:"initialize_vesting_msg,omitempty"`
	ApproveTollgateMsg   *vesting.ApproveTollgateMsg `protobuf:"bytes,4,opt,name=approve_tollgate_msg,json=approveTollgateMsg,proto3" json:"approve_tollgate_msg,omitempty"`
	ClaimVestingMsg      *vesting.ClaimMsg           `protobuf:"bytes,5,opt,name=claim_vesting_msg,json=claimVestingMsg,proto3" json:"claim_vesting_msg,omitempty"`
}

type txPB Tx

func (m *txPB) Reset()         { *m = txPB{} }
func (m *txPB) String() string { return proto.CompactTextString(m) }
func (*txPB) ProtoMessage()    {}

func (m *Tx) Marshal() ([]byte, error) {
	return proto.Marshal((*txPB)(m))
}

func (m *Tx) Unmarshal(raw []byte) error {
	return proto.Unmarshal(raw, (*txPB)(m))
}

// make sure tx fulfills all interfaces
var _ tollgate.Tx = (*Tx)(nil)
var _ sigs.SignedTx = (*Tx)(nil)

// TxDecoder creates a Tx and unmarshals bytes into it.
func TxDecoder(raw []byte) (tollgate.Tx, error) {
	tx := new(Tx)
	if err := tx.Unmarshal(raw); err != nil {
		return nil, errors.Wrapf(errors.ErrInput, "cannot decode transaction: %s", err)
	}
	return tx, nil
}

// GetMsg returns the single message carried by this transaction.
func (tx *Tx) GetMsg() (tollgate.Msg, error) {
	var msgs []tollgate.Msg
	if tx.SendMsg != nil {
		msgs = append(msgs, tx.SendMsg)
	}
	if tx.InitializeVestingMsg != nil {
		msgs = append(msgs, tx.InitializeVestingMsg)
	}
	if tx.ApproveTollgateMsg != nil {
		msgs = append(msgs, tx.ApproveTollgateMsg)
	}
	if tx.ClaimVestingMsg != nil {
		msgs = append(msgs, tx.ClaimVestingMsg)
	}

	switch len(msgs) {
	case 0:
		return nil, errors.Wrap(errors.ErrMsg, "transaction carries no message")
	case 1:
		return msgs[0], nil
	default:
		return nil, errors.Wrapf(errors.ErrMsg, "transaction carries %d messages", len(msgs))
	}
}

// GetSignatures returns the signatures of this transaction.
func (tx *Tx) GetSignatures() []*sigs.StdSignature {
	return tx.Signatures
}

// GetSignBytes returns the bytes to sign. Signatures are not part of the
// signed content.
func (tx *Tx) GetSignBytes() ([]byte, error) {
	unsigned := *tx
	unsigned.Signatures = nil
	return unsigned.Marshal()
}
