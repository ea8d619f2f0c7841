package cash

import (
	"github.com/gogo/protobuf/proto"
	"github.com/iov-one/tollgate"
	"github.com/iov-one/tollgate/coin"
)

// Set is the set of coins held by a single wallet.
type Set struct {
	Coins []*coin.Coin `protobuf:"bytes,1,rep,name=coins,proto3" json:"coins,omitempty"`
}

type setPB Set

func (m *setPB) Reset()         { *m = setPB{} }
func (m *setPB) String() string { return proto.CompactTextString(m) }
func (*setPB) ProtoMessage()    {}

func (m *Set) Marshal() ([]byte, error) {
	return proto.Marshal((*setPB)(m))
}

func (m *Set) Unmarshal(raw []byte) error {
	return proto.Unmarshal(raw, (*setPB)(m))
}

// SendMsg moves coins from the source account to the destination one.
type SendMsg struct {
	Source      tollgate.Address `protobuf:"bytes,1,opt,name=source,proto3" json:"source,omitempty"`
	Destination tollgate.Address `protobuf:"bytes,2,opt,name=destination,proto3" json:"destination,omitempty"`
	Amount      *coin.Coin       `protobuf:"bytes,3,opt,name=amount,proto3" json:"amount,omitempty"`
	Memo        string           `protobuf:"bytes,4,opt,name=memo,proto3" json:"memo,omitempty"`
}

type sendMsgPB SendMsg

func (m *sendMsgPB) Reset()         { *m = sendMsgPB{} }
func (m *sendMsgPB) String() string { return proto.CompactTextString(m) }
func (*sendMsgPB) ProtoMessage()    {}

func (m *SendMsg) Reset()         { *m = SendMsg{} }
func (m *SendMsg) String() string { return proto.CompactTextString((*sendMsgPB)(m)) }
func (*SendMsg) ProtoMessage()    {}

func (m *SendMsg) Marshal() ([]byte, error) {
	return proto.Marshal((*sendMsgPB)(m))
}

func (m *SendMsg) Unmarshal(raw []byte) error {
	return proto.Unmarshal(raw, (*sendMsgPB)(m))
}
