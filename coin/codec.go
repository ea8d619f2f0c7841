package coin

import (
	"github.com/gogo/protobuf/proto"
)

// Coin is a single denomination amount of a fungible asset.
type Coin struct {
	// Ticker is the denomination name, for example uluna.
	Ticker string `protobuf:"bytes,1,opt,name=ticker,proto3" json:"ticker"`
	// Amount is expressed in the smallest, indivisible unit.
	Amount uint64 `protobuf:"varint,2,opt,name=amount,proto3" json:"amount"`
}

// coinPB is the wire representation of a Coin. It has no methods besides
// those required by the proto.Message interface, so that the reflection
// based codec is used instead of Coin's own Marshal.
type coinPB Coin

func (m *coinPB) Reset()         { *m = coinPB{} }
func (m *coinPB) String() string { return proto.CompactTextString(m) }
func (*coinPB) ProtoMessage()    {}

func (m *Coin) Reset()      { *m = Coin{} }
func (*Coin) ProtoMessage() {}

// Marshal serializes the coin using protobuf encoding.
func (m *Coin) Marshal() ([]byte, error) {
	return proto.Marshal((*coinPB)(m))
}

// Unmarshal deserializes the coin from protobuf encoding.
func (m *Coin) Unmarshal(raw []byte) error {
	return proto.Unmarshal(raw, (*coinPB)(m))
}
