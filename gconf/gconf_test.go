package gconf

import (
	"encoding/json"
	"testing"

	"github.com/gogo/protobuf/proto"
	"github.com/iov-one/tollgate"
	"github.com/iov-one/tollgate/errors"
	"github.com/iov-one/tollgate/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type myConfig struct {
	Number int64  `protobuf:"varint,1,opt,name=number,proto3" json:"number"`
	Text   string `protobuf:"bytes,2,opt,name=text,proto3" json:"text"`
}

type myConfigPB myConfig

func (m *myConfigPB) Reset()         { *m = myConfigPB{} }
func (m *myConfigPB) String() string { return proto.CompactTextString(m) }
func (*myConfigPB) ProtoMessage()    {}

func (c *myConfig) Marshal() ([]byte, error) { return proto.Marshal((*myConfigPB)(c)) }
func (c *myConfig) Unmarshal(raw []byte) error {
	return proto.Unmarshal(raw, (*myConfigPB)(c))
}

func (c *myConfig) Validate() error {
	if c.Number <= 0 {
		return errors.Field("Number", errors.ErrInput, "must be positive")
	}
	return nil
}

func TestSaveLoad(t *testing.T) {
	db := store.MemStore()

	var got myConfig
	err := Load(db, "mine", &got)
	assert.True(t, errors.ErrNotFound.Is(err))
	ok, err := Exists(db, "mine")
	require.NoError(t, err)
	assert.False(t, ok)

	err = Save(db, "mine", &myConfig{Number: -1})
	assert.True(t, errors.ErrInput.Is(err))

	want := myConfig{Number: 7, Text: "seven"}
	require.NoError(t, Save(db, "mine", &want))
	require.NoError(t, Load(db, "mine", &got))
	assert.Equal(t, want, got)

	ok, err = Exists(db, "mine")
	require.NoError(t, err)
	assert.True(t, ok)

	raw, err := db.Get([]byte("_c:mine"))
	require.NoError(t, err)
	assert.NotNil(t, raw)
}

func TestInitConfig(t *testing.T) {
	cases := map[string]struct {
		genesis string
		wantErr *errors.Error
		want    myConfig
	}{
		"configured": {
			genesis: `{"conf": {"mine": {"number": 3, "text": "x"}}}`,
			want:    myConfig{Number: 3, Text: "x"},
		},
		"missing": {
			genesis: `{"conf": {"other": {"number": 3}}}`,
			wantErr: errors.ErrNotFound,
		},
		"invalid": {
			genesis: `{"conf": {"mine": {"number": 0}}}`,
			wantErr: errors.ErrInput,
		},
		"malformed": {
			genesis: `{"conf": {"mine": {"number": "three"}}}`,
			wantErr: errors.ErrInput,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			var opts tollgate.Options
			require.NoError(t, json.Unmarshal([]byte(tc.genesis), &opts))

			db := store.MemStore()
			err := InitConfig(db, opts, "mine", &myConfig{})
			if tc.wantErr != nil {
				require.True(t, tc.wantErr.Is(err), "unexpected error: %v", err)
				return
			}
			require.NoError(t, err)

			var got myConfig
			require.NoError(t, Load(db, "mine", &got))
			assert.Equal(t, tc.want, got)
		})
	}
}
