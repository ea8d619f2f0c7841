package orm

import (
	"testing"

	"github.com/gogo/protobuf/proto"
	"github.com/iov-one/tollgate"
	"github.com/iov-one/tollgate/errors"
	"github.com/iov-one/tollgate/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type counter struct {
	Count int64 `protobuf:"varint,1,opt,name=count,proto3" json:"count,omitempty"`
}

type counterPB counter

func (m *counterPB) Reset()         { *m = counterPB{} }
func (m *counterPB) String() string { return proto.CompactTextString(m) }
func (*counterPB) ProtoMessage()    {}

func (c *counter) Marshal() ([]byte, error) { return proto.Marshal((*counterPB)(c)) }
func (c *counter) Unmarshal(raw []byte) error {
	return proto.Unmarshal(raw, (*counterPB)(c))
}

func (c *counter) Validate() error {
	if c.Count < 0 {
		return errors.Wrap(errors.ErrModel, "negative count")
	}
	return nil
}

type other struct{ counter }

func TestModelBucket(t *testing.T) {
	db := store.MemStore()
	b := NewModelBucket("cnts", &counter{})

	require.NoError(t, b.Put(db, []byte("a"), &counter{Count: 1}))
	require.NoError(t, b.Put(db, []byte("b"), &counter{Count: 2}))

	var c counter
	require.NoError(t, b.One(db, []byte("a"), &c))
	assert.Equal(t, int64(1), c.Count)

	err := b.One(db, []byte("missing"), &c)
	assert.True(t, errors.ErrNotFound.Is(err))

	err = b.One(db, []byte("a"), &other{})
	assert.True(t, errors.ErrType.Is(err))

	err = b.Put(db, []byte("c"), &counter{Count: -1})
	assert.True(t, errors.ErrModel.Is(err))

	assert.NoError(t, b.Has(db, []byte("b")))
	require.NoError(t, b.Delete(db, []byte("b")))
	assert.True(t, errors.ErrNotFound.Is(b.Has(db, []byte("b"))))
	assert.True(t, errors.ErrNotFound.Is(b.Delete(db, []byte("b"))))
}

func TestModelBucketIterate(t *testing.T) {
	db := store.MemStore()
	b := NewModelBucket("cnts", &counter{})
	// A record in another bucket that shares the name prefix must not be
	// visited.
	require.NoError(t, NewModelBucket("cntsx", &counter{}).Put(db, []byte("z"), &counter{Count: 9}))

	for i, k := range []string{"c", "a", "b"} {
		require.NoError(t, b.Put(db, []byte(k), &counter{Count: int64(i)}))
	}

	var (
		keys []string
		sum  int64
		c    counter
	)
	err := b.Iterate(db, &c, func(key []byte) error {
		keys = append(keys, string(key))
		sum += c.Count
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "c"}, keys)
	assert.Equal(t, int64(3), sum)
}

func TestBucketQuery(t *testing.T) {
	db := store.MemStore()
	b := NewModelBucket("cnts", &counter{})
	for _, k := range []string{"aa", "ab", "b"} {
		require.NoError(t, b.Put(db, []byte(k), &counter{Count: 1}))
	}

	qr := tollgate.NewQueryRouter()
	b.Register("counters", qr)

	h, mod := qr.Handler("/counters?prefix")
	require.NotNil(t, h)
	assert.Equal(t, tollgate.PrefixQueryMod, mod)

	res, err := h.Query(db, mod, []byte("a"))
	require.NoError(t, err)
	require.Len(t, res, 2)
	assert.Equal(t, []byte("cnts:aa"), res[0].Key)
	assert.Equal(t, []byte("cnts:ab"), res[1].Key)

	res, err = h.Query(db, tollgate.KeyQueryMod, []byte("b"))
	require.NoError(t, err)
	require.Len(t, res, 1)

	res, err = h.Query(db, tollgate.KeyQueryMod, []byte("nope"))
	require.NoError(t, err)
	assert.Empty(t, res)

	_, err = h.Query(db, "range", nil)
	assert.True(t, errors.ErrInput.Is(err))
}

func TestPrefixEnd(t *testing.T) {
	assert.Equal(t, []byte("ab"), prefixEnd([]byte("aa")))
	assert.Equal(t, []byte{0x02}, prefixEnd([]byte{0x01, 0xFF}))
	assert.Nil(t, prefixEnd([]byte{0xFF, 0xFF}))
}
