package coin

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/iov-one/tollgate/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCoinArithmetic(t *testing.T) {
	luna := func(n uint64) Coin { return NewCoin(n, "uluna") }

	sum, err := luna(5).Add(luna(7))
	require.NoError(t, err)
	assert.Equal(t, luna(12), sum)

	_, err = luna(math.MaxUint64).Add(luna(1))
	assert.True(t, errors.ErrOverflow.Is(err))

	_, err = luna(5).Add(NewCoin(1, "uatom"))
	assert.True(t, errors.ErrCurrency.Is(err))

	sum, err = Coin{}.Add(luna(3))
	require.NoError(t, err)
	assert.Equal(t, luna(3), sum)

	diff, err := luna(10).Subtract(luna(4))
	require.NoError(t, err)
	assert.Equal(t, luna(6), diff)

	_, err = luna(3).Subtract(luna(4))
	assert.True(t, errors.ErrInsufficientAmount.Is(err))

	prod, err := luna(25).Multiply(4)
	require.NoError(t, err)
	assert.Equal(t, luna(100), prod)

	_, err = luna(math.MaxUint64 / 2).Multiply(3)
	assert.True(t, errors.ErrOverflow.Is(err))
}

func TestCoinDivide(t *testing.T) {
	cases := map[string]struct {
		coin     Coin
		pieces   uint64
		wantOne  Coin
		wantRest Coin
		wantErr  *errors.Error
	}{
		"exact split": {
			coin:     NewCoin(300000000000, "uluna"),
			pieces:   3,
			wantOne:  NewCoin(100000000000, "uluna"),
			wantRest: NewCoin(0, "uluna"),
		},
		"leftover": {
			coin:     NewCoin(300000000001, "uluna"),
			pieces:   12,
			wantOne:  NewCoin(25000000000, "uluna"),
			wantRest: NewCoin(1, "uluna"),
		},
		"smaller than pieces": {
			coin:     NewCoin(1, "uluna"),
			pieces:   3,
			wantOne:  NewCoin(0, "uluna"),
			wantRest: NewCoin(1, "uluna"),
		},
		"zero pieces": {
			coin:    NewCoin(1, "uluna"),
			pieces:  0,
			wantErr: errors.ErrInput,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			one, rest, err := tc.coin.Divide(tc.pieces)
			if tc.wantErr != nil {
				require.True(t, tc.wantErr.Is(err), "unexpected error: %v", err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.wantOne, one)
			assert.Equal(t, tc.wantRest, rest)
		})
	}
}

func TestCoinValidate(t *testing.T) {
	assert.NoError(t, NewCoin(1, "uluna").Validate())
	assert.NoError(t, NewCoin(0, "IOV").Validate())
	assert.Error(t, NewCoin(1, "").Validate())
	assert.Error(t, NewCoin(1, "1abc").Validate())
	assert.Error(t, NewCoin(1, "ab").Validate())
}

func TestCoinJSON(t *testing.T) {
	cases := map[string]struct {
		raw     string
		want    Coin
		wantErr bool
	}{
		"human format": {
			raw:  `"1000 uluna"`,
			want: NewCoin(1000, "uluna"),
		},
		"object": {
			raw:  `{"ticker": "uluna", "amount": 42}`,
			want: NewCoin(42, "uluna"),
		},
		"negative human": {
			raw:     `"-4 uluna"`,
			wantErr: true,
		},
		"no ticker": {
			raw:     `"12"`,
			wantErr: true,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			var got Coin
			err := json.Unmarshal([]byte(tc.raw), &got)
			if tc.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestCoinString(t *testing.T) {
	c := NewCoin(77, "uluna")
	parsed, err := ParseHumanFormat(c.String())
	require.NoError(t, err)
	assert.Equal(t, c, parsed)
}

func TestCoinProtobuf(t *testing.T) {
	c := NewCoinp(300000000001, "uluna")
	raw, err := c.Marshal()
	require.NoError(t, err)

	var got Coin
	require.NoError(t, got.Unmarshal(raw))
	assert.Equal(t, *c, got)
}
