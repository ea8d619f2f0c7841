package tollgate

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/iov-one/tollgate/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUnixTimeUnmarshal(t *testing.T) {
	cases := map[string]struct {
		raw     string
		want    UnixTime
		wantErr *errors.Error
	}{
		"number": {
			raw:  "1000",
			want: 1000,
		},
		"time string": {
			raw:  `"2019-04-01T00:00:00Z"`,
			want: UnixTime(time.Date(2019, 4, 1, 0, 0, 0, 0, time.UTC).Unix()),
		},
		"negative": {
			raw:     "-5",
			wantErr: errors.ErrInput,
		},
		"garbage": {
			raw:     `"tomorrow"`,
			wantErr: errors.ErrInput,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			var got UnixTime
			err := json.Unmarshal([]byte(tc.raw), &got)
			if tc.wantErr != nil {
				require.True(t, tc.wantErr.Is(err), "unexpected error: %v", err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestUnixTimeAdd(t *testing.T) {
	var start UnixTime = 100
	assert.Equal(t, UnixTime(160), start.Add(time.Minute))
	assert.Equal(t, time.Unix(100, 0).UTC(), start.Time())
	assert.True(t, UnixTime(0).IsZero())
	assert.Error(t, UnixTime(-1).Validate())
}
