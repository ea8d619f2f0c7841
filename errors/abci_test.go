package errors

import (
	stderrors "errors"
	"strings"
	"testing"
)

func TestABCIInfo(t *testing.T) {
	cases := map[string]struct {
		err      error
		debug    bool
		wantCode uint32
		wantLog  string
	}{
		"no error": {
			err:      nil,
			wantCode: SuccessABCICode,
			wantLog:  "",
		},
		"root error": {
			err:      ErrUnauthorized,
			wantCode: ErrUnauthorized.ABCICode(),
			wantLog:  "unauthorized",
		},
		"wrapped root error": {
			err:      Wrap(ErrNotFound, "vesting"),
			wantCode: ErrNotFound.ABCICode(),
			wantLog:  "vesting: not found",
		},
		"stdlib error is redacted": {
			err:      stderrors.New("disk exploded"),
			wantCode: internalABCICode,
			wantLog:  internalABCILog,
		},
		"wrapped stdlib error is redacted": {
			err:      Wrap(stderrors.New("disk exploded"), "cannot write"),
			wantCode: internalABCICode,
			wantLog:  internalABCILog,
		},
		"multi error uses the first code": {
			err:      Append(ErrEmpty, ErrAmount),
			wantCode: ErrEmpty.ABCICode(),
			wantLog:  "2 errors occurred:\n\t* value is empty\n\t* invalid amount\n",
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			code, log := ABCIInfo(tc.err, tc.debug)
			if code != tc.wantCode {
				t.Errorf("want code %d, got %d", tc.wantCode, code)
			}
			if log != tc.wantLog {
				t.Errorf("want log %q, got %q", tc.wantLog, log)
			}
		})
	}
}

func TestABCIInfoDebugExposesInternal(t *testing.T) {
	code, log := ABCIInfo(stderrors.New("disk exploded"), true)
	if code != internalABCICode {
		t.Fatalf("unexpected code %d", code)
	}
	if !strings.Contains(log, "disk exploded") {
		t.Fatalf("unexpected log %q", log)
	}
}

func TestABCIError(t *testing.T) {
	err := ABCIError(ErrNotFound.ABCICode(), "recipient")
	if !ErrNotFound.Is(err) {
		t.Fatalf("want not found, got %v", err)
	}
	if code := abciCode(ABCIError(987654, "unknown")); code != internalABCICode {
		t.Fatalf("unexpected code %d", code)
	}
}

func TestRedact(t *testing.T) {
	if err := Redact(Wrap(ErrPanic, "secret"), false); err.Error() != internalABCILog {
		t.Fatalf("panic not redacted: %v", err)
	}
	if err := Redact(ErrNotFound, false); err != ErrNotFound {
		t.Fatalf("registered error redacted: %v", err)
	}
	raw := stderrors.New("raw")
	if err := Redact(raw, true); err != raw {
		t.Fatalf("debug mode must not redact: %v", err)
	}
}
