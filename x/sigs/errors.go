package sigs

import (
	"github.com/iov-one/tollgate/errors"
)

// ErrInvalidSequence is returned when a signature carries a sequence that
// does not match the one stored for its signer.
var ErrInvalidSequence = errors.Register(120, "invalid sequence number")
