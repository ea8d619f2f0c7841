/*
Package utils provides decorators that every tollgate application stacks
in front of its message router: panic recovery, request logging and
savepoints that discard the writes of a failed transaction.
*/
package utils

import (
	"github.com/iov-one/tollgate"
	"github.com/iov-one/tollgate/errors"
)

// Recovery is a decorator to recover from panics in transactions,
// so we can log them as errors.
type Recovery struct{}

var _ tollgate.Decorator = Recovery{}

// NewRecovery creates a Recovery decorator.
func NewRecovery() Recovery {
	return Recovery{}
}

// Check turns panics into ErrPanic.
func (Recovery) Check(ctx tollgate.Context, db tollgate.KVStore, tx tollgate.Tx, next tollgate.Checker) (_ *tollgate.CheckResult, err error) {
	defer errors.Recover(&err)
	return next.Check(ctx, db, tx)
}

// Deliver turns panics into ErrPanic.
func (Recovery) Deliver(ctx tollgate.Context, db tollgate.KVStore, tx tollgate.Tx, next tollgate.Deliverer) (_ *tollgate.DeliverResult, err error) {
	defer errors.Recover(&err)
	return next.Deliver(ctx, db, tx)
}
