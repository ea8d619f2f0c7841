package utils

import (
	"time"

	"github.com/iov-one/tollgate"
)

// Logging is a decorator that writes one log line for every processed
// transaction, including how long the processing took.
type Logging struct{}

var _ tollgate.Decorator = Logging{}

// NewLogging creates a Logging decorator.
func NewLogging() Logging {
	return Logging{}
}

// Check logs failures as errors and successes at debug level.
func (Logging) Check(ctx tollgate.Context, db tollgate.KVStore, tx tollgate.Tx, next tollgate.Checker) (*tollgate.CheckResult, error) {
	start := time.Now()
	res, err := next.Check(ctx, db, tx)
	var msg string
	if err == nil {
		msg = res.Log
	}
	logDuration(ctx, start, msg, err, true)
	return res, err
}

// Deliver logs failures as errors and successes at info level.
func (Logging) Deliver(ctx tollgate.Context, db tollgate.KVStore, tx tollgate.Tx, next tollgate.Deliverer) (*tollgate.DeliverResult, error) {
	start := time.Now()
	res, err := next.Deliver(ctx, db, tx)
	var msg string
	if err == nil {
		msg = res.Log
	}
	logDuration(ctx, start, msg, err, false)
	return res, err
}

func logDuration(ctx tollgate.Context, start time.Time, msg string, err error, lowPrio bool) {
	logger := tollgate.GetLogger(ctx).With("duration", time.Since(start)/time.Microsecond)

	switch {
	case err != nil:
		logger.Error(msg, "err", err)
	case lowPrio:
		logger.Debug(msg)
	default:
		logger.Info(msg)
	}
}
