/*
Package errors implements the error handling used across the application.

Every error returned by a handler, a model or a store should wrap one of the
root errors registered with Register. A root error carries a unique ABCI code
that is exposed to clients, while the wrapping layers add context for
humans and a single stack trace for debugging.

	if err := rec.Validate(); err != nil {
		return errors.Wrap(err, "vesting record")
	}

Test for the root cause with the Is method of the root error:

	if errors.ErrNotFound.Is(err) {
		...
	}

Any error that does not wrap a registered root error is considered internal
and its message is redacted before being sent to the client, unless the
application runs in debug mode.
*/
package errors
