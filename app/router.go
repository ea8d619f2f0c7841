package app

import (
	"fmt"
	"regexp"

	"github.com/iov-one/tollgate"
	"github.com/iov-one/tollgate/errors"
)

// isPath is the RegExp to ensure the routes make sense.
var isPath = regexp.MustCompile(`^[a-zA-Z0-9_\-/]+$`).MatchString

// Router allows us to register many handlers with different paths and then
// direct each message to the proper handler.
//
// Minimal interface modeled after net/http.ServeMux
type Router struct {
	routes map[string]tollgate.Handler
}

var _ tollgate.Registry = (*Router)(nil)
var _ tollgate.Handler = (*Router)(nil)

// NewRouter returns a new empty router instance.
func NewRouter() *Router {
	return &Router{
		routes: make(map[string]tollgate.Handler, 10),
	}
}

// Handle adds a new Handler for the given path. Panics if another Handler
// was already registered or the path is malformed.
func (r *Router) Handle(path string, h tollgate.Handler) {
	if !isPath(path) {
		panic(fmt.Sprintf("invalid path: %q", path))
	}
	if _, ok := r.routes[path]; ok {
		panic(fmt.Sprintf("re-registering route: %s", path))
	}
	r.routes[path] = h
}

// route returns the Handler registered for the path of the transaction
// message. If no path is found, a handler that always fails is returned.
func (r *Router) route(tx tollgate.Tx) (tollgate.Handler, error) {
	msg, err := tx.GetMsg()
	if err != nil {
		return nil, errors.Wrap(err, "cannot load msg")
	}
	if msg == nil {
		return nil, errors.Wrap(errors.ErrMsg, "transaction carries no message")
	}
	if h, ok := r.routes[msg.Path()]; ok {
		return h, nil
	}
	return notFoundHandler(msg.Path()), nil
}

// Check dispatches to the handler registered for the message path.
func (r *Router) Check(ctx tollgate.Context, db tollgate.KVStore, tx tollgate.Tx) (*tollgate.CheckResult, error) {
	h, err := r.route(tx)
	if err != nil {
		return nil, err
	}
	return h.Check(ctx, db, tx)
}

// Deliver dispatches to the handler registered for the message path.
func (r *Router) Deliver(ctx tollgate.Context, db tollgate.KVStore, tx tollgate.Tx) (*tollgate.DeliverResult, error) {
	h, err := r.route(tx)
	if err != nil {
		return nil, err
	}
	return h.Deliver(ctx, db, tx)
}

type notFoundHandler string

func (path notFoundHandler) Check(tollgate.Context, tollgate.KVStore, tollgate.Tx) (*tollgate.CheckResult, error) {
	return nil, errors.Wrapf(errors.ErrNotFound, "no handler for message path %q", string(path))
}

func (path notFoundHandler) Deliver(tollgate.Context, tollgate.KVStore, tollgate.Tx) (*tollgate.DeliverResult, error) {
	return nil, errors.Wrapf(errors.ErrNotFound, "no handler for message path %q", string(path))
}
