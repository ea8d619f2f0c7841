package app

import (
	"github.com/iov-one/tollgate"
	"github.com/iov-one/tollgate/errors"
	abci "github.com/tendermint/tendermint/abci/types"
)

// BaseApp adds DeliverTx, CheckTx, and BeginBlock handlers to the storage
// and query functionality of StoreApp.
type BaseApp struct {
	*StoreApp
	decoder tollgate.TxDecoder
	handler tollgate.Handler
	debug   bool
}

var _ abci.Application = BaseApp{}

// NewBaseApp constructs a basic abci application.
func NewBaseApp(store *StoreApp, decoder tollgate.TxDecoder, handler tollgate.Handler, debug bool) BaseApp {
	return BaseApp{
		StoreApp: store,
		decoder:  decoder,
		handler:  handler,
		debug:    debug,
	}
}

// DeliverTx implements ABCI. It dispatches to the handler.
func (b BaseApp) DeliverTx(txBytes []byte) abci.ResponseDeliverTx {
	tx, err := b.loadTx(txBytes)
	if err != nil {
		return tollgate.DeliverTxError(err, b.debug)
	}

	ctx := tollgate.WithLogInfo(b.BlockContext(),
		"call", "deliver_tx",
		"path", tollgate.GetPath(tx))

	res, err := b.handler.Deliver(ctx, b.DeliverStore(), tx)
	return tollgate.DeliverOrError(res, err, b.debug)
}

// CheckTx implements ABCI. It dispatches to the handler.
func (b BaseApp) CheckTx(txBytes []byte) abci.ResponseCheckTx {
	tx, err := b.loadTx(txBytes)
	if err != nil {
		return tollgate.CheckTxError(err, b.debug)
	}

	ctx := tollgate.WithLogInfo(b.BlockContext(),
		"call", "check_tx",
		"path", tollgate.GetPath(tx))

	res, err := b.handler.Check(ctx, b.CheckStore(), tx)
	return tollgate.CheckOrError(res, err, b.debug)
}

// loadTx calls the decoder, and captures any panics.
func (b BaseApp) loadTx(txBytes []byte) (tx tollgate.Tx, err error) {
	defer errors.Recover(&err)
	tx, err = b.decoder(txBytes)
	if err != nil {
		return nil, errors.Wrap(errors.ErrInput, err.Error())
	}
	return tx, nil
}
