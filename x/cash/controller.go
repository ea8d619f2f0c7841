package cash

import (
	"github.com/iov-one/tollgate"
	"github.com/iov-one/tollgate/coin"
	"github.com/iov-one/tollgate/errors"
)

// CoinMover is an interface for moving coins between accounts.
type CoinMover interface {
	// MoveCoins is a transfer from one account to another. It fails if
	// the source does not hold enough of the given coin.
	MoveCoins(db tollgate.KVStore, src, dest tollgate.Address, amount coin.Coin) error
}

// CoinMinter is an interface to create new coins.
type CoinMinter interface {
	CoinMint(db tollgate.KVStore, dest tollgate.Address, amount coin.Coin) error
}

// Balancer returns the coins held by an address.
type Balancer interface {
	Balance(db tollgate.ReadOnlyKVStore, addr tollgate.Address) (coin.Coins, error)
}

// Controller is the functionality needed by the send handler and by the
// extensions settling through cash.
type Controller interface {
	CoinMover
	CoinMinter
	Balancer
}

// BaseController is the bucket backed implementation of Controller.
type BaseController struct {
	bucket Bucket
}

var _ Controller = BaseController{}

// NewController returns base controller implementation.
func NewController(bucket Bucket) BaseController {
	return BaseController{bucket: bucket}
}

// Balance returns the coins held by the given address. Unknown addresses
// hold nothing.
func (c BaseController) Balance(db tollgate.ReadOnlyKVStore, addr tollgate.Address) (coin.Coins, error) {
	if err := addr.Validate(); err != nil {
		return nil, errors.Wrap(err, "address")
	}
	return c.bucket.GetOrCreate(db, addr)
}

// MoveCoins moves the given amount from src to dest. It fails if src does
// not hold sufficient coins.
func (c BaseController) MoveCoins(db tollgate.KVStore, src, dest tollgate.Address, amount coin.Coin) error {
	if !amount.IsPositive() {
		return errors.Wrapf(errors.ErrAmount, "non-positive amount: %s", amount)
	}
	if err := amount.Validate(); err != nil {
		return errors.Wrap(err, "amount")
	}

	sender, err := c.bucket.GetOrCreate(db, src)
	if err != nil {
		return errors.Wrap(err, "sender")
	}
	if !sender.Contains(amount) {
		return errors.Wrapf(errors.ErrInsufficientAmount, "funds of %s", src)
	}
	sender, err = sender.Subtract(amount)
	if err != nil {
		return errors.Wrap(err, "subtract")
	}
	if err := c.bucket.Save(db, src, sender); err != nil {
		return errors.Wrap(err, "save sender")
	}

	// Recipient is loaded after the sender is saved so that moving coins
	// to self leaves the wallet unchanged.
	recipient, err := c.bucket.GetOrCreate(db, dest)
	if err != nil {
		return errors.Wrap(err, "recipient")
	}
	recipient, err = recipient.Add(amount)
	if err != nil {
		return errors.Wrap(err, "add")
	}
	return c.bucket.Save(db, dest, recipient)
}

// CoinMint attempts to add the given amount of coins to the destination
// address. Fails if it overflows the wallet.
func (c BaseController) CoinMint(db tollgate.KVStore, dest tollgate.Address, amount coin.Coin) error {
	if err := amount.Validate(); err != nil {
		return errors.Wrap(err, "amount")
	}
	if err := dest.Validate(); err != nil {
		return errors.Wrap(err, "destination")
	}
	wallet, err := c.bucket.GetOrCreate(db, dest)
	if err != nil {
		return err
	}
	wallet, err = wallet.Add(amount)
	if err != nil {
		return err
	}
	return c.bucket.Save(db, dest, wallet)
}
