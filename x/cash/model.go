package cash

import (
	"github.com/iov-one/tollgate"
	"github.com/iov-one/tollgate/coin"
	"github.com/iov-one/tollgate/errors"
	"github.com/iov-one/tollgate/orm"
)

// BucketName is where we store the balances.
const BucketName = "cash"

var _ orm.Model = (*Set)(nil)

// Validate requires that all coins are valid and sorted by ticker.
func (s *Set) Validate() error {
	return coin.Coins(s.Coins).Validate()
}

// Bucket stores a Set of coins for every address that ever received any.
type Bucket struct {
	orm.ModelBucket
}

// NewBucket initializes a cash.Bucket with default name.
func NewBucket() Bucket {
	return Bucket{
		ModelBucket: orm.NewModelBucket(BucketName, &Set{}),
	}
}

// GetOrCreate loads the wallet of the given address. An address that was
// never used has an empty wallet.
func (b Bucket) GetOrCreate(db tollgate.ReadOnlyKVStore, addr tollgate.Address) (coin.Coins, error) {
	var set Set
	switch err := b.One(db, addr, &set); {
	case err == nil:
		return coin.Coins(set.Coins), nil
	case errors.ErrNotFound.Is(err):
		return nil, nil
	default:
		return nil, err
	}
}

// Save stores the coins as the wallet of the given address.
func (b Bucket) Save(db tollgate.KVStore, addr tollgate.Address, coins coin.Coins) error {
	return b.Put(db, addr, &Set{Coins: coins})
}
