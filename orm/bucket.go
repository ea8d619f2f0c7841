/*
Package orm provides an easy to use db wrapper.

The state space is broken into prefixed sections called Buckets. Each bucket
contains only one type of object, stored under a primary key, and can be
exposed to the ABCI queries under its own path.
*/
package orm

import (
	"fmt"
	"regexp"

	"github.com/iov-one/tollgate"
	"github.com/iov-one/tollgate/errors"
)

var isBucketName = regexp.MustCompile(`^[a-z_]{3,10}$`).MatchString

// Bucket is a generic holder that stores data under a prefixed subspace of
// the DB.
//
// This is a generic building block that should generally be embedded in a
// type-safe wrapper to ensure all data is the same type. proto defines the
// default Model, all elements of this type.
type Bucket struct {
	name   string
	prefix []byte
	proto  Cloneable
}

var _ tollgate.QueryHandler = Bucket{}

// NewBucket creates a bucket to store data.
func NewBucket(name string, proto Cloneable) Bucket {
	if !isBucketName(name) {
		panic(fmt.Sprintf("Illegal bucket: %s", name))
	}
	return Bucket{
		name:   name,
		prefix: append([]byte(name), ':'),
		proto:  proto,
	}
}

// Name returns the name of the bucket.
func (b Bucket) Name() string {
	return b.name
}

// Register registers this Bucket for queries. You can define a name here
// for queries, which is different than the bucket name used to prefix the
// data.
func (b Bucket) Register(name string, r tollgate.QueryRouter) {
	if name == "" {
		name = b.name
	}
	r.Register("/"+name, b)
}

// Query handles queries from the QueryRouter.
func (b Bucket) Query(db tollgate.ReadOnlyKVStore, mod string, data []byte) ([]tollgate.Model, error) {
	switch mod {
	case tollgate.KeyQueryMod:
		key := b.DBKey(data)
		value, err := db.Get(key)
		if err != nil {
			return nil, err
		}
		// return nothing on miss
		if value == nil {
			return nil, nil
		}
		return []tollgate.Model{{Key: key, Value: value}}, nil
	case tollgate.PrefixQueryMod:
		return queryPrefix(db, b.DBKey(data))
	default:
		return nil, errors.Wrapf(errors.ErrInput, "unknown query mode %q", mod)
	}
}

// DBKey is the full key we store in the db, including prefix. We copy into
// a new array rather than use append, as we don't want consecutive calls to
// overwrite the same byte array.
func (b Bucket) DBKey(key []byte) []byte {
	l := len(b.prefix)
	out := make([]byte, l+len(key))
	copy(out, b.prefix)
	copy(out[l:], key)
	return out
}

// Get one element. Returns nil object when not found.
func (b Bucket) Get(db tollgate.ReadOnlyKVStore, key []byte) (Object, error) {
	raw, err := db.Get(b.DBKey(key))
	if err != nil {
		return nil, errors.Wrap(err, "cannot read from the store")
	}
	if raw == nil {
		return nil, nil
	}
	return b.Parse(key, raw)
}

// Has returns true if an element is stored under the given key.
func (b Bucket) Has(db tollgate.ReadOnlyKVStore, key []byte) (bool, error) {
	return db.Has(b.DBKey(key))
}

// Parse takes a key and value data and reconstructs the data this Bucket
// would return.
func (b Bucket) Parse(key, value []byte) (Object, error) {
	obj := b.proto.Clone()
	if err := obj.Value().Unmarshal(value); err != nil {
		return nil, errors.Wrapf(errors.ErrModel, "cannot unmarshal: %s", err)
	}
	obj.SetKey(key)
	return obj, nil
}

// Save will write a model, it must be of the same type as proto.
func (b Bucket) Save(db tollgate.KVStore, model Object) error {
	if err := model.Validate(); err != nil {
		return err
	}
	raw, err := model.Value().Marshal()
	if err != nil {
		return errors.Wrapf(errors.ErrModel, "cannot marshal: %s", err)
	}
	// A nil value cannot be told apart from a missing one.
	if raw == nil {
		raw = []byte{}
	}
	return db.Set(b.DBKey(model.Key()), raw)
}

// Delete will remove the value at a key.
func (b Bucket) Delete(db tollgate.KVStore, key []byte) error {
	return db.Delete(b.DBKey(key))
}
