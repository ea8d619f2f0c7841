package orm

import (
	"reflect"

	"github.com/iov-one/tollgate"
	"github.com/iov-one/tollgate/errors"
)

// ModelBucket is implemented by buckets that operates on Models rather than
// Objects.
type ModelBucket interface {
	// One query the database for a single model instance. Lookup is done
	// by the primary index key. Result is loaded into given destination
	// model.
	// This method returns ErrNotFound if the entity does not exist in the
	// database.
	// If given model type cannot be used to contain stored entity, ErrType
	// is returned.
	One(db tollgate.ReadOnlyKVStore, key []byte, dest Model) error

	// Has returns nil if an entity with given primary key value exists.
	// It returns ErrNotFound if no entity can be found.
	Has(db tollgate.ReadOnlyKVStore, key []byte) error

	// Put saves given model in the database.
	Put(db tollgate.KVStore, key []byte, m Model) error

	// Delete removes an entity with given primary key from the database.
	// It returns ErrNotFound if an entity with given key does not exist.
	Delete(db tollgate.KVStore, key []byte) error

	// Iterate calls fn for every stored entity, in the key order. The
	// model passed to fn is reused between calls. Returning an error
	// from fn stops the iteration and the error is returned.
	Iterate(db tollgate.ReadOnlyKVStore, dest Model, fn func(key []byte) error) error

	// Register registers this bucket for queries.
	Register(name string, r tollgate.QueryRouter)
}

// NewModelBucket returns a ModelBucket instance. This implementation relies
// on a bucket instance.
func NewModelBucket(name string, m Model) ModelBucket {
	return &modelBucket{
		b: NewBucket(name, NewSimpleObj(nil, m)),
	}
}

type modelBucket struct {
	b Bucket
}

var _ ModelBucket = (*modelBucket)(nil)

func (mb *modelBucket) One(db tollgate.ReadOnlyKVStore, key []byte, dest Model) error {
	obj, err := mb.b.Get(db, key)
	if err != nil {
		return err
	}
	if obj == nil || obj.Value() == nil {
		return errors.Wrapf(errors.ErrNotFound, "%T not in the store", dest)
	}
	return load(obj.Value(), dest)
}

func (mb *modelBucket) Has(db tollgate.ReadOnlyKVStore, key []byte) error {
	ok, err := mb.b.Has(db, key)
	if err != nil {
		return errors.Wrap(err, "cannot read from the store")
	}
	if !ok {
		return errors.ErrNotFound
	}
	return nil
}

func (mb *modelBucket) Put(db tollgate.KVStore, key []byte, m Model) error {
	if err := m.Validate(); err != nil {
		return errors.Wrap(err, "invalid model")
	}
	if err := mb.b.Save(db, NewSimpleObj(key, m)); err != nil {
		return errors.Wrap(err, "cannot store in the database")
	}
	return nil
}

func (mb *modelBucket) Delete(db tollgate.KVStore, key []byte) error {
	if err := mb.Has(db, key); err != nil {
		return err
	}
	return mb.b.Delete(db, key)
}

func (mb *modelBucket) Iterate(db tollgate.ReadOnlyKVStore, dest Model, fn func(key []byte) error) error {
	prefix := mb.b.DBKey(nil)
	itr, err := db.Iterator(prefix, prefixEnd(prefix))
	if err != nil {
		return errors.Wrap(err, "cannot create iterator")
	}
	defer itr.Close()

	for ; itr.Valid(); itr.Next() {
		key := itr.Key()[len(prefix):]
		obj, err := mb.b.Parse(key, itr.Value())
		if err != nil {
			return err
		}
		if err := load(obj.Value(), dest); err != nil {
			return err
		}
		if err := fn(key); err != nil {
			return err
		}
	}
	return nil
}

func (mb *modelBucket) Register(name string, r tollgate.QueryRouter) {
	mb.b.Register(name, r)
}

// load copies the value of res into dest.
func load(res, dest Model) error {
	if !reflect.TypeOf(res).AssignableTo(reflect.TypeOf(dest)) {
		return errors.Wrapf(errors.ErrType, "%T cannot be represented as %T", res, dest)
	}
	reflect.ValueOf(dest).Elem().Set(reflect.ValueOf(res).Elem())
	return nil
}
