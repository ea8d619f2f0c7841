package store

// EmptyKVStore never holds any data, use as a base layer for in-memory
// stores. Writes to it are silently dropped.
type EmptyKVStore struct{}

var _ KVStore = EmptyKVStore{}

func (EmptyKVStore) Get(key []byte) ([]byte, error) { return nil, nil }

func (EmptyKVStore) Has(key []byte) (bool, error) { return false, nil }

func (EmptyKVStore) Set(key, value []byte) error { return nil }

func (EmptyKVStore) Delete(key []byte) error { return nil }

func (EmptyKVStore) Iterator(start, end []byte) (Iterator, error) {
	return NewSliceIterator(nil), nil
}

func (EmptyKVStore) ReverseIterator(start, end []byte) (Iterator, error) {
	return NewSliceIterator(nil), nil
}

func (e EmptyKVStore) NewBatch() Batch {
	return NewNonAtomicBatch(e)
}

// NonAtomicBatch just piles up ops and executes them later on the
// underlying store. It is atomic only as long as the underlying store
// cannot fail on a write.
type NonAtomicBatch struct {
	out SetDeleter
	ops []op
}

// SetDeleter is the write side of a store.
type SetDeleter interface {
	Set(key, value []byte) error
	Delete(key []byte) error
}

var _ Batch = (*NonAtomicBatch)(nil)

// NewNonAtomicBatch creates an empty batch to be later written to the
// store.
func NewNonAtomicBatch(out SetDeleter) *NonAtomicBatch {
	return &NonAtomicBatch{out: out}
}

// Set adds a set operation to the batch.
func (b *NonAtomicBatch) Set(key, value []byte) error {
	b.ops = append(b.ops, op{key: key, value: value})
	return nil
}

// Delete adds a delete operation to the batch.
func (b *NonAtomicBatch) Delete(key []byte) error {
	b.ops = append(b.ops, op{key: key, delete: true})
	return nil
}

// Write writes all the ops to the underlying store and resets the batch.
func (b *NonAtomicBatch) Write() error {
	defer b.Reset()
	for _, o := range b.ops {
		var err error
		if o.delete {
			err = b.out.Delete(o.key)
		} else {
			err = b.out.Set(o.key, o.value)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

// Reset drops all the collected operations.
func (b *NonAtomicBatch) Reset() {
	b.ops = nil
}

type op struct {
	key    []byte
	value  []byte
	delete bool
}
