package store

import "github.com/iov-one/tollgate"

// Model is a single key value pair.
type Model = tollgate.Model

// SliceIterator iterates over a preloaded, ordered list of pairs.
type SliceIterator struct {
	items []Model
}

var _ Iterator = (*SliceIterator)(nil)

// NewSliceIterator returns an iterator over the given pairs, in the order
// they are provided.
func NewSliceIterator(items []Model) *SliceIterator {
	return &SliceIterator{items: items}
}

func (s *SliceIterator) Valid() bool {
	return len(s.items) > 0
}

func (s *SliceIterator) Next() {
	if !s.Valid() {
		panic("iterator is invalid")
	}
	s.items = s.items[1:]
}

func (s *SliceIterator) Key() []byte {
	if !s.Valid() {
		panic("iterator is invalid")
	}
	return s.items[0].Key
}

func (s *SliceIterator) Value() []byte {
	if !s.Valid() {
		panic("iterator is invalid")
	}
	return s.items[0].Value
}

func (s *SliceIterator) Close() {
	s.items = nil
}
