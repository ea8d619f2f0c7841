package orm

import (
	"github.com/iov-one/tollgate"
)

// ConsumeIterator will read all remaining data into an array and close the
// iterator.
func ConsumeIterator(itr tollgate.Iterator) []tollgate.Model {
	defer itr.Close()

	var res []tollgate.Model
	for ; itr.Valid(); itr.Next() {
		res = append(res, tollgate.Pair(itr.Key(), itr.Value()))
	}
	return res
}

func queryPrefix(db tollgate.ReadOnlyKVStore, prefix []byte) ([]tollgate.Model, error) {
	itr, err := db.Iterator(prefix, prefixEnd(prefix))
	if err != nil {
		return nil, err
	}
	return ConsumeIterator(itr), nil
}

// prefixEnd returns the key that is just after all the keys starting with
// the given prefix, or nil if there is no such key.
func prefixEnd(prefix []byte) []byte {
	end := append([]byte(nil), prefix...)
	for i := len(end) - 1; i >= 0; i-- {
		if end[i] < 0xFF {
			end[i]++
			return end[:i+1]
		}
	}
	return nil
}
