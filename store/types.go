package store

import "github.com/iov-one/tollgate"

// Move references for all storage types into this package for shorter
// names everywhere.

type (
	ReadOnlyKVStore  = tollgate.ReadOnlyKVStore
	KVStore          = tollgate.KVStore
	Iterator         = tollgate.Iterator
	Batch            = tollgate.Batch
	CacheableKVStore = tollgate.CacheableKVStore
	KVCacheWrap      = tollgate.KVCacheWrap
	CommitKVStore    = tollgate.CommitKVStore
	CommitID         = tollgate.CommitID
)
