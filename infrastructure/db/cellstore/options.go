package cellstore

import (
	"github.com/syndtr/goleveldb/leveldb/filter"
	"github.com/syndtr/goleveldb/leveldb/opt"
)

// bloomBitsPerKey sizes the filter consulted before every outpoint lookup.
// Most lookups during input resolution hit, imports never read.
const bloomBitsPerKey = 10

// Options returns the leveldb options a cell store is opened with. A store
// opened readOnly must already exist.
func Options(readOnly bool) *opt.Options {
	return &opt.Options{
		Filter:             filter.NewBloomFilter(bloomBitsPerKey),
		BlockCacheCapacity: 4 * opt.MiB,
		WriteBuffer:        4 * opt.MiB,
		ReadOnly:           readOnly,
		ErrorIfMissing:     readOnly,
	}
}
