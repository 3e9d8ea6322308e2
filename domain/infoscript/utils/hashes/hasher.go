package hashes

import (
	"github.com/kaspanet/infoscript/domain/infoscript/model/externalapi"
)

// Blake160Size is the size of a blake160 digest, the form public keys take
// inside lock script args.
const Blake160Size = 20

// Blake2bHasher is the externalapi.Hasher used on chain: personalized
// blake2b-256.
type Blake2bHasher struct{}

// Hash returns the default-domain digest of data.
func (Blake2bHasher) Hash(data []byte) *externalapi.DomainHash {
	writer := NewDefaultHashWriter()
	writer.InfallibleWrite(data)
	return writer.Finalize()
}

// Blake160 returns the first Blake160Size bytes of the default-domain digest
// of data.
func Blake160(data []byte) []byte {
	return Blake2bHasher{}.Hash(data).ByteSlice()[:Blake160Size]
}
