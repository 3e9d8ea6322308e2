package hashes

import (
	"hash"

	"github.com/kaspanet/infoscript/domain/infoscript/model/externalapi"
	"github.com/minio/blake2b-simd"
	"github.com/pkg/errors"
)

// DefaultHashDomain is the blake2b personalization of script, lock and type
// hashes.
const DefaultHashDomain = "ckb-default-hash"

// HashWriter is used to incrementally hash data without concatenating all of the data to a single buffer
// it exposes an io.Writer api and a Finalize function to get the resulting hash.
// The used hash function is blake2b.
// This can only be created via one of the domain separated constructors
type HashWriter struct {
	hash.Hash
}

// InfallibleWrite is just like write but doesn't return anything
func (h HashWriter) InfallibleWrite(p []byte) {
	// This write can never return an error, this is part of the hash.Hash interface contract.
	_, err := h.Write(p)
	if err != nil {
		panic(errors.Wrap(err, "this should never happen. hash.Hash interface promises to not return errors."))
	}
}

// Finalize returns the resulting hash
func (h HashWriter) Finalize() *externalapi.DomainHash {
	var sum [externalapi.DomainHashSize]byte
	copy(sum[:], h.Sum(sum[:0]))
	return externalapi.NewDomainHashFromByteArray(&sum)
}

// NewDefaultHashWriter returns a new HashWriter for script, lock and type
// hashes.
func NewDefaultHashWriter() HashWriter {
	return blake2bHashWriter(DefaultHashDomain)
}

func blake2bHashWriter(domain string) HashWriter {
	blake, err := blake2b.New(&blake2b.Config{
		Size:   externalapi.DomainHashSize,
		Person: []byte(domain),
	})
	if err != nil {
		panic(errors.Wrapf(err, "this should never happen. %s is at most 16 bytes", domain))
	}
	return HashWriter{blake}
}
