package scripthashing

import (
	"github.com/kaspanet/infoscript/domain/infoscript/model/externalapi"
	"github.com/kaspanet/infoscript/domain/infoscript/utils/serialization"
)

// ScriptHash returns the hash of the full serialized script. A cell's lock
// hash and type hash are the ScriptHash of its lock and type scripts.
func ScriptHash(hasher externalapi.Hasher, script *externalapi.Script) *externalapi.DomainHash {
	return hasher.Hash(serialization.SerializeScript(script))
}
