// Package testutils builds transactions and contexts for info script tests,
// in the shape of the deployment test harness: an always-success lock, one
// funding input of 1000 and an info cell of 170 at output 1.
package testutils

import (
	"encoding/hex"

	"github.com/kaspanet/go-secp256k1"
	"github.com/kaspanet/infoscript/domain/infoscript/model/externalapi"
	"github.com/kaspanet/infoscript/domain/infoscript/utils/constants"
	"github.com/kaspanet/infoscript/domain/infoscript/utils/hashes"
	"github.com/kaspanet/infoscript/domain/infoscript/utils/scripthashing"
)

// Hasher is the hasher every script hash in the built transactions uses.
var Hasher externalapi.Hasher = hashes.Blake2bHasher{}

// Code hashes of the test binaries, derived from their names so that they
// never collide with each other.
var (
	AlwaysSuccessCodeHash = *Hasher.Hash([]byte("always_success"))
	InfoScriptCodeHash    = *Hasher.Hash([]byte("my-sudt-info"))
	SUDTCodeHash          = *Hasher.Hash([]byte("simple_udt"))
)

const usdCoinPayloadHex = "060a55534420436f696e0a555344430a546f74616c737570706c793a31303030303030302e3030303030300a" +
	"4f66666963616c20536974653a68747470733a2f2f7777772e63656e7472652e696f2f0a4465736372697074696f6e3a78787878"

// USDCoinPayload returns the info data of the USD Coin token:
// "\x06\nUSD Coin\nUSDC\nTotalsupply:...\nOffical Site:...\nDescription:xxxx".
func USDCoinPayload() []byte {
	payload, err := hex.DecodeString(usdCoinPayloadHex)
	if err != nil {
		panic(err)
	}
	return payload
}

// AlwaysSuccessLock returns a lock anyone can unlock.
func AlwaysSuccessLock(args []byte) *externalapi.Script {
	return &externalapi.Script{
		CodeHash: AlwaysSuccessCodeHash,
		HashType: externalapi.ScriptHashTypeData,
		Args:     args,
	}
}

// InfoTypeScript returns the info script with the given args.
func InfoTypeScript(args []byte) *externalapi.Script {
	return &externalapi.Script{
		CodeHash: InfoScriptCodeHash,
		HashType: externalapi.ScriptHashTypeData,
		Args:     args,
	}
}

// SUDTTypeScript returns the token type script owned by ownerLockHash.
func SUDTTypeScript(ownerLockHash []byte) *externalapi.Script {
	return &externalapi.Script{
		CodeHash: SUDTCodeHash,
		HashType: externalapi.ScriptHashTypeData,
		Args:     ownerLockHash,
	}
}

// Secp256k1Lock returns the default single signature lock of the Schnorr
// key pair with the given 32 byte private key.
func Secp256k1Lock(privateKey []byte) (*externalapi.Script, error) {
	keyPair, err := secp256k1.DeserializeSchnorrPrivateKeyFromSlice(privateKey)
	if err != nil {
		return nil, err
	}
	publicKey, err := keyPair.SchnorrPublicKey()
	if err != nil {
		return nil, err
	}
	serializedPublicKey, err := publicKey.Serialize()
	if err != nil {
		return nil, err
	}
	return &externalapi.Script{
		CodeHash: constants.Secp256k1Blake160SighashAllCodeHash,
		HashType: externalapi.ScriptHashTypeType,
		Args:     hashes.Blake160(serializedPublicKey[:]),
	}, nil
}

// ScriptHash returns the hash of script as a byte slice.
func ScriptHash(script *externalapi.Script) []byte {
	return scripthashing.ScriptHash(Hasher, script).ByteSlice()
}
