package constants

import (
	"github.com/kaspanet/infoscript/domain/infoscript/model/externalapi"
)

const (
	// ShannonsPerCKByte is the number of shannons in one CKByte of capacity.
	ShannonsPerCKByte = 100_000_000

	// DecimalsFieldSize is the size of the first line of token info data,
	// which holds the number of decimal places of the token.
	DecimalsFieldSize = 1

	// InfoDataSeparator separates the lines of token info data.
	InfoDataSeparator = '\n'

	// MinInfoDataLines is the least number of lines token info data may
	// split into: decimals, name and symbol.
	MinInfoDataLines = 3
)

// Code hashes of the well known lock scripts, all referenced with
// externalapi.ScriptHashTypeType.
var (
	// Secp256k1Blake160SighashAllCodeHash is the default single signature lock.
	Secp256k1Blake160SighashAllCodeHash = mustDomainHash("9bd7e06f3ecf4be0f2fcd2188b23f1b9fcc88e5d4b65a8637b17723bbda3cce8")

	// Secp256k1Blake160MultisigAllCodeHash is the default multisig lock.
	Secp256k1Blake160MultisigAllCodeHash = mustDomainHash("5c5069eb0857efc65e1bca0c07df34c31663b3622fd3876c876320fc9634e2a8")

	// AnyoneCanPayMainnetCodeHash is the anyone-can-pay lock on mainnet.
	AnyoneCanPayMainnetCodeHash = mustDomainHash("d369597ff47f29fbc0d47d2e3775370d1250b85140c670e4718af712983a2354")

	// AnyoneCanPayTestnetCodeHash is the anyone-can-pay lock on testnet.
	AnyoneCanPayTestnetCodeHash = mustDomainHash("3419a1c09eb2567f6552ee7a8ecffd64155cffe0f1796e6e61ec088d740c1356")
)

func mustDomainHash(hashString string) externalapi.DomainHash {
	hash, err := externalapi.NewDomainHashFromString(hashString)
	if err != nil {
		panic(err)
	}
	return *hash
}
