// Package address encodes and decodes lock scripts as human readable bech32
// addresses in the short format: a format byte, the index of a well known
// lock code hash, and the lock args.
package address

import (
	"github.com/btcsuite/btcutil/bech32"
	"github.com/kaspanet/infoscript/domain/infoscript/model/externalapi"
	"github.com/kaspanet/infoscript/domain/infoscript/utils/constants"
	"github.com/pkg/errors"
)

// Prefix is the human readable part of an address, naming the network it is
// valid on.
type Prefix string

// Address prefixes.
const (
	PrefixMainnet Prefix = "ckb"
	PrefixTestnet Prefix = "ckt"
)

// ParsePrefix returns the Prefix named prefix.
func ParsePrefix(prefix string) (Prefix, error) {
	switch Prefix(prefix) {
	case PrefixMainnet, PrefixTestnet:
		return Prefix(prefix), nil
	default:
		return "", errors.Errorf("unknown address prefix %s", prefix)
	}
}

// formatShort is the format byte of short addresses.
const formatShort byte = 0x01

// CodeHashIndex identifies a well known lock in short addresses.
type CodeHashIndex byte

// Code hash indexes of the locks short addresses can refer to.
const (
	CodeHashIndexSighashAll   CodeHashIndex = 0x00
	CodeHashIndexMultisig     CodeHashIndex = 0x01
	CodeHashIndexAnyoneCanPay CodeHashIndex = 0x02
)

const (
	blake160ArgsSize        = 20
	maxAnyoneCanPayArgsSize = blake160ArgsSize + 2
)

func codeHash(prefix Prefix, index CodeHashIndex) (*externalapi.DomainHash, error) {
	switch index {
	case CodeHashIndexSighashAll:
		return &constants.Secp256k1Blake160SighashAllCodeHash, nil
	case CodeHashIndexMultisig:
		return &constants.Secp256k1Blake160MultisigAllCodeHash, nil
	case CodeHashIndexAnyoneCanPay:
		if prefix == PrefixMainnet {
			return &constants.AnyoneCanPayMainnetCodeHash, nil
		}
		return &constants.AnyoneCanPayTestnetCodeHash, nil
	default:
		return nil, errors.Errorf("unknown code hash index %d", index)
	}
}

func checkArgsSize(index CodeHashIndex, args []byte) error {
	if index == CodeHashIndexAnyoneCanPay {
		if len(args) < blake160ArgsSize || len(args) > maxAnyoneCanPayArgsSize {
			return errors.Errorf("anyone-can-pay args must be %d to %d bytes, got %d",
				blake160ArgsSize, maxAnyoneCanPayArgsSize, len(args))
		}
		return nil
	}
	if len(args) != blake160ArgsSize {
		return errors.Errorf("lock args must be %d bytes, got %d", blake160ArgsSize, len(args))
	}
	return nil
}

// Decode returns the lock script encoded in address, and the network prefix
// it was encoded for.
func Decode(address string) (*externalapi.Script, Prefix, error) {
	hrp, decoded, err := bech32.Decode(address)
	if err != nil {
		return nil, "", errors.Wrapf(err, "failed decoding address %s", address)
	}
	prefix, err := ParsePrefix(hrp)
	if err != nil {
		return nil, "", err
	}
	payload, err := bech32.ConvertBits(decoded, 5, 8, false)
	if err != nil {
		return nil, "", errors.Wrapf(err, "failed decoding address %s", address)
	}
	if len(payload) < 2 {
		return nil, "", errors.Errorf("address payload of %d bytes is too short", len(payload))
	}
	if payload[0] != formatShort {
		return nil, "", errors.Errorf("unsupported address format 0x%02x", payload[0])
	}

	index := CodeHashIndex(payload[1])
	args := payload[2:]
	lockCodeHash, err := codeHash(prefix, index)
	if err != nil {
		return nil, "", err
	}
	err = checkArgsSize(index, args)
	if err != nil {
		return nil, "", err
	}
	return &externalapi.Script{
		CodeHash: *lockCodeHash,
		HashType: externalapi.ScriptHashTypeType,
		Args:     args,
	}, prefix, nil
}

// EncodeShort returns the short address of the well known lock with the
// given code hash index and args.
func EncodeShort(prefix Prefix, index CodeHashIndex, args []byte) (string, error) {
	if _, err := codeHash(prefix, index); err != nil {
		return "", err
	}
	err := checkArgsSize(index, args)
	if err != nil {
		return "", err
	}

	payload := make([]byte, 0, 2+len(args))
	payload = append(payload, formatShort, byte(index))
	payload = append(payload, args...)
	converted, err := bech32.ConvertBits(payload, 8, 5, true)
	if err != nil {
		return "", errors.WithStack(err)
	}
	address, err := bech32.Encode(string(prefix), converted)
	return address, errors.WithStack(err)
}

// EncodeLock returns the short address of lock, if lock is one of the well
// known locks short addresses can refer to.
func EncodeLock(prefix Prefix, lock *externalapi.Script) (string, error) {
	if lock.HashType != externalapi.ScriptHashTypeType {
		return "", errors.Errorf("lock %s has no short address", lock)
	}
	for _, index := range []CodeHashIndex{CodeHashIndexSighashAll, CodeHashIndexMultisig, CodeHashIndexAnyoneCanPay} {
		lockCodeHash, _ := codeHash(prefix, index)
		if lockCodeHash.Equal(&lock.CodeHash) {
			return EncodeShort(prefix, index, lock.Args)
		}
	}
	return "", errors.Errorf("lock %s has no short address", lock)
}
