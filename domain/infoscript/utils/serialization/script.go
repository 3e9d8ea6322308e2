package serialization

import (
	"github.com/kaspanet/infoscript/domain/infoscript/model/externalapi"
	"github.com/kaspanet/infoscript/domain/infoscript/ruleerrors"
	"github.com/nervosnetwork/ckb-sdk-go/v2/types"
	"github.com/nervosnetwork/ckb-sdk-go/v2/types/molecule"
	"github.com/pkg/errors"
)

var hashTypesToCKB = map[externalapi.ScriptHashType]types.ScriptHashType{
	externalapi.ScriptHashTypeData:  types.HashTypeData,
	externalapi.ScriptHashTypeType:  types.HashTypeType,
	externalapi.ScriptHashTypeData1: types.HashTypeData1,
}

// ScriptToCKB converts script to its ckb-sdk-go form.
func ScriptToCKB(script *externalapi.Script) *types.Script {
	if script == nil {
		return nil
	}
	hashType, ok := hashTypesToCKB[script.HashType]
	if !ok {
		panic(errors.Errorf("script hash type %s has no molecule encoding", script.HashType))
	}
	return &types.Script{
		CodeHash: types.BytesToHash(script.CodeHash.ByteSlice()),
		HashType: hashType,
		Args:     script.Args,
	}
}

// SerializeScript returns the molecule encoding of script, the exact bytes
// hashed into a script hash.
func SerializeScript(script *externalapi.Script) []byte {
	return ScriptToCKB(script).Pack().AsSlice()
}

// DeserializeScript decodes the output of SerializeScript.
func DeserializeScript(data []byte) (*externalapi.Script, error) {
	script, err := molecule.ScriptFromSlice(data, false)
	if err != nil {
		return nil, errors.Wrapf(ruleerrors.ErrEncoding, "Script: %s", err)
	}
	return scriptFromMolecule(script)
}

func scriptFromMolecule(script *molecule.Script) (*externalapi.Script, error) {
	codeHash, err := externalapi.NewDomainHashFromByteSlice(script.CodeHash().AsSlice())
	if err != nil {
		return nil, errors.Wrapf(ruleerrors.ErrEncoding, "Script.code_hash: %s", err)
	}
	hashType := externalapi.ScriptHashType(script.HashType().AsSlice()[0])
	if _, ok := hashTypesToCKB[hashType]; !ok {
		return nil, errors.Wrapf(ruleerrors.ErrEncoding, "Script.hash_type: %s", hashType)
	}
	args := script.Args().RawData()
	argsCopy := make([]byte, len(args))
	copy(argsCopy, args)
	return &externalapi.Script{
		CodeHash: *codeHash,
		HashType: hashType,
		Args:     argsCopy,
	}, nil
}

// SerializeOutPoint returns the 36 byte molecule encoding of outPoint. Its
// layout keeps outpoints of one transaction adjacent when used as a key.
func SerializeOutPoint(outPoint *externalapi.OutPoint) []byte {
	ckbOutPoint := &types.OutPoint{
		TxHash: types.BytesToHash(outPoint.TxHash.ByteSlice()),
		Index:  outPoint.Index,
	}
	return ckbOutPoint.Pack().AsSlice()
}
