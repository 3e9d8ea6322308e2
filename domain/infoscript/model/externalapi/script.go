package externalapi

import (
	"bytes"
	"encoding/hex"
	"fmt"

	"github.com/pkg/errors"
)

// ScriptHashType tells the host how a script's CodeHash refers to its code:
// either by the hash of the code cell's data or by the hash of its type script.
type ScriptHashType byte

const (
	// ScriptHashTypeData refers to code by the hash of its cell data.
	ScriptHashTypeData ScriptHashType = 0
	// ScriptHashTypeType refers to code by the type hash of its cell.
	ScriptHashTypeType ScriptHashType = 1
	// ScriptHashTypeData1 is ScriptHashTypeData running on the second VM version.
	ScriptHashTypeData1 ScriptHashType = 2
)

var scriptHashTypeNames = map[ScriptHashType]string{
	ScriptHashTypeData:  "data",
	ScriptHashTypeType:  "type",
	ScriptHashTypeData1: "data1",
}

func (t ScriptHashType) String() string {
	name, ok := scriptHashTypeNames[t]
	if !ok {
		return fmt.Sprintf("unknown(%d)", byte(t))
	}
	return name
}

// ScriptHashTypeFromString parses the textual form returned by String.
func ScriptHashTypeFromString(name string) (ScriptHashType, error) {
	for hashType, hashTypeName := range scriptHashTypeNames {
		if hashTypeName == name {
			return hashType, nil
		}
	}
	return 0, errors.Errorf("unknown script hash type %q", name)
}

// Script is a reference to on-chain code together with the arguments the code
// runs with. Lock scripts guard who can spend a cell, type scripts guard what
// a cell may contain.
type Script struct {
	CodeHash DomainHash
	HashType ScriptHashType
	Args     []byte
}

// Equal returns whether script equals to other
func (script *Script) Equal(other *Script) bool {
	if script == nil || other == nil {
		return script == other
	}
	return script.CodeHash.Equal(&other.CodeHash) &&
		script.HashType == other.HashType &&
		bytes.Equal(script.Args, other.Args)
}

// Clone returns a clone of Script
func (script *Script) Clone() *Script {
	if script == nil {
		return nil
	}
	argsClone := make([]byte, len(script.Args))
	copy(argsClone, script.Args)
	return &Script{
		CodeHash: script.CodeHash,
		HashType: script.HashType,
		Args:     argsClone,
	}
}

func (script *Script) String() string {
	if script == nil {
		return "<none>"
	}
	return fmt.Sprintf("Script{code_hash: %s, hash_type: %s, args: %s}",
		script.CodeHash, script.HashType, hex.EncodeToString(script.Args))
}
