package main

import (
	"encoding/hex"
	"encoding/json"
	"io/ioutil"
	"strings"

	"github.com/kaspanet/infoscript/domain/infoscript/model/externalapi"
	"github.com/kaspanet/infoscript/util/address"
	"github.com/pkg/errors"
)

// The JSON form of transactions. Byte strings are hex encoded, with or
// without a 0x prefix. A lock may be given as an address instead of a script.

type scriptJSON struct {
	CodeHash string `json:"codeHash"`
	HashType string `json:"hashType"`
	Args     string `json:"args"`
}

type cellJSON struct {
	Capacity uint64      `json:"capacity"`
	Lock     *scriptJSON `json:"lock,omitempty"`
	Address  string      `json:"address,omitempty"`
	Type     *scriptJSON `json:"type,omitempty"`
	Data     string      `json:"data"`
}

type outPointJSON struct {
	TxHash string `json:"txHash"`
	Index  uint32 `json:"index"`
}

type inputJSON struct {
	PreviousOutput outPointJSON `json:"previousOutput"`
	Since          uint64       `json:"since"`
	Cell           *cellJSON    `json:"cell,omitempty"`
}

type transactionJSON struct {
	Version uint32      `json:"version"`
	Inputs  []inputJSON `json:"inputs"`
	Outputs []cellJSON  `json:"outputs"`
}

func readTransactionFile(path string) (*externalapi.Transaction, error) {
	content, err := ioutil.ReadFile(path)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	tx, err := parseTransaction(content)
	if err != nil {
		return nil, errors.Wrapf(err, "failed parsing transaction file %s", path)
	}
	return tx, nil
}

func parseTransaction(content []byte) (*externalapi.Transaction, error) {
	var txJSON transactionJSON
	err := json.Unmarshal(content, &txJSON)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	tx := &externalapi.Transaction{
		Version: txJSON.Version,
		Inputs:  make([]*externalapi.CellInput, len(txJSON.Inputs)),
		Outputs: make([]*externalapi.Cell, len(txJSON.Outputs)),
	}
	for i, inputJSON := range txJSON.Inputs {
		input, err := inputJSON.toDomain()
		if err != nil {
			return nil, errors.Wrapf(err, "input %d", i)
		}
		tx.Inputs[i] = input
	}
	for i, outputJSON := range txJSON.Outputs {
		output, err := outputJSON.toDomain()
		if err != nil {
			return nil, errors.Wrapf(err, "output %d", i)
		}
		tx.Outputs[i] = output
	}
	return tx, nil
}

func (in *inputJSON) toDomain() (*externalapi.CellInput, error) {
	txHash, err := externalapi.NewDomainHashFromString(in.PreviousOutput.TxHash)
	if err != nil {
		return nil, err
	}
	input := &externalapi.CellInput{
		PreviousOutput: externalapi.OutPoint{TxHash: *txHash, Index: in.PreviousOutput.Index},
		Since:          in.Since,
	}
	if in.Cell != nil {
		input.Cell, err = in.Cell.toDomain()
		if err != nil {
			return nil, err
		}
	}
	return input, nil
}

func (c *cellJSON) toDomain() (*externalapi.Cell, error) {
	cell := &externalapi.Cell{Capacity: c.Capacity}

	var err error
	switch {
	case c.Lock != nil && c.Address != "":
		return nil, errors.New("a cell may have either a lock or an address, not both")
	case c.Lock != nil:
		cell.Lock, err = c.Lock.toDomain()
	case c.Address != "":
		cell.Lock, _, err = address.Decode(c.Address)
	default:
		return nil, errors.New("cell has no lock")
	}
	if err != nil {
		return nil, err
	}

	if c.Type != nil {
		cell.Type, err = c.Type.toDomain()
		if err != nil {
			return nil, err
		}
	}
	cell.Data, err = decodeHex(c.Data)
	if err != nil {
		return nil, err
	}
	return cell, nil
}

func (s *scriptJSON) toDomain() (*externalapi.Script, error) {
	codeHash, err := externalapi.NewDomainHashFromString(s.CodeHash)
	if err != nil {
		return nil, err
	}
	hashType, err := externalapi.ScriptHashTypeFromString(s.HashType)
	if err != nil {
		return nil, err
	}
	args, err := decodeHex(s.Args)
	if err != nil {
		return nil, err
	}
	return &externalapi.Script{CodeHash: *codeHash, HashType: hashType, Args: args}, nil
}

func decodeHex(hexString string) ([]byte, error) {
	decoded, err := hex.DecodeString(strings.TrimPrefix(hexString, "0x"))
	if err != nil {
		return nil, errors.Wrapf(err, "failed decoding hex string %q", hexString)
	}
	return decoded, nil
}
