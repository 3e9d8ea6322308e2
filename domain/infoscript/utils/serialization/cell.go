package serialization

import (
	"encoding/binary"

	"github.com/kaspanet/infoscript/domain/infoscript/model/externalapi"
	"github.com/kaspanet/infoscript/domain/infoscript/ruleerrors"
	"github.com/nervosnetwork/ckb-sdk-go/v2/types"
	"github.com/nervosnetwork/ckb-sdk-go/v2/types/molecule"
	"github.com/pkg/errors"
)

// cellRecordFields is the number of entries of a stored cell: its output and
// its data.
const cellRecordFields = 2

// SerializeCellOutput returns the molecule encoding of the capacity, lock and
// type of cell. The data is not part of a cell output.
func SerializeCellOutput(cell *externalapi.Cell) []byte {
	output := &types.CellOutput{
		Capacity: cell.Capacity,
		Lock:     ScriptToCKB(cell.Lock),
		Type:     ScriptToCKB(cell.Type),
	}
	return output.Pack().AsSlice()
}

// SerializeCell encodes a cell output together with its data as a molecule
// BytesVec.
func SerializeCell(cell *externalapi.Cell) []byte {
	record := molecule.NewBytesVecBuilder().
		Push(*types.PackBytes(SerializeCellOutput(cell))).
		Push(*types.PackBytes(cell.Data)).
		Build()
	return record.AsSlice()
}

// DeserializeCell decodes the output of SerializeCell.
func DeserializeCell(data []byte) (*externalapi.Cell, error) {
	record, err := molecule.BytesVecFromSlice(data, false)
	if err != nil {
		return nil, errors.Wrapf(ruleerrors.ErrEncoding, "Cell: %s", err)
	}
	if record.Len() != cellRecordFields {
		return nil, errors.Wrapf(ruleerrors.ErrEncoding, "Cell: has %d entries, want %d",
			record.Len(), cellRecordFields)
	}
	cell, err := deserializeCellOutput(record.Get(0).RawData())
	if err != nil {
		return nil, err
	}
	cellData := record.Get(1).RawData()
	cell.Data = make([]byte, len(cellData))
	copy(cell.Data, cellData)
	return cell, nil
}

func deserializeCellOutput(data []byte) (*externalapi.Cell, error) {
	output, err := molecule.CellOutputFromSlice(data, false)
	if err != nil {
		return nil, errors.Wrapf(ruleerrors.ErrEncoding, "CellOutput: %s", err)
	}
	lock, err := scriptFromMolecule(output.Lock())
	if err != nil {
		return nil, err
	}
	var typeScript *externalapi.Script
	if typeOpt := output.Type(); typeOpt.IsSome() {
		ckbType, err := typeOpt.IntoScript()
		if err != nil {
			return nil, errors.Wrapf(ruleerrors.ErrEncoding, "CellOutput.type: %s", err)
		}
		typeScript, err = scriptFromMolecule(ckbType)
		if err != nil {
			return nil, err
		}
	}
	return &externalapi.Cell{
		Capacity: binary.LittleEndian.Uint64(output.Capacity().AsSlice()),
		Lock:     lock,
		Type:     typeScript,
	}, nil
}
