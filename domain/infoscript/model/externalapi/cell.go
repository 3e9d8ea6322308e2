package externalapi

import "fmt"

// Cell is a single unit of ledger state: some capacity, guarded by a lock
// script, optionally typed by a type script, carrying arbitrary data.
type Cell struct {
	Capacity uint64
	Lock     *Script
	Type     *Script
	Data     []byte
}

// Clone returns a clone of Cell
func (cell *Cell) Clone() *Cell {
	if cell == nil {
		return nil
	}
	dataClone := make([]byte, len(cell.Data))
	copy(dataClone, cell.Data)
	return &Cell{
		Capacity: cell.Capacity,
		Lock:     cell.Lock.Clone(),
		Type:     cell.Type.Clone(),
		Data:     dataClone,
	}
}

// OutPoint references a cell by the hash of the transaction that created it
// and its index among that transaction's outputs.
type OutPoint struct {
	TxHash DomainHash
	Index  uint32
}

// String stringifies an outpoint.
func (op OutPoint) String() string {
	return fmt.Sprintf("%s:%d", op.TxHash, op.Index)
}

// CellInput spends the cell at PreviousOutput. Cell is the resolved previous
// output and is nil until the input has been resolved against a cell set.
type CellInput struct {
	PreviousOutput OutPoint
	Since          uint64

	Cell *Cell
}
