// Package cellstore keeps the live cells transactions spend in a leveldb
// database, keyed by outpoint, so that transactions given by outpoint alone
// can be resolved before verification.
package cellstore

import (
	"github.com/kaspanet/infoscript/domain/infoscript/model/externalapi"
	"github.com/kaspanet/infoscript/domain/infoscript/ruleerrors"
	"github.com/kaspanet/infoscript/domain/infoscript/utils/serialization"
	"github.com/pkg/errors"
	"github.com/syndtr/goleveldb/leveldb"
	ldbErrors "github.com/syndtr/goleveldb/leveldb/errors"
	"github.com/syndtr/goleveldb/leveldb/util"
)

var cellKeyPrefix = []byte("cell-")

// Store is a live cell set backed by leveldb.
type Store struct {
	ldb *leveldb.DB
}

// Open opens the store at path, creating it if it doesn't exist.
func Open(path string) (*Store, error) {
	return open(path, false)
}

// OpenReadOnly opens the existing store at path for lookups only.
func OpenReadOnly(path string) (*Store, error) {
	return open(path, true)
}

func open(path string, readOnly bool) (*Store, error) {
	ldb, err := leveldb.OpenFile(path, Options(readOnly))

	// If the database is corrupted, attempt to recover. Recovery rewrites the
	// manifest, so a read-only store is never recovered.
	if _, corrupted := err.(*ldbErrors.ErrCorrupted); corrupted && !readOnly {
		log.Warnf("LevelDB corruption detected for path %s: %s",
			path, err)
		ldb, err = leveldb.RecoverFile(path, nil)
		if err != nil {
			return nil, errors.WithStack(err)
		}
		log.Warnf("LevelDB recovered from corruption for path %s",
			path)
	}

	// If the database cannot be opened for any other
	// reason, return the error as-is.
	if err != nil {
		return nil, errors.WithStack(err)
	}

	log.Debugf("Opened cell store at %s (read-only: %t)", path, readOnly)
	return &Store{ldb: ldb}, nil
}

// Close closes the store.
func (s *Store) Close() error {
	return errors.WithStack(s.ldb.Close())
}

func cellKey(outPoint *externalapi.OutPoint) []byte {
	serializedOutPoint := serialization.SerializeOutPoint(outPoint)
	key := make([]byte, 0, len(cellKeyPrefix)+len(serializedOutPoint))
	key = append(key, cellKeyPrefix...)
	return append(key, serializedOutPoint...)
}

// PutCell stores cell as the live cell at outPoint. It overwrites any
// previous cell at that outpoint.
func (s *Store) PutCell(outPoint *externalapi.OutPoint, cell *externalapi.Cell) error {
	return errors.WithStack(s.ldb.Put(cellKey(outPoint), serialization.SerializeCell(cell), nil))
}

// PutTransactionOutputs stores every output of tx as a live cell of the
// transaction with hash txHash, in a single batch.
func (s *Store) PutTransactionOutputs(txHash *externalapi.DomainHash, tx *externalapi.Transaction) error {
	batch := new(leveldb.Batch)
	for i, output := range tx.Outputs {
		outPoint := &externalapi.OutPoint{TxHash: *txHash, Index: uint32(i)}
		batch.Put(cellKey(outPoint), serialization.SerializeCell(output))
	}
	err := s.ldb.Write(batch, nil)
	if err != nil {
		return errors.WithStack(err)
	}
	log.Debugf("Stored %d outputs of transaction %s", len(tx.Outputs), txHash)
	return nil
}

// Cell returns the live cell at outPoint. It returns an ErrCellNotFound
// rule error if there is none.
func (s *Store) Cell(outPoint *externalapi.OutPoint) (*externalapi.Cell, error) {
	serializedCell, err := s.ldb.Get(cellKey(outPoint), nil)
	if err != nil {
		if errors.Is(err, leveldb.ErrNotFound) {
			return nil, ruleerrors.NewErrCellNotFound(outPoint)
		}
		return nil, errors.WithStack(err)
	}
	return serialization.DeserializeCell(serializedCell)
}

// HasCell returns whether there is a live cell at outPoint.
func (s *Store) HasCell(outPoint *externalapi.OutPoint) (bool, error) {
	has, err := s.ldb.Has(cellKey(outPoint), nil)
	return has, errors.WithStack(err)
}

// DeleteCell removes the cell at outPoint. Deleting a missing cell is not an
// error.
func (s *Store) DeleteCell(outPoint *externalapi.OutPoint) error {
	return errors.WithStack(s.ldb.Delete(cellKey(outPoint), nil))
}

// CellCount returns the number of live cells in the store.
func (s *Store) CellCount() (int, error) {
	iterator := s.ldb.NewIterator(util.BytesPrefix(cellKeyPrefix), nil)
	defer iterator.Release()

	count := 0
	for iterator.Next() {
		count++
	}
	return count, errors.WithStack(iterator.Error())
}

// ResolveInputs sets the cell of every unresolved input of tx to the live
// cell its previous output points to. Inputs that are already resolved are
// left untouched. It fails on the first input without a live cell.
func (s *Store) ResolveInputs(tx *externalapi.Transaction) error {
	for i, input := range tx.Inputs {
		if input.Cell != nil {
			continue
		}
		cell, err := s.Cell(&input.PreviousOutput)
		if err != nil {
			return errors.Wrapf(err, "failed resolving input %d", i)
		}
		input.Cell = cell
	}
	return nil
}
