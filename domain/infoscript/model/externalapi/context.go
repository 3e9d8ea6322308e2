package externalapi

// ExecutionContext is the read-only view a running script has of the
// transaction being verified. Index-based loads report ErrIndexOutOfBound
// (see ruleerrors) once index runs past the last cell of source, which is how
// callers enumerate a source.
type ExecutionContext interface {
	// LoadScript returns the script currently being executed.
	LoadScript() (*Script, error)

	// LoadCellLockHash returns the hash of the lock script of a cell.
	LoadCellLockHash(index int, source Source) (*DomainHash, error)

	// LoadCellTypeHash returns the hash of the type script of a cell, or nil
	// if the cell has no type script.
	LoadCellTypeHash(index int, source Source) (*DomainHash, error)

	// LoadCellType returns the type script of a cell, or nil if the cell has
	// no type script.
	LoadCellType(index int, source Source) (*Script, error)

	// LoadCellData returns the data of a cell.
	LoadCellData(index int, source Source) ([]byte, error)
}

// Hasher computes the fixed length digest used for lock, type and script
// hashes.
type Hasher interface {
	Hash(data []byte) *DomainHash
}
