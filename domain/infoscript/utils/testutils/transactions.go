package testutils

import (
	"github.com/kaspanet/infoscript/domain/infoscript/model/externalapi"
	"github.com/kaspanet/infoscript/domain/infoscript/txcontext"
)

// InfoCellIndex is the output index of the info cell in the built transactions.
const InfoCellIndex = 1

// TransactionBuilder assembles resolved transactions.
type TransactionBuilder struct {
	tx *externalapi.Transaction
}

// NewTransactionBuilder returns an empty TransactionBuilder.
func NewTransactionBuilder() *TransactionBuilder {
	return &TransactionBuilder{tx: &externalapi.Transaction{}}
}

// AddInput adds an input spending cell. Each input gets a distinct outpoint.
func (b *TransactionBuilder) AddInput(cell *externalapi.Cell) *TransactionBuilder {
	b.tx.Inputs = append(b.tx.Inputs, &externalapi.CellInput{
		PreviousOutput: externalapi.OutPoint{
			TxHash: *Hasher.Hash([]byte("previous transaction")),
			Index:  uint32(len(b.tx.Inputs)),
		},
		Cell: cell,
	})
	return b
}

// AddUnresolvedInput adds an input spending outPoint without a resolved cell.
func (b *TransactionBuilder) AddUnresolvedInput(outPoint externalapi.OutPoint) *TransactionBuilder {
	b.tx.Inputs = append(b.tx.Inputs, &externalapi.CellInput{PreviousOutput: outPoint})
	return b
}

// AddOutput adds an output cell.
func (b *TransactionBuilder) AddOutput(cell *externalapi.Cell) *TransactionBuilder {
	b.tx.Outputs = append(b.tx.Outputs, cell)
	return b
}

// Build returns the assembled transaction.
func (b *TransactionBuilder) Build() *externalapi.Transaction {
	return b.tx
}

// InfoTransaction is a built transaction together with the info script its
// info cell carries.
type InfoTransaction struct {
	Transaction *externalapi.Transaction
	InfoScript  *externalapi.Script
}

// Context returns the context the info script runs in.
func (it *InfoTransaction) Context() *txcontext.Context {
	return txcontext.New(it.Transaction, it.InfoScript, Hasher)
}

// DirectLockTransaction spends one 1000 capacity input locked by inputLock
// into a change output of 829 and an info cell of 170 carrying infoData and
// the info script with infoArgs.
func DirectLockTransaction(inputLock *externalapi.Script, infoArgs []byte, infoData []byte) *InfoTransaction {
	infoScript := InfoTypeScript(infoArgs)
	tx := NewTransactionBuilder().
		AddInput(&externalapi.Cell{Capacity: 1000, Lock: inputLock}).
		AddOutput(&externalapi.Cell{Capacity: 829, Lock: inputLock}).
		AddOutput(&externalapi.Cell{Capacity: 170, Lock: inputLock, Type: infoScript, Data: infoData}).
		Build()
	return &InfoTransaction{Transaction: tx, InfoScript: infoScript}
}

// CompanionTransaction spends one 1000 capacity input locked by inputLock
// into a token cell typed by SUDTTypeScript(companionOwner) at output 0 and
// an info cell carrying infoData at output 1. The info script args are the
// token cell's type hash.
func CompanionTransaction(inputLock *externalapi.Script, companionOwner []byte, infoData []byte) *InfoTransaction {
	companionType := SUDTTypeScript(companionOwner)
	return CompanionTransactionWithArgs(inputLock, companionOwner, ScriptHash(companionType), infoData)
}

// CompanionTransactionWithArgs is CompanionTransaction with explicit info
// script args.
func CompanionTransactionWithArgs(inputLock *externalapi.Script, companionOwner []byte,
	infoArgs []byte, infoData []byte) *InfoTransaction {

	infoScript := InfoTypeScript(infoArgs)
	tx := NewTransactionBuilder().
		AddInput(&externalapi.Cell{Capacity: 1000, Lock: inputLock}).
		AddOutput(&externalapi.Cell{Capacity: 142, Lock: inputLock, Type: SUDTTypeScript(companionOwner),
			Data: make([]byte, 16)}).
		AddOutput(&externalapi.Cell{Capacity: 170, Lock: inputLock, Type: infoScript, Data: infoData}).
		AddOutput(&externalapi.Cell{Capacity: 687, Lock: inputLock}).
		Build()
	return &InfoTransaction{Transaction: tx, InfoScript: infoScript}
}
