package main

import (
	"fmt"

	"github.com/kaspanet/infoscript/domain/infoscript/model/externalapi"
	"github.com/kaspanet/infoscript/infrastructure/db/cellstore"
)

func importCells(conf *importCellsConfig) error {
	txHash, err := externalapi.NewDomainHashFromString(conf.TxHash)
	if err != nil {
		return err
	}
	tx, err := readTransactionFile(conf.Transaction)
	if err != nil {
		return err
	}

	store, err := cellstore.Open(conf.CellStore)
	if err != nil {
		return err
	}
	defer store.Close()

	err = store.PutTransactionOutputs(txHash, tx)
	if err != nil {
		return err
	}
	count, err := store.CellCount()
	if err != nil {
		return err
	}
	fmt.Printf("Imported %d cells of transaction %s, the store holds %d cells\n", len(tx.Outputs), txHash, count)
	return nil
}
