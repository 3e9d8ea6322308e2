package main

import (
	"fmt"

	"github.com/kaspanet/infoscript/domain/infoscript"
	"github.com/kaspanet/infoscript/domain/infoscript/model/externalapi"
	"github.com/kaspanet/infoscript/domain/infoscript/scriptgroup"
	"github.com/kaspanet/infoscript/domain/infoscript/utils/hashes"
	"github.com/kaspanet/infoscript/infrastructure/db/cellstore"
)

func verify(conf *verifyConfig) error {
	variant, err := conf.resolveVariant()
	if err != nil {
		return err
	}
	infoCodeHash, err := externalapi.NewDomainHashFromString(conf.InfoCodeHash)
	if err != nil {
		return err
	}
	tx, err := readTransactionFile(conf.Transaction)
	if err != nil {
		return err
	}

	if conf.CellStore != "" {
		err = resolveInputs(conf.CellStore, tx)
		if err != nil {
			return err
		}
	}

	hasher := hashes.Blake2bHasher{}
	verifier, err := infoscript.NewFactory().NewVerifier(&infoscript.Config{
		Variant:   variant,
		MaxCycles: conf.MaxCycles,
	}, hasher)
	if err != nil {
		return err
	}
	runner := scriptgroup.NewRunner(verifier, hasher, infoCodeHash)

	groups := runner.Groups(tx)
	if len(groups) == 0 {
		fmt.Printf("The transaction carries no info cells with code hash %s\n", infoCodeHash)
		return nil
	}
	log.Infof("Verifying %d info script groups with variant %s", len(groups), variant.Name)

	cycles, err := runner.VerifyTransaction(tx)
	if err != nil {
		return err
	}
	fmt.Printf("The transaction passed verification of %d info script groups in %d cycles\n", len(groups), cycles)
	return nil
}

func resolveInputs(cellStorePath string, tx *externalapi.Transaction) error {
	store, err := cellstore.OpenReadOnly(cellStorePath)
	if err != nil {
		return err
	}
	defer store.Close()

	return store.ResolveInputs(tx)
}
