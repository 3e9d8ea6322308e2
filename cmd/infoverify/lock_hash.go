package main

import (
	"fmt"

	"github.com/kaspanet/infoscript/domain/infoscript/utils/hashes"
	"github.com/kaspanet/infoscript/domain/infoscript/utils/scripthashing"
	"github.com/kaspanet/infoscript/util/address"
)

func lockHash(conf *lockHashConfig) error {
	lock, prefix, err := address.Decode(conf.Address)
	if err != nil {
		return err
	}
	log.Debugf("Address %s on %s decodes to lock %s", conf.Address, prefix, lock)

	fmt.Printf("Lock:      %s\n", lock)
	fmt.Printf("Lock hash: 0x%s\n", scripthashing.ScriptHash(hashes.Blake2bHasher{}, lock))
	return nil
}
