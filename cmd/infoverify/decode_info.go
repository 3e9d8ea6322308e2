package main

import (
	"fmt"

	"github.com/kaspanet/infoscript/domain/infoscript/tokeninfo"
)

func decodeInfo(conf *decodeInfoConfig) error {
	data, err := decodeHex(conf.Data)
	if err != nil {
		return err
	}
	info, err := tokeninfo.Decode(data)
	if err != nil {
		return err
	}

	fmt.Printf("Decimals: %d\n", info.Decimals)
	fmt.Printf("Name:     %s\n", info.Name)
	fmt.Printf("Symbol:   %s\n", info.Symbol)
	for _, extra := range info.Extra {
		fmt.Printf("          %s\n", extra)
	}
	return nil
}
