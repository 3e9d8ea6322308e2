package main

import (
	"fmt"
	"strings"

	"github.com/kaspanet/infoscript/domain/infoscript"
	"github.com/kaspanet/infoscript/version"
)

func printVersion(_ *versionConfig) error {
	fmt.Printf("infoverify version %s\n", version.Version())
	fmt.Printf("Info script variants: %s (default: %s)\n",
		strings.Join(infoscript.VariantNames(), ", "), infoscript.DefaultVariant.Name)
	return nil
}
