package model

import "github.com/kaspanet/infoscript/domain/infoscript/model/externalapi"

// Companion is the cell an info script's args point at.
type Companion struct {
	Source externalapi.Source
	Index  int

	// TypeScript is the companion's type script, if the locator loaded it.
	TypeScript *externalapi.Script

	// OwnerAuthenticated is set when locating the companion already proved
	// that an input is locked by the owner's lock.
	OwnerAuthenticated bool
}

// LocatorStrategy selects how the args of an info script identify its
// companion cell.
type LocatorStrategy uint8

const (
	// LocateByInputLockHash treats the args as the owner's lock hash and
	// looks for an input locked by it.
	LocateByInputLockHash LocatorStrategy = iota

	// LocateByOutputTypeHash treats the args as a type hash and looks for
	// an output whose type hash, as reported by the host, equals it.
	LocateByOutputTypeHash

	// LocateByOutputDescriptorHash treats the args as the hash of a
	// serialized type script and hashes each output type script to find it.
	LocateByOutputDescriptorHash
)

var locatorStrategyNames = map[LocatorStrategy]string{
	LocateByInputLockHash:        "input-lock-hash",
	LocateByOutputTypeHash:       "output-type-hash",
	LocateByOutputDescriptorHash: "output-descriptor-hash",
}

func (strategy LocatorStrategy) String() string {
	return locatorStrategyNames[strategy]
}
