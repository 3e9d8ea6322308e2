package model

import "github.com/kaspanet/infoscript/domain/infoscript/model/externalapi"

// CompanionLocator finds the cell an info script's args refer to. Locators
// that hash scripts themselves do so with hasher.
type CompanionLocator interface {
	LocateCompanion(ctx externalapi.ExecutionContext, hasher externalapi.Hasher, args []byte) (*Companion, error)
}
