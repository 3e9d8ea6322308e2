package model

import "github.com/kaspanet/infoscript/domain/infoscript/model/externalapi"

// OwnerAuthenticator checks that the transaction spends an input locked by
// the owner a companion cell declares
type OwnerAuthenticator interface {
	AuthenticateOwner(ctx externalapi.ExecutionContext, companion *Companion) error
}
