package ownerauthenticator

import (
	"github.com/kaspanet/infoscript/infrastructure/logger"
)

var log = logger.RegisterSubSystem("OWNR")
