package argsextractor

import (
	"github.com/kaspanet/infoscript/infrastructure/logger"
)

var log = logger.RegisterSubSystem("ARGX")
