package companionlocator

import (
	"github.com/kaspanet/infoscript/infrastructure/logger"
)

var log = logger.RegisterSubSystem("CMPL")
