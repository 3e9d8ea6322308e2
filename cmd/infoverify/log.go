package main

import (
	"github.com/kaspanet/infoscript/infrastructure/logger"
)

var log = logger.RegisterSubSystem("IVRF")
