package infoscript

import (
	"os"
	"testing"

	"github.com/kaspanet/infoscript/infrastructure/logger"
)

func TestMain(m *testing.M) {
	log.SetLevel(logger.LevelTrace)

	os.Exit(m.Run())
}
