package main

import (
	"testing"

	"github.com/kaspanet/infoscript/infrastructure/logger"
)

func TestSubsystemsHaveTheirOwnTags(t *testing.T) {
	registered := make(map[string]bool)
	for _, subsystem := range logger.SupportedSubsystems() {
		registered[subsystem] = true
	}
	for _, tag := range []string{"IVRF", "ISCR", "ARGX", "CMPL", "OWNR", "PYLD", "SGRP", "CLST"} {
		if !registered[tag] {
			t.Errorf("subsystem %s is not registered, got %v", tag, logger.SupportedSubsystems())
		}
	}
}
