package main

import (
	"testing"

	"github.com/Propel-2-Excel/point-system-frontend/internal/config"
)

func TestBuildProviderSelection(t *testing.T) {
	cfg := config.DefaultConfig()
	if got := buildProvider(cfg).ID(); got != "propel" {
		t.Errorf("provider = %s, want propel", got)
	}

	cfg.SnapshotPath = "/tmp/snapshot.json"
	if got := buildProvider(cfg).ID(); got != "snapshot-file" {
		t.Errorf("provider with snapshot path = %s, want snapshot-file", got)
	}
}
