package main

import (
	"testing"
	"time"

	"github.com/vovakirdan/tileblast/internal/config"
	"github.com/vovakirdan/tileblast/internal/platform/tui"
)

func TestServeConfig(t *testing.T) {
	oldCfg := appConfig
	oldAddr, oldKey, oldIdle, oldLevel := flagSSHAddr, flagHostKey, flagIdleTimeout, flagDefaultLevel
	t.Cleanup(func() {
		appConfig = oldCfg
		flagSSHAddr, flagHostKey, flagIdleTimeout, flagDefaultLevel = oldAddr, oldKey, oldIdle, oldLevel
	})

	appConfig = config.DefaultConfig()
	appConfig.Storage.DBPath = "/tmp/results.db"
	flagSSHAddr = ":2222"
	flagHostKey = ""
	flagIdleTimeout = 0
	flagDefaultLevel = 3

	cfg := serveConfig()
	def := tui.DefaultSSHServerConfig()

	if cfg.Address != ":2222" || cfg.DefaultLevel != 3 {
		t.Errorf("flags not applied: %+v", cfg)
	}
	if cfg.DBPath != "/tmp/results.db" {
		t.Errorf("db path should come from config, got %q", cfg.DBPath)
	}
	if cfg.IdleTimeout != def.IdleTimeout {
		t.Errorf("zero idle timeout should keep default %v, got %v", def.IdleTimeout, cfg.IdleTimeout)
	}

	flagIdleTimeout = 5
	if got := serveConfig().IdleTimeout; got != 5*time.Minute {
		t.Errorf("expected 5m idle timeout, got %v", got)
	}
}
