package config

import (
	"os"
	"testing"

	"baccarat-server/internal/util"

	"github.com/stretchr/testify/assert"
)

func TestInstance(t *testing.T) {
	unset1 := util.SetEnv("BACCARAT_CONFIG_FILE", "testdata/config.yaml")
	defer unset1()
	unset2 := util.SetEnv("BACCARAT_ADMIN_PASSWORD", "env-password")
	defer unset2()

	a := assert.New(t)
	config.loaded = false
	cfg := Instance()

	// the environment wins over the file
	a.Equal("env-password", cfg.AdminPassword)

	// file values override the defaults
	a.Equal("debug", cfg.Log.Level)
	a.Equal(15, cfg.Game.CountdownSeconds)
	a.Equal(2500, cfg.Game.StartingBalance)
	a.Equal(1.95, cfg.Payouts.Banker)

	// untouched values keep their defaults
	a.Equal(5, cfg.Game.SettlePauseSeconds)
	a.Equal(9, cfg.Game.HistorySize)
	a.Equal(2.0, cfg.Payouts.Player)

	// ensure that it's only loaded once
	_ = os.Setenv("BACCARAT_ADMIN_PASSWORD", "other-password")
	// ensure we aren't using a pointer
	cfg.AdminPassword = "bad"
	cfg = Instance()
	a.Equal("env-password", cfg.AdminPassword)
}

func TestDefaults(t *testing.T) {
	unset := util.SetEnv("BACCARAT_CONFIG_FILE", "testdata/does-not-exist.yaml")
	defer unset()

	a := assert.New(t)
	config.loaded = false
	a.NoError(Load())

	cfg := Instance()
	a.Equal("", cfg.AdminPassword)
	a.Equal(10, cfg.Game.CountdownSeconds)
	a.Equal(1, cfg.Game.DealDelaySeconds)
	a.Equal(5, cfg.Game.SettlePauseSeconds)
	a.Equal(1000, cfg.Game.StartingBalance)
	a.Equal(9, cfg.Game.HistorySize)
	a.Equal(1.9, cfg.Payouts.Banker)
	a.Equal(float64(10), cfg.Payouts.PlayerPair)
}
