package config

import (
	"os"

	"baccarat-server/internal/util"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"
)

// Config provides configuration for the baccarat server
type Config struct {
	loaded bool

	// AdminPassword gates the admin balance endpoint
	AdminPassword string `yaml:"adminPassword" envconfig:"admin_password"`

	Log struct {
		Level             string `yaml:"level" envconfig:"log_level"`
		DisableAccessLogs bool   `yaml:"disableAccessLogs" envconfig:"disable_access_logs"`
	} `yaml:"log"`

	Game struct {
		// CountdownSeconds is the betting window before each deal
		CountdownSeconds int `yaml:"countdownSeconds" envconfig:"countdown_seconds"`

		// DealDelaySeconds is the pacing between dealt cards
		DealDelaySeconds int `yaml:"dealDelaySeconds" envconfig:"deal_delay_seconds"`

		// SettlePauseSeconds is the gap between settlement and the next countdown
		SettlePauseSeconds int `yaml:"settlePauseSeconds" envconfig:"settle_pause_seconds"`

		// StartingBalance is the stake a new participant begins with
		StartingBalance int `yaml:"startingBalance" envconfig:"starting_balance"`

		// HistorySize is how many completed rounds are retained for briefing new joiners
		HistorySize int `yaml:"historySize" envconfig:"history_size"`
	} `yaml:"game"`

	Payouts struct {
		Player     float64 `yaml:"player" envconfig:"payout_player"`
		Banker     float64 `yaml:"banker" envconfig:"payout_banker"`
		Tie        float64 `yaml:"tie" envconfig:"payout_tie"`
		PlayerPair float64 `yaml:"playerPair" envconfig:"payout_player_pair"`
		BankerPair float64 `yaml:"bankerPair" envconfig:"payout_banker_pair"`
	} `yaml:"payouts"`
}

// DefaultConfig returns the configuration used when no file or environment overrides exist
func DefaultConfig() Config {
	var c Config
	c.Game.CountdownSeconds = 10
	c.Game.DealDelaySeconds = 1
	c.Game.SettlePauseSeconds = 5
	c.Game.StartingBalance = 1000
	c.Game.HistorySize = 9
	c.Payouts.Player = 2.0
	c.Payouts.Banker = 1.9
	c.Payouts.Tie = 8
	c.Payouts.PlayerPair = 10
	c.Payouts.BankerPair = 10

	return c
}

var config Config

// Instance returns a singleton instance
// If the config hasn't been loaded, it will be loaded
func Instance() Config {
	if !config.loaded {
		if err := Load(); err != nil {
			panic(err)
		}
	}

	return config
}

// Load will load the configuration. A missing config file is not an error;
// the defaults apply and the environment can still override them.
func Load() error {
	config = DefaultConfig()

	configFile := util.Getenv("BACCARAT_CONFIG_FILE", "config.yaml")
	file, err := os.Open(configFile)
	if err == nil {
		defer file.Close()
		if err := yaml.NewDecoder(file).Decode(&config); err != nil {
			return err
		}
	} else if !os.IsNotExist(err) {
		return err
	}

	if err := envconfig.Process("baccarat", &config); err != nil {
		return err
	}

	config.loaded = true
	return nil
}
