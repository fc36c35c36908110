package config

import (
	"time"

	"github.com/joeshaw/envdecode"
	"github.com/ratel-online/eights/consts"
)

const (
	OutputTerminal = "terminal"
	OutputJSON     = "json"
)

type Config struct {
	PlayerName    string        `env:"EIGHTS_PLAYER_NAME,default=You"`
	ComputerDelay time.Duration `env:"EIGHTS_COMPUTER_DELAY,default=1500ms"`
	Seed          int64         `env:"EIGHTS_SEED,default=0"`
	Output        string        `env:"EIGHTS_OUTPUT,default=terminal"`
	NoColor       bool          `env:"EIGHTS_NO_COLOR,default=false"`
	SweepInterval time.Duration `env:"EIGHTS_SWEEP_INTERVAL,default=1m"`
	IdleTimeout   time.Duration `env:"EIGHTS_IDLE_TIMEOUT,default=30m"`
}

func Default() Config {
	return Config{
		PlayerName:    "You",
		ComputerDelay: consts.ComputerMoveDelay,
		Output:        OutputTerminal,
		SweepInterval: consts.SweepInterval,
		IdleTimeout:   consts.TableIdleTimeout,
	}
}

// Load reads the environment on top of the defaults.
func Load() (Config, error) {
	cfg := Default()
	if err := envdecode.Decode(&cfg); err != nil && err != envdecode.ErrNoTargetFieldsAreSet {
		return cfg, err
	}
	if cfg.Output != OutputJSON {
		cfg.Output = OutputTerminal
	}
	if cfg.ComputerDelay < 0 {
		cfg.ComputerDelay = 0
	}
	return cfg, nil
}

// SeedOrNow returns the configured seed, or the current time when none was given.
func (c Config) SeedOrNow() int64 {
	if c.Seed != 0 {
		return c.Seed
	}
	return time.Now().UnixNano()
}
