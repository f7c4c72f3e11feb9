// cmd/alcm/config.go
package main

import (
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
	"github.com/urfave/cli/v2"
)

type config struct {
	Input   string
	Output  string
	Timeout time.Duration
	Verbose bool
}

// loadConfig merges, in increasing precedence: built-in defaults,
// a .env file if present, ALCM_* environment variables, and command
// line flags.
func loadConfig(c *cli.Context) config {
	// Load .env file if it exists
	_ = godotenv.Load()

	v := viper.New()
	v.SetEnvPrefix("ALCM")
	v.AutomaticEnv()

	v.SetDefault("input", "ALCMData.csv")
	v.SetDefault("output", "ALCMOutput.csv")
	v.SetDefault("timeout", time.Duration(0))
	v.SetDefault("verbose", false)

	cfg := config{
		Input:   v.GetString("input"),
		Output:  v.GetString("output"),
		Timeout: v.GetDuration("timeout"),
		Verbose: v.GetBool("verbose"),
	}

	if c.IsSet("input") {
		cfg.Input = c.String("input")
	}
	if c.IsSet("output") {
		cfg.Output = c.String("output")
	}
	if c.IsSet("timeout") {
		cfg.Timeout = c.Duration("timeout")
	}
	if c.IsSet("verbose") {
		cfg.Verbose = c.Bool("verbose")
	}

	return cfg
}
