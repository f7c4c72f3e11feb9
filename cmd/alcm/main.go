/*
Copyright © 2024 Gregory Kehne

This program is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

This program is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with this program.  If not, see <http://www.gnu.org/licenses/>.
*/

// Command alcm reads a batch of ingredients from a CSV file, computes
// the waste-minimizing approximate LCM, and writes the purchase plan
// back out as CSV.
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/urfave/cli/v2"

	"github.com/gkehne/alcm"
	"github.com/gkehne/alcm/csvio"
)

func main() {
	app := &cli.App{
		Name:  "alcm",
		Usage: "compute the waste-minimizing approximate LCM of a batch of ingredients",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "input",
				Aliases: []string{"i"},
				Usage:   "input CSV `FILE` (overrides ALCM_INPUT)",
			},
			&cli.StringFlag{
				Name:    "output",
				Aliases: []string{"o"},
				Usage:   "output CSV `FILE` (overrides ALCM_OUTPUT)",
			},
			&cli.DurationFlag{
				Name:  "timeout",
				Usage: "abort the solve after `DURATION` (0 means no limit)",
			},
			&cli.BoolFlag{
				Name:    "verbose",
				Aliases: []string{"v"},
				Usage:   "log solver progress",
			},
		},
		Action: run,
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "alcm: %v\n", err)
		os.Exit(1)
	}
}

func run(c *cli.Context) error {
	cfg := loadConfig(c)
	log := newLogger(cfg.Verbose)

	in, err := os.Open(cfg.Input)
	if err != nil {
		return err
	}
	defer in.Close()

	ingredients, rng, err := csvio.Read(in)
	if err != nil {
		return fmt.Errorf("reading %s: %w", cfg.Input, err)
	}
	log.Debug().
		Int("ingredients", len(ingredients)).
		Float64("min", rng.Min).
		Float64("max", rng.Max).
		Msg("batch loaded")

	opts := []alcm.Option{alcm.WithLogger(printLogger{log})}
	if cfg.Timeout > 0 {
		opts = append(opts, alcm.WithTimeout(cfg.Timeout))
	}

	start := time.Now()
	report, err := alcm.Solve(c.Context, ingredients, rng, opts...)
	if err != nil {
		return err
	}

	out, err := os.Create(cfg.Output)
	if err != nil {
		return err
	}
	defer out.Close()

	if err := csvio.Write(out, ingredients, rng, report); err != nil {
		return fmt.Errorf("writing %s: %w", cfg.Output, err)
	}

	log.Info().
		Float64("alcm", report.Summary.ALCM).
		Float64("total_cost", report.Summary.TotalCost).
		Float64("total_waste", report.Summary.TotalWaste).
		Dur("elapsed", time.Since(start)).
		Str("output", cfg.Output).
		Msg("solved")

	return nil
}

func newLogger(verbose bool) zerolog.Logger {
	level := zerolog.InfoLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(level).
		With().Timestamp().Logger()
}

// printLogger adapts zerolog to the model's Logger interface.
type printLogger struct {
	log zerolog.Logger
}

func (l printLogger) Print(v ...interface{}) {
	l.log.Debug().Msg(fmt.Sprint(v...))
}
