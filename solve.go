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

package alcm

import (
	"context"
	"time"

	"github.com/gkehne/alcm/mip"
	"github.com/gkehne/alcm/mip/bnb"
)

type config struct {
	solver    mip.Solver
	timeout   time.Duration
	modelOpts []mip.Option
}

type Option func(*config)

// WithSolver substitutes the solver backend used by Solve. The default
// is bnb.New().
func WithSolver(s mip.Solver) Option {
	return func(c *config) {
		c.solver = s
	}
}

// WithTimeout bounds the wall-clock time of the solver invocation.
// Expiry surfaces as mip.ErrSolveAborted.
func WithTimeout(d time.Duration) Option {
	return func(c *config) {
		c.timeout = d
	}
}

// WithLogger attaches a logger to the built model, receiving solver
// progress messages.
func WithLogger(logger mip.Logger) Option {
	return func(c *config) {
		c.modelOpts = append(c.modelOpts, mip.WithLogger(logger))
	}
}

// Solve runs the full pipeline on one batch: build the model, solve
// it, derive the report. The three stages run synchronously, in a
// single pass; on any failure no partial report is produced.
//
// Errors are either validation failures from Build (ErrInvalidRange,
// ErrInvalidIngredientData, ErrInvalidIndex) or solve failures from
// the backend (mip.ErrModelInfeasible when the range is incompatible
// with achievable coverage, mip.ErrModelUnbounded, or another
// mip.SolveError).
func Solve(ctx context.Context, ingredients []Ingredient, rng Range, opts ...Option) (*Report, error) {
	cfg := config{solver: bnb.New()}
	for _, opt := range opts {
		opt(&cfg)
	}

	p, err := Build(ingredients, rng, cfg.modelOpts...)
	if err != nil {
		return nil, err
	}

	if cfg.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cfg.timeout)
		defer cancel()
	}

	res, err := cfg.solver.Solve(ctx, p.Model())
	if err != nil {
		return nil, err
	}

	return p.Derive(res), nil
}
