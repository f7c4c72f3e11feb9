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

package mip

import (
	"context"
	"fmt"
)

/* Types */

// Solver is the narrow contract every solver backend fulfills: submit
// a model, receive an optimal Result or a failure status. A failure is
// reported as a SolveError (possibly wrapped with further context).
type Solver interface {
	Solve(ctx context.Context, model *Model) (*Result, error)
}

// Result holds the outcome of a successful solve: one value per model
// variable plus the achieved objective value. It is read-only.
type Result struct {
	model     *Model
	status    SolveStatus
	values    []float64
	objective float64
}

type SolveStatus int

const (
	SolutionOptimal SolveStatus = iota
	SolutionSuboptimal
)

type SolveError int

const (
	ErrModelInfeasible SolveError = iota + 1
	ErrModelUnbounded
	ErrSolveAborted
	ErrNodeLimit
	ErrNumericalFailure
)

// Error returns a string representation of the given error value.
func (e SolveError) Error() string {
	switch e {
	case ErrModelInfeasible:
		return "model is infeasible"
	case ErrModelUnbounded:
		return "model is unbounded"
	case ErrSolveAborted:
		return "solve aborted"
	case ErrNodeLimit:
		return "node limit exceeded before an optimal solution was found"
	case ErrNumericalFailure:
		return "numerical failure while solving"
	default:
		panic("unrecognized error")
	}
}

// NewResult assembles a Result from raw solver output. It is intended
// for solver backends; values must hold one entry per model variable,
// in creation order.
func NewResult(model *Model, status SolveStatus, values []float64, objective float64) (*Result, error) {
	if len(values) != model.VariableCount() {
		return nil, fmt.Errorf("inconsistent number of values and variables: %d != %d", len(values), model.VariableCount())
	}

	return &Result{
		model:     model,
		status:    status,
		values:    append([]float64(nil), values...),
		objective: objective,
	}, nil
}

// Status reports if the solution is optimal (SolutionOptimal) or
// not (SolutionSuboptimal)
func (res *Result) Status() SolveStatus {
	return res.status
}

// Value returns the computed value of the given variable for this
// optimization result.
func (res *Result) Value(v *Variable) float64 {
	return res.values[v.index]
}

// ObjectiveValue returns the value of the objective function for
// this optimization result. This value is only optimal if Status
// also returns SolutionOptimal.
func (res *Result) ObjectiveValue() float64 {
	return res.objective
}
