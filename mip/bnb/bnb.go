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

// Package bnb is the default mip.Solver backend: branch-and-bound over
// the LP relaxation, with the relaxation delegated to gonum's simplex
// implementation (gonum.org/v1/gonum/optimize/convex/lp).
//
// The search is deterministic: nodes are explored depth-first,
// branching always happens on the lowest-index fractional integer
// variable, and the "round up" branch is explored before the "round
// down" branch. Given identical inputs, identical solutions are
// returned.
package bnb

import (
	"context"
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/optimize/convex/lp"

	"github.com/gkehne/alcm/mip"
)

const (
	defaultIntTol    = 1e-6
	defaultNodeLimit = 50000

	// pruneTol guards against re-exploring nodes whose relaxation ties
	// the incumbent up to numerical noise.
	pruneTol = 1e-9
)

// Solver solves mixed-integer linear models by branch-and-bound.
// The zero value is not usable; use New.
type Solver struct {
	// IntTol is the maximum distance from an integer at which a value
	// is accepted as integral.
	IntTol float64
	// NodeLimit caps the number of explored subproblems; exceeding it
	// aborts the solve with mip.ErrNodeLimit.
	NodeLimit int
}

// New returns a Solver with default tolerances.
func New() *Solver {
	return &Solver{
		IntTol:    defaultIntTol,
		NodeLimit: defaultNodeLimit,
	}
}

type node struct {
	lower []float64
	upper []float64
}

// Solve attempts to find an optimal solution to the model.
// On success the returned Result holds one value per model variable.
// Failures are reported as mip.SolveError values: ErrModelInfeasible,
// ErrModelUnbounded, ErrSolveAborted (context cancelled or expired),
// ErrNodeLimit or ErrNumericalFailure.
func (s *Solver) Solve(ctx context.Context, model *mip.Model) (*mip.Result, error) {
	vars := model.Variables()
	n := len(vars)
	if n == 0 {
		return nil, fmt.Errorf("%w: model %q has no variables", mip.ErrNumericalFailure, model.Name())
	}

	c := make([]float64, n)
	integer := make([]bool, n)
	root := node{
		lower: make([]float64, n),
		upper: make([]float64, n),
	}
	for i, v := range vars {
		c[i] = v.ObjectiveCoefficient()
		integer[i] = v.Type() != mip.ContinuousVariable
		root.lower[i], root.upper[i] = v.Bounds()
	}

	// the search minimizes; maximization is solved on the negated
	// objective and flipped back at the end
	maximize := model.Direction() == mip.Maximize
	if maximize {
		for i := range c {
			c[i] = -c[i]
		}
	}

	rows := model.Constraints()

	var (
		bestX   []float64
		bestObj = math.Inf(1)
		visited int
	)

	stack := []node{root}
	for len(stack) > 0 {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("%w: %v", mip.ErrSolveAborted, err)
		}
		visited++
		if visited > s.NodeLimit {
			return nil, mip.ErrNodeLimit
		}

		nd := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		x, obj, err := solveRelaxation(c, rows, nd.lower, nd.upper)
		switch {
		case errors.Is(err, mip.ErrModelInfeasible):
			continue // prune: no solution in this subtree
		case errors.Is(err, mip.ErrModelUnbounded) && visited > 1:
			// every subtree is contained in the root relaxation, so
			// once the root solved bounded this is a simplex artifact,
			// not a property of the model
			return nil, fmt.Errorf("%w: relaxation reported unbounded below the root", mip.ErrNumericalFailure)
		case err != nil:
			return nil, err
		}

		if obj >= bestObj-pruneTol {
			continue // prune: relaxation cannot beat the incumbent
		}

		j := firstFractional(x, integer, s.IntTol)
		if j < 0 {
			snapIntegers(x, integer)
			bestX = x
			bestObj = dot(c, x)
			continue
		}

		floor := math.Floor(x[j])

		down := nd.clone()
		down.upper[j] = math.Min(down.upper[j], floor)
		up := nd.clone()
		up.lower[j] = math.Max(up.lower[j], floor+1)

		// LIFO: the up branch is popped, and therefore explored, first
		stack = append(stack, down, up)
	}

	if bestX == nil {
		return nil, mip.ErrModelInfeasible
	}

	if maximize {
		bestObj = -bestObj
	}

	model.Logf("branch-and-bound finished: %d nodes, objective %g", visited, bestObj)

	return mip.NewResult(model, mip.SolutionOptimal, bestX, bestObj)
}

// feasTol bounds the constraint violation accepted when a row is
// decided by substitution alone.
const feasTol = 1e-9

// solveRelaxation solves the continuous relaxation of the subproblem
// given by the shared constraint rows and the node's variable bounds.
//
// Variables pinned to a point (lower == upper, as branching does to
// integer variables) are substituted out before the program reaches
// the simplex: encoding a pinned variable as a pair of opposing
// inequality rows produces a degenerate standard form that gonum's
// simplex can misreport as unbounded. The reduced program over the
// remaining variables is converted to standard form and handed to
// lp.Simplex; the pinned values are spliced back into the solution.
func solveRelaxation(c []float64, rows []mip.Constraint, lower, upper []float64) (x []float64, obj float64, err error) {
	n := len(c)

	pinned := make([]float64, n)
	col := make([]int, n) // original index -> reduced column, -1 when pinned
	var free []int        // reduced column -> original index
	var offset float64    // objective contribution of the pinned variables
	for j := 0; j < n; j++ {
		switch {
		case lower[j] > upper[j]:
			return nil, 0, mip.ErrModelInfeasible
		case lower[j] == upper[j]:
			pinned[j] = lower[j]
			offset += c[j] * lower[j]
			col[j] = -1
		default:
			col[j] = len(free)
			free = append(free, j)
		}
	}
	m := len(free)

	var (
		gRows, aRows [][]float64
		h, b         []float64
	)

	for _, cn := range rows {
		r := make([]float64, m)
		var shift float64
		reduced := true
		for k, idx := range cn.Indices {
			if col[idx] < 0 {
				shift += cn.Coefs[k] * pinned[idx]
			} else {
				r[col[idx]] += cn.Coefs[k]
				reduced = false
			}
		}
		if reduced {
			// every variable in the row is pinned; the row is a
			// constant and is checked here instead of being handed to
			// the simplex
			if shift < cn.Lower-feasTol || shift > cn.Upper+feasTol {
				return nil, 0, mip.ErrModelInfeasible
			}
			continue
		}
		lo, up := cn.Lower, cn.Upper
		if !math.IsInf(lo, -1) {
			lo -= shift
		}
		if !math.IsInf(up, 1) {
			up -= shift
		}
		if lo == up {
			aRows = append(aRows, r)
			b = append(b, lo)
			continue
		}
		if !math.IsInf(up, 1) {
			gRows = append(gRows, r)
			h = append(h, up)
		}
		if !math.IsInf(lo, -1) {
			neg := make([]float64, m)
			for k, v := range r {
				neg[k] = -v
			}
			gRows = append(gRows, neg)
			h = append(h, -lo)
		}
	}

	if m == 0 {
		// fully pinned node; all rows were decided above
		return append([]float64(nil), pinned...), offset, nil
	}

	// bounds of the remaining variables become inequality rows: the
	// standard-form conversion below treats all variables as free
	for k, j := range free {
		if !math.IsInf(upper[j], 1) {
			r := make([]float64, m)
			r[k] = 1
			gRows = append(gRows, r)
			h = append(h, upper[j])
		}
		if !math.IsInf(lower[j], -1) {
			r := make([]float64, m)
			r[k] = -1
			gRows = append(gRows, r)
			h = append(h, -lower[j])
		}
	}

	cRed := make([]float64, m)
	for k, j := range free {
		cRed[k] = c[j]
	}

	var g, a mat.Matrix
	var hVec, bVec []float64
	if len(gRows) > 0 {
		g = denseOf(gRows, m)
		hVec = h
	}
	if len(aRows) > 0 {
		a = denseOf(aRows, m)
		bVec = b
	}

	cStd, aStd, bStd := lp.Convert(cRed, g, hVec, a, bVec)

	obj, xStd, err := lp.Simplex(cStd, aStd, bStd, 0, nil)
	if err != nil {
		switch {
		case errors.Is(err, lp.ErrInfeasible):
			return nil, 0, mip.ErrModelInfeasible
		case errors.Is(err, lp.ErrUnbounded):
			return nil, 0, mip.ErrModelUnbounded
		default:
			return nil, 0, fmt.Errorf("%w: %v", mip.ErrNumericalFailure, err)
		}
	}

	// Convert splits each free variable v into v⁺ - v⁻; the first m
	// standard variables are the positive parts, the next m the
	// negative parts
	x = append([]float64(nil), pinned...)
	for k, j := range free {
		x[j] = xStd[k] - xStd[m+k]
	}

	return x, obj + offset, nil
}

func denseOf(rows [][]float64, n int) *mat.Dense {
	flat := make([]float64, 0, len(rows)*n)
	for _, r := range rows {
		flat = append(flat, r...)
	}
	return mat.NewDense(len(rows), n, flat)
}

func firstFractional(x []float64, integer []bool, tol float64) int {
	for j, v := range x {
		if integer[j] && math.Abs(v-math.Round(v)) > tol {
			return j
		}
	}
	return -1
}

func snapIntegers(x []float64, integer []bool) {
	for j := range x {
		if integer[j] {
			x[j] = math.Round(x[j])
		}
	}
}

func dot(a, b []float64) float64 {
	var sum float64
	for i := range a {
		sum += a[i] * b[i]
	}
	return sum
}

func (nd node) clone() node {
	return node{
		lower: append([]float64(nil), nd.lower...),
		upper: append([]float64(nil), nd.upper...),
	}
}
