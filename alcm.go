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

/*
Package alcm computes the approximate least common multiple (aLCM) of a
set of positive real ratios under a linear cost objective.

Given integers x_1,...,x_n, the least common multiple is the smallest
positive integer that is an integer multiple of every x_i. When the x_i
are arbitrary positive reals an exact LCM may not exist; the
approximate LCM over a given range is the real number s within that
range that comes closest to an integer multiple of every x_i at once,
where "closest" is measured by a cost function linear in the x_i.

The motivating example is scaling a recipe: each ingredient is sold in
blocks good for some real number of servings, and servings cost some
amount per ingredient. Choosing a target serving count s within an
admissible range and whole block counts x_i covering it, so that the
cost of servings bought but not used is minimal, is exactly the aLCM
problem. It is solved here as a small mixed-integer linear program:

	minimize    Σ x_i·servingsPerBlock_i·costPerServing_i − s·Σ costPerServing_i
	subject to  x_i·servingsPerBlock_i ≥ s    for every ingredient i
	            Min ≤ s ≤ Max
	            x_i integer ≥ 0, s continuous

Typical use goes through the one-shot pipeline:

	report, err := alcm.Solve(ctx, ingredients, alcm.Range{Min: 100, Max: 200})
	if err != nil {
	    // handle alcm.ErrInvalidRange, mip.ErrModelInfeasible, ...
	}
	fmt.Printf("make %g servings, wasting %.2f\n", report.Summary.ALCM, report.Summary.TotalWaste)

The three stages (Build, the mip.Solver backend, Derive) are also
exported separately so a different solver can be substituted without
touching model construction or result derivation.
*/
package alcm

// Ingredient describes one purchasable ingredient of the batch.
// Values are immutable once read.
type Ingredient struct {
	// Name is purely informational; it is echoed in errors and output.
	Name string
	// Index is the 1-based position of the ingredient in its batch.
	// Across a batch the indices must form a contiguous 1..N
	// permutation.
	Index int
	// ServingsPerBlock is the number of servings producible from one
	// purchased block. Must be positive.
	ServingsPerBlock float64
	// CostPerServing is the cost of a single serving worth of this
	// ingredient. Must not be negative.
	CostPerServing float64
}

// Range bounds the admissible interval for the aLCM output quantity s.
// It applies to the batch as a whole, not per ingredient.
type Range struct {
	Min float64
	Max float64
}

// Row holds the derived purchase figures for one ingredient.
type Row struct {
	// UnitsPurchased is the number of blocks to buy, rounded to three
	// decimals.
	UnitsPurchased float64
	// Cost is the cost of the purchased blocks, rounded to two
	// decimals.
	Cost float64
	// Waste is the portion of Cost not attributable to the realized s
	// servings, rounded to two decimals.
	Waste float64
}

// Summary holds the batch-level figures of a solved instance.
type Summary struct {
	// ALCM is the chosen target serving count s.
	ALCM float64
	// TotalCost is the total purchase cost, rounded to two decimals.
	TotalCost float64
	// TotalWaste is the solved objective value, i.e. the total waste
	// cost across all ingredients, rounded to two decimals.
	TotalWaste float64
}

// Report is the complete output of one solve-and-report cycle: one Row
// per input ingredient, in input order, plus the batch Summary.
type Report struct {
	Rows    []Row
	Summary Summary
}
