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
	"fmt"
	"math"

	"github.com/gkehne/alcm/mip"
)

// Problem is a built, solver-ready aLCM instance: the mip model plus
// the mapping from ingredients to their decision variables. It is
// constructed once by Build and not mutated afterwards.
type Problem struct {
	ingredients []Ingredient
	rng         Range

	model *mip.Model
	// xs[i] is the integer block-count variable of ingredients[i];
	// variable order matches input order
	xs []*mip.Variable
	s  *mip.Variable
}

// Build validates the input batch and constructs its mixed-integer
// model:
//
//   - one integer variable x_i ≥ 0 per ingredient (no finite upper
//     bound) and one continuous variable s bounded by rng,
//   - one sufficiency constraint x_i·servingsPerBlock_i − s ≥ 0 per
//     ingredient, so every purchased quantity covers the target
//     serving count (the integer ceiling emerges from optimality
//     pressure, not from explicit rounding),
//   - the waste objective, minimized:
//     Σ x_i·servingsPerBlock_i·costPerServing_i − s·Σ costPerServing_i.
//
// Validation failures are reported as ErrInvalidRange,
// ErrInvalidIngredientData or ErrInvalidIndex before the model is
// completed.
func Build(ingredients []Ingredient, rng Range, opts ...mip.Option) (*Problem, error) {
	if len(ingredients) == 0 {
		return nil, fmt.Errorf("%w: empty batch", ErrInvalidIngredientData)
	}
	if rng.Min > rng.Max {
		return nil, fmt.Errorf("%w: min %g > max %g", ErrInvalidRange, rng.Min, rng.Max)
	}
	if rng.Min < 0 {
		return nil, fmt.Errorf("%w: min %g is negative", ErrInvalidRange, rng.Min)
	}

	seen := make([]bool, len(ingredients))
	var totalCostPerServing float64
	for _, ing := range ingredients {
		if ing.ServingsPerBlock <= 0 {
			return nil, fmt.Errorf("%w: ingredient %q has non-positive servings per block %g",
				ErrInvalidIngredientData, ing.Name, ing.ServingsPerBlock)
		}
		if ing.CostPerServing < 0 {
			return nil, fmt.Errorf("%w: ingredient %q has negative cost per serving %g",
				ErrInvalidIngredientData, ing.Name, ing.CostPerServing)
		}
		if ing.Index < 1 || ing.Index > len(ingredients) {
			return nil, fmt.Errorf("%w: ingredient %q has index %d, want 1..%d",
				ErrInvalidIndex, ing.Name, ing.Index, len(ingredients))
		}
		if seen[ing.Index-1] {
			return nil, fmt.Errorf("%w: ingredient %q duplicates index %d",
				ErrInvalidIndex, ing.Name, ing.Index)
		}
		seen[ing.Index-1] = true
		totalCostPerServing += ing.CostPerServing
	}

	model, err := mip.NewModel("approximate LCM", mip.Minimize, opts...)
	if err != nil {
		return nil, err
	}

	p := &Problem{
		ingredients: append([]Ingredient(nil), ingredients...),
		rng:         rng,
		model:       model,
		xs:          make([]*mip.Variable, len(ingredients)),
	}

	for i, ing := range ingredients {
		x, err := model.AddDefinedVariable(
			fmt.Sprintf("x_%d", ing.Index),
			mip.IntegerVariable,
			ing.ServingsPerBlock*ing.CostPerServing,
			0, math.Inf(1),
		)
		if err != nil {
			return nil, err
		}
		p.xs[i] = x
	}

	// the range constraint on s is expressed through its bounds
	p.s, err = model.AddDefinedVariable("s", mip.ContinuousVariable, -totalCostPerServing, rng.Min, rng.Max)
	if err != nil {
		return nil, err
	}

	for i, ing := range ingredients {
		err := model.AddConstraint(0, math.Inf(1),
			[]*mip.Variable{p.xs[i], p.s},
			[]float64{ing.ServingsPerBlock, -1})
		if err != nil {
			return nil, err
		}
	}

	return p, nil
}

// Model exposes the underlying mip model, e.g. for handing it to an
// alternative solver backend. The model must not be mutated.
func (p *Problem) Model() *mip.Model {
	return p.model
}

// Ingredients returns the validated batch in input order.
func (p *Problem) Ingredients() []Ingredient {
	return append([]Ingredient(nil), p.ingredients...)
}

// Range returns the feasible range the problem was built with.
func (p *Problem) Range() Range {
	return p.rng
}
