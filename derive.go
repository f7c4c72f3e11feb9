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
	"math"

	"github.com/gkehne/alcm/mip"
)

// Derive converts a solved result back into per-ingredient purchase
// figures and the batch summary. The result must come from solving
// p.Model(); it is consumed read-only.
//
// Per ingredient i with block count x_i and target serving count s:
//
//	UnitsPurchased_i = round(x_i, 3)
//	Cost_i           = round(x_i·servingsPerBlock_i·costPerServing_i, 2)
//	Waste_i          = round(Cost_i − s·costPerServing_i, 2)
//
// TotalWaste is the rounded objective value; TotalCost adds the cost
// of exactly s servings at the blended per-serving cost.
func (p *Problem) Derive(res *mip.Result) *Report {
	s := res.Value(p.s)

	var totalCostPerServing float64
	rows := make([]Row, len(p.ingredients))
	for i, ing := range p.ingredients {
		x := res.Value(p.xs[i])
		cost := round(x*ing.ServingsPerBlock*ing.CostPerServing, 2)
		rows[i] = Row{
			UnitsPurchased: round(x, 3),
			Cost:           cost,
			Waste:          round(cost-s*ing.CostPerServing, 2),
		}
		totalCostPerServing += ing.CostPerServing
	}

	waste := res.ObjectiveValue()
	minCost := s * totalCostPerServing

	return &Report{
		Rows: rows,
		Summary: Summary{
			ALCM:       s,
			TotalCost:  round(waste+minCost, 2),
			TotalWaste: round(waste, 2),
		},
	}
}

// round rounds v to the given number of decimal places.
func round(v float64, places int) float64 {
	shift := math.Pow(10, float64(places))
	return math.Round(v*shift) / shift
}
