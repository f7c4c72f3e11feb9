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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gkehne/alcm/mip"
)

// the cookie batch: chocolate chips come 12 servings to the bag at
// 0.50 a serving, butter 8 servings to the block at 1.00 a serving
func cookieBatch() []Ingredient {
	return []Ingredient{
		{Name: "chocolate chips", Index: 1, ServingsPerBlock: 12, CostPerServing: 0.5},
		{Name: "butter", Index: 2, ServingsPerBlock: 8, CostPerServing: 1},
	}
}

func TestBuildModelShape(t *testing.T) {
	p, err := Build(cookieBatch(), Range{Min: 10, Max: 20})
	require.NoError(t, err)

	model := p.Model()
	assert.Equal(t, mip.Minimize, model.Direction())
	assert.Equal(t, 3, model.VariableCount())   // x_1, x_2 and s
	assert.Equal(t, 2, model.ConstraintCount()) // one sufficiency row per ingredient

	vars := model.Variables()

	assert.Equal(t, "x_1", vars[0].Name())
	assert.Equal(t, mip.IntegerVariable, vars[0].Type())
	assert.Equal(t, 6.0, vars[0].ObjectiveCoefficient()) // 12 * 0.5

	assert.Equal(t, "x_2", vars[1].Name())
	assert.Equal(t, mip.IntegerVariable, vars[1].Type())
	assert.Equal(t, 8.0, vars[1].ObjectiveCoefficient()) // 8 * 1

	assert.Equal(t, "s", vars[2].Name())
	assert.Equal(t, mip.ContinuousVariable, vars[2].Type())
	assert.Equal(t, -1.5, vars[2].ObjectiveCoefficient()) // -(0.5 + 1)
	l, h := vars[2].Bounds()
	assert.Equal(t, 10.0, l)
	assert.Equal(t, 20.0, h)

	cons := model.Constraints()
	require.Len(t, cons, 2)
	assert.Equal(t, []float64{12, -1}, cons[0].Coefs)
	assert.Equal(t, []float64{8, -1}, cons[1].Coefs)
}

func TestBuildInvalidRange(t *testing.T) {
	_, err := Build(cookieBatch(), Range{Min: 20, Max: 10})
	assert.ErrorIs(t, err, ErrInvalidRange)

	_, err = Build(cookieBatch(), Range{Min: -1, Max: 10})
	assert.ErrorIs(t, err, ErrInvalidRange)
}

func TestBuildInvalidIngredientData(t *testing.T) {
	bad := cookieBatch()
	bad[1].ServingsPerBlock = 0
	_, err := Build(bad, Range{Min: 10, Max: 20})
	assert.ErrorIs(t, err, ErrInvalidIngredientData)
	assert.ErrorContains(t, err, "butter")

	bad = cookieBatch()
	bad[0].CostPerServing = -0.5
	_, err = Build(bad, Range{Min: 10, Max: 20})
	assert.ErrorIs(t, err, ErrInvalidIngredientData)
	assert.ErrorContains(t, err, "chocolate chips")

	_, err = Build(nil, Range{Min: 10, Max: 20})
	assert.ErrorIs(t, err, ErrInvalidIngredientData)
}

func TestBuildInvalidIndex(t *testing.T) {
	dup := cookieBatch()
	dup[1].Index = 1
	_, err := Build(dup, Range{Min: 10, Max: 20})
	assert.ErrorIs(t, err, ErrInvalidIndex)

	gap := cookieBatch()
	gap[1].Index = 3
	_, err = Build(gap, Range{Min: 10, Max: 20})
	assert.ErrorIs(t, err, ErrInvalidIndex)

	zero := cookieBatch()
	zero[0].Index = 0
	_, err = Build(zero, Range{Min: 10, Max: 20})
	assert.ErrorIs(t, err, ErrInvalidIndex)
}
