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

type Variable struct {
	model *Model
	index int
	name  string
	typ   VariableType
	lower float64
	upper float64
	coef  float64
}

type VariableType int

const (
	ContinuousVariable VariableType = iota
	IntegerVariable
	BinaryVariable
)

/* Variable-related functions (model variables, as opposed to Go variables) */

// Index returns the position of the variable in its model, counting
// from zero in order of creation.
func (v *Variable) Index() int {
	return v.index
}

func (v *Variable) Name() string {
	v.model.mu.RLock()
	defer v.model.mu.RUnlock()

	return v.name
}

func (v *Variable) SetType(vartype VariableType) {
	v.model.mu.Lock()
	defer v.model.mu.Unlock()

	v.typ = vartype
	if vartype == BinaryVariable {
		v.lower, v.upper = 0, 1
	}
}

func (v *Variable) Type() VariableType {
	v.model.mu.RLock()
	defer v.model.mu.RUnlock()

	return v.typ
}

// SetBounds sets the boundaries for the given variable.
// To leave a side unbounded, pass math.Inf(-1) or math.Inf(1).
func (v *Variable) SetBounds(lower, upper float64) {
	v.model.mu.Lock()
	defer v.model.mu.Unlock()

	v.lower, v.upper = lower, upper
}

func (v *Variable) Bounds() (lower, upper float64) {
	v.model.mu.RLock()
	defer v.model.mu.RUnlock()

	return v.lower, v.upper
}

// SetObjectiveCoefficient sets the coefficient the variable carries in
// the model's objective function.
func (v *Variable) SetObjectiveCoefficient(coef float64) {
	v.model.mu.Lock()
	defer v.model.mu.Unlock()

	v.coef = coef
}

func (v *Variable) ObjectiveCoefficient() float64 {
	v.model.mu.RLock()
	defer v.model.mu.RUnlock()

	return v.coef
}
