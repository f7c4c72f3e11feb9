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
Package mip provides a small, backend-independent representation of
mixed-integer linear programs.

A Model is a plain value: a set of variables (continuous, integer or
binary), a set of two-sided linear constraints and a linear objective
given by one coefficient per variable. It carries no solver state;
solving is delegated to an implementation of the Solver interface
(see the bnb subpackage for the default backend).

As an example, the model of the following problem:

	Minimize:
	  z = x1 + 2 x2
	With:
	  x1 integer, x1 >= 0
	  0 <= x2 <= 10
	Subject to:
	  3 <= x1 + x2

can be expressed like this:

	model, _ := mip.NewModel("example", mip.Minimize)
	x1, _ := model.AddDefinedVariable("x1", mip.IntegerVariable, 1, 0, math.Inf(1))
	x2, _ := model.AddDefinedVariable("x2", mip.ContinuousVariable, 2, 0, 10)

	model.AddConstraint(3, math.Inf(1), []*mip.Variable{x1, x2}, []float64{1, 1})

	result, _ := bnb.New().Solve(context.Background(), model) // you should check for errors

	fmt.Printf("z = %f\n", result.ObjectiveValue())
	fmt.Printf("x1 = %f\n", result.Value(x1))
*/
package mip

import (
	"fmt"
	"math"
	"sync"
)

/* Types */

type Model struct {
	mu     sync.RWMutex
	name   string
	dir    Direction
	vars   []*Variable
	cons   []Constraint
	logger Logger
}

type Direction int

const (
	Minimize Direction = iota
	Maximize
)

// Constraint is a two-sided linear constraint of the form
// lower <= sum(coefs[i] * vars[indices[i]]) <= upper.
// Either bound may be infinite.
type Constraint struct {
	Lower   float64
	Upper   float64
	Indices []int
	Coefs   []float64
}

/* Model related functions */

// NewModel instantiates a new linear programming model, providing a
// name (purely informational) and an optimization direction (either
// Minimize or Maximize)
func NewModel(name string, dir Direction, opts ...Option) (*Model, error) {
	model := &Model{
		name:   name,
		dir:    dir,
		logger: noopLogger{},
	}

	for _, opt := range opts {
		if err := opt(model); err != nil {
			return nil, fmt.Errorf("applying model option: %w", err)
		}
	}

	return model, nil
}

// Clone returns a copy of the model.
func (model *Model) Clone() *Model {
	model.mu.RLock()
	defer model.mu.RUnlock()

	newModel := &Model{
		name:   model.name,
		dir:    model.dir,
		logger: model.logger,
	}

	newVars := make([]*Variable, len(model.vars))
	for i, v := range model.vars {
		vCopy := *v
		vCopy.model = newModel
		newVars[i] = &vCopy
	}
	newModel.vars = newVars

	newCons := make([]Constraint, len(model.cons))
	for i, c := range model.cons {
		newCons[i] = Constraint{
			Lower:   c.Lower,
			Upper:   c.Upper,
			Indices: append([]int(nil), c.Indices...),
			Coefs:   append([]float64(nil), c.Coefs...),
		}
	}
	newModel.cons = newCons

	return newModel
}

// Name returns the name provided upon instantiation of a model
func (model *Model) Name() string {
	model.mu.RLock()
	defer model.mu.RUnlock()

	return model.name
}

// SetDirection changes the direction of the model's optimization
func (model *Model) SetDirection(dir Direction) {
	model.mu.Lock()
	defer model.mu.Unlock()

	model.dir = dir
}

// Direction returns the model's current optimization direction
func (model *Model) Direction() Direction {
	model.mu.RLock()
	defer model.mu.RUnlock()

	return model.dir
}

/* Column-related functions */

func (model *Model) VariableCount() int {
	model.mu.RLock()
	defer model.mu.RUnlock()

	return len(model.vars)
}

// Variables returns a new slice with the model's variables. Changes to
// the slice will not be reflected in the model.
func (model *Model) Variables() []*Variable {
	model.mu.RLock()
	defer model.mu.RUnlock()

	return append([]*Variable(nil), model.vars...)
}

// AddVariable adds a variable to the linear programming model and
// returns a reference to it.
// A freshly instantiated variable has the default type of
// ContinuousVariable, no bounds and an objective coefficient of 1.
//
// A variable is bound to its model. Attempting to use a variable
// created in one model for fetching solutions from a different model
// results in undefined behaviour.
//
// Empty names will automatically be replaced by a unique name.
func (model *Model) AddVariable(name string) (v *Variable, err error) {
	return model.AddDefinedVariable(name, ContinuousVariable, 1, math.Inf(-1), math.Inf(1))
}

// AddBinaryVariable is a convenience function for adding a single
// named binary variable to the model, with a default coefficient of 1.
// Empty names will automatically be replaced by a unique name.
func (model *Model) AddBinaryVariable(name string) (v *Variable, err error) {
	return model.AddDefinedVariable(name, BinaryVariable, 1, 0, 1)
}

// AddIntegerVariable is a convenience function for adding a single
// named unbounded integer variable to the model, with a default
// objective coefficient of 1.
// Empty names will automatically be replaced by a unique name.
func (model *Model) AddIntegerVariable(name string) (v *Variable, err error) {
	return model.AddDefinedVariable(name, IntegerVariable, 1, math.Inf(-1), math.Inf(1))
}

// AddDefinedVariable adds a variable to the linear programming model
// with its attributes passed as arguments.
// If varType is BinaryVariable, the bounds are ignored.
// Empty names will automatically be replaced by a unique name.
func (model *Model) AddDefinedVariable(name string, varType VariableType, coefficient, lowerBound, upperBound float64) (v *Variable, err error) {
	model.mu.Lock()
	defer model.mu.Unlock()

	v = new(Variable)
	v.index = len(model.vars)
	v.model = model
	model.vars = append(model.vars, v)

	if name == "" {
		name = fmt.Sprintf("V%d", v.index)
	}
	v.name = name

	v.typ = varType
	v.coef = coefficient
	if varType == BinaryVariable {
		v.lower, v.upper = 0, 1
	} else {
		v.lower, v.upper = lowerBound, upperBound
	}

	return v, nil
}

// SetObjectiveFunction defines the objective function for the model as
// a slice of coefficients and a slice of its respective variables.
// E.g.: an objective function of the form 2x+3y is passed as:
//
//	SetObjectiveFunction([]float64{2,3}, []*Variable{x, y})
//
// Where x and y are the return values of one of the Add*Variable
// functions.
func (model *Model) SetObjectiveFunction(coefs []float64, vars []*Variable) error {
	if len(vars) != len(coefs) {
		return fmt.Errorf("inconsistent number of variables and coefficients: %d != %d", len(vars), len(coefs))
	}

	for i, v := range vars {
		v.SetObjectiveCoefficient(coefs[i])
	}
	return nil
}

/* Constraint-related functions */

// ConstraintCount returns the number of individual constraints in
// the model
func (model *Model) ConstraintCount() int {
	model.mu.RLock()
	defer model.mu.RUnlock()

	return len(model.cons)
}

// Constraints returns a new slice with the model's constraints.
// It is intended for solver backends.
func (model *Model) Constraints() []Constraint {
	model.mu.RLock()
	defer model.mu.RUnlock()

	return append([]Constraint(nil), model.cons...)
}

// AddConstraint adds a constraint to the model as a lower and an upper
// bound, a slice of variables and a slice of their respective
// coefficients. Pass math.Inf(-1) or math.Inf(1) for a one-sided
// constraint.
func (model *Model) AddConstraint(lower, upper float64, vars []*Variable, coefs []float64) error {
	if len(vars) != len(coefs) {
		return fmt.Errorf("inconsistent number of variables and coefficients: %d != %d", len(vars), len(coefs))
	}

	model.mu.Lock()
	defer model.mu.Unlock()

	indices := make([]int, len(vars))
	for i, v := range vars {
		if v.model != model {
			return fmt.Errorf("variable %q does not belong to model %q", v.name, model.name)
		}
		indices[i] = v.index
	}

	model.cons = append(model.cons, Constraint{
		Lower:   lower,
		Upper:   upper,
		Indices: indices,
		Coefs:   append([]float64(nil), coefs...),
	})

	return nil
}
