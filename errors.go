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

import "errors"

// Input validation failures. All are detected during Build, before any
// solver invocation, and wrapped with the offending ingredient name,
// index or bounds. Match with errors.Is.
var (
	// ErrInvalidRange reports a feasible range with Min > Max.
	ErrInvalidRange = errors.New("invalid feasible range")

	// ErrInvalidIngredientData reports an ingredient with non-positive
	// servings per block or negative cost per serving.
	ErrInvalidIngredientData = errors.New("invalid ingredient data")

	// ErrInvalidIndex reports ingredient indices that do not form a
	// contiguous 1..N permutation.
	ErrInvalidIndex = errors.New("invalid ingredient index")
)
