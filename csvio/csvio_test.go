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
package csvio

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gkehne/alcm"
)

const sampleInput = `ingredient,index,servings/block,price/serving,min aLCM,max aLCM
chocolate chips,1,12,0.5,10,20
butter,2,8,1
`

func TestRead(t *testing.T) {
	ingredients, rng, err := Read(strings.NewReader(sampleInput))
	require.NoError(t, err)

	require.Len(t, ingredients, 2)
	assert.Equal(t, alcm.Ingredient{
		Name:             "chocolate chips",
		Index:            1,
		ServingsPerBlock: 12,
		CostPerServing:   0.5,
	}, ingredients[0])
	assert.Equal(t, alcm.Ingredient{
		Name:             "butter",
		Index:            2,
		ServingsPerBlock: 8,
		CostPerServing:   1,
	}, ingredients[1])

	assert.Equal(t, alcm.Range{Min: 10, Max: 20}, rng)
}

func TestReadErrors(t *testing.T) {
	for name, input := range map[string]string{
		"empty":         "",
		"header only":   "ingredient,index,servings/block,price/serving\n",
		"short row":     "h1,h2,h3,h4\nchips,1\n",
		"bad index":     "h1,h2,h3,h4,h5,h6\nchips,one,12,0.5,10,20\n",
		"bad float":     "h1,h2,h3,h4,h5,h6\nchips,1,a dozen,0.5,10,20\n",
		"missing range": "h1,h2,h3,h4\nchips,1,12,0.5\n",
		"bad range":     "h1,h2,h3,h4,h5,h6\nchips,1,12,0.5,low,20\n",
	} {
		t.Run(name, func(t *testing.T) {
			_, _, err := Read(strings.NewReader(input))
			assert.Error(t, err)
		})
	}
}

func TestReadErrorNamesRow(t *testing.T) {
	input := "h1,h2,h3,h4,h5,h6\nchips,1,12,0.5,10,20\nbutter,2,eight,1\n"
	_, _, err := Read(strings.NewReader(input))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "row 3")
}

func TestWrite(t *testing.T) {
	ingredients, rng, err := Read(strings.NewReader(sampleInput))
	require.NoError(t, err)

	report := &alcm.Report{
		Rows: []alcm.Row{
			{UnitsPurchased: 2, Cost: 12, Waste: 4},
			{UnitsPurchased: 2, Cost: 16, Waste: 0},
		},
		Summary: alcm.Summary{ALCM: 16, TotalCost: 28, TotalWaste: 4},
	}

	var sb strings.Builder
	require.NoError(t, Write(&sb, ingredients, rng, report))

	lines := strings.Split(strings.TrimRight(sb.String(), "\n"), "\n")
	require.Len(t, lines, 3)

	assert.Equal(t,
		"ingredient,index,servings/block,price/serving,min aLCM,max aLCM,,units used,cost,waste,aLCM,total cost,total waste",
		lines[0])
	// the summary rides on the first data row only
	assert.Equal(t, "chocolate chips,1,12,0.5,10,20,,2,12,4,16,28,4", lines[1])
	assert.Equal(t, "butter,2,8,1,,,,2,16,0,,,", lines[2])
}

func TestWritePlainNumberFormat(t *testing.T) {
	// large magnitudes must come out as plain decimals; scientific
	// notation does not survive a spreadsheet round-trip
	ingredients := []alcm.Ingredient{
		{Name: "bulk flour", Index: 1, ServingsPerBlock: 1200000, CostPerServing: 0.0001},
	}
	report := &alcm.Report{
		Rows:    []alcm.Row{{UnitsPurchased: 1, Cost: 120, Waste: 0}},
		Summary: alcm.Summary{ALCM: 1200000, TotalCost: 120, TotalWaste: 0},
	}

	var sb strings.Builder
	require.NoError(t, Write(&sb, ingredients, alcm.Range{Min: 1000000, Max: 1200000}, report))

	lines := strings.Split(strings.TrimRight(sb.String(), "\n"), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "bulk flour,1,1200000,0.0001,1000000,1200000,,1,120,0,1200000,120,0", lines[1])
	assert.NotContains(t, sb.String(), "e+")
}

func TestWriteRowMismatch(t *testing.T) {
	ingredients, rng, err := Read(strings.NewReader(sampleInput))
	require.NoError(t, err)

	err = Write(&strings.Builder{}, ingredients, rng, &alcm.Report{})
	assert.Error(t, err)
}
