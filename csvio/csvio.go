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

// Package csvio adapts alcm batches to the tabular interchange format:
// one header row, then one row per ingredient carrying name, 1-based
// index, servings per block and price per serving, with the feasible
// range attached to the first data row. Output echoes the input
// columns and appends the derived figures, with the batch summary
// attached to the first row.
package csvio

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/gkehne/alcm"
)

// header is the canonical output column layout.
var header = []string{
	"ingredient", "index", "servings/block", "price/serving",
	"min aLCM", "max aLCM", "", "units used", "cost", "waste",
	"aLCM", "total cost", "total waste",
}

// Read parses a batch. The first row is treated as a header and
// skipped; every following row must carry at least the four ingredient
// columns, and the first data row additionally the two range columns.
// Row numbers in errors are 1-based and include the header.
func Read(r io.Reader) ([]alcm.Ingredient, alcm.Range, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1 // rows may be ragged; widths are checked here

	var (
		ingredients []alcm.Ingredient
		rng         alcm.Range
	)

	records, err := cr.ReadAll()
	if err != nil {
		return nil, rng, fmt.Errorf("reading csv: %w", err)
	}
	if len(records) < 2 {
		return nil, rng, fmt.Errorf("csv has no data rows")
	}

	for i, rec := range records[1:] {
		line := i + 2
		if len(rec) < 4 {
			return nil, rng, fmt.Errorf("row %d: want at least 4 columns, got %d", line, len(rec))
		}

		index, err := strconv.Atoi(rec[1])
		if err != nil {
			return nil, rng, fmt.Errorf("row %d: parsing index %q: %w", line, rec[1], err)
		}
		spb, err := strconv.ParseFloat(rec[2], 64)
		if err != nil {
			return nil, rng, fmt.Errorf("row %d: parsing servings per block %q: %w", line, rec[2], err)
		}
		cps, err := strconv.ParseFloat(rec[3], 64)
		if err != nil {
			return nil, rng, fmt.Errorf("row %d: parsing price per serving %q: %w", line, rec[3], err)
		}

		ingredients = append(ingredients, alcm.Ingredient{
			Name:             rec[0],
			Index:            index,
			ServingsPerBlock: spb,
			CostPerServing:   cps,
		})

		// the feasible range rides on the first data row
		if i == 0 {
			if len(rec) < 6 {
				return nil, rng, fmt.Errorf("row %d: want range columns 5 and 6, got %d columns", line, len(rec))
			}
			if rng.Min, err = strconv.ParseFloat(rec[4], 64); err != nil {
				return nil, rng, fmt.Errorf("row %d: parsing min aLCM %q: %w", line, rec[4], err)
			}
			if rng.Max, err = strconv.ParseFloat(rec[5], 64); err != nil {
				return nil, rng, fmt.Errorf("row %d: parsing max aLCM %q: %w", line, rec[5], err)
			}
		}
	}

	return ingredients, rng, nil
}

// Write serializes the report next to its input batch: the original
// four columns per ingredient, the range on the first row, then the
// derived units/cost/waste per row and the summary on the first row.
// report.Rows must be in the same order as ingredients.
func Write(w io.Writer, ingredients []alcm.Ingredient, rng alcm.Range, report *alcm.Report) error {
	if len(report.Rows) != len(ingredients) {
		return fmt.Errorf("inconsistent number of rows and ingredients: %d != %d", len(report.Rows), len(ingredients))
	}

	cw := csv.NewWriter(w)

	if err := cw.Write(header); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	for i, ing := range ingredients {
		rec := make([]string, len(header))
		rec[0] = ing.Name
		rec[1] = strconv.Itoa(ing.Index)
		rec[2] = formatFloat(ing.ServingsPerBlock)
		rec[3] = formatFloat(ing.CostPerServing)
		rec[7] = formatFloat(report.Rows[i].UnitsPurchased)
		rec[8] = formatFloat(report.Rows[i].Cost)
		rec[9] = formatFloat(report.Rows[i].Waste)
		if i == 0 {
			rec[4] = formatFloat(rng.Min)
			rec[5] = formatFloat(rng.Max)
			rec[10] = formatFloat(report.Summary.ALCM)
			rec[11] = formatFloat(report.Summary.TotalCost)
			rec[12] = formatFloat(report.Summary.TotalWaste)
		}
		if err := cw.Write(rec); err != nil {
			return fmt.Errorf("writing row %d: %w", i+2, err)
		}
	}

	cw.Flush()
	return cw.Error()
}

func formatFloat(v float64) string {
	// 'f' keeps large magnitudes out of scientific notation, which
	// spreadsheet round-trips do not survive
	return strconv.FormatFloat(v, 'f', -1, 64)
}
