package importer

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/iw2rmb/gridsheet/grid"
)

// DelimitedOptions configures CSV/TSV imports.
type DelimitedOptions struct {
	// Comma is the field separator. Zero means ','.
	Comma rune

	// HeaderRow treats the first record as a table header and returns a
	// region spec covering the read range.
	HeaderRow bool

	// Name is the region name when HeaderRow is set.
	Name string
}

// ReadDelimited imports separator-delimited text. Records may have ragged
// lengths; empty fields produce no cells.
func ReadDelimited(r io.Reader, opts DelimitedOptions) (Result, error) {
	cr := csv.NewReader(r)
	if opts.Comma != 0 {
		cr.Comma = opts.Comma
	}
	cr.FieldsPerRecord = -1

	var res Result
	maxCol := -1
	row := 0
	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return Result{}, fmt.Errorf("read record %d: %w", row+1, err)
		}
		for col, text := range record {
			if text == "" {
				continue
			}
			res.Batch.Cells = append(res.Batch.Cells, grid.BatchCell{Row: row, Col: col, Raw: text})
			if col > maxCol {
				maxCol = col
			}
		}
		row++
	}

	if opts.HeaderRow && row > 0 && maxCol >= 0 {
		res.Region = &grid.RegionSpec{
			Name:      opts.Name,
			Rect:      grid.Rect{R1: row - 1, C1: maxCol},
			HeaderRow: true,
		}
	}
	return res, nil
}
