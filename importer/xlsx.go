package importer

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/iw2rmb/gridsheet/grid"
)

// XLSXOptions configures workbook imports.
type XLSXOptions struct {
	// Sheet is the worksheet to read. Empty means the active sheet.
	Sheet string

	// HeaderRow treats the first non-empty row as a table header and
	// returns a region spec covering the used range.
	HeaderRow bool

	// CarryStyles copies bold/italic, font color, and fill color from the
	// workbook into cell formatting.
	CarryStyles bool
}

// Result is an adapter's output: the batch to hand to grid.ImportCells and
// the table region to create over it, when one was requested.
type Result struct {
	Batch  grid.CellBatch
	Region *grid.RegionSpec
}

// ReadXLSX imports a worksheet from an xlsx stream.
func ReadXLSX(r io.Reader, opts XLSXOptions) (Result, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return Result{}, fmt.Errorf("open workbook: %w", err)
	}
	defer f.Close()

	sheet := opts.Sheet
	if sheet == "" {
		sheet = f.GetSheetName(f.GetActiveSheetIndex())
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		return Result{}, fmt.Errorf("read sheet %q: %w", sheet, err)
	}

	var res Result
	maxRow, maxCol := -1, -1
	for rowIdx, row := range rows {
		for colIdx, text := range row {
			if text == "" {
				continue
			}
			cell := grid.BatchCell{Row: rowIdx, Col: colIdx, Raw: text}
			if opts.CarryStyles {
				cell.Format = cellFormatting(f, sheet, rowIdx, colIdx)
			}
			res.Batch.Cells = append(res.Batch.Cells, cell)
			if rowIdx > maxRow {
				maxRow = rowIdx
			}
			if colIdx > maxCol {
				maxCol = colIdx
			}
		}
	}

	if opts.HeaderRow && maxRow >= 0 {
		res.Region = &grid.RegionSpec{
			Name:      sheet,
			Rect:      grid.Rect{R1: maxRow, C1: maxCol},
			HeaderRow: true,
		}
	}
	return res, nil
}

// cellFormatting lifts the workbook style of one cell into grid formatting.
// Unstyled cells return nil.
func cellFormatting(f *excelize.File, sheet string, row, col int) *grid.Formatting {
	name, err := excelize.CoordinatesToCellName(col+1, row+1)
	if err != nil {
		return nil
	}
	styleID, err := f.GetCellStyle(sheet, name)
	if err != nil || styleID == 0 {
		return nil
	}
	style, err := f.GetStyle(styleID)
	if err != nil || style == nil {
		return nil
	}

	var out grid.Formatting
	if style.Font != nil {
		out.Bold = style.Font.Bold
		out.Italic = style.Font.Italic
		out.Color = style.Font.Color
		out.Font = style.Font.Family
		out.FontSize = int(style.Font.Size)
	}
	if len(style.Fill.Color) > 0 {
		out.Background = style.Fill.Color[0]
	}
	if out.IsZero() {
		return nil
	}
	return &out
}
