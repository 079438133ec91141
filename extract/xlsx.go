package extract

import (
	stderrors "errors"
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/kbukum/kthmin/errors"
)

func init() {
	factory := func(cfg Config) Format { return &spreadsheet{sheet: cfg.Sheet} }
	RegisterFormat(".xlsx", factory)
	RegisterFormat(".xlsm", factory)
}

// spreadsheet reads Office Open XML workbooks. Cells are classified by the
// stored cell type, so numeric-looking text stays text.
type spreadsheet struct {
	sheet string
}

func (s *spreadsheet) Name() string { return "xlsx" }

func (s *spreadsheet) Scan(r io.Reader, emit func(Cell)) error {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return fmt.Errorf("open workbook: %w", err)
	}
	defer f.Close() //nolint:errcheck // read-only workbook

	sheet := s.sheet
	if sheet == "" {
		sheets := f.GetSheetList()
		if len(sheets) == 0 {
			return nil
		}
		sheet = sheets[0]
	}

	rows, err := f.GetRows(sheet, excelize.Options{RawCellValue: true})
	if err != nil {
		var notExist excelize.ErrSheetNotExist
		if stderrors.As(err, &notExist) {
			return errors.InvalidInput("sheet", fmt.Sprintf("sheet %q does not exist", sheet))
		}
		return fmt.Errorf("read sheet %s: %w", sheet, err)
	}

	for i, cols := range rows {
		row := i + 1
		if len(cols) == 0 || cols[0] == "" {
			emit(Cell{Row: row, Kind: KindEmpty})
			continue
		}
		axis, err := excelize.CoordinatesToCellName(1, row)
		if err != nil {
			return err
		}
		typ, err := f.GetCellType(sheet, axis)
		if err != nil {
			return fmt.Errorf("read cell %s: %w", axis, err)
		}
		emit(classifyCell(row, typ, cols[0]))
	}
	return nil
}

// classifyCell maps a stored cell type to a Kind. Number cells and untyped
// cells, which is how numbers and numeric formula results are stored, are
// parsed from the raw value.
func classifyCell(row int, typ excelize.CellType, raw string) Cell {
	switch typ {
	case excelize.CellTypeNumber, excelize.CellTypeUnset:
		c, _ := numberCell(row, raw)
		return c
	case excelize.CellTypeBool:
		return Cell{Row: row, Kind: KindBool, Raw: raw}
	case excelize.CellTypeDate:
		return Cell{Row: row, Kind: KindDate, Raw: raw}
	case excelize.CellTypeError:
		return Cell{Row: row, Kind: KindError, Raw: raw}
	default:
		return Cell{Row: row, Kind: KindText, Raw: raw}
	}
}
