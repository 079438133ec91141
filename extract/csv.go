package extract

import (
	"encoding/csv"
	stderrors "errors"
	"io"
	"strings"
)

func init() {
	RegisterFormat(".csv", func(cfg Config) Format { return &delimited{name: "csv", comma: cfg.delimiter()} })
	RegisterFormat(".tsv", func(Config) Format { return &delimited{name: "tsv", comma: '\t'} })
}

// delimited reads CSV-like text. Rows that fail to parse are skipped.
type delimited struct {
	name  string
	comma rune
}

func (d *delimited) Name() string { return d.name }

func (d *delimited) Scan(r io.Reader, emit func(Cell)) error {
	cr := csv.NewReader(r)
	cr.Comma = d.comma
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true
	cr.ReuseRecord = true

	row := 0
	for {
		record, err := cr.Read()
		if err == io.EOF {
			return nil
		}
		row++
		if err != nil {
			var parseErr *csv.ParseError
			if stderrors.As(err, &parseErr) {
				emit(Cell{Row: row, Kind: KindError})
				continue
			}
			return err
		}

		field := ""
		if len(record) > 0 {
			field = record[0]
		}
		if row == 1 {
			field = strings.TrimPrefix(field, "\ufeff")
		}
		emit(classifyField(row, field))
	}
}

func classifyField(row int, field string) Cell {
	if c, ok := numberCell(row, field); ok || c.Kind == KindEmpty {
		return c
	}
	switch strings.ToLower(strings.TrimSpace(field)) {
	case "true", "false":
		return Cell{Row: row, Kind: KindBool, Raw: field}
	}
	return Cell{Row: row, Kind: KindText, Raw: field}
}
