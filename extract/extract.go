package extract

import (
	"context"
	"fmt"
	"strings"

	"github.com/kbukum/kthmin/errors"
	"github.com/kbukum/kthmin/logger"
	"github.com/kbukum/kthmin/source"
)

// Stats summarizes one extraction.
type Stats struct {
	Format   string
	Rows     int
	Accepted int
	Skipped  map[Kind]int
}

// Extractor reads the first column of tabular sources.
type Extractor struct {
	opener source.Opener
	cfg    Config
	log    *logger.Logger
}

// New creates an Extractor that opens locators with opener.
func New(opener source.Opener, cfg Config, log *logger.Logger) *Extractor {
	cfg.ApplyDefaults()
	if log == nil {
		log = logger.Nop()
	}
	return &Extractor{
		opener: opener,
		cfg:    cfg,
		log:    log.WithComponent("extract"),
	}
}

// Extract returns the numeric first-column values of the source in order.
//
// It fails with INVALID_INPUT for an empty locator or unsupported format,
// SOURCE_UNAVAILABLE when the source cannot be opened or read, and
// NO_NUMERIC_DATA when it was read but held no numbers.
func (e *Extractor) Extract(ctx context.Context, locator string) ([]int64, error) {
	seq, _, err := e.ExtractWithStats(ctx, locator)
	return seq, err
}

// ExtractWithStats is Extract plus per-kind row counts.
func (e *Extractor) ExtractWithStats(ctx context.Context, locator string) ([]int64, *Stats, error) {
	locator = strings.TrimSpace(locator)
	if locator == "" {
		return nil, nil, errors.InvalidInput("path", "path is required")
	}
	factory, ext, ok := formatFor(locator)
	if !ok {
		return nil, nil, errors.InvalidInput("path", fmt.Sprintf(
			"unsupported format %q, expected one of %s", ext, strings.Join(Extensions(), ", ")))
	}
	format := factory(e.cfg)

	rc, err := e.opener.Open(ctx, locator)
	if err != nil {
		if _, ok := errors.AsAppError(err); ok {
			return nil, nil, err
		}
		return nil, nil, errors.SourceUnavailable(locator, source.Classify(err), err)
	}
	defer rc.Close() //nolint:errcheck // read-only stream

	stats := &Stats{Format: format.Name(), Skipped: make(map[Kind]int)}
	var seq []int64
	err = format.Scan(rc, func(c Cell) {
		stats.Rows++
		if c.Kind == KindNumber {
			if v, ok := truncate(c.Value); ok {
				seq = append(seq, v)
				stats.Accepted++
				return
			}
		}
		stats.Skipped[c.Kind]++
	})
	if err != nil {
		if _, ok := errors.AsAppError(err); ok {
			return nil, stats, err
		}
		return nil, stats, errors.SourceUnavailable(locator, source.Classify(err), err)
	}

	fields := logger.Fields(
		logger.FieldLocator, locator,
		logger.FieldFormat, stats.Format,
		"rows", stats.Rows,
		logger.FieldAccepted, stats.Accepted,
		logger.FieldSkipped, stats.Rows-stats.Accepted,
	)
	if len(seq) == 0 {
		e.log.Debug("no numeric data in source", fields)
		return nil, stats, errors.NoNumericData(locator)
	}
	e.log.Debug("extraction finished", fields)
	return seq, stats, nil
}
