package finder

import (
	"context"

	"go.opentelemetry.io/otel/attribute"

	"github.com/kbukum/kthmin/errors"
	"github.com/kbukum/kthmin/extract"
	"github.com/kbukum/kthmin/logger"
	"github.com/kbukum/kthmin/observability"
	"github.com/kbukum/kthmin/selection"
)

// Result is the answer to one query.
type Result struct {
	K          int   `json:"n"`
	Value      int64 `json:"result"`
	TotalCount int   `json:"totalNumbers"`
}

// Extractor produces the integer sequence for a locator.
type Extractor interface {
	ExtractWithStats(ctx context.Context, locator string) ([]int64, *extract.Stats, error)
}

// Finder composes extraction and selection.
type Finder struct {
	extractor Extractor
	selector  *selection.Selector
	metrics   *observability.Metrics
	service   string
	log       *logger.Logger
}

// Option configures a Finder.
type Option func(*Finder)

// WithMetrics records operation metrics on m.
func WithMetrics(m *observability.Metrics) Option {
	return func(f *Finder) { f.metrics = m }
}

// WithLogger sets the logger.
func WithLogger(l *logger.Logger) Option {
	return func(f *Finder) { f.log = l }
}

// WithServiceName sets the service name reported on spans.
func WithServiceName(name string) Option {
	return func(f *Finder) { f.service = name }
}

// New creates a Finder. A nil selector uses the last-element pivot.
func New(extractor Extractor, selector *selection.Selector, opts ...Option) *Finder {
	if selector == nil {
		selector = selection.WithPivot(selection.PivotLast)
	}
	f := &Finder{
		extractor: extractor,
		selector:  selector,
		service:   "kthmin",
		log:       logger.Nop(),
	}
	for _, opt := range opts {
		opt(f)
	}
	f.log = f.log.WithComponent("finder")
	return f
}

// Find returns the k-th smallest value of the source's first column.
//
// k < 1 is rejected before the source is touched. After extraction k is
// checked against the sequence length, the length is captured, and the
// sequence is handed to the selector, which reorders it.
func (f *Finder) Find(ctx context.Context, locator string, k int) (res *Result, err error) {
	oc := observability.NewOperationContext(f.service, "find", logger.RequestIDFromContext(ctx), f.metrics)
	ctx, span := oc.StartSpanForOperation(ctx, observability.SpanFind)
	span.SetAttributes(
		attribute.String(observability.AttrLocator, locator),
		attribute.Int(observability.AttrRank, k),
		attribute.String(observability.AttrPivot, f.selector.Pivot().String()),
	)
	log := f.log.WithContext(ctx)

	defer func() {
		status := oc.EndOperation(ctx, span, "finder", err)
		fields := logger.Fields(
			logger.FieldLocator, locator,
			logger.FieldRank, k,
			logger.FieldStatus, status,
			logger.FieldDuration, oc.Duration().Milliseconds(),
		)
		switch status {
		case observability.StatusOK:
			fields[logger.FieldTotal] = res.TotalCount
			log.Info("k-th smallest found", fields)
		case observability.StatusClientError:
			log.Warn("find rejected", logger.MergeWithError(fields, err))
		default:
			log.Error("find failed", logger.MergeWithError(fields, err))
		}
	}()

	if k < 1 {
		return nil, errors.RankBelowMinimum(k)
	}

	seq, stats, err := f.extractor.ExtractWithStats(ctx, locator)
	if err != nil {
		return nil, err
	}
	if f.metrics != nil {
		f.metrics.RecordSequenceLength(ctx, stats.Format, len(seq))
	}
	span.SetAttributes(
		attribute.String(observability.AttrFormat, stats.Format),
		attribute.Int(observability.AttrTotal, len(seq)),
	)

	total := len(seq)
	if k > total {
		return nil, errors.RankOutOfRange(k, total)
	}

	value, err := f.selector.Select(seq, k)
	if err != nil {
		return nil, err
	}
	return &Result{K: k, Value: value, TotalCount: total}, nil
}
