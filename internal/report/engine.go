package report

import (
	"context"

	"github.com/Rhymond/go-money"
	"go.uber.org/zap"
)

// DefaultCurrency is used for formatted amounts when none is configured.
const DefaultCurrency = "BRL"

// RecordSource supplies the records a report is computed over. The criteria
// are passed through so implementations may narrow the query; the engine
// re-applies them in full, so a source may return a superset.
type RecordSource interface {
	Records(ctx context.Context, criteria Criteria) ([]Record, error)
}

// Engine computes reports from records fetched once per call. It keeps no
// state between calls and is safe for concurrent use.
type Engine struct {
	source   RecordSource
	format   formatter
	log      *zap.SugaredLogger
	currency string
}

// Option configures an Engine.
type Option func(*Engine)

// WithCurrency sets the ISO 4217 code used for formatted amounts. Unknown
// codes fall back to DefaultCurrency.
func WithCurrency(code string) Option {
	return func(e *Engine) {
		e.currency = code
	}
}

// WithLogger sets the logger used for diagnostics.
func WithLogger(log *zap.SugaredLogger) Option {
	return func(e *Engine) {
		e.log = log
	}
}

// NewEngine creates an Engine reading from source.
func NewEngine(source RecordSource, opts ...Option) *Engine {
	e := &Engine{
		source: source,
		format: newFormatter(DefaultCurrency),
		log:    zap.NewNop().Sugar(),
	}
	for _, opt := range opts {
		opt(e)
	}
	// Resolved after all options so the warning reaches a logger passed later.
	if e.currency != "" {
		if money.GetCurrency(e.currency) == nil {
			e.log.Warnw("unknown report currency, using default", "currency", e.currency, "default", DefaultCurrency)
		} else {
			e.format = newFormatter(e.currency)
		}
	}
	return e
}

// PositionReport returns the open positions within the filtered window.
func (e *Engine) PositionReport(ctx context.Context, criteria Criteria) (*PositionReport, error) {
	records, err := e.source.Records(ctx, criteria)
	if err != nil {
		return nil, err
	}
	filtered := Filter(records, criteria)
	rep := assemblePositionReport(aggregatePositions(filtered), e.format)
	e.log.Debugw("position report computed",
		"records", len(filtered),
		"positions", len(rep.Positions),
	)
	return rep, nil
}

// MovementReport returns the buys and sells within the filtered window.
func (e *Engine) MovementReport(ctx context.Context, criteria Criteria) (*MovementReport, error) {
	records, err := e.source.Records(ctx, criteria)
	if err != nil {
		return nil, err
	}
	filtered := Filter(records, criteria)
	rep := assembleMovementReport(summarizeMovements(filtered), e.format)
	e.log.Debugw("movement report computed",
		"buys", len(rep.Buys),
		"sells", len(rep.Sells),
	)
	return rep, nil
}
