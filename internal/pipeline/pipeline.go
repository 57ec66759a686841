// Package pipeline runs the full normalization sequence: decode bytes,
// locate the table, reshape to canonical records, assemble per-concept
// series and compute the indicator table.
package pipeline

import (
	"context"
	"crypto/sha256"
	"log/slog"
	"strings"
	"time"

	"finlens/internal/encoding"
	apierrors "finlens/internal/errors"
	"finlens/internal/indicators"
	"finlens/internal/infrastructure"
	"finlens/internal/ingest"
	"finlens/internal/schema"
	"finlens/internal/series"
	"finlens/pkg/contracts/domain"
)

// Options select the company and history window for one run.
type Options struct {
	// Company filters to one company identifier; empty picks the first
	// company present (sorted).
	Company string
	// Years windows the history to the last N years counted from the
	// latest actual period; 0 keeps everything.
	Years int
	// Workbook routes the input through the explicit xlsx reader instead
	// of the text decoder.
	Workbook bool
}

// Result is the complete outcome of one pipeline run. Results are
// immutable once returned; reruns on identical input yield identical
// results.
type Result struct {
	Company    string
	Companies  []string
	Periods    []domain.PeriodLabel
	Records    []domain.ObservedRecord
	Statements map[domain.StatementKind]*domain.StatementTable
	Indicators *domain.IndicatorTable
}

// Pipeline orchestrates stages 1..8. Stateless apart from an explicit
// memoization cache keyed by the content hash of the input bytes plus the
// options; memoization is a performance optimization with no observable
// effect on the output.
type Pipeline struct {
	logger  *slog.Logger
	engine  *indicators.Engine
	metrics *infrastructure.Metrics
	cache   *resultCache
}

// New creates a pipeline. metrics may be nil.
func New(logger *slog.Logger, metrics *infrastructure.Metrics, cacheSize int) *Pipeline {
	if logger == nil {
		logger = slog.Default()
	}
	logger = logger.With(slog.String("component", "pipeline"))
	return &Pipeline{
		logger:  logger,
		engine:  indicators.NewEngine(logger),
		metrics: metrics,
		cache:   newResultCache(cacheSize),
	}
}

// Process runs the full pipeline over raw input bytes.
func (p *Pipeline) Process(ctx context.Context, data []byte, opts Options) (*Result, error) {
	start := time.Now()

	key := cacheKey{hash: sha256.Sum256(data), opts: opts}
	if res, hit := p.cache.get(key); hit {
		p.logger.DebugContext(ctx, "memoized result served",
			slog.String("company", res.Company))
		return res, nil
	}

	table, err := p.loadTable(data, opts)
	if err != nil {
		p.observeFailure(ctx, err)
		return nil, err
	}

	records, err := schema.Reshape(table, p.logger)
	if err != nil {
		p.observeFailure(ctx, err)
		return nil, err
	}

	res, err := p.assemble(records, opts)
	if err != nil {
		p.observeFailure(ctx, err)
		return nil, err
	}

	p.cache.put(key, res)
	p.metrics.ObserveProcessed(ctx, res.Company, time.Since(start))
	p.logger.InfoContext(ctx, "pipeline completed",
		slog.String("company", res.Company),
		slog.Int("records", len(res.Records)),
		slog.Int("periods", len(res.Periods)),
		slog.Duration("elapsed", time.Since(start)))
	return res, nil
}

func (p *Pipeline) loadTable(data []byte, opts Options) (*ingest.Table, error) {
	if opts.Workbook {
		return ingest.ReadWorkbook(data)
	}
	text, err := encoding.Decode(data)
	if err != nil {
		return nil, err
	}
	return ingest.Parse(text)
}

func (p *Pipeline) assemble(records []domain.ObservedRecord, opts Options) (*Result, error) {
	companies := series.Companies(records)

	company := strings.ToUpper(strings.TrimSpace(opts.Company))
	if company == "" {
		company = companies[0]
	} else if !contains(companies, company) {
		return nil, &apierrors.SchemaError{
			Reason: "company " + company + " not present in file",
		}
	}

	scoped := series.WindowYears(series.ForCompany(records, company), opts.Years)
	if len(scoped) == 0 {
		return nil, &apierrors.SchemaError{
			Reason: "no observations for company " + company + " inside the requested window",
		}
	}

	set := series.ConceptSet(scoped, company)

	statements := make(map[domain.StatementKind]*domain.StatementTable, 4)
	for _, kind := range []domain.StatementKind{
		domain.StatementIncome,
		domain.StatementBalance,
		domain.StatementCashflow,
		domain.StatementNote,
	} {
		statements[kind] = series.StatementView(scoped, company, kind)
	}

	return &Result{
		Company:    company,
		Companies:  companies,
		Periods:    series.Periods(scoped),
		Records:    scoped,
		Statements: statements,
		Indicators: p.engine.Compute(set),
	}, nil
}

func (p *Pipeline) observeFailure(ctx context.Context, err error) {
	switch {
	case apierrors.IsFormatError(err):
		p.metrics.ObserveFormatError(ctx)
		p.logger.WarnContext(ctx, "input rejected", slog.String("error", err.Error()))
	case apierrors.IsSchemaError(err):
		p.metrics.ObserveSchemaError(ctx)
		p.logger.WarnContext(ctx, "input rejected", slog.String("error", err.Error()))
	default:
		p.logger.ErrorContext(ctx, "pipeline failure", slog.String("error", err.Error()))
	}
}

func contains(xs []string, x string) bool {
	for _, v := range xs {
		if v == x {
			return true
		}
	}
	return false
}
