// Package services exposes the normalization pipeline to the transport
// layer.
package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/go-playground/validator/v10"

	"finlens/internal/exporter"
	"finlens/internal/pipeline"
	v1 "finlens/pkg/contracts/api/v1"
	"finlens/pkg/contracts/domain"
)

// AnalysisService validates analysis requests, runs the pipeline and
// renders the response contract.
type AnalysisService struct {
	pipeline     *pipeline.Pipeline
	logger       *slog.Logger
	validate     *validator.Validate
	defaultYears int
}

// NewAnalysisService creates the analysis service.
func NewAnalysisService(p *pipeline.Pipeline, logger *slog.Logger, defaultYears int) *AnalysisService {
	if logger == nil {
		logger = slog.Default()
	}
	return &AnalysisService{
		pipeline:     p,
		logger:       logger.With(slog.String("component", "analysis_service")),
		validate:     validator.New(),
		defaultYears: defaultYears,
	}
}

// Analyze runs the pipeline over one uploaded file. filename only routes
// workbook inputs; all content decisions happen on the bytes.
func (s *AnalysisService) Analyze(ctx context.Context, data []byte, filename string, req v1.AnalyzeRequest) (*v1.AnalyzeResponse, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, fmt.Errorf("validate request: %w", err)
	}

	years := req.Years
	if years == 0 {
		years = s.defaultYears
	}

	res, err := s.pipeline.Process(ctx, data, pipeline.Options{
		Company:  req.Company,
		Years:    years,
		Workbook: isWorkbook(filename),
	})
	if err != nil {
		return nil, err
	}

	return renderResponse(res), nil
}

func isWorkbook(filename string) bool {
	return strings.HasSuffix(strings.ToLower(filename), ".xlsx")
}

func renderResponse(res *pipeline.Result) *v1.AnalyzeResponse {
	statements := make(map[string]v1.Table, len(res.Statements))
	for kind, table := range res.Statements {
		statements[string(kind)] = renderStatement(table)
	}
	return &v1.AnalyzeResponse{
		Success:    true,
		Company:    res.Company,
		Companies:  res.Companies,
		Periods:    periodStrings(res.Periods),
		Indicators: renderIndicators(res.Indicators),
		Statements: statements,
	}
}

func renderIndicators(t *domain.IndicatorTable) v1.Table {
	out := v1.Table{Periods: periodStrings(t.Periods)}
	for _, name := range t.Names {
		row := v1.TableRow{Name: name, Cells: make([]v1.Cell, 0, len(t.Periods))}
		for _, p := range t.Periods {
			v, ok := t.Value(name, p)
			row.Cells = append(row.Cells, renderCell(v, ok, exporter.FormatIndicator))
		}
		out.Rows = append(out.Rows, row)
	}
	return out
}

func renderStatement(t *domain.StatementTable) v1.Table {
	out := v1.Table{Periods: periodStrings(t.Periods)}
	for _, label := range t.Labels {
		row := v1.TableRow{Name: label, Cells: make([]v1.Cell, 0, len(t.Periods))}
		for _, p := range t.Periods {
			v, ok := t.Value(label, p)
			row.Cells = append(row.Cells, renderCell(v, ok, exporter.FormatAmount))
		}
		out.Rows = append(out.Rows, row)
	}
	return out
}

func renderCell(v float64, ok bool, format func(float64) string) v1.Cell {
	if !ok {
		return v1.Cell{Display: exporter.AbsentCell}
	}
	val := v
	return v1.Cell{Value: &val, Display: format(val)}
}

func periodStrings(periods []domain.PeriodLabel) []string {
	out := make([]string, len(periods))
	for i, p := range periods {
		out[i] = string(p)
	}
	return out
}
