package schema

import (
	"log/slog"
	"strings"

	"finlens/internal/concepts"
	apierrors "finlens/internal/errors"
	"finlens/internal/ingest"
	"finlens/pkg/contracts/domain"
)

// DefaultCompany names the synthetic company used for wide-form tables
// that carry no company column.
const DefaultCompany = "DEFAULT"

// Reshape converts an ingested table to canonical long-form observed
// records. Cell-level problems (an unparseable number, an unmatched alias)
// degrade to absence and never abort; structural problems return typed
// errors.
func Reshape(t *ingest.Table, logger *slog.Logger) ([]domain.ObservedRecord, error) {
	if logger == nil {
		logger = slog.Default()
	}

	var (
		records []domain.ObservedRecord
		err     error
		form    = Classify(t)
	)
	switch form {
	case FormLong:
		records, err = reshapeLong(t, logger)
	default:
		records, err = reshapeWide(t, logger)
	}
	if err != nil {
		return nil, err
	}

	logger.Debug("table reshaped",
		slog.String("form", form.String()),
		slog.Int("rows", len(t.Rows)),
		slog.Int("records", len(records)))

	if len(records) == 0 {
		return nil, &apierrors.SchemaError{
			Reason:  "no usable observations: company, period and line item could not be established for any row",
			Columns: t.Header,
		}
	}
	return records, nil
}

func reshapeLong(t *ingest.Table, logger *slog.Logger) ([]domain.ObservedRecord, error) {
	companyCol := columnForRole(t.Header, roleCompany)
	periodCol := columnForRole(t.Header, rolePeriod)
	statementCol := columnForRole(t.Header, roleStatement)
	itemCol := columnForRole(t.Header, roleLineItem)
	valueCol := columnForRole(t.Header, roleValue)

	records := make([]domain.ObservedRecord, 0, len(t.Rows))
	for i := range t.Rows {
		company := strings.ToUpper(t.Cell(i, companyCol))
		periodLabel := t.Cell(i, periodCol)
		label := t.Cell(i, itemCol)
		if company == "" || periodLabel == "" || label == "" {
			continue
		}

		value, ok := ingest.ParseNumber(t.Cell(i, valueCol))
		if !ok {
			logger.Debug("value parse warning: cell dropped",
				slog.Int("row", i),
				slog.String("label", label),
				slog.String("raw", t.Cell(i, valueCol)))
			continue
		}

		concept, _ := concepts.Resolve(label)
		records = append(records, domain.ObservedRecord{
			Company:   company,
			Period:    domain.PeriodLabel(periodLabel),
			Statement: domain.ClassifyStatement(concepts.Canonicalize(t.Cell(i, statementCol))),
			Concept:   concept,
			Label:     label,
			Value:     value,
		})
	}
	return records, nil
}

func reshapeWide(t *ingest.Table, logger *slog.Logger) ([]domain.ObservedRecord, error) {
	itemCol := columnForRole(t.Header, roleLineItem)
	if itemCol < 0 {
		itemCol = 0 // first column carries the line items by convention
	}
	companyCol := columnForRole(t.Header, roleCompany)
	statementCol := columnForRole(t.Header, roleStatement)

	periodCols := periodColumns(t.Header)
	if len(periodCols) == 0 {
		return nil, apierrors.NewFormatError(
			"no year-like columns",
			"wide-form table needs headers matching ^\\d{4}[A-Za-z]?$; header: %v", t.Header)
	}

	records := make([]domain.ObservedRecord, 0, len(t.Rows)*len(periodCols))
	for i := range t.Rows {
		label := t.Cell(i, itemCol)
		if label == "" {
			continue
		}

		company := DefaultCompany
		if companyCol >= 0 {
			if c := strings.ToUpper(t.Cell(i, companyCol)); c != "" {
				company = c
			}
		}
		statement := domain.StatementIncome
		if statementCol >= 0 {
			if s := t.Cell(i, statementCol); s != "" {
				statement = domain.ClassifyStatement(concepts.Canonicalize(s))
			}
		}
		concept, _ := concepts.Resolve(label)

		for _, pc := range periodCols {
			value, ok := ingest.ParseNumber(t.Cell(i, pc))
			if !ok {
				continue
			}
			records = append(records, domain.ObservedRecord{
				Company:   company,
				Period:    domain.PeriodLabel(strings.TrimSpace(t.Header[pc])),
				Statement: statement,
				Concept:   concept,
				Label:     label,
				Value:     value,
			})
		}
	}
	return records, nil
}
