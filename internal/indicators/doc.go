// Package indicators computes the fixed catalogue of 20 financial ratios
// per reporting period from assembled concept time series.
//
// Formulas follow the standard definitions with documented substitutions
// when a preferred source series is missing:
//
//   - Gross Profit falls back to Revenue - COGS.
//   - Total Debt falls back to short-term + long-term debt when both exist,
//     else to Total Liabilities.
//   - EBITDA falls back to EBIT + depreciation/amortization (D&A treated as
//     zero only when EBIT itself exists).
//   - Quick Ratio falls back to (Cash + Receivables) / Current Liabilities
//     when Inventory is unavailable.
//   - ROA, ROE and the turnover ratios divide by the two-point average of
//     the denominator across the current and preceding period when a
//     preceding period exists.
//
// A zero or absent denominator, or a missing input, yields an explicitly
// absent cell, never a zero and never an error.
package indicators
