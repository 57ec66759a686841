package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifyStatement(t *testing.T) {
	tests := []struct {
		raw  string
		want StatementKind
	}{
		{"income statement", StatementIncome},
		{"ket qua kinh doanh", StatementIncome},
		{"balance sheet", StatementBalance},
		{"bang can doi ke toan", StatementBalance},
		{"cash flow statement", StatementCashflow},
		{"luu chuyen tien te", StatementCashflow},
		{"thuyet minh", StatementNote},
		{"", StatementOther},
		{"something else", StatementOther},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ClassifyStatement(tt.raw), tt.raw)
	}
}
