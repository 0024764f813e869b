package calculation

import (
	"github.com/shopspring/decimal"
)

// CompoundFactor returns (1 + annualRate)^(month/12) using integer floor
// division. Month indices are 0-based and escalation steps once per
// 12-month boundary, not continuously: every month in [12k, 12k+11] shares
// the same factor. The visible year-boundary steps in monthly cost series
// depend on this, so the floor-by-12 semantics must not be smoothed out.
func CompoundFactor(annualRate decimal.Decimal, month int) decimal.Decimal {
	yearsElapsed := month / 12
	if yearsElapsed == 0 {
		return decimal.NewFromInt(1)
	}
	return decimal.NewFromInt(1).Add(annualRate).Pow(decimal.NewFromInt(int64(yearsElapsed)))
}
