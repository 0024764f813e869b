package calculation

import (
	"github.com/hcgo/housing-calculator/internal/domain"
	"github.com/shopspring/decimal"
)

// TAX MODEL ASSUMPTIONS:
//
// 1. Income tax uses blended effective rates (federal + payroll), not a
//    marginal schedule. Brackets are inclusive upper bounds: an amount
//    exactly on a boundary takes the lower bracket's rate.
//
// 2. Long-term capital gains rates depend on filing status and on the size
//    of the gain itself, again as flat effective rates.
//
// 3. Settlement taxes are computed once at the end of the horizon from the
//    whole-horizon gain (final minus initial value), not from incrementally
//    realized gains.

// RateBracket is one (inclusive upper bound, rate) step of an ordered
// effective-rate table. A zero Max marks the open-ended top bracket.
type RateBracket struct {
	Max  decimal.Decimal
	Rate decimal.Decimal
}

// TaxPolicy holds the ordered bracket tables for income and capital gains
// tax lookups. All methods are pure.
type TaxPolicy struct {
	IncomeBrackets []RateBracket
	LTCGSingle     []RateBracket
	LTCGMarried    []RateBracket
}

// NewTaxPolicy creates the default effective-rate tables.
func NewTaxPolicy() *TaxPolicy {
	return &TaxPolicy{
		IncomeBrackets: []RateBracket{
			{decimal.NewFromInt(100000), decimal.NewFromFloat(0.22)},
			{decimal.NewFromInt(300000), decimal.NewFromFloat(0.28)},
			{decimal.Decimal{}, decimal.NewFromFloat(0.32)},
		},
		LTCGSingle: []RateBracket{
			{decimal.NewFromInt(50000), decimal.Zero},
			{decimal.NewFromInt(500000), decimal.NewFromFloat(0.15)},
			{decimal.Decimal{}, decimal.NewFromFloat(0.20)},
		},
		LTCGMarried: []RateBracket{
			{decimal.NewFromInt(100000), decimal.Zero},
			{decimal.NewFromInt(600000), decimal.NewFromFloat(0.15)},
			{decimal.Decimal{}, decimal.NewFromFloat(0.20)},
		},
	}
}

// lookupRate scans an ordered bracket table and returns the rate of the
// first bracket whose inclusive upper bound covers the amount.
func lookupRate(brackets []RateBracket, amount decimal.Decimal) decimal.Decimal {
	for _, b := range brackets[:len(brackets)-1] {
		if amount.LessThanOrEqual(b.Max) {
			return b.Rate
		}
	}
	return brackets[len(brackets)-1].Rate
}

// EffectiveIncomeTaxRate returns the blended effective tax rate for an
// annual gross income.
func (tp *TaxPolicy) EffectiveIncomeTaxRate(grossAnnualIncome decimal.Decimal) decimal.Decimal {
	return lookupRate(tp.IncomeBrackets, grossAnnualIncome)
}

// LongTermCapitalGainsRate returns the effective LTCG rate for a gain under
// the given filing status. Callers clamp gains to be positive first.
func (tp *TaxPolicy) LongTermCapitalGainsRate(gains decimal.Decimal, status domain.FilingStatus) decimal.Decimal {
	if status == domain.FilingSingle {
		return lookupRate(tp.LTCGSingle, gains)
	}
	return lookupRate(tp.LTCGMarried, gains)
}

// AfterTaxIncome returns gross annual income net of the effective income
// tax rate.
func (tp *TaxPolicy) AfterTaxIncome(grossAnnualIncome decimal.Decimal) decimal.Decimal {
	rate := tp.EffectiveIncomeTaxRate(grossAnnualIncome)
	return grossAnnualIncome.Mul(decimal.NewFromInt(1).Sub(rate))
}

// CapitalGainsTax computes the settlement tax on a portfolio's
// whole-horizon gain. Returns zero when taxation is disabled or the gain is
// not positive.
func (tp *TaxPolicy) CapitalGainsTax(finalValue, initialValue decimal.Decimal, enabled bool, status domain.FilingStatus) decimal.Decimal {
	if !enabled {
		return decimal.Zero
	}
	gains := finalValue.Sub(initialValue)
	if gains.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero
	}
	return gains.Mul(tp.LongTermCapitalGainsRate(gains, status))
}

// PropertySaleTax computes the capital gains tax on a property sale after
// applying the exclusion. The rate lookup uses the taxable amount itself.
// Returns zero when taxation is disabled.
func (tp *TaxPolicy) PropertySaleTax(salePrice, basis, exclusion decimal.Decimal, enabled bool, status domain.FilingStatus) decimal.Decimal {
	if !enabled {
		return decimal.Zero
	}
	taxable := salePrice.Sub(basis).Sub(exclusion)
	if taxable.LessThan(decimal.Zero) {
		taxable = decimal.Zero
	}
	return taxable.Mul(tp.LongTermCapitalGainsRate(taxable, status))
}
