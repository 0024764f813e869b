package calculation

import (
	"github.com/hcgo/housing-calculator/internal/domain"
	"github.com/shopspring/decimal"
)

// MonthlyCostFunc returns the housing cost (or, when negative, net housing
// income) for a 0-based month index. Injecting the cost function keeps the
// projector scenario-agnostic.
type MonthlyCostFunc func(month int) decimal.Decimal

// PortfolioProjector runs the single cash-flow recurrence shared by every
// strategy:
//
//	portfolio[m+1] = portfolio[m] * (1 + r/12) + excess cash flow(m)
//
// where excess cash flow is monthly after-tax income minus housing and
// inflation-adjusted non-housing spending. The monthly return is the annual
// nominal rate divided by 12, not the geometric monthly-equivalent rate;
// downstream figures are only reproducible with the simple division.
type PortfolioProjector struct {
	assumptions *domain.Assumptions
	taxes       *TaxPolicy
}

// NewPortfolioProjector creates a projector over the shared household
// assumptions.
func NewPortfolioProjector(assumptions *domain.Assumptions, taxes *TaxPolicy) *PortfolioProjector {
	return &PortfolioProjector{assumptions: assumptions, taxes: taxes}
}

// MonthlyReturnRate returns the simple monthly investment return.
func (pp *PortfolioProjector) MonthlyReturnRate() decimal.Decimal {
	return pp.assumptions.InvestmentReturnRate.Div(twelve)
}

// GrossAnnualIncome returns the household's gross annual income for a
// month, compounding the growth rate on calendar-year boundaries.
func (pp *PortfolioProjector) GrossAnnualIncome(month int) decimal.Decimal {
	return pp.assumptions.Income.Mul(CompoundFactor(pp.assumptions.IncomeGrowthRate, month))
}

// MonthlyGrossIncome returns one twelfth of the gross annual income.
func (pp *PortfolioProjector) MonthlyGrossIncome(month int) decimal.Decimal {
	return pp.GrossAnnualIncome(month).Div(twelve)
}

// MonthlyAfterTaxIncome returns one twelfth of the after-tax annual income.
// The effective tax rate is looked up on the grown annual figure.
func (pp *PortfolioProjector) MonthlyAfterTaxIncome(month int) decimal.Decimal {
	return pp.taxes.AfterTaxIncome(pp.GrossAnnualIncome(month)).Div(twelve)
}

// NonHousingSpending returns the inflation-adjusted monthly non-housing
// spending for a month.
func (pp *PortfolioProjector) NonHousingSpending(month int) decimal.Decimal {
	base := pp.assumptions.AnnualNonHousingSpending.Div(twelve)
	return base.Mul(CompoundFactor(pp.assumptions.InflationRate, month))
}

// ExcessCashFlow returns the amount available to invest in a month, which
// may be negative; shortfalls draw the portfolio down (no borrowing is
// modeled, and the portfolio may go negative).
func (pp *PortfolioProjector) ExcessCashFlow(month int, costFn MonthlyCostFunc) decimal.Decimal {
	return pp.MonthlyAfterTaxIncome(month).Sub(costFn(month)).Sub(pp.NonHousingSpending(month))
}

// Project runs the recurrence from an initial portfolio value and returns
// horizon+1 values, index 0 being the initial value.
func (pp *PortfolioProjector) Project(initial decimal.Decimal, costFn MonthlyCostFunc) []decimal.Decimal {
	horizon := pp.assumptions.HorizonMonths()
	monthlyReturn := pp.MonthlyReturnRate()
	one := decimal.NewFromInt(1)

	values := make([]decimal.Decimal, 0, horizon+1)
	values = append(values, initial)

	for month := 0; month < horizon; month++ {
		prev := values[len(values)-1]
		next := prev.Mul(one.Add(monthlyReturn)).Add(pp.ExcessCashFlow(month, costFn))
		values = append(values, next)
	}

	return values
}
