package calculation

import (
	"testing"

	"github.com/hcgo/housing-calculator/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func flatCost(amount decimal.Decimal) MonthlyCostFunc {
	return func(int) decimal.Decimal { return amount }
}

func testAssumptions() *domain.Assumptions {
	return &domain.Assumptions{
		Income:                   decimal.NewFromInt(120000),
		TimeHorizonYears:         2,
		InvestmentTaxEnabled:     false,
		FilingStatus:             domain.FilingSingle,
		InflationRate:            decimal.Zero,
		InvestmentReturnRate:     decimal.NewFromFloat(0.12),
		IncomeGrowthRate:         decimal.Zero,
		StartingNetWorth:         decimal.NewFromInt(10000),
		AnnualNonHousingSpending: decimal.NewFromInt(24000),
	}
}

func TestProjectLength(t *testing.T) {
	projector := NewPortfolioProjector(testAssumptions(), NewTaxPolicy())
	values := projector.Project(decimal.NewFromInt(10000), flatCost(decimal.NewFromInt(2000)))
	assert.Len(t, values, 25, "2-year horizon should yield 25 values including the initial one")
}

// TestProjectRecurrence hand-checks the first two steps of the recurrence.
// Income 120000 at the 28% effective rate nets 7200/month; costs are
// 2000 housing + 2000 non-housing, so 3200/month is invested at 1%/month.
func TestProjectRecurrence(t *testing.T) {
	projector := NewPortfolioProjector(testAssumptions(), NewTaxPolicy())
	values := projector.Project(decimal.NewFromInt(10000), flatCost(decimal.NewFromInt(2000)))

	require.True(t, len(values) >= 3)
	assert.True(t, values[0].Equal(decimal.NewFromInt(10000)))
	// 10000 * 1.01 + 3200 = 13300
	assert.True(t, values[1].Equal(decimal.NewFromInt(13300)), "got %s", values[1])
	// 13300 * 1.01 + 3200 = 16633
	assert.True(t, values[2].Equal(decimal.NewFromInt(16633)), "got %s", values[2])
}

// TestProjectNegativeCashFlow checks that spending beyond income draws the
// portfolio down rather than being clamped.
func TestProjectNegativeCashFlow(t *testing.T) {
	projector := NewPortfolioProjector(testAssumptions(), NewTaxPolicy())
	values := projector.Project(decimal.NewFromInt(10000), flatCost(decimal.NewFromInt(20000)))

	final := values[len(values)-1]
	assert.True(t, final.LessThan(decimal.Zero),
		"sustained shortfall should drive the portfolio negative, got %s", final)
	for i := 1; i < len(values); i++ {
		assert.True(t, values[i].LessThan(values[i-1]),
			"month %d: portfolio should shrink every month", i)
	}
}

func TestMonthlyReturnRateIsSimpleDivision(t *testing.T) {
	projector := NewPortfolioProjector(testAssumptions(), NewTaxPolicy())
	expected := decimal.NewFromFloat(0.12).Div(decimal.NewFromInt(12))
	assert.True(t, projector.MonthlyReturnRate().Equal(expected))
}

// TestExcessCashFlowIncomeGrowth verifies the income growth compounds on
// year boundaries and the tax rate is looked up on the grown annual figure.
func TestExcessCashFlowIncomeGrowth(t *testing.T) {
	assumptions := testAssumptions()
	assumptions.IncomeGrowthRate = decimal.NewFromFloat(0.10)
	projector := NewPortfolioProjector(assumptions, NewTaxPolicy())

	// Months 0..11 share the base income.
	assert.True(t, projector.GrossAnnualIncome(0).Equal(decimal.NewFromInt(120000)))
	assert.True(t, projector.GrossAnnualIncome(11).Equal(decimal.NewFromInt(120000)))
	// Month 12 steps to 132000, still in the 28% bracket.
	assert.True(t, projector.GrossAnnualIncome(12).Equal(decimal.NewFromInt(132000)))
	expected := decimal.NewFromInt(132000).Mul(decimal.NewFromFloat(0.72)).Div(decimal.NewFromInt(12))
	assert.True(t, projector.MonthlyAfterTaxIncome(12).Equal(expected))
}

func TestNonHousingSpendingInflation(t *testing.T) {
	assumptions := testAssumptions()
	assumptions.InflationRate = decimal.NewFromFloat(0.03)
	projector := NewPortfolioProjector(assumptions, NewTaxPolicy())

	base := decimal.NewFromInt(2000)
	assert.True(t, projector.NonHousingSpending(0).Equal(base))
	assert.True(t, projector.NonHousingSpending(11).Equal(base))
	assert.True(t, projector.NonHousingSpending(12).Equal(base.Mul(decimal.NewFromFloat(1.03))))
}
