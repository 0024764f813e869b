package calculation

import (
	"testing"

	"github.com/hcgo/housing-calculator/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

// TestOwnershipCostBreakdown checks which components track inflation:
// maintenance, insurance and HOA do; property tax tracks only the
// appreciated home value.
func TestOwnershipCostBreakdown(t *testing.T) {
	buy := &domain.BuyScenario{
		PurchasePrice:        decimal.NewFromInt(600000),
		DownPaymentPct:       decimal.NewFromFloat(0.20),
		MortgageRate:         decimal.Zero,
		AmortizationYears:    30,
		PropertyTaxRate:      decimal.NewFromFloat(0.012),
		MaintenanceCostPct:   decimal.NewFromFloat(0.01),
		HomeInsuranceMonthly: decimal.NewFromInt(100),
		HOAMonthly:           decimal.NewFromInt(50),
		HomeAppreciationRate: decimal.Zero,
	}
	rent := &domain.RentScenario{
		MonthlyRent:             decimal.NewFromInt(2000),
		RentersInsuranceMonthly: decimal.NewFromInt(20),
		RentIncreaseRate:        decimal.NewFromFloat(0.05),
	}
	model := NewCostModel(buy, rent, decimal.NewFromFloat(0.10))

	first := model.OwnershipCostBreakdown(0)
	// 480000 at 0% over 30 years: 1333.33.. per month.
	assert.InDelta(t, 1333.33, first.Mortgage.InexactFloat64(), 0.01)
	// 600000 * 0.012 / 12 = 600
	assert.True(t, first.PropertyTax.Equal(decimal.NewFromInt(600)), "got %s", first.PropertyTax)
	// 600000 * 0.01 / 12 = 500
	assert.True(t, first.Maintenance.Equal(decimal.NewFromInt(500)), "got %s", first.Maintenance)

	year2 := model.OwnershipCostBreakdown(12)
	// No appreciation, so property tax stays flat even at 10% inflation.
	assert.True(t, year2.PropertyTax.Equal(first.PropertyTax),
		"property tax must not be inflation-adjusted: %s vs %s", year2.PropertyTax, first.PropertyTax)
	assert.True(t, year2.Maintenance.Equal(decimal.NewFromInt(550)), "got %s", year2.Maintenance)
	assert.True(t, year2.Insurance.Equal(decimal.NewFromInt(110)), "got %s", year2.Insurance)
	assert.True(t, year2.HOA.Equal(decimal.NewFromInt(55)), "got %s", year2.HOA)
}

// TestRentCostBreakdown checks rent escalates at its own rate while the
// renters insurance follows inflation.
func TestRentCostBreakdown(t *testing.T) {
	buy := &domain.BuyScenario{PurchasePrice: decimal.NewFromInt(600000), AmortizationYears: 30}
	rent := &domain.RentScenario{
		MonthlyRent:             decimal.NewFromInt(2000),
		RentersInsuranceMonthly: decimal.NewFromInt(20),
		RentIncreaseRate:        decimal.NewFromFloat(0.05),
	}
	model := NewCostModel(buy, rent, decimal.NewFromFloat(0.10))

	first := model.RentCostBreakdown(0)
	assert.True(t, first.Rent.Equal(decimal.NewFromInt(2000)))
	assert.True(t, first.Insurance.Equal(decimal.NewFromInt(20)))
	assert.True(t, model.RentCost(0).Equal(decimal.NewFromInt(2020)))

	year2 := model.RentCostBreakdown(12)
	assert.True(t, year2.Rent.Equal(decimal.NewFromInt(2100)), "got %s", year2.Rent)
	assert.True(t, year2.Insurance.Equal(decimal.NewFromInt(22)), "got %s", year2.Insurance)
}

func TestHomeValueAppreciation(t *testing.T) {
	buy := &domain.BuyScenario{
		PurchasePrice:        decimal.NewFromInt(600000),
		AmortizationYears:    30,
		HomeAppreciationRate: decimal.NewFromFloat(0.04),
	}
	model := NewCostModel(buy, &domain.RentScenario{}, decimal.Zero)

	assert.True(t, model.HomeValue(0).Equal(decimal.NewFromInt(600000)))
	assert.True(t, model.HomeValue(11).Equal(decimal.NewFromInt(600000)))
	assert.True(t, model.HomeValue(12).Equal(decimal.NewFromInt(624000)), "got %s", model.HomeValue(12))
}

// TestRentalNetIncome hand-checks the vacancy, management fee and carrying
// cost chain on the first month.
func TestRentalNetIncome(t *testing.T) {
	rentOut := &domain.RentOutScenario{
		CurrentPropertyValue:     decimal.NewFromInt(600000),
		MonthlyRentalIncome:      decimal.NewFromInt(3000),
		RentalIncomeGrowthRate:   decimal.NewFromFloat(0.03),
		PropertyManagementFeePct: decimal.NewFromFloat(0.10),
		VacancyRate:              decimal.NewFromFloat(0.05),
		RentalPropertyTaxRate:    decimal.NewFromFloat(0.012),
		RentalMaintenanceCostPct: decimal.NewFromFloat(0.01),
		RentalInsuranceMonthly:   decimal.NewFromInt(150),
	}
	assumptions := &domain.RentOutVsSellAssumptions{
		InflationRate:              decimal.NewFromFloat(0.025),
		NewMonthlyRent:             decimal.NewFromInt(2800),
		NewRentIncreaseRate:        decimal.NewFromFloat(0.03),
		NewRentersInsuranceMonthly: decimal.NewFromInt(25),
	}
	model := NewRentalCostModel(rentOut, assumptions)

	// 3000 * 0.95 * 0.90 = 2565 gross after vacancy and fees; carrying
	// costs are 600 tax + 500 maintenance + 150 insurance = 1250.
	net := model.RentalNetIncome(0)
	assert.True(t, net.Equal(decimal.NewFromInt(1315)), "got %s", net)

	assert.True(t, model.NewRentCost(0).Equal(decimal.NewFromInt(2825)))
}

// TestRentalCarryingCostsInflation isolates which rental carrying costs
// track inflation past the first year: only the landlord insurance does.
// Property tax and maintenance scale with the appreciated value alone.
func TestRentalCarryingCostsInflation(t *testing.T) {
	rentOut := &domain.RentOutScenario{
		CurrentPropertyValue:     decimal.NewFromInt(600000),
		MonthlyRentalIncome:      decimal.NewFromInt(3000),
		RentalIncomeGrowthRate:   decimal.Zero,
		PropertyManagementFeePct: decimal.Zero,
		VacancyRate:              decimal.Zero,
		RentalPropertyTaxRate:    decimal.Zero,
		RentalMaintenanceCostPct: decimal.NewFromFloat(0.01),
		RentalInsuranceMonthly:   decimal.NewFromInt(150),
		RentalAppreciationRate:   decimal.Zero,
	}
	assumptions := &domain.RentOutVsSellAssumptions{
		InflationRate: decimal.NewFromFloat(0.10),
	}
	model := NewRentalCostModel(rentOut, assumptions)

	// Month 0: 3000 - 500 maintenance - 150 insurance.
	first := model.RentalNetIncome(0)
	assert.True(t, first.Equal(decimal.NewFromInt(2350)), "got %s", first)

	// Month 12: with no appreciation, maintenance stays 500 even at 10%
	// inflation; only the insurance steps, to 165.
	year2 := model.RentalNetIncome(12)
	assert.True(t, year2.Equal(decimal.NewFromInt(2335)), "got %s", year2)
}
