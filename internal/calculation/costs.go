package calculation

import (
	"github.com/hcgo/housing-calculator/internal/domain"
	"github.com/shopspring/decimal"
)

// OwnershipCosts is the per-month cost breakdown of owning the primary
// residence.
type OwnershipCosts struct {
	Mortgage    decimal.Decimal
	PropertyTax decimal.Decimal
	Maintenance decimal.Decimal
	Insurance   decimal.Decimal
	HOA         decimal.Decimal
}

// Total sums the ownership cost components.
func (oc OwnershipCosts) Total() decimal.Decimal {
	return oc.Mortgage.Add(oc.PropertyTax).Add(oc.Maintenance).Add(oc.Insurance).Add(oc.HOA)
}

// RentCosts is the per-month cost breakdown of renting the primary
// residence.
type RentCosts struct {
	Rent      decimal.Decimal
	Insurance decimal.Decimal
}

// Total sums the rent cost components.
func (rc RentCosts) Total() decimal.Decimal {
	return rc.Rent.Add(rc.Insurance)
}

// CostModel computes scenario-specific monthly housing costs. The mortgage
// payment is fixed for the life of the loan and precomputed once.
type CostModel struct {
	buy       *domain.BuyScenario
	rent      *domain.RentScenario
	inflation decimal.Decimal
	payment   decimal.Decimal
}

// NewCostModel creates a cost model for a buy-vs-rent analysis.
func NewCostModel(buy *domain.BuyScenario, rent *domain.RentScenario, inflationRate decimal.Decimal) *CostModel {
	return &CostModel{
		buy:       buy,
		rent:      rent,
		inflation: inflationRate,
		payment:   FixedMonthlyPayment(buy.LoanPrincipal(), buy.MortgageRate, buy.AmortizationYears),
	}
}

// MortgagePayment returns the fixed monthly principal-and-interest payment.
func (cm *CostModel) MortgagePayment() decimal.Decimal {
	return cm.payment
}

// HomeValue returns the appreciated home value for a given month. The value
// steps annually with the appreciation rate.
func (cm *CostModel) HomeValue(month int) decimal.Decimal {
	return cm.buy.PurchasePrice.Mul(CompoundFactor(cm.buy.HomeAppreciationRate, month))
}

// OwnershipCostBreakdown returns the monthly cost components of ownership.
// Property tax already scales with the appreciated home value and gets no
// separate inflation adjustment; maintenance, insurance and HOA do.
func (cm *CostModel) OwnershipCostBreakdown(month int) OwnershipCosts {
	inflation := CompoundFactor(cm.inflation, month)
	return OwnershipCosts{
		Mortgage:    cm.payment,
		PropertyTax: cm.HomeValue(month).Mul(cm.buy.PropertyTaxRate).Div(twelve),
		Maintenance: cm.buy.PurchasePrice.Mul(cm.buy.MaintenanceCostPct).Div(twelve).Mul(inflation),
		Insurance:   cm.buy.HomeInsuranceMonthly.Mul(inflation),
		HOA:         cm.buy.HOAMonthly.Mul(inflation),
	}
}

// OwnershipCost returns the total monthly cost of ownership.
func (cm *CostModel) OwnershipCost(month int) decimal.Decimal {
	return cm.OwnershipCostBreakdown(month).Total()
}

// RentCostBreakdown returns the monthly cost components of renting. Rent
// escalates at its own annual increase rate, insurance with inflation.
func (cm *CostModel) RentCostBreakdown(month int) RentCosts {
	return RentCosts{
		Rent:      cm.rent.MonthlyRent.Mul(CompoundFactor(cm.rent.RentIncreaseRate, month)),
		Insurance: cm.rent.RentersInsuranceMonthly.Mul(CompoundFactor(cm.inflation, month)),
	}
}

// RentCost returns the total monthly cost of renting.
func (cm *CostModel) RentCost(month int) decimal.Decimal {
	return cm.RentCostBreakdown(month).Total()
}

// RentalCostModel computes the monthly economics of holding a property as a
// rental, plus the cost of the replacement home the household rents.
type RentalCostModel struct {
	rentOut   *domain.RentOutScenario
	inflation decimal.Decimal

	newRent          decimal.Decimal
	newRentIncrease  decimal.Decimal
	newRentInsurance decimal.Decimal
}

// NewRentalCostModel creates a cost model for a rent-out-vs-sell analysis.
func NewRentalCostModel(rentOut *domain.RentOutScenario, assumptions *domain.RentOutVsSellAssumptions) *RentalCostModel {
	return &RentalCostModel{
		rentOut:          rentOut,
		inflation:        assumptions.InflationRate,
		newRent:          assumptions.NewMonthlyRent,
		newRentIncrease:  assumptions.NewRentIncreaseRate,
		newRentInsurance: assumptions.NewRentersInsuranceMonthly,
	}
}

// PropertyValue returns the appreciated rental property value for a month.
func (rm *RentalCostModel) PropertyValue(month int) decimal.Decimal {
	return rm.rentOut.CurrentPropertyValue.Mul(CompoundFactor(rm.rentOut.RentalAppreciationRate, month))
}

// propertyCosts returns the carrying cost of the rental property: property
// tax and maintenance scale with the appreciated value and get no separate
// inflation adjustment; landlord insurance tracks inflation.
func (rm *RentalCostModel) propertyCosts(month int) decimal.Decimal {
	value := rm.PropertyValue(month)
	propertyTax := value.Mul(rm.rentOut.RentalPropertyTaxRate).Div(twelve)
	maintenance := value.Mul(rm.rentOut.RentalMaintenanceCostPct).Div(twelve)
	insurance := rm.rentOut.RentalInsuranceMonthly.Mul(CompoundFactor(rm.inflation, month))
	return propertyTax.Add(maintenance).Add(insurance)
}

// RentalNetIncome returns the monthly rental income after vacancy,
// management fees and property carrying costs. May be negative.
func (rm *RentalCostModel) RentalNetIncome(month int) decimal.Decimal {
	one := decimal.NewFromInt(1)
	gross := rm.rentOut.MonthlyRentalIncome.Mul(CompoundFactor(rm.rentOut.RentalIncomeGrowthRate, month))
	effective := gross.Mul(one.Sub(rm.rentOut.VacancyRate))
	afterFees := effective.Mul(one.Sub(rm.rentOut.PropertyManagementFeePct))
	return afterFees.Sub(rm.propertyCosts(month))
}

// NewRentCost returns the monthly cost of the replacement home: rent with
// its own increase rate plus renters insurance with inflation.
func (rm *RentalCostModel) NewRentCost(month int) decimal.Decimal {
	rent := rm.newRent.Mul(CompoundFactor(rm.newRentIncrease, month))
	insurance := rm.newRentInsurance.Mul(CompoundFactor(rm.inflation, month))
	return rent.Add(insurance)
}
