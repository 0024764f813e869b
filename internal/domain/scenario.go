package domain

import (
	"github.com/shopspring/decimal"
)

// FilingStatus selects the capital gains bracket table.
type FilingStatus string

const (
	FilingSingle               FilingStatus = "single"
	FilingMarriedFilingJointly FilingStatus = "married_filing_jointly"
)

// Valid reports whether the filing status is one of the supported values.
func (fs FilingStatus) Valid() bool {
	return fs == FilingSingle || fs == FilingMarriedFilingJointly
}

// BuyScenario holds the parameters for purchasing a primary residence.
// All rates are annual decimals (0.065 = 6.5%); down payment is a fraction
// of the purchase price in [0,1].
type BuyScenario struct {
	PurchasePrice               decimal.Decimal `yaml:"purchase_price" json:"purchase_price"`
	DownPaymentPct              decimal.Decimal `yaml:"down_payment_pct" json:"down_payment_pct"`
	MortgageRate                decimal.Decimal `yaml:"mortgage_rate" json:"mortgage_rate"`
	AmortizationYears           int             `yaml:"amortization_years" json:"amortization_years"`
	PropertyTaxRate             decimal.Decimal `yaml:"property_tax_rate" json:"property_tax_rate"`
	MaintenanceCostPct          decimal.Decimal `yaml:"maintenance_cost_pct" json:"maintenance_cost_pct"`
	HomeInsuranceMonthly        decimal.Decimal `yaml:"home_insurance_monthly" json:"home_insurance_monthly"`
	HOAMonthly                  decimal.Decimal `yaml:"hoa_monthly" json:"hoa_monthly"`
	HomeAppreciationRate        decimal.Decimal `yaml:"home_appreciation_rate" json:"home_appreciation_rate"`
	SellingCostPct              decimal.Decimal `yaml:"selling_cost_pct" json:"selling_cost_pct"`
	PrimaryHomeExclusionDollars decimal.Decimal `yaml:"primary_home_exclusion_dollars" json:"primary_home_exclusion_dollars"`
}

// DownPayment returns the cash required at purchase.
func (b *BuyScenario) DownPayment() decimal.Decimal {
	return b.PurchasePrice.Mul(b.DownPaymentPct)
}

// LoanPrincipal returns the financed portion of the purchase price.
func (b *BuyScenario) LoanPrincipal() decimal.Decimal {
	return b.PurchasePrice.Sub(b.DownPayment())
}

// RentScenario holds the parameters for renting a primary residence.
type RentScenario struct {
	MonthlyRent             decimal.Decimal `yaml:"monthly_rent" json:"monthly_rent"`
	RentersInsuranceMonthly decimal.Decimal `yaml:"renters_insurance_monthly" json:"renters_insurance_monthly"`
	RentIncreaseRate        decimal.Decimal `yaml:"rent_increase_rate" json:"rent_increase_rate"`
}

// Assumptions holds the household-level inputs shared by both strategies of
// a buy-vs-rent analysis.
type Assumptions struct {
	Income                   decimal.Decimal `yaml:"income" json:"income"`
	TimeHorizonYears         int             `yaml:"time_horizon_years" json:"time_horizon_years"`
	InvestmentTaxEnabled     bool            `yaml:"investment_tax_enabled" json:"investment_tax_enabled"`
	FilingStatus             FilingStatus    `yaml:"filing_status" json:"filing_status"`
	InflationRate            decimal.Decimal `yaml:"inflation_rate" json:"inflation_rate"`
	InvestmentReturnRate     decimal.Decimal `yaml:"investment_return_rate" json:"investment_return_rate"`
	IncomeGrowthRate         decimal.Decimal `yaml:"income_growth_rate" json:"income_growth_rate"`
	StartingNetWorth         decimal.Decimal `yaml:"starting_net_worth" json:"starting_net_worth"`
	AnnualNonHousingSpending decimal.Decimal `yaml:"annual_non_housing_spending" json:"annual_non_housing_spending"`
}

// HorizonMonths returns the number of simulated months.
func (a *Assumptions) HorizonMonths() int {
	return a.TimeHorizonYears * 12
}

// RentOutScenario holds the parameters for keeping an owned property as a
// rental instead of selling it.
type RentOutScenario struct {
	CurrentPropertyValue     decimal.Decimal `yaml:"current_property_value" json:"current_property_value"`
	MonthlyRentalIncome      decimal.Decimal `yaml:"monthly_rental_income" json:"monthly_rental_income"`
	RentalIncomeGrowthRate   decimal.Decimal `yaml:"rental_income_growth_rate" json:"rental_income_growth_rate"`
	PropertyManagementFeePct decimal.Decimal `yaml:"property_management_fee_pct" json:"property_management_fee_pct"`
	VacancyRate              decimal.Decimal `yaml:"vacancy_rate" json:"vacancy_rate"`
	RentalPropertyTaxRate    decimal.Decimal `yaml:"rental_property_tax_rate" json:"rental_property_tax_rate"`
	RentalMaintenanceCostPct decimal.Decimal `yaml:"rental_maintenance_cost_pct" json:"rental_maintenance_cost_pct"`
	RentalInsuranceMonthly   decimal.Decimal `yaml:"rental_insurance_monthly" json:"rental_insurance_monthly"`
	RentalAppreciationRate   decimal.Decimal `yaml:"rental_appreciation_rate" json:"rental_appreciation_rate"`
}

// SellScenario holds the parameters for selling the owned property now and
// investing the proceeds. OriginalPurchasePrice is the tax basis.
type SellScenario struct {
	CurrentPropertyValue  decimal.Decimal `yaml:"current_property_value" json:"current_property_value"`
	SellingCostPct        decimal.Decimal `yaml:"selling_cost_pct" json:"selling_cost_pct"`
	CapitalGainsExclusion decimal.Decimal `yaml:"capital_gains_exclusion" json:"capital_gains_exclusion"`
	OriginalPurchasePrice decimal.Decimal `yaml:"original_purchase_price" json:"original_purchase_price"`
}

// RentOutVsSellAssumptions extends the shared household assumptions with the
// cost of the replacement home the household rents either way.
type RentOutVsSellAssumptions struct {
	Income                     decimal.Decimal `yaml:"income" json:"income"`
	TimeHorizonYears           int             `yaml:"time_horizon_years" json:"time_horizon_years"`
	InvestmentTaxEnabled       bool            `yaml:"investment_tax_enabled" json:"investment_tax_enabled"`
	FilingStatus               FilingStatus    `yaml:"filing_status" json:"filing_status"`
	InflationRate              decimal.Decimal `yaml:"inflation_rate" json:"inflation_rate"`
	InvestmentReturnRate       decimal.Decimal `yaml:"investment_return_rate" json:"investment_return_rate"`
	IncomeGrowthRate           decimal.Decimal `yaml:"income_growth_rate" json:"income_growth_rate"`
	StartingNetWorth           decimal.Decimal `yaml:"starting_net_worth" json:"starting_net_worth"`
	AnnualNonHousingSpending   decimal.Decimal `yaml:"annual_non_housing_spending" json:"annual_non_housing_spending"`
	NewMonthlyRent             decimal.Decimal `yaml:"new_monthly_rent" json:"new_monthly_rent"`
	NewRentIncreaseRate        decimal.Decimal `yaml:"new_rent_increase_rate" json:"new_rent_increase_rate"`
	NewRentersInsuranceMonthly decimal.Decimal `yaml:"new_renters_insurance_monthly" json:"new_renters_insurance_monthly"`
}

// HorizonMonths returns the number of simulated months.
func (a *RentOutVsSellAssumptions) HorizonMonths() int {
	return a.TimeHorizonYears * 12
}

// Shared returns the household assumptions in buy-vs-rent shape so the two
// scenario families can drive the same projector and tax policy.
func (a *RentOutVsSellAssumptions) Shared() Assumptions {
	return Assumptions{
		Income:                   a.Income,
		TimeHorizonYears:         a.TimeHorizonYears,
		InvestmentTaxEnabled:     a.InvestmentTaxEnabled,
		FilingStatus:             a.FilingStatus,
		InflationRate:            a.InflationRate,
		InvestmentReturnRate:     a.InvestmentReturnRate,
		IncomeGrowthRate:         a.IncomeGrowthRate,
		StartingNetWorth:         a.StartingNetWorth,
		AnnualNonHousingSpending: a.AnnualNonHousingSpending,
	}
}
