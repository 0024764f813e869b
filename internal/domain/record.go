package domain

import (
	"github.com/shopspring/decimal"
)

// Strategy identifies which side of a comparison a record series belongs to.
type Strategy string

const (
	StrategyHomeowner Strategy = "homeowner"
	StrategyRenter    Strategy = "renter"
	StrategyRentOut   Strategy = "rent_out"
	StrategySell      Strategy = "sell"
)

// MonthlyRecord is one month of a simulated strategy. Records are produced
// once by an engine and never mutated afterwards; the cost breakdown fields
// are populated here so export layers never recompute the simulation.
// Month 0 is the initial state before any cash flow.
type MonthlyRecord struct {
	Month int `json:"month"`
	Year  int `json:"year"` // elapsed years, month/12

	GrossIncome    decimal.Decimal `json:"gross_income"`     // monthly
	AfterTaxIncome decimal.Decimal `json:"after_tax_income"` // monthly

	PortfolioValue decimal.Decimal `json:"portfolio_value"`
	PortfolioGain  decimal.Decimal `json:"portfolio_gain"` // prior value x monthly return

	// Homeowner strategy fields
	HomeEquity    decimal.Decimal `json:"home_equity,omitempty"`
	HomeValuation decimal.Decimal `json:"home_valuation,omitempty"`
	CostMortgage  decimal.Decimal `json:"cost_mortgage,omitempty"`
	PropertyTax   decimal.Decimal `json:"monthly_property_tax,omitempty"`
	Maintenance   decimal.Decimal `json:"monthly_maintenance,omitempty"`
	HomeInsurance decimal.Decimal `json:"home_insurance,omitempty"`
	HOAFees       decimal.Decimal `json:"hoa_fees,omitempty"`

	// Renter strategy fields
	CostRent      decimal.Decimal `json:"cost_rent,omitempty"`
	CostInsurance decimal.Decimal `json:"cost_insurance,omitempty"`

	// Rental property strategy fields
	PropertyValue   decimal.Decimal `json:"property_value,omitempty"`
	NetRentalIncome decimal.Decimal `json:"net_rental_income,omitempty"`
	NewRentCost     decimal.Decimal `json:"new_rent_cost,omitempty"`

	NonHousingCost decimal.Decimal `json:"non_housing_cost"`
	ExcessCashFlow decimal.Decimal `json:"excess_cash_flow"`

	TotalNetWorth decimal.Decimal `json:"total_net_worth"`
}

// StrategyResult is one strategy's full monthly series plus the taxes
// realized at the end-of-horizon settlement.
type StrategyResult struct {
	Strategy Strategy        `json:"strategy"`
	Records  []MonthlyRecord `json:"records"`

	// Settlement taxes realized in the final month. PropertyTax covers the
	// home or rental property sale; it is always zero for strategies that
	// hold no property.
	PortfolioCapitalGainsTax decimal.Decimal `json:"portfolio_capital_gains_tax"`
	PropertyCapitalGainsTax  decimal.Decimal `json:"property_capital_gains_tax"`
}

// FinalRecord returns the last month's record.
func (sr StrategyResult) FinalRecord() MonthlyRecord {
	return sr.Records[len(sr.Records)-1]
}

// ComparisonRow is one month of a two-strategy comparison.
// Leader is LeaderTie when the gap is exactly zero.
type ComparisonRow struct {
	Month       int             `json:"month"`
	NetWorthA   decimal.Decimal `json:"net_worth_a"`
	NetWorthB   decimal.Decimal `json:"net_worth_b"`
	NetWorthGap decimal.Decimal `json:"net_worth_gap"` // A - B
	Leader      Strategy        `json:"leader"`
}

// LeaderTie tags months where neither strategy leads.
const LeaderTie Strategy = "tie"

// AnalysisSummary captures the end-of-horizon outcome of a comparison.
type AnalysisSummary struct {
	TimeHorizonYears    int             `json:"time_horizon_years"`
	FinalNetWorthA      decimal.Decimal `json:"final_net_worth_a"`
	FinalNetWorthB      decimal.Decimal `json:"final_net_worth_b"`
	FinalNetWorthGap    decimal.Decimal `json:"final_net_worth_gap"`
	FinalWinner         Strategy        `json:"final_winner"`
	PortfolioTaxA       decimal.Decimal `json:"portfolio_tax_a"`
	PortfolioTaxB       decimal.Decimal `json:"portfolio_tax_b"`
	PropertyTaxA        decimal.Decimal `json:"property_tax_a"`
	PropertyTaxB        decimal.Decimal `json:"property_tax_b"`
	FinalPortfolioA     decimal.Decimal `json:"final_portfolio_a"`
	FinalPortfolioB     decimal.Decimal `json:"final_portfolio_b"`
	FinalPropertyEquity decimal.Decimal `json:"final_property_equity"` // strategy A's home equity or property value
}

// AnalysisResult is the complete output of one analysis run: both strategy
// series, the per-month comparison, and the summary. Read-only after
// creation.
type AnalysisResult struct {
	StrategyA  StrategyResult  `json:"strategy_a"`
	StrategyB  StrategyResult  `json:"strategy_b"`
	Comparison []ComparisonRow `json:"comparison"`
	Summary    AnalysisSummary `json:"summary"`
}
