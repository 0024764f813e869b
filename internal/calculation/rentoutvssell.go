package calculation

import (
	"errors"
	"fmt"

	"github.com/hcgo/housing-calculator/internal/domain"
	"github.com/shopspring/decimal"
)

// ErrPropertyValueMismatch is raised at construction when the rent-out and
// sell bundles disagree on the current value of the property under
// analysis. A tolerance of one dollar absorbs rounding in inputs.
var ErrPropertyValueMismatch = errors.New("rent-out and sell scenarios must use the same current property value")

// RentOutVsSellEngine compares keeping an owned property as a rental
// against selling it now and investing the proceeds. Both strategies run
// over the same portfolio recurrence as buy-vs-rent: the keep strategy
// injects net rental income into the monthly cash flow and carries the
// appreciating property value; the sell strategy folds the net-of-tax sale
// proceeds into the initial portfolio and then looks like a plain renter.
// The household rents its replacement home in both strategies.
type RentOutVsSellEngine struct {
	RentOut     *domain.RentOutScenario
	Sell        *domain.SellScenario
	Assumptions *domain.RentOutVsSellAssumptions

	Taxes     *TaxPolicy
	Costs     *RentalCostModel
	Projector *PortfolioProjector
	Logger    Logger

	shared domain.Assumptions
}

// NewRentOutVsSellEngine validates that both bundles describe the same
// property and wires the shared components.
func NewRentOutVsSellEngine(rentOut *domain.RentOutScenario, sell *domain.SellScenario, assumptions *domain.RentOutVsSellAssumptions) (*RentOutVsSellEngine, error) {
	if rentOut.CurrentPropertyValue.Sub(sell.CurrentPropertyValue).Abs().GreaterThan(decimal.NewFromInt(1)) {
		return nil, fmt.Errorf("%w: rent-out $%s, sell $%s", ErrPropertyValueMismatch,
			rentOut.CurrentPropertyValue.StringFixed(0), sell.CurrentPropertyValue.StringFixed(0))
	}

	taxes := NewTaxPolicy()
	shared := assumptions.Shared()
	return &RentOutVsSellEngine{
		RentOut:     rentOut,
		Sell:        sell,
		Assumptions: assumptions,
		Taxes:       taxes,
		Costs:       NewRentalCostModel(rentOut, assumptions),
		Projector:   NewPortfolioProjector(&shared, taxes),
		Logger:      NopLogger{},
		shared:      shared,
	}, nil
}

// SetLogger sets the logger for the engine. A nil logger restores the
// no-op default.
func (e *RentOutVsSellEngine) SetLogger(l Logger) {
	if l == nil {
		e.Logger = NopLogger{}
		return
	}
	e.Logger = l
}

// keepCost is the monthly cost function of the keep-as-rental strategy:
// the replacement home's rent minus the property's net rental income.
// Months where the rental clears more than the new rent produce a negative
// cost, which the projector adds to the portfolio.
func (e *RentOutVsSellEngine) keepCost(month int) decimal.Decimal {
	return e.Costs.NewRentCost(month).Sub(e.Costs.RentalNetIncome(month))
}

// RentOutResult simulates keeping the property as a rental. The property is
// never sold, so the only settlement tax is on the portfolio gain.
func (e *RentOutVsSellEngine) RentOutResult() domain.StrategyResult {
	initial := e.Assumptions.StartingNetWorth
	values := e.Projector.Project(initial, e.keepCost)
	monthlyReturn := e.Projector.MonthlyReturnRate()

	var portfolioTax decimal.Decimal
	records := make([]domain.MonthlyRecord, len(values))

	for month := range values {
		propertyValue := e.Costs.PropertyValue(month)

		portfolioValue := values[month]
		gain := decimal.Zero
		cashFlow := decimal.Zero
		if month > 0 {
			gain = values[month-1].Mul(monthlyReturn)
			cashFlow = e.Projector.ExcessCashFlow(month-1, e.keepCost)
		}

		if month == len(values)-1 {
			portfolioTax = e.Taxes.CapitalGainsTax(portfolioValue, initial,
				e.Assumptions.InvestmentTaxEnabled, e.Assumptions.FilingStatus)
			portfolioValue = portfolioValue.Sub(portfolioTax)
		}

		records[month] = domain.MonthlyRecord{
			Month:           month,
			Year:            month / 12,
			GrossIncome:     e.Projector.MonthlyGrossIncome(month),
			AfterTaxIncome:  e.Projector.MonthlyAfterTaxIncome(month),
			PortfolioValue:  portfolioValue,
			PortfolioGain:   gain,
			PropertyValue:   propertyValue,
			NetRentalIncome: e.Costs.RentalNetIncome(month),
			NewRentCost:     e.Costs.NewRentCost(month),
			NonHousingCost:  e.Projector.NonHousingSpending(month),
			ExcessCashFlow:  cashFlow,
			TotalNetWorth:   portfolioValue.Add(propertyValue),
		}
	}

	return domain.StrategyResult{
		Strategy:                 domain.StrategyRentOut,
		Records:                  records,
		PortfolioCapitalGainsTax: portfolioTax,
	}
}

// NetSaleProceeds returns the cash realized by selling now: sale price less
// selling costs and the property capital gains tax after the exclusion.
func (e *RentOutVsSellEngine) NetSaleProceeds() (proceeds, propertyTax decimal.Decimal) {
	salePrice := e.Sell.CurrentPropertyValue
	sellingCosts := salePrice.Mul(e.Sell.SellingCostPct)
	propertyTax = e.Taxes.PropertySaleTax(salePrice, e.Sell.OriginalPurchasePrice, e.Sell.CapitalGainsExclusion,
		e.Assumptions.InvestmentTaxEnabled, e.Assumptions.FilingStatus)
	return salePrice.Sub(sellingCosts).Sub(propertyTax), propertyTax
}

// SellResult simulates selling now. The net proceeds seed the portfolio at
// month 0 and the strategy then behaves exactly like a renter, paying the
// replacement home's rent each month.
func (e *RentOutVsSellEngine) SellResult() domain.StrategyResult {
	proceeds, propertyTax := e.NetSaleProceeds()
	initial := e.Assumptions.StartingNetWorth.Add(proceeds)

	e.Logger.Debugf("sell: net proceeds=$%s property tax=$%s",
		proceeds.StringFixed(2), propertyTax.StringFixed(2))

	values := e.Projector.Project(initial, e.Costs.NewRentCost)
	monthlyReturn := e.Projector.MonthlyReturnRate()

	var portfolioTax decimal.Decimal
	records := make([]domain.MonthlyRecord, len(values))

	for month := range values {
		portfolioValue := values[month]
		gain := decimal.Zero
		cashFlow := decimal.Zero
		if month > 0 {
			gain = values[month-1].Mul(monthlyReturn)
			cashFlow = e.Projector.ExcessCashFlow(month-1, e.Costs.NewRentCost)
		}

		if month == len(values)-1 {
			portfolioTax = e.Taxes.CapitalGainsTax(portfolioValue, initial,
				e.Assumptions.InvestmentTaxEnabled, e.Assumptions.FilingStatus)
			portfolioValue = portfolioValue.Sub(portfolioTax)
		}

		records[month] = domain.MonthlyRecord{
			Month:          month,
			Year:           month / 12,
			GrossIncome:    e.Projector.MonthlyGrossIncome(month),
			AfterTaxIncome: e.Projector.MonthlyAfterTaxIncome(month),
			PortfolioValue: portfolioValue,
			PortfolioGain:  gain,
			NewRentCost:    e.Costs.NewRentCost(month),
			NonHousingCost: e.Projector.NonHousingSpending(month),
			ExcessCashFlow: cashFlow,
			TotalNetWorth:  portfolioValue,
		}
	}

	return domain.StrategyResult{
		Strategy:                 domain.StrategySell,
		Records:                  records,
		PortfolioCapitalGainsTax: portfolioTax,
		PropertyCapitalGainsTax:  propertyTax,
	}
}

// RunAnalysis runs both strategies once and compares them.
func (e *RentOutVsSellEngine) RunAnalysis() (*domain.AnalysisResult, error) {
	rentOut := e.RentOutResult()
	sell := e.SellResult()
	return Compare(rentOut, sell, e.Assumptions.TimeHorizonYears)
}
