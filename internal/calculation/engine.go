package calculation

import (
	"errors"
	"fmt"

	"github.com/hcgo/housing-calculator/internal/domain"
	"github.com/shopspring/decimal"
)

// ErrInsufficientNetWorth is the single fatal configuration error of the
// buy-vs-rent engine: the starting net worth cannot cover the required down
// payment. It is raised at construction, before any simulation runs.
var ErrInsufficientNetWorth = errors.New("starting net worth is insufficient for down payment")

// BuyVsRentEngine simulates the homeowner and renter strategies month by
// month over the shared portfolio recurrence and settles taxes at the end
// of the horizon. Engines are cheap to construct and safe to run from
// multiple goroutines externally since every run is a pure function of its
// scenario bundles.
type BuyVsRentEngine struct {
	Buy         *domain.BuyScenario
	Rent        *domain.RentScenario
	Assumptions *domain.Assumptions

	Taxes     *TaxPolicy
	Costs     *CostModel
	Projector *PortfolioProjector
	Logger    Logger
}

// NewBuyVsRentEngine validates affordability and wires the shared
// components. Beyond the down-payment check the parameters are trusted;
// nonsensical rates propagate through the math unrejected.
func NewBuyVsRentEngine(buy *domain.BuyScenario, rent *domain.RentScenario, assumptions *domain.Assumptions) (*BuyVsRentEngine, error) {
	downPayment := buy.DownPayment()
	if assumptions.StartingNetWorth.LessThan(downPayment) {
		return nil, fmt.Errorf("%w: net worth $%s, down payment $%s",
			ErrInsufficientNetWorth,
			assumptions.StartingNetWorth.StringFixed(0), downPayment.StringFixed(0))
	}

	taxes := NewTaxPolicy()
	return &BuyVsRentEngine{
		Buy:         buy,
		Rent:        rent,
		Assumptions: assumptions,
		Taxes:       taxes,
		Costs:       NewCostModel(buy, rent, assumptions.InflationRate),
		Projector:   NewPortfolioProjector(assumptions, taxes),
		Logger:      NopLogger{},
	}, nil
}

// SetLogger sets the logger for the engine. A nil logger restores the
// no-op default.
func (e *BuyVsRentEngine) SetLogger(l Logger) {
	if l == nil {
		e.Logger = NopLogger{}
		return
	}
	e.Logger = l
}

// HomeownerResult simulates the buy strategy. The initial portfolio is the
// starting net worth minus the down payment; the final month nets out
// selling costs and both settlement taxes.
func (e *BuyVsRentEngine) HomeownerResult() domain.StrategyResult {
	principal := e.Buy.LoanPrincipal()
	horizon := e.Assumptions.HorizonMonths()
	schedule := AmortizationSchedule(principal, e.Buy.MortgageRate, e.Buy.AmortizationYears, horizon)

	initial := e.Assumptions.StartingNetWorth.Sub(e.Buy.DownPayment())
	values := e.Projector.Project(initial, e.Costs.OwnershipCost)
	monthlyReturn := e.Projector.MonthlyReturnRate()

	e.Logger.Debugf("homeowner: principal=$%s payment=$%s schedule=%d months",
		principal.StringFixed(2), e.Costs.MortgagePayment().StringFixed(2), len(schedule))

	var portfolioTax, homeTax decimal.Decimal
	records := make([]domain.MonthlyRecord, len(values))

	for month := range values {
		homeValue := e.Costs.HomeValue(month)
		balance := RemainingBalance(schedule, principal, month)
		equity := homeValue.Sub(balance)
		breakdown := e.Costs.OwnershipCostBreakdown(month)

		portfolioValue := values[month]
		gain := decimal.Zero
		cashFlow := decimal.Zero
		if month > 0 {
			gain = values[month-1].Mul(monthlyReturn)
			cashFlow = e.Projector.ExcessCashFlow(month-1, e.Costs.OwnershipCost)
		}

		if month == len(values)-1 {
			sellingCosts := homeValue.Mul(e.Buy.SellingCostPct)
			homeTax = e.Taxes.PropertySaleTax(homeValue, e.Buy.PurchasePrice, e.Buy.PrimaryHomeExclusionDollars,
				e.Assumptions.InvestmentTaxEnabled, e.Assumptions.FilingStatus)
			equity = homeValue.Sub(balance).Sub(sellingCosts).Sub(homeTax)

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
			HomeEquity:     equity,
			HomeValuation:  homeValue,
			CostMortgage:   breakdown.Mortgage,
			PropertyTax:    breakdown.PropertyTax,
			Maintenance:    breakdown.Maintenance,
			HomeInsurance:  breakdown.Insurance,
			HOAFees:        breakdown.HOA,
			NonHousingCost: e.Projector.NonHousingSpending(month),
			ExcessCashFlow: cashFlow,
			TotalNetWorth:  portfolioValue.Add(equity),
		}
	}

	return domain.StrategyResult{
		Strategy:                 domain.StrategyHomeowner,
		Records:                  records,
		PortfolioCapitalGainsTax: portfolioTax,
		PropertyCapitalGainsTax:  homeTax,
	}
}

// RenterResult simulates the rent strategy. The full starting net worth is
// invested; the final month settles the portfolio capital gains tax. The
// property tax figure is always zero for the renter.
func (e *BuyVsRentEngine) RenterResult() domain.StrategyResult {
	initial := e.Assumptions.StartingNetWorth
	values := e.Projector.Project(initial, e.Costs.RentCost)
	monthlyReturn := e.Projector.MonthlyReturnRate()

	var portfolioTax decimal.Decimal
	records := make([]domain.MonthlyRecord, len(values))

	for month := range values {
		breakdown := e.Costs.RentCostBreakdown(month)

		portfolioValue := values[month]
		gain := decimal.Zero
		cashFlow := decimal.Zero
		if month > 0 {
			gain = values[month-1].Mul(monthlyReturn)
			cashFlow = e.Projector.ExcessCashFlow(month-1, e.Costs.RentCost)
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
			CostRent:       breakdown.Rent,
			CostInsurance:  breakdown.Insurance,
			NonHousingCost: e.Projector.NonHousingSpending(month),
			ExcessCashFlow: cashFlow,
			TotalNetWorth:  portfolioValue,
		}
	}

	return domain.StrategyResult{
		Strategy:                 domain.StrategyRenter,
		Records:                  records,
		PortfolioCapitalGainsTax: portfolioTax,
	}
}

// RunAnalysis runs both strategies once and compares them. The returned
// result carries the full record series, so export layers reuse this single
// simulation pass instead of re-running the engine.
func (e *BuyVsRentEngine) RunAnalysis() (*domain.AnalysisResult, error) {
	homeowner := e.HomeownerResult()
	renter := e.RenterResult()
	return Compare(homeowner, renter, e.Assumptions.TimeHorizonYears)
}
