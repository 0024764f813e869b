package output

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"

	"github.com/hcgo/housing-calculator/internal/domain"
	"github.com/shopspring/decimal"
)

// The monthly CSV exporters emit one row per simulated month with fixed
// column sets. All currency values are rounded to two decimal places at
// export time only; the records themselves retain full precision.

// homeownerColumns is the fixed column set of the homeowner export.
var homeownerColumns = []string{
	"month", "year", "networth", "gross_income", "after_tax_income",
	"portfolio_value", "portfolio_gain", "home_equity", "home_valuation",
	"cost_mortgage", "monthly_property_tax", "monthly_maintenance",
	"home_insurance", "hoa_fees", "non_housing_cost",
}

// renterColumns is the fixed column set of the renter export.
var renterColumns = []string{
	"month", "year", "networth", "gross_income", "after_tax_income",
	"portfolio_value", "portfolio_gain", "cost_rent", "cost_insurance",
	"non_housing_cost",
}

func cents(d decimal.Decimal) string {
	return d.StringFixed(2)
}

// HomeownerCSV renders the homeowner strategy's monthly records.
func HomeownerCSV(records []domain.MonthlyRecord) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	if err := w.Write(homeownerColumns); err != nil {
		return nil, err
	}
	for _, r := range records {
		row := []string{
			strconv.Itoa(r.Month),
			strconv.Itoa(r.Year),
			cents(r.TotalNetWorth),
			cents(r.GrossIncome),
			cents(r.AfterTaxIncome),
			cents(r.PortfolioValue),
			cents(r.PortfolioGain),
			cents(r.HomeEquity),
			cents(r.HomeValuation),
			cents(r.CostMortgage),
			cents(r.PropertyTax),
			cents(r.Maintenance),
			cents(r.HomeInsurance),
			cents(r.HOAFees),
			cents(r.NonHousingCost),
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}

// RenterCSV renders the renter strategy's monthly records.
func RenterCSV(records []domain.MonthlyRecord) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	if err := w.Write(renterColumns); err != nil {
		return nil, err
	}
	for _, r := range records {
		row := []string{
			strconv.Itoa(r.Month),
			strconv.Itoa(r.Year),
			cents(r.TotalNetWorth),
			cents(r.GrossIncome),
			cents(r.AfterTaxIncome),
			cents(r.PortfolioValue),
			cents(r.PortfolioGain),
			cents(r.CostRent),
			cents(r.CostInsurance),
			cents(r.NonHousingCost),
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}

// CSVForStrategy picks the column set matching the strategy of a record
// series. Only the buy-vs-rent strategies have a fixed CSV contract; the
// rent-out-vs-sell series export through the JSON formatter.
func CSVForStrategy(result domain.StrategyResult) ([]byte, error) {
	switch result.Strategy {
	case domain.StrategyHomeowner:
		return HomeownerCSV(result.Records)
	case domain.StrategyRenter:
		return RenterCSV(result.Records)
	default:
		return nil, fmt.Errorf("no CSV layout for strategy %q", result.Strategy)
	}
}
