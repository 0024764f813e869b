package calculation

import (
	"fmt"

	"github.com/hcgo/housing-calculator/internal/domain"
	"github.com/shopspring/decimal"
)

// Compare zips two equal-length strategy series into a month-by-month
// comparison and an end-of-horizon summary. It never re-runs a simulation:
// both inputs are the record series an engine already produced. Leader is
// the tie tag when the gap is exactly zero.
func Compare(a, b domain.StrategyResult, horizonYears int) (*domain.AnalysisResult, error) {
	if len(a.Records) != len(b.Records) {
		return nil, fmt.Errorf("strategy series length mismatch: %s has %d records, %s has %d",
			a.Strategy, len(a.Records), b.Strategy, len(b.Records))
	}
	if len(a.Records) == 0 {
		return nil, fmt.Errorf("cannot compare empty strategy series")
	}

	rows := make([]domain.ComparisonRow, len(a.Records))
	for i := range a.Records {
		netA := a.Records[i].TotalNetWorth
		netB := b.Records[i].TotalNetWorth
		gap := netA.Sub(netB)

		leader := domain.LeaderTie
		switch {
		case gap.GreaterThan(decimal.Zero):
			leader = a.Strategy
		case gap.LessThan(decimal.Zero):
			leader = b.Strategy
		}

		rows[i] = domain.ComparisonRow{
			Month:       a.Records[i].Month,
			NetWorthA:   netA,
			NetWorthB:   netB,
			NetWorthGap: gap,
			Leader:      leader,
		}
	}

	finalRow := rows[len(rows)-1]
	finalA := a.FinalRecord()
	finalB := b.FinalRecord()

	equity := finalA.HomeEquity
	if equity.IsZero() {
		equity = finalA.PropertyValue
	}

	summary := domain.AnalysisSummary{
		TimeHorizonYears:    horizonYears,
		FinalNetWorthA:      finalRow.NetWorthA,
		FinalNetWorthB:      finalRow.NetWorthB,
		FinalNetWorthGap:    finalRow.NetWorthGap,
		FinalWinner:         finalRow.Leader,
		PortfolioTaxA:       a.PortfolioCapitalGainsTax,
		PortfolioTaxB:       b.PortfolioCapitalGainsTax,
		PropertyTaxA:        a.PropertyCapitalGainsTax,
		PropertyTaxB:        b.PropertyCapitalGainsTax,
		FinalPortfolioA:     finalA.PortfolioValue,
		FinalPortfolioB:     finalB.PortfolioValue,
		FinalPropertyEquity: equity,
	}

	return &domain.AnalysisResult{
		StrategyA:  a,
		StrategyB:  b,
		Comparison: rows,
		Summary:    summary,
	}, nil
}
