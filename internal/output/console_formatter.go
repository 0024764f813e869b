package output

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/hcgo/housing-calculator/internal/domain"
)

// ConsoleFormatter provides a concise console summary of an analysis via
// the formatter interface.
type ConsoleFormatter struct{}

func (c ConsoleFormatter) Name() string { return "console" }

func (c ConsoleFormatter) Format(result *domain.AnalysisResult) ([]byte, error) {
	var buf bytes.Buffer
	s := result.Summary
	nameA := strategyLabel(result.StrategyA.Strategy)
	nameB := strategyLabel(result.StrategyB.Strategy)

	fmt.Fprintf(&buf, "%s VS %s ANALYSIS\n", strings.ToUpper(nameA), strings.ToUpper(nameB))
	fmt.Fprintln(&buf, "================================")
	fmt.Fprintf(&buf, "Time Horizon:          %d years (%d monthly records)\n",
		s.TimeHorizonYears, len(result.Comparison))
	fmt.Fprintln(&buf)
	fmt.Fprintf(&buf, "Final Winner:          %s\n", strategyLabel(s.FinalWinner))
	fmt.Fprintf(&buf, "%-22s %s\n", nameA+" Net Worth:", FormatCurrency(s.FinalNetWorthA))
	fmt.Fprintf(&buf, "%-22s %s\n", nameB+" Net Worth:", FormatCurrency(s.FinalNetWorthB))
	fmt.Fprintf(&buf, "Net Worth Gap:         %s\n", FormatCurrency(s.FinalNetWorthGap))
	fmt.Fprintln(&buf)
	fmt.Fprintf(&buf, "%s: portfolio=%s equity=%s portfolio tax=%s property tax=%s\n",
		nameA, FormatCurrency(s.FinalPortfolioA), FormatCurrency(s.FinalPropertyEquity),
		FormatCurrency(s.PortfolioTaxA), FormatCurrency(s.PropertyTaxA))
	fmt.Fprintf(&buf, "%s: portfolio=%s portfolio tax=%s property tax=%s\n",
		nameB, FormatCurrency(s.FinalPortfolioB),
		FormatCurrency(s.PortfolioTaxB), FormatCurrency(s.PropertyTaxB))

	if lead := leadChanges(result.Comparison); lead > 0 {
		fmt.Fprintln(&buf)
		fmt.Fprintf(&buf, "Lead changed %d time(s) over the horizon\n", lead)
	}

	return buf.Bytes(), nil
}

func strategyLabel(s domain.Strategy) string {
	switch s {
	case domain.StrategyHomeowner:
		return "Homeowner"
	case domain.StrategyRenter:
		return "Renter"
	case domain.StrategyRentOut:
		return "Rent Out"
	case domain.StrategySell:
		return "Sell"
	case domain.LeaderTie:
		return "Tie"
	}
	return string(s)
}

// leadChanges counts months where the leading strategy differs from the
// previous month's leader, ignoring ties.
func leadChanges(rows []domain.ComparisonRow) int {
	changes := 0
	var last domain.Strategy
	for _, row := range rows {
		if row.Leader == domain.LeaderTie {
			continue
		}
		if last != "" && row.Leader != last {
			changes++
		}
		last = row.Leader
	}
	return changes
}
