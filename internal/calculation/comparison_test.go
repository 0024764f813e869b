package calculation

import (
	"testing"

	"github.com/hcgo/housing-calculator/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seriesOf(strategy domain.Strategy, worths ...int64) domain.StrategyResult {
	records := make([]domain.MonthlyRecord, len(worths))
	for i, w := range worths {
		records[i] = domain.MonthlyRecord{
			Month:         i,
			TotalNetWorth: decimal.NewFromInt(w),
		}
	}
	return domain.StrategyResult{Strategy: strategy, Records: records}
}

func TestCompare(t *testing.T) {
	a := seriesOf(domain.StrategyHomeowner, 100, 150, 300)
	b := seriesOf(domain.StrategyRenter, 100, 200, 250)

	result, err := Compare(a, b, 1)
	require.NoError(t, err)
	require.Len(t, result.Comparison, 3)

	// Month 0 is an exact tie.
	assert.Equal(t, domain.LeaderTie, result.Comparison[0].Leader)
	assert.True(t, result.Comparison[0].NetWorthGap.IsZero())

	// The renter leads at month 1, the homeowner by the end.
	assert.Equal(t, domain.StrategyRenter, result.Comparison[1].Leader)
	assert.True(t, result.Comparison[1].NetWorthGap.Equal(decimal.NewFromInt(-50)))
	assert.Equal(t, domain.StrategyHomeowner, result.Comparison[2].Leader)
	assert.True(t, result.Comparison[2].NetWorthGap.Equal(decimal.NewFromInt(50)))

	assert.Equal(t, domain.StrategyHomeowner, result.Summary.FinalWinner)
	assert.True(t, result.Summary.FinalNetWorthGap.Equal(decimal.NewFromInt(50)))
	assert.True(t, result.Summary.FinalNetWorthA.Equal(decimal.NewFromInt(300)))
	assert.True(t, result.Summary.FinalNetWorthB.Equal(decimal.NewFromInt(250)))
	assert.Equal(t, 1, result.Summary.TimeHorizonYears)
}

func TestCompareFinalTie(t *testing.T) {
	a := seriesOf(domain.StrategyHomeowner, 100, 500)
	b := seriesOf(domain.StrategyRenter, 100, 500)

	result, err := Compare(a, b, 1)
	require.NoError(t, err)
	assert.Equal(t, domain.LeaderTie, result.Summary.FinalWinner)
	assert.True(t, result.Summary.FinalNetWorthGap.IsZero())
}

func TestCompareLengthMismatch(t *testing.T) {
	a := seriesOf(domain.StrategyHomeowner, 100, 150)
	b := seriesOf(domain.StrategyRenter, 100, 150, 200)

	_, err := Compare(a, b, 1)
	assert.Error(t, err)
}

func TestCompareEmptySeries(t *testing.T) {
	a := seriesOf(domain.StrategyHomeowner)
	b := seriesOf(domain.StrategyRenter)

	_, err := Compare(a, b, 1)
	assert.Error(t, err)
}

// TestComparePropertyEquityFallback checks the summary reports the kept
// property's value when the final record carries no home equity.
func TestComparePropertyEquityFallback(t *testing.T) {
	a := seriesOf(domain.StrategyRentOut, 100, 900)
	a.Records[1].PropertyValue = decimal.NewFromInt(800)
	b := seriesOf(domain.StrategySell, 100, 850)

	result, err := Compare(a, b, 1)
	require.NoError(t, err)
	assert.True(t, result.Summary.FinalPropertyEquity.Equal(decimal.NewFromInt(800)))
}
