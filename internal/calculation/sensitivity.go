package calculation

import (
	"errors"
	"fmt"

	"github.com/hcgo/housing-calculator/internal/domain"
	"github.com/shopspring/decimal"
)

// SweepPoint is the outcome of one re-run of the analysis with a single
// parameter changed.
type SweepPoint struct {
	Value       decimal.Decimal `json:"value"`
	NetWorthGap decimal.Decimal `json:"net_worth_gap"`
	Winner      domain.Strategy `json:"winner"`
}

// SweepResult collects the outcomes of a single-parameter sensitivity
// sweep. Values whose configuration failed construction (for example a
// starting net worth below the required down payment) are counted in
// Skipped rather than aborting the sweep.
type SweepResult struct {
	Parameter string          `json:"parameter"`
	BaseGap   decimal.Decimal `json:"base_net_worth_gap"`
	Points    []SweepPoint    `json:"points"`
	Skipped   int             `json:"skipped"`
}

// MutateFunc applies one candidate parameter value to fresh copies of the
// scenario bundles before a sweep run.
type MutateFunc func(buy *domain.BuyScenario, rent *domain.RentScenario, assumptions *domain.Assumptions, value decimal.Decimal)

// SensitivityAnalyzer re-runs the buy-vs-rent analysis across a range of
// values for one parameter. Each run is an independent pure function of its
// bundles, so sweeps need no shared state beyond the base configuration.
type SensitivityAnalyzer struct {
	Buy         domain.BuyScenario
	Rent        domain.RentScenario
	Assumptions domain.Assumptions
	Logger      Logger
}

// NewSensitivityAnalyzer captures the base configuration by value; sweep
// runs mutate copies, never the caller's bundles.
func NewSensitivityAnalyzer(buy *domain.BuyScenario, rent *domain.RentScenario, assumptions *domain.Assumptions) *SensitivityAnalyzer {
	return &SensitivityAnalyzer{Buy: *buy, Rent: *rent, Assumptions: *assumptions, Logger: NopLogger{}}
}

// baseGap runs the unmodified configuration once for reference.
func (sa *SensitivityAnalyzer) baseGap() (decimal.Decimal, error) {
	engine, err := NewBuyVsRentEngine(&sa.Buy, &sa.Rent, &sa.Assumptions)
	if err != nil {
		return decimal.Zero, err
	}
	result, err := engine.RunAnalysis()
	if err != nil {
		return decimal.Zero, err
	}
	return result.Summary.FinalNetWorthGap, nil
}

// Sweep runs the analysis once per candidate value, applying the mutation
// to copies of the base bundles. Configurations that fail construction are
// skipped.
func (sa *SensitivityAnalyzer) Sweep(parameter string, values []decimal.Decimal, apply MutateFunc) (*SweepResult, error) {
	base, err := sa.baseGap()
	if err != nil {
		return nil, fmt.Errorf("base configuration failed: %w", err)
	}

	result := &SweepResult{Parameter: parameter, BaseGap: base}
	for _, value := range values {
		buy := sa.Buy
		rent := sa.Rent
		assumptions := sa.Assumptions
		apply(&buy, &rent, &assumptions, value)

		engine, err := NewBuyVsRentEngine(&buy, &rent, &assumptions)
		if err != nil {
			sa.Logger.Warnf("sweep %s=%s skipped: %v", parameter, value.String(), err)
			result.Skipped++
			continue
		}
		run, err := engine.RunAnalysis()
		if err != nil {
			return nil, fmt.Errorf("sweep %s=%s failed: %w", parameter, value.String(), err)
		}
		result.Points = append(result.Points, SweepPoint{
			Value:       value,
			NetWorthGap: run.Summary.FinalNetWorthGap,
			Winner:      run.Summary.FinalWinner,
		})
	}

	return result, nil
}

// ErrNoBreakeven reports that the searched range never brings the final
// net-worth gap within tolerance.
var ErrNoBreakeven = errors.New("no breakeven found in search range")

// BreakevenReturnRate binary-searches the investment return rate at which
// the two strategies finish with (approximately) equal net worth. A higher
// return favors the strategy holding the larger liquid portfolio, so the
// final gap is monotonic in the rate over realistic inputs.
func (sa *SensitivityAnalyzer) BreakevenReturnRate() (decimal.Decimal, error) {
	minRate := decimal.NewFromFloat(0.03)
	maxRate := decimal.NewFromFloat(0.15)
	tolerance := decimal.NewFromInt(10000) // within $10k
	const maxIterations = 50

	gapAt := func(rate decimal.Decimal) (decimal.Decimal, error) {
		assumptions := sa.Assumptions
		assumptions.InvestmentReturnRate = rate
		engine, err := NewBuyVsRentEngine(&sa.Buy, &sa.Rent, &assumptions)
		if err != nil {
			return decimal.Zero, err
		}
		result, err := engine.RunAnalysis()
		if err != nil {
			return decimal.Zero, err
		}
		return result.Summary.FinalNetWorthGap, nil
	}

	gapLow, err := gapAt(minRate)
	if err != nil {
		return decimal.Zero, err
	}
	gapHigh, err := gapAt(maxRate)
	if err != nil {
		return decimal.Zero, err
	}
	if gapLow.Sign() == gapHigh.Sign() && gapLow.Abs().GreaterThan(tolerance) && gapHigh.Abs().GreaterThan(tolerance) {
		return decimal.Zero, fmt.Errorf("%w: gap is $%s at %s and $%s at %s", ErrNoBreakeven,
			gapLow.StringFixed(0), minRate.String(), gapHigh.StringFixed(0), maxRate.String())
	}

	for i := 0; i < maxIterations; i++ {
		mid := minRate.Add(maxRate).Div(decimal.NewFromInt(2))
		gap, err := gapAt(mid)
		if err != nil {
			return decimal.Zero, err
		}
		if gap.Abs().LessThan(tolerance) {
			return mid, nil
		}
		// The gap (homeowner minus renter) falls as the return rate rises.
		if gap.GreaterThan(decimal.Zero) {
			minRate = mid
		} else {
			maxRate = mid
		}
		if maxRate.Sub(minRate).LessThan(decimal.NewFromFloat(0.0001)) {
			break
		}
	}

	return minRate.Add(maxRate).Div(decimal.NewFromInt(2)), nil
}
