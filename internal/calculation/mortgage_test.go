package calculation

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFixedMonthlyPaymentZeroRate(t *testing.T) {
	// 360000 over 30 years at 0% is exactly 1000/month.
	payment := FixedMonthlyPayment(decimal.NewFromInt(360000), decimal.Zero, 30)
	assert.True(t, payment.Equal(decimal.NewFromInt(1000)),
		"expected 1000, got %s", payment)
}

func TestFixedMonthlyPayment(t *testing.T) {
	// 560000 at 6.5% over 30 years: the annuity formula gives ~3539.68.
	payment := FixedMonthlyPayment(decimal.NewFromInt(560000), decimal.NewFromFloat(0.065), 30)
	assert.InDelta(t, 3539.68, payment.InexactFloat64(), 1.0)
}

func TestAmortizationScheduleNonIncreasing(t *testing.T) {
	principal := decimal.NewFromInt(560000)
	schedule := AmortizationSchedule(principal, decimal.NewFromFloat(0.065), 30, 120)

	require.Len(t, schedule, 120)
	prev := principal
	for i, balance := range schedule {
		assert.True(t, balance.GreaterThanOrEqual(decimal.Zero),
			"month %d: balance went negative: %s", i+1, balance)
		assert.True(t, balance.LessThan(prev),
			"month %d: balance did not decrease (%s >= %s)", i+1, balance, prev)
		prev = balance
	}
}

// TestAmortizationScheduleReachesZero verifies the loan is fully paid by the
// end of its term and the schedule stops there.
func TestAmortizationScheduleReachesZero(t *testing.T) {
	schedule := AmortizationSchedule(decimal.NewFromInt(560000), decimal.NewFromFloat(0.065), 30, 420)

	require.NotEmpty(t, schedule)
	// Division precision can leave a sub-cent residual for one extra month.
	assert.LessOrEqual(t, len(schedule), 361, "schedule should stop at the loan term")
	final := schedule[len(schedule)-1]
	assert.True(t, final.IsZero(), "final balance should be zero, got %s", final)
}

func TestAmortizationScheduleZeroRate(t *testing.T) {
	// 1200 over 10 years at 0%: exactly 10/month of principal.
	schedule := AmortizationSchedule(decimal.NewFromInt(1200), decimal.Zero, 10, 24)

	require.Len(t, schedule, 24)
	assert.True(t, schedule[0].Equal(decimal.NewFromInt(1190)), "got %s", schedule[0])
	assert.True(t, schedule[11].Equal(decimal.NewFromInt(1080)), "got %s", schedule[11])
	assert.True(t, schedule[23].Equal(decimal.NewFromInt(960)), "got %s", schedule[23])
}

func TestRemainingBalance(t *testing.T) {
	principal := decimal.NewFromInt(560000)
	schedule := AmortizationSchedule(principal, decimal.NewFromFloat(0.065), 30, 360)

	// Month 0 is the untouched principal.
	assert.True(t, RemainingBalance(schedule, principal, 0).Equal(principal))

	// Month m reads the balance after the m-th payment.
	assert.True(t, RemainingBalance(schedule, principal, 1).Equal(schedule[0]))
	assert.True(t, RemainingBalance(schedule, principal, 360).Equal(schedule[len(schedule)-1]))

	// Months past the end of the schedule are fully paid off.
	assert.True(t, RemainingBalance(schedule, principal, 720).IsZero())
}
