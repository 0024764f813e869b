package calculation

import (
	"github.com/shopspring/decimal"
)

var twelve = decimal.NewFromInt(12)

// FixedMonthlyPayment returns the level payment of a fixed-rate loan using
// the standard annuity formula payment = r*P / (1 - (1+r)^-n). A zero
// monthly rate degrades to straight-line principal / n, which the annuity
// formula cannot express.
func FixedMonthlyPayment(principal, annualRate decimal.Decimal, termYears int) decimal.Decimal {
	numPayments := decimal.NewFromInt(int64(termYears) * 12)
	monthlyRate := annualRate.Div(twelve)
	if monthlyRate.IsZero() {
		return principal.Div(numPayments)
	}
	one := decimal.NewFromInt(1)
	growth := one.Add(monthlyRate).Pow(numPayments) // (1+r)^n
	return principal.Mul(monthlyRate).Mul(growth).Div(growth.Sub(one))
}

// AmortizationSchedule returns the remaining balance after each monthly
// payment, clamped at zero. The schedule stops once the balance reaches
// zero, so it can be shorter than horizonMonths; callers treat months past
// the end as fully paid off. Balances are non-increasing for any valid
// input.
func AmortizationSchedule(principal, annualRate decimal.Decimal, termYears, horizonMonths int) []decimal.Decimal {
	payment := FixedMonthlyPayment(principal, annualRate, termYears)
	monthlyRate := annualRate.Div(twelve)

	balances := make([]decimal.Decimal, 0, horizonMonths)
	remaining := principal

	for month := 0; month < horizonMonths; month++ {
		interest := remaining.Mul(monthlyRate)
		principalPaid := payment.Sub(interest)
		remaining = remaining.Sub(principalPaid)

		recorded := remaining
		if recorded.LessThan(decimal.Zero) {
			recorded = decimal.Zero
		}
		balances = append(balances, recorded)

		if remaining.LessThanOrEqual(decimal.Zero) {
			break
		}
	}

	return balances
}

// RemainingBalance reads a precomputed schedule for a given month index.
// Month 0 is the full principal (no payment made yet); months past the end
// of the schedule are zero.
func RemainingBalance(schedule []decimal.Decimal, principal decimal.Decimal, month int) decimal.Decimal {
	if month == 0 {
		return principal
	}
	if month-1 < len(schedule) {
		return schedule[month-1]
	}
	return decimal.Zero
}
