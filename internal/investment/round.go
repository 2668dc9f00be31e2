package investment

import "github.com/shopspring/decimal"

const (
	// MaxYears bounds every horizon given in years: history, holding period and loan tenure
	MaxYears = 50
	// MaxAmount bounds prices and loan principals so projections stay within int64
	MaxAmount = 1e15
)

// binaryExponent is enough digits to carry a float64's binary expansion past any
// rounding position used here
const binaryExponent = -20

// roundTo rounds half to even at the given number of decimals. The float's exact
// binary value is rounded, not its shortest decimal form, so 2.675 rounds to 2.67.
func roundTo(v float64, places int32) float64 {
	return decimal.NewFromFloatWithExponent(v, binaryExponent).RoundBank(places).InexactFloat64()
}

// Round2 rounds a percentage to two decimals
func Round2(v float64) float64 {
	return roundTo(v, 2)
}

func Round1(v float64) float64 {
	return roundTo(v, 1)
}

// truncate drops the fractional currency unit
func truncate(v float64) int64 {
	return decimal.NewFromFloat(v).Truncate(0).IntPart()
}
