package pricing

// Money represents a monetary value stored in minor units.
type Money = int64

// divRoundHalfUp divides num by den rounding half-up to the nearest integer.
// Negative numerators round half-away-from-zero so a +X% and -X% adjustment
// on the same base cancel exactly.
func divRoundHalfUp(num Money, den int64) Money {
	if den <= 0 {
		return 0
	}
	neg := num < 0
	if neg {
		num = -num
	}
	q := (num + den/2) / den
	if neg {
		return -q
	}
	return q
}
