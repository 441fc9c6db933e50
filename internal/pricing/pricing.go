// Package pricing computes reservation prices. All arithmetic is in
// integer cents with explicit round-half-up, so repeated calls over the
// same inputs always produce the same result.
package pricing

import (
	"fmt"
	"time"
)

// Cents is a fixed-point currency amount.
type Cents int64

// String renders the amount with two decimal places, e.g. 1350 -> "13.50".
func (c Cents) String() string {
	v := int64(c)
	sign := ""
	if v < 0 {
		sign = "-"
		v = -v
	}
	return fmt.Sprintf("%s%d.%02d", sign, v/100, v%100)
}

// Multiplier is a fixed rational price multiplier. Using a rational
// instead of a float keeps the computation exact until the final
// rounding step.
type Multiplier struct {
	num, den int64
}

var (
	// Flat leaves the base price unchanged.
	Flat = Multiplier{1, 1}
	// OneAndHalf scales the base price by 1.5.
	OneAndHalf = Multiplier{3, 2}
)

// Calculate prices an interval at the given per-minute rate. Fractional
// minutes truncate (integer-minute billing); the multiplied total is
// rounded half-up to whole cents.
func Calculate(start, end time.Time, ratePerMinute Cents, m Multiplier) Cents {
	minutes := int64(end.Sub(start) / time.Minute)
	if minutes < 0 {
		minutes = 0
	}
	base := minutes * int64(ratePerMinute)
	return Cents((base*m.num + m.den/2) / m.den)
}
