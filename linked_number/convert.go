package linked_number

import (
	"math/big"
	"math/bits"
	"strings"

	"github.com/goose-lang/std"
)

// Convert returns a new Number with the same value written in newBase. The
// receiver is not modified. Zero converts to the single digit "0".
func (n *Number) Convert(newBase int) (*Number, error) {
	if !n.IsValid() {
		return nil, newError("Convert", KindInvalidNumber, "%s in base %d", n, n.base)
	}
	if newBase < MinBase || newBase > MaxBase {
		return nil, newError("Convert", KindInvalidBase, "%d", newBase)
	}
	return New(formatBase(n.bigValue(), newBase), newBase)
}

// bigValue sums digit*base^position from the rear.
func (n *Number) bigValue() *big.Int {
	var value, place, term, d big.Int
	radix := big.NewInt(int64(n.base))
	place.SetInt64(1)
	for digit := range n.Backward() {
		d.SetInt64(int64(digit.Value()))
		term.Mul(&d, &place)
		value.Add(&value, &term)
		place.Mul(&place, radix)
	}
	return &value
}

// formatBase writes v in base by repeated division, least-significant digit
// first, then reverses.
func formatBase(v *big.Int, base int) string {
	if v.Sign() == 0 {
		return "0"
	}
	var x, mod big.Int
	x.Set(v)
	radix := big.NewInt(int64(base))
	var rev []byte
	for x.Sign() > 0 {
		x.DivMod(&x, radix, &mod)
		rev = append(rev, symbols[mod.Int64()])
	}
	var b strings.Builder
	b.Grow(len(rev))
	for i := len(rev) - 1; i >= 0; i-- {
		b.WriteByte(rev[i])
	}
	return b.String()
}

// Value returns the value of n if it fits in a uint64.
func (n *Number) Value() (uint64, error) {
	if !n.IsValid() {
		return 0, newError("Value", KindInvalidNumber, "%s in base %d", n, n.base)
	}
	var value uint64
	place, placeOverflow := uint64(1), false
	for digit := range n.Backward() {
		if digit.Value() != 0 {
			if placeOverflow {
				return 0, newError("Value", KindOverflow, "%s in base %d", n, n.base)
			}
			term, ok := mulNoOverflow(uint64(digit.Value()), place)
			if !ok || !std.SumNoOverflow(value, term) {
				return 0, newError("Value", KindOverflow, "%s in base %d", n, n.base)
			}
			value += term
		}
		// leading zeros are fine even once place has overflowed
		if !placeOverflow {
			place, placeOverflow = nextPlace(place, n.base)
		}
	}
	return value, nil
}

func nextPlace(place uint64, base int) (uint64, bool) {
	next, ok := mulNoOverflow(place, uint64(base))
	return next, !ok
}

func mulNoOverflow(x, y uint64) (uint64, bool) {
	hi, lo := bits.Mul64(x, y)
	return lo, hi == 0
}

// pow returns base^exp, or false if it does not fit in a uint64.
func pow(base int, exp int) (uint64, bool) {
	result := uint64(1)
	for range exp {
		var ok bool
		result, ok = mulNoOverflow(result, uint64(base))
		if !ok {
			return 0, false
		}
	}
	return result, true
}
