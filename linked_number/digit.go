package linked_number

// MinBase and MaxBase bound the bases a Number can be converted to. MaxBase
// is the number of available symbols.
const (
	MinBase = 2
	MaxBase = 36
)

const symbols = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// Digit is a single symbol together with its value. Digits are immutable.
type Digit struct {
	value int
}

// NewDigit returns the digit for r. Letters are case-insensitive.
func NewDigit(r rune) (Digit, error) {
	switch {
	case '0' <= r && r <= '9':
		return Digit{value: int(r - '0')}, nil
	case 'A' <= r && r <= 'Z':
		return Digit{value: int(r-'A') + 10}, nil
	case 'a' <= r && r <= 'z':
		return Digit{value: int(r-'a') + 10}, nil
	}
	return Digit{}, newError("NewDigit", KindInvalidSymbol, "%q", r)
}

// DigitOf returns the digit whose value is v.
func DigitOf(v int) (Digit, error) {
	if v < 0 || v >= len(symbols) {
		return Digit{}, newError("DigitOf", KindInvalidSymbol, "value %d", v)
	}
	return Digit{value: v}, nil
}

func (d Digit) Value() int {
	return d.value
}

// Rune returns the canonical (uppercase) symbol of d.
func (d Digit) Rune() rune {
	return rune(symbols[d.value])
}

func (d Digit) String() string {
	return symbols[d.value : d.value+1]
}

// Equal compares digits by value.
func (d Digit) Equal(other Digit) bool {
	return d.value == other.value
}

// validIn reports whether d may appear in a number of the given base.
func (d Digit) validIn(base int) bool {
	return 0 <= d.value && d.value < base
}
