package linked_number

// Positions for AddDigit and RemoveDigit count from the most-significant
// end: position 0 is the front digit.

// AddDigit inserts d so that it becomes the digit at position. Valid
// positions are 0 through DigitCount() inclusive; DigitCount() appends.
func (n *Number) AddDigit(d Digit, position int) error {
	count := n.DigitCount()
	if position < 0 || position > count {
		return newError("AddDigit", KindOutOfRange, "position %d of %d digits", position, count)
	}
	switch position {
	case 0:
		n.digits.PushFront(d)
	case count:
		n.digits.PushBack(d)
	default:
		n.digits.InsertBefore(d, n.digits.At(position))
	}
	return nil
}

// RemoveDigit removes the digit at position and returns its place value,
// digit*base^p where p counts from the least-significant end. Nothing is
// removed if an error is returned.
//
// The last remaining digit cannot be removed, and the base must be at least
// MinBase. Digits are not checked against the base, so an invalid number
// still reports digit*base^p for the removed digit.
func (n *Number) RemoveDigit(position int) (uint64, error) {
	count := n.DigitCount()
	if position < 0 || position >= count {
		return 0, newError("RemoveDigit", KindOutOfRange, "position %d of %d digits", position, count)
	}
	if count == 1 {
		return 0, newError("RemoveDigit", KindInvalidInput, "cannot remove the only digit")
	}
	if n.base < MinBase {
		return 0, newError("RemoveDigit", KindInvalidBase, "%d", n.base)
	}

	id := n.digits.At(position)
	value, err := placeValue(n.digits.Get(id), n.base, count-1-position)
	if err != nil {
		return 0, err
	}
	n.digits.Remove(id)
	return value, nil
}

func placeValue(d Digit, base int, exp int) (uint64, error) {
	if d.Value() == 0 {
		return 0, nil
	}
	place, ok := pow(base, exp)
	if ok {
		var value uint64
		if value, ok = mulNoOverflow(uint64(d.Value()), place); ok {
			return value, nil
		}
	}
	return 0, newError("RemoveDigit", KindOverflow, "%s*%d^%d", d, base, exp)
}
