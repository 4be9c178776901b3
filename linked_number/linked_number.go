// Package linked_number stores the digits of a number in an arbitrary base
// as a doubly linked list, most-significant digit first.
//
// A Number may hold digits that are out of range for its base; IsValid
// checks this on demand, and Convert refuses invalid numbers.
package linked_number

import (
	"iter"
	"strconv"
	"strings"

	"linked_number/linked_list"
)

type Number struct {
	base   int
	digits *linked_list.List[Digit]
}

// New parses s one symbol at a time into a number of the given base. The
// base is not checked against the digits; see IsValid.
func New(s string, base int) (*Number, error) {
	if s == "" {
		return nil, newError("New", KindInvalidInput, "")
	}
	n := &Number{base: base, digits: linked_list.New[Digit]()}
	for _, r := range s {
		d, err := NewDigit(r)
		if err != nil {
			return nil, err
		}
		n.digits.PushBack(d)
	}
	return n, nil
}

// FromInt returns the decimal digits of i in base 10. Negative values are
// rejected since the sign is not a digit.
func FromInt(i int) (*Number, error) {
	return New(strconv.Itoa(i), 10)
}

func (n *Number) Base() int {
	return n.base
}

// IsValid reports whether every digit is less than the base.
func (n *Number) IsValid() bool {
	for d := range n.All() {
		if !d.validIn(n.base) {
			return false
		}
	}
	return true
}

// DigitCount counts the digits by walking the list.
func (n *Number) DigitCount() int {
	count := 0
	for id := n.digits.Front(); id != linked_list.None; id = n.digits.Next(id) {
		count++
	}
	return count
}

func (n *Number) String() string {
	var b strings.Builder
	for d := range n.All() {
		b.WriteRune(d.Rune())
	}
	return b.String()
}

// Equal reports whether n and other have the same base and the same digits
// in the same order. A nil other is never equal.
func (n *Number) Equal(other *Number) bool {
	if other == nil || n.base != other.base {
		return false
	}
	a, b := n.digits.Front(), other.digits.Front()
	for a != linked_list.None && b != linked_list.None {
		if !n.digits.Get(a).Equal(other.digits.Get(b)) {
			return false
		}
		a, b = n.digits.Next(a), other.digits.Next(b)
	}
	return a == linked_list.None && b == linked_list.None
}

// Clone returns an independent copy of n.
func (n *Number) Clone() *Number {
	return &Number{base: n.base, digits: n.digits.Clone()}
}

// Digits returns a copy of the digits, most-significant first.
func (n *Number) Digits() []Digit {
	return n.digits.Values()
}

// All iterates over the digits from most- to least-significant.
func (n *Number) All() iter.Seq[Digit] {
	return func(yield func(Digit) bool) {
		for id := n.digits.Front(); id != linked_list.None; id = n.digits.Next(id) {
			if !yield(n.digits.Get(id)) {
				return
			}
		}
	}
}

// Backward iterates over the digits from least- to most-significant.
func (n *Number) Backward() iter.Seq[Digit] {
	return func(yield func(Digit) bool) {
		for id := n.digits.Back(); id != linked_list.None; id = n.digits.Prev(id) {
			if !yield(n.digits.Get(id)) {
				return
			}
		}
	}
}

// Node is a read-only cursor on one digit of a Number. The zero Node and
// the Next of the rear node are not Valid.
//
// A Node is invalidated when its digit is removed. Digit, Next and Prev
// panic on an invalid Node.
type Node struct {
	num *Number
	id  linked_list.NodeID
}

func (n *Number) FrontNode() Node {
	return Node{num: n, id: n.digits.Front()}
}

func (n *Number) RearNode() Node {
	return Node{num: n, id: n.digits.Back()}
}

func (c Node) Valid() bool {
	return c.num != nil && c.num.digits.Contains(c.id)
}

func (c Node) Digit() Digit {
	return c.num.digits.Get(c.id)
}

func (c Node) Next() Node {
	return Node{num: c.num, id: c.num.digits.Next(c.id)}
}

func (c Node) Prev() Node {
	return Node{num: c.num, id: c.num.digits.Prev(c.id)}
}
