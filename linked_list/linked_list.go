// Package linked_list is a doubly linked list whose nodes live in an arena.
//
// Links are indices into the arena rather than pointers, so a list never
// forms reference cycles and a NodeID stays stable until its node is
// removed. Removed slots are recycled by later insertions; each slot carries
// a generation so an id from before the removal never names the new node.
package linked_list

import "github.com/goose-lang/std"

// NodeID identifies a node within one List.
type NodeID struct {
	idx int
	gen uint32
}

// None is the id of no node: the Prev of the front and the Next of the back.
var None = NodeID{idx: -1}

type node[T any] struct {
	elem T
	prev NodeID
	next NodeID
	gen  uint32
	live bool
}

// List is a doubly linked list of T. The zero value is an empty list.
type List[T any] struct {
	nodes []node[T]
	free  []int
	front NodeID
	back  NodeID
	size  int
}

func New[T any]() *List[T] {
	return &List[T]{front: None, back: None}
}

// lazyInit makes the zero value usable.
func (l *List[T]) lazyInit() {
	if l.nodes == nil && l.size == 0 {
		l.front = None
		l.back = None
	}
}

func (l *List[T]) Len() int {
	return l.size
}

func (l *List[T]) Front() NodeID {
	if l.size == 0 {
		return None
	}
	return l.front
}

func (l *List[T]) Back() NodeID {
	if l.size == 0 {
		return None
	}
	return l.back
}

// Contains reports whether id names a live node of l.
func (l *List[T]) Contains(id NodeID) bool {
	return id.idx >= 0 && id.idx < len(l.nodes) &&
		l.nodes[id.idx].live && l.nodes[id.idx].gen == id.gen
}

// Get returns the element stored at id.
//
// id must be a live node of l.
func (l *List[T]) Get(id NodeID) T {
	std.Assert(l.Contains(id))
	return l.nodes[id.idx].elem
}

// Next returns the successor of id, or None at the back.
func (l *List[T]) Next(id NodeID) NodeID {
	std.Assert(l.Contains(id))
	return l.nodes[id.idx].next
}

// Prev returns the predecessor of id, or None at the front.
func (l *List[T]) Prev(id NodeID) NodeID {
	std.Assert(l.Contains(id))
	return l.nodes[id.idx].prev
}

func (l *List[T]) alloc(elem T, prev, next NodeID) NodeID {
	n := node[T]{elem: elem, prev: prev, next: next, live: true}
	if k := len(l.free); k > 0 {
		idx := l.free[k-1]
		l.free = l.free[:k-1]
		n.gen = l.nodes[idx].gen
		l.nodes[idx] = n
		return NodeID{idx: idx, gen: n.gen}
	}
	l.nodes = append(l.nodes, n)
	return NodeID{idx: len(l.nodes) - 1}
}

func (l *List[T]) PushFront(elem T) NodeID {
	l.lazyInit()
	id := l.alloc(elem, None, l.front)
	if l.front != None {
		l.nodes[l.front.idx].prev = id
	} else {
		l.back = id
	}
	l.front = id
	l.size++
	return id
}

func (l *List[T]) PushBack(elem T) NodeID {
	l.lazyInit()
	id := l.alloc(elem, l.back, None)
	if l.back != None {
		l.nodes[l.back.idx].next = id
	} else {
		l.front = id
	}
	l.back = id
	l.size++
	return id
}

// InsertBefore inserts elem immediately before mark and returns its id.
func (l *List[T]) InsertBefore(elem T, mark NodeID) NodeID {
	std.Assert(l.Contains(mark))
	prev := l.nodes[mark.idx].prev
	if prev == None {
		return l.PushFront(elem)
	}
	id := l.alloc(elem, prev, mark)
	l.nodes[prev.idx].next = id
	l.nodes[mark.idx].prev = id
	l.size++
	return id
}

// InsertAfter inserts elem immediately after mark and returns its id.
func (l *List[T]) InsertAfter(elem T, mark NodeID) NodeID {
	std.Assert(l.Contains(mark))
	next := l.nodes[mark.idx].next
	if next == None {
		return l.PushBack(elem)
	}
	id := l.alloc(elem, mark, next)
	l.nodes[mark.idx].next = id
	l.nodes[next.idx].prev = id
	l.size++
	return id
}

// Remove unlinks id, repairs its neighbours and returns its element. The id
// must not be used afterwards.
func (l *List[T]) Remove(id NodeID) T {
	std.Assert(l.Contains(id))
	n := l.nodes[id.idx]
	if n.prev != None {
		l.nodes[n.prev.idx].next = n.next
	} else {
		l.front = n.next
	}
	if n.next != None {
		l.nodes[n.next.idx].prev = n.prev
	} else {
		l.back = n.prev
	}
	l.nodes[id.idx] = node[T]{prev: None, next: None, gen: n.gen + 1}
	l.free = append(l.free, id.idx)
	l.size--
	std.Assert((l.size == 0) == (l.front == None && l.back == None))
	return n.elem
}

// At returns the id of the i'th node counting from the front, or None if i
// is out of range.
func (l *List[T]) At(i int) NodeID {
	if i < 0 || i >= l.size {
		return None
	}
	// walk from whichever end is closer
	if i <= l.size/2 {
		id := l.front
		for ; i > 0; i-- {
			id = l.nodes[id.idx].next
		}
		return id
	}
	id := l.back
	for j := l.size - 1; j > i; j-- {
		id = l.nodes[id.idx].prev
	}
	return id
}

// Values returns the elements from front to back.
func (l *List[T]) Values() []T {
	out := make([]T, 0, l.size)
	for id := l.Front(); id != None; id = l.nodes[id.idx].next {
		out = append(out, l.nodes[id.idx].elem)
	}
	std.Assert(len(out) == l.size)
	return out
}

func (l *List[T]) Clear() {
	l.nodes = nil
	l.free = nil
	l.front = None
	l.back = None
	l.size = 0
}

// Clone returns an independent copy of l with the same element order. Node
// ids are not preserved.
func (l *List[T]) Clone() *List[T] {
	c := New[T]()
	for id := l.Front(); id != None; id = l.nodes[id.idx].next {
		c.PushBack(l.nodes[id.idx].elem)
	}
	return c
}
