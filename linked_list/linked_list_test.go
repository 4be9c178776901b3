package linked_list_test

import (
	"linked_number/linked_list"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"pgregory.net/rapid"
)

// backward collects the elements of l from back to front.
func backward[T any](l *linked_list.List[T]) []T {
	var out []T
	for id := l.Back(); id != linked_list.None; id = l.Prev(id) {
		out = append(out, l.Get(id))
	}
	return out
}

func TestListPushOnly(t *testing.T) {
	assert := assert.New(t)

	l := linked_list.New[uint64]()
	assert.Equal(0, l.Len())
	assert.Equal(linked_list.None, l.Front())
	assert.Equal(linked_list.None, l.Back())

	l.PushBack(2)
	l.PushFront(1)
	l.PushBack(3)

	assert.Equal([]uint64{1, 2, 3}, l.Values())
	assert.Equal([]uint64{3, 2, 1}, backward(l))
	assert.Equal(uint64(1), l.Get(l.Front()))
	assert.Equal(uint64(3), l.Get(l.Back()))
}

func TestListZeroValue(t *testing.T) {
	assert := assert.New(t)

	var l linked_list.List[string]
	assert.Equal(linked_list.None, l.Front())
	l.PushBack("b")
	l.PushFront("a")
	assert.Equal([]string{"a", "b"}, l.Values())
}

func TestListInsert(t *testing.T) {
	assert := assert.New(t)

	l := linked_list.New[uint64]()
	two := l.PushBack(2)
	four := l.PushBack(4)
	l.InsertBefore(1, two)
	l.InsertAfter(3, two)
	l.InsertAfter(5, four)

	assert.Equal([]uint64{1, 2, 3, 4, 5}, l.Values())
	assert.Equal([]uint64{5, 4, 3, 2, 1}, backward(l))
	assert.Equal(5, l.Len())
}

func TestListRemove(t *testing.T) {
	assert := assert.New(t)

	l := linked_list.New[uint64]()
	one := l.PushBack(1)
	two := l.PushBack(2)
	three := l.PushBack(3)

	assert.Equal(uint64(2), l.Remove(two))
	assert.False(l.Contains(two))
	assert.Equal([]uint64{1, 3}, l.Values())
	assert.Equal(three, l.Next(one))
	assert.Equal(one, l.Prev(three))

	// the slot is reused, but the old id still names nothing
	again := l.PushFront(0)
	assert.NotEqual(two, again)
	assert.False(l.Contains(two))
	assert.True(l.Contains(again))
	assert.Equal([]uint64{0, 1, 3}, l.Values())

	l.Remove(one)
	l.Remove(three)
	l.Remove(again)
	assert.Equal(0, l.Len())
	assert.Equal(linked_list.None, l.Front())
	assert.Equal(linked_list.None, l.Back())
}

func TestListAt(t *testing.T) {
	assert := assert.New(t)

	l := linked_list.New[int]()
	for i := range 7 {
		l.PushBack(i * 10)
	}
	for i := range 7 {
		assert.Equal(i*10, l.Get(l.At(i)), "At(%d)", i)
	}
	assert.Equal(linked_list.None, l.At(-1))
	assert.Equal(linked_list.None, l.At(7))
}

func TestListClone(t *testing.T) {
	assert := assert.New(t)

	l1 := linked_list.New[uint64]()
	l1.PushBack(1)
	l1.PushBack(2)

	l2 := l1.Clone()
	l2.PushBack(3)
	l1.Remove(l1.Front())

	assert.Equal([]uint64{2}, l1.Values())
	assert.Equal([]uint64{1, 2, 3}, l2.Values())

	l2.Clear()
	assert.Equal(0, l2.Len())
	assert.Empty(l2.Values())
}

// TestListModel checks random operation sequences against a slice.
func TestListModel(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		l := linked_list.New[int]()
		var model []int

		steps := rapid.IntRange(1, 60).Draw(t, "steps")
		for range steps {
			v := rapid.IntRange(0, 99).Draw(t, "v")
			switch op := rapid.IntRange(0, 3).Draw(t, "op"); {
			case op == 0:
				l.PushFront(v)
				model = slices.Insert(model, 0, v)
			case op == 1:
				l.PushBack(v)
				model = append(model, v)
			case op == 2 && len(model) > 0:
				i := rapid.IntRange(0, len(model)-1).Draw(t, "insert")
				l.InsertBefore(v, l.At(i))
				model = slices.Insert(model, i, v)
			case op == 3 && len(model) > 0:
				i := rapid.IntRange(0, len(model)-1).Draw(t, "remove")
				got := l.Remove(l.At(i))
				if got != model[i] {
					t.Fatalf("Remove(At(%d)) = %d, want %d", i, got, model[i])
				}
				model = slices.Delete(model, i, i+1)
			}

			if l.Len() != len(model) {
				t.Fatalf("Len() = %d, want %d", l.Len(), len(model))
			}
			got := l.Values()
			if !slices.Equal(got, model) {
				t.Fatalf("Values() = %v, want %v", got, model)
			}
			rev := backward(l)
			slices.Reverse(rev)
			if !slices.Equal(rev, got) {
				t.Fatalf("backward traversal %v disagrees with forward %v", rev, got)
			}
		}
	})
}

func TestListStaleIDAfterReuse(t *testing.T) {
	assert := assert.New(t)

	l := linked_list.New[string]()
	ids := []linked_list.NodeID{l.PushBack("a"), l.PushBack("b"), l.PushBack("c")}

	for round := range 3 {
		l.Remove(ids[2])
		fresh := l.PushBack("c")
		assert.False(l.Contains(ids[2]), "round %d", round)
		assert.True(l.Contains(fresh))
		ids[2] = fresh
	}
	assert.Equal([]string{"a", "b", "c"}, l.Values())
}
