package adt

type node[T any] struct {
	value      T
	prev, next *node[T]
}

// List is a doubly linked list. The zero value is an empty list.
type List[T any] struct {
	head, tail *node[T]
	n          int
}

// Len returns the number of elements.
func (l *List[T]) Len() int { return l.n }

// Append adds v at the tail.
func (l *List[T]) Append(v T) {
	nd := &node[T]{value: v, prev: l.tail}
	if l.tail != nil {
		l.tail.next = nd
	} else {
		l.head = nd
	}
	l.tail = nd
	l.n++
}

// Prepend adds v at the head.
func (l *List[T]) Prepend(v T) {
	nd := &node[T]{value: v, next: l.head}
	if l.head != nil {
		l.head.prev = nd
	} else {
		l.tail = nd
	}
	l.head = nd
	l.n++
}

func (l *List[T]) nodeAt(i int) *node[T] {
	if i < 0 || i >= l.n {
		return nil
	}
	if i < l.n/2 {
		nd := l.head
		for ; i > 0; i-- {
			nd = nd.next
		}
		return nd
	}
	nd := l.tail
	for k := l.n - 1; k > i; k-- {
		nd = nd.prev
	}
	return nd
}

// At returns the element at index i.
func (l *List[T]) At(i int) (T, error) {
	nd := l.nodeAt(i)
	if nd == nil {
		var zero T
		return zero, ErrIndex
	}
	return nd.value, nil
}

// Remove unlinks and returns the element at index i.
func (l *List[T]) Remove(i int) (T, error) {
	var zero T
	if l.n == 0 {
		return zero, ErrEmpty
	}
	nd := l.nodeAt(i)
	if nd == nil {
		return zero, ErrIndex
	}
	l.unlink(nd)
	return nd.value, nil
}

func (l *List[T]) unlink(nd *node[T]) {
	if nd.prev != nil {
		nd.prev.next = nd.next
	} else {
		l.head = nd.next
	}
	if nd.next != nil {
		nd.next.prev = nd.prev
	} else {
		l.tail = nd.prev
	}
	nd.prev, nd.next = nil, nil
	l.n--
}

// Each calls fn for every element from head to tail until fn returns false.
func (l *List[T]) Each(fn func(i int, v T) bool) {
	i := 0
	for nd := l.head; nd != nil; nd = nd.next {
		if !fn(i, nd.value) {
			return
		}
		i++
	}
}

// Slice copies the elements into a new slice.
func (l *List[T]) Slice() []T {
	out := make([]T, 0, l.n)
	l.Each(func(_ int, v T) bool {
		out = append(out, v)
		return true
	})
	return out
}

// Clear removes all elements.
func (l *List[T]) Clear() {
	l.head, l.tail, l.n = nil, nil, 0
}
