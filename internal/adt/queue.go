package adt

// Queue is a FIFO built on List.
type Queue[T any] struct {
	l List[T]
}

// Len returns the number of queued elements.
func (q *Queue[T]) Len() int { return q.l.Len() }

// Enqueue adds v at the back.
func (q *Queue[T]) Enqueue(v T) { q.l.Append(v) }

// Dequeue removes the front element.
func (q *Queue[T]) Dequeue() (T, error) { return q.l.Remove(0) }

// Peek returns the front element without removing it.
func (q *Queue[T]) Peek() (T, error) {
	if q.l.Len() == 0 {
		var zero T
		return zero, ErrEmpty
	}
	return q.l.At(0)
}

// Stack is a LIFO built on List.
type Stack[T any] struct {
	l List[T]
}

// Len returns the number of stacked elements.
func (s *Stack[T]) Len() int { return s.l.Len() }

// Push adds v on top.
func (s *Stack[T]) Push(v T) { s.l.Prepend(v) }

// Pop removes the top element.
func (s *Stack[T]) Pop() (T, error) { return s.l.Remove(0) }

// Peek returns the top element without removing it.
func (s *Stack[T]) Peek() (T, error) {
	if s.l.Len() == 0 {
		var zero T
		return zero, ErrEmpty
	}
	return s.l.At(0)
}
