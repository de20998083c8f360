package adt

import (
	"errors"
	"testing"
)

func TestListAppendPrependRemove(t *testing.T) {
	var l List[int]
	l.Append(2)
	l.Append(3)
	l.Prepend(1)

	if got := l.Slice(); len(got) != 3 || got[0] != 1 || got[1] != 2 || got[2] != 3 {
		t.Fatalf("Slice() = %v, expected [1 2 3]", got)
	}

	v, err := l.Remove(1)
	if err != nil || v != 2 {
		t.Errorf("Remove(1) = %d, %v", v, err)
	}
	v, err = l.Remove(1)
	if err != nil || v != 3 {
		t.Errorf("Remove(1) = %d, %v", v, err)
	}
	if _, err := l.Remove(5); !errors.Is(err, ErrIndex) {
		t.Errorf("Remove(5) error = %v, expected ErrIndex", err)
	}
	if _, err := l.Remove(0); err != nil {
		t.Errorf("Remove(0) error = %v", err)
	}
	if _, err := l.Remove(0); !errors.Is(err, ErrEmpty) {
		t.Errorf("Remove on empty error = %v, expected ErrEmpty", err)
	}

	l.Append(9)
	if v, _ := l.At(0); v != 9 || l.Len() != 1 {
		t.Error("list should be reusable after emptying")
	}
}

func TestListAtFromTail(t *testing.T) {
	var l List[string]
	for _, s := range []string{"a", "b", "c", "d", "e"} {
		l.Append(s)
	}
	for i, want := range []string{"a", "b", "c", "d", "e"} {
		if got, err := l.At(i); err != nil || got != want {
			t.Errorf("At(%d) = %q, %v", i, got, err)
		}
	}
}

func TestQueueFIFO(t *testing.T) {
	var q Queue[int]
	for i := 1; i <= 3; i++ {
		q.Enqueue(i)
	}
	if p, _ := q.Peek(); p != 1 {
		t.Errorf("Peek() = %d, expected 1", p)
	}
	for want := 1; want <= 3; want++ {
		got, err := q.Dequeue()
		if err != nil || got != want {
			t.Errorf("Dequeue() = %d, %v; expected %d", got, err, want)
		}
	}
	if _, err := q.Dequeue(); !errors.Is(err, ErrEmpty) {
		t.Errorf("Dequeue on empty error = %v", err)
	}
}

func TestStackLIFO(t *testing.T) {
	var s Stack[int]
	for i := 1; i <= 3; i++ {
		s.Push(i)
	}
	for want := 3; want >= 1; want-- {
		got, err := s.Pop()
		if err != nil || got != want {
			t.Errorf("Pop() = %d, %v; expected %d", got, err, want)
		}
	}
	if _, err := s.Peek(); !errors.Is(err, ErrEmpty) {
		t.Errorf("Peek on empty error = %v", err)
	}
}

func TestSinks(t *testing.T) {
	var l List[Value]
	var q Queue[Value]
	var s Stack[Value]

	sinks := []struct {
		name string
		sink Sink
		len  func() int
	}{
		{"list", ListSink{L: &l}, l.Len},
		{"queue", QueueSink{Q: &q}, q.Len},
		{"stack", StackSink{S: &s}, s.Len},
	}

	for _, tc := range sinks {
		t.Run(tc.name, func(t *testing.T) {
			if err := tc.sink.Put(StringValue("hello")); err != nil {
				t.Fatalf("Put() error: %v", err)
			}
			if err := tc.sink.Put(IntValue(42)); err != nil {
				t.Fatalf("Put() error: %v", err)
			}
			if tc.len() != 2 {
				t.Errorf("len = %d, expected 2", tc.len())
			}
		})
	}

	top, _ := s.Peek()
	if top.Type != TypeInt || top.Data.(int) != 42 {
		t.Errorf("stack top = %+v, expected int 42", top)
	}
	front, _ := q.Peek()
	if front.Type != TypeString || front.String() != "hello" {
		t.Errorf("queue front = %+v, expected string hello", front)
	}
}
