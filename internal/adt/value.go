// Package adt provides the list, queue and stack containers that edit-box
// windows commit their text into, and the Sink interface that ties them to
// the window engine.
package adt

import (
	"errors"
	"fmt"
)

var (
	// ErrEmpty is returned when removing from an empty container.
	ErrEmpty = errors.New("adt: container is empty")
	// ErrIndex is returned for an index outside the container.
	ErrIndex = errors.New("adt: index out of range")
)

// DataType tags the payload of a Value.
type DataType int

const (
	TypeString DataType = iota
	TypeInt
)

func (t DataType) String() string {
	switch t {
	case TypeString:
		return "string"
	case TypeInt:
		return "int"
	}
	return fmt.Sprintf("DataType(%d)", int(t))
}

// Value is a tagged payload committed by a window.
type Value struct {
	Type DataType
	Data any
}

// StringValue wraps s.
func StringValue(s string) Value {
	return Value{Type: TypeString, Data: s}
}

// IntValue wraps n.
func IntValue(n int) Value {
	return Value{Type: TypeInt, Data: n}
}

// String formats the payload.
func (v Value) String() string {
	return fmt.Sprint(v.Data)
}

// Sink receives committed values.
type Sink interface {
	Put(v Value) error
}

// SinkFunc adapts a function to Sink.
type SinkFunc func(Value) error

// Put calls f.
func (f SinkFunc) Put(v Value) error { return f(v) }

// ListSink appends to a list.
type ListSink struct{ L *List[Value] }

// Put appends v.
func (s ListSink) Put(v Value) error {
	s.L.Append(v)
	return nil
}

// QueueSink enqueues onto a queue.
type QueueSink struct{ Q *Queue[Value] }

// Put enqueues v.
func (s QueueSink) Put(v Value) error {
	s.Q.Enqueue(v)
	return nil
}

// StackSink pushes onto a stack.
type StackSink struct{ S *Stack[Value] }

// Put pushes v.
func (s StackSink) Put(v Value) error {
	s.S.Push(v)
	return nil
}
