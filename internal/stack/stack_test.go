package stack

import (
	"testing"
)

func TestStack_ZeroValue(t *testing.T) {
	var s Stack[int]

	if s.Size() != 0 {
		t.Errorf("zero Stack size = %d, want 0", s.Size())
	}

	s.Push(1)
	if s.Size() != 1 {
		t.Errorf("Push() on zero Stack size = %d, want 1", s.Size())
	}
}

func TestStack_NewWithCapacity(t *testing.T) {
	s := NewWithCapacity[string](10)

	if s.Size() != 0 {
		t.Errorf("NewWithCapacity() stack size = %d, want 0", s.Size())
	}
	if cap(s.items) != 10 {
		t.Errorf("NewWithCapacity() capacity = %d, want 10", cap(s.items))
	}
}

func TestStack_PushAndPop(t *testing.T) {
	s := NewWithCapacity[int](2)

	s.Push(1)
	s.Push(2)
	s.Push(3)

	if s.Size() != 3 {
		t.Errorf("Push() stack size = %d, want 3", s.Size())
	}

	// LIFO order
	for _, want := range []int{3, 2, 1} {
		val, ok := s.Pop()
		if !ok || val != want {
			t.Errorf("Pop() = %d, %t, want %d, true", val, ok, want)
		}
	}

	val, ok := s.Pop()
	if ok || val != 0 {
		t.Errorf("Pop() from empty stack = %d, %t, want 0, false", val, ok)
	}

	if s.Size() != 0 {
		t.Error("Pop() stack should be empty after popping all elements")
	}
}

func TestStack_Peek(t *testing.T) {
	var s Stack[string]

	val, ok := s.Peek()
	if ok || val != "" {
		t.Errorf("Peek() on empty stack = %q, %t, want \"\", false", val, ok)
	}

	s.Push("first")
	s.Push("second")

	val, ok = s.Peek()
	if !ok || val != "second" {
		t.Errorf("Peek() = %q, %t, want \"second\", true", val, ok)
	}

	// Ensure peek doesn't modify stack
	if s.Size() != 2 {
		t.Errorf("Peek() changed stack size to %d, want 2", s.Size())
	}
}

func TestStack_Reset(t *testing.T) {
	var s Stack[int]
	s.Push(1)
	s.Push(2)

	s.Reset()

	if s.Size() != 0 {
		t.Error("Reset() stack should be empty")
	}

	s.Push(7)
	val, ok := s.Peek()
	if !ok || val != 7 {
		t.Errorf("Peek() after Reset() and Push() = %d, %t, want 7, true", val, ok)
	}
}
