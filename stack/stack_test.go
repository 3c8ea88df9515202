package stack

import "testing"

func TestPushPopOrder(t *testing.T) {
	s := NewStack()
	s.Push(1)
	s.Push(2)
	s.Push(3)

	for _, want := range []int{3, 2, 1} {
		got, err := s.Pop()
		if err != nil {
			t.Fatalf("Pop: %v", err)
		}
		if got != want {
			t.Fatalf("got %d, want %d", got, want)
		}
	}
}

func TestPopEmpty(t *testing.T) {
	s := NewStack()
	if _, err := s.Pop(); err == nil {
		t.Fatal("expected an error popping an empty stack")
	}
}

func TestSize(t *testing.T) {
	s := NewStack()
	if s.Size() != 0 {
		t.Fatalf("expected empty stack to have size 0, got %d", s.Size())
	}
	s.Push(10)
	s.Push(20)
	if s.Size() != 2 {
		t.Fatalf("expected size 2, got %d", s.Size())
	}
}

func TestGrowsBeyondInitialCapacity(t *testing.T) {
	s := NewStack()
	for i := 0; i < 100; i++ {
		s.Push(i)
	}
	if s.Size() != 100 {
		t.Fatalf("expected size 100, got %d", s.Size())
	}
	for i := 99; i >= 0; i-- {
		got, err := s.Pop()
		if err != nil {
			t.Fatalf("Pop: %v", err)
		}
		if got != i {
			t.Fatalf("got %d, want %d", got, i)
		}
	}
}

func TestValueAt(t *testing.T) {
	s := NewStack()
	s.Push(10)
	s.Push(20)
	s.Push(30)

	for pos, want := range []int{30, 20, 10} {
		got, err := s.ValueAt(pos)
		if err != nil {
			t.Fatalf("ValueAt(%d): %v", pos, err)
		}
		if got != want {
			t.Fatalf("ValueAt(%d) = %d, want %d", pos, got, want)
		}
	}

	if _, err := s.ValueAt(3); err == nil {
		t.Fatal("expected an error for an out-of-range position")
	}
}

func TestValueAtEmpty(t *testing.T) {
	s := NewStack()
	if _, err := s.ValueAt(0); err == nil {
		t.Fatal("expected an error reading into an empty stack")
	}
}
