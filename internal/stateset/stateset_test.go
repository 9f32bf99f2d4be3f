package stateset

import "testing"

func TestSetInsertContains(t *testing.T) {
	s := New(10)
	if s.Contains(3) {
		t.Fatalf("new set should not contain 3")
	}
	s.Insert(3)
	if !s.Contains(3) {
		t.Errorf("set should contain 3 after Insert(3)")
	}
	if s.Contains(4) {
		t.Errorf("set should not contain 4")
	}
}

func TestSetInsertIdempotent(t *testing.T) {
	s := New(10)
	s.Insert(5)
	s.Insert(5)
	if s.Len() != 1 {
		t.Errorf("Len() = %d, want 1 after inserting the same state twice", s.Len())
	}
}

func TestSetClear(t *testing.T) {
	s := New(10)
	s.Insert(1)
	s.Insert(2)
	s.Clear()
	if s.Len() != 0 {
		t.Errorf("Len() = %d, want 0 after Clear", s.Len())
	}
	if s.Contains(1) {
		t.Errorf("set should not contain 1 after Clear")
	}
	// Reuse after clear to exercise the sparse-set reuse path.
	s.Insert(7)
	if !s.Contains(7) || s.Contains(1) {
		t.Errorf("set state wrong after Clear+Insert: Len=%d", s.Len())
	}
}

func TestSetMembersOrder(t *testing.T) {
	s := New(10)
	s.Insert(4)
	s.Insert(1)
	s.Insert(9)
	got := s.Members()
	want := []int32{4, 1, 9}
	if len(got) != len(want) {
		t.Fatalf("Members() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Members()[%d] = %d, want %d", i, got[i], want[i])
		}
	}
}

func TestSetContainsOutOfRange(t *testing.T) {
	s := New(4)
	if s.Contains(-1) || s.Contains(100) {
		t.Errorf("Contains should return false for out-of-range state IDs")
	}
}
