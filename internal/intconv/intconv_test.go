package intconv

import (
	"math"
	"testing"
)

func TestToInt32(t *testing.T) {
	tests := []int{0, 1, -1, math.MaxInt32, math.MinInt32}
	for _, n := range tests {
		if got := ToInt32(n); int(got) != n {
			t.Errorf("ToInt32(%d) = %d, want %d", n, got, n)
		}
	}
}

func TestToInt32PanicsOnOverflow(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Errorf("ToInt32 should panic when n exceeds int32 range")
		}
	}()
	ToInt32(math.MaxInt32 + 1)
}
