package noise

import (
	"errors"
	"slices"
	"testing"
)

func TestNewPermutationTable_DoubledPermutation(t *testing.T) {
	for _, size := range []int{2, 16, 256, 1024} {
		table, err := NewPermutationTable(42, size)
		if err != nil {
			t.Fatalf("NewPermutationTable(42, %d) error: %v", size, err)
		}

		if table.Size() != size {
			t.Errorf("Size() = %d, want %d", table.Size(), size)
		}
		if table.Len() != 2*size {
			t.Errorf("Len() = %d, want %d", table.Len(), 2*size)
		}

		counts := make([]int, size)
		for i := range table.Len() {
			v := table.At(i)
			if v < 0 || v >= size {
				t.Fatalf("size %d: At(%d) = %d, out of [0, %d)", size, i, v, size)
			}
			counts[v]++
		}
		for v, c := range counts {
			if c != 2 {
				t.Errorf("size %d: value %d appears %d times, want 2", size, v, c)
			}
		}

		for i := range size {
			if table.At(i) != table.At(i+size) {
				t.Errorf("size %d: At(%d) = %d, At(%d) = %d; second half must repeat the first",
					size, i, table.At(i), i+size, table.At(i+size))
				break
			}
		}
	}
}

func TestNewPermutationTable_KnownPrefix(t *testing.T) {
	tests := []struct {
		seed int64
		size int
		want []int
	}{
		{42, 256, []int{104, 89, 155, 1, 39, 36, 128, 92, 131, 57, 148, 18, 69, 130, 10, 91}},
		{0, 256, []int{130, 157, 1, 180, 243, 154, 40, 111}},
		{42, 16, []int{15, 13, 5, 6, 8, 1, 12, 10, 7, 14, 9, 0, 4, 3, 2, 11}},
		{42, 2, []int{0, 1, 0, 1}},
		{7, 1024, []int{211, 967, 611, 384}},
	}

	for _, tt := range tests {
		table, err := NewPermutationTable(tt.seed, tt.size)
		if err != nil {
			t.Fatalf("NewPermutationTable(%d, %d) error: %v", tt.seed, tt.size, err)
		}
		got := table.Values()[:len(tt.want)]
		if !slices.Equal(got, tt.want) {
			t.Errorf("NewPermutationTable(%d, %d) prefix = %v, want %v", tt.seed, tt.size, got, tt.want)
		}
	}
}

func TestNewPermutationTable_Deterministic(t *testing.T) {
	for _, seed := range []int64{0, 1, -1, 42, 1 << 40, -9_223_372_036_854_775_808} {
		a, _ := NewPermutationTable(seed, DefaultTableSize)
		b, _ := NewPermutationTable(seed, DefaultTableSize)
		if !slices.Equal(a.Values(), b.Values()) {
			t.Errorf("seed %d: two tables differ", seed)
		}
	}
}

func TestNewPermutationTable_SeedSensitivity(t *testing.T) {
	a, _ := NewPermutationTable(42, DefaultTableSize)
	b, _ := NewPermutationTable(43, DefaultTableSize)
	if slices.Equal(a.Values(), b.Values()) {
		t.Error("seeds 42 and 43 produced identical tables")
	}
}

func TestNewPermutationTable_InvalidSize(t *testing.T) {
	for _, size := range []int{-256, 0, 1, 3, 100, 255, MaxTableSize * 2} {
		table, err := NewPermutationTable(1, size)
		if !errors.Is(err, ErrInvalidTableSize) {
			t.Errorf("NewPermutationTable(1, %d) error = %v, want ErrInvalidTableSize", size, err)
		}
		if !errors.Is(err, ErrInvalidInput) {
			t.Errorf("NewPermutationTable(1, %d) error = %v, want it to wrap ErrInvalidInput", size, err)
		}
		if table != nil {
			t.Errorf("NewPermutationTable(1, %d) returned a table with an error", size)
		}
	}
}

func TestPermutationTable_ValuesIsCopy(t *testing.T) {
	table, _ := NewPermutationTable(5, 16)
	v := table.Values()
	first := v[0]
	v[0] = -1
	if table.At(0) != first {
		t.Errorf("modifying Values() changed the table: At(0) = %d, want %d", table.At(0), first)
	}
}

func TestPermutationTable_Hash(t *testing.T) {
	table, _ := NewPermutationTable(9, 16)
	// Corners up to (size, size) must resolve without wrapping.
	for x := 0; x <= 16; x++ {
		for y := 0; y <= 16; y++ {
			want := table.At(table.At(x) + y)
			if got := table.Hash(x, y); got != want {
				t.Fatalf("Hash(%d, %d) = %d, want %d", x, y, got, want)
			}
		}
	}
}

func TestPermutationTable_Wrap(t *testing.T) {
	table, _ := NewPermutationTable(0, 256)

	tests := []struct {
		in   float64
		want int
	}{
		{0, 0},
		{1, 1},
		{255, 255},
		{256, 0},
		{257, 1},
		{-1, 255},
		{-256, 0},
		{-257, 255},
		{1e15, 0},          // 1e15 = 2^15 * 5^15, a multiple of 256
		{1e15 + 3, 3},      // exactly representable
		{-(1e15 + 3), 253}, // non-negative modulo
		{1 << 62, 0},       // first value on the math.Mod path
		{1e300, 0},         // multiples of huge powers of two
		{-1e300, 0},
	}

	for _, tt := range tests {
		if got := table.Wrap(tt.in); got != tt.want {
			t.Errorf("Wrap(%v) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestPermutationTable_WrapNonFinite(t *testing.T) {
	table, _ := NewPermutationTable(0, 256)
	for _, v := range []float64{nan(), inf(1), inf(-1)} {
		got := table.Wrap(v)
		if got < 0 || got >= 256 {
			t.Errorf("Wrap(%v) = %d, out of [0, 256)", v, got)
		}
	}
}
