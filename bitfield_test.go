package posit

import "testing"

func TestNewBitField(t *testing.T) {
	f := NewBitField(4, 0b10110)
	if f.Width() != 4 {
		t.Errorf("expected width 4, got %d", f.Width())
	}
	if f.Bits() != 0b0110 {
		t.Errorf("expected %04b, got %04b", 0b0110, f.Bits())
	}
	if got := NewBitField(64, ^uint64(0)).Bits(); got != ^uint64(0) {
		t.Errorf("expected %x, got %x", ^uint64(0), got)
	}
}

func TestBitField_GetSet(t *testing.T) {
	f := NewBitField(8, 0)
	f.Set(0, true)
	f.Set(7, true)
	f.Set(3, true)
	f.Set(3, false)
	if f.Bits() != 0b10000001 {
		t.Errorf("expected %08b, got %08b", 0b10000001, f.Bits())
	}
	if !f.Get(7) || f.Get(6) || !f.Get(0) {
		t.Errorf("unexpected bits %s", f)
	}
	f.Reset()
	if !f.IsZero() {
		t.Errorf("expected zero, got %s", f)
	}
}

func TestBitField_Run(t *testing.T) {
	tests := []struct {
		width uint
		bits  uint64
		i     uint
		run   uint
	}{
		{8, 0b11100101, 7, 3},
		{8, 0b11100101, 4, 2},
		{8, 0b11100101, 2, 1},
		{8, 0b11100101, 0, 1},

		// the run stops at bit 0
		{4, 0b1111, 3, 4},
		{4, 0b0000, 3, 4},
		{4, 0b0111, 2, 3},
		{4, 0b0111, 3, 1},
		{4, 0b1000, 3, 1},
		{64, 0, 63, 64},
		{64, ^uint64(0), 63, 64},
	}
	for _, tt := range tests {
		f := NewBitField(tt.width, tt.bits)
		if got := f.Run(tt.i); got != tt.run {
			t.Errorf("%s run at %d: expected %d, got %d", f, tt.i, tt.run, got)
		}
	}
}

func TestBitField_Field(t *testing.T) {
	f := NewBitField(8, 0b11100101)
	tests := []struct {
		lo, n uint
		want  uint64
	}{
		{0, 0, 0},
		{0, 1, 1},
		{2, 3, 0b001},
		{5, 3, 0b111},
		{0, 8, 0b11100101},
	}
	for _, tt := range tests {
		if got := f.Field(tt.lo, tt.n); got != tt.want {
			t.Errorf("field(%d, %d): expected %b, got %b", tt.lo, tt.n, tt.want, got)
		}
	}
}

func TestBitField_Shift(t *testing.T) {
	f := NewBitField(4, 0b1011)
	if got := f.Lsh(1).Bits(); got != 0b0110 {
		t.Errorf("lsh 1: expected %04b, got %04b", 0b0110, got)
	}
	if got := f.Rsh(2).Bits(); got != 0b0010 {
		t.Errorf("rsh 2: expected %04b, got %04b", 0b0010, got)
	}
	if got := f.Lsh(4); !got.IsZero() {
		t.Errorf("lsh 4: expected zero, got %s", got)
	}
	if got := f.Rsh(9); !got.IsZero() {
		t.Errorf("rsh 9: expected zero, got %s", got)
	}
}

func TestBitField_Negate(t *testing.T) {
	tests := []struct {
		width uint
		bits  uint64
		want  uint64
	}{
		{4, 0b0000, 0b0000},
		{4, 0b0001, 0b1111},
		{4, 0b1000, 0b1000},
		{4, 0b0110, 0b1010},
		{3, 0b001, 0b111},
		{64, 1, ^uint64(0)},
	}
	for _, tt := range tests {
		f := NewBitField(tt.width, tt.bits)
		if got := f.Negate().Bits(); got != tt.want {
			t.Errorf("-%s: expected %b, got %b", f, tt.want, got)
		}
		if got := f.Negate().Negate(); got != f {
			t.Errorf("-(-%s): got %s", f, got)
		}
	}
}

func TestBitField_String(t *testing.T) {
	if got := NewBitField(4, 0b0101).String(); got != "0101" {
		t.Errorf("expected 0101, got %s", got)
	}
	if got := string(NewBitField(3, 0b100).Append([]byte("b="))); got != "b=100" {
		t.Errorf("expected b=100, got %s", got)
	}
}

func TestBitField_OutOfRange(t *testing.T) {
	tests := []struct {
		name string
		fn   func()
	}{
		{"get", func() { NewBitField(4, 0).Get(4) }},
		{"set", func() { f := NewBitField(4, 0); f.Set(9, true) }},
		{"run", func() { NewBitField(4, 0).Run(4) }},
		{"field", func() { NewBitField(4, 0).Field(2, 3) }},
		{"width 0", func() { NewBitField(0, 0) }},
		{"width 65", func() { NewBitField(65, 0) }},
	}
	for _, tt := range tests {
		func() {
			defer func() {
				if recover() == nil {
					t.Errorf("%s: expected panic", tt.name)
				}
			}()
			tt.fn()
		}()
	}
}
