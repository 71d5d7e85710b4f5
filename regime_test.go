package posit

import "testing"

func TestDecodeRegime(t *testing.T) {
	tests := []struct {
		width uint
		bits  uint64
		k     int
		used  uint
	}{
		// the magnitude bits of posit<4,0>
		{3, 0b000, -3, 3},
		{3, 0b001, -2, 3},
		{3, 0b010, -1, 2},
		{3, 0b011, -1, 2},
		{3, 0b100, 0, 2},
		{3, 0b101, 0, 2},
		{3, 0b110, 1, 3},
		{3, 0b111, 2, 3},

		{7, 0b1110010, 2, 4},
		{7, 0b0001011, -3, 4},
		{63, 1 << 62, 0, 2},
		{63, 1, -62, 63},
	}
	for _, tt := range tests {
		f := NewBitField(tt.width, tt.bits)
		k, used := decodeRegime(f)
		if k != tt.k || used != tt.used {
			t.Errorf("%s: expected k=%d used=%d, got k=%d used=%d", f, tt.k, tt.used, k, used)
		}
	}
}

func TestEncodeRegime(t *testing.T) {
	tests := []struct {
		k      int
		regime uint64
		length uint
	}{
		{0, 0b10, 2},
		{1, 0b110, 3},
		{2, 0b1110, 4},
		{-1, 0b01, 2},
		{-3, 0b0001, 4},
	}
	for _, tt := range tests {
		regime, length := encodeRegime(tt.k)
		if regime != tt.regime || length != tt.length {
			t.Errorf("k=%d: expected %b (%d bits), got %b (%d bits)", tt.k, tt.regime, tt.length, regime, length)
		}
	}
}

func TestRegime_RoundTrip(t *testing.T) {
	const width = 16
	for k := -width + 2; k <= width-3; k++ {
		regime, length := encodeRegime(k)
		f := NewBitField(width, regime<<(width-length))
		got, used := decodeRegime(f)
		if got != k || used != length {
			t.Errorf("k=%d: decoded k=%d used=%d", k, got, used)
		}
	}
}
