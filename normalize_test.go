package posit

import (
	"testing"

	"github.com/shogo82148/int128"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		frac     uint64
		fracBits uint
		want     int128.Uint128
	}{
		{0, 0, int128.Uint128{H: 0x4000000000000000}},
		{0b101, 3, int128.Uint128{H: 0x6800000000000000}},
		{1, 61, int128.Uint128{H: 0x4000000000000002}},
		{0x1fffffffffffffff, 61, int128.Uint128{H: 0x7ffffffffffffffe}},
	}
	for _, tt := range tests {
		got := normalize(tt.frac, tt.fracBits)
		if got != tt.want {
			t.Errorf("normalize(%b, %d): expected %016x%016x, got %016x%016x", tt.frac, tt.fracBits, tt.want.H, tt.want.L, got.H, got.L)
		}
	}
}

func TestDenormalize(t *testing.T) {
	one := normalize(0, 0)
	tests := []struct {
		sig   int128.Uint128
		shift uint
		want  int128.Uint128
	}{
		{one, 0, one},
		{one, 4, int128.Uint128{H: 0x0400000000000000}},
		{one, 62, int128.Uint128{H: 1}},
		{one, 63, int128.Uint128{L: 0x8000000000000000}},
		{one, 125, int128.Uint128{L: 2}},
		{one, 126, int128.Uint128{}},
		{one, 500, int128.Uint128{}},
		{normalize(0b101, 3), 1, int128.Uint128{H: 0x3400000000000000}},
	}
	for _, tt := range tests {
		got := denormalize(tt.sig, tt.shift)
		if got != tt.want {
			t.Errorf("denormalize(%016x%016x, %d): expected %016x%016x, got %016x%016x",
				tt.sig.H, tt.sig.L, tt.shift, tt.want.H, tt.want.L, got.H, got.L)
		}
	}
}

func TestNormalize_Random(t *testing.T) {
	r := newXorshift64()
	for fracBits := uint(0); fracBits <= 61; fracBits++ {
		for i := 0; i < 100; i++ {
			frac := r.Uint64() & (1<<fracBits - 1)
			got := normalize(frac, fracBits)
			if got.Len() != hiddenBit+1 {
				t.Errorf("normalize(%x, %d): leading one at %d", frac, fracBits, got.Len()-1)
			}
			if tz := got.TrailingZeros(); tz < int(hiddenBit-fracBits) {
				t.Errorf("normalize(%x, %d): %d trailing zeros", frac, fracBits, tz)
			}
			want := int128.Uint128{L: frac | 1<<fracBits}
			if back := got.Rsh(hiddenBit - fracBits); back != want {
				t.Errorf("normalize(%x, %d): expected %x, got %016x%016x", frac, fracBits, want.L, back.H, back.L)
			}
		}
	}
}

func TestDenormalize_Random(t *testing.T) {
	r := newXorshift64()
	for i := 0; i < 1000; i++ {
		sig := normalize(r.Uint64()>>3, 61)
		for shift := uint(0); shift < 140; shift++ {
			got := denormalize(sig, shift)
			if shift >= hiddenBit {
				if got != (int128.Uint128{}) {
					t.Errorf("denormalize(%016x%016x, %d): expected 0", sig.H, sig.L, shift)
				}
				continue
			}
			if got.Len() != int(hiddenBit+1-shift) {
				t.Errorf("denormalize(%016x%016x, %d): leading one at %d", sig.H, sig.L, shift, got.Len()-1)
			}
			// only the bits shifted out are lost
			if lost := sig.Sub(got.Lsh(shift)); lost.Len() > int(shift) {
				t.Errorf("denormalize(%016x%016x, %d): lost %016x%016x", sig.H, sig.L, shift, lost.H, lost.L)
			}
		}
	}
}
