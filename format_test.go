package posit

import (
	"fmt"
	"testing"
)

func TestFormat(t *testing.T) {
	tests := []struct {
		format string
		x      Posit8
		want   string
	}{
		{"%b", FromFloat64[W8E2](0), "0p+00"},
		{"%b", FromFloat64[W8E2](0.5), "8p-04"},
		{"%b", FromFloat64[W8E2](-0.5), "-8p-04"},

		{"%f", FromFloat64[W8E2](0.5), "0.5"},
		{"%f", FromFloat64[W8E2](-0.5), "-0.5"},
		{"%+f", FromFloat64[W8E2](0.5), "+0.5"},
		{"%+f", FromFloat64[W8E2](-0.5), "-0.5"},
		{"% f", FromFloat64[W8E2](0.5), " 0.5"},
		{"% f", FromFloat64[W8E2](-0.5), "-0.5"},
		{"%8f", FromFloat64[W8E2](0.5), "     0.5"},
		{"%-8f", FromFloat64[W8E2](0.5), "0.5     "},
		{"%+8f", FromFloat64[W8E2](0.5), "    +0.5"},
		{"%.2f", FromFloat64[W8E2](1.5), "1.50"},
		{"%F", FromFloat64[W8E2](0.5), "0.5"},

		{"%.6e", FromFloat64[W8E2](0.5), "5.000000e-01"},
		{"%E", FromFloat64[W8E2](0.5), "5E-01"},

		{"%g", FromFloat64[W8E2](0.5), "0.5"},
		{"%G", MaxPos[W8E2](), "1.6777216E+07"},

		{"%x", FromFloat64[W8E2](0.5), "0x1p-01"},
		{"%#x", FromFloat64[W8E2](0.5), "0x1p-01"},

		{"%X", FromFloat64[W8E2](0.5), "0X1P-01"},
		{"%#X", FromFloat64[W8E2](0.5), "0X1P-01"},

		{"%v", FromFloat64[W8E2](0.5), "0.5"},
		{"%s", FromFloat64[W8E2](-2.5), "-2.5"},

		{"%v", NaR[W8E2](), "NaR"},
		{"%+f", NaR[W8E2](), "NaR"},

		{"%d", FromFloat64[W8E2](1), "%!d(posit=1)"},
	}

	for _, tt := range tests {
		got := fmt.Sprintf(tt.format, tt.x)
		if got != tt.want {
			t.Errorf("%s: expected %s, got %s", tt.format, tt.want, got)
		}
	}
}

func TestFormat_Println(t *testing.T) {
	a := FromFloat64[W8E2](1.5)
	b := FromFloat64[W8E2](0.25)
	if got := fmt.Sprintln(a.Add(b)); got != "1.75\n" {
		t.Errorf("expected 1.75, got %q", got)
	}
}
