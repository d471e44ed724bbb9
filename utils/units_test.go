package utils

import (
	"testing"
)

func TestSiUnits(t *testing.T) {
	for _, v := range []struct {
		in       float64
		decimals int
		out      string
	}{
		{0, 2, "0.00 "},
		{999, 0, "999 "},
		{1500, 2, "1.50 K"},
		{2500000, 1, "2.5 M"},
		{7200000000, 2, "7.20 G"},
		{1300000000000, 2, "1.30 T"},
	} {
		if got := SiUnits(v.in, v.decimals); got != v.out {
			t.Errorf("%f: expected %q, got %q", v.in, v.out, got)
		}
	}
}
