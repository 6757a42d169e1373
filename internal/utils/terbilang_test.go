package utils

import "testing"

func TestTerbilang(t *testing.T) {
	cases := []struct {
		in   int64
		want string
	}{
		{0, ""},
		{1, "Satu"},
		{11, "Sebelas"},
		{17, "Tujuh Belas"},
		{45, "Empat Puluh Lima"},
		{150, "Seratus Lima Puluh"},
		{300, "Tiga Ratus"},
		{1000, "Seribu"},
		{1650000, "Satu Juta Enam Ratus Lima Puluh Ribu"},
		{200000, "Dua Ratus Ribu"},
		{3650000, "Tiga Juta Enam Ratus Lima Puluh Ribu"},
	}
	for _, c := range cases {
		if got := Terbilang(c.in); got != c.want {
			t.Errorf("Terbilang(%d) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestTerbilangRupiahZero(t *testing.T) {
	if got := TerbilangRupiah(0); got != "///// Nol Rupiah /////" {
		t.Errorf("TerbilangRupiah(0) = %q", got)
	}
}
