package utils

import "strings"

var satuan = [...]string{
	"", "Satu", "Dua", "Tiga", "Empat", "Lima",
	"Enam", "Tujuh", "Delapan", "Sembilan", "Sepuluh", "Sebelas",
}

// Terbilang spells an amount in Indonesian words ("1650000" -> "Satu Juta Enam
// Ratus Lima Puluh Ribu"). Used for the Kwitansi and Lampiran III documents.
// Negative amounts and amounts of a billion or more come back empty, matching
// the range regulation documents actually need.
func Terbilang(n int64) string {
	if n < 0 || n >= 1_000_000_000 {
		return ""
	}
	return NormalizeSpace(terbilang(n))
}

func terbilang(n int64) string {
	switch {
	case n < 12:
		return satuan[n]
	case n < 20:
		return terbilang(n-10) + " Belas"
	case n < 100:
		return terbilang(n/10) + " Puluh " + terbilang(n%10)
	case n < 200:
		return "Seratus " + terbilang(n-100)
	case n < 1000:
		return terbilang(n/100) + " Ratus " + terbilang(n%100)
	case n < 2000:
		return "Seribu " + terbilang(n-1000)
	case n < 1_000_000:
		return terbilang(n/1000) + " Ribu " + terbilang(n%1000)
	default:
		return terbilang(n/1_000_000) + " Juta " + terbilang(n%1_000_000)
	}
}

// TerbilangRupiah wraps Terbilang for money captions: "///// ... Rupiah /////".
func TerbilangRupiah(n int64) string {
	words := Terbilang(n)
	if words == "" {
		words = "Nol"
	}
	return "///// " + strings.TrimSpace(words) + " Rupiah /////"
}
