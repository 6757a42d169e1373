package utils

import (
	"fmt"
	"strings"
	"time"
)

const layoutDate = "2006-01-02"

var indonesianMonths = [...]string{
	"Januari", "Februari", "Maret", "April", "Mei", "Juni",
	"Juli", "Agustus", "September", "Oktober", "November", "Desember",
}

// ParseDate parses YYYY-MM-DD in local timezone.
func ParseDate(s string) (time.Time, error) {
	return time.ParseInLocation(layoutDate, strings.TrimSpace(s), time.Local)
}

// FormatDate formats time to YYYY-MM-DD in local timezone.
func FormatDate(t time.Time) string {
	return t.In(time.Local).Format(layoutDate)
}

// FormatDateID renders a YYYY-MM-DD string as an Indonesian long date,
// e.g. "10 Januari 2024". Unparseable input comes back empty.
func FormatDateID(s string) string {
	t, err := ParseDate(s)
	if err != nil {
		return ""
	}
	return fmt.Sprintf("%d %s %d", t.Day(), indonesianMonths[t.Month()-1], t.Year())
}

// FormatMonthYearID renders "<lokasi>, November 2025" for signature blocks.
func FormatMonthYearID(s, location string) string {
	t, err := ParseDate(s)
	if err != nil {
		return location + ", "
	}
	return fmt.Sprintf("%s, %s %d", location, indonesianMonths[t.Month()-1], t.Year())
}
