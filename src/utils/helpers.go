package utils

import (
	"fmt"
	"os"
	"strings"
)

func Getenv(key, fallback string) string {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	return v
}

// FormatRupiah renders an IDR amount with thousands separators, e.g.
// 305000 -> "Rp305.000".
func FormatRupiah(amount int64) string {
	digits := []byte(fmt.Sprintf("%d", amount))
	var b strings.Builder
	b.WriteString("Rp")
	for i, d := range digits {
		if i > 0 && (len(digits)-i)%3 == 0 {
			b.WriteByte('.')
		}
		b.WriteByte(d)
	}
	return b.String()
}
