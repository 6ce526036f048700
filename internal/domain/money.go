package domain

import "strings"

// ParseVND extracts the integer amount from a localized currency string
// ("580,000₫" -> 580000). Non-digit runes are stripped; an unparseable value
// yields 0.
func ParseVND(price string) int {
	n := 0
	for _, r := range price {
		if r >= '0' && r <= '9' {
			n = n*10 + int(r-'0')
		}
	}
	return n
}

// FormatVND renders an amount as a currency string with thousands separators
// ("735000" -> "735,000₫").
func FormatVND(n int) string {
	if n < 0 {
		return "-" + FormatVND(-n)
	}
	s := make([]byte, 0, 16)
	for i := 0; n > 0 || i == 0; i++ {
		if i > 0 && i%3 == 0 {
			s = append(s, ',')
		}
		s = append(s, byte('0'+n%10))
		n /= 10
	}
	// digits were appended least-significant first
	var b strings.Builder
	for i := len(s) - 1; i >= 0; i-- {
		b.WriteByte(s[i])
	}
	b.WriteRune('₫')
	return b.String()
}
