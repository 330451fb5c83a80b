package storefront

import "strings"

// FormatPhone applies the Russian phone mask "+7 (XXX) XXX-XX-XX" to whatever
// digits the input contains. Digits past the eleventh are dropped.
func FormatPhone(raw string) string {
	var digits []byte
	for i := 0; i < len(raw); i++ {
		if raw[i] >= '0' && raw[i] <= '9' {
			digits = append(digits, raw[i])
		}
	}
	if len(digits) == 0 {
		return ""
	}
	if digits[0] != '7' {
		digits = append([]byte{'7'}, digits...)
	}
	if len(digits) > 11 {
		digits = digits[:11]
	}

	var b strings.Builder
	b.WriteByte('+')
	b.WriteByte(digits[0])
	groups := []struct {
		from, to int
		prefix   string
	}{
		{1, 4, " ("},
		{4, 7, ") "},
		{7, 9, "-"},
		{9, 11, "-"},
	}
	for _, g := range groups {
		if len(digits) <= g.from {
			break
		}
		b.WriteString(g.prefix)
		b.Write(digits[g.from:min(g.to, len(digits))])
	}
	return b.String()
}
