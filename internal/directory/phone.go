package directory

import "strings"

// NormalizePhone reduces a phone value to the 10-digit-or-less local
// form used as the directory key: digits only, the 972 country code and
// a leading zero stripped. "0501234567" and "972501234567" normalize to
// the same key.
func NormalizePhone(value string) string {
	digits := sanitizePhone(value)
	if digits == "" {
		return ""
	}
	if strings.HasPrefix(digits, "972") {
		digits = digits[3:]
	}
	if strings.HasPrefix(digits, "0") {
		digits = digits[1:]
	}
	return digits
}

func sanitizePhone(value string) string {
	var b strings.Builder
	for _, r := range value {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
