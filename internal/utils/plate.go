package utils

import "strings"

// NormalizePlate strips spaces and dashes and uppercases the rest, so
// "b 1234-xy" and "B1234XY" index the same vehicle.
func NormalizePlate(value string) string {
	value = strings.ReplaceAll(value, " ", "")
	value = strings.ReplaceAll(value, "-", "")
	return strings.ToUpper(value)
}

// ValidPhone reports whether s is an all-digit phone number of 10 to 13
// characters, the format the membership roster is keyed by.
func ValidPhone(s string) bool {
	if len(s) < 10 || len(s) > 13 {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
