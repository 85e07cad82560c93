package domain

import (
	"fmt"
	"strconv"
	"strings"
)

// CoerceAmount parses a quantity or price typed into an inline edit field.
// Anything that does not parse as an integer, and any negative value,
// becomes 0. Bad input on the edit path never rejects, it floors.
func CoerceAmount(s string) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < 0 {
		return 0
	}
	return n
}

// ParseAmount parses a quantity or price from the add-item form, where bad
// input rejects the submission instead of being coerced.
func ParseAmount(s string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("not a whole number: %q", s)
	}
	if n < 0 {
		return 0, fmt.Errorf("negative amount: %d", n)
	}
	return n, nil
}

// FormatAmount renders an integer amount with two decimals for display.
// Prices are whole units throughout; the fraction is always .00.
func FormatAmount(n int) string {
	return strconv.Itoa(n) + ".00"
}
