package utils

import (
	"strconv"
	"strings"
)

const DefaultListLimit = 50

// ParseLimit reads a list limit query value. Empty means DefaultListLimit;
// there is no upper bound.
func ParseLimit(raw string) (int64, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return DefaultListLimit, true
	}
	n, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || n < 0 {
		return 0, false
	}
	return n, true
}
