package parsley

import (
	"math"
	"strconv"
	"strings"
)

// ParseReal converts a string to a float64. Leading and trailing whitespace
// is ignored, but the entire remaining text must form the number: trailing
// garbage (e.g. "3.0x"), an empty string, or whitespace alone all fail.
// Returns the value and whether the conversion succeeded.
func ParseReal(str string) (float64, bool) {
	trimmed := strings.TrimSpace(str)
	if trimmed == "" {
		return 0.0, false
	}

	value, err := strconv.ParseFloat(trimmed, 64)
	if err != nil {
		return 0.0, false
	}
	return value, true
}

// ParseInt converts a string to an int. The string is first parsed as a real
// so that out-of-range and trailing-garbage inputs are rejected uniformly,
// then re-parsed strictly as an integer literal, which rejects fractional
// strings like "3.5". Returns the value and whether the conversion succeeded.
func ParseInt(str string) (int, bool) {
	// Try as real first so that we can do a range check.
	real, ok := ParseReal(str)
	if !ok {
		return 0, false
	}

	if real < math.MinInt || real > math.MaxInt {
		return 0, false
	}

	value, err := strconv.Atoi(strings.TrimSpace(str))
	if err != nil {
		return 0, false
	}
	return value, true
}

// FormatReal converts a float64 to a string. Whole numbers always render
// with a single decimal place, e.g. "4.0", otherwise the shortest general
// representation is used.
func FormatReal(x float64) string {
	if math.Floor(x) == x {
		// Ensure we get the '.0'
		return strconv.FormatFloat(x, 'f', 1, 64)
	}
	return strconv.FormatFloat(x, 'g', -1, 64)
}

// FormatInt converts an int to its decimal string representation.
func FormatInt(i int) string {
	return strconv.Itoa(i)
}

// Join concatenates args separated by with. An empty list yields "".
func Join(args []string, with string) string {
	return strings.Join(args, with)
}

// IndexOf returns the index of value within choices, 0 .. len-1,
// or -1 if value is not present.
func IndexOf(choices []string, value string) int {
	for index, item := range choices {
		if item == value {
			return index
		}
	}
	return -1
}
