// Package strutil provides small string helpers shared across the
// application.
package strutil

import (
	"fmt"
	"strings"
)

// NormalizeSpaces trims the string and collapses runs of whitespace into
// single spaces. "  hello   world  " becomes "hello world".
func NormalizeSpaces(s string) string {
	return strings.Join(strings.Fields(strings.TrimSpace(s)), " ")
}

// Integer covers every integer type.
type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// FormatCommas renders a number with thousands separators.
// 1234567 becomes "1,234,567".
func FormatCommas[T Integer](num T) string {
	str := fmt.Sprintf("%d", num)

	startOffset := 0
	if strings.HasPrefix(str, "-") {
		startOffset = 1
	}

	if len(str)-startOffset <= 3 {
		return str
	}

	var builder strings.Builder
	commaCount := (len(str) - startOffset - 1) / 3
	builder.Grow(len(str) + commaCount)

	if startOffset == 1 {
		builder.WriteByte('-')
		str = str[1:]
	}

	firstGroupLen := len(str) % 3
	if firstGroupLen == 0 {
		firstGroupLen = 3
	}
	builder.WriteString(str[:firstGroupLen])

	for i := firstGroupLen; i < len(str); i += 3 {
		builder.WriteByte(',')
		builder.WriteString(str[i : i+3])
	}

	return builder.String()
}

// SplitAndTrim splits on sep, trims each token and drops empties.
// Returns nil when nothing remains: "a, , b" with "," yields ["a", "b"].
func SplitAndTrim(s, sep string) []string {
	tokens := strings.Split(s, sep)

	result := make([]string, 0, len(tokens))
	for _, token := range tokens {
		token = strings.TrimSpace(token)
		if token != "" {
			result = append(result, token)
		}
	}

	if len(result) == 0 {
		return nil
	}
	return result
}

// MaskSensitiveData hides most of a secret while keeping enough of it to
// correlate log lines.
func MaskSensitiveData(data string) string {
	if data == "" {
		return ""
	}
	if len(data) <= 3 {
		return "***"
	}
	if len(data) <= 12 {
		return data[:4] + "***"
	}
	return data[:4] + "***" + data[len(data)-4:]
}
