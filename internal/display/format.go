// Package display renders pipeline artifacts for people: escaped strings,
// rune lists, hex dumps, and a step-by-step narration of a run.
package display

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"
)

// EscapeRune spells out control characters: \0, \n, \r and \t by name and
// any other control character as \uXXXX.
func EscapeRune(ch rune) string {
	switch ch {
	case 0:
		return `\0`
	case '\n':
		return `\n`
	case '\r':
		return `\r`
	case '\t':
		return `\t`
	}
	if unicode.IsControl(ch) {
		return fmt.Sprintf(`\u%04X`, ch)
	}
	return string(ch)
}

// EscapeString applies EscapeRune to every code point of s.
func EscapeString(s []rune) string {
	var sb strings.Builder
	for _, ch := range s {
		sb.WriteString(EscapeRune(ch))
	}
	return sb.String()
}

// FormatRunes formats list as "[a b c]".
func FormatRunes(list []rune) string {
	parts := make([]string, len(list))
	for i, ch := range list {
		parts[i] = EscapeRune(ch)
	}
	return "[" + strings.Join(parts, " ") + "]"
}

// FormatInts formats list as "1, 2, 3".
func FormatInts(list []int) string {
	parts := make([]string, len(list))
	for i, v := range list {
		parts[i] = strconv.Itoa(v)
	}
	return strings.Join(parts, ", ")
}

// Hex formats b as upper-case hex pairs separated by spaces, e.g. "0A FF 3C".
func Hex(b []byte) string {
	return fmt.Sprintf("% X", b)
}
