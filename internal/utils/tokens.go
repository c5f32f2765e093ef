package utils

import (
	"strings"
	"time"
	"unicode"
	"unicode/utf8"
)

// DayLayout is the calendar-day key format used by the date index.
const DayLayout = "2006-01-02"

// SplitWhitespace splits s on runs of Unicode whitespace. Unlike
// strings.Fields it keeps the empty leading/trailing pieces, so "" yields
// [""] and " a" yields ["", "a"].
func SplitWhitespace(s string) []string {
	out := make([]string, 0, 8)
	start := 0
	inSpace := false
	for i, r := range s {
		if unicode.IsSpace(r) {
			if !inSpace {
				out = append(out, s[start:i])
				inSpace = true
			}
			continue
		}
		if inSpace {
			start = i
			inSpace = false
		}
	}
	if inSpace {
		out = append(out, "")
	} else {
		out = append(out, s[start:])
	}
	return out
}

// LowerTokens lowercases s and splits it with SplitWhitespace.
func LowerTokens(s string) []string {
	return SplitWhitespace(strings.ToLower(s))
}

// RuneLen is the length of s in characters.
func RuneLen(s string) int { return utf8.RuneCountInString(s) }

// CountWords counts whitespace separated words.
func CountWords(text string) int {
	return len(strings.Fields(text))
}

// DayKey truncates t to its UTC calendar day.
func DayKey(t time.Time) string {
	return t.UTC().Format(DayLayout)
}

// ValidDay reports whether s is a YYYY-MM-DD date.
func ValidDay(s string) bool {
	_, err := time.Parse(DayLayout, s)
	return err == nil
}
