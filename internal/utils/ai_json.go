package utils

import (
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"
)

// ErrNoJSONObject is returned when no candidate in the model output decodes as a JSON object
var ErrNoJSONObject = errors.New("no JSON object in model output")

var fencedBlock = regexp.MustCompile("(?s)```(?:json|JSON)?\\s*(.+?)\\s*```")

// DecodeAIObject decodes a JSON object from LLM output into target.
// It accepts, in order:
// - the raw text
// - the content of a markdown code fence (```json ... ```)
// - the first balanced {...} span inside surrounding prose
// - any of the above with trailing commas removed
// Bare scalars and null never satisfy it.
func DecodeAIObject(input string, target any) error {
	input = strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(input), "\ufeff"))
	if input == "" {
		return fmt.Errorf("%w: empty output", ErrNoJSONObject)
	}

	var lastErr error
	for _, candidate := range candidates(input) {
		if !strings.HasPrefix(candidate, "{") {
			continue
		}
		err := json.Unmarshal([]byte(candidate), target)
		if err == nil {
			return nil
		}
		lastErr = err
	}

	if lastErr != nil {
		return fmt.Errorf("%w: %v (output: %s)", ErrNoJSONObject, lastErr, Truncate(input, 100))
	}
	return fmt.Errorf("%w (output: %s)", ErrNoJSONObject, Truncate(input, 100))
}

// candidates lists the strings worth handing to the JSON decoder, best guess first
func candidates(input string) []string {
	out := []string{input}

	if m := fencedBlock.FindStringSubmatch(input); len(m) > 1 {
		out = append(out, strings.TrimSpace(m[1]))
	}
	if start := strings.Index(input, "{"); start >= 0 {
		if span := balancedObject(input[start:]); span != "" {
			out = append(out, span)
		}
	}

	n := len(out)
	for i := 0; i < n; i++ {
		if fixed := stripTrailingCommas(out[i]); fixed != out[i] {
			out = append(out, fixed)
		}
	}
	return out
}

// stringTracker follows whether the bytes of a JSON text are inside a string literal
type stringTracker struct {
	inString bool
	escape   bool
}

// next consumes ch and reports whether it is structural, i.e. outside any string literal
func (t *stringTracker) next(ch byte) bool {
	switch {
	case t.escape:
		t.escape = false
		return false
	case t.inString && ch == '\\':
		t.escape = true
		return false
	case ch == '"':
		t.inString = !t.inString
		return false
	}
	return !t.inString
}

// balancedObject returns the prefix of s up to the brace closing its first '{',
// skipping braces inside string literals
func balancedObject(s string) string {
	var tracker stringTracker
	depth := 0

	for i := 0; i < len(s); i++ {
		if !tracker.next(s[i]) {
			continue
		}
		switch s[i] {
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return s[:i+1]
			}
		}
	}
	return ""
}

// stripTrailingCommas drops commas that directly precede a closing '}' or ']'.
// Commas inside string literals are left alone.
func stripTrailingCommas(s string) string {
	var (
		tracker stringTracker
		b       strings.Builder
	)
	b.Grow(len(s))

	for i := 0; i < len(s); i++ {
		if tracker.next(s[i]) && s[i] == ',' {
			j := i + 1
			for j < len(s) && strings.IndexByte(" \t\r\n", s[j]) >= 0 {
				j++
			}
			if j < len(s) && (s[j] == '}' || s[j] == ']') {
				continue
			}
		}
		b.WriteByte(s[i])
	}
	return b.String()
}

// Truncate shortens s to at most maxLen bytes without splitting a UTF-8 sequence,
// marking the cut with "..."
func Truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	cut := maxLen
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}
	return s[:cut] + "..."
}
