package llmservice

import (
	"encoding/json"
	"errors"
	"strings"
)

var errNotObject = errors.New("top-level value is not a JSON object")

// Coerce strips an optional markdown code fence from a model reply and
// decodes the remainder as a JSON object.
func Coerce(raw string) (map[string]any, error) {
	cleaned := StripCodeFence(raw)

	var value any
	if err := json.Unmarshal([]byte(cleaned), &value); err != nil {
		return nil, &ParseError{Raw: raw, Err: err}
	}

	obj, ok := value.(map[string]any)
	if !ok {
		return nil, &ParseError{Raw: raw, Err: errNotObject}
	}
	return obj, nil
}

// StripCodeFence removes ```lang ... ``` wrapping. Unfenced text is only trimmed.
func StripCodeFence(raw string) string {
	cleaned := strings.TrimSpace(raw)
	if !strings.HasPrefix(cleaned, "```") {
		return cleaned
	}

	cleaned = strings.Trim(cleaned, "`")

	// Drop the language tag: everything before the first newline, when that
	// token is a bare word such as "json".
	if idx := strings.IndexAny(cleaned, "\r\n"); idx >= 0 {
		tag := strings.TrimSpace(cleaned[:idx])
		if tag == "" || isLanguageTag(tag) {
			cleaned = cleaned[idx+1:]
		}
	} else if strings.HasPrefix(strings.ToLower(cleaned), "json") {
		cleaned = cleaned[len("json"):]
	}

	return strings.TrimSpace(cleaned)
}

func isLanguageTag(s string) bool {
	for _, r := range s {
		if !(r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z' || r >= '0' && r <= '9' || r == '-' || r == '_') {
			return false
		}
	}
	return true
}
