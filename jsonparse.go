package main

import (
	"encoding/json"
	"strings"
)

// tryParseJSON attempts to recover a JSON value from a model reply. Stages,
// in order: direct parse of the whole string, brace-matching around a
// "timetable" key, then suffix-truncated parsing from the first { or [.
// Returns false when nothing parses; it never errors.
func tryParseJSON(text string) (any, bool) {
	cleaned := stripCodeFences(text)
	if cleaned == "" {
		return nil, false
	}

	var v any
	if err := json.Unmarshal([]byte(cleaned), &v); err == nil {
		return v, true
	}

	if v, ok := parseTimetableObject(cleaned); ok {
		return v, true
	}

	return parseLooseJSON(cleaned)
}

// stripCodeFences removes the markdown ``` wrappers models like to add
// even when asked for clean JSON.
func stripCodeFences(s string) string {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "```json") {
		s = strings.TrimPrefix(s, "```json")
	}
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	s = strings.ReplaceAll(s, "```", "")
	return strings.TrimSpace(s)
}

// parseTimetableObject looks for a "timetable" key (quoted or bare), scans
// backward to the nearest {, then forward tracking brace depth to find the
// matching }, and parses that substring.
func parseTimetableObject(s string) (any, bool) {
	idx := strings.Index(s, `"timetable"`)
	if idx == -1 {
		idx = strings.Index(s, "timetable")
	}
	if idx == -1 {
		return nil, false
	}

	start := strings.LastIndex(s[:idx], "{")
	if start == -1 {
		return nil, false
	}

	depth := 0
	for i := start; i < len(s); i++ {
		switch s[i] {
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				var v any
				if err := json.Unmarshal([]byte(s[start:i+1]), &v); err == nil {
					return v, true
				}
				return nil, false
			}
		}
	}
	return nil, false
}

// parseLooseJSON finds the first { or [ and tries every suffix-truncated
// substring until one parses. O(n) parse attempts, fine for short replies.
func parseLooseJSON(s string) (any, bool) {
	start := strings.IndexAny(s, "{[")
	if start == -1 {
		return nil, false
	}
	for end := len(s); end > start+1; end-- {
		var v any
		if err := json.Unmarshal([]byte(s[start:end]), &v); err == nil {
			return v, true
		}
	}
	return nil, false
}
