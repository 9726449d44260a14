package service

import (
	"encoding/json"
	"fmt"
	"strings"
)

// ExtractionError reports a failure to recover a JSON object from a raw
// model reply. Candidate holds the substring that failed to parse so the
// original response can be diagnosed from logs.
type ExtractionError struct {
	Reason    string
	Candidate string
	Err       error
}

func (e *ExtractionError) Error() string {
	if e.Candidate != "" {
		return fmt.Sprintf("%s: %q", e.Reason, e.Candidate)
	}
	return e.Reason
}

func (e *ExtractionError) Unwrap() error { return e.Err }

// fenceReplacer strips code-fence delimiters the model wraps around its JSON
// despite instructions not to. "```json" must come before "```".
var fenceReplacer = strings.NewReplacer("```json", "", "```", "", "`", "")

// ExtractJSONObject recovers the JSON object embedded in a raw model reply.
// The reply is not guaranteed to be pure JSON: it may be fenced, contain
// embedded line breaks, or carry explanatory prose around the object.
//
// The raw text is trimmed, stripped of fences, and flattened to one line,
// then the outermost brace pair is parsed. No schema validation happens
// here; the caller owns field checking.
func ExtractJSONObject(raw string) (map[string]any, error) {
	clean := strings.TrimSpace(raw)
	clean = fenceReplacer.Replace(clean)
	clean = strings.ReplaceAll(clean, "\n", " ")

	start := strings.Index(clean, "{")
	end := strings.LastIndex(clean, "}")
	if start == -1 || end < start {
		return nil, &ExtractionError{Reason: "no JSON object present"}
	}

	candidate := clean[start : end+1]
	var obj map[string]any
	if err := json.Unmarshal([]byte(candidate), &obj); err != nil {
		return nil, &ExtractionError{Reason: "malformed JSON", Candidate: candidate, Err: err}
	}
	return obj, nil
}
