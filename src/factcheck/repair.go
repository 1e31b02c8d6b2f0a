package factcheck

import (
	"encoding/json"
	"regexp"
	"strings"
)

var (
	leadingFence  = regexp.MustCompile("(?i)^```(?:json)?\\s*")
	trailingFence = regexp.MustCompile("```\\s*$")
	jsonObject    = regexp.MustCompile(`(?s)\{.*\}`)
)

// parseVerdict coerces raw model output into a Verdict. Strategies run in
// order: strip accidental markdown fencing and parse directly, then fall
// back to extracting the outermost {...} block. Exhaustion is a hard failure.
func parseVerdict(raw string) (*Verdict, error) {
	cleaned := stripCodeFences(raw)

	var v Verdict
	if err := json.Unmarshal([]byte(cleaned), &v); err == nil {
		return &v, nil
	}

	if match := jsonObject.FindString(cleaned); match != "" {
		if err := json.Unmarshal([]byte(match), &v); err == nil {
			return &v, nil
		}
	}

	return nil, &SynthesisError{Reason: "unparseable verdict"}
}

func stripCodeFences(raw string) string {
	cleaned := strings.TrimSpace(raw)
	cleaned = leadingFence.ReplaceAllString(cleaned, "")
	cleaned = trailingFence.ReplaceAllString(cleaned, "")
	return strings.TrimSpace(cleaned)
}
