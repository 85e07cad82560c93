package suggest

import (
	"strings"

	"listcal/internal/domain"
)

// ParseResponse parses a model response in format: name | price, one
// suggestion per line. Preamble lines and empty names are skipped; a price
// that fails to parse becomes 0.
func ParseResponse(raw string) []Suggestion {
	lines := strings.Split(raw, "\n")
	suggestions := make([]Suggestion, 0)

	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		// Skip conversational lead-ins the models sometimes emit.
		if strings.HasPrefix(line, "Here") || strings.HasPrefix(line, "Sure") || strings.HasPrefix(line, "Based on") {
			continue
		}
		line = strings.TrimPrefix(line, "- ")

		parts := strings.Split(line, "|")
		name := strings.TrimSpace(parts[0])
		if name == "" {
			continue
		}

		s := Suggestion{Name: name}
		if len(parts) >= 2 {
			s.Price = domain.CoerceAmount(parts[1])
		}
		suggestions = append(suggestions, s)
	}

	return suggestions
}
