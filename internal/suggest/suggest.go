// Package suggest proposes items a shopping list is likely missing, based
// on the list's name and what it already contains.
package suggest

import (
	"context"
	"fmt"
	"strings"
)

// PromptTemplate is the shared prompt used by all suggestion backends. The
// two verbs are the list name and a comma-separated summary of current
// items ("nothing yet" when empty).
const PromptTemplate = `Suggest up to 8 items someone would add to a shopping list named %q.
The list already contains: %s. Do not repeat those.
For each suggestion give a rough whole-number price in the local currency.
Respond in plain text, one item per line, format: name | price`

type Suggestion struct {
	Name  string
	Price int
}

type Suggester interface {
	Suggest(ctx context.Context, listName string, have []string) ([]Suggestion, error)
}

// BuildPrompt renders PromptTemplate for a list.
func BuildPrompt(listName string, have []string) string {
	summary := "nothing yet"
	if len(have) > 0 {
		summary = strings.Join(have, ", ")
	}
	return fmt.Sprintf(PromptTemplate, listName, summary)
}
