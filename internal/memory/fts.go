package memory

import "strings"

// tokenizeForFTS converts a query string to an FTS-safe query.
func tokenizeForFTS(query string) string {
	query = strings.TrimSpace(query)
	if query == "" {
		return ""
	}

	// Split into words and strip FTS5 operators (AND OR NOT NEAR + - * ^ : " ')
	words := strings.Fields(query)
	var tokens []string
	for _, w := range words {
		w = strings.ReplaceAll(w, "\"", "")
		w = strings.ReplaceAll(w, "'", "")
		w = strings.ReplaceAll(w, "*", "")
		w = strings.ReplaceAll(w, "-", " ")
		w = strings.ReplaceAll(w, "+", "")
		w = strings.ReplaceAll(w, "^", "")
		w = strings.ReplaceAll(w, ":", "")
		w = strings.ReplaceAll(w, "(", "")
		w = strings.ReplaceAll(w, ")", "")
		w = strings.TrimSpace(w)
		if len(w) > 1 { // skip single characters
			tokens = append(tokens, w)
		}
	}

	if len(tokens) == 0 {
		return ""
	}

	// Join with OR for broader matching
	return strings.Join(tokens, " OR ")
}
