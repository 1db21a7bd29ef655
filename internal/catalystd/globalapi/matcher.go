package globalapi

import (
	"strings"
)

// MatchesSource reports whether a catalogue entry belongs to the given
// source identifier.
//
// This is a deliberately loose policy: a case-insensitive substring match
// across publisher id, datasource name and API endpoint, plus the
// "/source/{s}/" path forms the endpoint URLs embed. All matching entries
// count; there is no ranking and ties are not broken. Callers that need a
// single entry take the first match in catalogue order.
func MatchesSource(e CatalogueEntry, source string) bool {
	if source == "" {
		return false
	}
	needle := strings.ToUpper(source)

	if strings.Contains(strings.ToUpper(e.PublisherID), needle) ||
		strings.Contains(strings.ToUpper(e.DatasourceName), needle) ||
		strings.Contains(strings.ToUpper(e.APIEndpoint), needle) {
		return true
	}

	return strings.Contains(e.APIEndpoint, "/source/"+source+"/") ||
		strings.Contains(e.APIEndpoint, "/source/"+needle+"/")
}
