package globalapi

import (
	"context"
	"sort"
	"strings"
)

// Derived lookups. Each one fetches the full catalogue and reduces it
// in memory; a source string that matches nothing yields an empty result,
// never an error.

// CountryCodes derives the set of country codes present in the catalogue's
// geographical_location fields, deduplicated, uppercased and sorted.
// With preferISO2 the result is restricted to two-character codes, which is
// a strict subset of the unfiltered set.
func (c *Client) CountryCodes(ctx context.Context, preferISO2 bool) ([]string, error) {
	cat, err := c.Catalogue(ctx)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]struct{})
	for _, e := range cat.Datasources {
		loc := strings.TrimSpace(e.GeographicalLocation)
		if loc == "" {
			continue
		}
		if preferISO2 && len(loc) != 2 {
			continue
		}
		seen[strings.ToUpper(loc)] = struct{}{}
	}

	codes := make([]string, 0, len(seen))
	for code := range seen {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes, nil
}

// GPCReferenceNumbersBySource collects the unique GPC reference numbers of
// every catalogue entry matching source, sorted alphabetically.
func (c *Client) GPCReferenceNumbersBySource(ctx context.Context, source string) ([]string, error) {
	cat, err := c.Catalogue(ctx)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]struct{})
	for _, e := range cat.Datasources {
		if !MatchesSource(e, source) {
			continue
		}
		if e.GPCReferenceNumber != "" {
			seen[e.GPCReferenceNumber] = struct{}{}
		}
	}

	refs := make([]string, 0, len(seen))
	for ref := range seen {
		refs = append(refs, ref)
	}
	sort.Strings(refs)
	return refs, nil
}

// ListDatasources projects the catalogue into discovery summaries. A
// non-empty filter keeps only entries whose publisher id, datasource name or
// API endpoint contains it, case-insensitively.
func (c *Client) ListDatasources(ctx context.Context, filter string) ([]DatasourceSummary, error) {
	cat, err := c.Catalogue(ctx)
	if err != nil {
		return nil, err
	}

	needle := strings.ToLower(filter)
	out := make([]DatasourceSummary, 0, len(cat.Datasources))
	for _, e := range cat.Datasources {
		if needle != "" {
			blob := strings.ToLower(e.PublisherID + " " + e.DatasourceName + " " + e.APIEndpoint)
			if !strings.Contains(blob, needle) {
				continue
			}
		}
		out = append(out, summaryOf(e))
	}
	return out, nil
}

// SourceYears returns the year coverage of the first catalogue entry
// matching source, or nil when nothing matches.
func (c *Client) SourceYears(ctx context.Context, source string) (*YearCoverage, error) {
	cat, err := c.Catalogue(ctx)
	if err != nil {
		return nil, err
	}

	for _, e := range cat.Datasources {
		if MatchesSource(e, source) {
			return coverageOf(e), nil
		}
	}
	return nil, nil
}
