package globalapi

import (
	"testing"
)

func TestMatchesSource(t *testing.T) {
	entry := CatalogueEntry{
		PublisherID:    "SEEG",
		DatasourceName: "SEEGv2023",
		APIEndpoint:    "https://ccglobal.openearth.dev/api/v1/source/mendoza_arg/city/:locode",
	}

	cases := []struct {
		name   string
		source string
		want   bool
	}{
		{"exact publisher", "SEEG", true},
		{"lowercase publisher", "seeg", true},
		{"datasource substring", "v2023", true},
		{"endpoint path source id", "mendoza_arg", true},
		{"endpoint substring", "openearth", true},
		{"no match", "EPA_GHGRP", false},
		{"empty source", "", false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := MatchesSource(entry, tc.source); got != tc.want {
				t.Fatalf("MatchesSource(%q) = %v, want %v", tc.source, got, tc.want)
			}
		})
	}
}

func TestMatchesSourceAllTiesContribute(t *testing.T) {
	entries := []CatalogueEntry{
		{PublisherID: "SEEG", GPCReferenceNumber: "I.1.1"},
		{DatasourceName: "SEEGv2023", GPCReferenceNumber: "II.1.1"},
		{APIEndpoint: "https://host/api/v1/source/SEEG/city", GPCReferenceNumber: "III.1.1"},
	}

	matched := 0
	for _, e := range entries {
		if MatchesSource(e, "SEEG") {
			matched++
		}
	}
	if matched != len(entries) {
		t.Fatalf("all %d entries should match, got %d", len(entries), matched)
	}
}
