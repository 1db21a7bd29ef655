package globalapi

import (
	"context"
	"net/http"
	"net/http/httptest"
	"reflect"
	"sort"
	"testing"
)

const catalogueFixture = `{
  "datasources": [
    {
      "publisher_id": "SEEG",
      "datasource_name": "SEEGv2023",
      "gpc_reference_number": "II.1.1",
      "start_year": 2015,
      "end_year": 2022,
      "latest_accounting_year": 2022,
      "spatial_resolution": "city",
      "geographical_location": "BR",
      "api_endpoint": "https://ccglobal.openearth.dev/api/v1/source/SEEG/city/:locode/:year/:gpcReferenceNumber"
    },
    {
      "publisher_id": "SEEG",
      "datasource_name": "SEEGv2023",
      "gpc_reference_number": "I.1.1",
      "start_year": 2015,
      "end_year": 2022,
      "latest_accounting_year": 2022,
      "spatial_resolution": "city",
      "geographical_location": "br",
      "api_endpoint": "https://ccglobal.openearth.dev/api/v1/source/SEEG/city/:locode/:year/:gpcReferenceNumber"
    },
    {
      "publisher_id": "EPA",
      "datasource_name": "EPA GHGRP",
      "gpc_reference_number": "I.3.1",
      "start_year": 2010,
      "end_year": 2021,
      "latest_accounting_year": 2021,
      "spatial_resolution": "city",
      "geographical_location": "US",
      "api_endpoint": "https://ccglobal.openearth.dev/api/v1/source/EPA/city/:locode/:year/:gpcReferenceNumber"
    },
    {
      "publisher_id": "Mendoza",
      "datasource_name": "Mendoza inventory",
      "gpc_reference_number": "",
      "geographical_location": "AR MDZ",
      "api_endpoint": "https://ccglobal.openearth.dev/api/v1/source/mendoza_arg/city/:locode"
    },
    {
      "publisher_id": "Blank",
      "datasource_name": "No location",
      "geographical_location": "",
      "api_endpoint": "https://example.org/none"
    }
  ]
}`

func newCatalogueServer(t *testing.T) *Client {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/v0/catalogue" {
			t.Fatalf("unexpected path: %s", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(catalogueFixture))
	}))
	t.Cleanup(srv.Close)
	return New(srv.URL, 0)
}

func TestCountryCodes(t *testing.T) {
	c := newCatalogueServer(t)

	all, err := c.CountryCodes(context.Background(), false)
	if err != nil {
		t.Fatalf("CountryCodes failed: %v", err)
	}
	// BR and br collapse, AR MDZ survives unfiltered, blank dropped.
	if want := []string{"AR MDZ", "BR", "US"}; !reflect.DeepEqual(all, want) {
		t.Fatalf("unfiltered codes = %v, want %v", all, want)
	}
	if !sort.StringsAreSorted(all) {
		t.Fatalf("codes not sorted: %v", all)
	}

	iso2, err := c.CountryCodes(context.Background(), true)
	if err != nil {
		t.Fatalf("CountryCodes(preferISO2) failed: %v", err)
	}
	if want := []string{"BR", "US"}; !reflect.DeepEqual(iso2, want) {
		t.Fatalf("iso2 codes = %v, want %v", iso2, want)
	}

	// The filtered set must be a strict subset of the unfiltered one.
	unfiltered := make(map[string]struct{}, len(all))
	for _, code := range all {
		unfiltered[code] = struct{}{}
	}
	for _, code := range iso2 {
		if _, ok := unfiltered[code]; !ok {
			t.Fatalf("iso2 code %q missing from unfiltered set %v", code, all)
		}
	}
	if len(iso2) >= len(all) {
		t.Fatalf("iso2 set should be strictly smaller here: %v vs %v", iso2, all)
	}
}

func TestGPCReferenceNumbersBySource(t *testing.T) {
	c := newCatalogueServer(t)

	refs, err := c.GPCReferenceNumbersBySource(context.Background(), "seeg")
	if err != nil {
		t.Fatalf("GPCReferenceNumbersBySource failed: %v", err)
	}
	if want := []string{"I.1.1", "II.1.1"}; !reflect.DeepEqual(refs, want) {
		t.Fatalf("refs = %v, want %v", refs, want)
	}
}

func TestGPCReferenceNumbersNoMatchIsEmpty(t *testing.T) {
	c := newCatalogueServer(t)

	refs, err := c.GPCReferenceNumbersBySource(context.Background(), "nonexistent")
	if err != nil {
		t.Fatalf("no match must not be an error: %v", err)
	}
	if len(refs) != 0 {
		t.Fatalf("refs = %v, want empty", refs)
	}
}

func TestListDatasources(t *testing.T) {
	c := newCatalogueServer(t)

	all, err := c.ListDatasources(context.Background(), "")
	if err != nil {
		t.Fatalf("ListDatasources failed: %v", err)
	}
	if len(all) != 5 {
		t.Fatalf("got %d summaries, want 5", len(all))
	}

	filtered, err := c.ListDatasources(context.Background(), "epa")
	if err != nil {
		t.Fatalf("filtered ListDatasources failed: %v", err)
	}
	if len(filtered) != 1 || filtered[0].PublisherID != "EPA" {
		t.Fatalf("filter 'epa' = %+v, want the single EPA entry", filtered)
	}
	if filtered[0].StartYear != 2010 || filtered[0].LatestAccountingYear != 2021 {
		t.Fatalf("projection lost year fields: %+v", filtered[0])
	}
}

func TestSourceYears(t *testing.T) {
	c := newCatalogueServer(t)

	cov, err := c.SourceYears(context.Background(), "SEEG")
	if err != nil {
		t.Fatalf("SourceYears failed: %v", err)
	}
	if cov == nil {
		t.Fatal("expected coverage for SEEG")
	}
	// First match in catalogue order wins.
	if cov.GPCReferenceNumber != "II.1.1" || cov.StartYear != 2015 || cov.EndYear != 2022 {
		t.Fatalf("unexpected coverage: %+v", cov)
	}

	none, err := c.SourceYears(context.Background(), "nope")
	if err != nil {
		t.Fatalf("no match must not be an error: %v", err)
	}
	if none != nil {
		t.Fatalf("coverage = %+v, want nil for no match", none)
	}
}
