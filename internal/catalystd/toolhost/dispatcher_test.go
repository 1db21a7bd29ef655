package toolhost

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/openearth/catalyst/internal/catalystd/globalapi"
	"github.com/openearth/catalyst/pkg/utils/json"
)

func newTestDispatcher(t *testing.T, handler http.HandlerFunc) *Dispatcher {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	api := globalapi.New(srv.URL, 0)
	return NewDispatcher(NewRegistry(api))
}

func TestInvokeSuccess(t *testing.T) {
	d := newTestDispatcher(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"message":"Healthy"}`))
	})

	res := d.Invoke(context.Background(), "health_check", Arguments{})
	if res.IsError {
		t.Fatalf("health_check failed: %s", res.Content)
	}
	var payload map[string]interface{}
	if err := json.UnmarshalString(res.Content, &payload); err != nil {
		t.Fatalf("payload is not valid JSON: %v", err)
	}
	if payload["message"] != "Healthy" {
		t.Fatalf("unexpected payload: %s", res.Content)
	}
}

func TestInvokeUnknownTool(t *testing.T) {
	d := newTestDispatcher(t, func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("no remote call expected for an unknown tool")
	})

	res := d.Invoke(context.Background(), "does_not_exist", Arguments{})
	if !res.IsError {
		t.Fatal("unknown tool must produce an error result")
	}
	if !strings.Contains(res.Content, "unknown tool") {
		t.Fatalf("error should name the failure: %s", res.Content)
	}
}

func TestInvokeMissingRequiredArguments(t *testing.T) {
	d := newTestDispatcher(t, func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("no remote call expected when required arguments are missing")
	})

	res := d.Invoke(context.Background(), "get_city_emissions", Arguments{"source": "SEEG"})
	if !res.IsError {
		t.Fatal("missing required arguments must produce an error result")
	}
	for _, name := range []string{"city", "year", "gpc_reference_number"} {
		if !strings.Contains(res.Content, name) {
			t.Fatalf("error should list missing field %q: %s", name, res.Content)
		}
	}
}

func TestInvokeAdapterFailureIsEncoded(t *testing.T) {
	d := newTestDispatcher(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "upstream broken", http.StatusBadGateway)
	})

	res := d.Invoke(context.Background(), "health_check", Arguments{})
	if !res.IsError {
		t.Fatal("remote failure must come back as an error result, not a panic or raise")
	}
	if !strings.Contains(res.Content, "health_check") {
		t.Fatalf("error should name the tool: %s", res.Content)
	}
}

func TestInvokeCoercesLooseArgumentTypes(t *testing.T) {
	var gotPath string
	d := newTestDispatcher(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.EscapedPath()
		_, _ = w.Write([]byte(`{"totals":{"emissions":{"co2eq_100yr":7}}}`))
	})

	// Models frequently send the year as a JSON number.
	res := d.Invoke(context.Background(), "get_city_emissions", Arguments{
		"source":               "SEEG",
		"city":                 "BR SER",
		"year":                 float64(2022),
		"gpc_reference_number": "II.1.1",
	})
	if res.IsError {
		t.Fatalf("invoke failed: %s", res.Content)
	}
	if want := "/api/v1/source/SEEG/city/BR%20SER/2022/II.1.1"; gotPath != want {
		t.Fatalf("path = %q, want %q", gotPath, want)
	}
	if res.Content != "7" {
		t.Fatalf("payload = %q, want 7", res.Content)
	}
}

func TestInvokeUnknownExtraArgumentsPassThrough(t *testing.T) {
	d := newTestDispatcher(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"message":"Healthy"}`))
	})

	// Arguments outside the schema are not rejected.
	res := d.Invoke(context.Background(), "health_check", Arguments{"surprise": true})
	if res.IsError {
		t.Fatalf("extra arguments must not fail the call: %s", res.Content)
	}
}
