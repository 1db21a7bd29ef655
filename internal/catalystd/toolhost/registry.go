// Package toolhost exposes the Global API lookups as named tools.
//
// The Registry is the single source of truth for what callers may be
// offered: a fixed, ordered set of tool definitions with declared input
// schemas. The Dispatcher resolves invocations against it; the MCP server
// in server.go is just transport framing on top.
package toolhost

import (
	"context"
	"fmt"

	"github.com/spf13/cast"

	"github.com/openearth/catalyst/internal/catalystd/globalapi"
	"github.com/openearth/catalyst/pkg/utils/json"
)

// ParamType enumerates the schema types a tool parameter may declare.
type ParamType string

const (
	TypeString  ParamType = "string"
	TypeInteger ParamType = "integer"
	TypeBoolean ParamType = "boolean"
)

// Param declares one input parameter of a tool.
type Param struct {
	Name        string
	Type        ParamType
	Description string
	Required    bool
}

// Arguments is the untyped argument bundle a caller supplies. Values arrive
// however the model serialized them, so accessors coerce loosely.
type Arguments map[string]interface{}

// String returns the argument coerced to string, or def when absent.
func (a Arguments) String(key, def string) string {
	v, ok := a[key]
	if !ok || v == nil {
		return def
	}
	return cast.ToString(v)
}

// Bool returns the argument coerced to bool, or def when absent.
func (a Arguments) Bool(key string, def bool) bool {
	v, ok := a[key]
	if !ok || v == nil {
		return def
	}
	return cast.ToBool(v)
}

// Handler executes a tool against the adapter and returns the serialized
// payload text.
type Handler func(ctx context.Context, args Arguments) (string, error)

// Definition is one registered tool.
type Definition struct {
	Name        string
	Description string
	Params      []Param
	Handler     Handler
}

// Registry holds the fixed tool set. Static for the process lifetime.
type Registry struct {
	defs   []*Definition
	byName map[string]*Definition
}

// NewRegistry builds the full tool set over the given adapter.
func NewRegistry(api *globalapi.Client) *Registry {
	r := &Registry{byName: make(map[string]*Definition)}
	r.registerAll(api)
	return r
}

// List returns the definitions in registration order.
func (r *Registry) List() []*Definition {
	out := make([]*Definition, len(r.defs))
	copy(out, r.defs)
	return out
}

// Get resolves a tool by name.
func (r *Registry) Get(name string) (*Definition, bool) {
	def, ok := r.byName[name]
	return def, ok
}

func (r *Registry) add(def *Definition) {
	if _, dup := r.byName[def.Name]; dup {
		panic(fmt.Sprintf("toolhost: duplicate tool %q", def.Name))
	}
	r.defs = append(r.defs, def)
	r.byName[def.Name] = def
}

func (r *Registry) registerAll(api *globalapi.Client) {
	r.add(&Definition{
		Name:        "health_check",
		Description: "Check the health of the CityCatalyst Global API service. Tests the database connection and returns service status.",
		Handler: func(ctx context.Context, _ Arguments) (string, error) {
			out, err := api.Health(ctx)
			if err != nil {
				return "", err
			}
			return json.MarshalString(out)
		},
	})

	r.add(&Definition{
		Name:        "get_city_emissions",
		Description: "Get total CO2eq (100yr) emissions for a city from a datasource, for one year and GPC reference number.",
		Params: []Param{
			{Name: "source", Type: TypeString, Description: `Data source, e.g. "SEEG"`, Required: true},
			{Name: "city", Type: TypeString, Description: `City identifier, e.g. "BR SER"`, Required: true},
			{Name: "year", Type: TypeString, Description: `Year, e.g. "2022"`, Required: true},
			{Name: "gpc_reference_number", Type: TypeString, Description: `GPC reference number, e.g. "II.1.1"`, Required: true},
			{Name: "gwp", Type: TypeString, Description: `Global Warming Potential standard (default "ar5")`},
		},
		Handler: func(ctx context.Context, args Arguments) (string, error) {
			return api.CityEmissions(ctx,
				args.String("source", ""),
				args.String("city", ""),
				args.String("year", ""),
				args.String("gpc_reference_number", ""),
				args.String("gwp", globalapi.DefaultGWP),
			)
		},
	})

	r.add(&Definition{
		Name:        "get_city_area",
		Description: "Get the boundary area of a city by its UN/LOCODE, in square kilometers.",
		Params: []Param{
			{Name: "locode", Type: TypeString, Description: "Unique identifier (UN/LOCODE) for the city", Required: true},
		},
		Handler: func(ctx context.Context, args Arguments) (string, error) {
			out, err := api.CityArea(ctx, args.String("locode", ""))
			if err != nil {
				return "", err
			}
			return json.MarshalString(out)
		},
	})

	r.add(&Definition{
		Name:        "get_catalogue",
		Description: "Get the full datasource catalogue. Pass format=csv for raw CSV text instead of JSON.",
		Params: []Param{
			{Name: "format", Type: TypeString, Description: `Optional response format, e.g. "csv"`},
		},
		Handler: func(ctx context.Context, args Arguments) (string, error) {
			return api.CatalogueRaw(ctx, args.String("format", ""))
		},
	})

	r.add(&Definition{
		Name:        "get_cities_by_country",
		Description: "List the cities (locodes) known for an ISO alpha-2 country code.",
		Params: []Param{
			{Name: "country_code", Type: TypeString, Description: `ISO alpha-2 country code, e.g. "BR"`, Required: true},
		},
		Handler: func(ctx context.Context, args Arguments) (string, error) {
			out, err := api.CitiesByCountry(ctx, args.String("country_code", ""))
			if err != nil {
				return "", err
			}
			return json.MarshalString(out)
		},
	})

	r.add(&Definition{
		Name:        "list_country_codes",
		Description: "Derive the sorted set of country codes present in the catalogue.",
		Params: []Param{
			{Name: "prefer_iso2", Type: TypeBoolean, Description: "Keep only two-letter codes (default true)"},
		},
		Handler: func(ctx context.Context, args Arguments) (string, error) {
			codes, err := api.CountryCodes(ctx, args.Bool("prefer_iso2", true))
			if err != nil {
				return "", err
			}
			return json.MarshalString(codes)
		},
	})

	r.add(&Definition{
		Name:        "get_gpc_reference_numbers",
		Description: "List the unique GPC reference numbers covered by a datasource, sorted alphabetically.",
		Params: []Param{
			{Name: "source", Type: TypeString, Description: `Data source name, e.g. "SEEG" or "SEEGv2023"`, Required: true},
		},
		Handler: func(ctx context.Context, args Arguments) (string, error) {
			refs, err := api.GPCReferenceNumbersBySource(ctx, args.String("source", ""))
			if err != nil {
				return "", err
			}
			return json.MarshalString(refs)
		},
	})

	r.add(&Definition{
		Name:        "list_datasources",
		Description: "List catalogue datasources with key metadata, optionally filtered by a case-insensitive substring.",
		Params: []Param{
			{Name: "filter", Type: TypeString, Description: "Optional filter over publisher id, datasource name and API endpoint"},
		},
		Handler: func(ctx context.Context, args Arguments) (string, error) {
			list, err := api.ListDatasources(ctx, args.String("filter", ""))
			if err != nil {
				return "", err
			}
			return json.MarshalString(list)
		},
	})

	r.add(&Definition{
		Name:        "get_source_years",
		Description: "Get the year coverage (start, end, latest accounting year) for a datasource.",
		Params: []Param{
			{Name: "source", Type: TypeString, Description: "Source identifier matched against the catalogue", Required: true},
		},
		Handler: func(ctx context.Context, args Arguments) (string, error) {
			cov, err := api.SourceYears(ctx, args.String("source", ""))
			if err != nil {
				return "", err
			}
			if cov == nil {
				// No match is an empty result, not a failure.
				return "null", nil
			}
			return json.MarshalString(cov)
		},
	})
}
