package globalapi

// Catalogue is the parsed /api/v0/catalogue response.
type Catalogue struct {
	Datasources []CatalogueEntry `json:"datasources"`
}

// CatalogueEntry is a single datasource record in the catalogue. Only the
// fields the derivations need are typed; everything else is dropped on decode.
type CatalogueEntry struct {
	PublisherID          string `json:"publisher_id"`
	DatasourceName       string `json:"datasource_name"`
	GPCReferenceNumber   string `json:"gpc_reference_number"`
	StartYear            int    `json:"start_year"`
	EndYear              int    `json:"end_year"`
	LatestAccountingYear int    `json:"latest_accounting_year"`
	SpatialResolution    string `json:"spatial_resolution"`
	GeographicalLocation string `json:"geographical_location"`
	APIEndpoint          string `json:"api_endpoint"`
}

// DatasourceSummary is the projection returned by ListDatasources.
type DatasourceSummary struct {
	PublisherID          string `json:"publisher_id"`
	DatasourceName       string `json:"datasource_name"`
	GPCReferenceNumber   string `json:"gpc_reference_number,omitempty"`
	StartYear            int    `json:"start_year,omitempty"`
	EndYear              int    `json:"end_year,omitempty"`
	LatestAccountingYear int    `json:"latest_accounting_year,omitempty"`
	SpatialResolution    string `json:"spatial_resolution,omitempty"`
	GeographicalLocation string `json:"geographical_location,omitempty"`
	APIEndpoint          string `json:"api_endpoint,omitempty"`
}

// YearCoverage is the projection returned by SourceYears.
type YearCoverage struct {
	PublisherID          string `json:"publisher_id"`
	DatasourceName       string `json:"datasource_name"`
	GPCReferenceNumber   string `json:"gpc_reference_number,omitempty"`
	StartYear            int    `json:"start_year,omitempty"`
	EndYear              int    `json:"end_year,omitempty"`
	LatestAccountingYear int    `json:"latest_accounting_year,omitempty"`
	GeographicalLocation string `json:"geographical_location,omitempty"`
}

func summaryOf(e CatalogueEntry) DatasourceSummary {
	return DatasourceSummary{
		PublisherID:          e.PublisherID,
		DatasourceName:       e.DatasourceName,
		GPCReferenceNumber:   e.GPCReferenceNumber,
		StartYear:            e.StartYear,
		EndYear:              e.EndYear,
		LatestAccountingYear: e.LatestAccountingYear,
		SpatialResolution:    e.SpatialResolution,
		GeographicalLocation: e.GeographicalLocation,
		APIEndpoint:          e.APIEndpoint,
	}
}

func coverageOf(e CatalogueEntry) *YearCoverage {
	return &YearCoverage{
		PublisherID:          e.PublisherID,
		DatasourceName:       e.DatasourceName,
		GPCReferenceNumber:   e.GPCReferenceNumber,
		StartYear:            e.StartYear,
		EndYear:              e.EndYear,
		LatestAccountingYear: e.LatestAccountingYear,
		GeographicalLocation: e.GeographicalLocation,
	}
}
