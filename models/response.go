package models

// HealthCheckResponse returns the health check response struct
type HealthCheckResponse struct {
	Alive bool `json:"alive"`
}

// RootResponse is the welcome message served at the API root
type RootResponse struct {
	Message string `json:"message"`
}

// MakesResponse wraps the sorted distinct makes
type MakesResponse struct {
	Makes []string `json:"makes"`
}

// TypesResponse wraps the sorted distinct body types
type TypesResponse struct {
	Types []string `json:"types"`
}
