package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/drivescout/car-compare-api/config"
	"github.com/drivescout/car-compare-api/models"
)

// Location exported for testing purposes
type Location struct{}

// LocationsHandler returns the fixed set of dealership locations
func (l Location) LocationsHandler(w http.ResponseWriter, r *http.Request) {
	b, err := json.Marshal(models.Locations())
	if err != nil {
		config.ErrorStatus("failed to marshal response", http.StatusInternalServerError, w, err)
		return
	}
	w.WriteHeader(http.StatusOK)
	w.Write(b)
}
