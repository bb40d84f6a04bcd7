package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"

	"github.com/drivescout/car-compare-api/config"
	"github.com/drivescout/car-compare-api/databases"
	"github.com/drivescout/car-compare-api/models"
)

// TestDrive exported for testing purposes
type TestDrive struct {
	DB    databases.TestDriveDatabase
	CarDB databases.CarDatabase
}

// CreateTestDriveHandler books a test drive. The referenced car must exist
// and the input must validate before anything is inserted.
func (t TestDrive) CreateTestDriveHandler(w http.ResponseWriter, r *http.Request) {
	var input models.TestDriveCreate
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		config.ErrorStatus("failed to decode request body", http.StatusBadRequest, w, err)
		return
	}

	if err := validate.Struct(input); err != nil {
		config.ErrorStatus("failed to validate request body", http.StatusBadRequest, w, err)
		return
	}

	zap.S().Debugf("car_id: %v", input.CarID)

	_, err := t.CarDB.FindOne(context.Background(), bson.M{"id": input.CarID})
	if err != nil {
		config.ErrorStatus("car not found", http.StatusNotFound, w, err)
		return
	}

	testDrive := models.NewTestDrive(input)
	_, err = t.DB.InsertOne(context.Background(), testDrive)
	if err != nil {
		config.ErrorStatus("failed to create test drive", http.StatusInternalServerError, w, err)
		return
	}

	b, err := json.Marshal(testDrive)
	if err != nil {
		config.ErrorStatus("failed to marshal response", http.StatusInternalServerError, w, err)
		return
	}
	w.WriteHeader(http.StatusCreated)
	w.Write(b)
}

// TestDriveHandler returns all test drive bookings
func (t TestDrive) TestDriveHandler(w http.ResponseWriter, r *http.Request) {
	limit64 := int64(carListLimit)
	dbResp, err := t.DB.Find(context.TODO(), bson.D{}, &options.FindOptions{Limit: &limit64})
	if err != nil {
		config.ErrorStatus("failed to get test drives", http.StatusInternalServerError, w, err)
		return
	}
	// Because the frontend requires that the data elements inside models.TestDrive exist, if
	// len == 0 then we will just return an empty data object
	if len(dbResp) == 0 {
		dbResp = []models.TestDrive{}
	}
	b, err := json.Marshal(dbResp)
	if err != nil {
		config.ErrorStatus("failed to marshal response", http.StatusInternalServerError, w, err)
		return
	}
	w.WriteHeader(http.StatusOK)
	w.Write(b)
}
