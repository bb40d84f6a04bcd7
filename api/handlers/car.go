package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sort"
	"strconv"

	"github.com/gorilla/mux"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"

	"github.com/drivescout/car-compare-api/config"
	"github.com/drivescout/car-compare-api/databases"
	"github.com/drivescout/car-compare-api/models"
)

// carListLimit caps catalog list results, there is no pagination cursor
const carListLimit = 1000

// Car exported for testing purposes
type Car struct {
	DB databases.CarDatabase
}

// carQueryFromRequest parses the optional catalog filters off the URL
func carQueryFromRequest(r *http.Request) (databases.CarQuery, error) {
	var q databases.CarQuery
	params := r.URL.Query()
	if v := params.Get("make"); v != "" {
		q.Make = &v
	}
	if v := params.Get("type"); v != "" {
		q.Type = &v
	}
	if v := params.Get("year"); v != "" {
		year, err := strconv.Atoi(v)
		if err != nil {
			return q, fmt.Errorf("invalid year %q", v)
		}
		q.Year = &year
	}
	if v := params.Get("min_price"); v != "" {
		minPrice, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return q, fmt.Errorf("invalid min_price %q", v)
		}
		q.MinPrice = &minPrice
	}
	if v := params.Get("max_price"); v != "" {
		maxPrice, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return q, fmt.Errorf("invalid max_price %q", v)
		}
		q.MaxPrice = &maxPrice
	}
	return q, nil
}

// CarsHandler returns all cars matching the supplied filters
func (c Car) CarsHandler(w http.ResponseWriter, r *http.Request) {
	query, err := carQueryFromRequest(r)
	if err != nil {
		config.ErrorStatus("failed to parse query parameters", http.StatusBadRequest, w, err)
		return
	}
	limit64 := int64(carListLimit)
	dbResp, err := c.DB.Find(context.TODO(), query.Filter(), &options.FindOptions{Limit: &limit64})
	if err != nil {
		config.ErrorStatus("failed to get cars", http.StatusInternalServerError, w, err)
		return
	}
	// Because the frontend requires that the data elements inside models.Car exist, if
	// len == 0 then we will just return an empty data object
	if len(dbResp) == 0 {
		dbResp = []models.Car{}
	}
	b, err := json.Marshal(dbResp)
	if err != nil {
		config.ErrorStatus("failed to marshal response", http.StatusInternalServerError, w, err)
		return
	}
	w.WriteHeader(http.StatusOK)
	w.Write(b)
}

// CarByIDHandler returns a car by ID
func (c Car) CarByIDHandler(w http.ResponseWriter, r *http.Request) {
	carID := mux.Vars(r)["car_id"]

	zap.S().Debugf("car_id: %v", carID)

	dbResp, err := c.DB.FindOne(context.Background(), bson.M{"id": carID})
	if err != nil {
		config.ErrorStatus("car not found", http.StatusNotFound, w, err)
		return
	}

	b, err := json.Marshal(dbResp)
	if err != nil {
		config.ErrorStatus("failed to marshal response", http.StatusInternalServerError, w, err)
		return
	}
	w.WriteHeader(http.StatusOK)
	w.Write(b)
}

// CreateCarHandler creates a car
func (c Car) CreateCarHandler(w http.ResponseWriter, r *http.Request) {
	var input models.CarCreate
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		config.ErrorStatus("failed to decode request body", http.StatusBadRequest, w, err)
		return
	}

	if err := validate.Struct(input); err != nil {
		config.ErrorStatus("failed to validate request body", http.StatusBadRequest, w, err)
		return
	}

	car := models.NewCar(input)
	_, err := c.DB.InsertOne(context.Background(), car)
	if err != nil {
		config.ErrorStatus("failed to create car", http.StatusInternalServerError, w, err)
		return
	}

	b, err := json.Marshal(car)
	if err != nil {
		config.ErrorStatus("failed to marshal response", http.StatusInternalServerError, w, err)
		return
	}
	w.WriteHeader(http.StatusCreated)
	w.Write(b)
}

// MakesHandler returns the distinct car makes, sorted ascending
func (c Car) MakesHandler(w http.ResponseWriter, r *http.Request) {
	makes, err := c.DB.Distinct(context.TODO(), "make", bson.M{})
	if err != nil {
		config.ErrorStatus("failed to get makes", http.StatusInternalServerError, w, err)
		return
	}
	sort.Strings(makes)

	b, err := json.Marshal(models.MakesResponse{Makes: makes})
	if err != nil {
		config.ErrorStatus("failed to marshal response", http.StatusInternalServerError, w, err)
		return
	}
	w.WriteHeader(http.StatusOK)
	w.Write(b)
}

// TypesHandler returns the distinct car body types, sorted ascending
func (c Car) TypesHandler(w http.ResponseWriter, r *http.Request) {
	types, err := c.DB.Distinct(context.TODO(), "type", bson.M{})
	if err != nil {
		config.ErrorStatus("failed to get types", http.StatusInternalServerError, w, err)
		return
	}
	sort.Strings(types)

	b, err := json.Marshal(models.TypesResponse{Types: types})
	if err != nil {
		config.ErrorStatus("failed to marshal response", http.StatusInternalServerError, w, err)
		return
	}
	w.WriteHeader(http.StatusOK)
	w.Write(b)
}
