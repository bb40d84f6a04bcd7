package handlers

import (
	"context"
	"encoding/json"
	"io"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/drivescout/car-compare-api/config"
	"github.com/drivescout/car-compare-api/databases"
	"github.com/drivescout/car-compare-api/models"
)

// validate checks create inputs against their schema tags
var validate = validator.New()

// App stores the router and db connection, so it can be reused
type App struct {
	Router   *mux.Router
	Config   config.Config
	client   databases.ClientHelper
	dbHelper databases.DatabaseHelper
}

// New creates a new mux router and all the routes
func (a *App) New() *mux.Router {
	r := mux.NewRouter()

	c := Car{DB: databases.NewCarDatabase(a.dbHelper)}
	td := TestDrive{DB: databases.NewTestDriveDatabase(a.dbHelper), CarDB: databases.NewCarDatabase(a.dbHelper)}
	l := Location{}

	// healthchex
	r.HandleFunc("/health", healthCheckHandler)

	apiCreate := r.PathPrefix("/api").Subrouter()

	apiCreate.HandleFunc("/", rootHandler).Methods("GET")
	apiCreate.HandleFunc("/cars", c.CarsHandler).Methods("GET")
	apiCreate.HandleFunc("/cars", c.CreateCarHandler).Methods("POST")
	apiCreate.HandleFunc("/cars/{car_id}", c.CarByIDHandler).Methods("GET")
	apiCreate.HandleFunc("/makes", c.MakesHandler).Methods("GET")
	apiCreate.HandleFunc("/types", c.TypesHandler).Methods("GET")
	apiCreate.HandleFunc("/test-drive", td.CreateTestDriveHandler).Methods("POST")
	apiCreate.HandleFunc("/test-drive", td.TestDriveHandler).Methods("GET")
	apiCreate.HandleFunc("/locations", l.LocationsHandler).Methods("GET")

	return r
}

// Initialize is invoked by main to connect with the database and create a router
func (a *App) Initialize() error {

	client, err := databases.NewClient(&a.Config)
	if err != nil {
		// if we fail to create a new database client, then kill the pod
		zap.S().With(err).Error("failed to create new client")
		return err
	}
	a.client = client

	a.dbHelper = databases.NewDatabase(&a.Config, client)
	err = client.Connect()
	if err != nil {
		// if we fail to connect to the database, then kill the pod
		zap.S().With(err).Error("failed to connect to database")
		return err
	}
	zap.S().Info("car-compare-api has connected to the database")

	// initialize api router
	a.initializeRoutes()
	return nil
}

// Shutdown releases the database connection held since Initialize
func (a *App) Shutdown(ctx context.Context) error {
	if a.client == nil {
		return nil
	}
	return a.client.Disconnect(ctx)
}

func (a *App) initializeRoutes() {
	a.Router = a.New()
}

func rootHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	b, _ := json.Marshal(models.RootResponse{
		Message: "Car Comparison & Test Drive API",
	})
	_, _ = io.WriteString(w, string(b))
}

func healthCheckHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	b, _ := json.Marshal(models.HealthCheckResponse{
		Alive: true,
	})
	_, _ = io.WriteString(w, string(b))
}
