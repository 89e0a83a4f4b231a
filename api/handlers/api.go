package handlers

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/crimtrack/criminal-records-api/api"
	"github.com/crimtrack/criminal-records-api/config"
	"github.com/crimtrack/criminal-records-api/databases"
	"github.com/crimtrack/criminal-records-api/models"
)

// App stores the router and db connection, so it can be reused
type App struct {
	Router   *mux.Router
	Config   config.Config
	dbHelper databases.DatabaseHelper
}

// New creates a new mux router and all the routes
func (a *App) New() *mux.Router {
	r := mux.NewRouter()

	o := Officer{DB: databases.NewOfficerDatabase(a.dbHelper)}
	rec := Record{DB: databases.NewRecordDatabase(a.dbHelper)}

	r.HandleFunc("/", indexHandler).Methods(http.MethodGet)
	r.HandleFunc("/health", healthCheckHandler).Methods(http.MethodGet)

	r.Handle("/register", http.HandlerFunc(o.RegisterHandler)).Methods(http.MethodPost, http.MethodOptions)
	r.Handle("/login", http.HandlerFunc(o.LoginHandler)).Methods(http.MethodPost, http.MethodOptions)

	r.Handle("/getRecords", http.HandlerFunc(rec.RecordsHandler)).Methods(http.MethodGet, http.MethodOptions)
	r.Handle("/addRecord", http.HandlerFunc(rec.AddRecordHandler)).Methods(http.MethodPost, http.MethodOptions)
	r.Handle("/deleteRecord", http.HandlerFunc(rec.DeleteRecordHandler)).Methods(http.MethodDelete, http.MethodOptions)

	r.NotFoundHandler = http.HandlerFunc(notFoundHandler)

	r.Use(mux.CORSMethodMiddleware(r))
	r.Use(api.CORS)
	r.Use(api.RequestLogger)

	return r
}

// Initialize is invoked by main to connect with the database and create a router
func (a *App) Initialize() error {

	client, err := databases.NewClient(&a.Config)
	if err != nil {
		zap.S().With("error", err).Error("failed to create new client")
		return err
	}

	a.dbHelper = databases.NewDatabase(&a.Config, client)
	err = client.Connect()
	if err != nil {
		zap.S().With("error", err).Error("failed to connect to database")
		return err
	}
	if err = client.Ping(); err != nil {
		zap.S().With("error", err).Error("failed to ping database")
		return err
	}
	zap.S().Info("criminal-records-api has connected to the database")

	// initialize api router
	a.initializeRoutes()
	return nil

}

func (a *App) initializeRoutes() {
	a.Router = a.New()
}

func indexHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = io.WriteString(w, "API is running. Welcome to Police App!")
}

func healthCheckHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	b, _ := json.Marshal(models.HealthCheckResponse{
		Alive: true,
	})
	_, _ = w.Write(b)
}

func notFoundHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusNotFound)
	b, _ := json.Marshal(models.ErrorResponse{Error: "Not found"})
	_, _ = w.Write(b)
}
