package config

import (
	"encoding/json"
	"net/http"
	"os"

	"go.uber.org/zap"

	"github.com/crimtrack/criminal-records-api/models"
)

// Config holds the project config values
type Config struct {
	URL          string
	DatabaseName string
	Port         string
}

// New sets up all config related services
func New() *Config {

	//setup zap logger and replace default logger
	logger, err := setLogger(os.Getenv("APP_ENV"))
	if err != nil {
		logger = zap.NewExample()
	}
	defer logger.Sync()
	_ = zap.ReplaceGlobals(logger)

	dbName := os.Getenv("DB_NAME")
	if dbName == "" {
		dbName = "criminal_record"
	}
	port := os.Getenv("PORT")
	if port == "" {
		port = "5000"
	}

	return &Config{
		URL:          os.Getenv("MONGODB_URI"),
		DatabaseName: dbName,
		Port:         port,
	}

}

// setLogger picks the zap flavor for the given environment, falling back
// to the example logger for local runs
func setLogger(env string) (*zap.Logger, error) {
	switch env {
	case "development":
		return zap.NewDevelopment()
	case "production":
		return zap.NewProduction()
	default:
		return zap.NewExample(), nil
	}
}

// ErrorStatus is a useful function that will log, write http headers and body for a
// given message, status code and err
func ErrorStatus(message string, httpStatusCode int, w http.ResponseWriter, err error) {
	zap.S().With("error", err).Error(message)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(httpStatusCode)
	b, _ := json.Marshal(models.ErrorResponse{Error: message})
	w.Write(b)
}
