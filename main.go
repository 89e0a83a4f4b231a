package main

import (
	"fmt"
	"log"
	"net/http"
	"os"

	"go.uber.org/zap"

	"github.com/crimtrack/criminal-records-api/api/handlers"
	"github.com/crimtrack/criminal-records-api/config"
)

func main() {
	a := handlers.App{}
	a.Config = *config.New()

	if a.Config.URL == "" {
		zap.S().Error("MONGODB_URI not set")
		os.Exit(1)
	}

	if err := a.Initialize(); err != nil {
		// a broken store is fatal, do not serve without it
		zap.S().With("error", err).Error("failed to initialize")
		os.Exit(1)
	}

	zap.S().Infow("criminal-records-api is up and running",
		"port", a.Config.Port,
	)
	log.Fatal(http.ListenAndServe(fmt.Sprintf(":%v", a.Config.Port), a.Router))
}
