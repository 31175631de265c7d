package server

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/research4me/paper-analyzer/internal/application"
	"github.com/research4me/paper-analyzer/internal/transport/middleware"
)

// CreateHandler creates the main HTTP handler for the application
func CreateHandler() (http.Handler, error) {
	// Create application (handles all DI and business logic)
	app, err := application.New()
	if err != nil {
		return nil, err
	}

	return Routes(app), nil
}

// Routes wires the router for an already-built application.
func Routes(app *application.App) http.Handler {
	r := mux.NewRouter()
	r.Use(middleware.CORS)
	r.Use(middleware.Logging)

	r.HandleFunc("/health", healthCheck).Methods("GET")
	r.Handle("/analyze", app.AnalyzeHandler).Methods("POST", "OPTIONS")

	return r
}

// healthCheck provides a liveness endpoint
func healthCheck(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}
