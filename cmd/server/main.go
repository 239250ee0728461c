package main

import (
	"net/http"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"

	"github.com/kaliokagathoi/trainingApp/internal/config"
	"github.com/kaliokagathoi/trainingApp/internal/handlers"
	"github.com/kaliokagathoi/trainingApp/internal/logger"
)

func main() {
	cfg := config.Load()

	if err := logger.InitWithConfig(cfg.Logging.LogLevel, cfg.Logging.LogFile); err != nil {
		log.Fatalf("Failed to initialize logging: %v", err)
	}
	log.Infof("Options ladder trainer starting - Port: %s", cfg.Port)
	log.Infof("Exercise defaults: %d strikes, simple p=%.2f, spreads p=%.2f, tolerance %.2f",
		cfg.Exercise.DefaultStrikes,
		cfg.Exercise.SimpleMissingProbability,
		cfg.Exercise.SpreadsMissingProbability,
		cfg.Exercise.Tolerance)

	ladderHandler := handlers.NewLadderHandler(cfg)

	// Setup router
	r := mux.NewRouter()

	// Serve static files (CSS, JS) - no rebuild needed
	r.PathPrefix("/static/").Handler(http.StripPrefix("/static/", http.FileServer(http.Dir("web/static/"))))

	// Main application endpoints
	r.HandleFunc("/", ladderHandler.HomeHandler).Methods("GET")
	r.HandleFunc("/api/generate_ladder", ladderHandler.GenerateLadderHandler).Methods("POST")
	r.HandleFunc("/api/check_answers", ladderHandler.CheckAnswersHandler).Methods("POST")

	log.Infof("Server starting on http://localhost:%s", cfg.Port)
	if err := http.ListenAndServe("0.0.0.0:"+cfg.Port, r); err != nil {
		log.Fatalf("Server failed to start: %v", err)
	}
}
