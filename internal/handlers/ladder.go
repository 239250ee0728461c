package handlers

import (
	"encoding/json"
	"fmt"
	"html/template"
	"math/rand"
	"net/http"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/kaliokagathoi/trainingApp/internal/config"
	"github.com/kaliokagathoi/trainingApp/internal/exercise"
	"github.com/kaliokagathoi/trainingApp/internal/ladder"
	"github.com/kaliokagathoi/trainingApp/internal/models"
)

// LadderHandler handles exercise generation and grading - HTTP layer only,
// all pricing lives in the ladder package.
type LadderHandler struct {
	config       *config.Config
	newEngine    func(rng *rand.Rand) ladder.Engine
	templatePath string
}

// NewLadderHandler creates a handler backed by the closed-form generator.
// Every request gets its own engine and random source, so handlers can serve
// concurrent requests without sharing RNG state.
func NewLadderHandler(cfg *config.Config) *LadderHandler {
	return &LadderHandler{
		config: cfg,
		newEngine: func(rng *rand.Rand) ladder.Engine {
			return ladder.NewGenerator(rng)
		},
		templatePath: "web/templates/index.html",
	}
}

// HomeHandler serves the trainer page
func (h *LadderHandler) HomeHandler(w http.ResponseWriter, r *http.Request) {
	tmpl, err := template.ParseFiles(h.templatePath)
	if err != nil {
		log.Errorf("Failed to parse index template: %v", err)
		http.Error(w, "template not found", http.StatusInternalServerError)
		return
	}
	if err := tmpl.Execute(w, nil); err != nil {
		log.Errorf("Failed to render index template: %v", err)
	}
}

// GenerateLadderHandler builds a new exercise: a fresh priced ladder plus a
// masked copy for the user to fill in.
func (h *LadderHandler) GenerateLadderHandler(w http.ResponseWriter, r *http.Request) {
	var req models.GenerateLadderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, fmt.Sprintf("Error generating ladder: invalid request body: %v", err))
		return
	}

	numStrikes := req.NumStrikes
	if numStrikes == 0 {
		numStrikes = h.config.Exercise.DefaultStrikes
	}

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	result, err := h.newEngine(rng).Generate(numStrikes)
	if err != nil {
		h.writeError(w, fmt.Sprintf("Error generating ladder: %v", err))
		return
	}

	resp := models.GenerateLadderResponse{
		Success:    true,
		RealLadder: result.WireRows(),
		StockPrice: result.StockPrice,
		RC:         result.InterestComponent,
	}

	if req.UseSpreads {
		ex := exercise.BuildSpreads(result.Rows, rng, h.config.Exercise.SpreadsMissingProbability)
		resp.ExerciseID = ex.ID
		resp.ExerciseType = "spreads"
		resp.ExerciseData = ex
		log.Debugf("Generated spreads exercise %s: %d strikes, %d explicit, %d spreads",
			ex.ID, numStrikes, len(ex.ExplicitPrices), len(ex.Spreads))
	} else {
		ex := exercise.BuildSimple(result.Rows, rng, h.config.Exercise.SimpleMissingProbability)
		resp.ExerciseID = ex.ID
		resp.ExerciseType = "simple"
		resp.ExerciseLadder = ex.WireRows()
		log.Debugf("Generated simple exercise %s: %d strikes, stock %.2f", ex.ID, numStrikes, result.StockPrice)
	}

	h.writeJSON(w, resp)
}

// CheckAnswersHandler grades user submissions against the true ladder.
func (h *LadderHandler) CheckAnswersHandler(w http.ResponseWriter, r *http.Request) {
	var req models.CheckAnswersRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, fmt.Sprintf("Error checking answers: invalid request body: %v", err))
		return
	}
	if len(req.RealLadder) == 0 {
		h.writeError(w, "Error checking answers: real_ladder is required")
		return
	}

	results, summary, err := exercise.Grade(req.RealLadder, req.UserAnswers, h.config.Exercise.Tolerance)
	if err != nil {
		h.writeError(w, fmt.Sprintf("Error checking answers: %v", err))
		return
	}

	log.Debugf("Graded %s exercise: %d/%d correct, score %.1f",
		req.ExerciseType, summary.TotalCorrect, summary.TotalAttempted, summary.Score)

	h.writeJSON(w, models.CheckAnswersResponse{
		Success: true,
		Results: results,
		Summary: summary,
	})
}

func (h *LadderHandler) writeJSON(w http.ResponseWriter, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Errorf("Failed to encode response: %v", err)
	}
}

// writeError returns the structured failure object the UI expects. Failures
// are terminal per request; the HTTP status stays 200 and the body carries
// success=false, matching the frontend contract.
func (h *LadderHandler) writeError(w http.ResponseWriter, message string) {
	log.Warnf("%s", message)
	h.writeJSON(w, models.ErrorResponse{Success: false, Error: message})
}
