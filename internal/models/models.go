package models

import (
	"github.com/kaliokagathoi/trainingApp/internal/exercise"
)

// GenerateLadderRequest asks for a fresh exercise. NumStrikes falls back to
// the configured default when zero.
type GenerateLadderRequest struct {
	NumStrikes int  `json:"num_strikes"`
	UseSpreads bool `json:"use_spreads"`
}

// GenerateLadderResponse carries a new exercise to the UI. Exactly one of
// ExerciseLadder (simple mode) or ExerciseData (spreads mode) is set.
type GenerateLadderResponse struct {
	Success        bool                      `json:"success"`
	ExerciseID     string                    `json:"exercise_id"`
	ExerciseType   string                    `json:"exercise_type"`
	RealLadder     [][]float64               `json:"real_ladder"`
	ExerciseLadder [][]*float64              `json:"exercise_ladder,omitempty"`
	ExerciseData   *exercise.SpreadsExercise `json:"exercise_data,omitempty"`
	StockPrice     float64                   `json:"stock_price"`
	RC             float64                   `json:"r_c"`
}

// CheckAnswersRequest echoes the true ladder back along with the user's
// submissions, one entry per row.
type CheckAnswersRequest struct {
	RealLadder   [][]float64       `json:"real_ladder"`
	UserAnswers  []exercise.Answer `json:"user_answers"`
	ExerciseType string            `json:"exercise_type"`
}

// CheckAnswersResponse reports per-row grading plus the aggregate score.
type CheckAnswersResponse struct {
	Success bool                 `json:"success"`
	Results []exercise.RowResult `json:"results"`
	Summary exercise.Summary     `json:"summary"`
}

// ErrorResponse is the structured failure shape every endpoint returns.
type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}
