package exercise

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/kaliokagathoi/trainingApp/internal/utils"
)

// DefaultTolerance is the absolute pricing tolerance: answers within five
// cents of the true price count as correct.
const DefaultTolerance = 0.05

// Answer is one row of user input. Values arrive from the UI as strings,
// numbers or null, so both sides are decoded loosely and parsed here.
type Answer struct {
	Call interface{} `json:"call"`
	Put  interface{} `json:"put"`
}

// SideResult grades one submitted price. Difference is nil when the side was
// not attempted.
type SideResult struct {
	Attempted  bool     `json:"attempted"`
	Correct    bool     `json:"correct"`
	Difference *float64 `json:"difference"`
}

// RowResult pairs the true prices of a strike with the graded submissions.
type RowResult struct {
	Strike     float64    `json:"strike"`
	RealCall   float64    `json:"real_call"`
	RealPut    float64    `json:"real_put"`
	CallResult SideResult `json:"call_result"`
	PutResult  SideResult `json:"put_result"`
}

// Summary aggregates a graded exercise. Score is a percentage of attempted
// answers, 0 when nothing was attempted.
type Summary struct {
	TotalAttempted int     `json:"total_attempted"`
	TotalCorrect   int     `json:"total_correct"`
	Score          float64 `json:"score"`
}

// Grade compares user answers against the true ladder within the given
// absolute tolerance. Ladder rows are [call, strike, put] with an optional
// trailing parity entry, as echoed back by the UI. Unattempted sides do not
// count toward the score denominator.
func Grade(realLadder [][]float64, answers []Answer, tolerance float64) ([]RowResult, Summary, error) {
	if len(answers) != len(realLadder) {
		return nil, Summary{}, fmt.Errorf("answer count %d does not match ladder rows %d", len(answers), len(realLadder))
	}

	results := make([]RowResult, 0, len(realLadder))
	summary := Summary{}

	for i, row := range realLadder {
		if len(row) < 3 {
			return nil, Summary{}, fmt.Errorf("ladder row %d has %d entries, want call, strike and put", i, len(row))
		}
		realCall, strike, realPut := row[0], row[1], row[2]

		callResult, err := gradeSide(answers[i].Call, realCall, tolerance)
		if err != nil {
			return nil, Summary{}, fmt.Errorf("row %d call: %w", i, err)
		}
		putResult, err := gradeSide(answers[i].Put, realPut, tolerance)
		if err != nil {
			return nil, Summary{}, fmt.Errorf("row %d put: %w", i, err)
		}

		for _, side := range []SideResult{callResult, putResult} {
			if side.Attempted {
				summary.TotalAttempted++
			}
			if side.Correct {
				summary.TotalCorrect++
			}
		}

		results = append(results, RowResult{
			Strike:     strike,
			RealCall:   realCall,
			RealPut:    realPut,
			CallResult: callResult,
			PutResult:  putResult,
		})
	}

	if summary.TotalAttempted > 0 {
		summary.Score = utils.Round(float64(summary.TotalCorrect)/float64(summary.TotalAttempted)*100, 1)
	}

	return results, summary, nil
}

func gradeSide(submitted interface{}, real, tolerance float64) (SideResult, error) {
	value, attempted, err := parseSubmission(submitted)
	if err != nil {
		return SideResult{}, err
	}
	if !attempted {
		return SideResult{}, nil
	}

	diff := value - real
	rounded := utils.Round(diff, 3)
	return SideResult{
		Attempted:  true,
		Correct:    math.Abs(diff) <= tolerance,
		Difference: &rounded,
	}, nil
}

// parseSubmission accepts null, blank strings (unattempted), numeric strings
// and raw JSON numbers.
func parseSubmission(v interface{}) (float64, bool, error) {
	switch value := v.(type) {
	case nil:
		return 0, false, nil
	case float64:
		return value, true, nil
	case string:
		trimmed := strings.TrimSpace(value)
		if trimmed == "" {
			return 0, false, nil
		}
		parsed, err := strconv.ParseFloat(trimmed, 64)
		if err != nil {
			return 0, false, fmt.Errorf("invalid number %q", value)
		}
		return parsed, true, nil
	default:
		return 0, false, fmt.Errorf("unsupported answer type %T", v)
	}
}
