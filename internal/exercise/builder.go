package exercise

import (
	"math/rand"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/kaliokagathoi/trainingApp/internal/ladder"
	"github.com/kaliokagathoi/trainingApp/internal/utils"
)

// Option sides as they appear in exercise keys sent to the UI.
const (
	SideCall = "call"
	SidePut  = "put"
)

// SimpleRow is one quiz row: exactly one of Call/Put is nil and must be
// recovered by the user from put-call parity.
type SimpleRow struct {
	Call   *float64
	Strike float64
	Put    *float64
}

// SimpleExercise is a ladder with one side of every row blanked out.
type SimpleExercise struct {
	ID   string
	Rows []SimpleRow
}

// WireRows flattens the exercise into the [call|null, strike, put|null]
// triples the UI renders.
func (e *SimpleExercise) WireRows() [][]*float64 {
	rows := make([][]*float64, len(e.Rows))
	for i, row := range e.Rows {
		strike := row.Strike
		rows[i] = []*float64{row.Call, &strike, row.Put}
	}
	return rows
}

// SpreadsExercise hides some prices entirely; the user reconstructs them from
// the revealed vertical spreads between adjacent strikes. ExplicitPrices is
// keyed "{strike}_{side}", Spreads "{loStrike}_{hiStrike}_{side}".
type SpreadsExercise struct {
	ID             string             `json:"-"`
	ExplicitPrices map[string]float64 `json:"explicit_prices"`
	Spreads        map[string]float64 `json:"spreads"`
	Strikes        []float64          `json:"strikes"`
}

// BuildSimple masks a priced ladder into a one-price-per-row quiz. Each side
// is first dropped independently with the given missing probability; rows
// that end up with both or neither side visible are resolved by a fair coin,
// so every row reveals exactly one price.
func BuildSimple(rows []ladder.Row, rng *rand.Rand, missingProb float64) *SimpleExercise {
	out := &SimpleExercise{
		ID:   newExerciseID(),
		Rows: make([]SimpleRow, 0, len(rows)),
	}

	for _, row := range rows {
		hideCall := rng.Float64() < missingProb
		hidePut := rng.Float64() < missingProb
		if hideCall == hidePut {
			// Both hidden or both visible: pick one side to disclose.
			hideCall = rng.Float64() < 0.5
			hidePut = !hideCall
		}

		masked := SimpleRow{Strike: row.Strike}
		if !hideCall {
			call := row.Call
			masked.Call = &call
		}
		if !hidePut {
			put := row.Put
			masked.Put = &put
		}
		out.Rows = append(out.Rows, masked)
	}

	return out
}

// BuildSpreads masks a priced ladder into a spreads quiz. Each price is
// hidden with the given missing probability, except the lowest strike's call
// and put which always stay explicit; every hidden price gets a revealed
// vertical spread against the strike below it, so the full ladder remains
// recoverable by walking up from the anchors.
func BuildSpreads(rows []ladder.Row, rng *rand.Rand, missingProb float64) *SpreadsExercise {
	out := &SpreadsExercise{
		ID:             newExerciseID(),
		ExplicitPrices: make(map[string]float64),
		Spreads:        make(map[string]float64),
		Strikes:        make([]float64, 0, len(rows)),
	}

	for _, row := range rows {
		out.Strikes = append(out.Strikes, row.Strike)
	}

	for _, side := range []string{SideCall, SidePut} {
		for i, row := range rows {
			price := sidePrice(row, side)
			if i == 0 || rng.Float64() >= missingProb {
				out.ExplicitPrices[priceKey(row.Strike, side)] = price
				continue
			}

			lo, hi := rows[i-1], row
			var spread float64
			if side == SideCall {
				// Call debit vertical: long the lower strike.
				spread = utils.Round2(lo.Call - hi.Call)
			} else {
				// Put debit vertical: long the higher strike.
				spread = utils.Round2(hi.Put - lo.Put)
			}
			out.Spreads[spreadKey(lo.Strike, hi.Strike, side)] = spread
		}
	}

	return out
}

func sidePrice(row ladder.Row, side string) float64 {
	if side == SideCall {
		return row.Call
	}
	return row.Put
}

func priceKey(strike float64, side string) string {
	return formatStrike(strike) + "_" + side
}

func spreadKey(lo, hi float64, side string) string {
	return formatStrike(lo) + "_" + formatStrike(hi) + "_" + side
}

// formatStrike renders strikes without a trailing ".0" so keys match the
// integer strikes the grid produces.
func formatStrike(strike float64) string {
	return strconv.FormatFloat(strike, 'f', -1, 64)
}

func newExerciseID() string {
	return "exc_" + strings.ReplaceAll(uuid.New().String(), "-", "")
}
