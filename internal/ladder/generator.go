package ladder

import (
	"errors"
	"math"
	"math/rand"
	"time"

	"github.com/kaliokagathoi/trainingApp/internal/pricing"
	"github.com/kaliokagathoi/trainingApp/internal/utils"
)

// ErrInvalidStrikeCount is returned when a ladder is requested with fewer
// than one strike.
var ErrInvalidStrikeCount = errors.New("ladder: number of strikes must be at least 1")

// Parameter ranges for the synthesized market scenario.
const (
	minStockPrice = 5.0
	maxStockPrice = 100.0
	minRate       = 0.02
	maxRate       = 0.06
	minExpiry     = 0.2
	maxExpiry     = 2.0
	minBaseVol    = 0.15
	maxBaseVol    = 0.40
	minInterest   = 0.1
	maxInterest   = 2.0
	volFloor      = 0.10
)

// Generator synthesizes randomized option ladders using closed-form
// Black-Scholes pricing. It owns its random source, so distinct generators
// can run concurrently; a single Generator is not safe for concurrent use.
type Generator struct {
	rng *rand.Rand
}

var _ Engine = (*Generator)(nil)

// New returns a Generator seeded from the wall clock.
func New() *Generator {
	return NewGenerator(rand.New(rand.NewSource(time.Now().UnixNano())))
}

// NewGenerator returns a Generator drawing from the given source. Tests pass
// a fixed-seed source to make ladders reproducible.
func NewGenerator(rng *rand.Rand) *Generator {
	return &Generator{rng: rng}
}

// Generate builds a ladder of numStrikes rows. Each call is priced with
// Black-Scholes under a moneyness-dependent volatility skew, floored at
// intrinsic value; the put is derived from put-call parity using the
// scenario's interest component. Both legs are rounded to cents before the
// parity residual is recomputed, so rows carry a small non-zero residual by
// construction.
func (g *Generator) Generate(numStrikes int) (*Result, error) {
	if numStrikes < 1 {
		return nil, ErrInvalidStrikeCount
	}

	stockPrice := g.uniform(minStockPrice, maxStockPrice)
	spacing := g.chooseSpacing(stockPrice)
	strikes := buildStrikes(stockPrice, spacing, numStrikes)

	r := g.uniform(minRate, maxRate)
	expiry := g.uniform(minExpiry, maxExpiry)
	baseSigma := g.uniform(minBaseVol, maxBaseVol)
	interest := utils.Round2(g.uniform(minInterest, maxInterest))

	rows := make([]Row, 0, numStrikes)
	for _, strike := range strikes {
		sigma := g.skewedVol(baseSigma, strike/stockPrice)

		call := pricing.CallPrice(stockPrice, strike, r, expiry, sigma)
		call = math.Max(call, math.Max(stockPrice-strike, 0))
		call = utils.Round2(call)

		// Put via parity: C - P = S - K + r/c.
		put := utils.Round2(call - stockPrice + strike - interest)

		parity := utils.Round4((call - put) - (stockPrice - strike + interest))

		rows = append(rows, Row{
			Call:        call,
			Strike:      strike,
			Put:         put,
			ParityCheck: parity,
		})
	}

	return &Result{
		Rows:              rows,
		StockPrice:        utils.Round2(stockPrice),
		InterestComponent: interest,
		Params: Params{
			RiskFreeRate: utils.Round2(r),
			TimeToExpiry: utils.Round2(expiry),
			Volatility:   utils.Round2(baseSigma),
		},
	}, nil
}

// chooseSpacing picks the strike increment for the price tier. Cheap stocks
// get $1 or $2 strikes, mid-priced stocks $5, expensive ones $5 or $10.
func (g *Generator) chooseSpacing(stockPrice float64) float64 {
	switch {
	case stockPrice < 10:
		return []float64{1, 2}[g.rng.Intn(2)]
	case stockPrice < 50:
		return 5
	default:
		return []float64{5, 10}[g.rng.Intn(2)]
	}
}

// buildStrikes lays out numStrikes strikes around the round-number strike
// nearest the stock price. If the grid would reach at or below zero it is
// shifted up whole spacing units so the lowest strike is exactly one spacing
// unit, keeping the strikes strictly ascending.
func buildStrikes(stockPrice, spacing float64, numStrikes int) []float64 {
	center := math.Round(stockPrice/spacing) * spacing
	lowest := center - float64(numStrikes/2)*spacing
	if lowest < spacing {
		center += spacing - lowest
	}

	strikes := make([]float64, numStrikes)
	for i := range strikes {
		strikes[i] = center + float64(i-numStrikes/2)*spacing
	}
	return strikes
}

// skewedVol applies a volatility smile: OTM puts (low strikes) trade richest,
// OTM calls somewhat rich, near-ATM strikes close to the base volatility.
// The band tests are ordered, so the first match wins.
func (g *Generator) skewedVol(baseSigma, moneyness float64) float64 {
	var adj float64
	switch {
	case moneyness < 0.95:
		adj = g.uniform(0.05, 0.15)
	case moneyness > 1.05:
		adj = g.uniform(0.03, 0.10)
	case moneyness < 0.98 || moneyness > 1.02:
		adj = g.uniform(0.02, 0.06)
	default:
		adj = g.uniform(-0.02, 0.02)
	}
	return math.Max(baseSigma+adj, volFloor)
}

func (g *Generator) uniform(lo, hi float64) float64 {
	return lo + g.rng.Float64()*(hi-lo)
}
