package pricing

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCallPriceKnownValue(t *testing.T) {
	// Classic textbook case: S=100, K=100, r=5%, T=1y, sigma=20% -> C ~ 10.4506
	price := CallPrice(100, 100, 0.05, 1.0, 0.20)
	assert.InDelta(t, 10.4506, price, 0.001)
}

func TestPutPriceKnownValue(t *testing.T) {
	// Same inputs, put side -> P ~ 5.5735
	price := PutPrice(100, 100, 0.05, 1.0, 0.20)
	assert.InDelta(t, 5.5735, price, 0.001)
}

func TestPutCallParity(t *testing.T) {
	// C - P = S - K*exp(-rT) must hold for any shared inputs
	cases := []struct {
		s, k, r, t, sigma float64
	}{
		{100, 100, 0.05, 1.0, 0.20},
		{52.3, 50, 0.03, 0.5, 0.25},
		{8.7, 10, 0.06, 1.8, 0.35},
		{95, 60, 0.02, 0.2, 0.15},
	}

	for _, tc := range cases {
		call := CallPrice(tc.s, tc.k, tc.r, tc.t, tc.sigma)
		put := PutPrice(tc.s, tc.k, tc.r, tc.t, tc.sigma)
		expected := tc.s - tc.k*math.Exp(-tc.r*tc.t)
		assert.InDelta(t, expected, call-put, 1e-9, "parity failed for S=%.2f K=%.2f", tc.s, tc.k)
	}
}

func TestCallPriceDeepInTheMoney(t *testing.T) {
	// Deep ITM call converges to the forward intrinsic value S - K*exp(-rT)
	price := CallPrice(100, 5, 0.05, 1.0, 0.20)
	assert.InDelta(t, 100-5*math.Exp(-0.05), price, 0.001)
}

func TestCallPriceDeepOutOfTheMoney(t *testing.T) {
	price := CallPrice(5, 100, 0.05, 0.5, 0.20)
	assert.Less(t, price, 1e-6)
	assert.GreaterOrEqual(t, price, 0.0)
}

func TestNormCDF(t *testing.T) {
	assert.InDelta(t, 0.5, NormCDF(0), 1e-12)
	assert.InDelta(t, 0.8413, NormCDF(1), 0.0001)
	assert.InDelta(t, 0.1587, NormCDF(-1), 0.0001)
	assert.InDelta(t, 0.9772, NormCDF(2), 0.0001)
	assert.InDelta(t, 1.0, NormCDF(8), 1e-9)
}
