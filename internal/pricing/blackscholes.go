package pricing

import "math"

// CallPrice returns the Black-Scholes price of a European call option.
// s is the spot price, k the strike, r the annualized risk-free rate,
// t the time to expiry in years and sigma the annualized volatility.
func CallPrice(s, k, r, t, sigma float64) float64 {
	d1 := (math.Log(s/k) + (r+0.5*sigma*sigma)*t) / (sigma * math.Sqrt(t))
	d2 := d1 - sigma*math.Sqrt(t)
	return s*NormCDF(d1) - k*math.Exp(-r*t)*NormCDF(d2)
}

// PutPrice returns the Black-Scholes price of a European put option.
func PutPrice(s, k, r, t, sigma float64) float64 {
	d1 := (math.Log(s/k) + (r+0.5*sigma*sigma)*t) / (sigma * math.Sqrt(t))
	d2 := d1 - sigma*math.Sqrt(t)
	return k*math.Exp(-r*t)*NormCDF(-d2) - s*NormCDF(-d1)
}

// NormCDF is the standard normal cumulative distribution function.
func NormCDF(x float64) float64 {
	return 0.5 * (1 + math.Erf(x/math.Sqrt2))
}
