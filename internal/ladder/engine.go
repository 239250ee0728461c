package ladder

// Engine produces priced option ladders. The web layer and the CLIs only
// depend on this interface, so an alternative pricing backend can be swapped
// in without touching the callers.
type Engine interface {
	Generate(numStrikes int) (*Result, error)
}

// Row is one rung of the ladder: a call and a put struck at the same level,
// plus the put-call parity residual left over after rounding both legs.
type Row struct {
	Call        float64 `json:"call"`
	Strike      float64 `json:"strike"`
	Put         float64 `json:"put"`
	ParityCheck float64 `json:"parity_check"`
}

// Params records the Black-Scholes inputs behind a generated ladder.
type Params struct {
	RiskFreeRate float64 `json:"risk_free_rate"`
	TimeToExpiry float64 `json:"time_to_expiry"`
	Volatility   float64 `json:"volatility"`
}

// Result is a complete priced ladder together with the market scenario that
// produced it. Rows are ordered by ascending strike.
type Result struct {
	Rows              []Row   `json:"rows"`
	StockPrice        float64 `json:"stock_price"`
	InterestComponent float64 `json:"r_c"`
	Params            Params  `json:"params"`
}

// WireRows flattens the ladder into the [call, strike, put, parity] rows the
// web UI consumes.
func (r *Result) WireRows() [][]float64 {
	rows := make([][]float64, len(r.Rows))
	for i, row := range r.Rows {
		rows[i] = []float64{row.Call, row.Strike, row.Put, row.ParityCheck}
	}
	return rows
}
