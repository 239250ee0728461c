package exercise

import (
	"fmt"
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kaliokagathoi/trainingApp/internal/ladder"
)

func fixtureRows() []ladder.Row {
	return []ladder.Row{
		{Call: 8.12, Strike: 45, Put: 0.45, ParityCheck: 0.0010},
		{Call: 4.46, Strike: 50, Put: 1.79, ParityCheck: -0.0021},
		{Call: 2.01, Strike: 55, Put: 4.34, ParityCheck: 0.0005},
		{Call: 0.73, Strike: 60, Put: 8.06, ParityCheck: 0.0013},
	}
}

func TestBuildSimpleRevealsExactlyOneSidePerRow(t *testing.T) {
	rows := fixtureRows()

	for seed := int64(1); seed <= 100; seed++ {
		for _, prob := range []float64{0.0, 0.3, 0.4, 1.0} {
			rng := rand.New(rand.NewSource(seed))
			ex := BuildSimple(rows, rng, prob)
			require.Len(t, ex.Rows, len(rows))

			for i, row := range ex.Rows {
				visible := 0
				if row.Call != nil {
					visible++
					assert.Equal(t, rows[i].Call, *row.Call)
				}
				if row.Put != nil {
					visible++
					assert.Equal(t, rows[i].Put, *row.Put)
				}
				assert.Equal(t, 1, visible, "seed %d prob %.1f row %d: exactly one side must be visible", seed, prob, i)
				assert.Equal(t, rows[i].Strike, row.Strike)
			}
		}
	}
}

func TestBuildSimpleDeterministicUnderFixedSeed(t *testing.T) {
	rows := fixtureRows()
	first := BuildSimple(rows, rand.New(rand.NewSource(9)), 0.4)
	second := BuildSimple(rows, rand.New(rand.NewSource(9)), 0.4)
	assert.Equal(t, first.Rows, second.Rows)
}

func TestBuildSimpleWireRows(t *testing.T) {
	rows := fixtureRows()
	ex := BuildSimple(rows, rand.New(rand.NewSource(3)), 0.4)

	wire := ex.WireRows()
	require.Len(t, wire, len(rows))
	for i, row := range wire {
		require.Len(t, row, 3)
		require.NotNil(t, row[1])
		assert.Equal(t, rows[i].Strike, *row[1])
		assert.True(t, (row[0] == nil) != (row[2] == nil), "row %d: one price side must be null", i)
	}
}

func TestExerciseIDFormat(t *testing.T) {
	rows := fixtureRows()
	first := BuildSimple(rows, rand.New(rand.NewSource(1)), 0.4)
	second := BuildSimple(rows, rand.New(rand.NewSource(1)), 0.4)

	assert.True(t, strings.HasPrefix(first.ID, "exc_"))
	assert.NotEqual(t, first.ID, second.ID)
}

func TestBuildSpreadsAnchorsLowestStrike(t *testing.T) {
	rows := fixtureRows()

	for seed := int64(1); seed <= 50; seed++ {
		rng := rand.New(rand.NewSource(seed))
		ex := BuildSpreads(rows, rng, 0.5)

		assert.Contains(t, ex.ExplicitPrices, "45_call")
		assert.Contains(t, ex.ExplicitPrices, "45_put")
		assert.Equal(t, []float64{45, 50, 55, 60}, ex.Strikes)
	}
}

func TestBuildSpreadsEveryHiddenPriceIsRecoverable(t *testing.T) {
	rows := fixtureRows()

	for seed := int64(1); seed <= 100; seed++ {
		rng := rand.New(rand.NewSource(seed))
		ex := BuildSpreads(rows, rng, 0.6)

		// Walk up from the anchors, resolving each strike either from the
		// explicit price or from the revealed vertical against the strike
		// below.
		for i, row := range rows {
			for _, side := range []string{SideCall, SidePut} {
				key := priceKey(row.Strike, side)
				if _, ok := ex.ExplicitPrices[key]; ok {
					assert.Equal(t, sidePrice(row, side), ex.ExplicitPrices[key])
					continue
				}

				require.Greater(t, i, 0, "seed %d: anchor strike may not be hidden", seed)
				spread, ok := ex.Spreads[spreadKey(rows[i-1].Strike, row.Strike, side)]
				require.True(t, ok, "seed %d: hidden %s at strike %.0f has no spread", seed, side, row.Strike)

				var reconstructed float64
				if side == SideCall {
					reconstructed = sidePrice(rows[i-1], side) - spread
				} else {
					reconstructed = sidePrice(rows[i-1], side) + spread
				}
				assert.InDelta(t, sidePrice(row, side), reconstructed, 1e-6,
					"seed %d: %s at strike %.0f not recoverable", seed, side, row.Strike)
			}
		}
	}
}

func TestBuildSpreadsKeyFormat(t *testing.T) {
	rows := fixtureRows()
	rng := rand.New(rand.NewSource(11))
	ex := BuildSpreads(rows, rng, 1.0)

	// With certain masking only the anchors stay explicit and every other
	// price hides behind an adjacent vertical.
	assert.Len(t, ex.ExplicitPrices, 2)
	assert.Len(t, ex.Spreads, 6)
	for _, side := range []string{SideCall, SidePut} {
		for i := 1; i < len(rows); i++ {
			key := fmt.Sprintf("%.0f_%.0f_%s", rows[i-1].Strike, rows[i].Strike, side)
			assert.Contains(t, ex.Spreads, key)
		}
	}
}

func TestFormatStrikeDropsTrailingZeros(t *testing.T) {
	assert.Equal(t, "50", formatStrike(50))
	assert.Equal(t, "2", formatStrike(2.0))
	assert.Equal(t, "7.5", formatStrike(7.5))
}
