package main

import (
	"fmt"
	"math"
	"math/rand"
	"os"
	"time"

	"github.com/olekukonko/tablewriter"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/kaliokagathoi/trainingApp/internal/ladder"
)

var ladderCmd = &cobra.Command{
	Use:   "ladder",
	Short: "Generate a randomized options ladder and print it",
	Run: func(cmd *cobra.Command, args []string) {
		strikes, err := cmd.Flags().GetInt("strikes")
		if err != nil {
			log.Fatalf("error getting strikes: %v", err)
		}
		seed, err := cmd.Flags().GetInt64("seed")
		if err != nil {
			log.Fatalf("error getting seed: %v", err)
		}
		if seed == 0 {
			seed = time.Now().UnixNano()
		}

		gen := ladder.NewGenerator(rand.New(rand.NewSource(seed)))
		result, err := gen.Generate(strikes)
		if err != nil {
			log.Fatalf("error generating ladder: %v", err)
		}

		printLadder(result)
	},
}

func printLadder(result *ladder.Result) {
	fmt.Printf("Stock Price: $%.2f\n", result.StockPrice)
	fmt.Printf("Interest Component (r/c): %.2f\n", result.InterestComponent)
	fmt.Printf("Risk-free rate: %.2f%%\n", result.Params.RiskFreeRate*100)
	fmt.Printf("Time to expiry: %.2f years\n", result.Params.TimeToExpiry)
	fmt.Printf("Volatility: %.1f%%\n", result.Params.Volatility*100)

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Call Price", "Strike", "Put Price", "Parity"})
	table.SetAlignment(tablewriter.ALIGN_RIGHT)

	for _, row := range result.Rows {
		parity := "OK"
		if math.Abs(row.ParityCheck) >= 0.01 {
			parity = "FAIL"
		}
		table.Append([]string{
			fmt.Sprintf("$%.2f", row.Call),
			fmt.Sprintf("$%.0f", row.Strike),
			fmt.Sprintf("$%.2f", row.Put),
			parity,
		})
	}

	table.Render()
}

func main() {
	ladderCmd.Flags().Int("strikes", 5, "number of strikes in the ladder")
	ladderCmd.Flags().Int64("seed", 0, "random seed, 0 seeds from the clock")

	if err := ladderCmd.Execute(); err != nil {
		log.Fatalf("Error: %v", err)
	}
}
