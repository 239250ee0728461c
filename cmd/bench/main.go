package main

import (
	"fmt"
	"math"
	"math/rand"
	"os"
	"time"

	"github.com/montanaflynn/stats"
	"github.com/olekukonko/tablewriter"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/kaliokagathoi/trainingApp/internal/ladder"
)

var benchCmd = &cobra.Command{
	Use:   "bench",
	Short: "Time repeated ladder generations and report latency statistics",
	Run: func(cmd *cobra.Command, args []string) {
		iterations, err := cmd.Flags().GetInt("iterations")
		if err != nil {
			log.Fatalf("error getting iterations: %v", err)
		}
		strikes, err := cmd.Flags().GetInt("strikes")
		if err != nil {
			log.Fatalf("error getting strikes: %v", err)
		}

		if err := runBench(iterations, strikes); err != nil {
			log.Fatalf("Error: %v", err)
		}
	},
}

func runBench(iterations, strikes int) error {
	fmt.Printf("Benchmarking %d iterations, %d strikes each...\n", iterations, strikes)

	gen := ladder.NewGenerator(rand.New(rand.NewSource(time.Now().UnixNano())))

	durations := make([]float64, 0, iterations)
	parityFailures := 0
	start := time.Now()

	for i := 0; i < iterations; i++ {
		iterStart := time.Now()
		result, err := gen.Generate(strikes)
		if err != nil {
			return err
		}
		durations = append(durations, float64(time.Since(iterStart).Microseconds())/1000.0)

		for _, row := range result.Rows {
			if math.Abs(row.ParityCheck) >= 0.01 {
				parityFailures++
			}
		}
	}

	total := time.Since(start)

	mean, err := stats.Mean(durations)
	if err != nil {
		return fmt.Errorf("failed to calculate mean: %v", err)
	}
	median, err := stats.Median(durations)
	if err != nil {
		return fmt.Errorf("failed to calculate median: %v", err)
	}
	p95, err := stats.Percentile(durations, 95)
	if err != nil {
		return fmt.Errorf("failed to calculate p95: %v", err)
	}
	sd, err := stats.StandardDeviation(durations)
	if err != nil {
		return fmt.Errorf("failed to calculate standard deviation: %v", err)
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Metric", "Value"})
	table.Append([]string{"Total", total.String()})
	table.Append([]string{"Mean", fmt.Sprintf("%.4f ms", mean)})
	table.Append([]string{"Median", fmt.Sprintf("%.4f ms", median)})
	table.Append([]string{"P95", fmt.Sprintf("%.4f ms", p95)})
	table.Append([]string{"StdDev", fmt.Sprintf("%.4f ms", sd)})
	table.Render()

	if parityFailures > 0 {
		fmt.Printf("Parity checks: %d rows over the 0.01 residual bound\n", parityFailures)
	} else {
		fmt.Println("Parity checks: all rows within the 0.01 residual bound")
	}

	return nil
}

func main() {
	benchCmd.Flags().Int("iterations", 1000, "number of ladders to generate")
	benchCmd.Flags().Int("strikes", 4, "strikes per ladder")

	if err := benchCmd.Execute(); err != nil {
		log.Fatalf("Error: %v", err)
	}
}
