package cmd

import (
	"fmt"
	"math/rand/v2"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/irt-sim/irt-sim/irt"
)

var (
	// CLI flags for the simulation design
	seed        int64     // Seed for theta sampling and response draws
	logLevel    string    // Log verbosity level
	respondents int       // Number of simulated respondents
	model       string    // Model kind (rasch, 2pl, 3pl, pcm, gpcm)
	alphasFlag  []float64 // Per-item discrimination parameters
	betasFlag   string    // Boundary table: semicolon-separated rows of comma-separated values
	thetaMean   float64   // Latent trait population mean
	thetaSD     float64   // Latent trait population standard deviation
	designPath  string    // YAML design spec path (overrides ad-hoc item flags)
	workers     int       // Goroutines fanned out across respondents
	outputPath  string    // CSV destination ("" = stdout)
	zeroIndexed bool      // Emit categories in [0, m-1] instead of [1, m]
)

// rootCmd is the base command for the CLI
var rootCmd = &cobra.Command{
	Use:   "irt-sim",
	Short: "Response simulator for parametric IRT models",
}

// simulateCmd draws one dataset from the configured design and writes it as CSV
var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Simulate an item response dataset",
	Run: func(cmd *cobra.Command, args []string) {
		// Set up logging
		level, err := logrus.ParseLevel(logLevel)
		if err != nil {
			logrus.Fatalf("Invalid log level: %s", logLevel)
		}
		logrus.SetLevel(level)

		bank, thetaSpec := resolveDesign(cmd)

		logrus.Infof("Starting simulation with %d respondents, %d items, model=%s, seed=%d",
			respondents, bank.Items(), bank.Kind, seed)

		startTime := time.Now()

		rng := rand.New(rand.NewPCG(uint64(seed), 0))
		sampler := irt.NormalThetaSampler{Mean: thetaSpec.Mean, StdDev: thetaSpec.StdDev}
		thetas := irt.SampleThetas(sampler, respondents, rng)

		table := irt.NewSimulator(bank, uint64(seed), workers).Simulate(thetas)
		if zeroIndexed {
			table = table.ZeroIndexed()
		}

		writeTable(table)
		logrus.Infof("Simulation complete in %v.", time.Since(startTime))
	},
}

// resolveDesign builds the item bank and theta population from either
// the YAML design spec or the ad-hoc item flags. The CLI seed and
// respondent count override the spec's values when set explicitly.
func resolveDesign(cmd *cobra.Command) (*irt.ItemBank, ThetaSpec) {
	if designPath != "" {
		spec, err := LoadDesignSpec(designPath)
		if err != nil {
			logrus.Fatalf("Unable to load design spec: %v", err)
		}
		if !cmd.Flags().Changed("seed") {
			seed = spec.Seed
		}
		if !cmd.Flags().Changed("respondents") {
			respondents = spec.Respondents
		}
		bank, err := spec.Bank()
		if err != nil {
			logrus.Fatalf("Invalid design spec: %v", err)
		}
		return bank, spec.Theta
	}

	if betasFlag == "" {
		logrus.Fatalf("No item parameters provided. Pass --design or --betas.")
	}
	betas, err := parseBetaTable(betasFlag)
	if err != nil {
		logrus.Fatalf("Invalid --betas: %v", err)
	}
	kind, err := irt.ParseModelKind(model)
	if err != nil {
		logrus.Fatalf("Invalid --model: %v", err)
	}
	alphas := alphasFlag
	if len(alphas) == 0 {
		alphas = nil
	}
	bank, err := irt.NewItemBank(kind, alphas, betas, nil)
	if err != nil {
		logrus.Fatalf("Invalid item parameters: %v", err)
	}
	return bank, ThetaSpec{Mean: thetaMean, StdDev: thetaSD}
}

// parseBetaTable parses "-1,0,1;-0.5,0.5,1.5" into boundary rows.
func parseBetaTable(s string) ([][]float64, error) {
	rows := strings.Split(s, ";")
	betas := make([][]float64, len(rows))
	for j, row := range rows {
		cols := strings.Split(row, ",")
		betas[j] = make([]float64, len(cols))
		for c, col := range cols {
			v, err := strconv.ParseFloat(strings.TrimSpace(col), 64)
			if err != nil {
				return nil, fmt.Errorf("item %d boundary %d: %w", j+1, c+1, err)
			}
			betas[j][c] = v
		}
	}
	return betas, nil
}

// writeTable emits the dataset as CSV and reports the raw-score
// summary. When the CSV goes to stdout the summary moves to logrus so
// the table stays machine-readable.
func writeTable(table *irt.ResponseTable) {
	s := table.Summarize()
	if outputPath == "" {
		if err := table.WriteCSV(os.Stdout); err != nil {
			logrus.Fatalf("Unable to write responses: %v", err)
		}
		logrus.Infof("Raw scores: mean=%.2f stddev=%.2f range=[%.0f, %.0f]", s.Mean, s.StdDev, s.Min, s.Max)
		return
	}
	f, err := os.Create(outputPath)
	if err != nil {
		logrus.Fatalf("Unable to create %s: %v", outputPath, err)
	}
	defer f.Close()
	if err := table.WriteCSV(f); err != nil {
		logrus.Fatalf("Unable to write responses: %v", err)
	}
	fmt.Println("=== Simulation Summary ===")
	fmt.Printf("Respondents       : %d\n", table.Respondents())
	fmt.Printf("Items             : %d\n", table.Items())
	fmt.Printf("Categories        : %d\n", table.Categories)
	fmt.Printf("Raw Score Mean    : %.2f\n", s.Mean)
	fmt.Printf("Raw Score StdDev  : %.2f\n", s.StdDev)
	fmt.Printf("Raw Score Range   : [%.0f, %.0f]\n", s.Min, s.Max)
	fmt.Printf("Output            : %s\n", outputPath)
}

// Execute runs the CLI root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// init sets up CLI flags and subcommands
func init() {
	simulateCmd.Flags().Int64Var(&seed, "seed", 42, "Seed for theta sampling and response draws")
	simulateCmd.Flags().StringVar(&logLevel, "log", "error", "Log level (trace, debug, info, warn, error, fatal, panic)")
	simulateCmd.Flags().IntVar(&respondents, "respondents", 1000, "Number of simulated respondents")

	// Item bank configs
	simulateCmd.Flags().StringVar(&model, "model", "gpcm", "Model kind (rasch, 2pl, 3pl, pcm, gpcm)")
	simulateCmd.Flags().Float64SliceVar(&alphasFlag, "alphas", nil, "Comma-separated per-item discrimination parameters")
	simulateCmd.Flags().StringVar(&betasFlag, "betas", "", "Boundary table: semicolon-separated items, comma-separated boundaries")
	simulateCmd.Flags().StringVar(&designPath, "design", "", "YAML design spec path (overrides --model/--alphas/--betas)")

	// Latent trait population configs
	simulateCmd.Flags().Float64Var(&thetaMean, "theta-mean", 0, "Latent trait population mean")
	simulateCmd.Flags().Float64Var(&thetaSD, "theta-sd", 1, "Latent trait population standard deviation")

	// Execution and output configs
	simulateCmd.Flags().IntVar(&workers, "workers", 1, "Goroutines fanned out across respondents")
	simulateCmd.Flags().StringVar(&outputPath, "output", "", "CSV output path (empty = stdout)")
	simulateCmd.Flags().BoolVar(&zeroIndexed, "zero-indexed", false, "Emit categories in [0, m-1] instead of [1, m]")

	rootCmd.AddCommand(simulateCmd)
}
