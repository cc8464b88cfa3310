package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/shorq/backend"
	"github.com/katalvlaran/shorq/plot"
	"github.com/katalvlaran/shorq/shor"
)

// Profile is the YAML run profile loaded with --config. Flags set on
// the command line override the profile values.
type Profile struct {
	Shots int     `yaml:"shots"`
	TopN  int     `yaml:"top"`
	Seed  int64   `yaml:"seed"`
	Noise float64 `yaml:"noise"`
	Bases []int64 `yaml:"bases"`
}

var (
	flagShots  int
	flagTopN   int
	flagSeed   int64
	flagNoise  float64
	flagBases  []int64
	flagSweep  bool
	flagPlot   string
	flagConfig string
)

var factorCmd = &cobra.Command{
	Use:   "factor <N>",
	Short: "Factor a composite odd integer via order finding",
	Long: `Factor builds the order-finding circuit for each candidate base,
samples it on the built-in seeded backend and feeds the counts through
continued-fraction extraction. By default the first successful base
wins; --sweep tries every base and tallies the outcomes.`,
	Args: cobra.ExactArgs(1),
	RunE: runFactor,
}

func init() {
	factorCmd.Flags().IntVar(&flagShots, "shots", 1024, "Executions per circuit")
	factorCmd.Flags().IntVar(&flagTopN, "top", 5, "Top outcomes handed to the extractor")
	factorCmd.Flags().Int64Var(&flagSeed, "seed", 1, "Sampler seed")
	factorCmd.Flags().Float64Var(&flagNoise, "noise", 0, "Per-shot bit-flip probability in [0, 1]")
	factorCmd.Flags().Int64SliceVar(&flagBases, "bases", nil, "Explicit candidate bases (default: sweep 2..N-1)")
	factorCmd.Flags().BoolVar(&flagSweep, "sweep", false, "Try every base instead of stopping at the first success")
	factorCmd.Flags().StringVar(&flagPlot, "plot", "", "Write the winning count histogram to this HTML file")
	factorCmd.Flags().StringVar(&flagConfig, "config", "", "YAML run profile (flags override it)")

	rootCmd.AddCommand(factorCmd)
}

func runFactor(cmd *cobra.Command, args []string) error {
	n, err := strconv.ParseUint(args[0], 10, 64)
	if err != nil {
		return fmt.Errorf("invalid modulus %q: %w", args[0], err)
	}

	if flagConfig != "" {
		if err = applyProfile(cmd, flagConfig); err != nil {
			return err
		}
	}
	if flagNoise < 0 || flagNoise > 1 {
		return fmt.Errorf("noise must lie in [0, 1], got %g", flagNoise)
	}

	runner := &backend.Sampler{Seed: flagSeed, Noise: flagNoise}

	options := []shor.Option{
		shor.WithShots(flagShots),
		shor.WithTopN(flagTopN),
		shor.WithLogger(logger),
	}
	if len(flagBases) > 0 {
		bases := make([]uint64, 0, len(flagBases))
		for _, b := range flagBases {
			if b < 2 {
				return fmt.Errorf("base must be ≥ 2, got %d", b)
			}
			bases = append(bases, uint64(b))
		}
		options = append(options, shor.WithBases(bases...))
	}

	if flagSweep {
		return runSweep(cmd, n, runner, options)
	}

	res, err := shor.Factor(cmd.Context(), n, runner, options...)
	if err != nil {
		return err
	}
	printResult(res)

	if flagPlot != "" {
		if res.Method != shor.MethodPeriod {
			logger.Warn("no histogram to plot: factors came from the classical gcd path",
				zap.Uint64("base", res.Base))

			return nil
		}
		title := fmt.Sprintf("N=%d a=%d (%d shots)", res.N, res.Base, flagShots)
		if err = plot.RenderCountsFile(flagPlot, title, res.Counts); err != nil {
			return fmt.Errorf("failed to render histogram: %w", err)
		}
		fmt.Printf("histogram written to %s\n", flagPlot)
	}

	return nil
}

// runSweep tries every candidate base and prints a per-base line plus a
// method tally.
func runSweep(cmd *cobra.Command, n uint64, runner backend.Runner, options []shor.Option) error {
	results, err := shor.Sweep(cmd.Context(), n, runner, options...)
	if err != nil {
		return err
	}

	tally := map[shor.Method]int{}
	for _, res := range results {
		printResult(res)
		tally[res.Method]++
	}
	fmt.Printf("%d bases succeeded: %d via period finding, %d via gcd\n",
		len(results), tally[shor.MethodPeriod], tally[shor.MethodGCD])

	return nil
}

// applyProfile loads the YAML profile and copies its values into the
// flag variables, except where the flag was set explicitly.
func applyProfile(cmd *cobra.Command, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read profile: %w", err)
	}

	var p Profile
	if err = yaml.Unmarshal(data, &p); err != nil {
		return fmt.Errorf("failed to parse profile %s: %w", path, err)
	}

	flags := cmd.Flags()
	if !flags.Changed("shots") && p.Shots > 0 {
		flagShots = p.Shots
	}
	if !flags.Changed("top") && p.TopN > 0 {
		flagTopN = p.TopN
	}
	if !flags.Changed("seed") && p.Seed != 0 {
		flagSeed = p.Seed
	}
	if !flags.Changed("noise") && p.Noise != 0 {
		flagNoise = p.Noise
	}
	if !flags.Changed("bases") && len(p.Bases) > 0 {
		flagBases = p.Bases
	}

	return nil
}

func printResult(res shor.Result) {
	fmt.Printf("%d = %d × %d (base %d, method %s, attempt %d)\n",
		res.N, res.Factors.P, res.Factors.Q, res.Base, res.Method, res.Attempts)
}
