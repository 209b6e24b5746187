package main

import (
	"fmt"
	"log"
	"strings"
	"text/template"

	"github.com/alan-christopher/chp/chp/circuit"
	"github.com/alan-christopher/chp/chp/tableau"
	"github.com/spf13/cobra"
	flag "github.com/spf13/pflag"
	"go.uber.org/zap"
	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"
)

var shots int

var columns = []string{"Index", "Qubit", "Shots", "Ones", "PRandom", "ChiSquare", "PValue"}

// A Position accumulates the outcomes of one measurement instruction across
// every shot of a circuit.
type Position struct {
	Index int
	Qubit int

	Shots   int
	Ones    int
	Randoms int

	// PRandom is the fraction of shots in which the outcome was random.
	PRandom float64
	// ChiSquare and PValue test the outcomes against a fair coin.
	ChiSquare float64
	PValue    float64
}

var sampleCmd = &cobra.Command{
	Use:   "sample FILE",
	Short: "Run a circuit many times and summarize its measurement statistics",
	Long: `Run a circuit many times and print a CSV summarizing each measurement:
how often it came out 1, how often it was random, and a chi-squared test of
its outcomes against a uniform distribution.

Examples:
  chp sample --shots 10000 --seed 1 bell.chp`,
	Args: cobra.ExactArgs(1),
	RunE: runSample,
}

func init() {
	sampleCmd.Flags().AddFlagSet(sampleFlags())
}

func sampleFlags() *flag.FlagSet {
	fs := flag.NewFlagSet("sample", flag.ContinueOnError)
	fs.IntVarP(&shots, "shots", "n", 1000, "The number of times to run the circuit.")
	return fs
}

func runSample(cmd *cobra.Command, args []string) error {
	if shots < 1 {
		return fmt.Errorf("--shots must be positive, got %d", shots)
	}
	logger, err := newLogger()
	if err != nil {
		return err
	}
	defer logger.Sync()

	prog, err := loadProgram(args[0])
	if err != nil {
		return err
	}
	src := tableau.NewReaderSource(randSource())
	var positions []*Position
	for i := 0; i < shots; i++ {
		p, err := newProcessor(prog, src, logger, nil)
		if err != nil {
			return err
		}
		outs, err := prog.Run(p)
		if err != nil {
			return fmt.Errorf("shot %d: %w", i, err)
		}
		if positions, err = accumulate(positions, outs); err != nil {
			return fmt.Errorf("shot %d: %w", i, err)
		}
	}
	logger.Info("sampled circuit", zap.String("path", args[0]), zap.Int("shots", shots), zap.Int("measurements", len(positions)))

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, header())
	tmpl := template.Must(template.New("line").Parse(lineTmpl()))
	for _, pos := range positions {
		pos.finish()
		if err := tmpl.Execute(out, pos); err != nil {
			log.Fatalf("BUG: could not fill in line template: %v", err)
		}
	}
	return nil
}

func accumulate(positions []*Position, outs []circuit.Outcome) ([]*Position, error) {
	if positions == nil {
		for i, o := range outs {
			positions = append(positions, &Position{Index: i, Qubit: o.Qubit})
		}
	}
	if len(outs) != len(positions) {
		return positions, fmt.Errorf("got %d measurements, previous shots had %d", len(outs), len(positions))
	}
	for i, o := range outs {
		pos := positions[i]
		pos.Shots++
		if o.Result.Bit {
			pos.Ones++
		}
		if o.Result.Random {
			pos.Randoms++
		}
	}
	return positions, nil
}

func (p *Position) finish() {
	n := float64(p.Shots)
	p.PRandom = float64(p.Randoms) / n
	obs := []float64{n - float64(p.Ones), float64(p.Ones)}
	exp := []float64{n / 2, n / 2}
	p.ChiSquare = stat.ChiSquare(obs, exp)
	p.PValue = distuv.ChiSquared{K: 1}.Survival(p.ChiSquare)
}

func header() string {
	return strings.Join(columns, ", ")
}

func lineTmpl() string {
	var els []string
	for _, c := range columns {
		els = append(els, "{{."+c+"}}")
	}
	return strings.Join(els, ", ") + "\n"
}
