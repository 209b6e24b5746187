// chp simulates stabilizer circuits written in the .chp format.
//
//	chp run bell.chp
//	chp sample --shots 1000 --seed 7 bell.chp
package main

import (
	crand "crypto/rand"
	"fmt"
	"io"
	"math/rand"
	"os"

	"github.com/alan-christopher/chp/chp"
	"github.com/alan-christopher/chp/chp/circuit"
	"github.com/alan-christopher/chp/chp/tableau"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	seed    int64
	verbose bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "chp",
	Short: "Simulate stabilizer circuits",
	Long: `chp simulates circuits of Hadamard, phase, CNOT and Pauli X gates with
Z-basis measurement, using the CHP tableau algorithm.

Circuits are read from .chp files: optional free text up to a line starting
with '#', then one instruction per line (h q, s q, x q, c control target, m q).`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().Int64Var(&seed, "seed", 0, "Seed for measurement randomness; 0 draws from crypto/rand.")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log every operation.")
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(sampleCmd)
}

func newLogger() (*zap.Logger, error) {
	if verbose {
		return zap.NewDevelopment()
	}
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
	return cfg.Build()
}

func randSource() io.Reader {
	if seed == 0 {
		return crand.Reader
	}
	return rand.New(rand.NewSource(seed))
}

func loadProgram(path string) (*circuit.Program, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	prog, err := circuit.Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return prog, nil
}

func newProcessor(prog *circuit.Program, src tableau.RandomSource, logger *zap.Logger, trace io.Writer) (*chp.Processor, error) {
	qubits := prog.Qubits
	if qubits == 0 {
		qubits = 1
	}
	return chp.NewProcessor(chp.ProcessorOpts{
		Qubits: qubits,
		Rand:   src,
		Logger: logger,
		Trace:  trace,
	})
}
