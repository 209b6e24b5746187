package main

import (
	"fmt"
	"io"
	"os"

	"github.com/alan-christopher/chp/chp/tableau"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	tracePath string
	dump      bool
)

var runCmd = &cobra.Command{
	Use:   "run FILE",
	Short: "Run a circuit once and print its measurement outcomes",
	Long: `Run a circuit once and print its measurement outcomes.

Examples:
  # Run a circuit
  chp run bell.chp

  # Run reproducibly, printing the final stabilizers
  chp run --seed 42 --dump bell.chp

  # Record a snapshot of the tableau after every operation
  chp run --trace bell.trace bell.chp`,
	Args: cobra.ExactArgs(1),
	RunE: runRun,
}

func init() {
	runCmd.Flags().StringVar(&tracePath, "trace", "", "Write a binary tableau snapshot after every operation to this file.")
	runCmd.Flags().BoolVar(&dump, "dump", false, "Print the final stabilizer generators.")
}

func runRun(cmd *cobra.Command, args []string) error {
	logger, err := newLogger()
	if err != nil {
		return err
	}
	defer logger.Sync()

	prog, err := loadProgram(args[0])
	if err != nil {
		return err
	}
	if prog.Description != "" {
		logger.Info("loaded circuit", zap.String("path", args[0]), zap.String("description", prog.Description))
	}

	var trace io.Writer
	if tracePath != "" {
		f, err := os.Create(tracePath)
		if err != nil {
			return err
		}
		defer f.Close()
		trace = f
	}
	p, err := newProcessor(prog, tableau.NewReaderSource(randSource()), logger, trace)
	if err != nil {
		return err
	}
	outs, err := prog.Run(p)
	out := cmd.OutOrStdout()
	for _, o := range outs {
		fmt.Fprintln(out, o)
	}
	if err != nil {
		return err
	}
	if dump {
		for _, s := range p.Tableau().Stabilizers() {
			fmt.Fprintln(out, s)
		}
	}
	logger.Debug("run complete", zap.Any("stats", p.Stats()))
	return nil
}
