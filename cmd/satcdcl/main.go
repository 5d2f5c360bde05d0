// Command satcdcl solves a DIMACS CNF file with a CDCL SAT solver.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/crillab/satcdcl/solver"
)

var log = logrus.WithField("component", "cli")

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var verbose bool
	cmd := &cobra.Command{
		Use:           "satcdcl <file.cnf>",
		Short:         "Decide satisfiability of a DIMACS CNF file",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if verbose {
				logrus.SetLevel(logrus.DebugLevel)
			}
			return run(args[0], verbose)
		},
	}
	cmd.Flags().BoolVar(&verbose, "verbose", false, "print internal debug diagnostics")
	return cmd
}

func run(path string, verbose bool) error {
	f, err := os.Open(path)
	if err != nil {
		return errors.Wrapf(err, "could not open %q", path)
	}
	defer func() { _ = f.Close() }()

	pb, err := solver.ParseDIMACS(f)
	if err != nil {
		return errors.Wrapf(err, "could not parse DIMACS file %q", path)
	}
	log.WithFields(logrus.Fields{
		"variables": pb.NumVariables,
		"clauses":   len(pb.Clauses),
	}).Debug("parsed problem")

	s := solver.New(pb)
	s.Verbose = verbose
	status := s.Solve(context.Background())

	if status == solver.Sat {
		printModel(s.Model())
	}
	printStats(s.Stats)
	fmt.Println(status)
	return nil
}

func printModel(model []bool) {
	for i, v := range model {
		sign := ""
		if !v {
			sign = "-"
		}
		fmt.Printf("%s%d ", sign, i+1)
	}
	fmt.Println()
}

func printStats(stats solver.Stats) {
	fmt.Printf("c variables: %d\n", stats.Variables)
	fmt.Printf("c clauses: %d\n", stats.Clauses)
	fmt.Printf("c decisions: %d\n", stats.NbDecisions)
	fmt.Printf("c conflicts: %d\n", stats.NbConflicts)
	fmt.Printf("c propagations: %d\n", stats.Propagations)
	fmt.Printf("c restarts: %d\n", stats.NbRestarts)
	fmt.Printf("c learned clauses: %d\n", stats.NbLearned)
	fmt.Printf("c clauses eliminated by simplification: %d\n", stats.ClausesEliminatedBySimp)
	fmt.Printf("c clauses eliminated by reduction: %d\n", stats.ClausesEliminatedByReduce)
	fmt.Printf("c pure literals: %d\n", stats.PureLiterals)
}
