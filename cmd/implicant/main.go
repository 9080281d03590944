// Command implicant reads a DIMACS CNF formula and reports whether it is
// satisfiable.
package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"sort"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/nkcraddock/implicant"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		verbose       bool
		heuristicName string
	)

	cmd := &cobra.Command{
		Use:   "implicant [input.cnf]",
		Short: "A CDCL SAT solver.",
		Long: `implicant reads a single problem specification in the DIMACS CNF format.

It writes the output in the conventional way: either the first line is
UNSAT, or the first line is SAT and the second line gives the assignment
in the same format as an input clause.

If no input file is given, implicant reads from standard input.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, args, verbose, heuristicName)
		},
		SilenceUsage: true,
	}
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "log solver statistics to stderr")
	cmd.Flags().StringVar(&heuristicName, "heuristic", "first-fit", "decision heuristic: first-fit or dlis")
	return cmd
}

func run(cmd *cobra.Command, args []string, verbose bool, heuristicName string) error {
	logger := log.New(os.Stderr, "", 0)

	var r = os.Stdin
	if len(args) == 1 {
		f, err := os.Open(args[0])
		if err != nil {
			return fmt.Errorf("opening %s: %w", args[0], err)
		}
		defer f.Close()
		r = f
	}

	cnf, err := implicant.ParseDIMACS(r)
	if err != nil {
		return fmt.Errorf("reading input as DIMACS CNF: %w", err)
	}

	heuristic, err := resolveHeuristic(heuristicName)
	if err != nil {
		return err
	}

	opts := []implicant.Option{implicant.WithHeuristic(heuristic)}
	if verbose {
		opts = append(opts, implicant.WithEventSink(implicant.LogSink{Logger: logger}))
	}

	result, err := implicant.Solve(cnf, opts...)
	if err != nil {
		logger.Printf("solve error: %v", err)
		return err
	}

	if verbose {
		logger.Printf("run=%s decisions=%d implications=%d conflicts=%d learned=%d backjumps=%d",
			result.RunID, result.Stats.Decisions, result.Stats.Implications,
			result.Stats.Conflicts, result.Stats.LearnedClauses, result.Stats.Backjumps)
	}

	out := cmd.OutOrStdout()
	color := isatty.IsTerminal(os.Stdout.Fd())

	if !result.Satisfiable {
		printBanner(out, "UNSAT", color)
		os.Exit(20)
	}
	printBanner(out, "SAT", color)
	fmt.Fprintln(out, formatAssignment(result.Assignment))
	os.Exit(10)
	return nil
}

func printBanner(w io.Writer, text string, color bool) {
	if color {
		fmt.Fprintf(w, "\033[1m%s\033[0m\n", text)
		return
	}
	fmt.Fprintln(w, text)
}

func formatAssignment(assignment map[string]bool) string {
	names := make([]string, 0, len(assignment))
	for name := range assignment {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		return len(names[i]) < len(names[j]) || (len(names[i]) == len(names[j]) && names[i] < names[j])
	})

	var out []byte
	for i, name := range names {
		if i > 0 {
			out = append(out, ' ')
		}
		if !assignment[name] {
			out = append(out, '-')
		}
		out = append(out, name...)
	}
	return string(out)
}

func resolveHeuristic(name string) (implicant.Heuristic, error) {
	switch name {
	case "", "first-fit":
		return implicant.FirstFitHeuristic{}, nil
	case "dlis":
		return implicant.DLISHeuristic{}, nil
	default:
		return nil, fmt.Errorf("unknown heuristic %q (want first-fit or dlis)", name)
	}
}
