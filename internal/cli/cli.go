package cli

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/katalvlaran/lvlwalk/internal/app"
)

// ExitError carries the process exit code for a failed run.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// Parse processes command-line arguments. It returns the validated config,
// whether the program should exit cleanly (help was requested), or an
// *ExitError.
func Parse(args []string, output io.Writer) (*app.Config, bool, error) {
	flagSet := flag.NewFlagSet("lvlwalk", flag.ContinueOnError)
	flagSet.SetOutput(output)

	flagSet.Usage = func() {
		fmt.Fprintf(output, `
lvlwalk - depth-first and breadth-first traversals over graph and grid fixtures.

Usage:
  lvlwalk [options] [FIXTURE_PATH]

Arguments:
  FIXTURE_PATH
    Path to a .hcl/.yaml fixture file or a directory of them.

Algorithms:
  graph: %s
  grid:  %s
  order and has-path expect an acyclic graph; use undirected-path on cyclic ones.

Options:
`, strings.Join(app.GraphAlgorithms(), ", "), strings.Join(app.GridAlgorithms(), ", "))
		flagSet.PrintDefaults()
	}

	fixtureFlag := flagSet.String("fixture", "", "Path to the fixture file or directory.")
	fFlag := flagSet.String("f", "", "Path to the fixture file or directory (shorthand).")
	algoFlag := flagSet.String("algo", "", "Algorithm to run.")
	variantFlag := flagSet.String("variant", app.VariantDFS, "Traversal variant. Options: 'dfs', 'bfs', 'dfs-recursive' (order only).")
	graphFlag := flagSet.String("graph", "", "Name of the graph to run against.")
	gridFlag := flagSet.String("grid", "", "Name of the grid to run against.")
	srcFlag := flagSet.String("src", "", "Source node id, or source island index for expand-island.")
	dstFlag := flagSet.String("dst", "", "Destination node id, or destination island index for expand-island.")
	logFormatFlag := flagSet.String("log-format", "text", "Log output format. Options: 'text' or 'json'.")
	logLevelFlag := flagSet.String("log-level", "warn", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")

	if err := flagSet.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	path := ""
	if *fixtureFlag != "" {
		path = *fixtureFlag
	} else if *fFlag != "" {
		path = *fFlag
	} else if flagSet.NArg() > 0 {
		path = flagSet.Arg(0)
	}
	if path == "" && *algoFlag == "" {
		flagSet.Usage()
		return nil, true, nil
	}

	logFormat := strings.ToLower(*logFormatFlag)
	if logFormat != "text" && logFormat != "json" {
		return nil, false, &ExitError{Code: 2, Message: "invalid log-format: must be 'text' or 'json'"}
	}

	logLevel := strings.ToLower(*logLevelFlag)
	switch logLevel {
	case "debug", "info", "warn", "error":
	default:
		return nil, false, &ExitError{Code: 2, Message: "invalid log-level: must be 'debug', 'info', 'warn', or 'error'"}
	}

	config, err := app.NewConfig(app.Config{
		FixturePath: path,
		Algorithm:   strings.ToLower(*algoFlag),
		Variant:     strings.ToLower(*variantFlag),
		Graph:       *graphFlag,
		Grid:        *gridFlag,
		Src:         *srcFlag,
		Dst:         *dstFlag,
		LogFormat:   logFormat,
		LogLevel:    logLevel,
	})
	if err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	return config, false, nil
}
