package cli

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/solventlabs/solvent/solvers"
)

// runOpts holds the command-line flags for the run command.
type runOpts struct {
	input  string // explicit input file, "-" for stdin
	config string // config file path; empty means the default lookup
}

// newRunCmd creates the run command. Day and part come from the
// arguments, falling back to solvent.toml defaults; the input comes
// from --input, the configured inputs directory, or stdin.
func newRunCmd() *cobra.Command {
	var opts runOpts

	cmd := &cobra.Command{
		Use:   "run [day] [part]",
		Short: "Run one registered solver against a puzzle input",
		Long: `Run one registered solver against a puzzle input.

Examples:
  solvent run 21 1 --input samples/day21.txt
  solvent run 21 2 < day21.txt          # stdin with --input -
  solvent run                           # day/part from solvent.toml`,
		Args: cobra.MaximumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSolver(cmd, args, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.input, "input", "i", "", "input file (\"-\" for stdin)")
	cmd.Flags().StringVarP(&opts.config, "config", "c", "", "config file (default solvent.toml)")

	return cmd
}

func runSolver(cmd *cobra.Command, args []string, opts runOpts) error {
	ctx := cmd.Context()
	logger := loggerFromContext(ctx)

	cfgPath, explicit := defaultConfigFile, false
	if opts.config != "" {
		cfgPath, explicit = opts.config, true
	}
	cfg, err := loadConfig(cfgPath, explicit)
	if err != nil {
		return err
	}

	day, part := cfg.Day, cfg.Part
	if len(args) > 0 {
		if day, err = strconv.Atoi(args[0]); err != nil {
			return fmt.Errorf("cli: day %q is not a number", args[0])
		}
	}
	if len(args) > 1 {
		if part, err = strconv.Atoi(args[1]); err != nil {
			return fmt.Errorf("cli: part %q is not a number", args[1])
		}
	}
	if part == 0 {
		part = 1
	}

	fn, err := solvers.Lookup(day, part)
	if err != nil {
		return err
	}

	input, src, err := readInput(opts.input, cfg, day)
	if err != nil {
		return err
	}
	logger.Debugf("solving day %d part %d with %d input bytes from %s", day, part, len(input), src)

	prog := newProgress(logger)
	answer, err := fn(input)
	if err != nil {
		return err
	}
	prog.done(fmt.Sprintf("Solved day %d part %d", day, part))

	fmt.Fprintln(cmd.OutOrStdout(), renderAnswer(day, part, solverName(day, part), answer))
	return nil
}

// readInput resolves the puzzle text: an explicit file ("-" reads
// stdin) or the configured inputs directory for the day. It reports
// where the input came from for debug logging.
func readInput(flag string, cfg Config, day int) (string, string, error) {
	switch {
	case flag == "-":
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", "", fmt.Errorf("cli: reading stdin: %w", err)
		}
		return string(data), "stdin", nil
	case flag != "":
		data, err := os.ReadFile(flag)
		if err != nil {
			return "", "", fmt.Errorf("cli: %w", err)
		}
		return string(data), flag, nil
	default:
		path := cfg.inputPath(day)
		data, err := os.ReadFile(path)
		if err != nil {
			return "", "", fmt.Errorf("cli: no --input given and %s not readable: %w", path, err)
		}
		return string(data), path, nil
	}
}

// solverName looks up the registered name for the banner.
func solverName(day, part int) string {
	for _, r := range solvers.Registered() {
		if r.Day == day && r.Part == part {
			return r.Name
		}
	}
	return "unknown"
}
