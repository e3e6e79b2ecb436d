package cli

import (
	"fmt"
	"os"

	goflags "github.com/jessevdk/go-flags"
)

// commands holds references to all subcommand structs for inspection/testing.
type commands struct {
	Analyze *AnalyzeCommand
	Plot    *PlotCommand
	Run     *RunCommand
	Status  *StatusCommand
}

// buildParser constructs the go-flags parser with all subcommands registered.
func buildParser(version string) (*goflags.Parser, *GlobalFlags, *commands) {
	var globals GlobalFlags

	parser := goflags.NewParser(&globals, goflags.Default)
	parser.Name = "sentistream"
	parser.LongDescription = "Lexicon-based sentiment trend analysis for line-delimited JSON comment streams."

	cmds := &commands{
		Analyze: &AnalyzeCommand{globals: &globals, version: version},
		Plot:    &PlotCommand{globals: &globals, version: version},
		Run:     &RunCommand{globals: &globals, version: version},
		Status:  &StatusCommand{globals: &globals, version: version},
	}

	parser.AddCommand("analyze", "Score a comment stream and write CSV results", "Read a .jsonl comment stream, score each comment with the sentiment lexicon, and write the comment and token result tables as CSV.", cmds.Analyze)
	parser.AddCommand("plot", "Render trend charts from CSV results", "Read previously written CSV results and render the comment sentiment trend and token contribution charts as PNG images.", cmds.Plot)
	parser.AddCommand("run", "Analyze and plot in one pass", "Run the full pipeline: score the stream, write CSV results, and render both trend charts, without a CSV round trip.", cmds.Run)
	parser.AddCommand("status", "Show configuration and lexicon availability", "Show version, resolved configuration, and whether the sentiment lexicon is installed.", cmds.Status)

	return parser, &globals, cmds
}

// Run is the main entry point for the sentistream CLI using os.Args.
func Run(version string) error {
	return RunWithArgs(version, nil)
}

// RunWithArgs parses the given args (or os.Args if nil) and executes the matched subcommand.
func RunWithArgs(version string, args []string) error {
	// Handle --version before parser (go-flags requires a subcommand, but
	// --version is valid without one).
	checkArgs := args
	if checkArgs == nil {
		checkArgs = os.Args[1:]
	}
	for _, arg := range checkArgs {
		if arg == "--version" {
			fmt.Printf("sentistream %s\n", version)
			return nil
		}
		if arg == "--" {
			break
		}
	}

	parser, _, _ := buildParser(version)

	var err error
	if args != nil {
		_, err = parser.ParseArgs(args)
	} else {
		_, err = parser.Parse()
	}

	if err != nil {
		if flagsErr, ok := err.(*goflags.Error); ok {
			if flagsErr.Type == goflags.ErrHelp {
				return nil
			}
		}
		return err
	}

	return nil
}
