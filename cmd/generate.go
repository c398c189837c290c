package cmd

import (
	"io"

	"github.com/jaffee/commandeer"
	"github.com/pilosa/locgen/locality"
	"github.com/spf13/cobra"
)

// GenerateMain is wrapped by NewGenerateCommand. It is exported for testing
// purposes.
var GenerateMain *locality.Main

// NewGenerateCommand wraps locality.Main with cobra.Command for use from a CLI.
func NewGenerateCommand(stdin io.Reader, stdout, stderr io.Writer) *cobra.Command {
	GenerateMain = locality.NewMain()
	GenerateMain.Stderr = stderr
	generateCommand := &cobra.Command{
		Use:   "generate <size-mb> [locality-percent]",
		Short: "Write a locality skewed workload file.",
		Long: `Writes size-mb*1024*1024/4 space separated integers to the output file.

locality-percent (default 20) is the share of the key space, from the front,
which is hot. With locality-percent 20 about 80% of the integers fall in the
hot 20%. Any locality-percent below 10, including 0, gives a uniform workload.

The hot/cold choices are reproducible for a given decision seed; the values
within each range depend on the value seed.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := locality.ParseArgs(args)
			if err != nil {
				return err
			}
			GenerateMain.Config = cfg
			return GenerateMain.Run()
		},
	}
	flags := generateCommand.Flags()
	err := commandeer.Flags(flags, GenerateMain)
	if err != nil {
		panic(err)
	}
	return generateCommand
}

func init() {
	subcommandFns["generate"] = NewGenerateCommand
}
