package cmd

import (
	"fmt"
	"io"

	"github.com/pilosa/locgen/locality"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

// NewLayoutCommand prints how a workload would be laid out without generating
// it.
func NewLayoutCommand(stdin io.Reader, stdout, stderr io.Writer) *cobra.Command {
	return &cobra.Command{
		Use:   "layout <size-mb> [locality-percent]",
		Short: "Print the element count and hot range of a workload.",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := locality.ParseArgs(args)
			if err != nil {
				return err
			}
			if err := cfg.Validate(); err != nil {
				return err
			}
			_, err = fmt.Fprintf(stdout, "elements: %d\nhot range: [0, %d)\ncold range: [%d, %d)\ndecile: %d\nmode: %s\n",
				cfg.NumElements(), cfg.HotBoundary(), cfg.HotBoundary(), cfg.NumElements(), cfg.Decile(), cfg.Mode())
			return errors.Wrap(err, "writing layout")
		},
	}
}

func init() {
	subcommandFns["layout"] = NewLayoutCommand
}
