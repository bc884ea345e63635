package commands

import (
	"fmt"

	"github.com/hashicorp/go-multierror"
	"github.com/spf13/cobra"

	"hostfmt/pkg/hosts"
)

var fmtCmd = &cobra.Command{
	Use:           "fmt",
	SilenceUsage:  true,
	SilenceErrors: true,
	Short:         "Reformats the hosts file canonically to stdout",
	RunE: func(cmd *cobra.Command, _ []string) error {
		src, err := hosts.Open(cfg.HostsFile)
		if err != nil {
			return fmt.Errorf("unable to open %s: %w", cfg.HostsFile, err)
		}
		defer src.Close()

		var errs *multierror.Error
		iter := src.Lines()
		for iter.Scan() {
			if err := iter.Err(); err != nil {
				errs = multierror.Append(errs, fmt.Errorf("line %d: %w", iter.Pos(), err))
				continue
			}
			fmt.Fprintln(cmd.OutOrStdout(), iter.Line())
		}
		return errs.ErrorOrNil()
	},
}
