package commands

import (
	"fmt"

	"github.com/hashicorp/go-multierror"
	"github.com/spf13/cobra"

	"hostfmt/pkg/hosts"
)

var pairsCmd = &cobra.Command{
	Use:           "pairs",
	SilenceUsage:  true,
	SilenceErrors: true,
	Short:         "Prints one alias/address pair per line",
	RunE: func(cmd *cobra.Command, _ []string) error {
		src, err := hosts.Open(cfg.HostsFile)
		if err != nil {
			return fmt.Errorf("unable to open %s: %w", cfg.HostsFile, err)
		}
		defer src.Close()

		var errs *multierror.Error
		iter := src.Pairs()
		for iter.Scan() {
			if err := iter.Err(); err != nil {
				errs = multierror.Append(errs, fmt.Errorf("line %d: %w", iter.Pos(), err))
				continue
			}
			pair := iter.Pair()
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", pair.Alias, pair.Addr)
		}
		return errs.ErrorOrNil()
	},
}
