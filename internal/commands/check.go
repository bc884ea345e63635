package commands

import (
	"fmt"

	"github.com/hashicorp/go-multierror"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"hostfmt/pkg/hosts"
)

var checkCmd = &cobra.Command{
	Use:           "check",
	SilenceUsage:  true,
	SilenceErrors: true,
	Short:         "Validates every line of the hosts file",
	RunE: func(_ *cobra.Command, _ []string) error {
		src, err := hosts.Open(cfg.HostsFile)
		if err != nil {
			return fmt.Errorf("unable to open %s: %w", cfg.HostsFile, err)
		}
		defer src.Close()

		var errs *multierror.Error
		lines := 0
		iter := src.Lines()
		for iter.Scan() {
			lines++
			if err := iter.Err(); err != nil {
				errs = multierror.Append(errs, fmt.Errorf("line %d: %w", iter.Pos(), err))
			}
		}
		if err := errs.ErrorOrNil(); err != nil {
			return err
		}

		log.Info().Int("lines", lines).Str("file", cfg.HostsFile).Msg("hosts file is well formed")
		return nil
	},
}
