package commands

import (
	"github.com/spf13/cobra"

	"hostfmt/internal/store"
)

var minifyWrite bool

var minifyCmd = &cobra.Command{
	Use:           "minify",
	SilenceUsage:  true,
	SilenceErrors: true,
	Short:         "Merges duplicate addresses and sorts their aliases",
	RunE: func(cmd *cobra.Command, _ []string) error {
		mgr := store.NewManager(cfg.HostsFile)
		if err := mgr.Load(); err != nil {
			return err
		}

		mgr.Minify()

		if minifyWrite {
			return mgr.Save()
		}
		_, err := mgr.WriteTo(cmd.OutOrStdout())
		return err
	},
}

func init() {
	minifyCmd.Flags().BoolVarP(&minifyWrite, "write", "w", false, "rewrite the hosts file in place")
}
