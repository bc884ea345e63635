package commands

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"hostfmt/internal/watch"
)

var watchCmd = &cobra.Command{
	Use:           "watch",
	SilenceUsage:  true,
	SilenceErrors: true,
	Short:         "Watches the hosts file and reloads it on change",
	RunE: func(_ *cobra.Command, _ []string) error {
		watcher := watch.New(cfg.HostsFile)
		if err := watcher.Start(); err != nil {
			return fmt.Errorf("unable to start watcher: %w", err)
		}
		defer watcher.Stop()

		stopChan := make(chan os.Signal, 1)
		signal.Notify(stopChan, syscall.SIGINT, syscall.SIGTERM)
		<-stopChan

		log.Info().Msg("shutting down gracefully by signal")
		return nil
	},
}
