package commands

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"hostfmt/internal/config"
)

var (
	cfgPath   string
	hostsPath string
	debug     bool
	cfg       *config.Config
)

var rootCmd = &cobra.Command{
	Use:           "hostfmt",
	SilenceUsage:  true,
	SilenceErrors: true,
	Short:         `hostfmt validates, formats and minifies hosts files`,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(
		initConfig,
		initLogger,
	)

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&cfgPath, "cfg", "", "config file")
	flags.StringVar(&hostsPath, "hosts", "", "hosts file to operate on")
	flags.BoolVar(&debug, "debug", false, "enable debug logging")

	rootCmd.AddCommand(
		checkCmd,
		fmtCmd,
		minifyCmd,
		pairsCmd,
		watchCmd,
	)
}

func initConfig() {
	var err error
	cfg, err = config.New(cfgPath)
	if err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "unable to load config: %v\n", err)
		os.Exit(1)
	}

	if hostsPath != "" {
		cfg.HostsFile = hostsPath
	}
	if debug {
		cfg.Debug = true
	}
}

func initLogger() {
	if cfg.Debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}
}
