package main

import (
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/mfgplanning/pegging-loader/config"
)

func newRootCmd(cfg *config.Config, log *zap.Logger) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "pegging-loader",
		Short:         "Load material pegging BOM data from planning workbooks into MySQL",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.AddCommand(newRunCmd(cfg, log))
	return cmd
}

func Execute(cfg *config.Config, log *zap.Logger) {
	if err := newRootCmd(cfg, log).Execute(); err != nil {
		log.Error("fatal error", zap.Error(err))
		log.Sync()
		os.Exit(1)
	}
}
