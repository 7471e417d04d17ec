package cmd

import (
	"fmt"
	"os"

	"wedding-planner/core/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "wedding-planner",
	Short: "Wedding Planner Seating Service",
	Long: `Wedding Planner keeps guest RSVPs and table assignments consistent.
It reconciles the two collections, detects and resolves conflicts, and
generates banquet hall table layouts.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	if err := RootCmd.Execute(); err != nil {
		// Console format at debug level so CLI errors come out readable
		// with ISO8601 timestamps.
		l, logErr := logger.New(&logger.Config{Level: "debug", Format: "console"})
		if logErr == nil {
			l.Error("command failed", zap.Error(err))
			_ = l.Sync()
		} else {
			fmt.Println(err)
		}
		os.Exit(1)
	}
}
