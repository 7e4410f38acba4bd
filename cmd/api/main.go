package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/yigit/rankfinder/internal/bootstrap"
	"github.com/yigit/rankfinder/internal/pkg/logger"
	"github.com/yigit/rankfinder/internal/server"
)

var opts = bootstrap.Options{
	ConfigPath: filepath.Join("configs", "config.yaml"),
}

var rootCmd = &cobra.Command{
	Use:   "rankfinder",
	Short: "rankfinder serves a filter form over the college admission rank sheet.",
	RunE:  runServe,
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Runs the web server (default command).",
	RunE:  runServe,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&opts.ConfigPath, "config", opts.ConfigPath, "path to the YAML config file")
	rootCmd.PersistentFlags().BoolVar(&opts.Debug, "debug", false, "enable debug logging and gin debug mode")
	rootCmd.AddCommand(serveCmd, queryCmd, branchesCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	srv, err := server.NewServer(opts)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to initialize server")
		return err
	}

	if err := srv.Run(); err != nil {
		logger.Error().Err(err).Msg("Server execution failed or shutdown encountered errors")
		return err
	}

	logger.Info().Msg("Application finished gracefully.")
	return nil
}

func main() {
	rootCmd.SilenceUsage = true
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
