package main

import (
	"fmt"
	"os"

	"github.com/nguyentantai21042004/audio-summary/internal/config"
	"github.com/nguyentantai21042004/audio-summary/internal/logger"
	"github.com/spf13/cobra"
)

var (
	cfgFile string
	envFile string
	cfg     *config.Config
	log     logger.Logger
)

var rootCmd = &cobra.Command{
	Use:   "audio-summary",
	Short: "Summarize short-form videos from their audio track",
	Long: `audio-summary downloads the audio of a YouTube Shorts or Instagram Reels
clip, transcribes it with Gemini and returns a markdown summary.

Running without a subcommand starts the HTTP server.

Example:
  audio-summary serve --config config.yaml
  audio-summary summarize https://youtube.com/shorts/abc123`,
	SilenceUsage:      true,
	PersistentPreRunE: initConfig,
	RunE:              runServe,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "YAML config file (optional, environment variables override it)")
	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", ".env", "dotenv file loaded before reading the environment")
}

func initConfig(cmd *cobra.Command, args []string) error {
	config.LoadDotEnv(envFile)

	var err error
	cfg, err = config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	log = logger.NewWithFormat(cfg.Logging.Level, cfg.Logging.Format, os.Stderr)
	return nil
}
