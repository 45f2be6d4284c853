// cmd/root.go
//
// Package cmd wires the wurdle command line.
// Responsibilities:
//   - Resolve configuration (flags, env, .env, defaults) before any subcommand.
//   - Configure the global zerolog logger.
//   - Register the play and serve subcommands.
package cmd

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/robalobadob/wurdle/internal/config"
)

var (
	v   = viper.New()
	cfg config.Config
)

var rootCmd = &cobra.Command{
	Use:   "wurdle",
	Short: "A five-letter guessing board",
	Long: `Wurdle records five-letter guesses on a 5x6 board.

Play it in the terminal with "wurdle play" or serve it over HTTP with
"wurdle serve".`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load(v)
		return err
	},
}

func init() {
	rootCmd.PersistentFlags().String("log-level", "", "log level (trace, debug, info, warn, error)")
	rootCmd.PersistentFlags().String("log-file", "", "append logs to this file")
	_ = v.BindPFlag(config.KeyLogLevel, rootCmd.PersistentFlags().Lookup("log-level"))
	_ = v.BindPFlag(config.KeyLogFile, rootCmd.PersistentFlags().Lookup("log-file"))
}

// ExecuteContext runs the root command; ctx is cancelled on shutdown signals.
func ExecuteContext(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}

// setupLogging configures the global zerolog logger. When quiet is set and
// no log file is configured, logs are discarded so they cannot draw over a
// full-screen UI. The returned closer releases the log file, if any.
func setupLogging(c config.Config, quiet bool) (io.Closer, error) {
	lvl, err := zerolog.ParseLevel(c.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("parse log level %q: %w", c.LogLevel, err)
	}
	zerolog.SetGlobalLevel(lvl)

	switch {
	case c.LogFile != "":
		f, err := os.OpenFile(c.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, fmt.Errorf("open log file: %w", err)
		}
		log.Logger = zerolog.New(f).With().Timestamp().Logger()
		return f, nil
	case quiet:
		log.Logger = zerolog.Nop()
	case !c.Production:
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	}
	return io.NopCloser(nil), nil
}
