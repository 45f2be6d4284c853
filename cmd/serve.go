// cmd/serve.go
//
// `wurdle serve`: runs the HTTP/WebSocket server.
// Responsibilities:
//   - Build the in-memory session store and its idle-session janitor.
//   - Start the router and shut it down when the command context ends.

package cmd

import (
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/robalobadob/wurdle/internal/config"
	"github.com/robalobadob/wurdle/internal/httpserver"
	"github.com/robalobadob/wurdle/internal/store"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve sessions over HTTP and WebSocket",
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().String("port", "", "listen port")
	_ = v.BindPFlag(config.KeyPort, serveCmd.Flags().Lookup("port"))
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	closer, err := setupLogging(cfg, false)
	if err != nil {
		return err
	}
	defer closer.Close()

	ctx := cmd.Context()
	mem := store.NewMemoryStore()
	go store.RunJanitor(ctx, mem, cfg.SessionTTL, sweepInterval(cfg.SessionTTL))

	srv := httpserver.New(mem, cfg)
	log.Info().Str("port", cfg.Port).Dur("sessionTtl", cfg.SessionTTL).Msg("starting wurdle server")
	if err := srv.Start(ctx, ":"+cfg.Port); err != nil {
		log.Error().Err(err).Msg("server exited")
		return err
	}
	log.Info().Msg("server stopped")
	return nil
}

// sweepInterval checks for idle sessions a few times per TTL, at most once a
// minute.
func sweepInterval(ttl time.Duration) time.Duration {
	iv := ttl / 4
	if iv > time.Minute {
		iv = time.Minute
	}
	if iv < time.Second {
		iv = time.Second
	}
	return iv
}
