// cmd/play.go
//
// `wurdle play`: runs the terminal game.
// Logs go to LOG_FILE or nowhere, never to the terminal the board is drawn on.

package cmd

import (
	"errors"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/robalobadob/wurdle/internal/tui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	RunE:  runPlay,
}

func init() {
	rootCmd.AddCommand(playCmd)
}

func runPlay(cmd *cobra.Command, args []string) error {
	closer, err := setupLogging(cfg, true)
	if err != nil {
		return err
	}
	defer closer.Close()

	log.Info().Msg("starting terminal game")
	err = tui.Run(cmd.Context(), cfg.FillAnimation)
	if errors.Is(err, tea.ErrProgramKilled) {
		return nil
	}
	return err
}
