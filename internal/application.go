package application

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/rocketscienceinc/tictactoe-core/internal/config"
	"github.com/rocketscienceinc/tictactoe-core/internal/transport/cli"
	"github.com/rocketscienceinc/tictactoe-core/internal/usecase"
)

// RunApp - plays a single game on the given input and output.
func RunApp(ctx context.Context, logger *slog.Logger, conf *config.Config, in io.Reader, out io.Writer) error {
	log := logger.With("component", "app")

	gameManager := usecase.NewGameManager(logger)
	session := cli.NewSession(logger, gameManager, in, out)

	log.Info("Starting game", "player_x", conf.Players.X, "player_o", conf.Players.O)

	game, err := session.Play(ctx, conf.Players.X, conf.Players.O)
	if err != nil {
		return fmt.Errorf("game session failed: %w", err)
	}

	log.Info("Game over", "game_id", game.ID, "status", game.Status, "winner", game.Winner)

	return nil
}
