package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/google/uuid"
	"github.com/puzpuzpuz/xsync/v3"
	"github.com/rocketscienceinc/tictactoe-core/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-core/internal/entity"
	"github.com/rocketscienceinc/tictactoe-core/internal/tictactoe"
)

var ErrInvalidPlayers = errors.New("players must have distinct non-empty ids")

// session - serializes moves on a single game.
type session struct {
	mu   sync.Mutex
	game *entity.Game
}

// GameManager keeps the games in progress. Callers only ever receive
// snapshots, the live game is mutated under its session lock.
type GameManager struct {
	logger *slog.Logger
	games  *xsync.MapOf[string, *session]
}

func NewGameManager(logger *slog.Logger) *GameManager {
	return &GameManager{
		logger: logger.With("component", "game_manager"),
		games:  xsync.NewMapOf[string, *session](),
	}
}

// StartGame - registers a new game where playerA plays X and playerB plays O.
func (that *GameManager) StartGame(ctx context.Context, playerA, playerB string) (*entity.Game, error) {
	if playerA == "" || playerB == "" || playerA == playerB {
		return nil, fmt.Errorf("%w: %q, %q", ErrInvalidPlayers, playerA, playerB)
	}

	game := tictactoe.StartNewGame(uuid.NewString(), playerA, playerB)
	that.games.Store(game.ID, &session{game: game})

	that.logger.InfoContext(ctx, "game started", "game_id", game.ID, "player_x", playerA, "player_o", playerB)

	return snapshot(game), nil
}

func (that *GameManager) GetGame(_ context.Context, gameID string) (*entity.Game, error) {
	s, err := that.getSession(gameID)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	return snapshot(s.game), nil
}

// MakeTurn - applies playerID's move to the game. The finished game is
// returned along with the error wrapping apperror.ErrGameOver and is removed
// from the manager.
func (that *GameManager) MakeTurn(ctx context.Context, gameID, playerID string, pos entity.Position) (*entity.Game, error) {
	log := that.logger.With("method", "MakeTurn", "game_id", gameID, "player_id", playerID)

	s, err := that.getSession(gameID)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	player, err := s.game.PlayerByID(playerID)
	if err != nil {
		return nil, fmt.Errorf("failed get player by id: %w", err)
	}

	status, err := tictactoe.Move(s.game, player.Mark, pos)
	game := snapshot(s.game)

	switch {
	case status.IsTerminal():
		that.games.Delete(gameID)
		log.InfoContext(ctx, "game finished", "status", status, "winner", game.Winner)
	case err != nil:
		log.DebugContext(ctx, "move rejected", "position", pos.String(), "error", err)
	default:
		log.DebugContext(ctx, "move accepted", "mark", player.Mark, "position", pos.String())
	}

	if err != nil {
		return game, fmt.Errorf("failed make turn: %w", err)
	}

	return game, nil
}

// EndGame - drops a game regardless of its state.
func (that *GameManager) EndGame(ctx context.Context, gameID string) error {
	if _, ok := that.games.LoadAndDelete(gameID); !ok {
		return fmt.Errorf("%w: %s", apperror.ErrGameNotFound, gameID)
	}

	that.logger.InfoContext(ctx, "game ended", "game_id", gameID)

	return nil
}

func (that *GameManager) ActiveGames() int {
	return that.games.Size()
}

func (that *GameManager) getSession(gameID string) (*session, error) {
	s, ok := that.games.Load(gameID)
	if !ok {
		return nil, fmt.Errorf("%w: %s", apperror.ErrGameNotFound, gameID)
	}

	return s, nil
}

func snapshot(game *entity.Game) *entity.Game {
	clone := *game
	for i, player := range game.Players {
		if player != nil {
			p := *player
			clone.Players[i] = &p
		}
	}

	return &clone
}
