package tictactoe

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-core/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-core/internal/entity"
)

// StartNewGame - creates a game with an empty board where playerA plays X and moves first.
func StartNewGame(id, playerA, playerB string) *entity.Game {
	return entity.NewGame(id, playerA, playerB)
}

// NextTurn - returns the mark expected to move next, false once the game is over.
func NextTurn(game *entity.Game) (entity.Mark, bool) {
	if game.NextTurn == entity.NoMark {
		return entity.NoMark, false
	}

	return game.NextTurn, true
}

// Winner - returns the winning mark, false while the game is in progress or tied.
func Winner(game *entity.Game) (entity.Mark, bool) {
	if game.Status != entity.StatusWon {
		return entity.NoMark, false
	}

	return game.Winner, true
}

// Outcome - returns whether the game is ongoing, won or tied.
func Outcome(game *entity.Game) entity.Status {
	return game.Status
}

// Move - places player's mark at pos.
//
// Rejected moves leave the game untouched and return an error wrapping
// apperror.ErrInvalidMove, or apperror.ErrGameOver when the game has already
// ended. The move that ends the game returns the terminal status together
// with an error wrapping apperror.ErrGameOver that announces the result.
func Move(game *entity.Game, player entity.Mark, pos entity.Position) (entity.Status, error) {
	if err := validateMove(game, player, pos); err != nil {
		return game.Status, err
	}

	game.Board[pos.Row][pos.Col] = player

	return updateGameStatus(game, player)
}

// validateMove - checks the preconditions of a move in order.
func validateMove(game *entity.Game, player entity.Mark, pos entity.Position) error {
	if game.IsFinished() {
		return fmt.Errorf("%w: game is over", apperror.ErrGameOver)
	}

	if game.NextTurn != player {
		if game.Board.IsFull() || game.Winner != entity.NoMark || game.IsFinished() {
			return fmt.Errorf("%w: game is over", apperror.ErrGameOver)
		}

		return fmt.Errorf("%w: wrong player's turn, %q moves next", apperror.ErrInvalidMove, game.NextTurn)
	}

	if !player.IsPlayer() {
		return fmt.Errorf("%w: unknown mark %q", apperror.ErrInvalidMove, player)
	}

	if !pos.IsValid() {
		return fmt.Errorf("%w: position out of range", apperror.ErrInvalidMove)
	}

	if !game.Board.IsEmptyAt(pos) {
		return fmt.Errorf("%w: position already taken", apperror.ErrInvalidMove)
	}

	if game.Board.IsFull() {
		return fmt.Errorf("%w: game is over", apperror.ErrGameOver)
	}

	return nil
}

// updateGameStatus - checks the game status after player's mark was placed.
func updateGameStatus(game *entity.Game, player entity.Mark) (entity.Status, error) {
	switch {
	case game.Board.HasLine(player):
		game.Winner = player
		game.Status = entity.StatusWon
		game.NextTurn = entity.NoMark

		return game.Status, fmt.Errorf("%w: %q wins", apperror.ErrGameOver, player)
	case game.Board.IsFull():
		game.Status = entity.StatusTied
		game.NextTurn = entity.NoMark

		return game.Status, fmt.Errorf("%w: game is tied", apperror.ErrGameOver)
	default:
		game.NextTurn = player.Opponent()

		return game.Status, nil
	}
}
