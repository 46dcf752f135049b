package apperror

import "errors"

var (
	// ErrInvalidMove - the move was rejected, the game is still in progress.
	ErrInvalidMove = errors.New("invalid move")
	// ErrGameOver - the game has reached a terminal state.
	ErrGameOver = errors.New("game over")

	ErrGameNotFound   = errors.New("game not found")
	ErrPlayerNotFound = errors.New("player not found")
)
