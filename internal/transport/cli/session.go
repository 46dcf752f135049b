package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/rocketscienceinc/tictactoe-core/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-core/internal/entity"
	"github.com/rocketscienceinc/tictactoe-core/internal/tictactoe"
)

var ErrInputClosed = errors.New("input closed before the game was over")

type gameManager interface {
	StartGame(ctx context.Context, playerA, playerB string) (*entity.Game, error)
	MakeTurn(ctx context.Context, gameID, playerID string, pos entity.Position) (*entity.Game, error)
	EndGame(ctx context.Context, gameID string) error
}

// Session plays one game between two players sharing a terminal.
type Session struct {
	logger  *slog.Logger
	manager gameManager

	in  *bufio.Scanner
	out io.Writer
}

func NewSession(logger *slog.Logger, manager gameManager, in io.Reader, out io.Writer) *Session {
	return &Session{
		logger:  logger.With("component", "cli"),
		manager: manager,
		in:      bufio.NewScanner(in),
		out:     out,
	}
}

// Play - runs the game until it is over, the input is exhausted or ctx is done.
func (that *Session) Play(ctx context.Context, playerX, playerO string) (*entity.Game, error) {
	game, err := that.manager.StartGame(ctx, playerX, playerO)
	if err != nil {
		return nil, fmt.Errorf("failed to start game: %w", err)
	}

	players := map[entity.Mark]string{entity.MarkX: playerX, entity.MarkO: playerO}

	readCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	lines := that.readLines(readCtx)

	that.print(tictactoe.RenderBoard(game))

	for {
		if err = ctx.Err(); err != nil {
			that.endGame(game.ID)
			return game, err
		}

		mark := game.NextTurn
		that.print(fmt.Sprintf("%s (%s), enter row and column: ", players[mark], mark))

		var line inputLine
		select {
		case <-ctx.Done():
			that.endGame(game.ID)
			return game, ctx.Err()
		case line = <-lines:
		}

		if errors.Is(line.err, io.EOF) {
			that.endGame(game.ID)
			return game, ErrInputClosed
		}
		if line.err != nil {
			that.endGame(game.ID)
			return game, fmt.Errorf("failed to read input: %w", line.err)
		}

		pos, err := parsePosition(line.text)
		if err != nil {
			that.print(err.Error() + "\n")
			continue
		}

		next, err := that.manager.MakeTurn(ctx, game.ID, players[mark], pos)
		switch {
		case errors.Is(err, apperror.ErrGameOver):
			that.print(tictactoe.RenderBoard(next))
			that.print(describeOutcome(next, players) + "\n")
			return next, nil
		case errors.Is(err, apperror.ErrInvalidMove):
			that.print(err.Error() + "\n")
			continue
		case err != nil:
			that.endGame(game.ID)
			return game, fmt.Errorf("failed to make turn: %w", err)
		}

		game = next
		that.print(tictactoe.RenderBoard(game))
	}
}

type inputLine struct {
	text string
	err  error
}

// readLines - scans the input in the background so a blocked read does not hold up ctx.
// The last value carries the scanner error, io.EOF when the input simply ended.
func (that *Session) readLines(ctx context.Context) <-chan inputLine {
	lines := make(chan inputLine)

	go func() {
		defer close(lines)

		for that.in.Scan() {
			select {
			case lines <- inputLine{text: that.in.Text()}:
			case <-ctx.Done():
				return
			}
		}

		err := that.in.Err()
		if err == nil {
			err = io.EOF
		}

		select {
		case lines <- inputLine{err: err}:
		case <-ctx.Done():
		}
	}()

	return lines
}

// parsePosition - parses "row col" or "row,col".
func parsePosition(text string) (entity.Position, error) {
	fields := strings.FieldsFunc(text, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t'
	})

	coords := make([]int, 0, len(fields))
	for _, field := range fields {
		n, err := strconv.Atoi(field)
		if err != nil {
			return entity.Position{}, fmt.Errorf("%w: position out of range", apperror.ErrInvalidMove)
		}
		coords = append(coords, n)
	}

	return entity.PositionFromCoords(coords...)
}

func (that *Session) endGame(gameID string) {
	if err := that.manager.EndGame(context.Background(), gameID); err != nil {
		that.logger.Error("could not end game", "game_id", gameID, "error", err)
	}
}

func (that *Session) print(s string) {
	if _, err := io.WriteString(that.out, s); err != nil {
		that.logger.Error("could not write output", "error", err)
	}
}

func describeOutcome(game *entity.Game, players map[entity.Mark]string) string {
	winner, ok := tictactoe.Winner(game)
	if !ok {
		return "Game is tied!"
	}

	return fmt.Sprintf("%s (%s) wins!", players[winner], winner)
}
