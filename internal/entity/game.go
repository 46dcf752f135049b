package entity

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-core/internal/apperror"
)

// Mark - a player's symbol on the board, NoMark for an empty cell.
type Mark string

const (
	MarkX  Mark = "X"
	MarkO  Mark = "O"
	NoMark Mark = ""
)

// IsPlayer - reports whether m is one of the two player marks.
func (m Mark) IsPlayer() bool {
	return m == MarkX || m == MarkO
}

// Opponent - returns the mark that moves after m.
func (m Mark) Opponent() Mark {
	switch m {
	case MarkX:
		return MarkO
	case MarkO:
		return MarkX
	default:
		return NoMark
	}
}

// Status - the outcome of a game: ongoing, won or tied.
type Status string

const (
	StatusOngoing Status = "ongoing"
	StatusWon     Status = "won"
	StatusTied    Status = "tied"
)

// IsTerminal - reports whether no further moves are accepted.
func (s Status) IsTerminal() bool {
	return s == StatusWon || s == StatusTied
}

const BoardSize = 3

// Position is a zero-based (row, column) coordinate.
type Position struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// IsValid - reports whether both coordinates are within the board.
func (p Position) IsValid() bool {
	return p.Row >= 0 && p.Row < BoardSize && p.Col >= 0 && p.Col < BoardSize
}

func (p Position) String() string {
	return fmt.Sprintf("(%d, %d)", p.Row, p.Col)
}

// PositionFromCoords - builds a position from raw coordinates, which must be exactly a row and a column.
func PositionFromCoords(coords ...int) (Position, error) {
	if len(coords) != 2 {
		return Position{}, fmt.Errorf("%w: position out of range", apperror.ErrInvalidMove)
	}

	pos := Position{Row: coords[0], Col: coords[1]}
	if !pos.IsValid() {
		return Position{}, fmt.Errorf("%w: position out of range", apperror.ErrInvalidMove)
	}

	return pos, nil
}

var WinCombos = [8][3]Position{
	// rows
	{{0, 0}, {0, 1}, {0, 2}},
	{{1, 0}, {1, 1}, {1, 2}},
	{{2, 0}, {2, 1}, {2, 2}},
	// columns
	{{0, 0}, {1, 0}, {2, 0}},
	{{0, 1}, {1, 1}, {2, 1}},
	{{0, 2}, {1, 2}, {2, 2}},
	// diagonals
	{{0, 0}, {1, 1}, {2, 2}},
	{{0, 2}, {1, 1}, {2, 0}},
}

type Board [BoardSize][BoardSize]Mark

func (that *Board) At(pos Position) Mark {
	return that[pos.Row][pos.Col]
}

func (that *Board) IsEmptyAt(pos Position) bool {
	return that.At(pos) == NoMark
}

func (that *Board) IsFull() bool {
	for _, row := range that {
		for _, cell := range row {
			if cell == NoMark {
				return false
			}
		}
	}

	return true
}

// HasLine - reports whether any winning combination is fully occupied by mark.
func (that *Board) HasLine(mark Mark) bool {
	for _, combo := range WinCombos {
		if that.At(combo[0]) == mark && that.At(combo[1]) == mark && that.At(combo[2]) == mark {
			return true
		}
	}

	return false
}

type Game struct {
	ID       string     `json:"id"`
	Board    Board      `json:"board"`
	Players  [2]*Player `json:"players"`
	NextTurn Mark       `json:"next_turn"`
	Winner   Mark       `json:"winner"`
	Status   Status     `json:"status"`
}

func NewGame(id, playerA, playerB string) *Game {
	return &Game{
		ID: id,
		Players: [2]*Player{
			{ID: playerA, Mark: MarkX},
			{ID: playerB, Mark: MarkO},
		},
		NextTurn: MarkX,
		Status:   StatusOngoing,
	}
}

func (that *Game) IsFinished() bool {
	return that.Status.IsTerminal()
}

func (that *Game) IsOngoing() bool {
	return that.Status == StatusOngoing
}

// PlayerByID - resolves a player identity to the player holding a mark in this game.
func (that *Game) PlayerByID(id string) (*Player, error) {
	for _, player := range that.Players {
		if player != nil && player.ID == id {
			return player, nil
		}
	}

	return nil, fmt.Errorf("%w: %q", apperror.ErrPlayerNotFound, id)
}
