package tictactoe

import (
	"fmt"
	"strings"

	"github.com/rocketscienceinc/tictactoe-core/internal/entity"
)

const (
	emptyCellSymbol = "-"
	rowDivider      = "--------------"
)

// RenderBoard - returns the board as three "m  |  m  |  m" rows separated by divider lines.
func RenderBoard(game *entity.Game) string {
	var sb strings.Builder

	sb.WriteString("\n")
	for i, row := range game.Board {
		if i > 0 {
			sb.WriteString(rowDivider)
			sb.WriteString("\n")
		}

		fmt.Fprintf(&sb, "%s  |  %s  |  %s\n", cellSymbol(row[0]), cellSymbol(row[1]), cellSymbol(row[2]))
	}

	return sb.String()
}

func cellSymbol(mark entity.Mark) string {
	if mark == entity.NoMark {
		return emptyCellSymbol
	}

	return string(mark)
}
