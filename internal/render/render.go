package render

import (
	"math"
	"strings"

	"github.com/rocketscienceinc/gomoku-backend/internal/entity"
)

const (
	blackMark = 'X'
	whiteMark = 'O'
	emptyMark = '.'
	starMark  = '+'
)

// Locate maps a pointer position on the drawn board to the nearest intersection.
// ok is false when the position falls outside the board.
func Locate(x, y, padding, cellSize float64, size int) (row, col int, ok bool) {
	if cellSize <= 0 {
		return 0, 0, false
	}

	col = roundHalfUp((x - padding) / cellSize)
	row = roundHalfUp((y - padding) / cellSize)

	if row < 0 || row >= size || col < 0 || col >= size {
		return 0, 0, false
	}

	return row, col, true
}

// roundHalfUp rounds .5 towards positive infinity, so -0.5 maps to 0.
func roundHalfUp(v float64) int {
	return int(math.Floor(v + 0.5))
}

func PlayerLabel(player entity.Player) string {
	switch player {
	case entity.Black:
		return "Black"
	case entity.White:
		return "White"
	default:
		return ""
	}
}

// StatusLine is the human readable state of the game.
func StatusLine(game *entity.Game) string {
	switch game.Status() {
	case entity.StatusWin:
		return PlayerLabel(game.Winner()) + " wins"
	case entity.StatusDraw:
		return "Draw"
	default:
		return PlayerLabel(game.CurrentPlayer()) + " to move"
	}
}

// starPoints returns the corner and centre star points, only for boards large enough to have them.
func starPoints(size int) map[[2]int]bool {
	points := make(map[[2]int]bool)
	if size < 9 {
		return points
	}

	near, far, centre := 3, size-4, size/2
	for _, p := range [][2]int{{near, near}, {near, far}, {far, near}, {far, far}, {centre, centre}} {
		points[p] = true
	}

	return points
}

// Board draws the grid one row per line, with the last move wrapped in brackets.
// Every cell is preceded by a separator so the brackets never shift the columns.
func Board(game *entity.Game) string {
	size := game.Size()
	stars := starPoints(size)
	last, hasLast := game.LastMove()
	isLast := func(row, col int) bool {
		return hasLast && last.Row == row && last.Col == col
	}

	var sb strings.Builder
	for row := 0; row < size; row++ {
		for col := 0; col < size; col++ {
			switch {
			case isLast(row, col):
				sb.WriteByte('[')
			case isLast(row, col-1):
				sb.WriteByte(']')
			default:
				sb.WriteByte(' ')
			}

			stone, _ := game.QueryCell(row, col)
			sb.WriteByte(cellMark(stone, stars[[2]int{row, col}]))
		}

		if isLast(row, size-1) {
			sb.WriteByte(']')
		}
		sb.WriteByte('\n')
	}

	sb.WriteString(StatusLine(game))
	sb.WriteByte('\n')

	return sb.String()
}

// Rows returns one string per board row using the same marks as Board, without star points.
func Rows(game *entity.Game) []string {
	size := game.Size()
	rows := make([]string, size)

	line := make([]byte, size)
	for row := 0; row < size; row++ {
		for col := 0; col < size; col++ {
			stone, _ := game.QueryCell(row, col)
			line[col] = cellMark(stone, false)
		}
		rows[row] = string(line)
	}

	return rows
}

func cellMark(stone entity.Stone, star bool) byte {
	switch {
	case stone == entity.Black:
		return blackMark
	case stone == entity.White:
		return whiteMark
	case star:
		return starMark
	default:
		return emptyMark
	}
}
