package entity

import (
	"fmt"

	"github.com/rocketscienceinc/gomoku-backend/internal/apperror"
)

type Status string

const (
	StatusInProgress Status = "in_progress"
	StatusWin        Status = "win"
	StatusDraw       Status = "draw"
)

// directions scanned by the win check: horizontal, vertical, diagonal, anti-diagonal.
var directions = [4][2]int{
	{0, 1},
	{1, 0},
	{1, 1},
	{1, -1},
}

// Game is a single Gomoku session. It is not safe for concurrent use;
// callers sharing a Game across goroutines must serialize access.
type Game struct {
	id       string
	settings Settings

	board   []Stone
	history []Move
	turn    Player
	status  Status
	winner  Player
}

// MoveOutcome is returned by a successful PlaceMove.
type MoveOutcome struct {
	Move   Move   `json:"move"`
	Status Status `json:"status"`
	Winner Player `json:"winner,omitempty"`
	Draw   bool   `json:"draw,omitempty"`
}

func NewGame(id string, settings Settings) (*Game, error) {
	if err := settings.Validate(); err != nil {
		return nil, err
	}

	game := &Game{
		id:       id,
		settings: settings,
	}
	game.Reset()

	return game, nil
}

// Reset clears the board and history and gives the first move to Black.
func (that *Game) Reset() {
	that.board = make([]Stone, that.settings.BoardSize*that.settings.BoardSize)
	that.history = nil
	that.turn = Black
	that.status = StatusInProgress
	that.winner = Empty
}

func (that *Game) PlaceMove(row, col int) (MoveOutcome, error) {
	if that.IsOver() {
		return MoveOutcome{}, apperror.ErrGameAlreadyOver
	}

	if !that.inBounds(row, col) {
		return MoveOutcome{}, fmt.Errorf("%w: (%d, %d)", apperror.ErrInvalidMove, row, col)
	}

	if that.board[that.index(row, col)] != Empty {
		return MoveOutcome{}, fmt.Errorf("%w: (%d, %d)", apperror.ErrCellOccupied, row, col)
	}

	move := Move{Row: row, Col: col, Player: that.turn}
	that.board[that.index(row, col)] = move.Player
	that.history = append(that.history, move)

	switch {
	case that.isWinningMove(move):
		that.status = StatusWin
		that.winner = move.Player
	case len(that.history) == len(that.board):
		that.status = StatusDraw
	default:
		that.turn = that.turn.Opponent()
	}

	return MoveOutcome{
		Move:   move,
		Status: that.status,
		Winner: that.winner,
		Draw:   that.status == StatusDraw,
	}, nil
}

// UndoMove takes back the last move of a game that is still in progress.
func (that *Game) UndoMove() (Move, error) {
	if len(that.history) == 0 || that.IsOver() {
		return Move{}, apperror.ErrNothingToUndo
	}

	last := that.history[len(that.history)-1]
	that.history = that.history[:len(that.history)-1]
	that.board[that.index(last.Row, last.Col)] = Empty
	that.turn = last.Player
	that.status = StatusInProgress
	that.winner = Empty

	return last, nil
}

func (that *Game) QueryCell(row, col int) (Stone, error) {
	if !that.inBounds(row, col) {
		return Empty, fmt.Errorf("%w: (%d, %d)", apperror.ErrInvalidMove, row, col)
	}

	return that.board[that.index(row, col)], nil
}

// isWinningMove counts the run through the placed stone along each direction.
// Runs longer than the win length count as a win as well.
func (that *Game) isWinningMove(move Move) bool {
	for _, dir := range directions {
		count := 1
		count += that.countRun(move, dir[0], dir[1])
		count += that.countRun(move, -dir[0], -dir[1])

		if count >= that.settings.WinLength {
			return true
		}
	}

	return false
}

func (that *Game) countRun(move Move, dRow, dCol int) int {
	count := 0

	for step := 1; step < that.settings.WinLength; step++ {
		row, col := move.Row+dRow*step, move.Col+dCol*step
		if !that.inBounds(row, col) || that.board[that.index(row, col)] != move.Player {
			break
		}
		count++
	}

	return count
}

func (that *Game) inBounds(row, col int) bool {
	size := that.settings.BoardSize
	return row >= 0 && row < size && col >= 0 && col < size
}

func (that *Game) index(row, col int) int {
	return row*that.settings.BoardSize + col
}

func (that *Game) ID() string {
	return that.id
}

func (that *Game) Settings() Settings {
	return that.settings
}

func (that *Game) Size() int {
	return that.settings.BoardSize
}

func (that *Game) WinLength() int {
	return that.settings.WinLength
}

// CurrentPlayer is the side to move, or the side that made the final move once the game is over.
func (that *Game) CurrentPlayer() Player {
	return that.turn
}

func (that *Game) Status() Status {
	return that.status
}

// Winner is Empty unless the status is StatusWin.
func (that *Game) Winner() Player {
	return that.winner
}

func (that *Game) IsOver() bool {
	return that.status != StatusInProgress
}

func (that *Game) MoveCount() int {
	return len(that.history)
}

// History returns a copy of the moves in the order they were played.
func (that *Game) History() []Move {
	history := make([]Move, len(that.history))
	copy(history, that.history)

	return history
}

func (that *Game) LastMove() (Move, bool) {
	if len(that.history) == 0 {
		return Move{}, false
	}

	return that.history[len(that.history)-1], true
}
