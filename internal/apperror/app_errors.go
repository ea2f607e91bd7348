package apperror

import "errors"

var (
	ErrInvalidMove     = errors.New("move is out of board range")
	ErrCellOccupied    = errors.New("cell is already occupied")
	ErrGameAlreadyOver = errors.New("game is already over")
	ErrNothingToUndo   = errors.New("nothing to undo")
	ErrGameNotFound    = errors.New("game not found")
	ErrInvalidSettings = errors.New("invalid game settings")
	ErrCorruptSnapshot = errors.New("corrupt game snapshot")
)
