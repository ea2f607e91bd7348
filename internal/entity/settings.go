package entity

import (
	"fmt"

	"github.com/rocketscienceinc/gomoku-backend/internal/apperror"
)

const (
	DefaultBoardSize = 15
	DefaultWinLength = 5

	// MaxBoardSize bounds the board so its cell count stays small.
	MaxBoardSize = 64
)

// Settings are the fixed rules a game is played with.
type Settings struct {
	BoardSize int `json:"board_size"`
	WinLength int `json:"win_length"`
}

func DefaultSettings() Settings {
	return Settings{
		BoardSize: DefaultBoardSize,
		WinLength: DefaultWinLength,
	}
}

func (that Settings) Validate() error {
	if that.BoardSize < 1 || that.BoardSize > MaxBoardSize {
		return fmt.Errorf("%w: board size %d", apperror.ErrInvalidSettings, that.BoardSize)
	}

	if that.WinLength < 1 {
		return fmt.Errorf("%w: win length %d", apperror.ErrInvalidSettings, that.WinLength)
	}

	return nil
}
