package entity

import (
	"fmt"

	"github.com/rocketscienceinc/gomoku-backend/internal/apperror"
)

// Stone is the content of a single board cell.
type Stone uint8

const (
	Empty Stone = iota
	Black
	White
)

// Player is the color of the side to move. Only Black and White are valid players.
type Player = Stone

func (that Stone) String() string {
	switch that {
	case Black:
		return "black"
	case White:
		return "white"
	default:
		return "empty"
	}
}

// Opponent returns the other color; Empty has no opponent.
func (that Stone) Opponent() Stone {
	switch that {
	case Black:
		return White
	case White:
		return Black
	default:
		return Empty
	}
}

// ParseStone is the inverse of String.
func ParseStone(s string) (Stone, bool) {
	switch s {
	case "black":
		return Black, true
	case "white":
		return White, true
	case "empty", "":
		return Empty, true
	default:
		return Empty, false
	}
}

// Move is a stone placement recorded in the history.
type Move struct {
	Row    int    `json:"row"`
	Col    int    `json:"col"`
	Player Player `json:"player"`
}

func (that Stone) MarshalText() ([]byte, error) {
	return []byte(that.String()), nil
}

func (that *Stone) UnmarshalText(text []byte) error {
	stone, ok := ParseStone(string(text))
	if !ok {
		return fmt.Errorf("%w: unknown stone %q", apperror.ErrCorruptSnapshot, text)
	}

	*that = stone

	return nil
}
