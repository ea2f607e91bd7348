package entity

import (
	"fmt"

	"github.com/rocketscienceinc/gomoku-backend/internal/apperror"
)

// GameSnapshot is the stored form of a Game. The board is not stored; it is
// rebuilt from the history on restore.
type GameSnapshot struct {
	ID       string   `json:"id"`
	Settings Settings `json:"settings"`
	History  []Move   `json:"history"`
	Status   Status   `json:"status"`
	Winner   Player   `json:"winner,omitempty"`
	Turn     Player   `json:"player_turn"`
}

func (that *Game) Snapshot() GameSnapshot {
	return GameSnapshot{
		ID:       that.id,
		Settings: that.settings,
		History:  that.History(),
		Status:   that.status,
		Winner:   that.winner,
		Turn:     that.turn,
	}
}

// RestoreGame replays the snapshot history on a fresh board and checks that
// the result agrees with the stored status and turn.
func RestoreGame(snapshot GameSnapshot) (*Game, error) {
	game, err := NewGame(snapshot.ID, snapshot.Settings)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", apperror.ErrCorruptSnapshot, err)
	}

	for i, move := range snapshot.History {
		if move.Player != game.turn {
			return nil, fmt.Errorf("%w: move %d played by %s out of turn", apperror.ErrCorruptSnapshot, i, move.Player)
		}

		if _, err = game.PlaceMove(move.Row, move.Col); err != nil {
			return nil, fmt.Errorf("%w: move %d: %w", apperror.ErrCorruptSnapshot, i, err)
		}
	}

	if game.status != snapshot.Status || game.winner != snapshot.Winner || game.turn != snapshot.Turn {
		return nil, fmt.Errorf("%w: replayed state does not match stored state", apperror.ErrCorruptSnapshot)
	}

	return game, nil
}
