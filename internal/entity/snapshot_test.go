package entity

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/gomoku-backend/internal/apperror"
)

func TestRestoreGame(t *testing.T) {
	t.Run("Restores a stored game", func(t *testing.T) {
		// Given: a game stored as JSON
		game := newTestGame(t)
		playMoves(t, game, [][2]int{{7, 7}, {7, 8}, {8, 8}})

		data, err := json.Marshal(game.Snapshot())
		require.NoError(t, err)
		assert.Contains(t, string(data), `"player_turn":"white"`)

		var snapshot GameSnapshot
		require.NoError(t, json.Unmarshal(data, &snapshot))

		// When: it is restored
		restored, err := RestoreGame(snapshot)

		// Then: the board and turn match the original
		require.NoError(t, err)
		assert.Equal(t, game.Snapshot(), restored.Snapshot())

		stone, err := restored.QueryCell(7, 8)
		require.NoError(t, err)
		assert.Equal(t, White, stone)
	})

	t.Run("Restores a finished game", func(t *testing.T) {
		game := newTestGame(t)
		playMoves(t, game, [][2]int{
			{7, 3}, {0, 0},
			{7, 4}, {0, 2},
			{7, 5}, {0, 4},
			{7, 6}, {0, 6},
			{7, 7},
		})

		restored, err := RestoreGame(game.Snapshot())

		require.NoError(t, err)
		assert.Equal(t, StatusWin, restored.Status())
		assert.Equal(t, Black, restored.Winner())
	})

	t.Run("Rejects inconsistent snapshots", func(t *testing.T) {
		valid := func() GameSnapshot {
			game := newTestGame(t)
			playMoves(t, game, [][2]int{{7, 7}, {7, 8}})
			return game.Snapshot()
		}

		outOfTurn := valid()
		outOfTurn.History[1].Player = Black

		occupied := valid()
		occupied.History[1].Row, occupied.History[1].Col = 7, 7

		wrongStatus := valid()
		wrongStatus.Status = StatusDraw

		badSettings := valid()
		badSettings.Settings.BoardSize = 0

		hugeBoard := valid()
		hugeBoard.Settings.BoardSize = 1 << 32

		for name, snapshot := range map[string]GameSnapshot{
			"out of turn":  outOfTurn,
			"occupied":     occupied,
			"wrong status": wrongStatus,
			"bad settings": badSettings,
			"huge board":   hugeBoard,
		} {
			_, err := RestoreGame(snapshot)
			require.ErrorIs(t, err, apperror.ErrCorruptSnapshot, name)
		}
	})

	t.Run("Rejects unknown stones", func(t *testing.T) {
		var snapshot GameSnapshot

		err := json.Unmarshal([]byte(`{"player_turn":"green"}`), &snapshot)

		require.ErrorIs(t, err, apperror.ErrCorruptSnapshot)
	})
}
