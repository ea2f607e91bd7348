package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/google/uuid"

	"github.com/rocketscienceinc/gomoku-backend/internal/entity"
)

type gameRepo interface {
	CreateOrUpdate(ctx context.Context, game *entity.Game) error
	GetByID(ctx context.Context, id string) (*entity.Game, error)
	DeleteByID(ctx context.Context, id string) error
}

// GameManager hosts games stored in the repository. Calls for the same game
// are serialized, so each one sees the state saved by the previous one.
type GameManager struct {
	logger   *slog.Logger
	gameRepo gameRepo
	settings entity.Settings

	mu    sync.Mutex
	locks map[string]*gameLock
}

// gameLock is dropped from the map once no caller holds or waits for it.
type gameLock struct {
	sync.Mutex
	refs int
}

func NewGameManager(logger *slog.Logger, gameRepo gameRepo, settings entity.Settings) *GameManager {
	return &GameManager{
		logger:   logger.With("component", "game_manager"),
		gameRepo: gameRepo,
		settings: settings,

		locks: make(map[string]*gameLock),
	}
}

func (that *GameManager) CreateGame(ctx context.Context) (*entity.Game, error) {
	game, err := entity.NewGame(uuid.NewString(), that.settings)
	if err != nil {
		return nil, fmt.Errorf("failed to create game: %w", err)
	}

	if err = that.gameRepo.CreateOrUpdate(ctx, game); err != nil {
		return nil, fmt.Errorf("failed to save game: %w", err)
	}

	that.logger.Info("game created", "game_id", game.ID())

	return game, nil
}

func (that *GameManager) GetGame(ctx context.Context, id string) (*entity.Game, error) {
	game, err := that.gameRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get game: %w", err)
	}

	return game, nil
}

// PlaceMove plays the current player's stone at (row, col). A rejected move is
// not saved and the returned game reflects the unchanged state.
func (that *GameManager) PlaceMove(ctx context.Context, id string, row, col int) (*entity.Game, entity.MoveOutcome, error) {
	log := that.logger.With("method", "PlaceMove", "game_id", id)

	var outcome entity.MoveOutcome
	game, err := that.mutate(ctx, id, func(game *entity.Game) error {
		var err error
		outcome, err = game.PlaceMove(row, col)
		return err
	})
	if err != nil {
		return game, entity.MoveOutcome{}, err
	}

	if game.IsOver() {
		log.Info("game finished", "status", outcome.Status, "winner", outcome.Winner, "moves", game.MoveCount())
	}

	return game, outcome, nil
}

func (that *GameManager) UndoMove(ctx context.Context, id string) (*entity.Game, entity.Move, error) {
	var move entity.Move
	game, err := that.mutate(ctx, id, func(game *entity.Game) error {
		var err error
		move, err = game.UndoMove()
		return err
	})
	if err != nil {
		return game, entity.Move{}, err
	}

	return game, move, nil
}

func (that *GameManager) ResetGame(ctx context.Context, id string) (*entity.Game, error) {
	game, err := that.mutate(ctx, id, func(game *entity.Game) error {
		game.Reset()
		return nil
	})
	if err != nil {
		return game, err
	}

	that.logger.Info("game reset", "game_id", id)

	return game, nil
}

func (that *GameManager) DeleteGame(ctx context.Context, id string) error {
	lock := that.acquire(id)
	defer that.release(id, lock)

	if err := that.gameRepo.DeleteByID(ctx, id); err != nil {
		return fmt.Errorf("failed to delete game: %w", err)
	}

	that.logger.Info("game deleted", "game_id", id)

	return nil
}

// mutate loads the game, applies fn and saves the result under the game's lock.
// When fn fails the game is returned as loaded and nothing is written.
func (that *GameManager) mutate(ctx context.Context, id string, fn func(game *entity.Game) error) (*entity.Game, error) {
	log := that.logger.With("method", "mutate", "game_id", id)

	lock := that.acquire(id)
	defer that.release(id, lock)

	game, err := that.gameRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get game: %w", err)
	}

	if err = fn(game); err != nil {
		log.Debug("operation rejected", "error", err)
		return game, err
	}

	if err = that.gameRepo.CreateOrUpdate(ctx, game); err != nil {
		return nil, fmt.Errorf("failed to update game: %w", err)
	}

	return game, nil
}

// acquire takes the lock for id, creating it on first use.
func (that *GameManager) acquire(id string) *gameLock {
	that.mu.Lock()
	lock, ok := that.locks[id]
	if !ok {
		lock = &gameLock{}
		that.locks[id] = lock
	}
	lock.refs++
	that.mu.Unlock()

	lock.Lock()

	return lock
}

func (that *GameManager) release(id string, lock *gameLock) {
	lock.Unlock()

	that.mu.Lock()
	defer that.mu.Unlock()

	lock.refs--
	if lock.refs == 0 {
		delete(that.locks, id)
	}
}
