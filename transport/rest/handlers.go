package rest

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/rocketscienceinc/gomoku-backend/internal/apperror"
	"github.com/rocketscienceinc/gomoku-backend/internal/entity"
	"github.com/rocketscienceinc/gomoku-backend/internal/render"
)

type gameUseCase interface {
	CreateGame(ctx context.Context) (*entity.Game, error)
	GetGame(ctx context.Context, id string) (*entity.Game, error)
	PlaceMove(ctx context.Context, id string, row, col int) (*entity.Game, entity.MoveOutcome, error)
	UndoMove(ctx context.Context, id string) (*entity.Game, entity.Move, error)
	ResetGame(ctx context.Context, id string) (*entity.Game, error)
	DeleteGame(ctx context.Context, id string) error
}

// BoardGeometry describes how the client draws the board, used to turn
// pointer positions into cells.
type BoardGeometry struct {
	Padding  float64
	CellSize float64
}

type Handlers struct {
	logger   *slog.Logger
	games    gameUseCase
	geometry BoardGeometry
}

func NewHandlers(logger *slog.Logger, games gameUseCase, geometry BoardGeometry) *Handlers {
	return &Handlers{
		logger:   logger.With("component", "rest"),
		games:    games,
		geometry: geometry,
	}
}

type gameView struct {
	ID            string        `json:"id"`
	BoardSize     int           `json:"board_size"`
	WinLength     int           `json:"win_length"`
	Status        entity.Status `json:"status"`
	StatusLine    string        `json:"status_line"`
	Winner        entity.Player `json:"winner,omitempty"`
	CurrentPlayer entity.Player `json:"current_player"`
	Board         []string      `json:"board"`
	History       []entity.Move `json:"history"`
}

type moveRequest struct {
	Row *int     `json:"row"`
	Col *int     `json:"col"`
	X   *float64 `json:"x"`
	Y   *float64 `json:"y"`
}

type moveResponse struct {
	Outcome entity.MoveOutcome `json:"outcome"`
	Game    gameView           `json:"game"`
}

type undoResponse struct {
	Move entity.Move `json:"move"`
	Game gameView    `json:"game"`
}

type cellView struct {
	Row      int          `json:"row"`
	Col      int          `json:"col"`
	OnBoard  bool         `json:"on_board"`
	Stone    entity.Stone `json:"stone"`
	Playable bool         `json:"playable"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func newGameView(game *entity.Game) gameView {
	return gameView{
		ID:            game.ID(),
		BoardSize:     game.Size(),
		WinLength:     game.WinLength(),
		Status:        game.Status(),
		StatusLine:    render.StatusLine(game),
		Winner:        game.Winner(),
		CurrentPlayer: game.CurrentPlayer(),
		Board:         render.Rows(game),
		History:       game.History(),
	}
}

func (that *Handlers) CreateGame(w http.ResponseWriter, r *http.Request) {
	game, err := that.games.CreateGame(r.Context())
	if err != nil {
		that.writeError(w, err)
		return
	}

	that.writeJSON(w, http.StatusCreated, newGameView(game))
}

func (that *Handlers) GetGame(w http.ResponseWriter, r *http.Request) {
	game, err := that.games.GetGame(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		that.writeError(w, err)
		return
	}

	that.writeJSON(w, http.StatusOK, newGameView(game))
}

func (that *Handlers) GetBoard(w http.ResponseWriter, r *http.Request) {
	game, err := that.games.GetGame(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		that.writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(render.Board(game)))
}

// GetCell reports the cell under a pointer position and whether a stone can be played there.
func (that *Handlers) GetCell(w http.ResponseWriter, r *http.Request) {
	x, errX := strconv.ParseFloat(r.URL.Query().Get("x"), 64)
	y, errY := strconv.ParseFloat(r.URL.Query().Get("y"), 64)
	if errX != nil || errY != nil {
		that.writeJSON(w, http.StatusBadRequest, errorResponse{Error: "x and y must be numbers"})
		return
	}

	game, err := that.games.GetGame(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		that.writeError(w, err)
		return
	}

	row, col, ok := render.Locate(x, y, that.geometry.Padding, that.geometry.CellSize, game.Size())
	if !ok {
		that.writeJSON(w, http.StatusOK, cellView{Row: -1, Col: -1})
		return
	}

	stone, err := game.QueryCell(row, col)
	if err != nil {
		that.writeError(w, err)
		return
	}

	that.writeJSON(w, http.StatusOK, cellView{
		Row:      row,
		Col:      col,
		OnBoard:  true,
		Stone:    stone,
		Playable: stone == entity.Empty && !game.IsOver(),
	})
}

// PlaceMove accepts either board coordinates or a pointer position on the drawn board.
func (that *Handlers) PlaceMove(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req moveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		that.writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}

	var row, col int
	switch {
	case req.Row != nil && req.Col != nil:
		row, col = *req.Row, *req.Col
	case req.X != nil && req.Y != nil:
		game, err := that.games.GetGame(r.Context(), id)
		if err != nil {
			that.writeError(w, err)
			return
		}

		var ok bool
		row, col, ok = render.Locate(*req.X, *req.Y, that.geometry.Padding, that.geometry.CellSize, game.Size())
		if !ok {
			// off the board; the engine reports it after checking for a finished game
			row, col = -1, -1
		}
	default:
		that.writeJSON(w, http.StatusBadRequest, errorResponse{Error: "row and col or x and y are required"})
		return
	}

	game, outcome, err := that.games.PlaceMove(r.Context(), id, row, col)
	if err != nil {
		that.writeError(w, err)
		return
	}

	that.writeJSON(w, http.StatusOK, moveResponse{Outcome: outcome, Game: newGameView(game)})
}

func (that *Handlers) UndoMove(w http.ResponseWriter, r *http.Request) {
	game, move, err := that.games.UndoMove(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		that.writeError(w, err)
		return
	}

	that.writeJSON(w, http.StatusOK, undoResponse{Move: move, Game: newGameView(game)})
}

func (that *Handlers) ResetGame(w http.ResponseWriter, r *http.Request) {
	game, err := that.games.ResetGame(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		that.writeError(w, err)
		return
	}

	that.writeJSON(w, http.StatusOK, newGameView(game))
}

func (that *Handlers) DeleteGame(w http.ResponseWriter, r *http.Request) {
	if err := that.games.DeleteGame(r.Context(), chi.URLParam(r, "id")); err != nil {
		that.writeError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, apperror.ErrInvalidMove):
		return http.StatusBadRequest
	case errors.Is(err, apperror.ErrGameNotFound):
		return http.StatusNotFound
	case errors.Is(err, apperror.ErrCellOccupied),
		errors.Is(err, apperror.ErrGameAlreadyOver),
		errors.Is(err, apperror.ErrNothingToUndo):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

func (that *Handlers) writeError(w http.ResponseWriter, err error) {
	status := statusFor(err)
	if status == http.StatusInternalServerError {
		that.logger.Error("request failed", "error", err)
		that.writeJSON(w, status, errorResponse{Error: http.StatusText(status)})
		return
	}

	that.writeJSON(w, status, errorResponse{Error: err.Error()})
}

func (that *Handlers) writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(body); err != nil {
		that.logger.Error("failed to write response", "error", err)
	}
}
