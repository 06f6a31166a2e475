package rest

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/rocketscienceinc/tictactoe-matchmaker/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-matchmaker/internal/entity"
	"github.com/rocketscienceinc/tictactoe-matchmaker/internal/usecase"
)

const defaultHistoryLimit = 20

type leaderboardService interface {
	List(ctx context.Context) ([]*entity.LeaderboardEntry, error)
	GetByUserID(ctx context.Context, userID int64) (*entity.LeaderboardEntry, error)
	CreateIfAbsent(ctx context.Context, entry *entity.LeaderboardEntry) error
	UpdateStat(ctx context.Context, userID int64, stat string, value int) error
	Delete(ctx context.Context, userID int64) error
	Sort(ctx context.Context) ([]*entity.LeaderboardEntry, error)
}

type purchaseService interface {
	Handle(ctx context.Context, req *entity.PurchaseRequest) (*entity.PurchaseResponse, error)
}

type matchHistory interface {
	ListByClient(ctx context.Context, clientID int64, limit int64) ([]*entity.MatchRecord, error)
}

type statsProvider interface {
	Stats() usecase.Stats
}

type Handlers struct {
	logger      *slog.Logger
	leaderboard leaderboardService
	purchase    purchaseService
	matches     matchHistory
	stats       statsProvider
}

func NewHandlers(
	logger *slog.Logger,
	leaderboard leaderboardService,
	purchase purchaseService,
	matches matchHistory,
	stats statsProvider,
) *Handlers {
	return &Handlers{
		logger:      logger.With("component", "rest"),
		leaderboard: leaderboard,
		purchase:    purchase,
		matches:     matches,
		stats:       stats,
	}
}

type messageResponse struct {
	Message string `json:"message"`
}

type errorResponse struct {
	Detail string `json:"detail"`
}

func (that *Handlers) Ping(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte("pong")); err != nil {
		that.logger.Error("failed to write pong", "error", err)
	}
}

func (that *Handlers) Stats(w http.ResponseWriter, _ *http.Request) {
	that.writeJSON(w, http.StatusOK, that.stats.Stats())
}

func (that *Handlers) MatchHistory(w http.ResponseWriter, r *http.Request) {
	clientID, ok := that.pathID(w, r, "client_id")
	if !ok {
		return
	}

	limit := int64(defaultHistoryLimit)
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || parsed <= 0 {
			that.writeJSON(w, http.StatusBadRequest, errorResponse{Detail: "limit must be a positive integer"})
			return
		}
		limit = parsed
	}

	records, err := that.matches.ListByClient(r.Context(), clientID, limit)
	if err != nil {
		that.writeError(w, "MatchHistory", err)
		return
	}

	that.writeJSON(w, http.StatusOK, records)
}

func (that *Handlers) ListLeaderboard(w http.ResponseWriter, r *http.Request) {
	entries, err := that.leaderboard.List(r.Context())
	if err != nil {
		that.writeError(w, "ListLeaderboard", err)
		return
	}

	that.writeJSON(w, http.StatusOK, entries)
}

func (that *Handlers) GetUserStat(w http.ResponseWriter, r *http.Request) {
	userID, ok := that.pathID(w, r, "user_id")
	if !ok {
		return
	}

	entry, err := that.leaderboard.GetByUserID(r.Context(), userID)
	if err != nil {
		that.writeError(w, "GetUserStat", err)
		return
	}

	that.writeJSON(w, http.StatusOK, entry)
}

func (that *Handlers) CreateUserStat(w http.ResponseWriter, r *http.Request) {
	userID, ok := that.pathID(w, r, "user_id")
	if !ok {
		return
	}

	var entry entity.LeaderboardEntry
	if err := json.NewDecoder(r.Body).Decode(&entry); err != nil {
		that.writeJSON(w, http.StatusUnprocessableEntity, errorResponse{Detail: "invalid request body"})
		return
	}
	entry.UserID = userID

	if err := that.leaderboard.CreateIfAbsent(r.Context(), &entry); err != nil {
		that.writeError(w, "CreateUserStat", err)
		return
	}

	that.writeJSON(w, http.StatusOK, messageResponse{Message: "User statistics updated or created successfully"})
}

func (that *Handlers) UpdateUserStat(w http.ResponseWriter, r *http.Request) {
	userID, ok := that.pathID(w, r, "user_id")
	if !ok {
		return
	}

	query := r.URL.Query()

	value, err := strconv.Atoi(query.Get("new_value"))
	if err != nil {
		that.writeJSON(w, http.StatusBadRequest, errorResponse{Detail: "new_value must be an integer"})
		return
	}

	if err = that.leaderboard.UpdateStat(r.Context(), userID, query.Get("stat_name"), value); err != nil {
		that.writeError(w, "UpdateUserStat", err)
		return
	}

	that.writeJSON(w, http.StatusOK, messageResponse{Message: "Specific user statistic updated successfully"})
}

func (that *Handlers) DeleteUserStat(w http.ResponseWriter, r *http.Request) {
	userID, ok := that.pathID(w, r, "user_id")
	if !ok {
		return
	}

	if err := that.leaderboard.Delete(r.Context(), userID); err != nil {
		that.writeError(w, "DeleteUserStat", err)
		return
	}

	that.writeJSON(w, http.StatusOK, messageResponse{Message: "User statistic deleted successfully"})
}

func (that *Handlers) SortLeaderboard(w http.ResponseWriter, r *http.Request) {
	entries, err := that.leaderboard.Sort(r.Context())
	if err != nil {
		that.writeError(w, "SortLeaderboard", err)
		return
	}

	that.writeJSON(w, http.StatusOK, entries)
}

func (that *Handlers) Purchase(w http.ResponseWriter, r *http.Request) {
	var req entity.PurchaseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		that.writeJSON(w, http.StatusUnprocessableEntity, errorResponse{Detail: "invalid request body"})
		return
	}

	resp, err := that.purchase.Handle(r.Context(), &req)
	if err != nil {
		that.writeError(w, "Purchase", err)
		return
	}

	that.writeJSON(w, http.StatusOK, resp)
}

func (that *Handlers) pathID(w http.ResponseWriter, r *http.Request, param string) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, param), 10, 64)
	if err != nil {
		that.writeJSON(w, http.StatusUnprocessableEntity, errorResponse{Detail: param + " must be an integer"})
		return 0, false
	}

	return id, true
}

func (that *Handlers) writeError(w http.ResponseWriter, method string, err error) {
	switch {
	case errors.Is(err, apperror.ErrStatNotFound):
		that.writeJSON(w, http.StatusNotFound, errorResponse{Detail: "User statistic not found"})
	case errors.Is(err, apperror.ErrInvalidStatName):
		that.writeJSON(w, http.StatusBadRequest, errorResponse{Detail: "Invalid stat_name"})
	case errors.Is(err, apperror.ErrItemNotFound):
		that.writeJSON(w, http.StatusNotFound, errorResponse{Detail: "Item does not exist"})
	case errors.Is(err, apperror.ErrSignatureMismatch):
		that.writeJSON(w, http.StatusBadRequest, errorResponse{Detail: "Signature mismatch"})
	case errors.Is(err, apperror.ErrPurchaseDisabled):
		that.writeJSON(w, http.StatusServiceUnavailable, errorResponse{Detail: "Purchases are not configured"})
	case errors.Is(err, apperror.ErrInvalidOrderStatus), errors.Is(err, apperror.ErrUnknownNotification):
		that.writeJSON(w, http.StatusBadRequest, errorResponse{Detail: "Invalid notification data"})
	default:
		that.logger.Error("request failed", "method", method, "error", err)
		that.writeJSON(w, http.StatusInternalServerError, errorResponse{Detail: "Internal Server Error"})
	}
}

func (that *Handlers) writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(body); err != nil {
		that.logger.Error("failed to write response", "error", err)
	}
}
