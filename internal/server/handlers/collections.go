package handlers

import (
	"encoding/base64"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/iudanet/lumina/internal/models"
	"github.com/iudanet/lumina/internal/server/storage"
	"github.com/iudanet/lumina/internal/validation"
	"github.com/iudanet/lumina/pkg/api"
)

// CollectionsHandler отдает и принимает зашифрованные копии коллекций.
// Сервер не видит содержимого и не сливает изменения: последняя запись побеждает.
type CollectionsHandler struct {
	logger  *slog.Logger
	storage storage.CollectionStorage
	now     func() time.Time
}

// NewCollectionsHandler creates a new collections handler
func NewCollectionsHandler(logger *slog.Logger, s storage.CollectionStorage) *CollectionsHandler {
	return &CollectionsHandler{
		logger:  logger,
		storage: s,
		now:     time.Now,
	}
}

// Get обрабатывает GET /api/v1/collections/{kind}
func (h *CollectionsHandler) Get(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, kind, ok := h.target(w, r)
	if !ok {
		return
	}

	backup, err := h.storage.GetCollection(ctx, userID, kind)
	if err != nil {
		if errors.Is(err, storage.ErrCollectionNotFound) {
			sendError(h.logger, w, "collection was never pushed", http.StatusNotFound)
			return
		}
		h.logger.ErrorContext(ctx, "failed to get collection", slog.Any("error", err))
		sendError(h.logger, w, "internal server error", http.StatusInternalServerError)
		return
	}

	sendJSON(h.logger, w, api.CollectionResponse{
		Kind:      string(backup.Kind),
		Data:      base64.StdEncoding.EncodeToString(backup.Data),
		Revision:  backup.Revision,
		UpdatedAt: backup.UpdatedAt,
	}, http.StatusOK)
}

// Put обрабатывает PUT /api/v1/collections/{kind}
func (h *CollectionsHandler) Put(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, kind, ok := h.target(w, r)
	if !ok {
		return
	}

	var req api.PutCollectionRequest
	if err := decodeJSON(w, r, &req); err != nil {
		h.logger.WarnContext(ctx, "failed to decode collection", slog.Any("error", err))
		sendError(h.logger, w, "invalid request body", http.StatusBadRequest)
		return
	}
	if err := validation.ValidateRequest(req); err != nil {
		sendError(h.logger, w, err.Error(), http.StatusBadRequest)
		return
	}

	data, err := base64.StdEncoding.DecodeString(req.Data)
	if err != nil {
		sendError(h.logger, w, "data must be base64 encoded", http.StatusBadRequest)
		return
	}

	res, err := h.storage.PutCollection(ctx, userID, kind, data, req.BaseRevision, h.now())
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to put collection", slog.Any("error", err))
		sendError(h.logger, w, "internal server error", http.StatusInternalServerError)
		return
	}

	if res.Overwrote {
		h.logger.WarnContext(ctx, "collection overwritten over unseen revision",
			slog.String("user_id", userID),
			slog.String("kind", string(kind)),
			slog.Int64("base_revision", req.BaseRevision),
			slog.Int64("revision", res.Revision))
	}

	sendJSON(h.logger, w, api.PutCollectionResponse{
		Revision:  res.Revision,
		Overwrote: res.Overwrote,
	}, http.StatusOK)
}

// target извлекает пользователя из контекста и тип коллекции из пути
func (h *CollectionsHandler) target(w http.ResponseWriter, r *http.Request) (string, models.Kind, bool) {
	userID, ok := GetUserID(r.Context())
	if !ok {
		h.logger.ErrorContext(r.Context(), "user id not found in context")
		sendError(h.logger, w, "unauthorized", http.StatusUnauthorized)
		return "", "", false
	}

	// Только канонические имена: ключ на сервере должен совпадать у всех клиентов
	kind := models.Kind(r.PathValue("kind"))
	switch kind {
	case models.KindOutfits, models.KindVision, models.KindEvents:
	default:
		sendError(h.logger, w, "unknown collection kind", http.StatusNotFound)
		return "", "", false
	}

	return userID, kind, true
}
