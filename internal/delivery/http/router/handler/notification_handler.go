// Package handler contains the HTTP handlers for the notification feed API.
package handler

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"geofeed/config"
	"geofeed/internal/delivery/http/response"
	"geofeed/internal/domain/entity"
	domainerrors "geofeed/internal/domain/errors"
	"geofeed/internal/usecase"
	"geofeed/internal/usecase/impl"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// NotificationHandler holds dependencies for notification-related handlers
type NotificationHandler struct {
	feedUC    usecase.FeedUsecase
	triggerUC usecase.TriggerUsecase
	cfg       *config.Config
	logger    *slog.Logger
}

// NewNotificationHandler is the constructor for NotificationHandler
func NewNotificationHandler(feedUC usecase.FeedUsecase, triggerUC usecase.TriggerUsecase, cfg *config.Config, logger *slog.Logger) *NotificationHandler {
	return &NotificationHandler{
		feedUC:    feedUC,
		triggerUC: triggerUC,
		cfg:       cfg,
		logger:    logger,
	}
}

// LocationEventRequest represents the request body for reporting a location observation
type LocationEventRequest struct {
	// Zero is a legal coordinate, so presence is not enforced here.
	Latitude   float64    `json:"latitude" validate:"min=-90,max=90"`
	Longitude  float64    `json:"longitude" validate:"min=-180,max=180"`
	ObservedAt *time.Time `json:"observed_at,omitempty"`
}

// GetNotifications handles one feed page query
func (h *NotificationHandler) GetNotifications(c echo.Context) error {
	userID, err := h.getUserID(c)
	if err != nil {
		return err
	}

	sort, err := entity.ParseNotificationSortType(c.QueryParam("sort"))
	if err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", "sort must be RECENT or UNREAD_FIRST")
	}

	page := 0
	if pageStr := c.QueryParam("page"); pageStr != "" {
		page, err = strconv.Atoi(pageStr)
		if err != nil {
			return response.BadRequest(c, "VALIDATION_ERROR", "page must be an integer")
		}
	}

	size := h.cfg.Feed.DefaultPageSize
	if sizeStr := c.QueryParam("size"); sizeStr != "" {
		size, err = strconv.Atoi(sizeStr)
		if err != nil {
			return response.BadRequest(c, "VALIDATION_ERROR", "size must be an integer")
		}
	}

	notifications, err := h.feedUC.GetNotifications(c.Request().Context(), userID, sort, page, size)
	if err != nil {
		return h.handleFeedError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]any{
		"notifications": notifications,
		"page":          page,
		"size":          size,
	})
}

// CountNotifications handles the read/unread badge count query
func (h *NotificationHandler) CountNotifications(c echo.Context) error {
	userID, err := h.getUserID(c)
	if err != nil {
		return err
	}

	// The badge count is the common case, so unread is the default.
	read := false
	if readStr := c.QueryParam("read"); readStr != "" {
		read, err = strconv.ParseBool(readStr)
		if err != nil {
			return response.BadRequest(c, "VALIDATION_ERROR", "read must be true or false")
		}
	}

	count, err := h.feedUC.CountNotifications(c.Request().Context(), userID, read)
	if err != nil {
		return h.handleFeedError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]any{
		"count": count,
		"read":  read,
	})
}

// MarkAllNotificationsAsRead handles the bulk read-state flip
func (h *NotificationHandler) MarkAllNotificationsAsRead(c echo.Context) error {
	userID, err := h.getUserID(c)
	if err != nil {
		return err
	}

	updated, err := h.feedUC.MarkAllNotificationsAsRead(c.Request().Context(), userID)
	if err != nil {
		return h.handleFeedError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]any{
		"updated": updated,
	})
}

// RequestNotification handles an inbound location observation
func (h *NotificationHandler) RequestNotification(c echo.Context) error {
	userID, err := h.getUserID(c)
	if err != nil {
		return err
	}

	var req LocationEventRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid location input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", "latitude and longitude must be valid coordinates")
	}

	event := &entity.UserLocationEvent{
		UserID:    userID,
		Latitude:  req.Latitude,
		Longitude: req.Longitude,
	}
	if req.ObservedAt != nil {
		event.ObservedAt = *req.ObservedAt
	}

	created, err := h.triggerUC.RequestNotification(c.Request().Context(), event)
	if err != nil {
		if errors.Is(err, impl.ErrInvalidCoordinate) {
			return response.BadRequest(c, "VALIDATION_ERROR", "latitude and longitude must be valid coordinates")
		}

		// Partial results are possible; the client retries the whole event and
		// dedup keeps already-fired pairs from doubling.
		return h.handleAppError(c, err)
	}

	return response.Success(c, http.StatusAccepted, map[string]any{
		"triggered":     len(created),
		"notifications": created,
	})
}

// handleFeedError maps feed validation sentinels to 400s before falling back.
func (h *NotificationHandler) handleFeedError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, impl.ErrInvalidPage):
		return response.BadRequest(c, "VALIDATION_ERROR", "page must be zero or positive")
	case errors.Is(err, impl.ErrInvalidPageSize):
		return response.BadRequest(c, "VALIDATION_ERROR", "size is out of bounds")
	case errors.Is(err, entity.ErrInvalidSortType):
		return response.BadRequest(c, "VALIDATION_ERROR", "sort must be RECENT or UNREAD_FIRST")
	default:
		return h.handleAppError(c, err)
	}
}

// handleAppError lets domain errors reach the error middleware and hides the rest.
func (h *NotificationHandler) handleAppError(c echo.Context, err error) error {
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		return err
	}

	h.logger.Error("unexpected handler error",
		slog.String("path", c.Request().URL.Path),
		slog.Any("error", err),
	)

	return response.InternalServerError(c, "INTERNAL_ERROR", "Internal server error")
}

// getUserID extracts the authenticated user ID set by the auth middleware.
func (h *NotificationHandler) getUserID(c echo.Context) (uuid.UUID, error) {
	userID, ok := c.Get("userID").(uuid.UUID)
	if !ok || userID == uuid.Nil {
		return uuid.Nil, response.Unauthorized(c, "UNAUTHORIZED", "User identity missing")
	}

	return userID, nil
}
