package handler

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"geofeed/config"
	"geofeed/internal/domain/service"
	mockSvc "geofeed/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestPushHandler(t *testing.T) (*PushHandler, *mockSvc.MockPushService) {
	pushSvc := mockSvc.NewMockPushService(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelDebug}))

	handler := NewPushHandler(PushHandlerParams{
		Config:  &config.Config{},
		Logger:  logger,
		PushSvc: pushSvc,
	})

	return handler, pushSvc
}

func newPushRequest(t *testing.T, event *service.NotificationEvent) *http.Request {
	t.Helper()

	eventData, err := json.Marshal(event)
	require.NoError(t, err)

	var pushMsg PubSubMessage
	pushMsg.Subscription = "projects/local/subscriptions/notification-sub"
	pushMsg.Message.Data = base64.StdEncoding.EncodeToString(eventData)
	pushMsg.Message.MessageID = event.NotificationID

	body, err := json.Marshal(pushMsg)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/push", strings.NewReader(string(body)))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)

	return req
}

func testEvent() *service.NotificationEvent {
	return &service.NotificationEvent{
		NotificationID: uuid.New().String(),
		UserID:         uuid.New().String(),
		GeofenceID:     uuid.New().String(),
		Type:           "LOCATION_BASED",
		Title:          "附近優惠",
		Body:           "來逛逛吧",
		Data:           map[string]string{"location_name": "taipei-101"},
	}
}

func TestPushHandler_HandlePush_Success(t *testing.T) {
	handler, pushSvc := createTestPushHandler(t)

	event := testEvent()
	expectedTopic := "user-" + event.UserID

	pushSvc.EXPECT().
		SendToTopic(mock.Anything, expectedTopic, event.Title, event.Body, mock.Anything).
		RunAndReturn(func(_ context.Context, _, _, _ string, data map[string]string) error {
			assert.Equal(t, event.NotificationID, data["notification_id"])
			assert.Equal(t, event.Type, data["type"])
			assert.Equal(t, "taipei-101", data["location_name"])

			return nil
		})

	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(newPushRequest(t, event), rec)

	require.NoError(t, handler.HandlePush(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestPushHandler_HandlePush_SendFailureIsRetried(t *testing.T) {
	handler, pushSvc := createTestPushHandler(t)

	event := testEvent()
	pushSvc.EXPECT().
		SendToTopic(mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(errors.New("fcm unavailable"))

	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(newPushRequest(t, event), rec)

	require.NoError(t, handler.HandlePush(c))
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestPushHandler_HandlePush_MalformedUserIDIsDropped(t *testing.T) {
	handler, _ := createTestPushHandler(t)

	event := testEvent()
	event.UserID = "not-a-uuid"

	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(newPushRequest(t, event), rec)

	// Acked so Pub/Sub does not redeliver an event that can never succeed.
	require.NoError(t, handler.HandlePush(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestPushHandler_HandlePush_BadBase64(t *testing.T) {
	handler, _ := createTestPushHandler(t)

	body := `{"message":{"data":"%%%not-base64%%%","messageId":"1"},"subscription":"s"}`
	req := httptest.NewRequest(http.MethodPost, "/push", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)

	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, handler.HandlePush(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
