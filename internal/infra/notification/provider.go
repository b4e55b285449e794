package notification

import (
	"context"
	"log/slog"

	"geofeed/config"
	"geofeed/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// noopPushService logs instead of sending when Firebase is not configured.
type noopPushService struct {
	logger *slog.Logger
}

func (s *noopPushService) SendToTopic(_ context.Context, topic, title, _ string, _ map[string]string) error {
	s.logger.Debug("[NoopPush] Push delivery disabled, skipping",
		slog.String("topic", topic),
		slog.String("title", title),
	)

	return nil
}

// PushParams holds dependencies for PushService, injected by Fx
type PushParams struct {
	fx.In

	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewPushService creates a PushService based on configuration
func NewPushService(params PushParams) (service.PushService, error) {
	cfg := params.Config.Firebase
	if cfg == nil || cfg.CredentialsPath == "" {
		params.Logger.Info("Firebase not configured, using no-op push service")

		return &noopPushService{logger: params.Logger}, nil
	}

	svc, err := NewFirebaseService(params.Ctx, cfg.CredentialsPath)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create Firebase service")
	}

	return svc, nil
}
