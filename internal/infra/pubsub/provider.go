// Package pubsub publishes committed loyalty events to a broker.
package pubsub

import (
	"context"
	"encoding/json"
	"log/slog"

	"stampcard/config"
	"stampcard/internal/domain/constants"
	"stampcard/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// PublisherParams holds dependencies for EventPublisher, injected by Fx
type PublisherParams struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewEventPublisher picks the broker named by pubsub.provider. Without one
// events are dropped after a debug line.
func NewEventPublisher(params PublisherParams) (service.EventPublisher, error) {
	cfg := params.Config.PubSub
	if cfg == nil || cfg.Provider == "" {
		params.Logger.Info("Loyalty events disabled, no pubsub provider configured")

		return &noopPublisher{logger: params.Logger}, nil
	}

	publisher, err := dial(params.Ctx, cfg, params.Logger)
	if err != nil {
		return nil, err
	}

	params.Logger.Info("Loyalty event publisher ready", slog.String("provider", cfg.Provider))

	params.Lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			return publisher.Close()
		},
	})

	return publisher, nil
}

func dial(ctx context.Context, cfg *config.PubSubConfig, logger *slog.Logger) (service.EventPublisher, error) {
	switch cfg.Provider {
	case constants.PubSubProviderLocal:
		if err := required(cfg.Provider, "localEndpoint", cfg.LocalEndpoint); err != nil {
			return nil, err
		}

		return NewLocalHTTPPublisher(cfg.LocalEndpoint, logger), nil
	case constants.PubSubProviderGoogle:
		if err := required(cfg.Provider, "projectId", cfg.ProjectID, "topicId", cfg.TopicID); err != nil {
			return nil, err
		}

		return NewGooglePubSubPublisher(ctx, cfg.ProjectID, cfg.TopicID, logger)
	case constants.PubSubProviderRabbitMQ:
		if err := required(cfg.Provider, "amqpUrl", cfg.AMQPURL, "topicId", cfg.TopicID); err != nil {
			return nil, err
		}

		return NewRabbitMQPublisher(cfg.AMQPURL, cfg.TopicID, logger)
	default:
		return nil, errors.Errorf("unknown pubsub provider %q", cfg.Provider)
	}
}

// required takes name/value pairs and reports the first empty value.
func required(provider string, pairs ...string) error {
	for i := 0; i+1 < len(pairs); i += 2 {
		if pairs[i+1] == "" {
			return errors.Errorf("pubsub provider %s: %s is required", provider, pairs[i])
		}
	}

	return nil
}

// encodeEvent returns the JSON payload and the routing attributes every
// broker receives. Consumers filter on event_type and tenant_id without
// decoding the body.
func encodeEvent(event *service.LoyaltyEvent) ([]byte, map[string]string, error) {
	body, err := json.Marshal(event)
	if err != nil {
		return nil, nil, errors.Wrapf(err, "encode loyalty event %s", event.EventID)
	}

	attrs := map[string]string{
		"event_type":  string(event.Type),
		"tenant_id":   event.TenantID,
		"location_id": event.LocationID,
		"customer_id": event.CustomerID,
	}
	if event.RequestID != "" {
		attrs["request_id"] = event.RequestID
	}

	return body, attrs, nil
}

type noopPublisher struct {
	logger *slog.Logger
}

func (p *noopPublisher) PublishLoyaltyEvent(ctx context.Context, event *service.LoyaltyEvent) error {
	p.logger.DebugContext(ctx, "Loyalty event dropped",
		slog.String("event_id", event.EventID),
		slog.String("type", string(event.Type)),
	)

	return nil
}

func (p *noopPublisher) Close() error {
	return nil
}

// Module provides the Pub/Sub FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewEventPublisher),
)
