package broadcast

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"azan/internal/domain/service"

	"cloud.google.com/go/pubsub/v2"
	pubsubpb "cloud.google.com/go/pubsub/v2/apiv1/pubsubpb"
	"github.com/pkg/errors"
)

// googleExporter writes frames to the local hub and exports a copy to a
// Google Cloud Pub/Sub topic for downstream consumers.
type googleExporter struct {
	hub       *Hub
	client    *pubsub.Client
	publisher *pubsub.Publisher
	logger    *slog.Logger
}

// NewGoogleExporter creates a broadcaster that also exports to Pub/Sub.
func NewGoogleExporter(ctx context.Context, projectID, topicID string, hub *Hub, logger *slog.Logger) (service.Broadcaster, error) {
	client, err := pubsub.NewClient(ctx, projectID)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	topicPath := fmt.Sprintf("projects/%s/topics/%s", projectID, topicID)
	_, err = client.TopicAdminClient.GetTopic(ctx, &pubsubpb.GetTopicRequest{
		Topic: topicPath,
	})
	if err != nil {
		client.Close()

		return nil, errors.Wrapf(err, "failed to get topic %s", topicID)
	}

	logger.Info("Google Pub/Sub exporter initialized",
		slog.String("project_id", projectID),
		slog.String("topic_id", topicID),
	)

	return &googleExporter{
		hub:       hub,
		client:    client,
		publisher: client.Publisher(topicID),
		logger:    logger,
	}, nil
}

// Publish delivers locally first; a failed export does not undo local delivery.
func (p *googleExporter) Publish(ctx context.Context, channel string, payload any) error {
	if err := p.hub.Publish(ctx, channel, payload); err != nil {
		return err
	}

	data, err := json.Marshal(service.Frame{Event: channel, Data: payload})
	if err != nil {
		return errors.WithStack(err)
	}

	result := p.publisher.Publish(ctx, &pubsub.Message{
		Data:       data,
		Attributes: map[string]string{"event": channel},
	})

	serverID, err := result.Get(ctx)
	if err != nil {
		return errors.Wrapf(err, "export %s to pubsub", channel)
	}

	p.logger.Debug("[GooglePubSub] Frame exported",
		slog.String("channel", channel),
		slog.String("server_id", serverID),
	)

	return nil
}

// Close releases Pub/Sub client resources
func (p *googleExporter) Close() error {
	if p.publisher != nil {
		p.publisher.Stop()
	}
	if p.client != nil {
		return errors.WithStack(p.client.Close())
	}

	return nil
}
