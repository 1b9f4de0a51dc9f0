// Package redisstream queues notification e-mails on a Redis stream. A mail
// worker outside this service consumes the stream and delivers them.
package redisstream

import (
	"context"
	"fmt"
	"time"

	"procurement/internal/core/ports"
	"procurement/internal/pkg/logger"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

const DefaultStream = "procurement:notifications"

var _ ports.Notifier = (*Notifier)(nil)

type Notifier struct {
	client *redis.Client
	stream string
	maxLen int64
	now    func() time.Time
	logger *zap.Logger
}

// NewNotifier publishes to stream, trimmed to roughly maxLen entries when
// maxLen is positive.
func NewNotifier(client *redis.Client, stream string, maxLen int64, log *zap.Logger) *Notifier {
	if stream == "" {
		stream = DefaultStream
	}
	return &Notifier{
		client: client,
		stream: stream,
		maxLen: maxLen,
		now:    time.Now,
		logger: logger.Component(log, "redisstream"),
	}
}

func (n *Notifier) SendEmail(ctx context.Context, to, subject, body string) error {
	args := &redis.XAddArgs{
		Stream: n.stream,
		Values: map[string]interface{}{
			"to":        to,
			"subject":   subject,
			"body":      body,
			"queued_at": n.now().UTC().Format(time.RFC3339),
		},
	}
	if n.maxLen > 0 {
		args.MaxLen = n.maxLen
		args.Approx = true
	}

	id, err := n.client.XAdd(ctx, args).Result()
	if err != nil {
		return fmt.Errorf("queue notification on %s: %w", n.stream, err)
	}
	n.logger.Debug("notification queued", zap.String("stream", n.stream), zap.String("id", id), zap.String("to", to))
	return nil
}

// NewClient opens a client and checks the connection.
func NewClient(ctx context.Context, addr, password string, db int) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis ping %s: %w", addr, err)
	}
	return client, nil
}
