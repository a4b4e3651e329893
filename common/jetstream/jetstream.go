package jetstream

import (
	"context"
	"fmt"
	"github.com/nats-io/nats.go/jetstream"
	"tickto/common/constant"
)

//go:generate mockgen -destination=mocks/publisher.go -package=mocks github.com/nats-io/nats.go/jetstream Publisher

func CreateQueueStream(ctx context.Context, js jetstream.JetStream, maxBytes int64) (jetstream.Stream, error) {
	cfg := jetstream.StreamConfig{
		Name:      constant.QueueStreamName,
		Retention: jetstream.WorkQueuePolicy,
		Subjects:  []string{constant.AllWildcard},
		MaxBytes:  maxBytes,
	}

	st, err := js.CreateOrUpdateStream(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("create queue stream: %w", err)
	}

	return st, nil
}
