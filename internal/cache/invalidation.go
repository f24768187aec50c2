package cache

import (
	"context"

	"company-pulse-be/internal/constant"
	"company-pulse-be/internal/pkg/logger"

	"github.com/redis/go-redis/v9"
)

// InvalidationChannel is the redis pub/sub channel carrying cache targets
// ("tag", "theme", "signal_type") when concepts or signal types are edited on
// another instance.
const InvalidationChannel = "pulse:cache:invalidate"

const TargetSignalType = "signal_type"

// InvalidationListener fans remote invalidation messages out to the local
// caches so every instance converges without a restart.
type InvalidationListener struct {
	rdb         *redis.Client
	tags        *ConceptCache
	themes      *ConceptCache
	signalTypes *SignalTypeCache
	logger      logger.ILogger
}

func NewInvalidationListener(rdb *redis.Client, tags, themes *ConceptCache, signalTypes *SignalTypeCache, log logger.ILogger) *InvalidationListener {
	return &InvalidationListener{
		rdb:         rdb,
		tags:        tags,
		themes:      themes,
		signalTypes: signalTypes,
		logger:      log,
	}
}

// Run blocks consuming invalidation messages until ctx is cancelled. Callers
// start it on its own goroutine; a nil redis client disables cross-instance
// invalidation entirely.
func (l *InvalidationListener) Run(ctx context.Context) {
	if l.rdb == nil {
		l.logger.Warn("cache_invalidation", "Redis unavailable, cross-instance invalidation disabled", nil)
		return
	}

	pubsub := l.rdb.Subscribe(ctx, InvalidationChannel)
	defer pubsub.Close()

	ch := pubsub.Channel()
	for {
		select {
		case <-ctx.Done():
			return
		case msg, ok := <-ch:
			if !ok {
				return
			}
			l.apply(msg.Payload)
		}
	}
}

// Broadcast publishes an invalidation for other instances. The local cache is
// invalidated by the caller before broadcasting.
func (l *InvalidationListener) Broadcast(ctx context.Context, target string) {
	if l.rdb == nil {
		return
	}
	if err := l.rdb.Publish(ctx, InvalidationChannel, target).Err(); err != nil {
		l.logger.Warn("cache_invalidation", "Failed to broadcast invalidation", map[string]interface{}{
			"target": target,
			"error":  err.Error(),
		})
	}
}

func (l *InvalidationListener) apply(target string) {
	switch target {
	case constant.ConceptKindTag:
		l.tags.Invalidate()
	case constant.ConceptKindTheme:
		l.themes.Invalidate()
	case TargetSignalType:
		l.signalTypes.Invalidate()
	default:
		l.logger.Warn("cache_invalidation", "Unknown invalidation target", map[string]interface{}{
			"target": target,
		})
		return
	}
	l.logger.Info("cache_invalidation", "Cache invalidated via redis", map[string]interface{}{
		"target": target,
	})
}
