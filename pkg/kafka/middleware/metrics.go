package kafka_middleware

import (
	"context"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"wakeline/pkg/kafka"
)

var (
	messagesPublished = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "kafka_messages_published_total",
			Help: "Messages published per topic and outcome",
		},
		[]string{"topic", "outcome"},
	)

	messagesConsumed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "kafka_messages_consumed_total",
			Help: "Messages consumed per topic and outcome",
		},
		[]string{"topic", "outcome"},
	)

	publishDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "kafka_publish_duration_seconds",
			Help:    "Publish latency per topic",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"topic"},
	)

	consumeDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "kafka_consume_duration_seconds",
			Help:    "Handler latency per topic",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"topic"},
	)
)

func outcome(err error) string {
	if err != nil {
		return "error"
	}
	return "ok"
}

// MetricsProducerMiddleware tracks producer metrics
func MetricsProducerMiddleware() kafka.ProducerMiddleware {
	return func(ctx context.Context, msg kafka.Message, next func(ctx context.Context, msg kafka.Message) error) error {
		start := time.Now()

		err := next(ctx, msg)

		publishDuration.WithLabelValues(msg.Topic).Observe(time.Since(start).Seconds())
		messagesPublished.WithLabelValues(msg.Topic, outcome(err)).Inc()

		return err
	}
}

// MetricsConsumerMiddleware tracks consumer metrics
func MetricsConsumerMiddleware() kafka.ConsumerMiddleware {
	return func(ctx context.Context, msg kafka.Message, next kafka.MessageHandler) error {
		start := time.Now()

		err := next(ctx, msg)

		consumeDuration.WithLabelValues(msg.Topic).Observe(time.Since(start).Seconds())
		messagesConsumed.WithLabelValues(msg.Topic, outcome(err)).Inc()

		return err
	}
}
