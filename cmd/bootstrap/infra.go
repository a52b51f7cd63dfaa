package bootstrap

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"hotel-booking/internal/infra/cache"
	"hotel-booking/internal/infra/events"
	"hotel-booking/internal/infra/gateway"
	"hotel-booking/internal/infra/observability"
	"hotel-booking/internal/pkg/config"
	"hotel-booking/internal/usecase/commands"
	"hotel-booking/internal/usecase/queries"

	"github.com/redis/go-redis/v9"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/fx"
)

const cacheKeyPrefix = "hotel:"

var InfraModule = fx.Module("infra",
	fx.Provide(
		observability.NewMetrics,
		NewCache,
		NewSettlementPublisher,
		NewPaymentGateway,
		NewTracerProvider,
	),
)

// NewCache returns a no-op cache when REDIS_ADDR is empty.
func NewCache(lc fx.Lifecycle, cfg config.Config, metrics *observability.Metrics, logger *slog.Logger) queries.Cache {
	if cfg.Redis.Addr == "" {
		logger.Info("redis disabled, read-through cache is off")
		return cache.Nop{}
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			// an unreachable cache degrades to direct reads, it does not block startup
			if err := client.Ping(ctx).Err(); err != nil {
				logger.Warn("redis unreachable at startup", "addr", cfg.Redis.Addr, "error", err)
			}
			return nil
		},
		OnStop: func(_ context.Context) error {
			return client.Close()
		},
	})

	return cache.NewRedisCache(client, cacheKeyPrefix, metrics)
}

// NewSettlementPublisher returns a logging no-op publisher when AMQP_URL is empty.
func NewSettlementPublisher(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) (commands.SettlementPublisher, error) {
	if cfg.AMQP.URL == "" {
		logger.Info("amqp disabled, settlement events are only logged")
		return events.NewNop(logger), nil
	}

	pub, err := events.NewPublisher(cfg.AMQP.URL, cfg.AMQP.Exchange, logger)
	if err != nil {
		return nil, err
	}
	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return pub.Close()
		},
	})
	return pub, nil
}

func NewPaymentGateway(cfg config.Config, metrics *observability.Metrics, logger *slog.Logger) (commands.PaymentGateway, error) {
	switch strings.ToLower(cfg.Payment.Provider) {
	case "sandbox":
		logger.Warn("using sandbox payment gateway", "decline", cfg.Payment.SandboxDecline)
		return gateway.NewSandboxGateway(cfg.Payment.SandboxDecline, metrics), nil
	case "omise":
		return gateway.NewOmiseGateway(cfg.Payment, metrics, logger)
	default:
		return nil, fmt.Errorf("unknown PAYMENT_PROVIDER %q", cfg.Payment.Provider)
	}
}

// NewTracerProvider installs the process-wide provider and flushes it on stop.
func NewTracerProvider(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) (trace.TracerProvider, error) {
	tracing, err := observability.NewTracing(context.Background(), cfg.Tracing, cfg.App.Env)
	if err != nil {
		return nil, err
	}
	if !tracing.Enabled() {
		logger.Info("tracing export disabled, OTEL_EXPORTER_OTLP_ENDPOINT is empty")
	}

	otel.SetTracerProvider(tracing.Provider)
	otel.SetTextMapPropagator(propagation.TraceContext{})

	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return tracing.Shutdown(ctx)
		},
	})
	return tracing.Provider, nil
}
