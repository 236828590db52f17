//go:build wireinject
// +build wireinject

package app

import (
	"context"
	"net/http"

	"github.com/IBM/sarama"
	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/google/wire"
	"github.com/jackc/pgx/v5/pgxpool"

	eventsGateway "cryptoshop/internal/gateway/events"
	"cryptoshop/internal/gateway/nowpayments"
	"cryptoshop/internal/gateway/resend"
	"cryptoshop/internal/handlers/kafka-consumer/payment_status_changed"
	"cryptoshop/internal/handlers/rest/orders_get"
	"cryptoshop/internal/handlers/rest/payment_create_post"
	"cryptoshop/internal/handlers/rest/payment_status_get"
	"cryptoshop/internal/handlers/rest/payment_webhook_post"
	"cryptoshop/internal/handlers/tasks/ratelimit_cleanup"
	"cryptoshop/internal/pkg/config"
	"cryptoshop/internal/pkg/factory/status_message"
	orderRepo "cryptoshop/internal/repository/order"
	notificationService "cryptoshop/internal/service/notification"
	orderService "cryptoshop/internal/service/order"
	paymentService "cryptoshop/internal/service/payment"
	"cryptoshop/pkg/background"
	"cryptoshop/pkg/fixed_window"
	"cryptoshop/pkg/logger"
	"cryptoshop/pkg/querier"
	"cryptoshop/pkg/tx"
)

type Application struct {
	ServicePayment    ServicePayment
	ServiceOrder      ServiceOrder
	EventPublisher    payment_webhook_post.Publisher
	RateLimiter       *fixed_window.Limiter
	BackgroundWorkers *background.Worker
}

type ServicePayment interface {
	payment_create_post.Service
	payment_status_get.Service
	payment_webhook_post.Service
}

type ServiceOrder interface {
	orders_get.Service
}

// InitializeApplication для HTTP сервиса (cmd/service)
func InitializeApplication(
	ctx context.Context,
	log logger.Logger,
	pool *pgxpool.Pool,
	getter *pgxv5.CtxGetter,
	producer sarama.SyncProducer,
	cfg *config.Config,
) (*Application, error) {
	wire.Build(
		provideTxManager,
		provideQuerier,

		provideOrderRepository,

		provideNowPaymentsGateway,
		provideEventPublisher,

		provideRateLimiter,

		providePaymentService,
		provideOrderService,

		provideRatelimitCleanupTask,
		provideTaskList,
		provideBackgroundWorkers,

		wire.Struct(new(Application), "*"),

		wire.Bind(new(ServicePayment), new(*paymentService.Payment)),
		wire.Bind(new(ServiceOrder), new(*orderService.Service)),
		wire.Bind(new(payment_webhook_post.Publisher), new(*eventsGateway.Publisher)),

		wire.Bind(new(paymentService.Repository), new(*orderRepo.Repository)),
		wire.Bind(new(paymentService.Gateway), new(*nowpayments.Gateway)),
		wire.Bind(new(paymentService.TxManager), new(*tx.Manager)),

		wire.Bind(new(orderService.Repository), new(*orderRepo.Repository)),

		wire.Bind(new(ratelimit_cleanup.Limiter), new(*fixed_window.Limiter)),
	)
	return &Application{}, nil
}

type KafkaWorkerApp struct {
	NotificationService *notificationService.Notification
}

// InitializeKafkaWorkerApp для Kafka воркера (cmd/worker-payment-status-changed)
func InitializeKafkaWorkerApp(
	ctx context.Context,
	log logger.Logger,
	pool *pgxpool.Pool,
	getter *pgxv5.CtxGetter,
	cfg *config.Config,
) (*KafkaWorkerApp, error) {
	wire.Build(
		provideQuerier,

		provideOrderRepository,

		provideResendGateway,
		provideRateLimiter,
		status_message.New,

		provideNotificationService,

		wire.Bind(new(notificationService.Repository), new(*orderRepo.Repository)),
		wire.Bind(new(notificationService.Sender), new(*resend.Gateway)),
		wire.Bind(new(notificationService.Limiter), new(*fixed_window.Limiter)),
		wire.Bind(new(notificationService.MessageFactory), new(*status_message.StatusMessageFactory)),

		wire.Bind(new(payment_status_changed.Service), new(*notificationService.Notification)),

		wire.Struct(new(KafkaWorkerApp), "*"),
	)
	return nil, nil
}

func provideTxManager(pool *pgxpool.Pool) *tx.Manager {
	return tx.New(pool)
}

func provideQuerier(pool *pgxpool.Pool, getter *pgxv5.CtxGetter) *querier.Querier {
	return querier.New(pool, getter)
}

func provideOrderRepository(querier *querier.Querier) *orderRepo.Repository {
	return orderRepo.New(querier)
}

func provideNowPaymentsGateway(cfg *config.Config) *nowpayments.Gateway {
	client := &http.Client{Timeout: cfg.NowPayments.RequestTimeout}
	return nowpayments.New(client, nowpayments.Config{
		APIKey:      cfg.NowPayments.APIKey,
		BaseURL:     cfg.NowPayments.BaseURL,
		CallbackURL: cfg.NowPayments.CallbackURL,
	})
}

func provideResendGateway(cfg *config.Config) *resend.Gateway {
	client := &http.Client{Timeout: cfg.Resend.RequestTimeout}
	return resend.New(client, resend.Config{
		APIKey:    cfg.Resend.APIKey,
		BaseURL:   cfg.Resend.BaseURL,
		FromEmail: cfg.Resend.FromEmail,
	})
}

func provideEventPublisher(producer sarama.SyncProducer, cfg *config.Config) *eventsGateway.Publisher {
	return eventsGateway.New(producer, cfg.Kafka.Topic)
}

func provideRateLimiter() *fixed_window.Limiter {
	return fixed_window.New()
}

func providePaymentService(
	repository paymentService.Repository,
	gateway paymentService.Gateway,
	txManager paymentService.TxManager,
	cfg *config.Config,
) *paymentService.Payment {
	return paymentService.New(repository, gateway, txManager, cfg.NowPayments.IPNSecret)
}

func provideOrderService(repository orderService.Repository) *orderService.Service {
	return orderService.New(repository)
}

func provideNotificationService(
	repository notificationService.Repository,
	sender notificationService.Sender,
	limiter notificationService.Limiter,
	messages notificationService.MessageFactory,
) *notificationService.Notification {
	return notificationService.New(repository, sender, limiter, messages)
}

func provideRatelimitCleanupTask(
	log logger.Logger,
	limiter ratelimit_cleanup.Limiter,
	cfg *config.Config,
) *ratelimit_cleanup.RatelimitCleanup {
	return ratelimit_cleanup.NewRatelimitCleanup(log, limiter, cfg.Tasks.RateLimitCleanupInterval)
}

func provideTaskList(
	ratelimitCleanupTask *ratelimit_cleanup.RatelimitCleanup,
) []background.Task {
	return []background.Task{
		ratelimitCleanupTask,
	}
}

func provideBackgroundWorkers(ctx context.Context, log logger.Logger, tasks []background.Task) (*background.Worker, error) {
	return background.New(ctx, log, tasks)
}
