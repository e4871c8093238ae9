// Package app assembles the service graphs with wire.
package app

import (
	"context"

	"github.com/IBM/sarama"
	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/jackc/pgx/v5/pgxpool"
	"google.golang.org/grpc"

	orderGateway "freightdesk/internal/gateway/grpc/order"
	"freightdesk/internal/gateway/kafka/delivery_status"
	"freightdesk/internal/handlers/rest/course_accept_post"
	"freightdesk/internal/handlers/rest/courses_get"
	"freightdesk/internal/handlers/rest/dashboard_get"
	"freightdesk/internal/handlers/rest/deliveries_get"
	"freightdesk/internal/handlers/rest/delivery_status_put"
	"freightdesk/internal/handlers/rest/draft_advance_post"
	"freightdesk/internal/handlers/rest/draft_field_put"
	"freightdesk/internal/handlers/rest/draft_get"
	"freightdesk/internal/handlers/rest/draft_post"
	"freightdesk/internal/handlers/rest/draft_reset_post"
	"freightdesk/internal/handlers/rest/draft_retreat_post"
	"freightdesk/internal/handlers/rest/draft_submit_post"
	"freightdesk/internal/handlers/rest/orders_get"
	"freightdesk/internal/handlers/rest/product_categories_get"
	"freightdesk/internal/handlers/rest/product_delete"
	"freightdesk/internal/handlers/rest/product_post"
	"freightdesk/internal/handlers/rest/product_put"
	"freightdesk/internal/handlers/rest/products_get"
	"freightdesk/internal/handlers/rest/session_delete"
	"freightdesk/internal/handlers/rest/session_post"
	"freightdesk/internal/handlers/rest/users_get"
	"freightdesk/internal/handlers/tasks/draft_cleanup"
	"freightdesk/internal/handlers/tasks/session_cleanup"
	"freightdesk/internal/pkg/config"
	"freightdesk/internal/pkg/grpcclient"
	"freightdesk/internal/pkg/middlewares/auth"
	courseRepo "freightdesk/internal/repository/course"
	deliveryRepo "freightdesk/internal/repository/delivery"
	orderRepo "freightdesk/internal/repository/order"
	productRepo "freightdesk/internal/repository/product"
	userRepo "freightdesk/internal/repository/user"
	courseService "freightdesk/internal/service/course"
	dashboardService "freightdesk/internal/service/dashboard"
	deliveryService "freightdesk/internal/service/delivery"
	intakeService "freightdesk/internal/service/intake"
	orderService "freightdesk/internal/service/order"
	productService "freightdesk/internal/service/product"
	sessionService "freightdesk/internal/service/session"
	userService "freightdesk/internal/service/user"
	"freightdesk/pkg/background"
	"freightdesk/pkg/logger"
	"freightdesk/pkg/querier"
	"freightdesk/pkg/tx"
)

type Application struct {
	ServiceSession    ServiceSession
	ServiceDashboard  ServiceDashboard
	ServiceOrder      ServiceOrder
	ServiceCourse     ServiceCourse
	ServiceDelivery   ServiceDelivery
	ServiceProduct    ServiceProduct
	ServiceUser       ServiceUser
	ServiceIntake     ServiceIntake
	BackgroundWorkers *background.Worker
}

type ServiceSession interface {
	session_post.Service
	session_delete.Service
	auth.Authenticator
}

type ServiceDashboard interface {
	dashboard_get.Service
}

type ServiceOrder interface {
	orders_get.Service
}

type ServiceCourse interface {
	courses_get.Service
	course_accept_post.Service
}

type ServiceDelivery interface {
	deliveries_get.Service
	delivery_status_put.Service
}

type ServiceProduct interface {
	products_get.Service
	product_categories_get.Service
	product_post.Service
	product_put.Service
	product_delete.Service
}

type ServiceUser interface {
	users_get.Service
}

type ServiceIntake interface {
	draft_post.Service
	draft_get.Service
	draft_field_put.Service
	draft_advance_post.Service
	draft_retreat_post.Service
	draft_reset_post.Service
	draft_submit_post.Service
}

type KafkaWorkerApp struct {
	OrderService *orderService.Service
}

func provideTxManager(pool *pgxpool.Pool) *tx.Manager {
	return tx.New(pool)
}

func provideQuerier(pool *pgxpool.Pool, getter *pgxv5.CtxGetter, log logger.Logger, cfg *config.Config) *querier.Querier {
	return querier.New(pool, getter, querier.WithSlowQueryLog(log, cfg.Database.SlowQueryThreshold))
}

func provideCourseRepository(querier *querier.Querier) *courseRepo.Repository {
	return courseRepo.New(querier)
}

func provideDeliveryRepository(querier *querier.Querier) *deliveryRepo.Repository {
	return deliveryRepo.New(querier)
}

func provideOrderRepository(querier *querier.Querier) *orderRepo.Repository {
	return orderRepo.New(querier)
}

func provideProductRepository(querier *querier.Querier) *productRepo.Repository {
	return productRepo.New(querier)
}

func provideUserRepository(querier *querier.Querier) *userRepo.Repository {
	return userRepo.New(querier)
}

func provideOrderGateway(conn *grpc.ClientConn) *orderGateway.OrderGateway {
	return orderGateway.New(grpcclient.NewOrdersClient(conn))
}

func provideOrderService(
	repository orderService.Repository,
	gateway *orderGateway.OrderGateway,
	handlerFactory orderService.HandlerFactory,
) *orderService.Service {
	return orderService.New(repository, gateway, handlerFactory)
}

func provideDeliveryStatusPublisher(producer sarama.SyncProducer, cfg *config.Config) *delivery_status.Publisher {
	return delivery_status.New(producer, cfg.Kafka.Producer.Topic)
}

func provideServiceCourse(
	repository courseService.Repository,
	deliveries courseService.DeliveryRepository,
	publisher courseService.EventPublisher,
	txManager courseService.TxManager,
) *courseService.Course {
	return courseService.New(
		repository,
		deliveries,
		publisher,
		txManager,
	)
}

func provideServiceDelivery(
	repository deliveryService.Repository,
	publisher deliveryService.EventPublisher,
	txManager deliveryService.TxManager,
) *deliveryService.Delivery {
	return deliveryService.New(
		repository,
		publisher,
		txManager,
	)
}

func provideServiceProduct(repository productService.Repository) *productService.Product {
	return productService.New(repository)
}

func provideServiceUser(repository userService.Repository) *userService.User {
	return userService.New(repository)
}

func provideServiceDashboard(
	orders *orderService.Service,
	users *userService.User,
	deliveries *deliveryService.Delivery,
	courses *courseService.Course,
) *dashboardService.Dashboard {
	return dashboardService.New(orders, users, deliveries, courses)
}

func provideServiceSession(users sessionService.UserRepository, cfg *config.Config) *sessionService.Service {
	return sessionService.New(users, sessionService.Config{
		Secret: []byte(cfg.Auth.JWTSecret),
		TTL:    cfg.Auth.SessionTTL,
	})
}

func provideServiceIntake(
	acceptor intakeService.OrderAcceptor,
	windows intakeService.DeliveryWindowFactory,
	cfg *config.Config,
) *intakeService.Service {
	return intakeService.New(acceptor, windows, intakeService.Config{
		StrictGating: cfg.Drafts.StrictStepGating,
		IdleTTL:      cfg.Drafts.IdleTTL,
	})
}

func provideSessionCleanupTask(
	log logger.Logger,
	sessions *sessionService.Service,
	cfg *config.Config,
) *session_cleanup.SessionCleanup {
	return session_cleanup.NewSessionCleanup(log, sessions, cfg.Tasks.SessionCleanupInterval)
}

func provideDraftCleanupTask(
	log logger.Logger,
	drafts *intakeService.Service,
	cfg *config.Config,
) *draft_cleanup.DraftCleanup {
	return draft_cleanup.NewDraftCleanup(log, drafts, cfg.Tasks.DraftCleanupInterval)
}

func provideTaskList(
	sessionCleanupTask *session_cleanup.SessionCleanup,
	draftCleanupTask *draft_cleanup.DraftCleanup,
) []background.Task {
	return []background.Task{
		sessionCleanupTask,
		draftCleanupTask,
	}
}

func provideBackgroundWorkers(ctx context.Context, log logger.Logger, tasks []background.Task) (*background.Worker, error) {
	return background.New(ctx, log, tasks)
}
