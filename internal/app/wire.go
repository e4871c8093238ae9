//go:build wireinject
// +build wireinject

package app

import (
	"context"

	"github.com/IBM/sarama"
	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/google/wire"
	"github.com/jackc/pgx/v5/pgxpool"
	"google.golang.org/grpc"

	orderGateway "freightdesk/internal/gateway/grpc/order"
	"freightdesk/internal/gateway/kafka/delivery_status"
	"freightdesk/internal/pkg/config"
	"freightdesk/internal/pkg/factory/delivery_window"
	"freightdesk/internal/pkg/factory/order_handle"
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
	"freightdesk/pkg/logger"
	"freightdesk/pkg/tx"
)

var repositorySet = wire.NewSet(
	provideTxManager,
	provideQuerier,

	provideCourseRepository,
	provideDeliveryRepository,
	provideOrderRepository,
	provideProductRepository,
	provideUserRepository,

	wire.Bind(new(courseService.Repository), new(*courseRepo.Repository)),
	wire.Bind(new(courseService.DeliveryRepository), new(*deliveryRepo.Repository)),
	wire.Bind(new(deliveryService.Repository), new(*deliveryRepo.Repository)),
	wire.Bind(new(orderService.Repository), new(*orderRepo.Repository)),
	wire.Bind(new(productService.Repository), new(*productRepo.Repository)),
	wire.Bind(new(userService.Repository), new(*userRepo.Repository)),
	wire.Bind(new(sessionService.UserRepository), new(*userRepo.Repository)),

	wire.Bind(new(deliveryService.TxManager), new(*tx.Manager)),
	wire.Bind(new(courseService.TxManager), new(*tx.Manager)),
)

var orderSet = wire.NewSet(
	provideOrderGateway,
	order_handle.NewStatusHandlerFactory,
	provideOrderService,

	wire.Bind(new(orderService.HandlerFactory), new(*order_handle.StatusHandlerFactory)),
)

// InitializeApplication builds the HTTP service graph (cmd/service).
func InitializeApplication(
	ctx context.Context,
	log logger.Logger,
	pool *pgxpool.Pool,
	getter *pgxv5.CtxGetter,
	conn *grpc.ClientConn,
	producer sarama.SyncProducer,
	cfg *config.Config,
) (*Application, error) {
	wire.Build(
		repositorySet,
		orderSet,

		provideDeliveryStatusPublisher,
		delivery_window.New,

		provideServiceCourse,
		provideServiceDelivery,
		provideServiceProduct,
		provideServiceUser,
		provideServiceDashboard,
		provideServiceSession,
		provideServiceIntake,

		provideSessionCleanupTask,
		provideDraftCleanupTask,
		provideTaskList,
		provideBackgroundWorkers,

		wire.Struct(new(Application), "*"),

		wire.Bind(new(ServiceSession), new(*sessionService.Service)),
		wire.Bind(new(ServiceDashboard), new(*dashboardService.Dashboard)),
		wire.Bind(new(ServiceOrder), new(*orderService.Service)),
		wire.Bind(new(ServiceCourse), new(*courseService.Course)),
		wire.Bind(new(ServiceDelivery), new(*deliveryService.Delivery)),
		wire.Bind(new(ServiceProduct), new(*productService.Product)),
		wire.Bind(new(ServiceUser), new(*userService.User)),
		wire.Bind(new(ServiceIntake), new(*intakeService.Service)),

		wire.Bind(new(deliveryService.EventPublisher), new(*delivery_status.Publisher)),
		wire.Bind(new(courseService.EventPublisher), new(*delivery_status.Publisher)),
		wire.Bind(new(intakeService.OrderAcceptor), new(*orderGateway.OrderGateway)),
		wire.Bind(new(intakeService.DeliveryWindowFactory), new(*delivery_window.DeliveryWindowFactory)),
	)
	return &Application{}, nil
}

// InitializeKafkaWorkerApp builds the order status sync graph (cmd/worker-order-status-changed).
func InitializeKafkaWorkerApp(
	ctx context.Context,
	log logger.Logger,
	pool *pgxpool.Pool,
	getter *pgxv5.CtxGetter,
	conn *grpc.ClientConn,
	cfg *config.Config,
) (*KafkaWorkerApp, error) {
	wire.Build(
		provideQuerier,
		provideOrderRepository,
		wire.Bind(new(orderService.Repository), new(*orderRepo.Repository)),

		orderSet,

		wire.Struct(new(KafkaWorkerApp), "*"),
	)
	return nil, nil
}
