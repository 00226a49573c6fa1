//go:build wireinject
// +build wireinject

package app

import (
	"context"

	"github.com/IBM/sarama"
	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/google/wire"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"

	activityGateway "pathport/internal/gateway/kafka/activity"
	"pathport/internal/handlers/tasks/parcel_stats"
	"pathport/internal/pkg/auth_token"
	"pathport/internal/pkg/config"
	"pathport/internal/pkg/factory/order_id"
	"pathport/internal/pkg/factory/verification_code"
	"pathport/internal/pkg/password"

	activityRepo "pathport/internal/repository/activity"
	parcelRepo "pathport/internal/repository/parcel"
	reportRepo "pathport/internal/repository/report"
	"pathport/internal/repository/revocation"
	routeRepo "pathport/internal/repository/route"
	userRepo "pathport/internal/repository/user"

	activityService "pathport/internal/service/activity"
	authService "pathport/internal/service/auth"
	parcelService "pathport/internal/service/parcel"
	reportService "pathport/internal/service/report"
	routeService "pathport/internal/service/route"
	userService "pathport/internal/service/user"

	"pathport/pkg/background"
	"pathport/pkg/logger"
	"pathport/pkg/querier"
	"pathport/pkg/tx"
)

// InitializeApplication для HTTP сервиса (cmd/service)
func InitializeApplication(
	ctx context.Context,
	log logger.Logger,
	pool *pgxpool.Pool,
	getter *pgxv5.CtxGetter,
	redisClient *redis.Client,
	producer sarama.SyncProducer,
	cfg *config.Config,
) (*Application, error) {
	wire.Build(
		provideTxManager,
		provideQuerier,
		provideParcelStatsInterval,

		provideUserRepository,
		provideParcelRepository,
		provideRouteRepository,
		provideActivityRepository,
		provideReportRepository,
		provideRevocationStore,

		providePasswordHasher,
		provideTokenIssuer,
		order_id.New,
		verification_code.New,
		provideActivityGateway,

		provideServiceActivity,
		provideServiceParcel,
		provideServiceRoute,
		provideServiceUser,
		provideServiceReport,
		provideServiceAuth,

		provideParcelStatsTask,
		provideTaskList,
		provideBackgroundWorkers,

		wire.Struct(new(Application), "*"),

		wire.Bind(new(ServiceUser), new(*userService.User)),
		wire.Bind(new(ServiceAuth), new(*authService.Auth)),
		wire.Bind(new(ServiceParcel), new(*parcelService.Parcel)),
		wire.Bind(new(ServiceRoute), new(*routeService.Route)),
		wire.Bind(new(ServiceActivity), new(*activityService.Activity)),
		wire.Bind(new(ServiceReport), new(*reportService.Report)),

		wire.Bind(new(activityService.Repository), new(*activityRepo.Repository)),
		wire.Bind(new(activityService.Publisher), new(*activityGateway.Gateway)),

		wire.Bind(new(parcelService.Repository), new(*parcelRepo.Repository)),
		wire.Bind(new(parcelService.UserRepository), new(*userRepo.Repository)),
		wire.Bind(new(parcelService.ActivityRecorder), new(*activityService.Activity)),
		wire.Bind(new(parcelService.OrderIDFactory), new(*order_id.Factory)),
		wire.Bind(new(parcelService.CodeFactory), new(*verification_code.Factory)),
		wire.Bind(new(parcelService.TxManager), new(*tx.Manager)),

		wire.Bind(new(userService.Repository), new(*userRepo.Repository)),
		wire.Bind(new(userService.ParcelReleaser), new(*parcelService.Parcel)),
		wire.Bind(new(userService.RouteRemover), new(*routeService.Route)),
		wire.Bind(new(userService.PasswordHasher), new(*password.Hasher)),
		wire.Bind(new(userService.ActivityRecorder), new(*activityService.Activity)),
		wire.Bind(new(userService.TxManager), new(*tx.Manager)),

		wire.Bind(new(routeService.Repository), new(*routeRepo.Repository)),
		wire.Bind(new(reportService.Repository), new(*reportRepo.Repository)),

		wire.Bind(new(authService.UserRepository), new(*userRepo.Repository)),
		wire.Bind(new(authService.PasswordComparer), new(*password.Hasher)),
		wire.Bind(new(authService.TokenIssuer), new(*auth_token.Issuer)),
		wire.Bind(new(authService.RevocationStore), new(*revocation.Store)),

		wire.Bind(new(parcel_stats.Service), new(*reportService.Report)),
	)
	return &Application{}, nil
}

// InitializeKafkaWorkerApp для Kafka воркера (cmd/worker-activity-recorded)
func InitializeKafkaWorkerApp(
	ctx context.Context,
	log logger.Logger,
	pool *pgxpool.Pool,
	getter *pgxv5.CtxGetter,
	cfg *config.Config,
) (*KafkaWorkerApp, error) {
	wire.Build(
		provideQuerier,
		provideActivityRepository,
		provideWorkerServiceActivity,

		wire.Bind(new(activityService.Repository), new(*activityRepo.Repository)),

		wire.Struct(new(KafkaWorkerApp), "*"),
	)
	return nil, nil
}
