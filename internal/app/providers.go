package app

import (
	"context"
	"time"

	"github.com/IBM/sarama"
	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"

	activityGateway "pathport/internal/gateway/kafka/activity"
	"pathport/internal/handlers/tasks/parcel_stats"
	"pathport/internal/pkg/auth_token"
	"pathport/internal/pkg/config"
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

type (
	ParcelStatsInterval time.Duration
)

type Application struct {
	ServiceUser       ServiceUser
	ServiceAuth       ServiceAuth
	ServiceParcel     ServiceParcel
	ServiceRoute      ServiceRoute
	ServiceActivity   ServiceActivity
	ServiceReport     ServiceReport
	BackgroundWorkers *background.Worker
}

type KafkaWorkerApp struct {
	ActivityService *activityService.Activity
}

func provideTxManager(pool *pgxpool.Pool) *tx.Manager {
	return tx.New(pool)
}

func provideQuerier(pool *pgxpool.Pool, getter *pgxv5.CtxGetter) *querier.Querier {
	return querier.New(pool, getter)
}

func provideUserRepository(querier *querier.Querier) *userRepo.Repository {
	return userRepo.New(querier)
}

func provideParcelRepository(querier *querier.Querier) *parcelRepo.Repository {
	return parcelRepo.New(querier)
}

func provideRouteRepository(querier *querier.Querier) *routeRepo.Repository {
	return routeRepo.New(querier)
}

func provideActivityRepository(querier *querier.Querier) *activityRepo.Repository {
	return activityRepo.New(querier)
}

func provideReportRepository(querier *querier.Querier) *reportRepo.Repository {
	return reportRepo.New(querier)
}

func provideRevocationStore(client *redis.Client) *revocation.Store {
	return revocation.New(client)
}

func providePasswordHasher(cfg *config.Config) *password.Hasher {
	return password.New(cfg.Auth.BcryptCost)
}

func provideTokenIssuer(cfg *config.Config) *auth_token.Issuer {
	return auth_token.New(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.TokenTTL)
}

func provideActivityGateway(producer sarama.SyncProducer, cfg *config.Config) *activityGateway.Gateway {
	return activityGateway.New(producer, cfg.Kafka.Topic)
}

func provideServiceActivity(
	log logger.Logger,
	repository activityService.Repository,
	publisher activityService.Publisher,
) *activityService.Activity {
	return activityService.New(log, repository, publisher)
}

// provideWorkerServiceActivity воркер сам читает топик, публиковать ему некуда
func provideWorkerServiceActivity(log logger.Logger, repository activityService.Repository) *activityService.Activity {
	return activityService.New(log, repository, nil)
}

func provideServiceParcel(
	repository parcelService.Repository,
	users parcelService.UserRepository,
	activity parcelService.ActivityRecorder,
	orderIDs parcelService.OrderIDFactory,
	codes parcelService.CodeFactory,
	txManager parcelService.TxManager,
	cfg *config.Config,
) *parcelService.Parcel {
	return parcelService.New(
		repository,
		users,
		activity,
		orderIDs,
		codes,
		txManager,
		parcelService.Config{
			OrderIDAttempts:     cfg.Parcels.OrderIDAttempts,
			DefaultRewardPoints: cfg.Parcels.DefaultRewardPoints,
		},
	)
}

func provideServiceRoute(repository routeService.Repository) *routeService.Route {
	return routeService.New(repository)
}

func provideServiceUser(
	repository userService.Repository,
	parcels userService.ParcelReleaser,
	routes userService.RouteRemover,
	hasher userService.PasswordHasher,
	activity userService.ActivityRecorder,
	txManager userService.TxManager,
) *userService.User {
	return userService.New(repository, parcels, routes, hasher, activity, txManager)
}

func provideServiceReport(repository reportService.Repository) *reportService.Report {
	return reportService.New(repository)
}

func provideServiceAuth(
	users authService.UserRepository,
	hasher authService.PasswordComparer,
	tokens authService.TokenIssuer,
	revoked authService.RevocationStore,
) *authService.Auth {
	return authService.New(users, hasher, tokens, revoked)
}

func provideParcelStatsInterval(cfg *config.Config) ParcelStatsInterval {
	return ParcelStatsInterval(cfg.Tasks.ParcelStatsInterval)
}

func provideParcelStatsTask(
	log logger.Logger,
	service parcel_stats.Service,
	interval ParcelStatsInterval,
) *parcel_stats.ParcelStats {
	return parcel_stats.NewParcelStats(log, service, time.Duration(interval))
}

func provideTaskList(
	parcelStatsTask *parcel_stats.ParcelStats,
) []background.Task {
	return []background.Task{
		parcelStatsTask,
	}
}

func provideBackgroundWorkers(ctx context.Context, log logger.Logger, tasks []background.Task) (*background.Worker, error) {
	return background.New(ctx, log, tasks)
}
