package main

import (
	"context"
	"fmt"
	stdlog "log"
	"net"
	"net/http"
	_ "net/http/pprof" //nolint:gosec // localhost-only ${PPROF_PORT}
	"os"
	"os/signal"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	application "pathport/internal/app"
	"pathport/internal/handlers/rest/activity_get"
	"pathport/internal/handlers/rest/auth_login_post"
	"pathport/internal/handlers/rest/auth_logout_post"
	"pathport/internal/handlers/rest/auth_register_post"
	"pathport/internal/handlers/rest/earnings_get"
	"pathport/internal/handlers/rest/healthcheck_head"
	"pathport/internal/handlers/rest/parcel_cancel_post"
	"pathport/internal/handlers/rest/parcel_claim_post"
	"pathport/internal/handlers/rest/parcel_deliver_post"
	"pathport/internal/handlers/rest/parcel_get"
	"pathport/internal/handlers/rest/parcel_pickup_post"
	"pathport/internal/handlers/rest/parcel_post"
	"pathport/internal/handlers/rest/parcels_available_get"
	"pathport/internal/handlers/rest/parcels_get"
	"pathport/internal/handlers/rest/ping_get"
	"pathport/internal/handlers/rest/profile_get"
	"pathport/internal/handlers/rest/profile_put"
	"pathport/internal/handlers/rest/route_delete"
	"pathport/internal/handlers/rest/route_post"
	"pathport/internal/handlers/rest/route_toggle_post"
	"pathport/internal/handlers/rest/routes_get"
	"pathport/internal/handlers/rest/stats_get"
	"pathport/internal/handlers/rest/tracking_get"
	"pathport/internal/handlers/rest/user_delete"
	"pathport/internal/handlers/rest/user_post"
	"pathport/internal/handlers/rest/user_suspend_post"
	"pathport/internal/handlers/rest/user_verify_post"
	"pathport/internal/handlers/rest/users_export_get"
	"pathport/internal/handlers/rest/users_get"
	"pathport/internal/pkg/access"
	"pathport/internal/pkg/config"
	"pathport/internal/pkg/dotenv"
	"pathport/internal/pkg/kafka"
	metrics_system "pathport/internal/pkg/metrics"
	"pathport/internal/pkg/middlewares/auth"
	"pathport/internal/pkg/middlewares/capability"
	"pathport/internal/pkg/middlewares/graceful_shutdown"
	"pathport/internal/pkg/middlewares/metrics"
	"pathport/internal/pkg/middlewares/rate_limiter"
	"pathport/internal/pkg/middlewares/timeout"
	"pathport/internal/pkg/postgres"
	redisclient "pathport/internal/pkg/redis"
	"pathport/pkg/logger"
	"pathport/pkg/logger/zap_adapter"
	"pathport/pkg/token_bucket"
)

// неактивные bucket'ы клиентов удаляются через это время
const rateLimiterSweepTTL = 10 * time.Minute

func main() {
	// .env и конфиг читаются до логгера: уровень логирования приходит из конфига
	_, envStatErr := os.Stat(".env")
	if envStatErr == nil {
		if err := dotenv.Load(); err != nil {
			stdlog.Fatalf("failed to load .env file: %v", err)
		}
	}

	cfg, err := config.Load()
	if err != nil {
		stdlog.Fatalf("load config: %v", err)
	}

	zapLogger, err := zap_adapter.NewZapAdapter(cfg.Log.Level)
	if err != nil {
		stdlog.Fatalf("failed to initialize logger: %v", err)
	}
	defer func() {
		if err := zapLogger.Sync(); err != nil {
			stdlog.Printf("failed to sync logger: %v", err)
		}
	}()

	var appLogger logger.Logger = zapLogger
	mainLog := appLogger.With()

	mainLog.Info("starting pathport application")
	if envStatErr != nil {
		mainLog.Warn("No .env file found, using system environment variables")
	}

	err = run(context.Background(), cfg, appLogger)
	if err != nil {
		mainLog.Error("application failed", logger.NewField("error", err))
		return
	}
}

//nolint:contextcheck // Получаю предупреждения от линтера в местах де наследуюсь от context.Background(), хотя это часть gracefull shutdown
func run(ctx context.Context, cfg *config.Config, log logger.Logger) error {
	const (
		shutdownPeriod      = 15 * time.Second
		shutdownHardPeriod  = 3 * time.Second
		readinessDrainDelay = 5 * time.Second
	)

	// https://victoriametrics.com/blog/go-graceful-shutdown/#b-use-basecontext-to-provide-a-global-context-to-all-connections
	var isShuttingDown atomic.Bool

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	runLog := log.With()

	pool, err := postgres.NewConnPool(ctx, log, &cfg.Database)
	if err != nil {
		return fmt.Errorf("database: %w", err)
	}
	defer pool.Close()

	if cfg.Database.MigrationsEnabled {
		if err := postgres.Migrate(ctx, log, pool); err != nil {
			return fmt.Errorf("migrations: %w", err)
		}
	}

	redisClient, err := redisclient.NewClient(ctx, log, &cfg.Redis)
	if err != nil {
		return fmt.Errorf("redis: %w", err)
	}
	defer func() {
		if err := redisClient.Close(); err != nil {
			runLog.Error("failed to close redis client",
				logger.NewField("error", err),
			)
		}
	}()

	producer, err := kafka.NewSyncProducer(ctx, log, &cfg.Kafka, kafka.SplitBrokers(cfg.Kafka.Brokers))
	if err != nil {
		return fmt.Errorf("kafka producer: %w", err)
	}
	defer func() {
		if err := producer.Close(); err != nil {
			runLog.Error("failed to close kafka producer",
				logger.NewField("error", err),
			)
		}
	}()

	businessApp, err := application.InitializeApplication(ctx, log, pool, pgxv5.DefaultCtxGetter, redisClient, producer, cfg)
	if err != nil {
		return fmt.Errorf("business logic: %w", err)
	}

	if cfg.Admin.Email != "" {
		admin, created, err := businessApp.ServiceUser.EnsureAdmin(ctx, cfg.Admin.Email, cfg.Admin.Password, cfg.Admin.Name)
		if err != nil {
			return fmt.Errorf("ensure admin: %w", err)
		}
		runLog.Info("admin account ready",
			logger.NewField("admin_id", admin.ID),
			logger.NewField("created", created),
		)
	}

	metrics_system.StartSystemMetricsCollector()

	// ongoingCtx используется для BaseContext и не должен отменяться при SIGTERM.
	// Он отменяется только после server.Shutdown() для завершения in-flight запросов.
	// https://victoriametrics.com/blog/go-graceful-shutdown/#b-use-basecontext-to-provide-a-global-context-to-all-connections
	ongoingCtx, stopOngoingGracefully := context.WithCancel(context.Background())
	defer stopOngoingGracefully()

	// основной http сервер
	server := &http.Server{
		Addr:    fmt.Sprintf(":%s", cfg.Server.Port),
		Handler: initRouter(ongoingCtx, log, &isShuttingDown, businessApp, cfg.Server),
		BaseContext: func(_ net.Listener) context.Context {
			return ongoingCtx
		},

		ReadHeaderTimeout: 5 * time.Second, // Slowloris DoS gosec G112
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		defer close(serverErr)
		runLog.Info("server starting",
			logger.NewField("port", cfg.Server.Port),
		)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErr <- err
		}
	}()
	// основной http сервер

	// pprof http сервер
	var pprofServer *http.Server
	var pprofServerErr chan error
	if cfg.Server.PprofEnabled {
		pprofServer = &http.Server{
			Addr:    fmt.Sprintf(":%s", cfg.Server.PprofPort),
			Handler: initPprofRouter(&isShuttingDown),
			BaseContext: func(_ net.Listener) context.Context {
				return ongoingCtx
			},

			ReadHeaderTimeout: 5 * time.Second, // Slowloris DoS gosec G112
			ReadTimeout:       60 * time.Second,
			WriteTimeout:      60 * time.Second,
			IdleTimeout:       60 * time.Second,
		}

		pprofServerErr = make(chan error, 1)
		go func() {
			defer close(pprofServerErr)
			runLog.Info("pprof server starting",
				logger.NewField("port", cfg.Server.PprofPort),
			)
			if err := pprofServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				pprofServerErr <- err
			}
		}()
	}
	// pprof http сервер

	select {
	case <-ctx.Done():
		runLog.Info("Shutdown signal received")
	case err := <-serverErr:
		return fmt.Errorf("server: %w", err)
	case err := <-pprofServerErr: // if !cfg.Server.PprofEnabled будет nil по умолчанию, и данный кейс будет проигнорирован
		return fmt.Errorf("pprof server: %w", err)
	}

	stop()
	isShuttingDown.Store(true)

	time.Sleep(readinessDrainDelay)
	runLog.Info("draining requests")

	// shutdownCtx должен быть независим от ctx, который уже отменен на этом этапе.
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownPeriod)

	defer cancel()

	var shutdownErr error
	err = server.Shutdown(shutdownCtx)
	if pprofServer != nil {
		shutdownErr = pprofServer.Shutdown(shutdownCtx)
		if shutdownErr != nil {
			runLog.Error("pprof server shutdown error", logger.NewField("error", shutdownErr))
		} else {
			runLog.Info("pprof server stopped")
		}
	}

	stopOngoingGracefully()
	if err != nil || shutdownErr != nil {
		runLog.Info("Graceful shutdown timeout, forcing close")
		time.Sleep(shutdownHardPeriod)
	}

	if err := businessApp.BackgroundWorkers.Wait(); err != nil {
		runLog.Error("background workers stopped with error", logger.NewField("error", err))
	}

	runLog.Info("Server stopped")
	return nil
}

func initRouter(ongoingCtx context.Context, log logger.Logger, isShuttingDown *atomic.Bool, app *application.Application, cfg config.HTTPServer) http.Handler {
	router := mux.NewRouter()

	router.Use(graceful_shutdown.Middleware(isShuttingDown, ongoingCtx))

	router.Use(timeout.Middleware(cfg.RequestTimeout))
	router.Use(metrics.Middleware(log))
	router.Use(rate_limiter.Middleware(log, cfg.RateLimiterQPS, token_bucket.NewKeyedTokenBucket(cfg.RateLimiterBurst, float64(cfg.RateLimiterQPS), rateLimiterSweepTTL)))
	router.Handle("/metrics", promhttp.Handler())

	router.Handle("/healthcheck", healthcheck_head.New(isShuttingDown)).Methods("HEAD")
	router.Handle("/ping", ping_get.New(log)).Methods("GET")

	router.Handle("/auth/register", auth_register_post.New(log, app.ServiceUser)).Methods("POST")
	router.Handle("/auth/login", auth_login_post.New(log, app.ServiceAuth)).Methods("POST")
	router.Handle("/track/{order_id}", tracking_get.New(log, app.ServiceParcel)).Methods("GET")

	// все что ниже требует Bearer токен, права проверяются на каждом маршруте
	api := router.NewRoute().Subrouter()
	api.Use(auth.Middleware(log, app.ServiceAuth))

	guard := func(c access.Capability, h http.Handler) http.Handler {
		return capability.Require(log, c)(h)
	}

	api.Handle("/auth/logout", guard(access.ProfileRead, auth_logout_post.New(log, app.ServiceAuth))).Methods("POST")
	api.Handle("/profile", guard(access.ProfileRead, profile_get.New(log, app.ServiceUser))).Methods("GET")
	api.Handle("/profile", guard(access.ProfileRead, profile_put.New(log, app.ServiceUser))).Methods("PUT")

	api.Handle("/parcels", guard(access.ParcelCreate, parcel_post.New(log, app.ServiceParcel))).Methods("POST")
	api.Handle("/parcels", guard(access.ParcelList, parcels_get.New(log, app.ServiceParcel))).Methods("GET")
	api.Handle("/parcels/available", guard(access.ParcelClaim, parcels_available_get.New(log, app.ServiceParcel))).Methods("GET")
	api.Handle("/parcels/pickup", guard(access.ParcelVerifyCode, parcel_pickup_post.New(log, app.ServiceParcel))).Methods("POST")
	api.Handle("/parcels/deliver", guard(access.ParcelVerifyCode, parcel_deliver_post.New(log, app.ServiceParcel))).Methods("POST")
	api.Handle("/parcels/{id:[0-9]+}", guard(access.ParcelRead, parcel_get.New(log, app.ServiceParcel))).Methods("GET")
	api.Handle("/parcels/{id:[0-9]+}/claim", guard(access.ParcelClaim, parcel_claim_post.New(log, app.ServiceParcel))).Methods("POST")
	api.Handle("/parcels/{id:[0-9]+}/cancel", guard(access.ParcelCancel, parcel_cancel_post.New(log, app.ServiceParcel))).Methods("POST")

	api.Handle("/routes", guard(access.RouteManage, routes_get.New(log, app.ServiceRoute))).Methods("GET")
	api.Handle("/routes", guard(access.RouteManage, route_post.New(log, app.ServiceRoute))).Methods("POST")
	api.Handle("/routes/{id:[0-9]+}/toggle", guard(access.RouteManage, route_toggle_post.New(log, app.ServiceRoute))).Methods("POST")
	api.Handle("/routes/{id:[0-9]+}", guard(access.RouteManage, route_delete.New(log, app.ServiceRoute))).Methods("DELETE")

	api.Handle("/earnings", guard(access.EarningsRead, earnings_get.New(log, app.ServiceParcel))).Methods("GET")

	api.Handle("/admin/users", guard(access.UserManage, users_get.New(log, app.ServiceUser))).Methods("GET")
	api.Handle("/admin/users", guard(access.UserManage, user_post.New(log, app.ServiceUser))).Methods("POST")
	api.Handle("/admin/users/export", guard(access.UserManage, users_export_get.New(log, app.ServiceUser))).Methods("GET")
	api.Handle("/admin/users/{id:[0-9]+}/verify", guard(access.UserManage, user_verify_post.New(log, app.ServiceUser))).Methods("POST")
	api.Handle("/admin/users/{id:[0-9]+}/suspend", guard(access.UserManage, user_suspend_post.New(log, app.ServiceUser))).Methods("POST")
	api.Handle("/admin/users/{id:[0-9]+}", guard(access.UserManage, user_delete.New(log, app.ServiceUser))).Methods("DELETE")

	api.Handle("/admin/activity", guard(access.ActivityRead, activity_get.New(log, app.ServiceActivity))).Methods("GET")
	api.Handle("/admin/stats", guard(access.StatsRead, stats_get.New(log, app.ServiceReport))).Methods("GET")

	return router
}

func initPprofRouter(isShuttingDown *atomic.Bool) http.Handler {
	router := mux.NewRouter()

	router.Handle("/healthcheck", healthcheck_head.New(isShuttingDown)).Methods("HEAD")
	router.PathPrefix("/debug/pprof/").Handler(http.DefaultServeMux)

	return router
}
