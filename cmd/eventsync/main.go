package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/na2na-p/eventsync/internal/config"
	"github.com/na2na-p/eventsync/internal/handler"
	"github.com/na2na-p/eventsync/internal/handler/auth"
	appMiddleware "github.com/na2na-p/eventsync/internal/handler/middleware"
	"github.com/na2na-p/eventsync/internal/infrastructure/backend"
	"github.com/na2na-p/eventsync/internal/infrastructure/logging"
	"github.com/na2na-p/eventsync/internal/infrastructure/oidc"
	"github.com/na2na-p/eventsync/internal/infrastructure/redis"
	"github.com/na2na-p/eventsync/internal/infrastructure/s3"
	"github.com/na2na-p/eventsync/internal/query"
	"github.com/na2na-p/eventsync/internal/usecase"
)

const (
	readTimeout     = 30 * time.Second
	shutdownTimeout = 10 * time.Second
	idleTimeout     = 120 * time.Second
	jwksHTTPTimeout = 10 * time.Second
)

func main() {
	slog.SetDefault(logging.NewJSONLogger(os.Stdout, slog.LevelInfo))

	if err := run(); err != nil {
		slog.Error("application failed", "error", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := logging.NewJSONLogger(os.Stdout, logging.ParseLevel(cfg.Log.Level))
	slog.SetDefault(logger)

	ctx := context.Background()

	redisConn, err := redis.Connect(ctx, redis.Config{
		Host:     cfg.Redis.Host,
		Port:     cfg.Redis.Port,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err != nil {
		return err
	}
	redisClient := redis.NewClient(redisConn)
	defer func() { _ = redisClient.Close() }()
	slog.Info("Redis connection established", "redis", cfg.Redis.String())

	s3Config := s3.Config{
		Endpoint:        cfg.S3.Endpoint,
		AccessKeyID:     cfg.S3.AccessKeyID,
		SecretAccessKey: cfg.S3.SecretAccessKey,
		Region:          cfg.S3.Region,
		Bucket:          cfg.S3.Bucket,
		PublicBaseURL:   cfg.S3.PublicBaseURL,
		URLTTL:          cfg.S3.URLTTL,
	}
	photoStorage := s3.NewClient(s3.NewConnection(s3Config), s3Config)
	slog.Info("S3 client initialized", "s3", cfg.S3.String())

	bindingFactory, err := backend.NewFactory(backend.Config{
		BaseURL: cfg.Backend.BaseURL,
		Timeout: cfg.Backend.Timeout,
	}, nil)
	if err != nil {
		return err
	}

	jwks := oidc.NewJWKSFetcher(redisClient, &http.Client{Timeout: jwksHTTPTimeout}, cfg.Identity.JWKSURL, cfg.Identity.Issuer)
	verifier, err := oidc.NewVerifier(oidc.Config{
		JWKSURL:  cfg.Identity.JWKSURL,
		Issuer:   cfg.Identity.Issuer,
		Audience: cfg.Identity.Audience,
	}, jwks)
	if err != nil {
		return err
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	metrics := query.NewMetrics(registry)

	sessions := usecase.NewSessionRegistry(
		bindingFactory,
		logger,
		[]query.Option{
			query.WithStaleTime(cfg.Query.StaleTime),
			query.WithRetry(cfg.Query.Retry),
			query.WithRetryDelay(cfg.Query.RetryDelay),
			query.WithLogger(logger),
			query.WithMetrics(metrics),
		},
		usecase.WithContestPollInterval(cfg.Query.ContestPollInterval),
	)
	defer sessions.CloseAll()

	sweepCtx, stopSweeper := context.WithCancel(ctx)
	defer stopSweeper()
	go sessions.RunSweeper(sweepCtx, cfg.Identity.SessionSweepInterval)

	authUC := usecase.NewAuthUseCase(
		verifier,
		redis.NewSessionStore(redisClient, nil),
		sessions,
		cfg.Identity.SessionTTL,
		logger,
	)

	readinessUC := usecase.NewReadinessUseCase(
		redis.NewHealthChecker(redisClient),
		s3.NewHealthChecker(photoStorage),
		backend.NewHealthChecker(bindingFactory),
	)

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.HTTPErrorHandler = appMiddleware.CustomHTTPErrorHandler

	ipExtractor, err := buildIPExtractor(cfg.Server.TrustedProxyCIDRs)
	if err != nil {
		return err
	}
	e.IPExtractor = ipExtractor

	e.Use(middleware.Recover())
	e.Use(middleware.RequestID())
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogStatus:   true,
		LogURI:      true,
		LogMethod:   true,
		LogLatency:  true,
		LogError:    true,
		HandleError: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			attrs := []slog.Attr{
				slog.String("method", v.Method),
				slog.String("uri", appMiddleware.MaskSensitiveParams(v.URI)),
				slog.Int("status", v.Status),
				slog.Duration("latency", v.Latency),
			}
			if v.Error != nil {
				attrs = append(attrs, slog.String("error", v.Error.Error()))
				slog.LogAttrs(c.Request().Context(), slog.LevelError, "REQUEST", attrs...)
			} else {
				slog.LogAttrs(c.Request().Context(), slog.LevelInfo, "REQUEST", attrs...)
			}
			return nil
		},
	}))

	e.GET("/healthz", handler.NewHealthHandler(sessions))
	e.GET("/readyz", handler.NewReadyzHandler(readinessUC).Handle)
	e.GET("/metrics", echo.WrapHandler(promhttp.HandlerFor(registry, promhttp.HandlerOpts{})))

	cookieConfig := auth.CookieConfig{
		Secure: cfg.Server.CookieSecure,
		Domain: cfg.Server.CookieDomain,
	}
	e.POST("/auth/login", auth.LoginHandler(authUC, cookieConfig))
	e.POST("/auth/logout", auth.LogoutHandler(authUC, cookieConfig))

	photoHandler := handler.NewPhotoHandler(photoStorage, cfg.Server.MaxPhotoSize)
	contestHandler := handler.NewContestHandler(cfg.Server.StreamKeepAlive)

	v1 := e.Group("/v1")
	v1.Use(appMiddleware.SessionAuth(authUC))

	v1.GET("/profile", handler.GetProfileHandler)
	v1.PUT("/profile", handler.PutProfileHandler)
	v1.GET("/profile/setup", handler.GetProfileSetupHandler)
	v1.GET("/users/:principal/profile", handler.GetUserProfileHandler)
	v1.GET("/role", handler.GetRoleHandler)
	v1.POST("/roles", handler.PostRoleHandler)
	v1.GET("/admin", handler.GetAdminHandler)

	v1.GET("/tickets", handler.GetTicketsHandler)
	v1.POST("/tickets", handler.PostTicketHandler)
	v1.GET("/tickets/:id", handler.GetTicketHandler)
	v1.POST("/tickets/:id/validate", handler.ValidateTicketHandler)
	v1.POST("/tickets/:id/refund", handler.RefundTicketHandler)

	v1.GET("/favorites", handler.GetFavoritesHandler)
	v1.PUT("/favorites/:id", handler.PutFavoriteHandler)
	v1.DELETE("/favorites/:id", handler.DeleteFavoriteHandler)

	v1.GET("/announcements", handler.GetAnnouncementsHandler)
	v1.POST("/announcements", handler.PostAnnouncementHandler)
	v1.DELETE("/announcements/:id", handler.DeleteAnnouncementHandler)

	v1.GET("/photos", photoHandler.HandleList)
	v1.POST("/photos", photoHandler.HandleCreate)
	v1.DELETE("/photos/:id", photoHandler.HandleDelete)

	v1.GET("/wallet/balance", handler.GetBalanceHandler)
	v1.PUT("/wallet/balance", handler.PutBalanceHandler)
	v1.GET("/wallet/transactions", handler.GetTransactionsHandler)
	v1.POST("/wallet/transactions", handler.PostTransactionHandler)

	v1.GET("/contest/entries", contestHandler.HandleList)
	v1.POST("/contest/entries", contestHandler.HandleCreate)
	v1.GET("/contest/entries/stream", contestHandler.HandleStream)
	v1.POST("/contest/entries/:id/vote", contestHandler.HandleVote)

	v1.GET("/quotes", handler.GetQuotesHandler)
	v1.POST("/quotes", handler.PostQuoteHandler)

	// SSEの接続を切らないよう書き込みタイムアウトは設けない
	server := &http.Server{
		Addr:        ":" + cfg.Server.Port,
		ReadTimeout: readTimeout,
		IdleTimeout: idleTimeout,
	}
	// SSEのストリームはセッションが閉じられるまで終わらないため、停止処理の開始時に閉じる
	server.RegisterOnShutdown(sessions.CloseAll)

	errChan := make(chan error, 1)
	go func() {
		slog.Info("starting server", "port", cfg.Server.Port)
		if err := e.StartServer(server); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- err
		}
		close(errChan)
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case <-quit:
		slog.Info("received shutdown signal")
	case err := <-errChan:
		if err != nil {
			return err
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	slog.Info("shutting down server")
	stopSweeper()
	if err := server.Shutdown(shutdownCtx); err != nil {
		return err
	}

	slog.Info("server stopped gracefully")
	return nil
}

// buildIPExtractor は設定に基づいてIPエクストラクタを構築する。
// 信頼するプロキシのCIDRが指定されている場合、そのCIDRからのX-Forwarded-Forヘッダーのみを信頼する。
func buildIPExtractor(trustedProxyCIDRs []string) (echo.IPExtractor, error) {
	if len(trustedProxyCIDRs) == 0 {
		slog.Info("trusted proxy CIDRs not configured, using direct IP extraction")
		return echo.ExtractIPDirect(), nil
	}

	trustOptions := make([]echo.TrustOption, 0, len(trustedProxyCIDRs))
	for _, cidr := range trustedProxyCIDRs {
		_, ipNet, err := net.ParseCIDR(cidr)
		if err != nil {
			return nil, fmt.Errorf("invalid trusted proxy CIDR %q: %w", cidr, err)
		}
		trustOptions = append(trustOptions, echo.TrustIPRange(ipNet))
	}

	slog.Info("trusted proxy CIDRs configured", "cidrs", trustedProxyCIDRs)
	return echo.ExtractIPFromXFFHeader(trustOptions...), nil
}
