package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"weddingplanner/config"
	"weddingplanner/cron"
	"weddingplanner/database"
	bookingRepo "weddingplanner/database/repository/booking"
	"weddingplanner/handlers"
	"weddingplanner/middleware"
	"weddingplanner/models"
	"weddingplanner/routes"
	"weddingplanner/services/auth"
	"weddingplanner/services/booking"
	"weddingplanner/services/catalog"
	"weddingplanner/services/directory"
	"weddingplanner/services/location"
	"weddingplanner/services/notification"
	"weddingplanner/services/tasks"
	"weddingplanner/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

func main() {
	config.LoadConfig()
	cfg := config.AppConfig
	logger := utils.GetLogger()
	defer func() { _ = logger.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	httpClient := &http.Client{Timeout: cfg.HTTPClientTimeout}

	// Catalog.
	registry, err := catalog.NewRegistryFromConfig(cfg, httpClient)
	if err != nil {
		logger.Fatal("main: invalid catalog configuration", zap.Error(err))
	}
	loader := &catalog.Loader{
		Registry:   registry,
		Logger:     logger.Named("catalog"),
		Retries:    cfg.CatalogReadRetries,
		RetryDelay: cfg.CatalogReadRetryDelay,
	}

	// Session store.
	var redisClients []*redis.Client
	var store booking.SessionStore
	switch cfg.SessionStore {
	case "memory":
		store = booking.NewMemorySessionStore()
	default:
		cache := utils.GetCacheClient()
		redisClients = append(redisClients, cache)
		store = booking.NewRedisSessionStore(cache, cfg.SessionTTL)
	}

	// Booking submission.
	var submitter booking.Submitter
	switch cfg.BookingBackend {
	case "http":
		submitter = &booking.HTTPSubmitter{URL: cfg.BookingURL, HTTP: httpClient}
	case "mongo":
		if err := database.InitDB(ctx); err != nil {
			logger.Fatal("main: booking database unavailable", zap.Error(err))
		}
		defer database.Close(context.Background())
		repo := bookingRepo.NewMongoBookingRepo(database.MongoClient.Database(cfg.DatabaseName))
		if err := repo.EnsureIndexes(ctx); err != nil {
			logger.Warn("main: failed to ensure booking indexes", zap.Error(err))
		}
		submitter = repo
	default:
		submitter = booking.DisabledSubmitter{}
	}

	// Confirmation notices.
	notifier := &notification.LogNotifier{Logger: logger.Named("notification")}
	var dispatcher booking.ConfirmationDispatcher = tasks.InlineDispatcher{Notifier: notifier}
	if cfg.TasksEnabled {
		taskClient := asynq.NewClient(cron.RedisOpt())
		defer taskClient.Close()
		dispatcher = tasks.NewAsynqDispatcher(taskClient)
		cron.InitConfirmationWorker(ctx, notifier)
	}

	redirects := booking.NewTimerRedirector()
	defer redirects.Stop()

	checkoutService := &booking.DefaultCheckoutService{
		Store:         store,
		Catalog:       loader,
		Submitter:     submitter,
		Dispatcher:    dispatcher,
		Redirects:     redirects,
		Policy:        booking.ParseSubmitPolicy(cfg.SubmitPolicy),
		RedirectDelay: cfg.RedirectDelay,
		Logger:        logger.Named("checkout"),
	}

	placeholders := make([]models.DirectoryUser, 0, len(cfg.PlaceholderUsers))
	for _, p := range cfg.PlaceholderUsers {
		placeholders = append(placeholders, models.DirectoryUser{ID: p.ID, Name: p.Name, Email: p.Email})
	}
	userService := &directory.DefaultUserService{
		Directory:    directory.NewRESTDirectory(cfg.UserDirectoryURL, httpClient),
		Retries:      cfg.UserDirectoryRetries,
		RetryDelay:   cfg.UserDirectoryRetryDelay,
		Placeholders: placeholders,
		Logger:       logger.Named("directory"),
	}
	locationService := &location.DefaultLocationService{
		Directory: location.NewGraphQLDirectory(cfg.LocationsReadURL, cfg.LocationsWriteURL, httpClient),
		Logger:    logger.Named("location"),
	}
	adminCatalog := &catalog.AdminService{Registry: registry, Loader: loader, Logger: logger.Named("catalog")}

	signer, err := utils.NewTokenSigner(cfg.JWTSecret)
	if err != nil {
		logger.Fatal("main: JWT_SECRET must be set", zap.Error(err))
	}
	if len(cfg.Operators) == 0 {
		logger.Warn("main: no OPERATORS configured, nobody can log in")
	}
	authService := auth.NewAuthService(cfg.Operators, signer, cfg.TokenTTL)

	// Health snapshots.
	utils.CheckHealth(ctx, redisClients, database.MongoClient)
	utils.StartHealthMonitor(ctx, 30*time.Second, redisClients, database.MongoClient)

	// Create the Gin router.
	if config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware(cfg.MaxRequestsPerMin))
	router.Use(middleware.LocaleMiddleware(cfg.DefaultLocale))

	handlerBundle := handlers.NewHandlerBundle(
		authService,
		handlers.NewAuthHandler(authService),
		handlers.NewCheckoutHandler(checkoutService),
		handlers.NewAdminHandler(userService, adminCatalog, locationService),
	)
	routes.RegisterRoutes(router, handlerBundle)

	// Start the HTTP server.
	port := cfg.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:              "0.0.0.0:" + port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	<-ctx.Done()
	logger.Sugar().Info("main: server is shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Sugar().Errorf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
