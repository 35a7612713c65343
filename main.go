package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/glucokit/glucokit/internal/cache"
	"github.com/glucokit/glucokit/internal/config"
	"github.com/glucokit/glucokit/internal/database"
	"github.com/glucokit/glucokit/internal/domain"
	apperrors "github.com/glucokit/glucokit/internal/errors"
	"github.com/glucokit/glucokit/internal/interfaces"
	"github.com/glucokit/glucokit/internal/iob"
	"github.com/glucokit/glucokit/internal/logger"
	"github.com/glucokit/glucokit/internal/repository"
	"github.com/glucokit/glucokit/internal/services"
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	log.Println("Starting glucokit evaluation worker...")

	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if err := logger.InitWithConfig(logger.Config{
		Level:      cfg.Logger.Level,
		OutputPath: cfg.Logger.OutputPath,
		Format:     cfg.Logger.Format,
	}); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}

	db, err := database.NewPostgresDB(cfg.DB)
	if err != nil {
		logger.Fatal("Failed to connect to database", "error", err)
	}

	interval := time.Duration(cfg.Evaluation.IntervalMinutes) * time.Minute

	var resultCache services.ResultCache
	if cfg.Redis.Enabled {
		iobCache, err := cache.NewIOBCache(cfg.Redis.Host, cfg.Redis.Port, interval)
		if err != nil {
			logger.Warn("Redis unavailable, continuing without IOB cache", "error", err)
		} else {
			defer iobCache.Close()
			resultCache = iobCache
		}
	}

	// The duration table is fixed apart from the short-acting convention,
	// which deployments choose once via config.
	durations := iob.DefaultDurations()
	durations[domain.ClassShort] = float64(cfg.Evaluation.ShortActingHours)

	userRepo := repository.NewUserRepository(db)
	evaluation := services.NewEvaluationService(
		repository.NewDoseRepository(db),
		repository.NewGlucoseRepository(db),
		repository.NewAlertRepository(db),
		iob.NewEngine(durations),
		resultCache,
	)
	logger.Info("Services initialized", "interval", interval.String())

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	runLoop(ctx, userRepo, evaluation, interval)
	logger.Info("Evaluation worker stopped")
}

// runLoop evaluates every active user once per tick until the context is
// cancelled. One user's failure never blocks the rest of the pass.
func runLoop(ctx context.Context, users domain.UserProvider, evaluation interfaces.EvaluationServiceInterface, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	errHandler := apperrors.NewHandler(logger.GetLogger())
	for {
		evaluateAll(ctx, users, evaluation, errHandler)

		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}

func evaluateAll(ctx context.Context, users domain.UserProvider, evaluation interfaces.EvaluationServiceInterface, errHandler *apperrors.Handler) {
	active, err := users.ActiveUsers(ctx)
	if err != nil {
		errHandler.Handle(ctx, apperrors.NewDatabaseError(err))
		return
	}

	now := time.Now()
	for _, user := range active {
		result, alerts, err := evaluation.EvaluateUser(ctx, user.ID, now)
		if err != nil {
			logger.Error("Evaluation failed", "user_id", user.ID, "error", err)
			continue
		}
		if len(alerts) > 0 {
			logger.Info("Alerts fired",
				"user_id", user.ID,
				"total_iob", result.TotalIOB,
				"alert_count", len(alerts))
		}
	}
}
