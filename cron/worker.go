package cron

import (
	"context"
	"time"

	"weddingplanner/config"
	"weddingplanner/services/notification"
	"weddingplanner/services/tasks"
	"weddingplanner/utils"

	"github.com/go-redis/redis/v8"
	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

// RedisOpt returns the asynq connection for the task database.
func RedisOpt() asynq.RedisClientOpt {
	return asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisTaskDB,
	}
}

// InitConfirmationWorker runs the confirmation worker in background until
// ctx is done.
func InitConfirmationWorker(ctx context.Context, notifier notification.Notifier) *asynq.Server {
	logger := utils.GetLogger().Named("ConfirmationWorker")

	srv := asynq.NewServer(
		RedisOpt(),
		asynq.Config{
			Concurrency: 10,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(tasks.TypeBookingConfirmation, handleConfirmationTask(notifier, logger))

	go monitorRedisConnection(ctx, logger)

	// Start async worker with retry logic
	go func() {
		logger.Info("Starting async worker")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			err := srv.Start(mux)
			if err == nil {
				<-ctx.Done()
				srv.Shutdown()
				return
			}
			logger.Warn("Failed to start worker",
				zap.Int("attempt", attempts),
				zap.Int("maxAttempts", maxAttempts),
				zap.Error(err))
			if attempts == maxAttempts {
				logger.Error("Max retry attempts reached, confirmation notices will not be delivered")
				return
			}
			select {
			case <-ctx.Done():
				return
			case <-time.After(time.Duration(attempts*2) * time.Second):
			}
		}
	}()
	return srv
}

func handleConfirmationTask(notifier notification.Notifier, logger *zap.Logger) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		p, err := tasks.ParseConfirmationTask(task)
		if err != nil {
			logger.Error("Invalid payload", zap.Error(err))
			// Retrying cannot fix a malformed payload.
			return asynq.SkipRetry
		}

		logger.Debug("Sending booking confirmation",
			zap.String("sessionID", p.SessionID),
			zap.String("bookingID", p.BookingID))

		if err := notifier.NotifyBookingConfirmed(ctx, p); err != nil {
			logger.Warn("Failed to send confirmation", zap.String("sessionID", p.SessionID), zap.Error(err))
			return err
		}
		return nil
	}
}

// monitorRedisConnection pings Redis periodically to detect failures at runtime.
func monitorRedisConnection(ctx context.Context, logger *zap.Logger) {
	opt := RedisOpt()
	client := redis.NewClient(&redis.Options{
		Addr:     opt.Addr,
		Password: opt.Password,
		DB:       opt.DB,
	})
	defer client.Close()

	ticker := time.NewTicker(10 * time.Second)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := client.Ping(ctx).Err(); err != nil {
				logger.Warn("Redis connection lost", zap.Error(err))
			}
		}
	}
}
