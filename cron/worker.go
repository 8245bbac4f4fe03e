package cron

import (
	"context"
	"log"
	"time"

	"stayhaven/config"
	bookingRepo "stayhaven/database/repository/booking"
	offerRepo "stayhaven/database/repository/offer"
	"stayhaven/utils"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

const (
	TypeBookingCompleteSweep = "booking:complete-sweep"
	TypeOfferExpireSweep     = "offer:expire-sweep"
)

// InitSweepWorker runs the async worker and its scheduler in background.
// The hourly sweep marks confirmed bookings past check-out as completed;
// the daily sweep deactivates offers past their window.
func InitSweepWorker(bookings bookingRepo.BookingRepository, offers offerRepo.OfferRepository) {
	redisOpts := asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
	}

	srv := asynq.NewServer(
		redisOpts,
		asynq.Config{
			Concurrency: 5,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(TypeBookingCompleteSweep, handleBookingCompleteSweep(bookings))
	mux.HandleFunc(TypeOfferExpireSweep, handleOfferExpireSweep(offers))

	scheduler := asynq.NewScheduler(redisOpts, &asynq.SchedulerOpts{Location: time.UTC})
	if _, err := scheduler.Register("@every 1h", asynq.NewTask(TypeBookingCompleteSweep, nil)); err != nil {
		log.Printf("[SweepWorker] failed to register booking sweep: %v", err)
	}
	if _, err := scheduler.Register("@daily", asynq.NewTask(TypeOfferExpireSweep, nil)); err != nil {
		log.Printf("[SweepWorker] failed to register offer sweep: %v", err)
	}

	go func() {
		if err := scheduler.Run(); err != nil {
			log.Printf("[SweepWorker] scheduler stopped: %v", err)
		}
	}()

	// Start async worker with retry logic
	go func() {
		log.Println("[SweepWorker] starting async worker...")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			if err := srv.Run(mux); err != nil {
				log.Printf("[SweepWorker] attempt %d/%d failed to start worker: %v", attempts, maxAttempts, err)

				if attempts == maxAttempts {
					log.Fatal("[SweepWorker] max retry attempts reached. Exiting.")
				}
				time.Sleep(time.Duration(attempts*2) * time.Second) // Exponential backoff
			} else {
				break
			}
		}
	}()
}

func handleBookingCompleteSweep(repo bookingRepo.BookingRepository) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		n, err := repo.CompleteExpired(time.Now().UTC())
		if err != nil {
			utils.GetLogger().Error("booking completion sweep failed", zap.Error(err))
			return err
		}
		if n > 0 {
			utils.GetLogger().Info("booking completion sweep", zap.Int64("completed", n))
		}
		return nil
	}
}

func handleOfferExpireSweep(repo offerRepo.OfferRepository) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		n, err := repo.DeactivateExpired(time.Now().UTC())
		if err != nil {
			utils.GetLogger().Error("offer expiry sweep failed", zap.Error(err))
			return err
		}
		if n > 0 {
			utils.GetLogger().Info("offer expiry sweep", zap.Int64("deactivated", n))
		}
		return nil
	}
}
