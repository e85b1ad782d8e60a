package main

import (
	"context"
	"database/sql"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	"dormportal/internal/auth"
	"dormportal/internal/config"
	"dormportal/internal/database"
	httpapi "dormportal/internal/http"
	"dormportal/internal/logger"
	"dormportal/internal/repository"
	"dormportal/internal/service"
	"dormportal/internal/store"
)

func main() {
	cfg := config.Load()

	log, err := logger.New(cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		panic(err)
	}
	defer log.Sync()

	// Session tokens live in Redis when an address is configured, otherwise
	// in process memory (local dev, single instance).
	var kv store.KV
	var redisClient *redis.Client
	if cfg.Redis.Addr != "" {
		redisClient = redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		kv = store.NewRedisKV(redisClient)
		log.Info("Redis session store enabled", zap.String("addr", cfg.Redis.Addr))
	} else {
		kv = store.NewMemoryKV()
	}
	sessions := auth.NewSessions(kv, cfg.SessionTTL)

	// Repositories: Postgres when DATABASE_URL is set, in-memory otherwise.
	var db *sql.DB
	var (
		usersRepo         repository.UsersRepository
		announcementsRepo repository.AnnouncementsRepository
		tasksRepo         repository.TasksRepository
		dutiesRepo        repository.DutiesRepository
		shiftsRepo        repository.WorkShiftsRepository
		notificationsRepo repository.NotificationsRepository
		logsRepo          repository.LogsRepository
	)
	if cfg.DatabaseURL != "" {
		db, err = database.Open(cfg.DatabaseURL, 25, 5)
		if err != nil {
			log.Fatal("database connection failed", zap.Error(err))
		}
		usersRepo = repository.NewPostgresUsersRepository(db)
		announcementsRepo = repository.NewPostgresAnnouncementsRepository(db)
		tasksRepo = repository.NewPostgresTasksRepository(db)
		dutiesRepo = repository.NewPostgresDutiesRepository(db)
		shiftsRepo = repository.NewPostgresWorkShiftsRepository(db)
		notificationsRepo = repository.NewPostgresNotificationsRepository(db)
		logsRepo = repository.NewPostgresLogsRepository(db)
		log.Info("Postgres storage enabled")
	} else {
		usersRepo = repository.NewMemoryUsersRepository()
		announcementsRepo = repository.NewMemoryAnnouncementsRepository()
		tasksRepo = repository.NewMemoryTasksRepository()
		dutiesRepo = repository.NewMemoryDutiesRepository()
		shiftsRepo = repository.NewMemoryWorkShiftsRepository()
		notificationsRepo = repository.NewMemoryNotificationsRepository()
		logsRepo = repository.NewMemoryLogsRepository()
		log.Warn("DATABASE_URL not set, using in-memory storage")
	}

	api := httpapi.NewAPI(
		service.NewUserService(usersRepo, sessions, log),
		service.NewAnnouncementService(announcementsRepo, usersRepo, log),
		service.NewTaskService(tasksRepo, usersRepo, log),
		service.NewDutyService(dutiesRepo, usersRepo, log),
		service.NewWorkShiftService(shiftsRepo, usersRepo, log),
		service.NewNotificationService(notificationsRepo, usersRepo, log),
		service.NewLogService(logsRepo, usersRepo, log),
		sessions,
		log,
	)
	limiter := httpapi.NewLimiter(cfg.RateLimit.Requests, cfg.RateLimit.Window)
	srv := httpapi.NewServer(cfg.HTTP.Addr, api.Routes(limiter), log)

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Start()
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case <-sigCh:
	case err := <-errCh:
		log.Error("server stopped", zap.Error(err))
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	_ = srv.Stop(shutdownCtx)
	if redisClient != nil {
		_ = redisClient.Close()
	}
	if db != nil {
		_ = db.Close()
	}
}
