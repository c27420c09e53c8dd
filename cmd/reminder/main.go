package main

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/lib/pq"
	"github.com/robfig/cron/v3"

	"github.com/m04kA/office-hours-service/internal/config"
	appointmentRepo "github.com/m04kA/office-hours-service/internal/infra/storage/appointment"
	"github.com/m04kA/office-hours-service/internal/integrations/notifications"
	"github.com/m04kA/office-hours-service/internal/jobs/reminder"
	"github.com/m04kA/office-hours-service/pkg/dbmetrics"
	"github.com/m04kA/office-hours-service/pkg/logger"
	"github.com/m04kA/office-hours-service/pkg/metrics"
	"github.com/m04kA/office-hours-service/pkg/mq"
)

func main() {
	cfg, err := config.Load("config.toml", ".env")
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level, cfg.Logs.Format)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	if !cfg.Reminder.Enabled {
		log.Info("Reminder worker disabled in config, exiting")
		return
	}

	loc, err := cfg.Scheduling.Location()
	if err != nil {
		log.Fatal("Invalid scheduling timezone: %v", err)
	}

	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		log.Fatal("Failed to connect to database: %v", err)
	}
	defer db.Close()

	db.SetMaxOpenConns(2)
	db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)
	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}

	var notifier reminder.Notifier = notifications.NewLogNotifier(log)
	if cfg.RabbitMQ.Enabled {
		publisher, err := mq.NewPublisher(cfg.RabbitMQ.URL, cfg.RabbitMQ.Exchange, cfg.Metrics.ServiceName+"-reminder")
		if err != nil {
			log.Fatal("Failed to connect to RabbitMQ: %v", err)
		}
		defer publisher.Close()
		// воркер не отдаёт /metrics, nil-коллектор ничего не пишет
		var noMetrics *metrics.Metrics
		notifier = notifications.NewNotifier(publisher, noMetrics, log)
	}

	job := reminder.NewJob(
		appointmentRepo.NewRepository(dbmetrics.Wrap(db, nil)),
		notifier,
		reminder.Options{
			Location: loc,
			Offset:   cfg.Reminder.Offset(),
			Window:   cfg.Reminder.Window(),
		},
		log,
	)

	c := cron.New(cron.WithLocation(loc))
	if _, err := job.Register(c, cfg.Reminder.Schedule); err != nil {
		log.Fatal("Failed to schedule reminder job: %v", err)
	}
	c.Start()
	log.Info("Reminder worker started (schedule=%q, offset=%s, window=%s)",
		cfg.Reminder.Schedule, cfg.Reminder.Offset(), cfg.Reminder.Window())

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Stopping reminder worker...")
	stopCtx := c.Stop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Server.ShutdownTimeout)*time.Second)
	defer cancel()

	select {
	case <-stopCtx.Done():
		log.Info("Reminder worker stopped gracefully")
	case <-shutdownCtx.Done():
		log.Error("Reminder worker forced to stop: running job did not finish in time")
	}
}
