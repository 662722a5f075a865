package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/cmlabs-hris/timesheet-portal/internal/config"
	appHTTP "github.com/cmlabs-hris/timesheet-portal/internal/handler/http"
	"github.com/cmlabs-hris/timesheet-portal/internal/pkg/backend"
	"github.com/cmlabs-hris/timesheet-portal/internal/pkg/cron"
	"github.com/cmlabs-hris/timesheet-portal/internal/pkg/sse"
	"github.com/cmlabs-hris/timesheet-portal/internal/repository/backendapi"
	"github.com/cmlabs-hris/timesheet-portal/internal/repository/memory"
	adminService "github.com/cmlabs-hris/timesheet-portal/internal/service/admin"
	employeeService "github.com/cmlabs-hris/timesheet-portal/internal/service/employee"
	notificationService "github.com/cmlabs-hris/timesheet-portal/internal/service/notification"
	worklogService "github.com/cmlabs-hris/timesheet-portal/internal/service/worklog"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		os.Exit(1)
	}

	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: cfg.SlogLevel(),
	})))

	client := backend.NewClient(cfg.Backend.BaseURL, cfg.Backend.Timeout)

	employeeRepo := backendapi.NewEmployeeRepository(client)
	timesheetRepo := backendapi.NewTimesheetRepository(client)
	dailyLogRepo := backendapi.NewDailyLogRepository(client)
	dashboardRepo := backendapi.NewDashboardRepository(client)
	sessionRepo := memory.NewSessionRepository()

	hub := sse.NewHub(32)
	notifSvc := notificationService.NewNotificationService(hub, notificationService.Config{})
	employeeSvc := employeeService.NewEmployeeService(employeeRepo)
	adminSvc := adminService.NewAdminService(timesheetRepo, dailyLogRepo)
	worklogSvc := worklogService.NewWorklogService(
		sessionRepo,
		employeeSvc,
		dashboardRepo,
		timesheetRepo,
		dailyLogRepo,
		notifSvc,
		cfg.App.DefaultEmail,
	)

	scheduler := cron.NewScheduler()
	sessionJobs := cron.NewSessionJobs(sessionRepo, notifSvc, cfg.Session.TTL, cfg.Session.SweepInterval)
	sessionJobs.RegisterJobs(scheduler)
	scheduler.Start()
	defer scheduler.Stop()

	router := appHTTP.NewRouter(
		cfg,
		worklogSvc,
		appHTTP.NewSessionHandler(worklogSvc, notifSvc),
		appHTTP.NewWorklogHandler(worklogSvc),
		appHTTP.NewEmployeeHandler(employeeSvc),
		appHTTP.NewAdminHandler(adminSvc, employeeSvc),
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	server := &http.Server{
		Addr:              port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Shutdown does not cancel request contexts, so open event streams are
	// closed from the hub instead
	server.RegisterOnShutdown(func() {
		slog.Info("Closing event streams", "count", hub.DropAll())
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		slog.Info("Server running", "addr", "http://localhost"+port, "backend", client.BaseURL())
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Server error", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	slog.Info("Shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("Graceful shutdown failed", "error", err)
	}
}
