package main

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/alecthomas/kong"

	"github.com/cmlabs-hris/timesheet-portal/internal/pkg/backend"
)

var CLI struct {
	Version    kong.VersionFlag
	BackendURL string        `help:"Timesheet backend root." env:"BACKEND_URL" default:"http://127.0.0.1:5000"`
	Timeout    time.Duration `help:"Per-request backend timeout." env:"BACKEND_TIMEOUT" default:"10s"`
	Debug      bool          `help:"Log backend traffic to stderr."`

	Week    WeekCmd    `cmd:"" help:"Show an employee's reconciled week."`
	Hours   HoursCmd   `cmd:"" help:"Compute the total for four clock times."`
	History HistoryCmd `cmd:"" help:"Show description changes of a daily log."`
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name("weekctl"),
		kong.Description("Inspect timesheet weeks from the terminal"),
		kong.UsageOnError(),
		kong.Vars{"version": "v1.0.0"},
	)

	level := slog.LevelWarn
	if CLI.Debug {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	appCtx := &Context{
		Client: backend.NewClient(CLI.BackendURL, CLI.Timeout),
		Out:    os.Stdout,
	}

	if err := ctx.Run(appCtx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
