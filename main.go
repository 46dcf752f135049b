package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/pflag"

	app "github.com/rocketscienceinc/tictactoe-core/internal"
	"github.com/rocketscienceinc/tictactoe-core/internal/config"
)

var (
	configPath = "config.yml"
	logLevel   = ""
)

func init() {
	pflag.StringVarP(&configPath, "config", "c", configPath, "path to the config file")
	pflag.StringVarP(&logLevel, "log-level", "l", logLevel, "log level, overrides the config file")
}

// main - is the entry point of the application. It initializes the configuration, logger, and runs the application.
func main() {
	defer func() {
		if err := recover(); err != nil {
			fmt.Fprintf(os.Stderr, "recovered from panic: %v\n", err)
			os.Exit(1)
		}
	}()

	pflag.Parse()

	conf := config.MustLoad(configPath)
	if logLevel != "" {
		conf.LogLevel = logLevel
	}

	logger := initLogger(conf)

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	code := run(ctx, logger, conf, os.Stdin, os.Stdout)
	cancel()

	os.Exit(code)
}

// run - plays the game and returns the process exit code.
func run(ctx context.Context, logger *slog.Logger, conf *config.Config, in io.Reader, out io.Writer) int {
	if err := app.RunApp(ctx, logger, conf, in, out); err != nil {
		logger.Error("app run failed", "error", err)
		return 1
	}

	return 0
}

// initialize logger, stdout is left to the game.
func initLogger(conf *config.Config) *slog.Logger {
	var level slog.Level

	switch conf.LogLevel {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	return slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}
