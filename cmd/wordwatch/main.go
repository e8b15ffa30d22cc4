package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"golang.org/x/term"

	cliplugins "wordwatch/internal/cli_plugins"
	"wordwatch/internal/config"
	"wordwatch/internal/lib/logger/handlers/slogpretty"
	"wordwatch/internal/lib/logger/sl"
	"wordwatch/pkg/cli"
)

const (
	envLocal = "local"
	envDev   = "dev"
	envProd  = "prod"
)

func main() {
	configPath := configPathFromArgs(os.Args[1:])
	if configPath == "" {
		configPath = config.EnvConfigPath()
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	// logs go to stderr so that stdout only carries word sets
	log := setupLogger(cfg.Env, os.Stderr)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	CLI := cli.NewCLI("wordwatch", "Watch a file and keep a live set of its words")
	CLI.Root().PersistentFlags().String("config", "", "path to config file")
	CLI.RegisterPlugin(cliplugins.NewWatchCommand(cfg, log))
	CLI.RegisterPlugin(cliplugins.NewWordsCommand(cfg, nil))

	if err := CLI.Run(ctx); err != nil {
		log.Error("command failed", sl.Err(err))
		stop()
		os.Exit(1)
	}
}

// configPathFromArgs finds --config before cobra parses the command line,
// since the config is needed to build the commands.
func configPathFromArgs(args []string) string {
	for i, arg := range args {
		switch {
		case arg == "--config" && i+1 < len(args):
			return args[i+1]
		case strings.HasPrefix(arg, "--config="):
			return strings.TrimPrefix(arg, "--config=")
		}
	}
	return ""
}

func setupLogger(env string, w io.Writer) *slog.Logger {
	var log *slog.Logger

	switch env {
	case envLocal:
		log = setupPrettySlog(w)
	case envDev:
		log = slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: slog.LevelDebug}))
	case envProd:
		log = slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: slog.LevelInfo}))
	default:
		log = slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelInfo}))
	}
	return log
}

func setupPrettySlog(w io.Writer) *slog.Logger {
	opts := &slog.HandlerOptions{Level: slog.LevelDebug}

	if f, ok := w.(*os.File); !ok || !term.IsTerminal(int(f.Fd())) {
		return slog.New(slog.NewTextHandler(w, opts))
	}

	prettyOpts := slogpretty.PrettyHandlerOptions{SlogOpts: opts}
	return slog.New(prettyOpts.NewPrettyHandler(w))
}
