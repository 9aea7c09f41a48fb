package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/google/subcommands"

	"fx-data/internal/slogx"
)

func init() {
	slog.SetDefault(slogx.NewDefault("info"))
}

func main() {
	subcommands.Register(subcommands.HelpCommand(), "")
	subcommands.Register(subcommands.FlagsCommand(), "")
	subcommands.Register(&downloadCmd{}, "")
	subcommands.Register(&bulkCmd{}, "")
	flag.Parse()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	os.Exit(int(subcommands.Execute(ctx)))
}
