package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/mamaar/gocalc/internal/cli"
	"github.com/mamaar/gocalc/internal/config"
	"github.com/mamaar/gocalc/internal/lsp"
)

func main() {
	versionFlag := flag.Bool("version", false, "Show version information")
	debugFlag := flag.Bool("debug", false, "Enable debug logging")
	flag.Parse()

	if *versionFlag {
		fmt.Printf("gocalc-lsp v%s\n", cli.Version)
		fmt.Println("Language server for gocalc tape files")
		os.Exit(0)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "gocalc-lsp: %v\n", err)
		os.Exit(2)
	}
	if *debugFlag {
		cfg.LogLevel = slog.LevelDebug.String()
	}
	logger := cfg.NewLogger(os.Stderr)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	server := lsp.NewServer(cli.Version, logger)
	if err := server.ServeStdio(ctx); err != nil && ctx.Err() == nil {
		logger.Error("LSP server failed", "err", err)
		os.Exit(1)
	}
}
