package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/mamaar/gocalc/internal/cli"
	"github.com/mamaar/gocalc/internal/config"
	internalmcp "github.com/mamaar/gocalc/internal/mcp"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("gocalc-mcp", flag.ContinueOnError)
	fs.SetOutput(stderr)
	versionFlag := fs.Bool("version", false, "Show version information")
	debugFlag := fs.Bool("debug", false, "Enable debug logging")
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}

	if *versionFlag {
		fmt.Fprintf(stdout, "gocalc-mcp v%s\n", cli.Version)
		fmt.Fprintln(stdout, "Model Context Protocol server for the gocalc calculator")
		return 0
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(stderr, "gocalc-mcp: %v\n", err)
		return 2
	}
	if *debugFlag {
		cfg.LogLevel = slog.LevelDebug.String()
	}
	// stdout carries the protocol; logs go to stderr.
	logger := cfg.NewLogger(stderr)

	state := internalmcp.NewMCPServer(internalmcp.Options{
		DefaultSession: cfg.MCPSession,
		WatchDebounce:  cfg.WatchDebounce,
	}, logger)
	defer state.Close()

	server := mcpsdk.NewServer(&mcpsdk.Implementation{Name: "gocalc", Version: cli.Version}, nil)
	internalmcp.RegisterAllTools(server, state)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info("gocalc MCP server starting", "session", cfg.MCPSession)
	if err := server.Run(ctx, &mcpsdk.StdioTransport{}); err != nil && ctx.Err() == nil {
		logger.Error("server failed", "err", err)
		return 1
	}
	return 0
}
