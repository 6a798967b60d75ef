package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/TrueBrain/nile-validator/serve"
)

type serveCmd struct {
	Addr string `help:"Address to listen on." default:":8080"`
}

func (c *serveCmd) Run() error {
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	server := serve.NewServer(serve.Config{Addr: c.Addr, Logger: logger})
	return server.Serve(ctx)
}
