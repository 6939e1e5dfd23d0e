package main

import (
	"context"
	stdlog "log"
	"os"
	"os/signal"
	"syscall"

	"github.com/nikmy/txnkit/internal/api"
	"github.com/nikmy/txnkit/internal/ledger"
	"github.com/nikmy/txnkit/internal/store"
	"github.com/nikmy/txnkit/pkg/errors"
	"github.com/nikmy/txnkit/pkg/logger"
)

func main() {
	cfg, err := loadConfig()
	if err != nil {
		stdlog.Panic(errors.WrapFail(err, "load config"))
	}

	log, err := logger.New(cfg.Environment)
	if err != nil {
		stdlog.Panic(errors.WrapFail(err, "init logger"))
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM, syscall.SIGABRT)
	defer cancel()

	storage, err := store.New(ctx, log, cfg.Storage)
	if err != nil {
		log.Panic(errors.WrapFail(err, "init storage"))
	}

	server := api.NewServer(cfg.API, log, ledger.New(log, storage))

	stopped := make(chan struct{})
	context.AfterFunc(ctx, func() {
		defer close(stopped)

		stdlog.Println("Graceful shutdown...")
		err := server.Shutdown(context.Background())
		if err != nil {
			log.Error(errors.WrapFail(err, "shut down server"))
		}
	})

	stdlog.Println("Ledger has been started")
	err = server.Serve(ctx)
	if err != nil {
		log.Error(errors.WrapFail(err, "serve"))
	}

	<-stopped
	stdlog.Println("Shutdown complete")
}
