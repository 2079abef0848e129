package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/golangci/golangci-mirror/pkg/worker/app"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

func main() {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		logrus.Warnf("Can't load .env: %s", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		logrus.Infof("Got signal %s, stopping", sig)
		cancel()
	}()

	a := app.NewApp()
	if err := a.Init(ctx); err != nil {
		logrus.Errorf("Can't init: %s", err)
		os.Exit(1)
	}

	if err := a.Run(ctx); err != nil {
		logrus.Errorf("Stopped with error: %s", err)
		os.Exit(1)
	}
}
