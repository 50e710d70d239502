package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"hatra/internal/cli"
	"hatra/internal/hatraapi"
	"hatra/internal/platform"
	"hatra/internal/session"
)

func main() {
	cfg := platform.Init()
	platform.SetLogger(cfg.FileLog)

	sess := session.Load(cfg.SessionFile)
	api := hatraapi.New(cfg.ApiUrl, cfg.RequestTimeout, sess.BearerToken)
	app := cli.NewApp(cfg, api, sess, os.Stdout)

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := app.Run(ctx, os.Args[1:]); err != nil {
		platform.Logger.Error(err.Error())
		os.Exit(1)
	}
}
