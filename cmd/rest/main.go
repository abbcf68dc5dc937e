package main

import (
	"context"
	"log"

	"rso-assistant-be/internal/bootstrap"
	"rso-assistant-be/internal/config"
	"rso-assistant-be/internal/server"
	"rso-assistant-be/internal/tracer"
)

func main() {
	shutdownTracer := tracer.InitTracer()
	defer shutdownTracer(context.Background())

	cfg := config.Load()

	container := bootstrap.NewContainer(cfg)
	defer container.Logger.Sync()

	srv := server.New(cfg, container)

	log.Fatal(srv.Run())
}
