package main

import (
	"context"
	"errors"
	"log"
	"os/signal"
	"syscall"

	"github.com/xavierca1/ligue-outreach/internal/config"
	"github.com/xavierca1/ligue-outreach/internal/infra/integration/hubspot"
	"github.com/xavierca1/ligue-outreach/internal/infra/queue"
	"github.com/xavierca1/ligue-outreach/internal/usecase"
)

func main() {
	if err := run(config.Load(".env")); err != nil {
		log.Fatal(err)
	}
}

func run(cfg *config.Config) error {
	if cfg.RabbitMQURL == "" {
		return errors.New("❌ RABBITMQ_URL não configurado")
	}
	if !cfg.HubSpotConfigured() {
		return errors.New("❌ HUBSPOT_API_KEY não configurado")
	}

	rabbitMQ, err := queue.NewRabbitMQ(cfg.RabbitMQURL)
	if err != nil {
		return err
	}
	defer rabbitMQ.Close()

	// uma mensagem por vez
	if err := rabbitMQ.Ch.Qos(1, 0, false); err != nil {
		return err
	}

	crm := hubspot.NewClient(cfg.HubSpotAPIKey, cfg.HubSpotBaseURL)
	worker := queue.NewWorker(rabbitMQ.Ch, usecase.NewAddNoteUseCase(crm))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	return worker.Start(ctx, queue.QueueName)
}
