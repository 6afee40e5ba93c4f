package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rabbitmq/amqp091-go"

	"github.com/xavierca1/ligue-outreach/internal/config"
	"github.com/xavierca1/ligue-outreach/internal/entity"
	"github.com/xavierca1/ligue-outreach/internal/infra/database"
	"github.com/xavierca1/ligue-outreach/internal/infra/http/handlers"
	"github.com/xavierca1/ligue-outreach/internal/infra/integration/hubspot"
	"github.com/xavierca1/ligue-outreach/internal/infra/integration/openai"
	"github.com/xavierca1/ligue-outreach/internal/infra/mail"
	"github.com/xavierca1/ligue-outreach/internal/infra/queue"
	"github.com/xavierca1/ligue-outreach/internal/usecase"
)

func main() {
	cfg := config.Load(".env")
	ctx := context.Background()

	// 1. Store de prompts
	db, promptRepo, err := openPromptStore(ctx, cfg)
	if err != nil {
		log.Fatalf("❌ Store de prompts indisponível: %v", err)
	}
	if db != nil {
		defer db.Close()
	}

	// 2. Integrações (nil = feature indisponível)
	var completion usecase.CompletionClient
	if cfg.OpenAIConfigured() {
		completion = openai.NewClient(cfg.OpenAIAPIKey, cfg.OpenAIBaseURL)
	} else {
		log.Println("⚠️ OPENAI_API_KEY ausente, geração de mensagens indisponível")
	}

	var crm usecase.CRMGateway
	if cfg.HubSpotConfigured() {
		crm = hubspot.NewClient(cfg.HubSpotAPIKey, cfg.HubSpotBaseURL)
	} else {
		log.Println("⚠️ HUBSPOT_API_KEY ausente, CRM indisponível")
	}

	var events usecase.EventPublisherInterface
	var rabbitConn *amqp091.Connection
	if cfg.RabbitMQURL != "" {
		rabbitMQ, err := queue.NewRabbitMQ(cfg.RabbitMQURL)
		if err != nil {
			log.Printf("⚠️ RabbitMQ indisponível, eventos desligados: %v", err)
		} else {
			defer rabbitMQ.Close()
			rabbitConn = rabbitMQ.Conn
			events = queue.NewProducer(rabbitMQ.Ch)
		}
	}

	var mailer usecase.DraftMailer
	if cfg.MailConfigured() {
		mailer = mail.NewEmailSender(cfg.MailHost, cfg.MailPort, cfg.MailUser, cfg.MailPass, cfg.MailFrom, cfg.MailTo)
	}

	// 3. UseCases
	promptsUC := usecase.NewManagePromptsUseCase(promptRepo)
	generateUC := usecase.NewGenerateMessageUseCase(completion)
	syncUC := usecase.NewSyncProspectUseCase(crm)
	noteUC := usecase.NewAddNoteUseCase(crm)
	listUC := usecase.NewListCRMRecordsUseCase(crm)
	outreachUC := usecase.NewOutreachUseCase(promptsUC, generateUC, syncUC, events, mailer)

	// 4. Router
	router := newRouter(routerDeps{
		AllowedOrigins: cfg.AllowedOrigins,
		PasswordHash:   cfg.PasswordHash,
		Outreach:       handlers.NewOutreachHandler(outreachUC),
		CRM:            handlers.NewCRMHandler(syncUC, noteUC, listUC),
		Prompts:        handlers.NewPromptHandler(promptsUC),
		Health: handlers.NewHealthHandler(db, rabbitConn, map[string]bool{
			"openai":  cfg.OpenAIConfigured(),
			"hubspot": cfg.HubSpotConfigured(),
			"mail":    cfg.MailConfigured(),
		}),
	})

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	serveErr := make(chan error, 1)
	go func() {
		log.Printf("🔥 Server Outreach rodando na porta %s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serveErr <- err
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	select {
	case <-stop:
	case err := <-serveErr:
		// retorna pelo caminho normal para os defers fecharem DB e RabbitMQ
		log.Printf("❌ Server parou: %v", err)
		return
	}

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("⚠️ Shutdown: %v", err)
	}
	log.Println("👋 Server encerrado")
}

// openPromptStore devolve o store em memória ou, com PROMPT_STORE=postgres, a tabela
// já migrada e semeada. Em caso de erro a conexão é fechada aqui mesmo.
func openPromptStore(ctx context.Context, cfg *config.Config) (*sql.DB, entity.PromptRepositoryInterface, error) {
	if !cfg.UsePostgres() {
		return nil, database.NewMemoryPromptRepository(entity.DefaultPrompts()), nil
	}

	conn, err := database.NewDBConnection(cfg.DatabaseURL)
	if err != nil {
		return nil, nil, fmt.Errorf("postgres: %w", err)
	}

	if err := database.EnsureSchema(ctx, conn); err != nil {
		conn.Close()
		return nil, nil, err
	}

	repo := database.NewPromptRepository(conn)
	if err := database.SeedDefaults(ctx, repo); err != nil {
		conn.Close()
		return nil, nil, err
	}

	log.Println("🗄️ Prompts no Postgres")
	return conn, repo, nil
}
