package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/xavierca1/ligue-outreach/internal/infra/http/handlers"
	"github.com/xavierca1/ligue-outreach/internal/infra/http/middleware"
)

type routerDeps struct {
	AllowedOrigins []string
	PasswordHash   string

	Outreach *handlers.OutreachHandler
	CRM      *handlers.CRMHandler
	Prompts  *handlers.PromptHandler
	Health   *handlers.HealthHandler
}

func newRouter(d routerDeps) http.Handler {
	r := chi.NewRouter()
	r.Use(chimw.Logger)
	r.Use(chimw.Recoverer)
	r.Use(middleware.Metrics)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: d.AllowedOrigins,
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Content-Type", "Authorization", middleware.PasswordHeader},
	}))

	r.Get("/health", d.Health.Handle)
	r.Handle("/metrics", promhttp.Handler())

	r.Group(func(r chi.Router) {
		r.Use(middleware.PasswordGate(d.PasswordHash))

		r.Post("/outreach", d.Outreach.Handle)
		r.Post("/messages", d.Outreach.HandleGenerate)

		r.Post("/crm/sync", d.CRM.HandleSync)
		r.Get("/crm/contacts", d.CRM.HandleListContacts)
		r.Get("/crm/leads", d.CRM.HandleListLeads)
		r.Post("/crm/contacts/{id}/notes", d.CRM.HandleAddNote)

		r.Get("/prompts", d.Prompts.HandleList)
		r.Post("/prompts", d.Prompts.HandleCreate)
		r.Post("/prompts/reset", d.Prompts.HandleReset)
		r.Put("/prompts/{id}", d.Prompts.HandleUpdate)
		r.Delete("/prompts/{id}", d.Prompts.HandleDelete)
		r.Get("/models", d.Prompts.HandleModels)
	})

	return r
}
