package main

import (
	"context"
	"fmt"
	"log"

	"github.com/xavierca1/ligue-outreach/internal/config"
	"github.com/xavierca1/ligue-outreach/internal/entity"
	"github.com/xavierca1/ligue-outreach/internal/infra/integration/hubspot"
	"github.com/xavierca1/ligue-outreach/internal/usecase"
)

func main() {
	cfg := config.Load(".env")

	if !cfg.HubSpotConfigured() {
		log.Fatal("❌ HUBSPOT_API_KEY deve estar configurado no .env")
	}

	client := hubspot.NewClient(cfg.HubSpotAPIKey, cfg.HubSpotBaseURL)
	sync := usecase.NewSyncProspectUseCase(client)

	input := usecase.SyncProspectInput{
		Prospect: entity.Prospect{
			Name:    "Joao Teste da Silva",
			Title:   "Head of Sales",
			Company: "Ligue Teste",
		},
		PitchType: "Cold Outreach",
		Subject:   "Quick idea for Ligue Teste",
		Body:      "Hi Joao, I noticed your team is growing fast. Open to a quick chat?",
	}

	fmt.Println("🔄 Sincronizando prospect no HubSpot...")
	fmt.Printf("📋 Dados:\n")
	fmt.Printf("   Nome: %s\n", input.Prospect.Name)
	fmt.Printf("   Cargo: %s\n", input.Prospect.Title)
	fmt.Printf("   Empresa: %s\n", input.Prospect.Company)
	fmt.Printf("   Pitch: %s\n\n", input.PitchType)

	result, err := sync.Execute(context.Background(), input)
	if err != nil {
		log.Fatalf("Erro ao sincronizar no HubSpot: %v", err)
	}

	fmt.Printf("Status: %s\n", result.Status)
	fmt.Printf(" Contato: %s\n", result.ContactID)
	if result.LeadID != nil {
		fmt.Printf(" Lead: %s\n", *result.LeadID)
	}
}
