package database

import (
	"context"
	"database/sql"
	"fmt"
	"log"

	"github.com/xavierca1/ligue-outreach/internal/entity"
)

// Só um template ativo por nome; os inativos ficam como histórico.
const schema = `
CREATE TABLE IF NOT EXISTS prompts (
	id            UUID PRIMARY KEY,
	name          TEXT NOT NULL,
	system_prompt TEXT NOT NULL,
	user_prompt   TEXT NOT NULL,
	model         TEXT NOT NULL DEFAULT 'gpt-3.5-turbo',
	active        BOOLEAN NOT NULL DEFAULT TRUE,
	created_at    TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	updated_at    TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE UNIQUE INDEX IF NOT EXISTS prompts_active_name_idx ON prompts (name) WHERE active;
`

func EnsureSchema(ctx context.Context, db *sql.DB) error {
	if _, err := db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("ensure schema: %w", err)
	}
	return nil
}

// SeedDefaults grava os templates padrão quando não existe nenhum ativo.
func SeedDefaults(ctx context.Context, repo entity.PromptRepositoryInterface) error {
	existing, err := repo.List(ctx)
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		return nil
	}

	for _, p := range entity.DefaultPrompts() {
		if err := repo.Create(ctx, p); err != nil {
			return fmt.Errorf("seed prompt %s: %w", p.Name, err)
		}
	}

	log.Printf("🌱 %d prompts padrão gravados", len(entity.DefaultPrompts()))
	return nil
}
