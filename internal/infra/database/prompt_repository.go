package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"

	"github.com/lib/pq"

	"github.com/xavierca1/ligue-outreach/internal/entity"
)

const uniqueViolation = "23505"

// PromptRepository guarda os templates na tabela prompts. Delete é soft (active = false).
type PromptRepository struct {
	DB *sql.DB
}

func NewPromptRepository(db *sql.DB) *PromptRepository {
	return &PromptRepository{DB: db}
}

func (r *PromptRepository) List(ctx context.Context) ([]*entity.PromptTemplate, error) {
	query := `
		SELECT id, name, system_prompt, user_prompt, model, active, created_at, updated_at
		FROM prompts
		WHERE active = TRUE
		ORDER BY created_at, name
	`

	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list prompts: %w", err)
	}
	defer rows.Close()

	var prompts []*entity.PromptTemplate
	for rows.Next() {
		var p entity.PromptTemplate
		if err := rows.Scan(&p.ID, &p.Name, &p.SystemPrompt, &p.UserPrompt, &p.Model, &p.Active, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan prompt: %w", err)
		}
		prompts = append(prompts, &p)
	}

	return prompts, rows.Err()
}

func (r *PromptRepository) FindByID(ctx context.Context, id string) (*entity.PromptTemplate, error) {
	query := `
		SELECT id, name, system_prompt, user_prompt, model, active, created_at, updated_at
		FROM prompts
		WHERE id::text = $1 AND active = TRUE
	`
	return r.findOne(ctx, query, id)
}

func (r *PromptRepository) FindByName(ctx context.Context, name string) (*entity.PromptTemplate, error) {
	query := `
		SELECT id, name, system_prompt, user_prompt, model, active, created_at, updated_at
		FROM prompts
		WHERE name = $1 AND active = TRUE
	`
	return r.findOne(ctx, query, name)
}

func (r *PromptRepository) Create(ctx context.Context, p *entity.PromptTemplate) error {
	query := `
		INSERT INTO prompts (id, name, system_prompt, user_prompt, model, active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, TRUE, $6, $7)
	`

	_, err := r.DB.ExecContext(ctx, query,
		p.ID,
		p.Name,
		p.SystemPrompt,
		p.UserPrompt,
		p.Model,
		p.CreatedAt,
		p.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return entity.ErrPromptNameTaken
		}
		log.Printf("❌ Erro ao gravar prompt '%s': %v", p.Name, err)
		return fmt.Errorf("create prompt: %w", err)
	}

	p.Active = true
	return nil
}

func (r *PromptRepository) Update(ctx context.Context, p *entity.PromptTemplate) error {
	query := `
		UPDATE prompts
		SET name = $2, system_prompt = $3, user_prompt = $4, model = $5, updated_at = $6
		WHERE id::text = $1 AND active = TRUE
	`

	res, err := r.DB.ExecContext(ctx, query,
		p.ID,
		p.Name,
		p.SystemPrompt,
		p.UserPrompt,
		p.Model,
		p.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return entity.ErrPromptNameTaken
		}
		return fmt.Errorf("update prompt: %w", err)
	}

	return expectOneRow(res)
}

// Delete trava as linhas ativas antes de contar, então dois deletes simultâneos
// não esvaziam a tabela.
func (r *PromptRepository) Delete(ctx context.Context, id string) error {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("delete prompt: begin: %w", err)
	}
	defer tx.Rollback()

	rows, err := tx.QueryContext(ctx, `SELECT id::text FROM prompts WHERE active = TRUE FOR UPDATE`)
	if err != nil {
		return fmt.Errorf("delete prompt: lock: %w", err)
	}

	active, found := 0, false
	for rows.Next() {
		var activeID string
		if err := rows.Scan(&activeID); err != nil {
			rows.Close()
			return fmt.Errorf("delete prompt: scan: %w", err)
		}
		active++
		if activeID == id {
			found = true
		}
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return fmt.Errorf("delete prompt: %w", err)
	}

	if !found {
		return entity.ErrPromptNotFound
	}
	if active <= 1 {
		return entity.ErrLastPrompt
	}

	query := `UPDATE prompts SET active = FALSE, updated_at = NOW() WHERE id::text = $1 AND active = TRUE`
	if _, err := tx.ExecContext(ctx, query, id); err != nil {
		return fmt.Errorf("delete prompt: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("delete prompt: commit: %w", err)
	}
	return nil
}

func (r *PromptRepository) findOne(ctx context.Context, query string, arg string) (*entity.PromptTemplate, error) {
	var p entity.PromptTemplate

	err := r.DB.QueryRowContext(ctx, query, arg).Scan(
		&p.ID,
		&p.Name,
		&p.SystemPrompt,
		&p.UserPrompt,
		&p.Model,
		&p.Active,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, entity.ErrPromptNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find prompt: %w", err)
	}

	return &p, nil
}

func expectOneRow(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return entity.ErrPromptNotFound
	}
	return nil
}

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == uniqueViolation
}
