package database

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xavierca1/ligue-outreach/internal/entity"
)

// ============ TESTES DO REPOSITÓRIO EM MEMÓRIA ============

func TestMemoryPromptRepository_SeedOrder(t *testing.T) {
	repo := NewMemoryPromptRepository(entity.DefaultPrompts())

	prompts, err := repo.List(context.Background())

	require.NoError(t, err)
	require.Len(t, prompts, 4)
	assert.Equal(t, "Cold Outreach", prompts[0].Name)
	assert.Equal(t, "Partnership", prompts[3].Name)
}

// TestMemoryPromptRepository_ReturnsCopies - Teste que alterar o retorno não altera o store
func TestMemoryPromptRepository_ReturnsCopies(t *testing.T) {
	repo := NewMemoryPromptRepository(entity.DefaultPrompts())
	ctx := context.Background()

	p, err := repo.FindByName(ctx, "Follow-up")
	require.NoError(t, err)
	p.SystemPrompt = "changed"

	again, _ := repo.FindByID(ctx, p.ID)
	assert.NotEqual(t, "changed", again.SystemPrompt)
}

func TestMemoryPromptRepository_CRUD(t *testing.T) {
	repo := NewMemoryPromptRepository(nil)
	ctx := context.Background()

	p, err := entity.NewPromptTemplate("Intro", "system", "Hi {name}", "")
	require.NoError(t, err)
	require.NoError(t, repo.Create(ctx, p))

	dup, _ := entity.NewPromptTemplate("Intro", "system", "Hi {name}", "")
	assert.ErrorIs(t, repo.Create(ctx, dup), entity.ErrPromptNameTaken)

	p.UserPrompt = "Hello {name}"
	require.NoError(t, repo.Update(ctx, p))

	found, err := repo.FindByName(ctx, "Intro")
	require.NoError(t, err)
	assert.Equal(t, "Hello {name}", found.UserPrompt)

	other, _ := entity.NewPromptTemplate("Other", "system", "Hi {name}", "")
	require.NoError(t, repo.Create(ctx, other))

	require.NoError(t, repo.Delete(ctx, p.ID))
	_, err = repo.FindByID(ctx, p.ID)
	assert.ErrorIs(t, err, entity.ErrPromptNotFound)
	assert.ErrorIs(t, repo.Delete(ctx, p.ID), entity.ErrPromptNotFound)

	// nome liberado após a remoção
	assert.NoError(t, repo.Create(ctx, dup))
}

func TestMemoryPromptRepository_UpdateConflicts(t *testing.T) {
	repo := NewMemoryPromptRepository(entity.DefaultPrompts())
	ctx := context.Background()

	p, _ := repo.FindByName(ctx, "Follow-up")
	p.Name = "Cold Outreach"
	assert.ErrorIs(t, repo.Update(ctx, p), entity.ErrPromptNameTaken)

	ghost := &entity.PromptTemplate{ID: "ghost", Name: "Ghost"}
	assert.ErrorIs(t, repo.Update(ctx, ghost), entity.ErrPromptNotFound)
}

// TestMemoryPromptRepository_KeepsLastPrompt - Teste que o último template não é removido
func TestMemoryPromptRepository_KeepsLastPrompt(t *testing.T) {
	seed := entity.DefaultPrompts()[:2]
	repo := NewMemoryPromptRepository(seed)
	ctx := context.Background()

	require.NoError(t, repo.Delete(ctx, seed[0].ID))
	assert.ErrorIs(t, repo.Delete(ctx, seed[1].ID), entity.ErrLastPrompt)

	prompts, _ := repo.List(ctx)
	require.Len(t, prompts, 1)
	assert.Equal(t, seed[1].ID, prompts[0].ID)
}

// TestMemoryPromptRepository_ConcurrentDeletes - Teste que deletes simultâneos deixam um template
func TestMemoryPromptRepository_ConcurrentDeletes(t *testing.T) {
	seed := entity.DefaultPrompts()
	repo := NewMemoryPromptRepository(seed)
	ctx := context.Background()

	var wg sync.WaitGroup
	for _, p := range seed {
		wg.Add(1)
		go func(id string) {
			defer wg.Done()
			repo.Delete(ctx, id)
		}(p.ID)
	}
	wg.Wait()

	prompts, _ := repo.List(ctx)
	assert.Len(t, prompts, 1)
}
